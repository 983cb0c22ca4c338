package http

import (
	"net/http"
	"time"

	"github.com/lookbook-app/lookbook/pkg/httpx"
	"github.com/lookbook-app/lookbook/pkg/lookbooksdk"
)

// LivezHandler godoc
//
//	@Summary		Health Check Endpoint
//	@Description	Liveness probe returning basic service health, uptime, and version. Always 200 OK while the process is running.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	lookbooksdk.HealthResponse	"status, uptime, version"
//	@Router			/livez [get].
func LivezHandler(startTime time.Time, version string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		response := lookbooksdk.HealthResponse{
			Status:  "ok",
			Uptime:  time.Since(startTime).String(),
			Version: version,
		}
		httpx.WriteJSON(w, http.StatusOK, response)
	}
}

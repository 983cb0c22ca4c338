package http

import (
	"net/http"
	"time"

	"github.com/lookbook-app/lookbook/internal/auth/store"
	"github.com/lookbook-app/lookbook/pkg/httpx"
	"github.com/lookbook-app/lookbook/pkg/lookbooksdk"
)

// ReadyzHandler godoc
//
//	@Summary		Readiness Check Endpoint
//	@Description	Readiness probe that also checks critical dependencies. Returns 503 when the database is unreachable.
//	@Tags			Health
//	@Produce		json
//	@Success		200	{object}	lookbooksdk.HealthResponse	"status, uptime, version, checks"
//	@Failure		503	{object}	lookbooksdk.HealthResponse	"status, uptime, version, checks - service not ready"
//	@Router			/readyz [get].
func ReadyzHandler(startTime time.Time, version string, st store.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		checks := &lookbooksdk.HealthChecks{
			Database: "ok",
		}
		overallStatus := "ok"
		statusCode := http.StatusOK

		if err := st.Ping(r.Context()); err != nil {
			checks.Database = "error: " + err.Error()
			overallStatus = "degraded"
			statusCode = http.StatusServiceUnavailable
		}

		response := lookbooksdk.HealthResponse{
			Status:  overallStatus,
			Uptime:  time.Since(startTime).String(),
			Version: version,
			Checks:  checks,
		}
		httpx.WriteJSON(w, statusCode, response)
	}
}

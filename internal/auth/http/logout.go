package http

import (
	"net/http"

	"github.com/lookbook-app/lookbook/internal/auth/service"
	"github.com/lookbook-app/lookbook/pkg/lookbooksdk"
	"github.com/lookbook-app/lookbook/pkg/slogx"
)

// LogoutHandler serves GET /api/logout.
type LogoutHandler struct {
	SessionService *service.SessionService
	Cookies        CookieConfig
}

// ServeHTTP godoc
//
//	@Summary		Logout
//	@Description	Revokes the session named by the refresh cookie and clears the cookie. Always returns 204, with or without a cookie, known token or not.
//	@Tags			Auth
//	@Success		204	"session revoked"
//	@Failure		500	{object}	lookbooksdk.ErrorResponse	"message"
//	@Router			/api/logout [get].
func (h *LogoutHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var token string
	if cookie, err := r.Cookie(RefreshCookieName); err == nil {
		token = cookie.Value
	}

	if err := h.SessionService.Logout(ctx, token); err != nil {
		log.Error("logout failed", "err", err)
		lookbooksdk.ErrServerError.WriteError(w)
		return
	}

	h.Cookies.clearRefreshCookie(w)
	w.WriteHeader(http.StatusNoContent)
}

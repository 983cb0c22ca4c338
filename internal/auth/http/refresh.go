package http

import (
	"errors"
	"net/http"

	"github.com/lookbook-app/lookbook/internal/auth/service"
	"github.com/lookbook-app/lookbook/pkg/httpx"
	"github.com/lookbook-app/lookbook/pkg/lookbooksdk"
	"github.com/lookbook-app/lookbook/pkg/slogx"
)

// RefreshHandler serves GET /api/refresh.
type RefreshHandler struct {
	SessionService *service.SessionService
	Cookies        CookieConfig
}

// ServeHTTP godoc
//
//	@Summary		Refresh
//	@Description	Exchanges the refresh cookie for a new access token. The refresh token rotates on every call; the old one stops working the moment this returns. A missing cookie is 401, a rejected token is 403.
//	@Tags			Auth
//	@Produce		json
//	@Success		200	{object}	lookbooksdk.AuthResponse	"accessToken, user"
//	@Failure		401	{object}	lookbooksdk.ErrorResponse	"message"
//	@Failure		403	{object}	lookbooksdk.ErrorResponse	"message"
//	@Failure		500	{object}	lookbooksdk.ErrorResponse	"message"
//	@Router			/api/refresh [get].
func (h *RefreshHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	cookie, err := r.Cookie(RefreshCookieName)
	if err != nil || cookie.Value == "" {
		lookbooksdk.ErrMissingRefreshCookie.WriteError(w)
		return
	}

	session, err := h.SessionService.Refresh(ctx, cookie.Value)
	if err != nil {
		if errors.Is(err, service.ErrInvalidRefresh) {
			lookbooksdk.ErrRefreshRejected.WriteError(w)
			return
		}
		log.Error("refresh failed", "err", err)
		lookbooksdk.ErrServerError.WriteError(w)
		return
	}

	h.Cookies.setRefreshCookie(w, session.RefreshToken)
	httpx.WriteJSON(w, http.StatusOK, authResponse(session))
}

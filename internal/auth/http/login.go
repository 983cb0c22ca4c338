package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/lookbook-app/lookbook/internal/auth/domain"
	"github.com/lookbook-app/lookbook/internal/auth/service"
	"github.com/lookbook-app/lookbook/pkg/httpx"
	"github.com/lookbook-app/lookbook/pkg/lookbooksdk"
	"github.com/lookbook-app/lookbook/pkg/slogx"
)

// LoginHandler serves POST /api/login.
type LoginHandler struct {
	SessionService *service.SessionService
	Cookies        CookieConfig
}

// ServeHTTP godoc
//
//	@Summary		Login
//	@Description	Verifies username and password and issues a new session. The access token is returned in the body; the refresh token is set as an httpOnly cookie. Logging in replaces any previously active session for the account.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			credentials	body		lookbooksdk.LoginRequest	true	"Account credentials"
//	@Success		200			{object}	lookbooksdk.AuthResponse	"accessToken, user"
//	@Failure		400			{object}	lookbooksdk.ErrorResponse	"message"
//	@Failure		401			{object}	lookbooksdk.ErrorResponse	"message"
//	@Failure		500			{object}	lookbooksdk.ErrorResponse	"message"
//	@Router			/api/login [post].
func (h *LoginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req lookbooksdk.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		lookbooksdk.ErrMissingCredentials.WriteError(w)
		return
	}

	session, err := h.SessionService.Login(ctx, req.Username, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields):
			lookbooksdk.ErrMissingCredentials.WriteError(w)
		case errors.Is(err, service.ErrInvalidCredentials):
			lookbooksdk.ErrBadCredentials.WriteError(w)
		default:
			log.Error("login failed", "err", err)
			lookbooksdk.ErrServerError.WriteError(w)
		}
		return
	}

	h.Cookies.setRefreshCookie(w, session.RefreshToken)
	httpx.WriteJSON(w, http.StatusOK, authResponse(session))
}

// authResponse shapes a session for the wire: access token plus the public
// view of the account. The refresh token travels only in the cookie.
func authResponse(session *domain.Session) lookbooksdk.AuthResponse {
	return lookbooksdk.AuthResponse{
		AccessToken: session.AccessToken,
		User: lookbooksdk.UserSummary{
			ID:       session.User.ID,
			Username: session.User.Username,
			Roles:    session.User.Roles.Map(),
		},
	}
}

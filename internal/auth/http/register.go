package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/lookbook-app/lookbook/internal/auth/service"
	"github.com/lookbook-app/lookbook/pkg/httpx"
	"github.com/lookbook-app/lookbook/pkg/lookbooksdk"
	"github.com/lookbook-app/lookbook/pkg/slogx"
)

// RegisterHandler serves POST /api/register.
type RegisterHandler struct {
	SessionService *service.SessionService
	Cookies        CookieConfig
}

// ServeHTTP godoc
//
//	@Summary		Register
//	@Description	Creates an account and immediately issues a session, the same shape a login returns. Username and email must both be unique.
//	@Tags			Auth
//	@Accept			json
//	@Produce		json
//	@Param			account	body		lookbooksdk.RegisterRequest	true	"New account details"
//	@Success		201		{object}	lookbooksdk.AuthResponse	"accessToken, user"
//	@Failure		400		{object}	lookbooksdk.ErrorResponse	"message"
//	@Failure		409		{object}	lookbooksdk.ErrorResponse	"message"
//	@Failure		500		{object}	lookbooksdk.ErrorResponse	"message"
//	@Router			/api/register [post].
func (h *RegisterHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	var req lookbooksdk.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		lookbooksdk.ErrMissingFields.WriteError(w)
		return
	}

	session, err := h.SessionService.Register(ctx, req.Username, req.Email, req.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrMissingFields):
			lookbooksdk.ErrMissingFields.WriteError(w)
		case errors.Is(err, service.ErrUsernameTaken):
			lookbooksdk.ErrUsernameTaken.WriteError(w)
		case errors.Is(err, service.ErrEmailTaken):
			lookbooksdk.ErrEmailTaken.WriteError(w)
		default:
			log.Error("registration failed", "err", err)
			lookbooksdk.ErrServerError.WriteError(w)
		}
		return
	}

	h.Cookies.setRefreshCookie(w, session.RefreshToken)
	httpx.WriteJSON(w, http.StatusCreated, authResponse(session))
}

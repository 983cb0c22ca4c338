package http

import (
	"errors"
	"net/http"

	"github.com/lookbook-app/lookbook/internal/auth/service"
	"github.com/lookbook-app/lookbook/internal/auth/store"
	"github.com/lookbook-app/lookbook/pkg/httpx"
	"github.com/lookbook-app/lookbook/pkg/lookbooksdk"
	"github.com/lookbook-app/lookbook/pkg/slogx"
)

// ProfileHandler serves GET /api/users/{userId}. Authentication happens in
// middleware; this handler only enforces ownership: the id in the path must
// match the subject of the presented access token.
type ProfileHandler struct {
	UserService *service.UserService
}

// ServeHTTP godoc
//
//	@Summary		Get Profile
//	@Description	Returns the public profile of an account. Callers may only fetch their own profile; any other id is rejected.
//	@Tags			Users
//	@Produce		json
//	@Param			userId	path		string						true	"Account id"
//	@Success		200		{object}	lookbooksdk.UserSummary		"id, username, roles"
//	@Failure		400		{object}	lookbooksdk.ErrorResponse	"message"
//	@Failure		401		{object}	lookbooksdk.ErrorResponse	"message"
//	@Failure		403		{object}	lookbooksdk.ErrorResponse	"message"
//	@Failure		500		{object}	lookbooksdk.ErrorResponse	"message"
//	@Security		BearerAuth
//	@Router			/api/users/{userId} [get].
func (h *ProfileHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := slogx.FromContext(ctx)

	userID := r.PathValue("userId")
	if userID == "" {
		lookbooksdk.ErrUserIDRequired.WriteError(w)
		return
	}

	if userID != httpx.UserIDFromCtx(ctx) {
		lookbooksdk.ErrNotOwner.WriteError(w)
		return
	}

	user, err := h.UserService.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// The token names an account that no longer exists.
			lookbooksdk.ErrNotOwner.WriteError(w)
			return
		}
		log.Error("profile lookup failed", "err", err)
		lookbooksdk.ErrServerError.WriteError(w)
		return
	}

	httpx.WriteJSON(w, http.StatusOK, lookbooksdk.UserSummary{
		ID:       user.ID,
		Username: user.Username,
		Roles:    user.Roles.Map(),
	})
}

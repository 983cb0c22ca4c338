package httpx

import (
	"context"

	"github.com/lookbook-app/lookbook/pkg/jwtx"
)

type ctxKey string

const (
	CtxKeyUserID   ctxKey = "user_id"
	CtxKeyUsername ctxKey = "username"
	CtxKeyRoles    ctxKey = "roles"
	CtxKeyClaims   ctxKey = "claims" // full jwtx.Claims when needed
)

// UserIDFromCtx returns the authenticated subject id, or "" when the request
// did not pass the authn middleware.
func UserIDFromCtx(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyUserID).(string); ok {
		return v
	}
	return ""
}

// UsernameFromCtx returns the authenticated username, or "".
func UsernameFromCtx(ctx context.Context) string {
	if v, ok := ctx.Value(CtxKeyUsername).(string); ok {
		return v
	}
	return ""
}

// RolesFromCtx returns the role-tier snapshot embedded in the access token.
func RolesFromCtx(ctx context.Context) []int {
	if v, ok := ctx.Value(CtxKeyRoles).([]int); ok {
		return v
	}
	return nil
}

// ClaimsFromCtx returns the full verified claims, if present.
func ClaimsFromCtx(ctx context.Context) (jwtx.Claims, bool) {
	c, ok := ctx.Value(CtxKeyClaims).(jwtx.Claims)
	return c, ok
}

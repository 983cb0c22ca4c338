package httpx

import (
	"net/http"
	"slices"
	"strconv"
	"strings"
)

// RequireAnyRole allows the request through when the caller's role-tier
// snapshot contains at least one of the given tiers.
func RequireAnyRole(tiers ...int) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			have := RolesFromCtx(r.Context())
			for _, tier := range tiers {
				if slices.Contains(have, tier) {
					next.ServeHTTP(w, r)
					return
				}
			}
			writeRoleError(w, tiers...)
		})
	}
}

func writeRoleError(w http.ResponseWriter, required ...int) {
	labels := make([]string, len(required))
	for i, tier := range required {
		labels[i] = strconv.Itoa(tier)
	}
	w.Header().Set("WWW-Authenticate",
		`Bearer error="insufficient_role", roles="`+strings.Join(labels, " ")+`"`)
	w.WriteHeader(http.StatusForbidden)
	_, _ = w.Write([]byte("insufficient_role"))
}

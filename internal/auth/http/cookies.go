package http

import (
	"net/http"
	"time"
)

// RefreshCookieName is the cookie that carries the refresh token. The
// browser client never reads it; it is httpOnly and only the server touches
// its value.
const RefreshCookieName = "jwt"

// CookieConfig controls how the refresh cookie is written. Secure is
// toggleable so local development over plain http still works.
type CookieConfig struct {
	Secure bool
	MaxAge time.Duration
}

func (c CookieConfig) setRefreshCookie(w http.ResponseWriter, token string) {
	http.SetCookie(w, &http.Cookie{
		Name:     RefreshCookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   int(c.MaxAge.Seconds()),
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteNoneMode,
	})
}

// clearRefreshCookie expires the cookie. Attributes must match the ones the
// cookie was set with or browsers keep the old copy.
func (c CookieConfig) clearRefreshCookie(w http.ResponseWriter) {
	http.SetCookie(w, &http.Cookie{
		Name:     RefreshCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   c.Secure,
		SameSite: http.SameSiteNoneMode,
	})
}

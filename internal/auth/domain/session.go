package domain

import "time"

// Session is what the issuer and renewer hand back to the HTTP layer: the
// access token for the response body and the refresh token for the cookie.
type Session struct {
	AccessToken      string
	RefreshToken     string
	RefreshExpiresAt time.Time
	User             User
}

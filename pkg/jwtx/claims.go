package jwtx

import (
	"crypto/rand"
	"encoding/base64"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Default token TTL constants. Short-lived access tokens bound the damage of
// a leaked bearer token; the refresh token's day-long lifetime is what keeps
// the session usable.
const (
	// DefaultAccessTokenTTL is the default lifetime for access tokens.
	DefaultAccessTokenTTL = 30 * time.Minute

	// DefaultRefreshTokenTTL is the default lifetime for refresh tokens.
	DefaultRefreshTokenTTL = 24 * time.Hour
)

// Claims is the payload embedded in both token classes. Access tokens carry
// the full identity snapshot (subject id, username, role tiers); refresh
// tokens carry the username only, so Roles stays empty there.
type Claims struct {
	jwt.RegisteredClaims

	// Username of the authenticated account.
	Username string `json:"username,omitempty"`

	// Roles is the numeric role-tier snapshot copied at issuance. Role
	// changes mid-session only become visible on renewal.
	Roles []int `json:"roles,omitempty"`
}

// NewAccessClaims builds claims for a short-lived access token.
func NewAccessClaims(
	subject, username string,
	roles []int,
	ttl time.Duration,
	issuer string,
	now time.Time,
) Claims {
	return Claims{
		RegisteredClaims: registered(subject, ttl, issuer, now),
		Username:         username,
		Roles:            roles,
	}
}

// NewRefreshClaims builds claims for a long-lived refresh token. Only the
// username is embedded; validity is ultimately decided by the stored slot.
func NewRefreshClaims(username string, ttl time.Duration, issuer string, now time.Time) Claims {
	return Claims{
		RegisteredClaims: registered("", ttl, issuer, now),
		Username:         username,
	}
}

func registered(subject string, ttl time.Duration, issuer string, now time.Time) jwt.RegisteredClaims {
	return jwt.RegisteredClaims{
		Issuer:    issuer,
		Subject:   subject,
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
		ID:        NewJTI(),
	}
}

// NewJTI returns a URL-safe random identifier for the "jti" claim. Random
// jtis make two otherwise-identical tokens distinct, which the refresh flow
// relies on.
func NewJTI() string {
	var b [20]byte
	_, _ = rand.Read(b[:])
	return base64.RawURLEncoding.EncodeToString(b[:])
}

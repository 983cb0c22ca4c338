package jwtx

import (
	"errors"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Typed verification failures. Callers branch on these: an expired token is a
// candidate for silent refresh, a malformed one never is.
var (
	ErrMalformed   = errors.New("jwtx: malformed token")
	ErrInvalidSig  = errors.New("jwtx: invalid signature")
	ErrExpired     = errors.New("jwtx: token expired")
	ErrNotYetValid = errors.New("jwtx: token not yet valid")
	ErrIssuer      = errors.New("jwtx: issuer mismatch")
)

// MinSecretLength guards against trivially brute-forceable HMAC secrets.
const MinSecretLength = 32

// Signer is anything that can sign a Claims payload into a compact JWT.
type Signer interface {
	Sign(Claims) (string, error)
}

// Verifier validates a compact JWT and returns the claims if it is legit.
type Verifier interface {
	Verify(token string) (Claims, error)
}

// HS256 signs and verifies HMAC-SHA256 tokens with a single shared secret.
// The access and refresh token classes each get their own HS256 instance so
// a compromise of one secret never affects the other.
type HS256 struct {
	secret []byte
	issuer string
	parser *jwt.Parser
}

// NewHS256 builds a codec for one token class. The issuer is enforced on
// verification when non-empty.
func NewHS256(secret []byte, issuer string) (*HS256, error) {
	if len(secret) < MinSecretLength {
		return nil, fmt.Errorf("jwtx: secret must be at least %d bytes, got %d",
			MinSecretLength, len(secret))
	}

	return &HS256{
		secret: secret,
		issuer: issuer,
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
			jwt.WithExpirationRequired(),
		),
	}, nil
}

// Sign produces a compact HS256 JWT for the given claims.
func (h *HS256) Sign(claims Claims) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(h.secret)
	if err != nil {
		return "", fmt.Errorf("jwtx: sign: %w", err)
	}
	return signed, nil
}

// Verify parses and validates a compact JWT. Failures are mapped onto the
// package's typed errors; expiry is checked as part of verification.
func (h *HS256) Verify(raw string) (Claims, error) {
	var claims Claims
	_, err := h.parser.ParseWithClaims(raw, &claims, func(t *jwt.Token) (any, error) {
		return h.secret, nil
	})
	if err != nil {
		return Claims{}, mapParseError(err)
	}

	if h.issuer != "" && claims.Issuer != h.issuer {
		return Claims{}, ErrIssuer
	}

	return claims, nil
}

func mapParseError(err error) error {
	switch {
	case errors.Is(err, jwt.ErrTokenExpired):
		return ErrExpired
	case errors.Is(err, jwt.ErrTokenNotValidYet):
		return ErrNotYetValid
	case errors.Is(err, jwt.ErrTokenSignatureInvalid):
		return ErrInvalidSig
	default:
		return ErrMalformed
	}
}

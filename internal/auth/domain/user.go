package domain

import "time"

// User is one account record. The refresh token is a single slot, not a set:
// at most one refresh token is valid per account at any time, so a new login
// overwrites the previous session rather than adding to it.
type User struct {
	ID           string
	Username     string // unique, stored trimmed
	Email        string // unique, stored trimmed and lowercased
	PasswordHash string // argon2id encoded; never serialized to clients

	// RefreshToken holds the currently valid refresh token, or "" when no
	// session is active. RefreshExpiresAt mirrors the token's own expiry so
	// housekeeping can clear dead slots without decoding them.
	RefreshToken     string
	RefreshExpiresAt *time.Time

	Roles     RoleSet
	CreatedAt time.Time
	UpdatedAt time.Time
}

// HasSession reports whether the account currently holds a refresh token.
func (u User) HasSession() bool {
	return u.RefreshToken != ""
}

package store

import (
	"context"
	"errors"
	"time"

	"github.com/lookbook-app/lookbook/internal/auth/domain"
)

var (
	ErrNotFound      = errors.New("store: not found")
	ErrAlreadyExists = errors.New("store: already exists")
)

// Store is the root data access interface. Concrete drivers (sqlite today)
// implement it. Components receive a Store explicitly; there is no shared
// module-level connection.
type Store interface {
	Users() Users

	ApplyMigrations() error

	// Tx starts a read/write transaction and returns a Tx-scoped Store.
	// The caller MUST call Commit() or Rollback() on the returned Tx.
	Tx(ctx context.Context) (Tx, error)

	// WithTx executes fn within a transaction, committing when fn returns
	// nil and rolling back otherwise.
	WithTx(ctx context.Context, fn func(tx Tx) error) error

	// Close releases any underlying resources.
	Close() error

	// Ping verifies the database connection is still alive.
	Ping(ctx context.Context) error
}

// Tx is a transactional store.
type Tx interface {
	Store
	Commit() error
	Rollback() error
}

// Users is the credential store. Every mutation of the refresh slot is a
// single statement, so the stored value always equals one issued token or is
// empty, never a torn intermediate.
type Users interface {
	// GetUserByID returns a user by id.
	GetUserByID(ctx context.Context, id string) (domain.User, error)

	// GetUserByUsername is used during login; username is matched exactly.
	GetUserByUsername(ctx context.Context, username string) (domain.User, error)

	// GetUserByEmail is used for the registration uniqueness check.
	GetUserByEmail(ctx context.Context, email string) (domain.User, error)

	// GetUserByRefreshToken finds the account holding this refresh token.
	// This lookup is the server-side revocation check.
	GetUserByRefreshToken(ctx context.Context, token string) (domain.User, error)

	// CreateUser inserts a new user (id comes from the app via ULID).
	// Returns ErrAlreadyExists on a username or email collision.
	CreateUser(ctx context.Context, u domain.User) error

	// SetRefreshToken unconditionally overwrites the refresh slot. A login
	// elsewhere invalidates the previous session this way.
	SetRefreshToken(ctx context.Context, userID, token string, expiresAt time.Time) error

	// RotateRefreshToken swaps the slot from oldToken to newToken as one
	// compare-and-set. Returns ErrNotFound when no row still holds oldToken,
	// which is how the loser of a concurrent refresh race finds out.
	RotateRefreshToken(ctx context.Context, oldToken, newToken string, expiresAt time.Time) error

	// ClearRefreshToken empties the slot (logout).
	ClearRefreshToken(ctx context.Context, userID string) error

	// ClearExpiredRefreshTokens empties every slot whose expiry has passed.
	// Housekeeping only; a stale slot is harmless but pointless to keep.
	ClearExpiredRefreshTokens(ctx context.Context) (int64, error)

	// DeleteUser removes the account entirely.
	DeleteUser(ctx context.Context, userID string) error
}

package sqlite

import (
	"context"
	"time"

	"github.com/lookbook-app/lookbook/internal/auth/domain"
)

type usersRepo struct {
	db querier
}

const userColumns = `id, username, email, password_hash, refresh_token,
	refresh_expires_at, role_user, role_editor, role_admin, created_at,
	updated_at`

func (r *usersRepo) getUser(ctx context.Context, where string, arg any) (domain.User, error) {
	var row userRow
	err := r.db.QueryRowContext(ctx,
		`SELECT `+userColumns+` FROM users WHERE `+where, arg,
	).Scan(
		&row.ID, &row.Username, &row.Email, &row.PasswordHash,
		&row.RefreshToken, &row.RefreshExpiresAt,
		&row.RoleUser, &row.RoleEditor, &row.RoleAdmin,
		&row.CreatedAt, &row.UpdatedAt,
	)
	if err != nil {
		return domain.User{}, mapNotFound(err)
	}
	return mapUser(row), nil
}

func (r *usersRepo) GetUserByID(ctx context.Context, id string) (domain.User, error) {
	return r.getUser(ctx, `id = ?`, id)
}

func (r *usersRepo) GetUserByUsername(ctx context.Context, username string) (domain.User, error) {
	return r.getUser(ctx, `username = ?`, username)
}

func (r *usersRepo) GetUserByEmail(ctx context.Context, email string) (domain.User, error) {
	return r.getUser(ctx, `email = ?`, email)
}

func (r *usersRepo) GetUserByRefreshToken(ctx context.Context, token string) (domain.User, error) {
	return r.getUser(ctx, `refresh_token = ?`, token)
}

func (r *usersRepo) CreateUser(ctx context.Context, u domain.User) error {
	now := time.Now().UTC()
	if u.CreatedAt.IsZero() {
		u.CreatedAt = now
	}
	if u.UpdatedAt.IsZero() {
		u.UpdatedAt = now
	}

	_, err := r.db.ExecContext(ctx, `
		INSERT INTO users (
			id, username, email, password_hash, refresh_token,
			refresh_expires_at, role_user, role_editor, role_admin,
			created_at, updated_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		u.ID, u.Username, u.Email, u.PasswordHash,
		mapStringNull(u.RefreshToken), nullTimeFromPtr(u.RefreshExpiresAt),
		u.Roles.User, u.Roles.Editor, u.Roles.Admin,
		u.CreatedAt, u.UpdatedAt,
	)
	return mapConstraint(err)
}

func (r *usersRepo) SetRefreshToken(ctx context.Context, userID, token string, expiresAt time.Time) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE users
		SET refresh_token = ?, refresh_expires_at = ?, updated_at = ?
		WHERE id = ?`,
		token, expiresAt.UTC(), time.Now().UTC(), userID,
	)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

// RotateRefreshToken is a compare-and-set: only the request that still holds
// the current slot value wins. Concurrent refreshes with the same old token
// will race here and exactly one UPDATE matches.
func (r *usersRepo) RotateRefreshToken(ctx context.Context, oldToken, newToken string, expiresAt time.Time) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE users
		SET refresh_token = ?, refresh_expires_at = ?, updated_at = ?
		WHERE refresh_token = ?`,
		newToken, expiresAt.UTC(), time.Now().UTC(), oldToken,
	)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *usersRepo) ClearRefreshToken(ctx context.Context, userID string) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE users
		SET refresh_token = NULL, refresh_expires_at = NULL, updated_at = ?
		WHERE id = ?`,
		time.Now().UTC(), userID,
	)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

func (r *usersRepo) ClearExpiredRefreshTokens(ctx context.Context) (int64, error) {
	res, err := r.db.ExecContext(ctx, `
		UPDATE users
		SET refresh_token = NULL, refresh_expires_at = NULL, updated_at = ?
		WHERE refresh_token IS NOT NULL AND refresh_expires_at < ?`,
		time.Now().UTC(), time.Now().UTC(),
	)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *usersRepo) DeleteUser(ctx context.Context, userID string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM users WHERE id = ?`, userID)
	if err != nil {
		return err
	}
	return requireAffected(res)
}

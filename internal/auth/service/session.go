package service

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/lookbook-app/lookbook/internal/auth/domain"
	"github.com/lookbook-app/lookbook/internal/auth/store"
	"github.com/lookbook-app/lookbook/pkg/cryptox"
	"github.com/lookbook-app/lookbook/pkg/idx"
	"github.com/lookbook-app/lookbook/pkg/jwtx"
	"github.com/lookbook-app/lookbook/pkg/slogx"
)

var (
	ErrInvalidCredentials = errors.New("invalid_credentials")
	ErrMissingFields      = errors.New("missing_fields")
	ErrUsernameTaken      = errors.New("username_taken")
	ErrEmailTaken         = errors.New("email_taken")
	ErrInvalidRefresh     = errors.New("invalid_refresh_token")
)

// SessionService owns the credential checks and the full token lifecycle:
// issue on login/register, rotate on refresh, revoke on logout.
type SessionService struct {
	Store store.Store

	AccessSigner    jwtx.Signer
	RefreshSigner   jwtx.Signer
	RefreshVerifier jwtx.Verifier

	Issuer     string
	AccessTTL  time.Duration
	RefreshTTL time.Duration
}

// Login verifies the submitted credentials and, on success, issues a fresh
// access/refresh pair. The new refresh token overwrites whatever the account
// held before, so logging in elsewhere always invalidates the older session.
func (s *SessionService) Login(ctx context.Context, username, password string) (*domain.Session, error) {
	l := slogx.FromContext(ctx)
	now := time.Now()

	username = strings.TrimSpace(username)
	if username == "" || password == "" {
		return nil, ErrMissingFields
	}

	user, err := s.Store.Users().GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Verify against a throwaway hash anyway so a missing account
			// costs the same as a wrong password.
			_ = cryptox.VerifyPassword(password, cryptox.DummyHash)
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := cryptox.VerifyPassword(password, user.PasswordHash); err != nil {
		l.Info("login rejected", slog.String("username", username))
		return nil, ErrInvalidCredentials
	}

	session, err := s.issueSession(ctx, user, now)
	if err != nil {
		return nil, err
	}

	l.Info("login succeeded",
		slog.String("user_id", user.ID),
		slog.String("username", user.Username))
	return session, nil
}

// Register creates the account and immediately issues a session, the same
// pair a login would produce. Username and email collisions map to their own
// errors so the handler can name the conflicting field.
func (s *SessionService) Register(ctx context.Context, username, email, password string) (*domain.Session, error) {
	l := slogx.FromContext(ctx)
	now := time.Now()

	username = strings.TrimSpace(username)
	email = strings.ToLower(strings.TrimSpace(email))
	if username == "" || email == "" || password == "" {
		return nil, ErrMissingFields
	}

	hash, err := cryptox.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := domain.User{
		ID:           idx.New().String(),
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Roles:        domain.DefaultRoles(),
		CreatedAt:    now.UTC(),
		UpdatedAt:    now.UTC(),
	}

	if err := s.Store.Users().CreateUser(ctx, user); err != nil {
		if errors.Is(err, store.ErrAlreadyExists) {
			// The insert can trip either unique index; look up which.
			if _, lookupErr := s.Store.Users().GetUserByUsername(ctx, username); lookupErr == nil {
				return nil, ErrUsernameTaken
			}
			return nil, ErrEmailTaken
		}
		return nil, err
	}

	session, err := s.issueSession(ctx, user, now)
	if err != nil {
		return nil, err
	}

	l.Info("account registered",
		slog.String("user_id", user.ID),
		slog.String("username", user.Username))
	return session, nil
}

// Refresh validates the presented refresh token and rotates it: the old
// value is atomically swapped for a new one, so each refresh token works
// exactly once. Any failure, signature, expiry, or an unrecognized slot,
// collapses into ErrInvalidRefresh; the caller learns nothing more.
func (s *SessionService) Refresh(ctx context.Context, refreshToken string) (*domain.Session, error) {
	l := slogx.FromContext(ctx)
	now := time.Now()

	// Signature and expiry first. A forged or expired token never reaches
	// the database.
	claims, err := s.RefreshVerifier.Verify(refreshToken)
	if err != nil {
		l.Info("refresh token failed verification", slog.Any("error", err))
		return nil, ErrInvalidRefresh
	}

	user, err := s.Store.Users().GetUserByRefreshToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInvalidRefresh
		}
		return nil, err
	}

	// The slot matched, but the claim inside must still name this account.
	if claims.Username != user.Username {
		l.Warn("refresh token claim mismatch",
			slog.String("user_id", user.ID),
			slog.String("claim_username", claims.Username))
		return nil, ErrInvalidRefresh
	}

	newRefresh, err := s.RefreshSigner.Sign(
		jwtx.NewRefreshClaims(user.Username, s.RefreshTTL, s.Issuer, now))
	if err != nil {
		return nil, err
	}

	refreshExpiry := now.Add(s.RefreshTTL)
	err = s.Store.Users().RotateRefreshToken(ctx, refreshToken, newRefresh, refreshExpiry)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			// Someone else rotated the slot between our lookup and the
			// swap. This request loses.
			return nil, ErrInvalidRefresh
		}
		return nil, err
	}

	access, err := s.AccessSigner.Sign(
		jwtx.NewAccessClaims(user.ID, user.Username, user.Roles.Tiers(), s.AccessTTL, s.Issuer, now))
	if err != nil {
		return nil, err
	}

	user.RefreshToken = newRefresh
	user.RefreshExpiresAt = &refreshExpiry

	return &domain.Session{
		AccessToken:      access,
		RefreshToken:     newRefresh,
		RefreshExpiresAt: refreshExpiry,
		User:             user,
	}, nil
}

// Logout clears the refresh slot for whichever account holds the presented
// token. Unknown tokens are not an error: logout is idempotent and always
// succeeds from the caller's point of view.
func (s *SessionService) Logout(ctx context.Context, refreshToken string) error {
	l := slogx.FromContext(ctx)

	if refreshToken == "" {
		return nil
	}

	user, err := s.Store.Users().GetUserByRefreshToken(ctx, refreshToken)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil
		}
		return err
	}

	if err := s.Store.Users().ClearRefreshToken(ctx, user.ID); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil
		}
		return err
	}

	l.Info("session revoked", slog.String("user_id", user.ID))
	return nil
}

// issueSession signs a new access/refresh pair and persists the refresh
// token as the account's single active session slot.
func (s *SessionService) issueSession(ctx context.Context, user domain.User, now time.Time) (*domain.Session, error) {
	refresh, err := s.RefreshSigner.Sign(
		jwtx.NewRefreshClaims(user.Username, s.RefreshTTL, s.Issuer, now))
	if err != nil {
		return nil, err
	}

	refreshExpiry := now.Add(s.RefreshTTL)
	if err := s.Store.Users().SetRefreshToken(ctx, user.ID, refresh, refreshExpiry); err != nil {
		return nil, err
	}

	access, err := s.AccessSigner.Sign(
		jwtx.NewAccessClaims(user.ID, user.Username, user.Roles.Tiers(), s.AccessTTL, s.Issuer, now))
	if err != nil {
		return nil, err
	}

	user.RefreshToken = refresh
	user.RefreshExpiresAt = &refreshExpiry

	return &domain.Session{
		AccessToken:      access,
		RefreshToken:     refresh,
		RefreshExpiresAt: refreshExpiry,
		User:             user,
	}, nil
}

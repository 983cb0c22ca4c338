package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/lookbook-app/lookbook/internal/auth/domain"
	"github.com/lookbook-app/lookbook/internal/auth/store"
	"github.com/lookbook-app/lookbook/internal/auth/store/drivers/sqlite"
	"github.com/lookbook-app/lookbook/pkg/jwtx"

	"github.com/stretchr/testify/require"
)

const testIssuer = "lookbook-test"

var (
	testAccessSecret  = []byte("access-secret-0123456789abcdefgh")
	testRefreshSecret = []byte("refresh-secret-0123456789abcdefg")
)

func newTestSessionService(t *testing.T) (*SessionService, store.Store) {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	access, err := jwtx.NewHS256(testAccessSecret, testIssuer)
	require.NoError(t, err)
	refresh, err := jwtx.NewHS256(testRefreshSecret, testIssuer)
	require.NoError(t, err)

	svc := &SessionService{
		Store:           st,
		AccessSigner:    access,
		RefreshSigner:   refresh,
		RefreshVerifier: refresh,
		Issuer:          testIssuer,
		AccessTTL:       jwtx.DefaultAccessTokenTTL,
		RefreshTTL:      jwtx.DefaultRefreshTokenTTL,
	}
	return svc, st
}

func registerTestUser(t *testing.T, svc *SessionService, username string) *domain.Session {
	t.Helper()
	session, err := svc.Register(context.Background(), username, username+"@example.com", "hunter2!")
	require.NoError(t, err)
	return session
}

func TestSessionService_RegisterIssuesSession(t *testing.T) {
	svc, st := newTestSessionService(t)
	ctx := context.Background()

	session := registerTestUser(t, svc, "alice")

	require.NotEmpty(t, session.AccessToken)
	require.NotEmpty(t, session.RefreshToken)
	require.Equal(t, "alice", session.User.Username)
	require.Equal(t, domain.RoleTierUser, session.User.Roles.User)

	// The stored slot equals the issued refresh token.
	stored, err := st.Users().GetUserByRefreshToken(ctx, session.RefreshToken)
	require.NoError(t, err)
	require.Equal(t, session.User.ID, stored.ID)

	// Access token carries subject, username, and role tiers.
	verifier, err := jwtx.NewHS256(testAccessSecret, testIssuer)
	require.NoError(t, err)
	claims, err := verifier.Verify(session.AccessToken)
	require.NoError(t, err)
	require.Equal(t, session.User.ID, claims.Subject)
	require.Equal(t, "alice", claims.Username)
	require.Contains(t, claims.Roles, domain.RoleTierUser)
}

func TestSessionService_RegisterMissingFields(t *testing.T) {
	svc, _ := newTestSessionService(t)
	ctx := context.Background()

	_, err := svc.Register(ctx, "", "a@example.com", "pw")
	require.ErrorIs(t, err, ErrMissingFields)

	_, err = svc.Register(ctx, "a", "", "pw")
	require.ErrorIs(t, err, ErrMissingFields)

	_, err = svc.Register(ctx, "a", "a@example.com", "")
	require.ErrorIs(t, err, ErrMissingFields)
}

func TestSessionService_RegisterDuplicates(t *testing.T) {
	svc, _ := newTestSessionService(t)
	ctx := context.Background()

	registerTestUser(t, svc, "bob")

	_, err := svc.Register(ctx, "bob", "fresh@example.com", "pw123456")
	require.ErrorIs(t, err, ErrUsernameTaken)

	_, err = svc.Register(ctx, "bob2", "bob@example.com", "pw123456")
	require.ErrorIs(t, err, ErrEmailTaken)
}

func TestSessionService_LoginRoundTrip(t *testing.T) {
	svc, _ := newTestSessionService(t)
	ctx := context.Background()

	registerTestUser(t, svc, "carol")

	session, err := svc.Login(ctx, "carol", "hunter2!")
	require.NoError(t, err)
	require.Equal(t, "carol", session.User.Username)
	require.NotEmpty(t, session.AccessToken)
}

func TestSessionService_LoginRejections(t *testing.T) {
	svc, _ := newTestSessionService(t)
	ctx := context.Background()

	registerTestUser(t, svc, "dave")

	_, err := svc.Login(ctx, "dave", "wrong-password")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	// Unknown account and wrong password are indistinguishable.
	_, err = svc.Login(ctx, "nobody", "whatever1")
	require.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = svc.Login(ctx, "", "")
	require.ErrorIs(t, err, ErrMissingFields)
}

func TestSessionService_LoginReplacesExistingSession(t *testing.T) {
	svc, st := newTestSessionService(t)
	ctx := context.Background()

	registerTestUser(t, svc, "erin")

	first, err := svc.Login(ctx, "erin", "hunter2!")
	require.NoError(t, err)
	second, err := svc.Login(ctx, "erin", "hunter2!")
	require.NoError(t, err)
	require.NotEqual(t, first.RefreshToken, second.RefreshToken)

	// Only the newest refresh token maps to the account.
	_, err = st.Users().GetUserByRefreshToken(ctx, first.RefreshToken)
	require.ErrorIs(t, err, store.ErrNotFound)

	stored, err := st.Users().GetUserByRefreshToken(ctx, second.RefreshToken)
	require.NoError(t, err)
	require.Equal(t, "erin", stored.Username)
}

func TestSessionService_RefreshRotates(t *testing.T) {
	svc, st := newTestSessionService(t)
	ctx := context.Background()

	session := registerTestUser(t, svc, "frank")

	renewed, err := svc.Refresh(ctx, session.RefreshToken)
	require.NoError(t, err)
	require.Equal(t, session.User.ID, renewed.User.ID)
	require.NotEqual(t, session.RefreshToken, renewed.RefreshToken)
	require.NotEmpty(t, renewed.AccessToken)

	// The old token was consumed by the rotation.
	_, err = svc.Refresh(ctx, session.RefreshToken)
	require.ErrorIs(t, err, ErrInvalidRefresh)
	_, err = st.Users().GetUserByRefreshToken(ctx, session.RefreshToken)
	require.ErrorIs(t, err, store.ErrNotFound)

	// The new token works.
	_, err = svc.Refresh(ctx, renewed.RefreshToken)
	require.NoError(t, err)
}

func TestSessionService_RefreshRejectsGarbage(t *testing.T) {
	svc, _ := newTestSessionService(t)
	ctx := context.Background()

	_, err := svc.Refresh(ctx, "not-a-jwt")
	require.ErrorIs(t, err, ErrInvalidRefresh)
}

func TestSessionService_RefreshRejectsForeignSignature(t *testing.T) {
	svc, _ := newTestSessionService(t)
	ctx := context.Background()

	// Well-formed token signed with a different secret.
	forger, err := jwtx.NewHS256([]byte("some-other-secret-0123456789abcd"), testIssuer)
	require.NoError(t, err)
	forged, err := forger.Sign(jwtx.NewRefreshClaims("alice", time.Hour, testIssuer, time.Now()))
	require.NoError(t, err)

	_, err = svc.Refresh(ctx, forged)
	require.ErrorIs(t, err, ErrInvalidRefresh)
}

func TestSessionService_RefreshAfterLogout(t *testing.T) {
	svc, _ := newTestSessionService(t)
	ctx := context.Background()

	session := registerTestUser(t, svc, "grace")

	require.NoError(t, svc.Logout(ctx, session.RefreshToken))

	// Token still verifies cryptographically but the slot is empty.
	_, err := svc.Refresh(ctx, session.RefreshToken)
	require.ErrorIs(t, err, ErrInvalidRefresh)
}

func TestSessionService_RefreshRaceSingleWinner(t *testing.T) {
	svc, _ := newTestSessionService(t)
	ctx := context.Background()

	session := registerTestUser(t, svc, "heidi")

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := range errs {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Refresh(ctx, session.RefreshToken)
		}(i)
	}
	wg.Wait()

	var wins, losses int
	for _, err := range errs {
		switch {
		case err == nil:
			wins++
		default:
			require.ErrorIs(t, err, ErrInvalidRefresh)
			losses++
		}
	}
	require.Equal(t, 1, wins)
	require.Equal(t, 1, losses)
}

func TestSessionService_LogoutIdempotent(t *testing.T) {
	svc, _ := newTestSessionService(t)
	ctx := context.Background()

	session := registerTestUser(t, svc, "ivan")

	require.NoError(t, svc.Logout(ctx, session.RefreshToken))
	require.NoError(t, svc.Logout(ctx, session.RefreshToken))
	require.NoError(t, svc.Logout(ctx, "completely-unknown"))
	require.NoError(t, svc.Logout(ctx, ""))
}

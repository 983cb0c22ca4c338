package http

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/lookbook-app/lookbook/internal/auth/service"
	"github.com/lookbook-app/lookbook/internal/auth/store/drivers/sqlite"
	"github.com/lookbook-app/lookbook/pkg/jwtx"
	"github.com/lookbook-app/lookbook/pkg/lookbooksdk"

	"github.com/stretchr/testify/require"
)

const testIssuer = "lookbook-test"

var (
	testAccessSecret  = []byte("access-secret-0123456789abcdefgh")
	testRefreshSecret = []byte("refresh-secret-0123456789abcdefg")
)

type testServer struct {
	*httptest.Server
	client *http.Client
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	access, err := jwtx.NewHS256(testAccessSecret, testIssuer)
	require.NoError(t, err)
	refresh, err := jwtx.NewHS256(testRefreshSecret, testIssuer)
	require.NoError(t, err)

	sessionSvc := &service.SessionService{
		Store:           st,
		AccessSigner:    access,
		RefreshSigner:   refresh,
		RefreshVerifier: refresh,
		Issuer:          testIssuer,
		AccessTTL:       jwtx.DefaultAccessTokenTTL,
		RefreshTTL:      jwtx.DefaultRefreshTokenTTL,
	}

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	router := NewRouter(access, CookieConfig{MaxAge: jwtx.DefaultRefreshTokenTTL}, "test", st, logger)
	router.SessionService = sessionSvc
	router.UserService = &service.UserService{Store: st}
	router.ApplyRoutes()

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)

	return &testServer{
		Server: srv,
		client: &http.Client{Jar: jar},
	}
}

func (ts *testServer) postJSON(t *testing.T, path string, body any) *http.Response {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	resp, err := ts.client.Post(ts.URL+path, "application/json", bytes.NewReader(raw))
	require.NoError(t, err)
	return resp
}

func (ts *testServer) get(t *testing.T, path string) *http.Response {
	t.Helper()
	resp, err := ts.client.Get(ts.URL + path)
	require.NoError(t, err)
	return resp
}

func (ts *testServer) register(t *testing.T, username string) lookbooksdk.AuthResponse {
	t.Helper()
	resp := ts.postJSON(t, "/api/register", lookbooksdk.RegisterRequest{
		Username: username,
		Email:    username + "@example.com",
		Password: "hunter2!",
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusCreated, resp.StatusCode)

	var out lookbooksdk.AuthResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out
}

func (ts *testServer) refreshCookie(t *testing.T) *http.Cookie {
	t.Helper()
	u, err := url.Parse(ts.URL)
	require.NoError(t, err)
	for _, c := range ts.client.Jar.Cookies(u) {
		if c.Name == RefreshCookieName {
			return c
		}
	}
	return nil
}

func decodeError(t *testing.T, resp *http.Response) string {
	t.Helper()
	defer resp.Body.Close()
	var out lookbooksdk.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return out.Message
}

func TestRegisterIssuesSessionAndCookie(t *testing.T) {
	ts := newTestServer(t)

	out := ts.register(t, "alice")
	require.NotEmpty(t, out.AccessToken)
	require.Equal(t, "alice", out.User.Username)
	require.NotEmpty(t, out.User.ID)
	require.Equal(t, 2001, out.User.Roles["User"])

	cookie := ts.refreshCookie(t)
	require.NotNil(t, cookie)
	require.NotEmpty(t, cookie.Value)
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	ts := newTestServer(t)
	ts.register(t, "bob")

	resp := ts.postJSON(t, "/api/register", lookbooksdk.RegisterRequest{
		Username: "bob", Email: "fresh@example.com", Password: "pw123456",
	})
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	require.Equal(t, "Account with this username already exists", decodeError(t, resp))

	resp = ts.postJSON(t, "/api/register", lookbooksdk.RegisterRequest{
		Username: "bob2", Email: "bob@example.com", Password: "pw123456",
	})
	require.Equal(t, http.StatusConflict, resp.StatusCode)
	require.Equal(t, "Account with this email already exists", decodeError(t, resp))
}

func TestRegisterRejectsMissingFields(t *testing.T) {
	ts := newTestServer(t)

	resp := ts.postJSON(t, "/api/register", lookbooksdk.RegisterRequest{Username: "solo"})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestLoginRoundTrip(t *testing.T) {
	ts := newTestServer(t)
	registered := ts.register(t, "carol")

	resp := ts.postJSON(t, "/api/login", lookbooksdk.LoginRequest{
		Username: "carol", Password: "hunter2!",
	})
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out lookbooksdk.AuthResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Equal(t, registered.User.ID, out.User.ID)
	require.NotEmpty(t, out.AccessToken)
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	ts := newTestServer(t)
	ts.register(t, "dave")

	resp := ts.postJSON(t, "/api/login", lookbooksdk.LoginRequest{
		Username: "dave", Password: "wrong",
	})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	// Unknown accounts get the same answer.
	resp = ts.postJSON(t, "/api/login", lookbooksdk.LoginRequest{
		Username: "nobody", Password: "whatever1",
	})
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()

	resp = ts.postJSON(t, "/api/login", lookbooksdk.LoginRequest{})
	require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	resp.Body.Close()
}

func TestRefreshRotatesToken(t *testing.T) {
	ts := newTestServer(t)
	registered := ts.register(t, "erin")
	before := ts.refreshCookie(t).Value

	resp := ts.get(t, "/api/refresh")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var out lookbooksdk.AuthResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	require.Equal(t, registered.User.ID, out.User.ID)
	require.NotEmpty(t, out.AccessToken)

	after := ts.refreshCookie(t).Value
	require.NotEqual(t, before, after)
}

func TestRefreshWithoutCookie(t *testing.T) {
	ts := newTestServer(t)

	resp := ts.get(t, "/api/refresh")
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

func TestRefreshWithUnknownToken(t *testing.T) {
	ts := newTestServer(t)
	ts.register(t, "frank")

	// A token we signed ourselves but never stored.
	refresh, err := jwtx.NewHS256(testRefreshSecret, testIssuer)
	require.NoError(t, err)
	orphan, err := refresh.Sign(jwtx.NewRefreshClaims("frank", time.Hour, testIssuer, time.Now()))
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodGet, ts.URL+"/api/refresh", nil)
	require.NoError(t, err)
	req.AddCookie(&http.Cookie{Name: RefreshCookieName, Value: orphan})

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
	require.Equal(t, "Refresh token not recognized.", decodeError(t, resp))
}

func TestLogoutRevokesSession(t *testing.T) {
	ts := newTestServer(t)
	ts.register(t, "grace")

	resp := ts.get(t, "/api/logout")
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	// The jar dropped the expired cookie, so refresh now has nothing to send.
	resp = ts.get(t, "/api/refresh")
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

func TestLogoutRejectsRevokedToken(t *testing.T) {
	ts := newTestServer(t)
	ts.register(t, "heidi")
	revoked := ts.refreshCookie(t).Value

	resp := ts.get(t, "/api/logout")
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()

	// Replaying the revoked token from a fresh client is 403.
	req, err := http.NewRequest(http.MethodGet, ts.URL+"/api/refresh", nil)
	require.NoError(t, err)
	req.AddCookie(&http.Cookie{Name: RefreshCookieName, Value: revoked})

	replay, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusForbidden, replay.StatusCode)
	replay.Body.Close()
}

func TestLogoutWithoutCookieIsNoContent(t *testing.T) {
	ts := newTestServer(t)

	resp := ts.get(t, "/api/logout")
	require.Equal(t, http.StatusNoContent, resp.StatusCode)
	resp.Body.Close()
}

func TestProfileRequiresOwnership(t *testing.T) {
	ts := newTestServer(t)
	alice := ts.register(t, "alice")
	bob := ts.register(t, "bob")

	fetch := func(token, userID string) *http.Response {
		req, err := http.NewRequest(http.MethodGet, ts.URL+"/api/users/"+userID, nil)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Bearer "+token)
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		return resp
	}

	// Own profile works.
	resp := fetch(alice.AccessToken, alice.User.ID)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	var out lookbooksdk.UserSummary
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	resp.Body.Close()
	require.Equal(t, "alice", out.Username)

	// Someone else's profile is forbidden.
	resp = fetch(alice.AccessToken, bob.User.ID)
	require.Equal(t, http.StatusForbidden, resp.StatusCode)
	require.Equal(t, "Unauthorized user access", decodeError(t, resp))
}

func TestProfileRequiresToken(t *testing.T) {
	ts := newTestServer(t)
	alice := ts.register(t, "alice")

	resp, err := http.DefaultClient.Get(ts.URL + "/api/users/" + alice.User.ID)
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

func TestProfileRejectsExpiredToken(t *testing.T) {
	ts := newTestServer(t)
	alice := ts.register(t, "alice")

	signer, err := jwtx.NewHS256(testAccessSecret, testIssuer)
	require.NoError(t, err)
	stale, err := signer.Sign(jwtx.NewAccessClaims(
		alice.User.ID, "alice", []int{2001},
		-time.Minute, testIssuer, time.Now().Add(-time.Hour)))
	require.NoError(t, err)

	req, err := http.NewRequest(http.MethodGet, ts.URL+"/api/users/"+alice.User.ID, nil)
	require.NoError(t, err)
	req.Header.Set("Authorization", "Bearer "+stale)

	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	resp.Body.Close()
}

func TestHealthEndpoints(t *testing.T) {
	ts := newTestServer(t)

	resp := ts.get(t, "/livez")
	defer resp.Body.Close()
	require.Equal(t, http.StatusOK, resp.StatusCode)

	var health lookbooksdk.HealthResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&health))
	require.Equal(t, "ok", health.Status)

	ready := ts.get(t, "/readyz")
	defer ready.Body.Close()
	require.Equal(t, http.StatusOK, ready.StatusCode)
}

// The SDK session agent against the real server: transparent refresh after
// the access token dies, terminal failure once the cookie is revoked.
func TestSDKSessionAgainstServer(t *testing.T) {
	ts := newTestServer(t)

	client, err := lookbooksdk.NewClient(ts.URL)
	require.NoError(t, err)
	ctx := context.Background()

	session, err := client.Register(ctx, "ivan", "ivan@example.com", "hunter2!")
	require.NoError(t, err)
	require.Equal(t, "ivan", session.User().Username)

	req, err := http.NewRequestWithContext(ctx,
		http.MethodGet, ts.URL+"/api/users/"+session.User().ID, nil)
	require.NoError(t, err)

	resp, err := session.Do(req)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	resp.Body.Close()

	require.NoError(t, session.Logout(ctx))
	require.True(t, session.Expired())
}

package lookbooksdk

import (
	"context"
	"errors"
	"net/http"
	"sync"
	"time"
)

// ErrSessionExpired is returned once the silent refresh itself has failed.
// The session is terminal at that point; the caller should route the user
// back to login.
var ErrSessionExpired = errors.New("lookbooksdk: session expired")

// Session is an authenticated session with silent renewal. Every request
// gets the current access token attached; a 401 triggers exactly one
// refresh-and-replay before the failure is surfaced.
type Session struct {
	client *Client

	mu           sync.RWMutex
	accessToken  string
	user         UserSummary
	lastActivity time.Time
	expired      bool
}

func newSession(client *Client, auth *AuthResponse) *Session {
	return &Session{
		client:       client,
		accessToken:  auth.AccessToken,
		user:         auth.User,
		lastActivity: time.Now(),
	}
}

// Do sends req with the session's access token attached. On a 401 it
// performs one silent refresh and replays the request once; a second 401 is
// returned to the caller untouched. A failed refresh flips the session into
// a terminal expired state.
func (s *Session) Do(req *http.Request) (*http.Response, error) {
	s.mu.RLock()
	token := s.accessToken
	dead := s.expired
	s.mu.RUnlock()

	if dead {
		return nil, ErrSessionExpired
	}

	s.Touch()

	req.Header.Set("Authorization", "Bearer "+token)
	resp, err := s.client.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusUnauthorized {
		return resp, nil
	}

	// A request whose body cannot be rewound cannot be replayed safely.
	if req.Body != nil && req.GetBody == nil {
		return resp, nil
	}
	_ = resp.Body.Close()

	fresh, err := s.refresh(req, token)
	if err != nil {
		return nil, err
	}

	retry := req.Clone(req.Context())
	if req.GetBody != nil {
		body, err := req.GetBody()
		if err != nil {
			return nil, err
		}
		retry.Body = body
	}
	retry.Header.Set("Authorization", "Bearer "+fresh)

	return s.client.HTTPClient.Do(retry)
}

// refresh renews the access token through the bare client. The losing side
// of the race just reuses whatever token the winner stored.
func (s *Session) refresh(req *http.Request, failed string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.expired {
		return "", ErrSessionExpired
	}

	// Another request may have refreshed while we waited for the lock.
	if s.accessToken != failed {
		return s.accessToken, nil
	}

	auth, err := s.client.Refresh(req.Context())
	if err != nil {
		s.accessToken = ""
		s.expired = true
		return "", errors.Join(ErrSessionExpired, err)
	}

	s.accessToken = auth.AccessToken
	s.user = auth.User
	return s.accessToken, nil
}

// Logout revokes the session server-side and leaves it terminal locally.
func (s *Session) Logout(ctx context.Context) error {
	err := s.client.Logout(ctx)

	s.mu.Lock()
	s.accessToken = ""
	s.expired = true
	s.mu.Unlock()

	return err
}

// AccessToken returns the current access token.
func (s *Session) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

// User returns the account summary from the most recent issuance.
func (s *Session) User() UserSummary {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user
}

// Expired reports whether the session has reached its terminal state.
func (s *Session) Expired() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.expired
}

// Touch records user activity for idle tracking. Call it from UI event
// handlers (pointer, keyboard, scroll). Do already touches on every request.
func (s *Session) Touch() {
	s.mu.Lock()
	s.lastActivity = time.Now()
	s.mu.Unlock()
}

// IdleFor reports how long the session has been without activity.
func (s *Session) IdleFor() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return time.Since(s.lastActivity)
}

// IdleTimedOut reports whether the idle span exceeds limit. This is advisory
// UX for auto-logout; the server-side TTLs remain authoritative.
func (s *Session) IdleTimedOut(limit time.Duration) bool {
	return limit > 0 && s.IdleFor() > limit
}

package lookbooksdk

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"strings"
	"time"
)

// Client talks to the Lookbook auth API. It carries a cookie jar so the
// httpOnly refresh cookie set by login/register flows back on refresh and
// logout calls without the application ever seeing it.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

// NewClient creates a client for the given base URL.
func NewClient(baseURL string) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("lookbooksdk: cookie jar: %w", err)
	}

	return &Client{
		BaseURL: strings.TrimSuffix(baseURL, "/"),
		HTTPClient: &http.Client{
			Jar:     jar,
			Timeout: 10 * time.Second,
		},
	}, nil
}

// Login authenticates with username/password and returns an authenticated
// Session. The refresh cookie lands in the client's jar.
func (c *Client) Login(ctx context.Context, username, password string) (*Session, error) {
	resp, err := c.postJSON(ctx, "/api/login", LoginRequest{
		Username: username,
		Password: password,
	})
	if err != nil {
		return nil, err
	}
	return newSession(c, resp), nil
}

// Register creates a new account and returns an authenticated Session, the
// same shape login yields.
func (c *Client) Register(ctx context.Context, username, email, password string) (*Session, error) {
	resp, err := c.postJSON(ctx, "/api/register", RegisterRequest{
		Username: username,
		Email:    email,
		Password: password,
	})
	if err != nil {
		return nil, err
	}
	return newSession(c, resp), nil
}

// Refresh exchanges the refresh cookie for a fresh access token. The Session
// calls this internally on a 401; it deliberately goes through the bare HTTP
// client so a 401 from the refresh endpoint itself is never intercepted.
func (c *Client) Refresh(ctx context.Context) (*AuthResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url("/api/refresh"), nil)
	if err != nil {
		return nil, fmt.Errorf("lookbooksdk: build refresh request: %w", err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("lookbooksdk: refresh: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if err := parseErrorResponse(resp); err != nil {
		return nil, err
	}

	var auth AuthResponse
	if err := json.NewDecoder(resp.Body).Decode(&auth); err != nil {
		return nil, fmt.Errorf("lookbooksdk: decode refresh response: %w", err)
	}
	return &auth, nil
}

// Logout invalidates the server-side refresh slot and clears the cookie.
// The server never fails a logout, so only transport errors surface.
func (c *Client) Logout(ctx context.Context) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url("/api/logout"), nil)
	if err != nil {
		return fmt.Errorf("lookbooksdk: build logout request: %w", err)
	}

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("lookbooksdk: logout: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	return parseErrorResponse(resp)
}

func (c *Client) url(path string) string {
	return c.BaseURL + path
}

func (c *Client) postJSON(ctx context.Context, path string, body any) (*AuthResponse, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return nil, fmt.Errorf("lookbooksdk: encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(
		ctx, http.MethodPost, c.url(path), bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("lookbooksdk: build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("lookbooksdk: %s: %w", path, err)
	}
	defer func() { _ = resp.Body.Close() }()

	if err := parseErrorResponse(resp); err != nil {
		return nil, err
	}

	var auth AuthResponse
	if err := json.NewDecoder(resp.Body).Decode(&auth); err != nil {
		return nil, fmt.Errorf("lookbooksdk: decode response: %w", err)
	}
	return &auth, nil
}

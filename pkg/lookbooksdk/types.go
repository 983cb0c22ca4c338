package lookbooksdk

// UserSummary is the public view of an account returned by login, register
// and refresh. It never includes the password hash or the refresh token.
type UserSummary struct {
	ID       string         `json:"id"`
	Username string         `json:"username"`
	Roles    map[string]int `json:"roles"`
}

// AuthResponse is the body of a successful login/register/refresh call. The
// refresh token itself travels only in the httpOnly cookie, never here.
type AuthResponse struct {
	AccessToken string      `json:"accessToken"`
	User        UserSummary `json:"user"`
}

// LoginRequest is the body of POST /api/login.
type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"pwd"`
}

// RegisterRequest is the body of POST /api/register.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"pwd"`
}

// ErrorResponse is the body of every non-2xx API response.
type ErrorResponse struct {
	Message string `json:"message"`
}

// HealthChecks reports the state of each dependency probed by /readyz.
type HealthChecks struct {
	Database string `json:"database,omitempty"`
}

// HealthResponse is returned by the /livez and /readyz probes.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime"`
	Version string        `json:"version"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

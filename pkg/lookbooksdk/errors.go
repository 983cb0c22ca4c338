package lookbooksdk

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// APIError is the error shape of the Lookbook API. The server uses it to
// write HTTP responses and the SDK to represent them.
type APIError struct {
	// StatusCode is the HTTP status code for this error.
	StatusCode int `json:"-"`

	// Message is the human-readable description returned to the client.
	Message string `json:"message"`
}

// Error implements the error interface.
func (e *APIError) Error() string {
	return fmt.Sprintf("%d: %s", e.StatusCode, e.Message)
}

// WriteError writes this APIError to an HTTP response writer.
func (e *APIError) WriteError(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "application/json")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(e.StatusCode)
	_ = json.NewEncoder(w).Encode(ErrorResponse{Message: e.Message})
}

// Predefined API errors. The login failures share one shape on purpose so
// the response never reveals whether the username exists.
var (
	ErrMissingCredentials = &APIError{
		StatusCode: http.StatusBadRequest,
		Message:    "Username and password are required.",
	}

	ErrMissingFields = &APIError{
		StatusCode: http.StatusBadRequest,
		Message:    "Username, email, and password required.",
	}

	ErrBadCredentials = &APIError{
		StatusCode: http.StatusUnauthorized,
		Message:    "Invalid username or password.",
	}

	ErrMissingRefreshCookie = &APIError{
		StatusCode: http.StatusUnauthorized,
		Message:    "Refresh cookie required.",
	}

	ErrRefreshRejected = &APIError{
		StatusCode: http.StatusForbidden,
		Message:    "Refresh token not recognized.",
	}

	ErrUsernameTaken = &APIError{
		StatusCode: http.StatusConflict,
		Message:    "Account with this username already exists",
	}

	ErrEmailTaken = &APIError{
		StatusCode: http.StatusConflict,
		Message:    "Account with this email already exists",
	}

	ErrInvalidToken = &APIError{
		StatusCode: http.StatusUnauthorized,
		Message:    "Access token is missing, invalid or expired.",
	}

	ErrUserIDRequired = &APIError{
		StatusCode: http.StatusBadRequest,
		Message:    "User ID required",
	}

	ErrNotOwner = &APIError{
		StatusCode: http.StatusForbidden,
		Message:    "Unauthorized user access",
	}

	ErrServerError = &APIError{
		StatusCode: http.StatusInternalServerError,
		Message:    "Internal server error",
	}
)

// NewAPIError creates an APIError with a custom status code and message.
func NewAPIError(statusCode int, message string) *APIError {
	return &APIError{StatusCode: statusCode, Message: message}
}

// parseErrorResponse turns a non-2xx response into an *APIError. Returns nil
// for 2xx responses.
func parseErrorResponse(resp *http.Response) error {
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return nil
	}

	body, _ := io.ReadAll(io.LimitReader(resp.Body, 1<<16))

	var errResp ErrorResponse
	if err := json.Unmarshal(body, &errResp); err == nil && errResp.Message != "" {
		return &APIError{StatusCode: resp.StatusCode, Message: errResp.Message}
	}

	return &APIError{
		StatusCode: resp.StatusCode,
		Message:    http.StatusText(resp.StatusCode),
	}
}

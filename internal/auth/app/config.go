package app

import (
	"errors"
	"os"
	"strconv"
	"time"

	"github.com/lookbook-app/lookbook/pkg/jwtx"
)

type Config struct {
	Issuer string // Optional: issuer claim for tokens (default: lookbook-auth)

	AccessSecret  string // Required: HMAC secret for access tokens
	RefreshSecret string // Required: HMAC secret for refresh tokens, must differ from AccessSecret

	AccessTTL  time.Duration // Optional: access token lifetime (default: 30m)
	RefreshTTL time.Duration // Optional: refresh token lifetime (default: 24h)

	DatabaseFile         string        // Optional: path to SQLite database file (default: ./lookbook.db)
	CookieSecure         bool          // Optional: mark the refresh cookie Secure (default: true)
	Env                  string        // Environment (dev, staging, prod) (default: dev)
	LogLevel             string        // Log level (debug, info, warn, error) (default: info)
	LogFormat            string        // Log format (json, text) (default: json)
	Port                 int           // HTTP server port (default: 8080)
	ShutdownGracePeriod  time.Duration // Graceful shutdown timeout (default: 10s)
	HousekeepingInterval time.Duration // Housekeeping interval (default: 1h)
}

var ErrSameSecret = errors.New("access and refresh secrets must differ")

func LoadConfig() Config {
	return Config{
		Issuer:               getEnvOrDefault("AUTH_ISSUER", "lookbook-auth"),
		AccessSecret:         os.Getenv("AUTH_ACCESS_SECRET"),
		RefreshSecret:        os.Getenv("AUTH_REFRESH_SECRET"),
		AccessTTL:            getEnvDurationOrDefault("ACCESS_TOKEN_TTL", jwtx.DefaultAccessTokenTTL),
		RefreshTTL:           getEnvDurationOrDefault("REFRESH_TOKEN_TTL", jwtx.DefaultRefreshTokenTTL),
		DatabaseFile:         getEnvOrDefault("AUTH_DATABASE_FILE", "lookbook.db"),
		CookieSecure:         getEnvBoolOrDefault("COOKIE_SECURE", true),
		Env:                  getEnvOrDefault("ENV", "dev"),
		LogLevel:             getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:            getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                 getEnvIntOrDefault("PORT", 8080),
		ShutdownGracePeriod:  getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
		HousekeepingInterval: getEnvDurationOrDefault("HOUSEKEEPING_INTERVAL", 1*time.Hour),
	}
}

// Validate catches misconfigurations that would otherwise surface as token
// verification failures at runtime. Using one secret for both token kinds
// would let a refresh token pass as an access token.
func (c Config) Validate() error {
	if c.AccessSecret == "" {
		return errors.New("AUTH_ACCESS_SECRET is required")
	}
	if c.RefreshSecret == "" {
		return errors.New("AUTH_REFRESH_SECRET is required")
	}
	if c.AccessSecret == c.RefreshSecret {
		return ErrSameSecret
	}
	return nil
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntOrDefault(key string, defaultValue int) int {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if intValue, err := strconv.Atoi(value); err == nil {
		return intValue
	}

	return defaultValue
}

func getEnvBoolOrDefault(key string, defaultValue bool) bool {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if boolValue, err := strconv.ParseBool(value); err == nil {
		return boolValue
	}

	return defaultValue
}

func getEnvDurationOrDefault(key string, defaultValue time.Duration) time.Duration {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	// Try parsing as duration (e.g., "1h", "30m", "90s")
	if duration, err := time.ParseDuration(value); err == nil {
		return duration
	}

	// Try parsing as integer minutes
	if minutes, err := strconv.Atoi(value); err == nil {
		return time.Duration(minutes) * time.Minute
	}

	return defaultValue
}

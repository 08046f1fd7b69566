package internal

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Env      string
	Port     int
	LogLevel string

	// Remote API
	APIBaseURL              string
	MaintenanceStatusURL    string        // Defaults to APIBaseURL + "/maintenance/status"
	MaintenanceCheckTimeout time.Duration // Bounds the per-navigation gate check
	APITimeout              time.Duration

	// Session cookie lifetime in seconds
	SessionMaxAge int

	// Login rate limiting
	LoginMaxAttempts int
	LoginWindow      time.Duration

	// Content storage for legal pages
	ContentProvider string // "local" or "r2"
	ContentPath     string

	R2AccountID       string
	R2AccessKeyID     string
	R2SecretAccessKey string
	R2BucketName      string
	R2Endpoint        string // Optional override (S3-compatible mocks)

	// Metrics endpoint authentication
	// If both are empty, the /metrics endpoint will be unprotected (not recommended)
	MetricsUsername string
	MetricsPassword string
}

func NewConfig() (*Config, error) {
	// Load .env file if it exists (ignored in production)
	_ = godotenv.Load()

	cfg := &Config{
		Env:      getEnv("ENV", "development"),
		Port:     getEnvInt("PORT", 8080),
		LogLevel: getEnv("LOG_LEVEL", "debug"),

		MaintenanceCheckTimeout: getEnvDuration("MAINTENANCE_CHECK_TIMEOUT", 3*time.Second),
		APITimeout:              getEnvDuration("API_TIMEOUT", 10*time.Second),

		SessionMaxAge: getEnvInt("SESSION_MAX_AGE", 180),

		LoginMaxAttempts: getEnvInt("LOGIN_MAX_ATTEMPTS", 5),
		LoginWindow:      getEnvDuration("LOGIN_WINDOW", 15*time.Minute),

		ContentProvider: getEnv("CONTENT_PROVIDER", "local"),
		ContentPath:     getEnv("CONTENT_PATH", "./content"),

		R2AccountID:       getEnv("R2_ACCOUNT_ID", ""),
		R2AccessKeyID:     getEnv("R2_ACCESS_KEY_ID", ""),
		R2SecretAccessKey: getEnv("R2_SECRET_ACCESS_KEY", ""),
		R2BucketName:      getEnv("R2_BUCKET_NAME", ""),
		R2Endpoint:        getEnv("R2_ENDPOINT", ""),

		MetricsUsername: getEnv("METRICS_USERNAME", ""),
		MetricsPassword: getEnv("METRICS_PASSWORD", ""),
	}

	// Required
	cfg.APIBaseURL = strings.TrimSuffix(os.Getenv("API_BASE_URL"), "/")
	if cfg.APIBaseURL == "" {
		return nil, fmt.Errorf("API_BASE_URL is required")
	}
	cfg.MaintenanceStatusURL = getEnv("MAINTENANCE_STATUS_URL", cfg.APIBaseURL+"/maintenance/status")

	if cfg.SessionMaxAge <= 0 {
		return nil, fmt.Errorf("SESSION_MAX_AGE must be positive, got: %d", cfg.SessionMaxAge)
	}

	switch cfg.ContentProvider {
	case "local":
	case "r2":
		if cfg.R2AccountID == "" && cfg.R2Endpoint == "" {
			return nil, fmt.Errorf("R2_ACCOUNT_ID is required when CONTENT_PROVIDER is 'r2'")
		}
		if cfg.R2AccessKeyID == "" {
			return nil, fmt.Errorf("R2_ACCESS_KEY_ID is required when CONTENT_PROVIDER is 'r2'")
		}
		if cfg.R2SecretAccessKey == "" {
			return nil, fmt.Errorf("R2_SECRET_ACCESS_KEY is required when CONTENT_PROVIDER is 'r2'")
		}
		if cfg.R2BucketName == "" {
			return nil, fmt.Errorf("R2_BUCKET_NAME is required when CONTENT_PROVIDER is 'r2'")
		}
	default:
		return nil, fmt.Errorf("CONTENT_PROVIDER must be either 'local' or 'r2', got: %s", cfg.ContentProvider)
	}

	return cfg, nil
}

// IsSecure reports whether cookies and headers should assume HTTPS.
func (c *Config) IsSecure() bool {
	return c.Env != "development"
}

func getEnv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return fallback
}

func getEnvDuration(key string, fallback time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return fallback
}

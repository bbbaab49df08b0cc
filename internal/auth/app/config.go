package app

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/aussiebroadwan/instamedia/internal/auth/mail"
)

const (
	DriverSQLite   = "sqlite"
	DriverPostgres = "postgres"

	envProduction = "production"
)

type Config struct {
	Issuer string // Optional: issuer claim for tokens (default: instamedia-auth)

	AccessSecret     string        // Required in production: HMAC secret for access tokens
	RefreshSecret    string        // Required in production: HMAC secret for refresh tokens
	ActivationSecret string        // Required in production: HMAC secret for activation and reset tokens
	TokenLeeway      time.Duration // Optional: clock skew tolerated when checking exp (default: 0)

	DatabaseDriver string // Optional: sqlite or postgres (default: sqlite)
	DatabaseFile   string // Optional: path to SQLite database file (default: ./auth.db)
	DatabaseURL    string // Required for postgres: connection string
	PepperFile     string // Optional: path to file containing pepper for password hashing (default: ./pepper)

	PasswordMinEntropy float64 // Optional: entropy floor for new passwords, 0 disables (default: 0)
	FrontendURL        string  // Optional: origin used for email links and CORS (default: http://localhost:3000)
	SMTP               mail.SMTPConfig

	Env                 string        // Environment (dev, staging, production) (default: dev)
	LogLevel            string        // Log level (debug, info, warn, error) (default: info)
	LogFormat           string        // Log format (json, text) (default: json)
	Port                int           // HTTP server port (default: 5000)
	ShutdownGracePeriod time.Duration // Graceful shutdown timeout (default: 10s)
}

// LoadConfig reads the configuration from the environment. A .env file in
// the working directory is loaded first when present; real environment
// variables win over it.
func LoadConfig() Config {
	_ = godotenv.Load() // optional

	return Config{
		Issuer:             getEnvOrDefault("AUTH_ISSUER", "instamedia-auth"),
		AccessSecret:       os.Getenv("JWT_ACCESS_SECRET"),
		RefreshSecret:      os.Getenv("JWT_REFRESH_SECRET"),
		ActivationSecret:   os.Getenv("JWT_ACTIVATION_SECRET"),
		TokenLeeway:        getEnvDurationOrDefault("JWT_LEEWAY", 0),
		DatabaseDriver:     strings.ToLower(getEnvOrDefault("AUTH_DATABASE_DRIVER", DriverSQLite)),
		DatabaseFile:       getEnvOrDefault("AUTH_DATABASE_FILE", "auth.db"),
		DatabaseURL:        os.Getenv("AUTH_DATABASE_URL"),
		PepperFile:         getEnvOrDefault("AUTH_PEPPER_FILE", "pepper"),
		PasswordMinEntropy: getEnvFloatOrDefault("AUTH_PASSWORD_MIN_ENTROPY", 0),
		FrontendURL:        strings.TrimRight(getEnvOrDefault("FRONTEND_URL", "http://localhost:3000"), "/"),
		SMTP: mail.SMTPConfig{
			Host:     os.Getenv("EMAIL_HOST"),
			Port:     getEnvIntOrDefault("EMAIL_PORT", 587),
			Username: os.Getenv("EMAIL_USER"),
			Password: os.Getenv("EMAIL_PASS"),
			From:     getEnvOrDefault("EMAIL_FROM", os.Getenv("EMAIL_USER")),
		},
		Env:                 getEnvOrDefault("ENV", "dev"),
		LogLevel:            getEnvOrDefault("LOG_LEVEL", "info"),
		LogFormat:           getEnvOrDefault("LOG_FORMAT", "json"),
		Port:                getEnvIntOrDefault("PORT", 5000),
		ShutdownGracePeriod: getEnvDurationOrDefault("SHUTDOWN_GRACE_PERIOD", 10*time.Second),
	}
}

// Production reports whether cookies must be Secure and secrets supplied.
func (c Config) Production() bool {
	return strings.EqualFold(c.Env, envProduction)
}

// Validate checks the settings that cannot be defaulted.
func (c Config) Validate() error {
	var errs []error

	switch c.DatabaseDriver {
	case DriverSQLite:
		if c.DatabaseFile == "" {
			errs = append(errs, errors.New("AUTH_DATABASE_FILE is required for the sqlite driver"))
		}
	case DriverPostgres:
		if c.DatabaseURL == "" {
			errs = append(errs, errors.New("AUTH_DATABASE_URL is required for the postgres driver"))
		}
	default:
		errs = append(errs, fmt.Errorf("unknown AUTH_DATABASE_DRIVER %q", c.DatabaseDriver))
	}

	if c.TokenLeeway < 0 || c.TokenLeeway > time.Minute {
		errs = append(errs, fmt.Errorf("JWT_LEEWAY must be between 0 and 1m, got %s", c.TokenLeeway))
	}

	if c.Production() {
		if c.AccessSecret == "" || c.RefreshSecret == "" || c.ActivationSecret == "" {
			errs = append(errs, errors.New("JWT_ACCESS_SECRET, JWT_REFRESH_SECRET and JWT_ACTIVATION_SECRET are required in production"))
		}
		if c.SMTP.Host == "" {
			errs = append(errs, errors.New("EMAIL_HOST is required in production"))
		}
	}

	return errors.Join(errs...)
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

func getEnvFloatOrDefault(key string, defaultValue float64) float64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}

	if f, err := strconv.ParseFloat(value, 64); err == nil {
		return f
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

	// Try parsing as integer seconds
	if seconds, err := strconv.Atoi(value); err == nil {
		return time.Duration(seconds) * time.Second
	}

	return defaultValue
}

package config

import (
	"errors"
	"os"
	"strconv"
)

// Config holds the HTTP server's environment-derived settings.
type Config struct {
	Port                  string
	SessionSecret         string
	DefaultIterationLimit int
}

// Load loads configuration from environment variables. Returns an error
// if SESSION_SECRET is not set, is the placeholder value, or is too
// short to sign session handles with.
func Load() (*Config, error) {
	secret := os.Getenv("SESSION_SECRET")

	if secret == "" {
		return nil, errors.New("SECURITY ERROR: SESSION_SECRET environment variable is required but not set")
	}
	if secret == "changeme" {
		return nil, errors.New("SECURITY ERROR: SESSION_SECRET cannot be 'changeme' - please set a secure secret")
	}
	if len(secret) < 32 {
		return nil, errors.New("SECURITY ERROR: SESSION_SECRET must be at least 32 characters long")
	}

	limit, err := strconv.Atoi(getEnv("DEFAULT_ITERATION_LIMIT", "0"))
	if err != nil || limit < 0 {
		return nil, errors.New("DEFAULT_ITERATION_LIMIT must be a non-negative integer")
	}

	return &Config{
		Port:                  getEnv("PORT", "8080"),
		SessionSecret:         secret,
		DefaultIterationLimit: limit,
	}, nil
}

func getEnv(key, fallback string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return fallback
}

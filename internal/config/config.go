// Package config provides application configuration loading from environment variables.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

// Config holds all application configuration.
type Config struct {
	Server     ServerConfig
	Log        LogConfig
	Activities ActivitiesConfig
}

// ServerConfig contains HTTP server settings.
type ServerConfig struct {
	Host            string
	Port            string
	GinMode         string
	StaticDir       string
	ShutdownTimeout time.Duration
}

// LogConfig contains zap logger settings.
type LogConfig struct {
	Level  string
	Format string
}

// ActivitiesConfig contains roster rules.
type ActivitiesConfig struct {
	EnforceCapacity bool
}

// Load reads configuration from an optional .env file and environment variables.
// Returns error if a variable is set to a value that cannot be parsed.
func Load() (*Config, error) {
	_ = godotenv.Load()

	enforceCapacity, err := getBoolEnv("ENFORCE_CAPACITY", false)
	if err != nil {
		return nil, err
	}

	shutdownTimeout, err := getDurationEnv("SHUTDOWN_TIMEOUT", 5*time.Second)
	if err != nil {
		return nil, err
	}

	cfg := &Config{
		Server: ServerConfig{
			Host:            getEnv("SERVER_HOST", "0.0.0.0"),
			Port:            getEnv("SERVER_PORT", "8000"),
			GinMode:         getEnv("GIN_MODE", "release"),
			StaticDir:       getEnv("STATIC_DIR", "static"),
			ShutdownTimeout: shutdownTimeout,
		},
		Log: LogConfig{
			Level:  getEnv("LOG_LEVEL", "info"),
			Format: getEnv("LOG_FORMAT", "console"),
		},
		Activities: ActivitiesConfig{
			EnforceCapacity: enforceCapacity,
		},
	}

	return cfg, nil
}

// Addr returns the address the HTTP server listens on.
func (c *ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%s", c.Host, c.Port)
}

// getEnv reads environment variable or returns fallback when unset or empty.
func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getBoolEnv(key string, fallback bool) (bool, error) {
	value := getEnv(key, "")
	if value == "" {
		return fallback, nil
	}
	parsed, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("environment variable %s must be a boolean: %w", key, err)
	}
	return parsed, nil
}

func getDurationEnv(key string, fallback time.Duration) (time.Duration, error) {
	value := getEnv(key, "")
	if value == "" {
		return fallback, nil
	}
	parsed, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("environment variable %s must be a duration: %w", key, err)
	}
	return parsed, nil
}

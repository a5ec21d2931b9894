// Package config centralises configuration parsing for the activities service.
package config

import (
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Config captures runtime configuration values for the activities service.
type Config struct {
	HTTPAddress     string
	StaticDir       string
	LogLevel        string
	LogFormat       string
	ShutdownTimeout time.Duration
}

// Load reads environment variables into Config, applying sensible defaults
// for local dev. A .env file in the working directory is honoured if present.
func Load() Config {
	_ = godotenv.Load()

	return Config{
		HTTPAddress:     getEnv("HTTP_ADDRESS", ":8080"),
		StaticDir:       getEnv("STATIC_DIR", "./static"),
		LogLevel:        getEnv("LOG_LEVEL", "info"),
		LogFormat:       getEnv("LOG_FORMAT", "json"),
		ShutdownTimeout: getDurationEnv("SHUTDOWN_TIMEOUT", 10*time.Second),
	}
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		return value
	}
	return fallback
}

func getDurationEnv(key string, fallback time.Duration) time.Duration {
	if value, ok := os.LookupEnv(key); ok && value != "" {
		if parsed, err := time.ParseDuration(value); err == nil {
			return parsed
		}
	}
	return fallback
}

package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-playground/validator/v10"
)

type Config struct {
	Server   ServerConfig
	Logging  LoggingConfig
	Upstream UpstreamConfig
	Tenants  TenantsConfig
}

type ServerConfig struct {
	Port string `validate:"required"`
}

type LoggingConfig struct {
	Level  string `validate:"oneof=debug info warn error"`
	Format string `validate:"oneof=text json"`
	// Directory enables an additional daily log file when non-empty.
	Directory string
}

type UpstreamConfig struct {
	// Timeout bounds every outbound provider call.
	Timeout time.Duration `validate:"gt=0"`
}

type TenantsConfig struct {
	// File optionally points at a JSON array of tenant configurations
	// merged over the built-in seed tenants at boot.
	File string
}

// Load reads the environment and validates the result. Defaults keep a bare
// environment runnable.
func Load() (*Config, error) {
	timeout, err := time.ParseDuration(envOr("UPSTREAM_TIMEOUT", "10s"))
	if err != nil {
		return nil, fmt.Errorf("parse UPSTREAM_TIMEOUT: %w", err)
	}

	cfg := &Config{
		Server: ServerConfig{
			Port: envOr("PORT", "3001"),
		},
		Logging: LoggingConfig{
			Level:     envOr("LOG_LEVEL", "info"),
			Format:    envOr("LOG_FORMAT", "text"),
			Directory: os.Getenv("LOG_DIR"),
		},
		Upstream: UpstreamConfig{
			Timeout: timeout,
		},
		Tenants: TenantsConfig{
			File: os.Getenv("TENANTS_FILE"),
		},
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("validate config: %w", err)
	}
	return cfg, nil
}

func envOr(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v10"
)

// AppName identifies the service in the greeting and version responses
const AppName = "Go ML GitOps"

// DefaultAppVersion is reported when APP_VERSION is absent or empty
const DefaultAppVersion = "v1"

// Config holds all configuration for the ML GitOps service.
// AppVersion is the only value that changes the service responses; the
// remaining fields are operational knobs.
type Config struct {
	AppVersion string `env:"APP_VERSION" envDefault:"v1"`

	// Server configuration
	HTTPPort int    `env:"HTTP_PORT" envDefault:"8000"`
	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`

	// Timeouts
	ShutdownTimeout time.Duration `env:"SHUTDOWN_TIMEOUT" envDefault:"15s"`
}

// Load reads configuration from environment variables
func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	// APP_VERSION set to the empty string counts as absent; the env
	// default only covers the unset case.
	if cfg.AppVersion == "" {
		cfg.AppVersion = DefaultAppVersion
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}

	return cfg, nil
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	if c.HTTPPort < 1 || c.HTTPPort > 65535 {
		return fmt.Errorf("invalid HTTP port: %d", c.HTTPPort)
	}

	if c.ShutdownTimeout <= 0 {
		return fmt.Errorf("shutdown timeout must be positive: %s", c.ShutdownTimeout)
	}

	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
	}
	if !validLogLevels[c.LogLevel] {
		return fmt.Errorf("invalid log level: %s (must be debug, info, warn, or error)", c.LogLevel)
	}

	return nil
}

// GetHTTPAddr returns the HTTP server address
func (c *Config) GetHTTPAddr() string {
	return fmt.Sprintf(":%d", c.HTTPPort)
}

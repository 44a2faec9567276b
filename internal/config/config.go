package config

import (
	"fmt"

	"github.com/kelseyhightower/envconfig"
)

// Environment represents different deployment environments.
type Environment string

const (
	EnvDevelopment Environment = "development"
	EnvTesting     Environment = "testing"
	EnvProduction  Environment = "production"
)

// Config holds the configuration for the directory service.
// Environment variables are parsed from the STAYHUB_ prefix, e.g.
// STAYHUB_HTTP_PORT, STAYHUB_LOG_LEVEL.
type Config struct {
	Environment Environment `envconfig:"ENVIRONMENT" default:"development"`

	// HTTP configuration
	HTTPPort int `envconfig:"HTTP_PORT" default:"8080"`

	// Server timeouts, in seconds
	ReadTimeoutSeconds     int `envconfig:"READ_TIMEOUT_SECONDS" default:"15"`
	WriteTimeoutSeconds    int `envconfig:"WRITE_TIMEOUT_SECONDS" default:"15"`
	IdleTimeoutSeconds     int `envconfig:"IDLE_TIMEOUT_SECONDS" default:"60"`
	ShutdownTimeoutSeconds int `envconfig:"SHUTDOWN_TIMEOUT_SECONDS" default:"10"`

	LogLevel string `envconfig:"LOG_LEVEL" default:"info"`
}

// New creates a new Config by parsing environment variables.
func New() (*Config, error) {
	var cfg Config
	if err := envconfig.Process("STAYHUB", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process environment variables: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// Validate rejects configurations the server cannot start with.
func (c *Config) Validate() error {
	switch c.Environment {
	case EnvDevelopment, EnvTesting, EnvProduction:
	default:
		return fmt.Errorf("unsupported ENVIRONMENT: %s", c.Environment)
	}
	if c.HTTPPort <= 0 || c.HTTPPort > 65535 {
		return fmt.Errorf("invalid HTTP_PORT: %d", c.HTTPPort)
	}
	return nil
}

// NewForTesting creates a config suitable for tests without touching
// the environment.
func NewForTesting() *Config {
	return &Config{
		Environment:            EnvTesting,
		HTTPPort:               8080,
		ReadTimeoutSeconds:     15,
		WriteTimeoutSeconds:    15,
		IdleTimeoutSeconds:     60,
		ShutdownTimeoutSeconds: 10,
		LogLevel:               "error",
	}
}

// IsTesting returns true if the environment is set to testing.
func (c *Config) IsTesting() bool { return c.Environment == EnvTesting }

// IsProduction returns true if the environment is set to production.
func (c *Config) IsProduction() bool { return c.Environment == EnvProduction }

// GetHTTPAddr returns the HTTP server address.
func (c *Config) GetHTTPAddr() string { return fmt.Sprintf(":%d", c.HTTPPort) }

package config

import (
	"fmt"
	"log/slog"
	"net"
	"os"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

// Config holds all application configuration loaded from environment variables.
type Config struct {
	Host     string `envconfig:"SITE_HOST" default:"127.0.0.1"`
	Port     int    `envconfig:"SITE_PORT" default:"8080"`
	LogLevel string `envconfig:"SITE_LOG_LEVEL" default:"info"`
	LogDir   string `envconfig:"SITE_LOG_DIR" default:"./logs"`
	SiteFile string `envconfig:"SITE_FILE" default:"./site.yaml"`

	RateLimitRPS   float64 `envconfig:"SITE_RATE_LIMIT_RPS" default:"20"`
	RateLimitBurst int     `envconfig:"SITE_RATE_LIMIT_BURST" default:"40"`
}

// Load reads configuration from .env file (if present) then from environment variables.
// Environment variables override .env values.
func Load() (*Config, error) {
	// godotenv does NOT override already-set env vars.
	envFiles := []string{".env"}
	for _, f := range envFiles {
		if _, err := os.Stat(f); err == nil {
			if err := godotenv.Load(f); err != nil {
				slog.Warn("failed to load .env file", "file", f, "error", err)
			} else {
				slog.Info("loaded .env file", "file", f)
			}
		}
	}

	var cfg Config
	if err := envconfig.Process("", &cfg); err != nil {
		return nil, fmt.Errorf("failed to process env config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate checks configuration values for correctness.
func (c *Config) Validate() error {
	if c.Host == "" {
		return fmt.Errorf("%w: host must not be empty", ErrInvalidConfig)
	}
	if c.Port < 1 || c.Port > 65535 {
		return fmt.Errorf("%w: port must be 1-65535, got %d", ErrInvalidConfig, c.Port)
	}
	if c.RateLimitRPS > 0 && c.RateLimitBurst < 1 {
		return fmt.Errorf("%w: rate limit burst must be at least 1 when rate limiting is enabled, got %d", ErrInvalidConfig, c.RateLimitBurst)
	}
	return nil
}

// Addr returns the host:port the server listens on.
func (c *Config) Addr() string {
	return net.JoinHostPort(c.Host, fmt.Sprint(c.Port))
}

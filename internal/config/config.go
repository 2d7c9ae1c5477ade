// Locus - Background Geolocation Payload Normalization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/locus

package config

import (
	"fmt"
	"time"

	"github.com/tomtom215/locus/internal/validation"
)

// Config is the root configuration for the Locus server.
type Config struct {
	Server  ServerConfig  `koanf:"server"`
	Ingest  IngestConfig  `koanf:"ingest"`
	Logging LoggingConfig `koanf:"logging"`
	Metrics MetricsConfig `koanf:"metrics"`
}

// ServerConfig holds HTTP server settings.
type ServerConfig struct {
	Host string `koanf:"host" validate:"required"`
	Port int    `koanf:"port" validate:"min=1,max=65535"`

	ReadTimeout     time.Duration `koanf:"read_timeout"`
	WriteTimeout    time.Duration `koanf:"write_timeout"`
	ShutdownTimeout time.Duration `koanf:"shutdown_timeout"`
}

// Addr returns the listen address in host:port form.
func (s ServerConfig) Addr() string {
	return fmt.Sprintf("%s:%d", s.Host, s.Port)
}

// IngestConfig holds settings for the location ingest endpoint.
type IngestConfig struct {
	// MaxBodyBytes caps the accepted request body size. Batch uploads from
	// mobile clients flushing an offline buffer can be large.
	MaxBodyBytes int64 `koanf:"max_body_bytes" validate:"min=1024"`

	// Secret enables HMAC-SHA256 signature verification of ingest bodies
	// via the X-Locus-Signature header. Empty disables verification.
	Secret string `koanf:"secret" validate:"omitempty,min=16"`

	// Rate limiting applied per client IP.
	RateLimitRequests int           `koanf:"rate_limit_requests" validate:"min=1"`
	RateLimitWindow   time.Duration `koanf:"rate_limit_window"`

	// CORSOrigins lists allowed origins. Empty denies cross-origin access;
	// mobile SDK clients do not need CORS, browser dashboards do.
	CORSOrigins []string `koanf:"cors_origins"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `koanf:"level" validate:"oneof=trace debug info warn error fatal panic disabled"`
	Format string `koanf:"format" validate:"oneof=json console"`
	Caller bool   `koanf:"caller"`
}

// MetricsConfig holds Prometheus exposition settings.
type MetricsConfig struct {
	Enabled bool `koanf:"enabled"`
}

// defaultConfig returns a Config with all default values. Defaults are
// applied first, then overridden by the config file and environment.
func defaultConfig() *Config {
	return &Config{
		Server: ServerConfig{
			Host:            "0.0.0.0",
			Port:            8750,
			ReadTimeout:     15 * time.Second,
			WriteTimeout:    15 * time.Second,
			ShutdownTimeout: 10 * time.Second,
		},
		Ingest: IngestConfig{
			MaxBodyBytes:      1 << 20, // 1MB covers multi-hundred sample batches
			Secret:            "",
			RateLimitRequests: 300,
			RateLimitWindow:   time.Minute,
			CORSOrigins:       []string{},
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "json",
			Caller: false,
		},
		Metrics: MetricsConfig{
			Enabled: true,
		},
	}
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if err := validation.ValidateStruct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if c.Server.ShutdownTimeout <= 0 {
		return fmt.Errorf("server.shutdown_timeout must be positive, got %s", c.Server.ShutdownTimeout)
	}
	if c.Ingest.RateLimitWindow <= 0 {
		return fmt.Errorf("ingest.rate_limit_window must be positive, got %s", c.Ingest.RateLimitWindow)
	}
	return nil
}

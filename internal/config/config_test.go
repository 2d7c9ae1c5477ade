// Locus - Background Geolocation Payload Normalization
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/locus

package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

// chdirTemp runs the test from an empty directory so stray config.yaml
// files in the working tree cannot leak into Load().
func chdirTemp(t *testing.T) {
	t.Helper()
	dir := t.TempDir()
	old, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir: %v", err)
	}
	t.Cleanup(func() { _ = os.Chdir(old) })
}

func TestLoadDefaults(t *testing.T) {
	chdirTemp(t)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Server.Port != 8750 {
		t.Errorf("Server.Port = %d, want 8750", cfg.Server.Port)
	}
	if cfg.Server.Host != "0.0.0.0" {
		t.Errorf("Server.Host = %q, want 0.0.0.0", cfg.Server.Host)
	}
	if cfg.Ingest.MaxBodyBytes != 1<<20 {
		t.Errorf("Ingest.MaxBodyBytes = %d, want %d", cfg.Ingest.MaxBodyBytes, 1<<20)
	}
	if cfg.Logging.Level != "info" || cfg.Logging.Format != "json" {
		t.Errorf("Logging = %+v, want info/json defaults", cfg.Logging)
	}
	if !cfg.Metrics.Enabled {
		t.Error("Metrics.Enabled = false, want true by default")
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	chdirTemp(t)

	t.Setenv("LOCUS_SERVER_PORT", "9100")
	t.Setenv("LOCUS_LOG_LEVEL", "debug")
	t.Setenv("LOCUS_INGEST_RATE_LIMIT_WINDOW", "30s")
	t.Setenv("LOCUS_INGEST_CORS_ORIGINS", "https://a.example, https://b.example")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Server.Port != 9100 {
		t.Errorf("Server.Port = %d, want env override 9100", cfg.Server.Port)
	}
	if cfg.Logging.Level != "debug" {
		t.Errorf("Logging.Level = %q, want debug", cfg.Logging.Level)
	}
	if cfg.Ingest.RateLimitWindow != 30*time.Second {
		t.Errorf("Ingest.RateLimitWindow = %s, want 30s", cfg.Ingest.RateLimitWindow)
	}
	if len(cfg.Ingest.CORSOrigins) != 2 || cfg.Ingest.CORSOrigins[0] != "https://a.example" {
		t.Errorf("Ingest.CORSOrigins = %v, want two trimmed origins", cfg.Ingest.CORSOrigins)
	}
}

func TestLoadConfigFile(t *testing.T) {
	chdirTemp(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "locus.yaml")
	content := "server:\n  port: 9200\nlogging:\n  format: console\n"
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, path)

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}

	if cfg.Server.Port != 9200 {
		t.Errorf("Server.Port = %d, want file value 9200", cfg.Server.Port)
	}
	if cfg.Logging.Format != "console" {
		t.Errorf("Logging.Format = %q, want console", cfg.Logging.Format)
	}
	// Untouched sections keep defaults.
	if cfg.Ingest.RateLimitRequests != 300 {
		t.Errorf("Ingest.RateLimitRequests = %d, want default 300", cfg.Ingest.RateLimitRequests)
	}
}

func TestEnvBeatsFile(t *testing.T) {
	chdirTemp(t)

	dir := t.TempDir()
	path := filepath.Join(dir, "locus.yaml")
	if err := os.WriteFile(path, []byte("server:\n  port: 9200\n"), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	t.Setenv(ConfigPathEnvVar, path)
	t.Setenv("LOCUS_SERVER_PORT", "9300")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() failed: %v", err)
	}
	if cfg.Server.Port != 9300 {
		t.Errorf("Server.Port = %d, want env to beat file (9300)", cfg.Server.Port)
	}
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr string
	}{
		{"port out of range", func(c *Config) { c.Server.Port = 0 }, "Port"},
		{"bad log level", func(c *Config) { c.Logging.Level = "verbose" }, "Level"},
		{"bad log format", func(c *Config) { c.Logging.Format = "xml" }, "Format"},
		{"short ingest secret", func(c *Config) { c.Ingest.Secret = "tooshort" }, "Secret"},
		{"tiny body cap", func(c *Config) { c.Ingest.MaxBodyBytes = 10 }, "MaxBodyBytes"},
		{"zero rate window", func(c *Config) { c.Ingest.RateLimitWindow = 0 }, "rate_limit_window"},
		{"zero shutdown timeout", func(c *Config) { c.Server.ShutdownTimeout = 0 }, "shutdown_timeout"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := defaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if err == nil {
				t.Fatal("expected validation failure")
			}
			if !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("error %q should mention %q", err, tt.wantErr)
			}
		})
	}
}

func TestServerAddr(t *testing.T) {
	t.Parallel()

	s := ServerConfig{Host: "127.0.0.1", Port: 8750}
	if got := s.Addr(); got != "127.0.0.1:8750" {
		t.Errorf("Addr() = %q", got)
	}
}

// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

/*
Package config handles application-wide settings and environment parsing.

It leverages 'caarlos0/env' to map OS environment variables into a strongly-typed
Go struct, providing early validation and default values.

Usage:

	cfg, err := config.Load()
	if err != nil {
	    log.Fatal(err)
	}

Architecture:

  - Immutability: Once loaded, configuration is read-only.
  - DI-Friendly: Passed to core components (registry, downstream, filter) via constructors.
  - Zero Hidden State: Runtime switches such as the content filter are fields
    here, never process globals.

[Config] drives the proxy server (cmd/api); [ClientConfig] drives the
terminal browser (cmd/browse), which is where the content filter runs.
*/
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/taibuivan/vodbrowse/internal/platform/validate"
)

// Source store backends.
const (
	StoreFile     = "file"
	StoreRedis    = "redis"
	StorePostgres = "postgres"
)

// # Configuration Schema

// Config holds all runtime configuration for the category proxy server.
type Config struct {

	// Server settings
	ServerPort  string `env:"SERVER_PORT"  envDefault:"8080"`
	Environment string `env:"ENVIRONMENT"  envDefault:"development"`
	Debug       bool   `env:"DEBUG"        envDefault:"false"`

	// CacheTime is the shared TTL (seconds) advertised in Cache-Control headers.
	CacheTime int `env:"CACHE_TIME" envDefault:"7200"`

	// Source registry
	SourceStore      string `env:"SOURCE_STORE"       envDefault:"file"`
	SourceConfigPath string `env:"SOURCE_CONFIG_PATH" envDefault:"./config/sources.yaml"`
	SourceRedisKey   string `env:"SOURCE_REDIS_KEY"   envDefault:"admin:config"`

	// Key-Value store (Redis), required when SourceStore is "redis"
	RedisURL string `env:"REDIS_URL"`

	// Relational Database (PostgreSQL), required when SourceStore is "postgres"
	DatabaseURL string `env:"DATABASE_URL"`

	// MigrationPath is the filesystem path to the SQL migrations directory.
	MigrationPath string `env:"MIGRATION_PATH" envDefault:"./data/migrations"`

	// Upstream listing APIs
	UpstreamTimeout time.Duration `env:"UPSTREAM_TIMEOUT" envDefault:"10s"`
	UpstreamRPS     int           `env:"UPSTREAM_RPS"     envDefault:"5"`

	// Cross-Origin Resource Sharing
	ExtraOrigins string `env:"EXTRA_ORIGINS"`
}

// # Configuration Loading

// Load parses environment variables into a [Config] struct and validates
// the cross-field requirements of the selected source store.
func Load() (*Config, error) {

	// Initialize an empty config struct
	cfg := &Config{}

	// Use the 'env' package to map environment variables to struct fields.
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return cfg, nil
}

// Validate checks value ranges and backend-specific requirements.
func (c *Config) Validate() error {
	v := &validate.Validator{}

	v.OneOf("SOURCE_STORE", c.SourceStore, StoreFile, StoreRedis, StorePostgres).
		Custom("CACHE_TIME", c.CacheTime < 0, "Must not be negative").
		Custom("UPSTREAM_RPS", c.UpstreamRPS < 1, "Must be at least 1").
		Custom("UPSTREAM_TIMEOUT", c.UpstreamTimeout <= 0, "Must be positive")

	switch c.SourceStore {
	case StoreFile:
		v.Required("SOURCE_CONFIG_PATH", c.SourceConfigPath)
	case StoreRedis:
		v.Required("REDIS_URL", c.RedisURL).Required("SOURCE_REDIS_KEY", c.SourceRedisKey)
	case StorePostgres:
		v.Required("DATABASE_URL", c.DatabaseURL)
	}

	return v.Err()
}

// IsDevelopment reports whether the server is running in development mode.
func (c *Config) IsDevelopment() bool {
	return c.Environment == "development"
}

// IsProduction reports whether the server is running in production mode.
func (c *Config) IsProduction() bool {
	return c.Environment == "production"
}

// AllowedOrigins returns the comma-separated EXTRA_ORIGINS as a list.
func (c *Config) AllowedOrigins() []string {
	origins := []string{}
	for _, origin := range strings.Split(c.ExtraOrigins, ",") {
		if origin = strings.TrimSpace(origin); origin != "" {
			origins = append(origins, origin)
		}
	}
	return origins
}

// # Client Configuration

// ClientConfig holds the settings of the terminal browser. Command-line flags
// take these values as their defaults.
type ClientConfig struct {

	// ServerURL is the base URL of the category proxy.
	ServerURL string `env:"VODBROWSE_SERVER" envDefault:"http://localhost:8080"`

	// Timeout bounds a single proxy round trip.
	Timeout time.Duration `env:"VODBROWSE_TIMEOUT" envDefault:"20s"`

	// DisableContentFilter turns off the category-label denylist.
	DisableContentFilter bool `env:"DISABLE_YELLOW_FILTER" envDefault:"false"`
}

// LoadClient parses environment variables into a [ClientConfig].
func LoadClient() (*ClientConfig, error) {
	cfg := &ClientConfig{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("config: failed to parse environment variables: %w", err)
	}

	v := &validate.Validator{}
	v.HTTPURL("VODBROWSE_SERVER", cfg.ServerURL).
		Custom("VODBROWSE_TIMEOUT", cfg.Timeout <= 0, "Must be positive")
	if err := v.Err(); err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	return cfg, nil
}

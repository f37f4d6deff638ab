// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/taibuivan/vodbrowse/internal/platform/config"
)

func TestLoad_Defaults(t *testing.T) {
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "8080", cfg.ServerPort)
	assert.Equal(t, 7200, cfg.CacheTime)
	assert.Equal(t, config.StoreFile, cfg.SourceStore)
	assert.Equal(t, 10*time.Second, cfg.UpstreamTimeout)
	assert.True(t, cfg.IsDevelopment())
}

func TestLoad_Overrides(t *testing.T) {
	t.Setenv("CACHE_TIME", "60")
	t.Setenv("SOURCE_STORE", "redis")
	t.Setenv("REDIS_URL", "redis://localhost:6379/0")
	t.Setenv("ENVIRONMENT", "production")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, 60, cfg.CacheTime)
	assert.Equal(t, config.StoreRedis, cfg.SourceStore)
	assert.True(t, cfg.IsProduction())
}

func TestLoad_Invalid(t *testing.T) {
	tests := []struct {
		name string
		env  map[string]string
	}{
		{"UnknownStore", map[string]string{"SOURCE_STORE": "mongo"}},
		{"RedisWithoutURL", map[string]string{"SOURCE_STORE": "redis"}},
		{"PostgresWithoutURL", map[string]string{"SOURCE_STORE": "postgres"}},
		{"NegativeCache", map[string]string{"CACHE_TIME": "-1"}},
		{"ZeroRPS", map[string]string{"UPSTREAM_RPS": "0"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			for key, value := range tt.env {
				t.Setenv(key, value)
			}
			_, err := config.Load()
			assert.Error(t, err)
		})
	}
}

func TestAllowedOrigins(t *testing.T) {
	cfg := &config.Config{ExtraOrigins: " https://a.example, ,https://b.example "}
	assert.Equal(t, []string{"https://a.example", "https://b.example"}, cfg.AllowedOrigins())

	assert.Empty(t, (&config.Config{}).AllowedOrigins())
}

func TestLoadClient(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		cfg, err := config.LoadClient()
		require.NoError(t, err)

		assert.Equal(t, "http://localhost:8080", cfg.ServerURL)
		assert.Equal(t, 20*time.Second, cfg.Timeout)
		assert.False(t, cfg.DisableContentFilter)
	})

	t.Run("Overrides", func(t *testing.T) {
		t.Setenv("VODBROWSE_SERVER", "https://vod.example")
		t.Setenv("VODBROWSE_TIMEOUT", "5s")
		t.Setenv("DISABLE_YELLOW_FILTER", "true")

		cfg, err := config.LoadClient()
		require.NoError(t, err)

		assert.Equal(t, "https://vod.example", cfg.ServerURL)
		assert.Equal(t, 5*time.Second, cfg.Timeout)
		assert.True(t, cfg.DisableContentFilter)
	})

	t.Run("Invalid", func(t *testing.T) {
		for name, env := range map[string][2]string{
			"Filter":  {"DISABLE_YELLOW_FILTER", "maybe"},
			"Server":  {"VODBROWSE_SERVER", "localhost"},
			"Timeout": {"VODBROWSE_TIMEOUT", "0s"},
		} {
			t.Run(name, func(t *testing.T) {
				t.Setenv(env[0], env[1])
				_, err := config.LoadClient()
				assert.Error(t, err)
			})
		}
	})
}

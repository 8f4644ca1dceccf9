// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ── helpers ───────────────────────────────────────────────────────────────────

func writeTempJSONConfig(t *testing.T, v any) string {
	t.Helper()
	data, err := json.Marshal(v)
	require.NoError(t, err)
	f, err := os.CreateTemp(t.TempDir(), "config-*.json")
	require.NoError(t, err)
	_, err = f.Write(data)
	require.NoError(t, err)
	require.NoError(t, f.Close())
	return f.Name()
}

func minimalConfig() *StructuredConfig {
	return &StructuredConfig{Adapter: Adapter{HTTPAddress: "localhost:8080"}}
}

// ── newConfigBuilder ──────────────────────────────────────────────────────────

// TestNewConfigBuilder_InitialState verifies that a freshly created builder
// has no error and an empty configs slice.
func TestNewConfigBuilder_InitialState(t *testing.T) {
	b := newConfigBuilder()
	require.NotNil(t, b)
	assert.NoError(t, b.err)
	assert.Empty(t, b.configs)
}

// ── build ─────────────────────────────────────────────────────────────────────

// TestBuild_EmptyBuilder verifies that a config without an API address is
// rejected even after defaults.
func TestBuild_EmptyBuilder(t *testing.T) {
	_, err := newConfigBuilder().build()
	assert.ErrorIs(t, err, ErrInvalidAdapterConfigs)
}

// TestBuild_PropagatesBuilderError verifies that a pre-set b.err is wrapped
// and returned, with nil config.
func TestBuild_PropagatesBuilderError(t *testing.T) {
	b := newConfigBuilder()
	b.err = assert.AnError

	cfg, err := b.build()
	assert.Nil(t, cfg)
	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
}

// TestBuild_AppliesDefaults verifies the defaults of every group.
func TestBuild_AppliesDefaults(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, minimalConfig())

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, DefaultResource, cfg.App.Resource)
	assert.Equal(t, DefaultRequestTimeout, cfg.Adapter.RequestTimeout)
	assert.Equal(t, DefaultDSN, cfg.Storage.DB.DSN)
	assert.Equal(t, Sync{
		MaxRetries:     3,
		BackoffUnit:    time.Second,
		SearchDebounce: 500 * time.Millisecond,
		PageSize:       10,
	}, cfg.Sync)
	assert.Zero(t, cfg.Workers.RefreshInterval)
	assert.False(t, cfg.Upload.Enabled())
}

// TestBuild_LaterSourceWins verifies that a later non-zero field overrides
// an earlier one and zero fields do not.
func TestBuild_LaterSourceWins(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs,
		&StructuredConfig{
			App:     App{Version: "1.0.0", Resource: "blogs"},
			Adapter: Adapter{HTTPAddress: "localhost:8080"},
		},
		&StructuredConfig{App: App{Resource: "products"}},
	)

	cfg, err := b.build()
	require.NoError(t, err)
	assert.Equal(t, "1.0.0", cfg.App.Version)
	assert.Equal(t, "products", cfg.App.Resource)
	assert.Equal(t, "localhost:8080", cfg.Adapter.HTTPAddress)
}

// TestBuild_Validation covers each validation error.
func TestBuild_Validation(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(cfg *StructuredConfig)
		want   error
	}{
		{"unknown resource", func(c *StructuredConfig) { c.App.Resource = "users" }, ErrInvalidAppConfigs},
		{"memory dsn", func(c *StructuredConfig) { c.Storage.DB.DSN = ":memory:" }, ErrInvalidStorageConfigs},
		{"upload without bucket", func(c *StructuredConfig) { c.Upload.Endpoint = "localhost:9000" }, ErrInvalidUploadConfigs},
		{"negative retries", func(c *StructuredConfig) { c.Sync.MaxRetries = -1 }, ErrInvalidSyncConfigs},
		{"negative page size", func(c *StructuredConfig) { c.Sync.PageSize = -5 }, ErrInvalidSyncConfigs},
		{"negative refresh interval", func(c *StructuredConfig) { c.Workers.RefreshInterval = -time.Second }, ErrInvalidWorkerConfigs},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := minimalConfig()
			tt.mutate(cfg)

			b := newConfigBuilder()
			b.configs = append(b.configs, cfg)

			_, err := b.build()
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

// ── withJSON ──────────────────────────────────────────────────────────────────

// TestWithJSON_NoPath verifies that withJSON is a no-op when no source sets
// a JSON path.
func TestWithJSON_NoPath(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, minimalConfig())

	b.withJSON()
	assert.NoError(t, b.err)
	assert.Len(t, b.configs, 1)
}

// TestWithJSON_LoadsFile verifies that the JSON file named by an earlier
// source is merged last.
func TestWithJSON_LoadsFile(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app":     map[string]any{"resource": "products"},
		"adapter": map[string]any{"http_address": "https://cms.example.com"},
	})

	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{
		App:          App{Resource: "blogs"},
		JSONFilePath: path,
	})

	cfg, err := b.withJSON().build()
	require.NoError(t, err)
	assert.Equal(t, "products", cfg.App.Resource)
	assert.Equal(t, "https://cms.example.com", cfg.Adapter.HTTPAddress)
}

// TestWithJSON_MissingFile verifies that an unreadable JSON path is recorded
// as a builder error.
func TestWithJSON_MissingFile(t *testing.T) {
	b := newConfigBuilder()
	b.configs = append(b.configs, &StructuredConfig{JSONFilePath: filepath.Join(t.TempDir(), "nope.json")})

	b.withJSON()
	assert.Error(t, b.err)
}

// ── withDotEnv / withEnv ──────────────────────────────────────────────────────

// TestWithDotEnv_LoadsFileIntoEnv verifies that .env values reach withEnv and
// that variables already set in the environment are kept.
func TestWithDotEnv_LoadsFileIntoEnv(t *testing.T) {
	clearEnvVars(t)
	require.NoError(t, os.Unsetenv("ADAPTER_ADDRESS"))
	t.Setenv("APP_RESOURCE", "products")

	p := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(p, []byte("ADAPTER_ADDRESS=localhost:9999\nAPP_RESOURCE=blogs\n"), 0o600))

	cfg, err := newConfigBuilder().withDotEnv(p).withEnv().build()
	require.NoError(t, err)
	assert.Equal(t, "localhost:9999", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "products", cfg.App.Resource)
}

// TestWithDotEnv_MissingFileIsIgnored verifies that an absent .env file is
// not an error.
func TestWithDotEnv_MissingFileIsIgnored(t *testing.T) {
	b := newConfigBuilder().withDotEnv(filepath.Join(t.TempDir(), ".env"))
	assert.NoError(t, b.err)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"flag"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAPIAddress_Set(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    APIAddress
		str     string
		wantErr error
	}{
		{name: "localhost", input: "localhost:8080", want: APIAddress{Host: "localhost", Port: 8080}, str: "localhost:8080"},
		{name: "hostname", input: "api.example.com:443", want: APIAddress{Host: "api.example.com", Port: 443}, str: "api.example.com:443"},
		{name: "ipv6", input: "[::1]:9090", want: APIAddress{Host: "::1", Port: 9090}, str: "[::1]:9090"},
		{
			name:  "https url with path",
			input: "https://api.example.com/v1/",
			want:  APIAddress{Scheme: "https", Host: "api.example.com", Path: "/v1"},
			str:   "https://api.example.com/v1",
		},
		{
			name:  "http url with port",
			input: "http://127.0.0.1:3000",
			want:  APIAddress{Scheme: "http", Host: "127.0.0.1", Port: 3000},
			str:   "http://127.0.0.1:3000",
		},
		{name: "empty", input: "  ", wantErr: errEmptyAddress},
		{name: "missing port", input: "localhost", wantErr: errHostPort},
		{name: "missing host", input: ":8080", wantErr: errHostPort},
		{name: "zero port", input: "localhost:0", wantErr: errPortRange},
		{name: "port too large", input: "localhost:70000", wantErr: errPortRange},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr APIAddress
			err := addr.Set(tt.input)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Equal(t, APIAddress{}, addr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, addr)
			assert.Equal(t, tt.str, addr.String())
		})
	}
}

func TestAPIAddress_SetRejects(t *testing.T) {
	for _, input := range []string{"ftp://files.example.com", "localhost:abc", "a:b:c"} {
		var addr APIAddress
		assert.Error(t, addr.Set(input), input)
	}
	assert.Equal(t, "", (&APIAddress{}).String())
}

// TestParseFlags covers every flag of the admin client.
func TestParseFlags(t *testing.T) {
	fs := flag.NewFlagSet("admin", flag.ContinueOnError)
	cfg, err := parseFlags(fs, []string{
		"-a", "127.0.0.1:8080",
		"-d", "state.db",
		"-c", "cfg.json",
		"-r", "products",
		"-t", "token",
		"-request-timeout", "5s",
		"-retries", "4",
		"-backoff", "250ms",
		"-debounce", "300ms",
		"-page-size", "20",
		"-refresh-interval", "1m",
		"-upload-endpoint", "localhost:9000",
		"-upload-bucket", "media",
		"-upload-access-key", "ak",
		"-upload-secret-key", "sk",
		"-upload-ssl",
		"-upload-public-url", "https://cdn.example.com/media",
		"-upload-region", "eu-1",
	})
	require.NoError(t, err)

	assert.Equal(t, "127.0.0.1:8080", cfg.Adapter.HTTPAddress)
	assert.Equal(t, "state.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "cfg.json", cfg.JSONFilePath)
	assert.Equal(t, "products", cfg.App.Resource)
	assert.Equal(t, "token", cfg.App.APIToken)
	assert.Equal(t, 5*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, 4, cfg.Sync.MaxRetries)
	assert.Equal(t, 250*time.Millisecond, cfg.Sync.BackoffUnit)
	assert.Equal(t, 300*time.Millisecond, cfg.Sync.SearchDebounce)
	assert.Equal(t, 20, cfg.Sync.PageSize)
	assert.Equal(t, time.Minute, cfg.Workers.RefreshInterval)
	assert.Equal(t, Upload{
		Endpoint:  "localhost:9000",
		AccessKey: "ak",
		SecretKey: "sk",
		Bucket:    "media",
		UseSSL:    true,
		PublicURL: "https://cdn.example.com/media",
		Region:    "eu-1",
	}, cfg.Upload)
}

// TestParseFlags_ConfigAlias verifies -config sets the same field as -c.
func TestParseFlags_ConfigAlias(t *testing.T) {
	fs := flag.NewFlagSet("admin", flag.ContinueOnError)
	cfg, err := parseFlags(fs, []string{"-config", "alias.json"})
	require.NoError(t, err)
	assert.Equal(t, "alias.json", cfg.JSONFilePath)
}

// TestParseFlags_NoArgs verifies that an empty command line leaves every
// field zero so it does not override other sources.
func TestParseFlags_NoArgs(t *testing.T) {
	fs := flag.NewFlagSet("admin", flag.ContinueOnError)
	cfg, err := parseFlags(fs, nil)
	require.NoError(t, err)
	assert.Equal(t, &StructuredConfig{}, cfg)
}

// TestParseFlags_InvalidAddress verifies that a malformed -a value is rejected.
func TestParseFlags_InvalidAddress(t *testing.T) {
	fs := flag.NewFlagSet("admin", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	_, err := parseFlags(fs, []string{"-a", "not-an-address"})
	require.Error(t, err)
}

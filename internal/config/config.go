// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"time"
)

// StructuredConfig is the top-level configuration container for the
// content admin client. It is populated by merging values from a .env
// file, environment variables, command-line flags, and an optional JSON
// file, then completed with defaults and validated.
//
// Struct tags:
//   - envPrefix: prefix applied to all nested env tag lookups (caarlos0/env).
//   - env: direct environment variable name for scalar fields.
type StructuredConfig struct {
	// App holds the API token, the managed resource and the version.
	App App `envPrefix:"APP_"`

	// Adapter holds the content API address and the request timeout.
	Adapter Adapter `envPrefix:"ADAPTER_"`

	// Storage holds the local sqlite database used for client-side state
	// such as recent searches.
	Storage Storage `envPrefix:"STORAGE_"`

	// Upload holds the object storage settings used for cover images.
	// Uploads are disabled when Endpoint is empty.
	Upload Upload `envPrefix:"UPLOAD_"`

	// Sync holds retry, debounce and pagination settings of the list
	// synchronizer.
	Sync Sync `envPrefix:"SYNC_"`

	// Workers holds configuration for background jobs.
	Workers Workers `envPrefix:"WORKERS_"`

	// JSONFilePath is the optional path to a JSON configuration file.
	// When non-empty, the file is parsed and merged on top of the values
	// already loaded from environment variables and flags.
	// Populated via the CONFIG environment variable or the -c / -config flag.
	JSONFilePath string `env:"CONFIG"`
}

// App holds application-level configuration values.
type App struct {
	// APIToken is the bearer token sent to the content API.
	// Env: APP_API_TOKEN
	APIToken string `env:"API_TOKEN"`

	// Resource is the collection opened at start ("blogs" or "products").
	// Env: APP_RESOURCE
	Resource string `env:"RESOURCE"`

	// Version is the semantic version string of the running application.
	// Env: APP_VERSION
	Version string `env:"VERSION"`
}

// Adapter holds the outbound transport settings.
type Adapter struct {
	// HTTPAddress is the base address of the content API, either host:port
	// or a full URL (e.g. "https://cms.example.com").
	// Env: ADAPTER_ADDRESS
	HTTPAddress string `env:"ADDRESS"`

	// RequestTimeout bounds a single outbound request (e.g. "15s").
	// Env: ADAPTER_REQUEST_TIMEOUT
	RequestTimeout time.Duration `env:"REQUEST_TIMEOUT"`
}

// Storage groups the configuration for local storage backends.
type Storage struct {
	// DB holds the local database connection settings.
	DB DB `envPrefix:"DB_"`
}

// DB holds connection settings for the local sqlite database.
type DB struct {
	// DSN is the sqlite file path or URI (e.g. "admin.db").
	// Env: STORAGE_DB_DATABASE_URI
	DSN string `env:"DATABASE_URI"`
}

// Upload holds S3-compatible object storage settings.
type Upload struct {
	// Endpoint is the host:port of the object storage service.
	// Env: UPLOAD_ENDPOINT
	Endpoint string `env:"ENDPOINT"`

	// AccessKey and SecretKey are the static credentials.
	// Env: UPLOAD_ACCESS_KEY, UPLOAD_SECRET_KEY
	AccessKey string `env:"ACCESS_KEY"`
	SecretKey string `env:"SECRET_KEY"`

	// Bucket receives every uploaded object.
	// Env: UPLOAD_BUCKET
	Bucket string `env:"BUCKET"`

	// UseSSL switches the storage client to https.
	// Env: UPLOAD_USE_SSL
	UseSSL bool `env:"USE_SSL"`

	// PublicURL is the base of the public object URLs stored on items.
	// Defaults to the endpoint URL joined with the bucket.
	// Env: UPLOAD_PUBLIC_URL
	PublicURL string `env:"PUBLIC_URL"`

	// Region is the bucket region, optional for most providers.
	// Env: UPLOAD_REGION
	Region string `env:"REGION"`
}

// Enabled reports whether an upload endpoint is configured.
func (u Upload) Enabled() bool {
	return u.Endpoint != ""
}

// Sync holds list synchronizer settings.
type Sync struct {
	// MaxRetries is the number of attempts of an enveloped operation.
	// Env: SYNC_MAX_RETRIES
	MaxRetries int `env:"MAX_RETRIES"`

	// BackoffUnit is the linear backoff step: attempt n waits n*BackoffUnit.
	// Env: SYNC_BACKOFF_UNIT
	BackoffUnit time.Duration `env:"BACKOFF_UNIT"`

	// SearchDebounce is the quiet period before a typed search is sent.
	// Env: SYNC_SEARCH_DEBOUNCE
	SearchDebounce time.Duration `env:"SEARCH_DEBOUNCE"`

	// PageSize is the number of items per page.
	// Env: SYNC_PAGE_SIZE
	PageSize int `env:"PAGE_SIZE"`
}

// Workers holds configuration for background jobs.
type Workers struct {
	// RefreshInterval is the period of the background refresh of every
	// collection. Zero disables the job.
	// Env: WORKERS_REFRESH_INTERVAL
	RefreshInterval time.Duration `env:"REFRESH_INTERVAL"`
}

// Defaults applied by [configBuilder.build] to fields left empty by every
// source.
const (
	DefaultResource       = "blogs"
	DefaultRequestTimeout = 15 * time.Second
	DefaultDSN            = "admin.db"
	DefaultMaxRetries     = 3
	DefaultBackoffUnit    = time.Second
	DefaultSearchDebounce = 500 * time.Millisecond
	DefaultPageSize       = 10
)

// GetStructuredConfig loads, merges, and validates the application
// configuration from all available sources in the following priority order
// (last source wins for non-zero fields):
//  1. .env file in the working directory (optional)
//  2. Environment variables
//  3. Command-line flags
//  4. JSON file (path resolved from sources 1-3)
//
// Returns a fully populated *StructuredConfig or an error if any source
// fails to load or the final config fails validation.
func GetStructuredConfig() (*StructuredConfig, error) {
	return newConfigBuilder().
		withDotEnv(".env").
		withEnv().
		withFlags().
		withJSON().
		build()
}

func (cfg *StructuredConfig) applyDefaults() {
	if cfg.App.Resource == "" {
		cfg.App.Resource = DefaultResource
	}
	if cfg.Adapter.RequestTimeout == 0 {
		cfg.Adapter.RequestTimeout = DefaultRequestTimeout
	}
	if cfg.Storage.DB.DSN == "" {
		cfg.Storage.DB.DSN = DefaultDSN
	}
	if cfg.Sync.MaxRetries == 0 {
		cfg.Sync.MaxRetries = DefaultMaxRetries
	}
	if cfg.Sync.BackoffUnit == 0 {
		cfg.Sync.BackoffUnit = DefaultBackoffUnit
	}
	if cfg.Sync.SearchDebounce == 0 {
		cfg.Sync.SearchDebounce = DefaultSearchDebounce
	}
	if cfg.Sync.PageSize == 0 {
		cfg.Sync.PageSize = DefaultPageSize
	}
}

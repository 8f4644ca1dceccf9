// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"strings"

	"github.com/MKhiriev/go-content-admin/models"
)

// validate checks that the final merged [StructuredConfig] can start the
// client. Defaults are applied before validation.
func (cfg *StructuredConfig) validate() error {
	if !models.Resource(cfg.App.Resource).Valid() {
		return ErrInvalidAppConfigs
	}

	if cfg.Adapter.HTTPAddress == "" || cfg.Adapter.RequestTimeout < 0 {
		return ErrInvalidAdapterConfigs
	}

	if cfg.Storage.DB.DSN == "" || strings.Contains(cfg.Storage.DB.DSN, "memory") {
		return ErrInvalidStorageConfigs
	}

	if cfg.Upload.Enabled() && cfg.Upload.Bucket == "" {
		return ErrInvalidUploadConfigs
	}

	if cfg.Sync.MaxRetries < 1 || cfg.Sync.PageSize < 1 || cfg.Sync.BackoffUnit < 0 || cfg.Sync.SearchDebounce < 0 {
		return ErrInvalidSyncConfigs
	}

	if cfg.Workers.RefreshInterval < 0 {
		return ErrInvalidWorkerConfigs
	}

	return nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// parseEnv populates cfg from environ using the caarlos0/env library. A nil
// environ reads the process environment. Struct fields are mapped via their
// `env` and `envPrefix` tags defined on [StructuredConfig] and its nested
// types.
//
// Returns a wrapped error if a value cannot be converted to the target type
// (e.g. "SYNC_PAGE_SIZE=ten").
func parseEnv(cfg *StructuredConfig, environ map[string]string) error {
	err := env.ParseWithOptions(cfg, env.Options{Environment: environ})
	if err != nil {
		return fmt.Errorf("error getting env configs: %w", err)
	}

	return nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks editor input before it reaches the content API.
//
// A Validator is handed an item draft or a category payload. Callers may
// pass field names to check only part of the value; the form uses this to
// report a single field while the editor types.
package validators

import "context"

// Validator checks a value and returns the first rule it breaks.
type Validator interface {
	// Validate checks value. When fields are given only those fields are
	// checked and an unknown name is an error.
	Validate(ctx context.Context, value any, fields ...string) error
}

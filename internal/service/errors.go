// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-content-admin/internal/mirror"
	"github.com/MKhiriev/go-content-admin/internal/validators"
)

// Validation errors. They are detected before any remote call and never
// consume the retry budget.
var (
	ErrValidationTitleRequired        = validators.ErrTitleRequired
	ErrValidationDescriptionRequired  = validators.ErrDescriptionRequired
	ErrValidationCategoryNameRequired = validators.ErrCategoryNameRequired
	ErrValidationImagePath            = validators.ErrImagePath
	ErrValidationInvalidID            = errors.New("invalid id")
	ErrValidationNotInTrash           = errors.New("item is not in the trash")
)

// ExhaustedError is returned by [Envelope.Do] when an operation failed for
// the last time, either because every attempt failed or because the error
// cannot be fixed by retrying.
type ExhaustedError struct {
	Category mirror.ErrorCategory
	Attempts int
	Err      error
}

func (e *ExhaustedError) Error() string {
	return fmt.Sprintf("%s operation failed after %d attempt(s): %v", e.Category, e.Attempts, e.Err)
}

func (e *ExhaustedError) Unwrap() error {
	return e.Err
}

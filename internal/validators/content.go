// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/MKhiriev/go-content-admin/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a subset
// of fields (field-level scoping).
const (
	// FieldTitle targets the display title of an entry draft.
	FieldTitle = "title"

	// FieldDescription targets the short summary of an entry draft.
	FieldDescription = "description"

	// FieldImagePath targets the local image file attached to a draft.
	FieldImagePath = "image_path"

	// FieldName targets the name of a category payload.
	FieldName = "name"
)

// ContentValidator implements the Validator interface for the editor input
// models: ItemDraft and CategoryPayload.
//
// It supports both value and pointer arguments for every model type and
// allows optional field-level scoping via variadic field name arguments.
type ContentValidator struct {
}

// NewContentValidator constructs a new ContentValidator and returns it as
// the Validator interface.
func NewContentValidator() Validator {
	return &ContentValidator{}
}

// Validate dispatches validation to the appropriate type-specific method.
// It returns ErrUnsupportedType for any other type.
func (v *ContentValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.ItemDraft:
		return v.validateItemDraft(ctx, value, fields...)
	case *models.ItemDraft:
		return v.validateItemDraft(ctx, *value, fields...)

	case models.CategoryPayload:
		return v.validateCategoryPayload(ctx, value, fields...)
	case *models.CategoryPayload:
		return v.validateCategoryPayload(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *ContentValidator) validateItemDraft(_ context.Context, draft models.ItemDraft, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldDescription, FieldImagePath}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if strings.TrimSpace(draft.Payload.Title) == "" {
				return ErrTitleRequired
			}
		case FieldDescription:
			if strings.TrimSpace(draft.Payload.Description) == "" {
				return ErrDescriptionRequired
			}
		case FieldImagePath:
			if err := checkImagePath(draft.ImagePath); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *ContentValidator) validateCategoryPayload(_ context.Context, payload models.CategoryPayload, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldName}
	}

	for _, f := range fields {
		switch f {
		case FieldName:
			if strings.TrimSpace(payload.Name) == "" {
				return ErrCategoryNameRequired
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// checkImagePath verifies that path names a regular file. An empty path
// means no image is attached.
func checkImagePath(path string) error {
	if path == "" {
		return nil
	}

	info, err := os.Stat(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrImagePath, err)
	}
	if info.IsDir() {
		return fmt.Errorf("%w: %s is a directory", ErrImagePath, path)
	}
	return nil
}

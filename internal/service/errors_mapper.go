// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"strings"

	"github.com/MKhiriev/go-content-admin/internal/adapter"
	"github.com/MKhiriev/go-content-admin/internal/app"
)

// permanentErrors are raised on the client before a request is sent and are
// not retried. Every error returned by the content API is retried.
var permanentErrors = []error{
	adapter.ErrTokenExpired,
	adapter.ErrUploadDisabled,
	adapter.ErrNotAnImage,
	adapter.ErrEmptyFile,
	ErrValidationTitleRequired,
	ErrValidationDescriptionRequired,
	ErrValidationCategoryNameRequired,
	ErrValidationInvalidID,
	ErrValidationNotInTrash,
	ErrValidationImagePath,
}

func isPermanent(err error) bool {
	for _, target := range permanentErrors {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}

func isCancelled(err error) bool {
	return errors.Is(err, context.Canceled)
}

// userMessage translates an error into the text shown in the error banner
// and in notifications.
func userMessage(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, adapter.ErrTokenExpired):
		return app.MsgTokenExpired
	case errors.Is(err, adapter.ErrUnauthorized), errors.Is(err, adapter.ErrForbidden):
		return app.MsgAccessDenied
	case errors.Is(err, adapter.ErrNotFound):
		return app.MsgNotFound
	case errors.Is(err, adapter.ErrConflict):
		return app.MsgConflict
	case errors.Is(err, adapter.ErrUploadDisabled):
		return app.MsgUploadDisabled
	case errors.Is(err, context.DeadlineExceeded):
		return app.MsgTimeout
	case errors.Is(err, adapter.ErrBadRequest), errors.Is(err, adapter.ErrUnprocessable):
		return app.MsgRejected + ": " + extractBody(err)
	}

	return err.Error()
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}

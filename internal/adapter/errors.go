// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import "errors"

// Transport errors returned by the content API adapter. HTTP statuses are
// mapped to these values by mapHTTPError; the response body is appended to
// the message.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrForbidden           = errors.New("forbidden")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrUnprocessable       = errors.New("unprocessable entity")
	ErrTooManyRequests     = errors.New("too many requests")
	ErrInternalServerError = errors.New("internal server error")
	ErrBadGateway          = errors.New("bad gateway")
	ErrServiceUnavailable  = errors.New("service unavailable")

	// ErrTokenExpired is returned before any request is sent when the
	// configured API token carries an expiry in the past.
	ErrTokenExpired = errors.New("api token is expired")
)

// Upload errors.
var (
	ErrUploadDisabled = errors.New("uploads are not configured")
	ErrNotAnImage     = errors.New("file is not an image")
	ErrEmptyFile      = errors.New("file is empty")
)

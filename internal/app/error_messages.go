// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used across the
// content admin client services and terminal UI.
//
// All Msg* constants are human-readable strings shown in notifications and
// in the error banner. Keeping them in one place ensures consistent wording
// throughout the client.
package app

const (
	// MsgTokenExpired is shown when the configured API token carries an
	// expiry in the past.
	MsgTokenExpired = "API token is expired, update APP_API_TOKEN"

	// MsgAccessDenied is shown for 401 and 403 responses.
	MsgAccessDenied = "access denied by the content API"

	// MsgNotFound is shown when the target entry no longer exists.
	MsgNotFound = "entry not found, it may have been removed"

	// MsgConflict is shown when the server refuses a change that conflicts
	// with its current state.
	MsgConflict = "the server state changed, refresh and try again"

	// MsgRejected prefixes the server's reason for a 400 or 422 response.
	MsgRejected = "request rejected"

	// MsgTimeout is shown when a request exceeds its deadline.
	MsgTimeout = "the content API did not answer in time"

	// MsgUnavailable replaces transport errors such as a refused
	// connection or an unknown host.
	MsgUnavailable = "no network or the content API is unavailable"

	// MsgUploadDisabled is shown when an image is attached but no object
	// storage is configured.
	MsgUploadDisabled = "image uploads are not configured"
)

// Notification titles.
const (
	TitleCreated         = "Created"
	TitleUpdated         = "Updated"
	TitleNoChanges       = "No changes"
	TitleMovedToTrash    = "Moved to trash"
	TitleRestored        = "Restored"
	TitleDeleted         = "Deleted permanently"
	TitleCategoryCreated = "Category created"
	TitleCategoryDeleted = "Category deleted"
	TitleValidation      = "Check the form"
	TitleFailed          = "Operation failed"
)

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import "context"

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// LocalStateRepository is a small key/value store for client-side state
// that survives restarts, such as the recent-search history.
type LocalStateRepository interface {
	// Get returns the value stored under key or [ErrStateNotFound].
	Get(ctx context.Context, key string) (string, error)

	// Put stores value under key, replacing any previous value.
	Put(ctx context.Context, key, value string) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package service holds the list synchronizer of the content admin client:
// the optimistic mutation flow, the retry envelope wrapped around every
// remote call, reconciliation fetches and the recent-search history.
package service

import (
	"context"
	"time"

	"github.com/MKhiriev/go-content-admin/internal/mirror"
	"github.com/MKhiriev/go-content-admin/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// Notifier receives user-facing notifications (toasts).
type Notifier interface {
	Notify(note models.Notification)
}

// ListSynchronizer keeps the local mirror of one resource in step with the
// content API.
//
// Mutations are optimistic: after the remote call succeeds the mirror is
// patched at once and a reconciliation fetch of the affected collection is
// issued. Every remote call runs inside an [Envelope]; failures end up as an
// Error Record in the mirror and an error notification, and the returned
// error is an *[ExhaustedError].
type ListSynchronizer interface {
	// Resource returns the resource the synchronizer manages.
	Resource() models.Resource

	// Store returns the mirror the synchronizer writes to.
	Store() *mirror.Store

	// LoadActive fetches the active collection. When a search term is set
	// the server-side search endpoint is used.
	LoadActive(ctx context.Context) error

	// LoadAll fetches every item regardless of publication state.
	LoadAll(ctx context.Context) error

	// LoadDeleted fetches the trash.
	LoadDeleted(ctx context.Context) error

	// LoadCategories fetches the category list.
	LoadCategories(ctx context.Context) error

	// RefreshAll loads categories, then the three item collections
	// concurrently. Failures are reported under the general category.
	RefreshAll(ctx context.Context) error

	// Search sets the search term and records it in the recent-search
	// history. In the active view the active collection is refetched with
	// the term; the trash view filters on the client.
	Search(ctx context.Context, term string) error

	// SetViewMode switches between the active list and the trash and loads
	// the collection the new view shows.
	SetViewMode(ctx context.Context, mode mirror.ViewMode) error

	// Get fetches a single item.
	Get(ctx context.Context, id int64) (models.Item, error)

	// Create validates and uploads the draft image, then creates the item.
	Create(ctx context.Context, draft models.ItemDraft) (models.Item, error)

	// Update sends only the fields of draft that differ from original. A
	// draft without changes sends nothing and returns original.
	Update(ctx context.Context, original models.Item, draft models.ItemDraft) (models.Item, error)

	// Delete moves an item to the trash.
	Delete(ctx context.Context, id int64) error

	// Restore moves an item from the trash back to the active collection.
	Restore(ctx context.Context, id int64) error

	// HardDelete removes an item from the trash for good together with its
	// image.
	HardDelete(ctx context.Context, id int64) error

	// CreateCategory creates a category and refetches the category list.
	CreateCategory(ctx context.Context, payload models.CategoryPayload) error

	// DeleteCategory deletes a category and refetches the category list.
	DeleteCategory(ctx context.Context, id int64) error

	// Close cancels every in-flight operation. Operations cancelled this way
	// leave the mirror untouched.
	Close()
}

// SearchHistory stores the most recent search terms.
type SearchHistory interface {
	// Recent returns the stored terms, most recent first.
	Recent(ctx context.Context) ([]string, error)

	// Push records term and returns the updated list. Blank terms are
	// ignored.
	Push(ctx context.Context, term string) ([]string, error)

	// Clear forgets every term.
	Clear(ctx context.Context) error
}

// RefreshJob defines the contract for a background worker that periodically
// reloads every collection of a synchronizer.
type RefreshJob interface {
	// Start launches the background goroutine calling RefreshAll every
	// interval. A non-positive interval leaves the job idle. Any previously
	// running job is stopped before the new one begins.
	Start(ctx context.Context, interval time.Duration)

	// Stop signals the background goroutine to exit and blocks until it has
	// fully terminated.
	Stop()
}

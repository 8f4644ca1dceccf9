// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package mirror

import "github.com/MKhiriev/go-content-admin/models"

// DefaultPageSize is used when a state is created with a non-positive page size.
const DefaultPageSize = 10

// Collection identifies one remotely backed list held by the mirror.
type Collection int

const (
	CollectionActive Collection = iota
	CollectionAll
	CollectionDeleted
	CollectionCategories

	collectionCount
)

func (c Collection) String() string {
	switch c {
	case CollectionActive:
		return "active"
	case CollectionAll:
		return "all"
	case CollectionDeleted:
		return "deleted"
	case CollectionCategories:
		return "categories"
	default:
		return "unknown"
	}
}

// ViewMode selects which collection the list view shows.
type ViewMode int

const (
	ViewActive ViewMode = iota
	ViewTrash
)

func (v ViewMode) String() string {
	if v == ViewTrash {
		return "trash"
	}
	return "active"
}

// SyncTag tells how far a collection is from server truth.
type SyncTag int

const (
	// SyncStale means the collection was never loaded or its last
	// reconciliation failed. It is the zero value.
	SyncStale SyncTag = iota
	// SyncClean means the collection equals the last accepted server response.
	SyncClean
	// SyncPending means a local optimistic patch was applied and a
	// reconciliation fetch is expected.
	SyncPending
)

func (t SyncTag) String() string {
	switch t {
	case SyncClean:
		return "clean"
	case SyncPending:
		return "pendingSync"
	default:
		return "stale"
	}
}

// ErrorCategory classifies failures surfaced to the user.
type ErrorCategory string

const (
	ErrorItems      ErrorCategory = "items"
	ErrorCategories ErrorCategory = "categories"
	ErrorGeneral    ErrorCategory = "general"
)

// ErrorRecord is the single error currently shown in the banner.
type ErrorRecord struct {
	Type    ErrorCategory
	Message string
}

// State is the full mirror. Slices held by a State are never modified in
// place by the reducer, so a State value can be shared freely as long as
// callers treat it as read-only.
type State struct {
	Active     []models.Item
	All        []models.Item
	Deleted    []models.Item
	Categories []models.Category

	ViewMode    ViewMode
	CurrentPage int
	PageSize    int
	SearchTerm  string
	ShowAll     bool

	LoadingItems      bool
	LoadingCategories bool
	Submitting        bool

	// Error is nil when no error is shown. New errors overwrite old ones.
	Error *ErrorRecord

	Sync        [collectionCount]SyncTag
	Generations [collectionCount]uint64
}

// NewState returns an empty mirror positioned on the first page of the
// active view.
func NewState(pageSize int) State {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return State{
		CurrentPage: 1,
		PageSize:    pageSize,
	}
}

// Tag returns the sync tag of collection c.
func (s State) Tag(c Collection) SyncTag {
	if c < 0 || c >= collectionCount {
		return SyncStale
	}
	return s.Sync[c]
}

// Generation returns the latest fetch generation begun for collection c.
func (s State) Generation(c Collection) uint64 {
	if c < 0 || c >= collectionCount {
		return 0
	}
	return s.Generations[c]
}

// FindDeleted looks up an item in the trash by id.
func (s State) FindDeleted(id int64) (models.Item, bool) {
	return find(s.Deleted, id)
}

// FindActive looks up an item in the active collection by id.
func (s State) FindActive(id int64) (models.Item, bool) {
	return find(s.Active, id)
}

func find(items []models.Item, id int64) (models.Item, bool) {
	for _, item := range items {
		if item.ID == id {
			return item, true
		}
	}
	return models.Item{}, false
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package mirror

import "github.com/MKhiriev/go-content-admin/models"

// Action is a state transition request. The set of actions is closed: only
// types declared in this package implement it.
type Action interface {
	action()
}

// AddItem prepends a freshly created item to the active collection.
type AddItem struct{ Item models.Item }

// UpdateItem replaces the active item with the same ID. No-op when absent.
type UpdateItem struct {
	ID   int64
	Item models.Item
}

// DeleteItem removes an item from the active collection (soft delete). The
// trash is not populated locally; it is refetched.
type DeleteItem struct{ ID int64 }

// RestoreItem moves an item from the trash back to the top of the active
// collection.
type RestoreItem struct{ Item models.Item }

// HardDeleteItem removes an item from the trash.
type HardDeleteItem struct{ ID int64 }

// SetItems replaces a whole item collection with a server response.
// Responses older than the latest begun fetch are dropped.
type SetItems struct {
	Collection Collection
	Items      []models.Item
	Generation uint64
}

// SetCategories replaces the category list with a server response.
type SetCategories struct {
	Categories []models.Category
	Generation uint64
}

// BeginFetch bumps the fetch generation of a collection.
type BeginFetch struct{ Collection Collection }

// MarkStale records a failed reconciliation of a collection.
type MarkStale struct {
	Collection Collection
	Generation uint64
}

// SetSearchTerm changes the search term and goes back to page one.
type SetSearchTerm struct{ Term string }

// SetShowAll toggles pagination off or on and goes back to page one.
type SetShowAll struct{ ShowAll bool }

// SetViewMode switches between the active list and the trash. It goes back
// to page one and clears the search term.
type SetViewMode struct{ Mode ViewMode }

// NextPage moves forward unless already on the last page.
type NextPage struct{}

// PrevPage moves back unless already on the first page.
type PrevPage struct{}

// SetPage jumps to a page, clamped to the available range.
type SetPage struct{ Page int }

// SetItemsLoading toggles the item loading flag.
type SetItemsLoading struct{ Loading bool }

// SetCategoriesLoading toggles the category loading flag.
type SetCategoriesLoading struct{ Loading bool }

// SetSubmitting toggles the form submission flag.
type SetSubmitting struct{ Submitting bool }

// SetError shows an error record, replacing the current one.
type SetError struct{ Record ErrorRecord }

// ClearError hides the current error record.
type ClearError struct{}

func (AddItem) action()              {}
func (UpdateItem) action()           {}
func (DeleteItem) action()           {}
func (RestoreItem) action()          {}
func (HardDeleteItem) action()       {}
func (SetItems) action()             {}
func (SetCategories) action()        {}
func (BeginFetch) action()           {}
func (MarkStale) action()            {}
func (SetSearchTerm) action()        {}
func (SetShowAll) action()           {}
func (SetViewMode) action()          {}
func (NextPage) action()             {}
func (PrevPage) action()             {}
func (SetPage) action()              {}
func (SetItemsLoading) action()      {}
func (SetCategoriesLoading) action() {}
func (SetSubmitting) action()        {}
func (SetError) action()             {}
func (ClearError) action()           {}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package mirror

import (
	"slices"

	"github.com/MKhiriev/go-content-admin/models"
)

// Reduce applies a to s and returns the next state. It has no side effects
// and never writes into the slices of s.
func Reduce(s State, a Action) State {
	switch a := a.(type) {
	case AddItem:
		s.Active = prepend(s.Active, a.Item)
		s.Sync[CollectionActive] = SyncPending

	case UpdateItem:
		idx := indexOf(s.Active, a.ID)
		if idx < 0 {
			return s
		}
		active := slices.Clone(s.Active)
		active[idx] = a.Item
		s.Active = active
		s.Sync[CollectionActive] = SyncPending

	case DeleteItem:
		s.Active = without(s.Active, a.ID)
		s.Sync[CollectionDeleted] = SyncPending
		// an active fetch begun before the delete may still list the item
		s.Generations[CollectionActive]++

	case RestoreItem:
		s.Active = prepend(s.Active, a.Item)
		s.Deleted = without(s.Deleted, a.Item.ID)
		s.Sync[CollectionActive] = SyncPending

	case HardDeleteItem:
		s.Deleted = without(s.Deleted, a.ID)

	case SetItems:
		if !validCollection(a.Collection) || a.Generation < s.Generations[a.Collection] {
			return s
		}
		items := slices.Clone(a.Items)
		switch a.Collection {
		case CollectionActive:
			s.Active = items
		case CollectionAll:
			s.All = items
		case CollectionDeleted:
			s.Deleted = items
		default:
			return s
		}
		s.Sync[a.Collection] = SyncClean

	case SetCategories:
		if a.Generation < s.Generations[CollectionCategories] {
			return s
		}
		s.Categories = slices.Clone(a.Categories)
		s.Sync[CollectionCategories] = SyncClean

	case BeginFetch:
		if validCollection(a.Collection) {
			s.Generations[a.Collection]++
		}

	case MarkStale:
		if !validCollection(a.Collection) || a.Generation < s.Generations[a.Collection] {
			return s
		}
		s.Sync[a.Collection] = SyncStale

	case SetSearchTerm:
		s.SearchTerm = a.Term
		s.CurrentPage = 1

	case SetShowAll:
		s.ShowAll = a.ShowAll
		s.CurrentPage = 1

	case SetViewMode:
		s.ViewMode = a.Mode
		s.CurrentPage = 1
		s.SearchTerm = ""

	case NextPage:
		if s.CurrentPage < Derive(s).TotalPages {
			s.CurrentPage++
		}

	case PrevPage:
		if s.CurrentPage > 1 {
			s.CurrentPage--
		}

	case SetPage:
		s.CurrentPage = max(1, min(a.Page, Derive(s).TotalPages))

	case SetItemsLoading:
		s.LoadingItems = a.Loading

	case SetCategoriesLoading:
		s.LoadingCategories = a.Loading

	case SetSubmitting:
		s.Submitting = a.Submitting

	case SetError:
		rec := a.Record
		s.Error = &rec

	case ClearError:
		s.Error = nil
	}

	return s
}

func validCollection(c Collection) bool {
	return c >= 0 && c < collectionCount
}

func indexOf(items []models.Item, id int64) int {
	return slices.IndexFunc(items, func(item models.Item) bool { return item.ID == id })
}

func prepend(items []models.Item, item models.Item) []models.Item {
	out := make([]models.Item, 0, len(items)+1)
	out = append(out, item)
	return append(out, items...)
}

func without(items []models.Item, id int64) []models.Item {
	out := make([]models.Item, 0, len(items))
	for _, item := range items {
		if item.ID != id {
			out = append(out, item)
		}
	}
	return out
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package mirror

import (
	"strings"

	"github.com/MKhiriev/go-content-admin/models"
)

// Page is what the list view renders for a given state.
type Page struct {
	Items []models.Item
	// Filtered is the number of items before pagination.
	Filtered    int
	TotalPages  int
	CurrentPage int
	// OutOfRange is set when the cursor points past the last page. This
	// happens when the list shrinks under the cursor; the cursor is left
	// where it is until the user navigates.
	OutOfRange bool
}

// Derive computes the visible page of s.
//
// In the active view the server already applied the search, so the
// collection is shown as is. In the trash view the search term is matched
// on the client.
func Derive(s State) Page {
	filtered := Filtered(s)
	total := TotalPages(len(filtered), s.PageSize)

	page := Page{
		Filtered:    len(filtered),
		TotalPages:  total,
		CurrentPage: s.CurrentPage,
	}

	if s.ShowAll {
		page.Items = filtered
		return page
	}

	page.Items = Paginate(filtered, s.CurrentPage, s.PageSize)
	page.OutOfRange = s.CurrentPage > max(total, 1)
	return page
}

// Filtered returns the items of the current view before pagination.
func Filtered(s State) []models.Item {
	if s.ViewMode == ViewTrash {
		return FilterTrash(s.Deleted, s.SearchTerm)
	}
	return s.Active
}

// FilterTrash keeps the items that match term (see [MatchesTrashSearch]).
// An empty term keeps everything.
func FilterTrash(items []models.Item, term string) []models.Item {
	if strings.TrimSpace(term) == "" {
		return items
	}

	out := make([]models.Item, 0, len(items))
	for _, item := range items {
		if MatchesTrashSearch(item, term) {
			out = append(out, item)
		}
	}
	return out
}

// MatchesTrashSearch reports whether term occurs, ignoring case, in the
// title, the description or any heading or text of the introduction and
// content blocks. One matching field is enough.
func MatchesTrashSearch(item models.Item, term string) bool {
	needle := strings.ToLower(strings.TrimSpace(term))
	if needle == "" {
		return true
	}

	contains := func(s string) bool {
		return strings.Contains(strings.ToLower(s), needle)
	}

	if contains(item.Title) || contains(item.Description) {
		return true
	}
	for _, blocks := range [][]models.Block{item.Introduction, item.Content} {
		for _, b := range blocks {
			if contains(b.Heading) || contains(b.Text) {
				return true
			}
		}
	}
	return false
}

// Paginate returns the slice of items shown on page (1-based).
func Paginate(items []models.Item, page, pageSize int) []models.Item {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	page = max(page, 1)

	start := (page - 1) * pageSize
	if start >= len(items) {
		return []models.Item{}
	}
	end := min(start+pageSize, len(items))
	return items[start:end]
}

// TotalPages is ceil(n / pageSize).
func TotalPages(n, pageSize int) int {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return (n + pageSize - 1) / pageSize
}

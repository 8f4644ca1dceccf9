// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Category groups entries of one resource (blog categories, product lines).
type Category struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Slug      string    `json:"slug,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// CategoryPayload is the request body used to create a category.
type CategoryPayload struct {
	Name string `json:"name"`
	Slug string `json:"slug,omitempty"`
}

// AttachCategories fills Item.Category from the matching category name.
// Items whose CategoryID is unknown keep whatever name they already carry.
// The input slice is not modified.
func AttachCategories(items []Item, categories []Category) []Item {
	if len(categories) == 0 {
		return items
	}

	names := make(map[int64]string, len(categories))
	for _, c := range categories {
		names[c.ID] = c.Name
	}

	out := make([]Item, len(items))
	for i, item := range items {
		if name, ok := names[item.CategoryID]; ok {
			item.Category = name
		}
		out[i] = item
	}
	return out
}

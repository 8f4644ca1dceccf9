// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

// ListResponse is the envelope the content API wraps item lists in.
type ListResponse struct {
	Data []Item `json:"data"`
}

// ItemResponse wraps a single item.
type ItemResponse struct {
	Data Item `json:"data"`
}

// CategoriesResponse wraps the category list of a resource.
type CategoriesResponse struct {
	Data []Category `json:"data"`
}

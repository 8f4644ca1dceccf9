// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"slices"
	"time"
)

// Item is a single managed content entry (a blog post or a product) as
// returned by the content API. The authoritative copy lives on the server;
// the client only holds a mirror of it.
type Item struct {
	// ID is the server-assigned identifier.
	ID int64 `json:"id"`

	// Title is the display title of the entry.
	Title string `json:"title"`

	// Description is the short summary shown in lists and cards.
	Description string `json:"description"`

	// Image is the public URL of the cover image, if any.
	Image string `json:"image,omitempty"`

	// ImagePublicID is the storage identifier of the cover image. It is used
	// to delete the file when the image is replaced or the entry is purged.
	ImagePublicID string `json:"imagePublicId,omitempty"`

	// CategoryID references the category the entry belongs to.
	CategoryID int64 `json:"categoryId,omitempty"`

	// Category is the resolved category name. It is filled on the client from
	// the category list (see [AttachCategories]).
	Category string `json:"category,omitempty"`

	// Featured marks the entry for the landing page carousel.
	Featured bool `json:"featured"`

	// Published controls public visibility.
	Published bool `json:"published"`

	// Introduction holds the lead blocks rendered above the body.
	Introduction []Block `json:"introduction,omitempty"`

	// Content holds the body blocks.
	Content []Block `json:"content,omitempty"`

	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt *time.Time `json:"updatedAt,omitempty"`
}

// Block is one text section of an entry body.
type Block struct {
	Heading string `json:"heading,omitempty"`
	Text    string `json:"text,omitempty"`
}

// ItemPayload is the request body used to create an entry. It carries only
// the fields an editor controls.
type ItemPayload struct {
	Title         string  `json:"title"`
	Description   string  `json:"description"`
	Image         string  `json:"image,omitempty"`
	ImagePublicID string  `json:"imagePublicId,omitempty"`
	CategoryID    int64   `json:"categoryId,omitempty"`
	Featured      bool    `json:"featured"`
	Published     bool    `json:"published"`
	Introduction  []Block `json:"introduction,omitempty"`
	Content       []Block `json:"content,omitempty"`
}

// ItemDraft is what an editor submits from a form: the payload plus an
// optional local image file that has to be uploaded first.
type ItemDraft struct {
	Payload ItemPayload

	// ImagePath is a path on the local file system. When non-empty the file
	// is uploaded and the resulting URL replaces Payload.Image.
	ImagePath string
}

// ItemPatch is a partial update. Nil fields are left untouched by the server.
type ItemPatch struct {
	Title         *string  `json:"title,omitempty"`
	Description   *string  `json:"description,omitempty"`
	Image         *string  `json:"image,omitempty"`
	ImagePublicID *string  `json:"imagePublicId,omitempty"`
	CategoryID    *int64   `json:"categoryId,omitempty"`
	Featured      *bool    `json:"featured,omitempty"`
	Published     *bool    `json:"published,omitempty"`
	Introduction  *[]Block `json:"introduction,omitempty"`
	Content       *[]Block `json:"content,omitempty"`
}

// IsEmpty reports whether the patch changes nothing.
func (p ItemPatch) IsEmpty() bool {
	return p == ItemPatch{}
}

// Payload returns the editable part of the item.
func (i Item) Payload() ItemPayload {
	return ItemPayload{
		Title:         i.Title,
		Description:   i.Description,
		Image:         i.Image,
		ImagePublicID: i.ImagePublicID,
		CategoryID:    i.CategoryID,
		Featured:      i.Featured,
		Published:     i.Published,
		Introduction:  slices.Clone(i.Introduction),
		Content:       slices.Clone(i.Content),
	}
}

// Apply returns a copy of the item with every non-nil patch field applied.
func (i Item) Apply(p ItemPatch) Item {
	out := i
	if p.Title != nil {
		out.Title = *p.Title
	}
	if p.Description != nil {
		out.Description = *p.Description
	}
	if p.Image != nil {
		out.Image = *p.Image
	}
	if p.ImagePublicID != nil {
		out.ImagePublicID = *p.ImagePublicID
	}
	if p.CategoryID != nil {
		out.CategoryID = *p.CategoryID
	}
	if p.Featured != nil {
		out.Featured = *p.Featured
	}
	if p.Published != nil {
		out.Published = *p.Published
	}
	if p.Introduction != nil {
		out.Introduction = slices.Clone(*p.Introduction)
	}
	if p.Content != nil {
		out.Content = slices.Clone(*p.Content)
	}
	return out
}

// ChangedFields compares an edited payload against the original item and
// returns a patch holding only the fields that differ.
func ChangedFields(original Item, edited ItemPayload) ItemPatch {
	var p ItemPatch

	if edited.Title != original.Title {
		p.Title = &edited.Title
	}
	if edited.Description != original.Description {
		p.Description = &edited.Description
	}
	if edited.Image != original.Image {
		p.Image = &edited.Image
	}
	if edited.ImagePublicID != original.ImagePublicID {
		p.ImagePublicID = &edited.ImagePublicID
	}
	if edited.CategoryID != original.CategoryID {
		p.CategoryID = &edited.CategoryID
	}
	if edited.Featured != original.Featured {
		p.Featured = &edited.Featured
	}
	if edited.Published != original.Published {
		p.Published = &edited.Published
	}
	if !slices.Equal(edited.Introduction, original.Introduction) {
		intro := slices.Clone(edited.Introduction)
		p.Introduction = &intro
	}
	if !slices.Equal(edited.Content, original.Content) {
		content := slices.Clone(edited.Content)
		p.Content = &content
	}

	return p
}

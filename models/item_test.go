// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleItem() Item {
	return Item{
		ID:           7,
		Title:        "Studio monitors",
		Description:  "Flat response",
		Image:        "https://cdn/x.png",
		CategoryID:   2,
		Featured:     true,
		Introduction: []Block{{Heading: "Intro", Text: "hello"}},
		Content:      []Block{{Text: "body"}},
		CreatedAt:    time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
}

// ── ChangedFields ────────────────────────────────────────────────────────────

func TestChangedFields_NoChanges(t *testing.T) {
	item := sampleItem()

	patch := ChangedFields(item, item.Payload())

	assert.True(t, patch.IsEmpty())
}

func TestChangedFields_OnlyChangedScalarFields(t *testing.T) {
	item := sampleItem()
	edited := item.Payload()
	edited.Title = "Studio monitors v2"
	edited.Featured = false

	patch := ChangedFields(item, edited)

	require.NotNil(t, patch.Title)
	assert.Equal(t, "Studio monitors v2", *patch.Title)
	require.NotNil(t, patch.Featured)
	assert.False(t, *patch.Featured)
	assert.Nil(t, patch.Description)
	assert.Nil(t, patch.Image)
	assert.Nil(t, patch.CategoryID)
	assert.Nil(t, patch.Published)
	assert.Nil(t, patch.Introduction)
	assert.Nil(t, patch.Content)
}

func TestChangedFields_Blocks(t *testing.T) {
	item := sampleItem()
	edited := item.Payload()
	edited.Content = append(edited.Content, Block{Heading: "Specs", Text: "20Hz"})

	patch := ChangedFields(item, edited)

	require.NotNil(t, patch.Content)
	assert.Len(t, *patch.Content, 2)
	assert.Nil(t, patch.Introduction)

	// the patch must not alias the editor's slice
	edited.Content[0].Text = "mutated"
	assert.Equal(t, "body", (*patch.Content)[0].Text)
}

func TestChangedFields_ClearedField(t *testing.T) {
	item := sampleItem()
	edited := item.Payload()
	edited.Image = ""

	patch := ChangedFields(item, edited)

	require.NotNil(t, patch.Image)
	assert.Equal(t, "", *patch.Image)
}

func TestItemPatch_JSONOmitsUnchanged(t *testing.T) {
	title := "new"
	data, err := json.Marshal(ItemPatch{Title: &title})
	require.NoError(t, err)

	assert.JSONEq(t, `{"title":"new"}`, string(data))
}

// ── Apply ────────────────────────────────────────────────────────────────────

func TestItem_Apply(t *testing.T) {
	item := sampleItem()
	edited := item.Payload()
	edited.Description = "Warm response"
	edited.Published = true

	got := item.Apply(ChangedFields(item, edited))

	assert.Equal(t, "Warm response", got.Description)
	assert.True(t, got.Published)
	assert.Equal(t, item.Title, got.Title)
	assert.Equal(t, item.ID, got.ID)
	assert.Equal(t, "Flat response", item.Description, "receiver must stay untouched")
}

// ── AttachCategories ─────────────────────────────────────────────────────────

func TestAttachCategories(t *testing.T) {
	items := []Item{
		{ID: 1, CategoryID: 1},
		{ID: 2, CategoryID: 2},
		{ID: 3, CategoryID: 99, Category: "legacy"},
	}
	categories := []Category{{ID: 1, Name: "Headphones"}, {ID: 2, Name: "Speakers"}}

	got := AttachCategories(items, categories)

	require.Len(t, got, 3)
	assert.Equal(t, "Headphones", got[0].Category)
	assert.Equal(t, "Speakers", got[1].Category)
	assert.Equal(t, "legacy", got[2].Category)
	assert.Empty(t, items[0].Category, "input must not be modified")
}

func TestAttachCategories_NoCategories(t *testing.T) {
	items := []Item{{ID: 1, CategoryID: 1}}

	assert.Equal(t, items, AttachCategories(items, nil))
}

// ── Token ────────────────────────────────────────────────────────────────────

func TestToken_Expired(t *testing.T) {
	now := time.Now()
	past := now.Add(-time.Minute)
	future := now.Add(time.Minute)

	assert.True(t, Token{ExpiresAt: &past}.Expired(now))
	assert.False(t, Token{ExpiresAt: &future}.Expired(now))
	assert.False(t, Token{}.Expired(now))
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-content-admin/internal/logger"
	"github.com/MKhiriev/go-content-admin/internal/mock"
	"github.com/MKhiriev/go-content-admin/internal/store"
)

// ── pushRecent ───────────────────────────────────────────────────────────────

func TestPushRecent(t *testing.T) {
	tests := []struct {
		name  string
		terms []string
		term  string
		want  []string
	}{
		{"first term", []string{}, "amp", []string{"amp"}},
		{"most recent first", []string{"amp"}, "dac", []string{"dac", "amp"}},
		{"duplicate moves to front", []string{"dac", "amp", "cable"}, "amp", []string{"amp", "dac", "cable"}},
		{"trimmed", []string{"amp"}, "  dac  ", []string{"dac", "amp"}},
		{"blank ignored", []string{"amp"}, "   ", []string{"amp"}},
		{"capped at five", []string{"a", "b", "c", "d", "e"}, "f", []string{"f", "a", "b", "c", "d"}},
		{"duplicate at cap keeps five", []string{"a", "b", "c", "d", "e"}, "e", []string{"e", "a", "b", "c", "d"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, pushRecent(tt.terms, tt.term))
		})
	}
}

func TestPushRecent_DoesNotModifyInput(t *testing.T) {
	terms := []string{"a", "b"}

	_ = pushRecent(terms, "c")

	assert.Equal(t, []string{"a", "b"}, terms)
}

// ── recentSearches ───────────────────────────────────────────────────────────

func newTestHistory(t *testing.T) (SearchHistory, *mock.MockLocalStateRepository) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockLocalStateRepository(ctrl)
	return NewSearchHistory(repo, logger.Nop()), repo
}

func TestRecentSearches_Recent_Empty(t *testing.T) {
	history, repo := newTestHistory(t)
	ctx := context.Background()

	repo.EXPECT().Get(ctx, RecentSearchesKey).Return("", store.ErrStateNotFound)

	terms, err := history.Recent(ctx)

	require.NoError(t, err)
	assert.Empty(t, terms)
	assert.NotNil(t, terms)
}

func TestRecentSearches_Recent_Stored(t *testing.T) {
	history, repo := newTestHistory(t)
	ctx := context.Background()

	repo.EXPECT().Get(ctx, RecentSearchesKey).Return(`["dac","amp"]`, nil)

	terms, err := history.Recent(ctx)

	require.NoError(t, err)
	assert.Equal(t, []string{"dac", "amp"}, terms)
}

func TestRecentSearches_Recent_RepoError(t *testing.T) {
	history, repo := newTestHistory(t)
	ctx := context.Background()

	repo.EXPECT().Get(ctx, RecentSearchesKey).Return("", store.ErrExecutingQuery)

	_, err := history.Recent(ctx)

	assert.ErrorIs(t, err, store.ErrExecutingQuery)
}

func TestRecentSearches_Push_Saves(t *testing.T) {
	history, repo := newTestHistory(t)
	ctx := context.Background()

	gomock.InOrder(
		repo.EXPECT().Get(ctx, RecentSearchesKey).Return(`["amp"]`, nil),
		repo.EXPECT().Put(ctx, RecentSearchesKey, `["dac","amp"]`).Return(nil),
	)

	terms, err := history.Push(ctx, "dac")

	require.NoError(t, err)
	assert.Equal(t, []string{"dac", "amp"}, terms)
}

func TestRecentSearches_Push_UnchangedSkipsWrite(t *testing.T) {
	history, repo := newTestHistory(t)
	ctx := context.Background()

	repo.EXPECT().Get(ctx, RecentSearchesKey).Return(`["amp","dac"]`, nil)

	terms, err := history.Push(ctx, "amp")

	require.NoError(t, err)
	assert.Equal(t, []string{"amp", "dac"}, terms)
}

func TestRecentSearches_Push_CorruptValueIsReplaced(t *testing.T) {
	history, repo := newTestHistory(t)
	ctx := context.Background()

	repo.EXPECT().Get(ctx, RecentSearchesKey).Return(`{not json`, nil)
	repo.EXPECT().Put(ctx, RecentSearchesKey, `["amp"]`).Return(nil)

	terms, err := history.Push(ctx, "amp")

	require.NoError(t, err)
	assert.Equal(t, []string{"amp"}, terms)
}

func TestRecentSearches_Push_ReadErrorKeepsHistory(t *testing.T) {
	history, repo := newTestHistory(t)
	ctx := context.Background()

	repo.EXPECT().Get(ctx, RecentSearchesKey).Return("", store.ErrExecutingQuery)
	repo.EXPECT().Put(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

	terms, err := history.Push(ctx, "amp")

	assert.ErrorIs(t, err, store.ErrExecutingQuery)
	assert.Nil(t, terms)
}

func TestRecentSearches_Push_SaveError(t *testing.T) {
	history, repo := newTestHistory(t)
	ctx := context.Background()

	repo.EXPECT().Get(ctx, RecentSearchesKey).Return("", store.ErrStateNotFound)
	repo.EXPECT().Put(ctx, RecentSearchesKey, `["amp"]`).Return(errors.New("database is locked"))

	_, err := history.Push(ctx, "amp")

	assert.Error(t, err)
}

func TestRecentSearches_Clear(t *testing.T) {
	history, repo := newTestHistory(t)
	ctx := context.Background()

	repo.EXPECT().Delete(ctx, RecentSearchesKey).Return(nil)

	require.NoError(t, history.Clear(ctx))
}

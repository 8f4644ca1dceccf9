// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/MKhiriev/go-content-admin/internal/logger"
	"github.com/MKhiriev/go-content-admin/internal/store"
)

const (
	// RecentSearchesKey is the local state key the history is stored under.
	RecentSearchesKey = "recentSearches"

	// MaxRecentSearches caps the number of remembered terms.
	MaxRecentSearches = 5
)

var errCorruptHistory = errors.New("recent searches are not a JSON string array")

type recentSearches struct {
	repo   store.LocalStateRepository
	mu     sync.Mutex
	logger *logger.Logger
}

// NewSearchHistory returns a history persisted in repo as a JSON array.
func NewSearchHistory(repo store.LocalStateRepository, logger *logger.Logger) SearchHistory {
	return &recentSearches{repo: repo, logger: logger}
}

func (r *recentSearches) Recent(ctx context.Context) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.load(ctx)
}

func (r *recentSearches) Push(ctx context.Context, term string) ([]string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	terms, err := r.load(ctx)
	switch {
	case errors.Is(err, errCorruptHistory):
		r.logger.Warn().
			Str("func", "recentSearches.Push").
			Err(err).
			Msg("recent searches are corrupt, starting over")
		terms = nil
	case err != nil:
		return nil, err
	}

	next := pushRecent(terms, term)
	if slices.Equal(next, terms) {
		return next, nil
	}

	raw, err := json.Marshal(next)
	if err != nil {
		return terms, fmt.Errorf("failed to encode recent searches: %w", err)
	}
	if err = r.repo.Put(ctx, RecentSearchesKey, string(raw)); err != nil {
		return terms, fmt.Errorf("failed to save recent searches: %w", err)
	}

	return next, nil
}

func (r *recentSearches) Clear(ctx context.Context) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if err := r.repo.Delete(ctx, RecentSearchesKey); err != nil {
		return fmt.Errorf("failed to clear recent searches: %w", err)
	}
	return nil
}

func (r *recentSearches) load(ctx context.Context) ([]string, error) {
	raw, err := r.repo.Get(ctx, RecentSearchesKey)
	if errors.Is(err, store.ErrStateNotFound) {
		return []string{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load recent searches: %w", err)
	}

	var terms []string
	if err = json.Unmarshal([]byte(raw), &terms); err != nil {
		return nil, fmt.Errorf("%w: %w", errCorruptHistory, err)
	}
	if terms == nil {
		terms = []string{}
	}
	return terms, nil
}

// pushRecent puts term in front of terms, drops an older copy of it and
// keeps at most MaxRecentSearches entries. Blank terms leave terms as is.
func pushRecent(terms []string, term string) []string {
	term = strings.TrimSpace(term)
	if term == "" {
		return terms
	}

	out := make([]string, 0, MaxRecentSearches)
	out = append(out, term)
	for _, t := range terms {
		if t == term {
			continue
		}
		if len(out) == MaxRecentSearches {
			break
		}
		out = append(out, t)
	}
	return out
}

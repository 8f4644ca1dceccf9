// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package mirror

import "sync"

// Dispatcher is the write side of a [Store].
type Dispatcher interface {
	Dispatch(a Action) State
}

// Store owns a [State] and serialises every transition through [Reduce].
// It is safe for concurrent use.
type Store struct {
	mu     sync.Mutex
	state  State
	nextID int
	subs   map[int]func(State)
}

// NewStore returns a store holding [NewState](pageSize).
func NewStore(pageSize int) *Store {
	return &Store{
		state: NewState(pageSize),
		subs:  make(map[int]func(State)),
	}
}

// Dispatch applies a and returns the resulting state. Subscribers are
// called after the store lock is released.
func (s *Store) Dispatch(a Action) State {
	s.mu.Lock()
	s.state = Reduce(s.state, a)
	next := s.state
	subs := make([]func(State), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.mu.Unlock()

	for _, fn := range subs {
		fn(next)
	}
	return next
}

// State returns a snapshot of the current state.
func (s *Store) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

// Begin starts a fetch of collection c and returns its generation. The
// caller passes the generation back in [SetItems], [SetCategories] or
// [MarkStale] so that superseded responses are ignored.
func (s *Store) Begin(c Collection) uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = Reduce(s.state, BeginFetch{Collection: c})
	return s.state.Generation(c)
}

// Subscribe registers fn to be called with the new state after every
// dispatch. The returned function removes the subscription.
func (s *Store) Subscribe(fn func(State)) (unsubscribe func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package mirror holds the client-side copy of the remote content
// collections and the pure state machine that mutates it.
//
// All changes go through [Reduce]: an [Action] is a closed set of structs
// (the interface is sealed by an unexported method), and the reducer never
// mutates the slices of the state it receives. A [Store] serialises
// dispatches so that every transition is atomic with respect to readers.
//
// Three item collections are tracked: [CollectionActive] (the list being
// edited), [CollectionAll] (snapshot used for statistics) and
// [CollectionDeleted] (the trash). Each collection carries a [SyncTag]
// describing whether it matches server truth, and a fetch generation used
// to drop responses that arrive out of order.
package mirror

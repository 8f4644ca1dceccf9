// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the interactive content admin runtime.
//
// It wires the terminal UI, the per-resource list synchronizers and their
// background refresh jobs into a single process lifecycle.
package client

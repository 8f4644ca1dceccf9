// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"strings"

	"github.com/MKhiriev/go-content-admin/internal/app"
)

// humanizeMessage replaces low-level transport failures with a short
// explanation. Every other message is returned unchanged.
func humanizeMessage(msg string) string {
	s := strings.ToLower(msg)
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") {
		return app.MsgUnavailable
	}

	return msg
}

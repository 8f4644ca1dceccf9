// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "time"

// Token describes the bearer token the admin client sends to the content
// API. Only unverified claims are read on the client: the signature is the
// server's business.
type Token struct {
	// SignedString is the compact JWS form sent in the Authorization header.
	SignedString string

	// Subject is the "sub" claim, usually the editor account.
	Subject string

	// ExpiresAt is the "exp" claim. Nil when the token has no expiry.
	ExpiresAt *time.Time
}

// Expired reports whether the token has an expiry that is not after now.
func (t Token) Expired(now time.Time) bool {
	return t.ExpiresAt != nil && !t.ExpiresAt.After(now)
}

// String returns the compact JWS serialization of the token.
func (t Token) String() string {
	return t.SignedString
}

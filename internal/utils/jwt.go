// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package utils

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-content-admin/models"
	"github.com/golang-jwt/jwt/v5"
)

// ErrEmptyToken is returned by [ParseToken] for a blank token.
var ErrEmptyToken = errors.New("empty token")

// ParseToken reads the claims of a bearer token without verifying its
// signature. The signing key belongs to the content API, so the client can
// only use the claims to detect an expired token before sending a request.
//
// A leading "Bearer " prefix is accepted. Opaque tokens that are not JWTs
// are returned with only SignedString set.
//
// Example usage:
//
//	token, err := utils.ParseToken(cfg.App.APIToken)
//	if err == nil && token.Expired(time.Now()) {
//	    // ask the editor for a new token
//	}
func ParseToken(raw string) (models.Token, error) {
	raw = strings.TrimSpace(raw)
	if parsed, err := ParseBearerToken(raw); err == nil {
		raw = parsed
	}
	if raw == "" {
		return models.Token{}, ErrEmptyToken
	}

	token := models.Token{SignedString: raw}
	if strings.Count(raw, ".") != 2 {
		return token, nil
	}

	parsed, _, err := jwt.NewParser().ParseUnverified(raw, &jwt.RegisteredClaims{})
	if err != nil {
		return token, fmt.Errorf("error occurred parsing token claims: %w", err)
	}

	claims, ok := parsed.Claims.(*jwt.RegisteredClaims)
	if !ok {
		return token, errors.New("invalid token claims")
	}

	token.Subject = claims.Subject
	if claims.ExpiresAt != nil {
		exp := claims.ExpiresAt.Time
		token.ExpiresAt = &exp
	}

	return token, nil
}

// ParseBearerToken extracts the token from an "Authorization: Bearer <token>"
// header value.
func ParseBearerToken(authorizationHeader string) (string, error) {
	parts := strings.Split(strings.TrimSpace(authorizationHeader), " ")
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return "", errors.New("invalid authorization header")
	}
	return parts[1], nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package utils provides general-purpose helper utilities
// used across different parts of the application.
// Includes tools for working with context, type-safe keys, hashing,
// HTTP response writing, HTTP client initialization, JWT token generation
// and validation, and other common operations.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// IdentifierCtxKey is the key under which the auth middleware stores the
// identifier taken from a validated bearer token.
//
//	ctx := context.WithValue(ctx, utils.IdentifierCtxKey, "qa-lead@example.com")
var IdentifierCtxKey = contextKey("identifier")

// GetIdentifierFromContext retrieves the signed-in identifier from the context.
// ok is false when the value is missing, empty or has an unexpected type.
func GetIdentifierFromContext(ctx context.Context) (string, bool) {
	identifier, ok := ctx.Value(IdentifierCtxKey).(string)
	if !ok || identifier == "" {
		return "", false
	}
	return identifier, true
}

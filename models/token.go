// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Token wraps a JWT issued after a successful sign-in.
//
// SignedString is the compact form sent in the Authorization header.
// Identifier caches the "sub" claim: the identifier the user signed in with.
type Token struct {
	*jwt.Token `json:"-"`

	jwt.RegisteredClaims

	SignedString string `json:"-"`

	Identifier string `json:"-"`
}

// GetIdentifier returns the "sub" claim.
func (t *Token) GetIdentifier() (string, error) {
	sub, err := t.GetSubject()
	if err != nil {
		return "", fmt.Errorf("error extracting identifier from token: %w", err)
	}
	return sub, nil
}

// String returns the compact JWS serialization of the token.
func (t *Token) String() string {
	return t.SignedString
}

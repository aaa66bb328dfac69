// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session

import (
	"errors"

	"github.com/MKhiriev/go-creds-manager/internal/app"
)

var (
	// ErrAuth is matched by every [AuthError].
	ErrAuth = errors.New("authentication failed")

	// ErrNotAuthenticated is returned by operations that need a signed-in gate.
	ErrNotAuthenticated = errors.New("not signed in")
)

const (
	reasonMissingCredentials = "Enter an identifier and a password."
	reasonRejected           = app.MsgInvalidCredentials
)

// AuthError is a rejected sign-in carrying the reason shown to the user.
type AuthError struct {
	Reason string
	Err    error
}

func (e *AuthError) Error() string {
	return e.Reason
}

// Is makes errors.Is(err, ErrAuth) hold for every AuthError.
func (e *AuthError) Is(target error) bool {
	return target == ErrAuth
}

func (e *AuthError) Unwrap() error {
	return e.Err
}

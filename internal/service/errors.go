// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import "errors"

var (
	// ErrValidation wraps every validators error returned by the services.
	ErrValidation = errors.New("validation failed")

	// ErrAuth is matched by every [AuthError].
	ErrAuth = errors.New("authentication failed")

	// ErrIdentityProviderUnavailable is returned when the identity service
	// cannot be reached or answers with a server error.
	ErrIdentityProviderUnavailable = errors.New("identity provider unavailable")

	ErrUnknownAuthStrategy     = errors.New("unknown auth strategy")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrVersionIsNotSpecified   = errors.New("app version is not specified")
)

// AuthError is a rejected sign-in. Reason is the human-readable message
// shown to the user.
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

func newAuthError(reason string) *AuthError {
	return &AuthError{Reason: reason}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package views

import (
	"errors"
	"fmt"

	"github.com/MKhiriev/go-creds-manager/internal/app"
)

var (
	// ErrValidation is wrapped by every error reported before a store call.
	ErrValidation = errors.New("validation failed")

	// ErrNoSubfolderSelected is returned by Save when no subfolder is selected.
	ErrNoSubfolderSelected = fmt.Errorf("%w: %s", ErrValidation, app.MsgNoSubfolderSelected)

	// ErrEmptyKeyWithValue is returned by Save when a row has a value but a
	// blank key.
	ErrEmptyKeyWithValue = fmt.Errorf("%w: %s", ErrValidation, app.MsgEmptyKeyWithValue)

	// ErrEmptyResult is returned by Save when no row has a key.
	ErrEmptyResult = fmt.Errorf("%w: %s", ErrValidation, app.MsgEmptyResult)

	// ErrInvalidFieldKey is returned by Save when a key contains the path
	// separator.
	ErrInvalidFieldKey = fmt.Errorf("%w: %s", ErrValidation, app.MsgInvalidFieldKey)

	// ErrStore wraps failures of the underlying store. Local state is kept
	// so the user can retry.
	ErrStore = errors.New("store error")
)

// Message returns the text shown to the user for err.
func Message(err error) string {
	switch {
	case errors.Is(err, ErrNoSubfolderSelected):
		return app.MsgNoSubfolderSelected
	case errors.Is(err, ErrEmptyKeyWithValue):
		return app.MsgEmptyKeyWithValue
	case errors.Is(err, ErrEmptyResult):
		return app.MsgEmptyResult
	case errors.Is(err, ErrInvalidFieldKey):
		return app.MsgInvalidFieldKey
	default:
		return err.Error()
	}
}

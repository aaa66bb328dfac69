// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrUnknownFolderType = errors.New("unknown folder type")
	ErrInvalidSubfolder  = errors.New("invalid subfolder name")
	ErrSubfolderRequired = errors.New("subfolder is required")
	ErrEmptyFields       = errors.New("at least one field is required")
	ErrEmptyFieldKey     = errors.New("field key must not be empty")
	ErrInvalidFieldKey   = errors.New("field key must not contain the path separator")
	ErrInvalidFieldValue = errors.New("field value must be a string or a number")
	ErrEmptyIdentifier   = errors.New("identifier is required")
	ErrEmptyPassword     = errors.New("password is required")
)

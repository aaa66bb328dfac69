// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import "errors"

var (
	// ErrUnknownFolderType is returned when a folder type is neither "qa" nor "uat".
	ErrUnknownFolderType = errors.New("unknown folder type")

	// ErrInvalidPath is returned when a path string does not have the
	// "{folderType}" or "{folderType}/{subfolder}" shape.
	ErrInvalidPath = errors.New("invalid path")

	// ErrInvalidSubfolderName is returned for names that are blank or contain
	// the path separator.
	ErrInvalidSubfolderName = errors.New("invalid subfolder name")

	// ErrUnsupportedValue is returned when a field value is neither a string
	// nor a number.
	ErrUnsupportedValue = errors.New("unsupported field value")
)

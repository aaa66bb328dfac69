// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strings"
)

// FolderType is the fixed top-level partition of the credential tree.
type FolderType string

const (
	// FolderQA holds credentials for the QA environment.
	FolderQA FolderType = "qa"

	// FolderUAT holds credentials for the UAT environment.
	FolderUAT FolderType = "uat"
)

// DefaultFolderType is selected by every view on first open.
const DefaultFolderType = FolderQA

// FolderTypes lists every valid folder type in display order.
var FolderTypes = []FolderType{FolderQA, FolderUAT}

// ParseFolderType converts s (case-insensitive, surrounding whitespace
// ignored) into a [FolderType]. Any value other than "qa" or "uat" yields
// [ErrUnknownFolderType].
func ParseFolderType(s string) (FolderType, error) {
	ft := FolderType(strings.ToLower(strings.TrimSpace(s)))
	if !ft.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownFolderType, s)
	}
	return ft, nil
}

// Valid reports whether ft is one of [FolderTypes].
func (ft FolderType) Valid() bool {
	return ft == FolderQA || ft == FolderUAT
}

// Label is the upper-case form used in headings ("QA", "UAT").
func (ft FolderType) Label() string {
	return strings.ToUpper(string(ft))
}

// Next returns the folder type following ft in [FolderTypes], wrapping around.
func (ft FolderType) Next() FolderType {
	for i, t := range FolderTypes {
		if t == ft {
			return FolderTypes[(i+1)%len(FolderTypes)]
		}
	}
	return DefaultFolderType
}

func (ft FolderType) String() string {
	return string(ft)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"fmt"
	"strings"
)

// PathSeparator separates the folder type from the subfolder name.
const PathSeparator = "/"

// Path addresses either a whole folder type ("qa") or one subfolder beneath
// it ("qa/automation1").
type Path struct {
	FolderType FolderType
	Subfolder  string
}

// FolderPath returns the path of the whole folder type ft.
func FolderPath(ft FolderType) Path {
	return Path{FolderType: ft}
}

// SubfolderPath returns the path of subfolder name under ft.
func SubfolderPath(ft FolderType, name string) Path {
	return Path{FolderType: ft, Subfolder: name}
}

// ParsePath parses "qa" or "qa/automation1". Leading and trailing slashes
// are ignored.
func ParsePath(s string) (Path, error) {
	parts := strings.Split(strings.Trim(strings.TrimSpace(s), PathSeparator), PathSeparator)
	if len(parts) == 0 || len(parts) > 2 {
		return Path{}, fmt.Errorf("%w: %q", ErrInvalidPath, s)
	}

	ft, err := ParseFolderType(parts[0])
	if err != nil {
		return Path{}, err
	}

	if len(parts) == 1 {
		return FolderPath(ft), nil
	}

	if err = ValidateSubfolderName(parts[1]); err != nil {
		return Path{}, err
	}

	return SubfolderPath(ft, parts[1]), nil
}

// ValidateSubfolderName rejects blank names and names containing the path
// separator.
func ValidateSubfolderName(name string) error {
	if strings.TrimSpace(name) == "" {
		return fmt.Errorf("%w: name is empty", ErrInvalidSubfolderName)
	}
	if strings.Contains(name, PathSeparator) {
		return fmt.Errorf("%w: %q contains %q", ErrInvalidSubfolderName, name, PathSeparator)
	}
	return nil
}

// IsFolder reports whether p addresses a whole folder type.
func (p Path) IsFolder() bool {
	return p.Subfolder == ""
}

// Parent returns the folder path containing p. For folder paths it returns p.
func (p Path) Parent() Path {
	return FolderPath(p.FolderType)
}

// Overlaps reports whether a change at one of the paths is visible from the
// other: they are equal, or one contains the other.
func (p Path) Overlaps(other Path) bool {
	if p.FolderType != other.FolderType {
		return false
	}
	return p.IsFolder() || other.IsFolder() || p.Subfolder == other.Subfolder
}

func (p Path) String() string {
	if p.IsFolder() {
		return string(p.FolderType)
	}
	return string(p.FolderType) + PathSeparator + p.Subfolder
}

// Title renders the heading shown above the field editor ("QA / automation1").
func (p Path) Title() string {
	if p.IsFolder() {
		return p.FolderType.Label()
	}
	return p.FolderType.Label() + " / " + p.Subfolder
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package validators

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-creds-manager/models"
)

// Field name constants select which checks Validate runs.
const (
	// FieldFolderType checks that the path's folder type is "qa" or "uat".
	FieldFolderType = "folder_type"

	// FieldSubfolder checks the subfolder name when one is set.
	FieldSubfolder = "subfolder"

	// FieldSubfolderRequired rejects folder-type paths.
	FieldSubfolderRequired = "subfolder_required"

	// FieldFields checks that a data item has entries with usable keys
	// and scalar values.
	FieldFields = "fields"

	FieldIdentifier = "identifier"
	FieldPassword   = "password"
)

// CredentialValidator validates paths, data items and login credentials.
type CredentialValidator struct{}

func NewCredentialValidator() Validator {
	return &CredentialValidator{}
}

func (v *CredentialValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Path:
		return v.validatePath(ctx, value, fields...)
	case *models.Path:
		return v.validatePath(ctx, *value, fields...)

	case models.DataItem:
		return v.validateDataItem(ctx, value, fields...)

	case models.Credentials:
		return v.validateCredentials(ctx, value, fields...)
	case *models.Credentials:
		return v.validateCredentials(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *CredentialValidator) validatePath(_ context.Context, path models.Path, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFolderType, FieldSubfolder}
	}

	for _, f := range fields {
		switch f {
		case FieldFolderType:
			if !path.FolderType.Valid() {
				return fmt.Errorf("%w: %q", ErrUnknownFolderType, path.FolderType)
			}
		case FieldSubfolder:
			if path.IsFolder() {
				continue
			}
			if err := models.ValidateSubfolderName(path.Subfolder); err != nil {
				return fmt.Errorf("%w: %w", ErrInvalidSubfolder, err)
			}
		case FieldSubfolderRequired:
			if path.IsFolder() {
				return ErrSubfolderRequired
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *CredentialValidator) validateDataItem(_ context.Context, item models.DataItem, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldFields}
	}

	for _, f := range fields {
		switch f {
		case FieldFields:
			if len(item) == 0 {
				return ErrEmptyFields
			}
			for _, key := range item.Keys() {
				if strings.TrimSpace(key) == "" {
					return ErrEmptyFieldKey
				}
				if strings.Contains(key, models.PathSeparator) {
					return fmt.Errorf("%w: %q", ErrInvalidFieldKey, key)
				}
				if !models.IsScalar(item[key]) {
					return fmt.Errorf("%w: field %q", ErrInvalidFieldValue, key)
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *CredentialValidator) validateCredentials(_ context.Context, creds models.Credentials, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldIdentifier, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldIdentifier:
			if strings.TrimSpace(creds.Identifier) == "" {
				return ErrEmptyIdentifier
			}
		case FieldPassword:
			if creds.Password == "" {
				return ErrEmptyPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

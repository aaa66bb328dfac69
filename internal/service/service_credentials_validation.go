// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-creds-manager/internal/store"
	"github.com/MKhiriev/go-creds-manager/internal/validators"
	"github.com/MKhiriev/go-creds-manager/models"
)

// CredentialValidationService rejects malformed paths and items before
// they reach the store. Every rejection wraps ErrValidation.
type CredentialValidationService struct {
	inner     CredentialService
	validator validators.Validator
}

func NewCredentialValidationService() CredentialServiceWrapper {
	return &CredentialValidationService{
		validator: validators.NewCredentialValidator(),
	}
}

func (v *CredentialValidationService) Wrap(inner CredentialService) CredentialService {
	v.inner = inner
	return v
}

func (v *CredentialValidationService) Folder(ctx context.Context, ft models.FolderType) (models.FolderData, error) {
	if err := v.validate(ctx, models.FolderPath(ft), validators.FieldFolderType); err != nil {
		return nil, err
	}
	return v.inner.Folder(ctx, ft)
}

func (v *CredentialValidationService) Item(ctx context.Context, path models.Path) (models.DataItem, error) {
	if err := v.validate(ctx, path, validators.FieldFolderType, validators.FieldSubfolder, validators.FieldSubfolderRequired); err != nil {
		return nil, err
	}
	return v.inner.Item(ctx, path)
}

func (v *CredentialValidationService) Save(ctx context.Context, path models.Path, item models.DataItem) error {
	if err := v.validate(ctx, path, validators.FieldFolderType, validators.FieldSubfolder, validators.FieldSubfolderRequired); err != nil {
		return err
	}
	if err := v.validate(ctx, item); err != nil {
		return err
	}
	return v.inner.Save(ctx, path, item)
}

func (v *CredentialValidationService) Delete(ctx context.Context, path models.Path) error {
	if err := v.validate(ctx, path); err != nil {
		return err
	}
	return v.inner.Delete(ctx, path)
}

func (v *CredentialValidationService) Watch(ctx context.Context, path models.Path, fn func(models.Snapshot)) (store.Subscription, error) {
	if err := v.validate(ctx, path); err != nil {
		return nil, err
	}
	return v.inner.Watch(ctx, path, fn)
}

func (v *CredentialValidationService) validate(ctx context.Context, obj any, fields ...string) error {
	if err := v.validator.Validate(ctx, obj, fields...); err != nil {
		return fmt.Errorf("%w: %w", ErrValidation, err)
	}
	return nil
}

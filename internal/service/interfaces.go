// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"

	"github.com/MKhiriev/go-creds-manager/internal/store"
	"github.com/MKhiriev/go-creds-manager/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/service_mock.go -package=mock

// Authenticator accepts or rejects a credential pair. A rejection is an
// [*AuthError]; any other error means the decision could not be made.
type Authenticator interface {
	Authenticate(ctx context.Context, creds models.Credentials) error
}

type AuthService interface {
	// Login authenticates creds and issues a token for the identifier.
	Login(ctx context.Context, creds models.Credentials) (models.Token, error)
	CreateToken(ctx context.Context, identifier string) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// CredentialService is the server-side face of the credential store.
type CredentialService interface {
	// Folder returns every subfolder of ft.
	Folder(ctx context.Context, ft models.FolderType) (models.FolderData, error)
	// Item returns the fields of a subfolder; absent subfolders are empty.
	Item(ctx context.Context, path models.Path) (models.DataItem, error)
	// Save fully replaces the fields of a subfolder.
	Save(ctx context.Context, path models.Path, item models.DataItem) error
	// Delete removes path and everything beneath it.
	Delete(ctx context.Context, path models.Path) error
	// Watch delivers the current value of path and every later change.
	Watch(ctx context.Context, path models.Path, fn func(models.Snapshot)) (store.Subscription, error)
}

type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// CredentialServiceWrapper decorates a CredentialService, e.g. with
// validation.
type CredentialServiceWrapper interface {
	Wrap(CredentialService) CredentialService
}

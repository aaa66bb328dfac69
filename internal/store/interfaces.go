// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"

	"github.com/MKhiriev/go-creds-manager/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// Store is the hierarchical real-time credential store.
//
// Subscribe pushes the current value at path immediately and again after
// every change visible from path (the path itself, its parent or a child)
// until the returned Subscription is cancelled. ctx bounds only the initial
// read; the subscription lives until Unsubscribe. Callbacks for one
// subscription never run concurrently.
//
// Write fully replaces the fields of a subfolder path. Delete removes the
// path and everything beneath it.
type Store interface {
	Subscribe(ctx context.Context, path models.Path, fn func(models.Snapshot)) (Subscription, error)
	Write(ctx context.Context, path models.Path, item models.DataItem) error
	Delete(ctx context.Context, path models.Path) error
}

// Subscription cancels a live subscription. Unsubscribe is idempotent.
type Subscription interface {
	Unsubscribe()
}

// CredentialRepository persists credential fields. It has no notion of
// subscribers; the broker layers change fan-out on top.
type CredentialRepository interface {
	ReadFolder(ctx context.Context, ft models.FolderType) (models.FolderData, error)
	ReadItem(ctx context.Context, path models.Path) (models.DataItem, error)
	ReplaceItem(ctx context.Context, path models.Path, item models.DataItem) error
	DeletePath(ctx context.Context, path models.Path) error
}

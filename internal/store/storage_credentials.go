// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-creds-manager/internal/logger"
	"github.com/MKhiriev/go-creds-manager/models"
)

// credentialStore implements [Store] by pairing a repository with the
// broker: mutations go to the repository and, once committed, are
// published to subscribers.
type credentialStore struct {
	repo   CredentialRepository
	broker *Broker
	logger *logger.Logger
}

// NewCredentialStore returns a [Store] over repo. broker must be running
// for subscribers to see changes.
func NewCredentialStore(repo CredentialRepository, broker *Broker, log *logger.Logger) Store {
	return &credentialStore{
		repo:   repo,
		broker: broker,
		logger: log,
	}
}

func (s *credentialStore) Subscribe(ctx context.Context, path models.Path, fn func(models.Snapshot)) (Subscription, error) {
	return s.broker.Subscribe(ctx, path, fn)
}

// Write replaces the subfolder's fields. An empty item removes the subfolder.
func (s *credentialStore) Write(ctx context.Context, path models.Path, item models.DataItem) error {
	if path.IsFolder() {
		return fmt.Errorf("%w: %s", ErrWriteToFolder, path)
	}

	if err := s.repo.ReplaceItem(ctx, path, item); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}

	s.broker.Publish(path)
	return nil
}

func (s *credentialStore) Delete(ctx context.Context, path models.Path) error {
	if err := s.repo.DeletePath(ctx, path); err != nil {
		return fmt.Errorf("delete %s: %w", path, err)
	}

	s.broker.Publish(path)
	return nil
}

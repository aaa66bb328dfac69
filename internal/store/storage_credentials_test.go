// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-creds-manager/internal/logger"
	"github.com/MKhiriev/go-creds-manager/models"
)

type failingRepo struct {
	CredentialRepository
	err error
}

func (f failingRepo) ReplaceItem(context.Context, models.Path, models.DataItem) error { return f.err }
func (f failingRepo) DeletePath(context.Context, models.Path) error                   { return f.err }

func TestCredentialStore_WriteToFolderRejected(t *testing.T) {
	s, _ := newRunningStore(t)

	err := s.Write(context.Background(), models.FolderPath(models.FolderQA), models.DataItem{"k": "v"})
	assert.ErrorIs(t, err, ErrWriteToFolder)
}

func TestCredentialStore_WriteIsFullReplace(t *testing.T) {
	repo := NewMemoryRepository()
	s := NewCredentialStore(repo, NewBroker(repo, logger.Nop()), logger.Nop())
	ctx := context.Background()

	require.NoError(t, s.Write(ctx, automation1, models.DataItem{"email": "a", "password": "b"}))
	require.NoError(t, s.Write(ctx, automation1, models.DataItem{"token": "c"}))

	item, err := repo.ReadItem(ctx, automation1)
	require.NoError(t, err)
	assert.Equal(t, models.DataItem{"token": "c"}, item)
}

func TestCredentialStore_RepositoryErrorsPropagate(t *testing.T) {
	repo := failingRepo{CredentialRepository: NewMemoryRepository(), err: ErrStoreUnavailable}
	s := NewCredentialStore(repo, NewBroker(repo, logger.Nop()), logger.Nop())

	assert.ErrorIs(t, s.Write(context.Background(), automation1, models.DataItem{"k": "v"}), ErrStoreUnavailable)
	assert.ErrorIs(t, s.Delete(context.Background(), automation1), ErrStoreUnavailable)
}

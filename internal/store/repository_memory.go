// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-creds-manager/models"
)

// memoryRepository keeps credentials in process memory. Reads return copies
// so callers never share maps with the repository.
type memoryRepository struct {
	mu   sync.RWMutex
	data map[models.FolderType]models.FolderData
}

// NewMemoryRepository returns an empty in-memory [CredentialRepository].
func NewMemoryRepository() CredentialRepository {
	return &memoryRepository{data: make(map[models.FolderType]models.FolderData)}
}

func (r *memoryRepository) ReadFolder(ctx context.Context, ft models.FolderType) (models.FolderData, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.data[ft].Clone(), nil
}

func (r *memoryRepository) ReadItem(ctx context.Context, path models.Path) (models.DataItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.data[path.FolderType][path.Subfolder].Clone(), nil
}

func (r *memoryRepository) ReplaceItem(ctx context.Context, path models.Path, item models.DataItem) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	for key, value := range item {
		if _, err := models.EncodeValue(value); err != nil {
			return fmt.Errorf("field %q: %w", key, err)
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	folder, ok := r.data[path.FolderType]
	if !ok {
		folder = models.FolderData{}
		r.data[path.FolderType] = folder
	}

	if len(item) == 0 {
		delete(folder, path.Subfolder)
		return nil
	}
	folder[path.Subfolder] = item.Clone()
	return nil
}

func (r *memoryRepository) DeletePath(ctx context.Context, path models.Path) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if path.IsFolder() {
		delete(r.data, path.FolderType)
		return nil
	}
	delete(r.data[path.FolderType], path.Subfolder)
	return nil
}

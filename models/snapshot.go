// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
)

// Snapshot is the full current value at a path as pushed by a subscription.
// Folder is set for folder paths, Item for subfolder paths. Absent values
// are empty, never nil.
type Snapshot struct {
	Path   Path
	Folder FolderData
	Item   DataItem
}

// NewFolderSnapshot builds a snapshot of a folder path.
func NewFolderSnapshot(ft FolderType, folder FolderData) Snapshot {
	if folder == nil {
		folder = FolderData{}
	}
	return Snapshot{Path: FolderPath(ft), Folder: folder}
}

// NewItemSnapshot builds a snapshot of a subfolder path.
func NewItemSnapshot(p Path, item DataItem) Snapshot {
	if item == nil {
		item = DataItem{}
	}
	return Snapshot{Path: p, Item: item}
}

// Exists reports whether the snapshot holds any data.
func (s Snapshot) Exists() bool {
	if s.Path.IsFolder() {
		return len(s.Folder) > 0
	}
	return len(s.Item) > 0
}

// Value returns the payload matching the path kind, for JSON encoding.
func (s Snapshot) Value() any {
	if s.Path.IsFolder() {
		if s.Folder == nil {
			return FolderData{}
		}
		return s.Folder
	}
	if s.Item == nil {
		return DataItem{}
	}
	return s.Item
}

// MarshalValue encodes the payload matching the path kind.
func (s Snapshot) MarshalValue() ([]byte, error) {
	b, err := json.Marshal(s.Value())
	if err != nil {
		return nil, fmt.Errorf("encode snapshot of %s: %w", s.Path, err)
	}
	return b, nil
}

// DecodeSnapshot decodes a payload produced by [Snapshot.MarshalValue] for path p.
func DecodeSnapshot(p Path, data []byte) (Snapshot, error) {
	if p.IsFolder() {
		folder, err := DecodeFolderData(data)
		if err != nil {
			return Snapshot{}, err
		}
		return NewFolderSnapshot(p.FolderType, folder), nil
	}

	item, err := DecodeDataItem(data)
	if err != nil {
		return Snapshot{}, err
	}
	return NewItemSnapshot(p, item), nil
}

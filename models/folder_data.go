// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"encoding/json"
	"fmt"
	"slices"
)

// FolderData maps every subfolder of one folder type to its fields.
type FolderData map[string]DataItem

// Names returns the subfolder names in snapshot order.
func (f FolderData) Names() []string {
	names := make([]string, 0, len(f))
	for name := range f {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Columns returns the union of field names across all subfolders in
// first-seen order, walking subfolders and their fields in snapshot order.
func (f FolderData) Columns() []string {
	seen := make(map[string]struct{})
	columns := make([]string, 0)
	for _, name := range f.Names() {
		for _, key := range f[name].Keys() {
			if _, ok := seen[key]; ok {
				continue
			}
			seen[key] = struct{}{}
			columns = append(columns, key)
		}
	}
	return columns
}

// DecodeFolderData decodes a JSON object of objects keeping numbers as
// [json.Number]. A JSON null decodes to empty data.
func DecodeFolderData(data []byte) (FolderData, error) {
	folder := FolderData{}
	if len(bytes.TrimSpace(data)) == 0 {
		return folder, nil
	}

	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()
	if err := dec.Decode(&folder); err != nil {
		return nil, fmt.Errorf("decode folder data: %w", err)
	}
	if folder == nil {
		folder = FolderData{}
	}
	for name, item := range folder {
		if item == nil {
			delete(folder, name)
		}
	}
	return folder, nil
}

// Clone returns a deep copy of f. A nil folder clones to an empty one.
func (f FolderData) Clone() FolderData {
	out := make(FolderData, len(f))
	for name, item := range f {
		out[name] = item.Clone()
	}
	return out
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package views

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/MKhiriev/go-creds-manager/internal/logger"
	"github.com/MKhiriev/go-creds-manager/internal/store"
	"github.com/MKhiriev/go-creds-manager/models"
)

// Editor is the home view: pick a folder type and a subfolder, edit its
// field rows and save them as a whole.
//
// Editor is not safe for concurrent use. All methods, including Apply, must
// be called from the UI loop.
type Editor struct {
	feed

	folderType models.FolderType
	subfolders []string
	selected   string
	pairs      []models.Pair

	creating bool
	newName  string

	list liveSubscription
	item liveSubscription
}

// NewEditor returns an editor on the default folder type with the default
// rows. Call Open to start listening for subfolders.
func NewEditor(st store.Store, sink EventSink, log *logger.Logger) *Editor {
	return &Editor{
		feed:       feed{store: st, sink: sink, logger: log.WithComponent("editor")},
		folderType: models.DefaultFolderType,
		pairs:      models.DefaultPairs(),
	}
}

// Open subscribes to the subfolder list of the current folder type.
func (e *Editor) Open(ctx context.Context) error {
	return e.SwitchFolderType(ctx, e.folderType)
}

// SwitchFolderType clears the selection, restores the default rows and
// follows the subfolders of ft instead.
func (e *Editor) SwitchFolderType(ctx context.Context, ft models.FolderType) error {
	if !ft.Valid() {
		return fmt.Errorf("%w: %q", models.ErrUnknownFolderType, ft)
	}

	e.list.close()
	e.item.close()

	e.folderType = ft
	e.subfolders = nil
	e.selected = ""
	e.pairs = models.DefaultPairs()
	e.creating = false
	e.newName = ""

	list, err := e.open(ctx, models.FolderPath(ft))
	if err != nil {
		return err
	}
	e.list = list
	return nil
}

// SelectSubfolder follows the fields of name. The rows change when its
// first snapshot arrives. An empty name clears the selection.
func (e *Editor) SelectSubfolder(ctx context.Context, name string) error {
	if name == "" {
		e.item.close()
		e.selected = ""
		return nil
	}
	if err := models.ValidateSubfolderName(name); err != nil {
		return err
	}
	return e.follow(ctx, name)
}

// StartCreate switches to create mode.
func (e *Editor) StartCreate() {
	e.creating = true
}

// CancelCreate leaves create mode and clears its input.
func (e *Editor) CancelCreate() {
	e.creating = false
	e.newName = ""
}

// SetNewName updates the create-mode input.
func (e *Editor) SetNewName(name string) {
	e.newName = name
}

// CreateSubfolder selects a new subfolder with the default rows. Nothing is
// written until Save. Blank names are ignored.
func (e *Editor) CreateSubfolder(ctx context.Context, name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}
	if err := models.ValidateSubfolderName(name); err != nil {
		return err
	}

	e.creating = false
	e.newName = ""
	e.pairs = models.DefaultPairs()
	return e.follow(ctx, name)
}

func (e *Editor) follow(ctx context.Context, name string) error {
	e.item.close()
	e.selected = name

	item, err := e.open(ctx, models.SubfolderPath(e.folderType, name))
	if err != nil {
		return err
	}
	e.item = item
	return nil
}

// AddField appends an empty row.
func (e *Editor) AddField() {
	e.pairs = append(e.pairs, models.Pair{})
}

// RemoveField deletes row i. The last remaining row is never removed.
func (e *Editor) RemoveField(i int) {
	if len(e.pairs) <= 1 || i < 0 || i >= len(e.pairs) {
		return
	}
	e.pairs = slices.Delete(e.pairs, i, i+1)
}

func (e *Editor) EditKey(i int, key string) {
	if i < 0 || i >= len(e.pairs) {
		return
	}
	e.pairs[i].Key = key
}

func (e *Editor) EditValue(i int, value string) {
	if i < 0 || i >= len(e.pairs) {
		return
	}
	e.pairs[i].Value = value
}

// Save validates the rows and replaces the selected subfolder with them.
func (e *Editor) Save(ctx context.Context) error {
	write, err := e.PrepareSave()
	if err != nil {
		return err
	}
	return write(ctx)
}

// PrepareSave validates the rows on the calling goroutine and returns the
// write to run. The returned func captures a copy of the data, so it can run
// off the UI loop while editing continues.
func (e *Editor) PrepareSave() (func(ctx context.Context) error, error) {
	if e.selected == "" {
		return nil, ErrNoSubfolderSelected
	}

	item, err := buildItem(e.pairs)
	if err != nil {
		return nil, err
	}

	path := models.SubfolderPath(e.folderType, e.selected)
	st := e.store
	log := e.logger
	return func(ctx context.Context) error {
		if err := st.Write(ctx, path, item); err != nil {
			log.Err(err).Str("func", "*Editor.Save").Str("path", path.String()).Msg("save failed")
			return fmt.Errorf("%w: %w", ErrStore, err)
		}
		log.Debug().Str("func", "*Editor.Save").Str("path", path.String()).Int("fields", len(item)).Msg("saved")
		return nil
	}, nil
}

// buildItem keeps rows with a non-blank key, trimmed. A later row wins over
// an earlier one with the same key.
func buildItem(pairs []models.Pair) (models.DataItem, error) {
	item := models.DataItem{}
	for _, p := range pairs {
		key := strings.TrimSpace(p.Key)
		if key == "" {
			if p.Value != "" {
				return nil, ErrEmptyKeyWithValue
			}
			continue
		}
		if strings.Contains(key, models.PathSeparator) {
			return nil, fmt.Errorf("%w: %q", ErrInvalidFieldKey, key)
		}
		item[key] = p.Value
	}

	if len(item) == 0 {
		return nil, ErrEmptyResult
	}
	return item, nil
}

// Apply folds a snapshot event into the view and reports whether it
// belonged to a live subscription.
func (e *Editor) Apply(ev SnapshotEvent) bool {
	switch {
	case e.list.matches(ev):
		e.subfolders = ev.Snapshot.Folder.Names()
	case e.item.matches(ev):
		pairs := ev.Snapshot.Item.Pairs()
		if len(pairs) == 0 {
			pairs = models.DefaultPairs()
		}
		e.pairs = pairs
	default:
		return false
	}
	return true
}

// Close cancels every subscription.
func (e *Editor) Close() {
	e.list.close()
	e.item.close()
}

func (e *Editor) FolderType() models.FolderType {
	return e.folderType
}

// Subfolders returns the subfolder names in snapshot order.
func (e *Editor) Subfolders() []string {
	return slices.Clone(e.subfolders)
}

// Selected returns the selected subfolder, or "".
func (e *Editor) Selected() string {
	return e.selected
}

// Pairs returns a copy of the field rows.
func (e *Editor) Pairs() []models.Pair {
	return slices.Clone(e.pairs)
}

func (e *Editor) Creating() bool {
	return e.creating
}

func (e *Editor) NewName() string {
	return e.newName
}

// Title is the heading above the rows, e.g. "QA / automation1". It is empty
// while nothing is selected.
func (e *Editor) Title() string {
	if e.selected == "" {
		return ""
	}
	return models.SubfolderPath(e.folderType, e.selected).Title()
}

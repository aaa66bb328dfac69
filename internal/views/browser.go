// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package views

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-creds-manager/internal/app"
	"github.com/MKhiriev/go-creds-manager/internal/logger"
	"github.com/MKhiriev/go-creds-manager/internal/store"
	"github.com/MKhiriev/go-creds-manager/models"
)

// missingCell is rendered for a column the subfolder does not have.
const missingCell = "-"

// Browser is the table view of one folder type: one row per subfolder, one
// column per field name seen in any of them.
//
// Like [Editor], Browser belongs to the UI loop.
type Browser struct {
	feed

	folderType models.FolderType
	folder     models.FolderData
	loading    bool

	pendingDelete string

	list liveSubscription
}

func NewBrowser(st store.Store, sink EventSink, log *logger.Logger) *Browser {
	return &Browser{
		feed:       feed{store: st, sink: sink, logger: log.WithComponent("browser")},
		folderType: models.DefaultFolderType,
		folder:     models.FolderData{},
	}
}

// Open subscribes to the current folder type.
func (b *Browser) Open(ctx context.Context) error {
	return b.SwitchFolderType(ctx, b.folderType)
}

// SwitchFolderType follows ft instead. The view reports loading until the
// first snapshot of ft arrives, even an empty one.
func (b *Browser) SwitchFolderType(ctx context.Context, ft models.FolderType) error {
	if !ft.Valid() {
		return fmt.Errorf("%w: %q", models.ErrUnknownFolderType, ft)
	}

	b.list.close()
	b.folderType = ft
	b.folder = models.FolderData{}
	b.pendingDelete = ""
	b.loading = true

	list, err := b.open(ctx, models.FolderPath(ft))
	if err != nil {
		b.loading = false
		return err
	}
	b.list = list
	return nil
}

// Apply folds a snapshot event into the view and reports whether it
// belonged to the live subscription.
func (b *Browser) Apply(ev SnapshotEvent) bool {
	if !b.list.matches(ev) {
		return false
	}

	b.folder = ev.Snapshot.Folder
	if b.folder == nil {
		b.folder = models.FolderData{}
	}
	b.loading = false
	return true
}

// Close cancels the subscription.
func (b *Browser) Close() {
	b.list.close()
}

func (b *Browser) FolderType() models.FolderType {
	return b.folderType
}

func (b *Browser) Loading() bool {
	return b.loading
}

// Rows returns the subfolder names in snapshot order.
func (b *Browser) Rows() []string {
	return b.folder.Names()
}

// Columns returns every field name in first-seen order.
func (b *Browser) Columns() []string {
	return b.folder.Columns()
}

// Cell returns the displayed value of column col in subfolder sub.
func (b *Browser) Cell(sub, col string) string {
	v, ok := b.folder[sub].Value(col)
	if !ok {
		return missingCell
	}
	return v
}

func (b *Browser) Count() int {
	return len(b.folder)
}

// Summary is the count line above the table.
func (b *Browser) Summary() string {
	if len(b.folder) == 1 {
		return "1 subfolder found"
	}
	return fmt.Sprintf("%d subfolders found", len(b.folder))
}

// EmptyMessage is shown instead of the table when the folder has no data.
func (b *Browser) EmptyMessage() string {
	return fmt.Sprintf(app.MsgNoData, b.folderType.Label())
}

// RequestDelete asks for confirmation before name is deleted.
func (b *Browser) RequestDelete(name string) {
	if name == "" {
		return
	}
	b.pendingDelete = name
}

// PendingDelete returns the subfolder awaiting confirmation.
func (b *Browser) PendingDelete() (string, bool) {
	return b.pendingDelete, b.pendingDelete != ""
}

// ConfirmMessage is the question shown while a delete is pending.
func (b *Browser) ConfirmMessage() string {
	return fmt.Sprintf(app.MsgConfirmDelete, b.pendingDelete)
}

func (b *Browser) CancelDelete() {
	b.pendingDelete = ""
}

// ConfirmDelete deletes the pending subfolder and everything beneath it.
// The row stays until the next snapshot drops it.
func (b *Browser) ConfirmDelete(ctx context.Context) error {
	del, ok := b.PrepareDelete()
	if !ok {
		return nil
	}
	return del(ctx)
}

// PrepareDelete takes the pending delete on the calling goroutine and
// returns the call to run. ok is false when nothing is pending.
func (b *Browser) PrepareDelete() (del func(ctx context.Context) error, ok bool) {
	if b.pendingDelete == "" {
		return nil, false
	}

	path := models.SubfolderPath(b.folderType, b.pendingDelete)
	b.pendingDelete = ""

	st := b.store
	log := b.logger
	return func(ctx context.Context) error {
		if err := st.Delete(ctx, path); err != nil {
			log.Err(err).Str("func", "*Browser.ConfirmDelete").Str("path", path.String()).Msg("delete failed")
			return fmt.Errorf("%w: %w", ErrStore, err)
		}
		log.Debug().Str("func", "*Browser.ConfirmDelete").Str("path", path.String()).Msg("deleted")
		return nil
	}, true
}

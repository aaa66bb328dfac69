// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/MKhiriev/go-creds-manager/internal/views"
)

// browserModel draws a [views.Browser] as a table. Column 0 holds the
// subfolder names.
type browserModel struct {
	view *views.Browser
	run  runner

	row      int
	col      int
	deleting bool
}

func newBrowserModel(view *views.Browser, run runner) *browserModel {
	return &browserModel{view: view, run: run}
}

func (m *browserModel) apply(ev views.SnapshotEvent) {
	if m.view.Apply(ev) {
		m.clamp()
	}
}

func (m *browserModel) clamp() {
	rows := len(m.view.Rows())
	cols := len(m.view.Columns()) + 1
	m.row = min(max(m.row, 0), max(rows-1, 0))
	m.col = min(max(m.col, 0), cols-1)
}

func (m *browserModel) switchFolderType() error {
	next := m.view.FolderType().Next()
	m.row, m.col = 0, 0
	return m.run.do(func(ctx context.Context) error {
		return m.view.SwitchFolderType(ctx, next)
	})
}

func (m *browserModel) update(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.up):
		m.row--
	case key.Matches(msg, keys.down):
		m.row++
	case key.Matches(msg, keys.left):
		m.col--
	case key.Matches(msg, keys.right):
		m.col++
	case key.Matches(msg, keys.deleteRow):
		if name, ok := m.selectedRow(); ok && !m.deleting {
			m.view.RequestDelete(name)
		}
	}
	m.clamp()
	return nil
}

func (m *browserModel) confirming() bool {
	_, pending := m.view.PendingDelete()
	return pending
}

// confirm answers the pending delete question.
func (m *browserModel) confirm(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.yes):
		name, _ := m.view.PendingDelete()
		del, ok := m.view.PrepareDelete()
		if !ok {
			return nil
		}
		m.deleting = true
		return m.run.cmd(del, func(err error) tea.Msg { return deletedMsg{name: name, err: err} })
	case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
		m.view.CancelDelete()
	}
	return nil
}

func (m *browserModel) selectedRow() (string, bool) {
	rows := m.view.Rows()
	if m.row < 0 || m.row >= len(rows) {
		return "", false
	}
	return rows[m.row], true
}

// selectedCell returns the text under the cursor.
func (m *browserModel) selectedCell() (string, bool) {
	name, ok := m.selectedRow()
	if !ok {
		return "", false
	}
	if m.col == 0 {
		return name, true
	}
	columns := m.view.Columns()
	if m.col > len(columns) {
		return "", false
	}
	return m.view.Cell(name, columns[m.col-1]), true
}

func (m *browserModel) View(spin string) string {
	var b strings.Builder
	b.WriteString(renderFolderTypes(m.view.FolderType()))
	b.WriteString("\n\n")

	switch {
	case m.view.Loading():
		b.WriteString(spin + " Loading...")
	case m.view.Count() == 0:
		b.WriteString(m.view.EmptyMessage())
	default:
		b.WriteString(m.view.Summary())
		b.WriteString("\n\n")
		b.WriteString(m.table())
	}

	if m.deleting {
		b.WriteString("\n\n" + spin + " Deleting...")
	}
	return b.String()
}

func (m *browserModel) table() string {
	columns := m.view.Columns()
	header := append([]string{"Subfolder"}, columns...)

	names := m.view.Rows()
	rows := make([][]string, 0, len(names))
	for _, name := range names {
		row := make([]string, 0, len(header))
		row = append(row, name)
		for _, col := range columns {
			row = append(row, m.view.Cell(name, col))
		}
		rows = append(rows, row)
	}
	return renderTable(header, rows, m.row, m.col)
}

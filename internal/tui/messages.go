// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"github.com/MKhiriev/go-creds-manager/internal/views"
	"github.com/MKhiriev/go-creds-manager/models"
	tea "github.com/charmbracelet/bubbletea"
)

// busMsg wraps a message that arrived through the event bus. Handling it
// re-arms the bus listener.
type busMsg struct {
	msg tea.Msg
}

type openViewsMsg struct{}

type editorSnapshotMsg struct {
	event views.SnapshotEvent
}

type browserSnapshotMsg struct {
	event views.SnapshotEvent
}

type streamFailedMsg struct {
	path models.Path
	err  error
}

type signedInMsg struct {
	err error
}

type savedMsg struct {
	err error
}

type deletedMsg struct {
	name string
	err  error
}

type copiedMsg struct {
	err error
}

type clearStatusMsg struct {
	id int
}

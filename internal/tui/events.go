// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"time"

	"github.com/MKhiriev/go-creds-manager/internal/views"
	"github.com/MKhiriev/go-creds-manager/models"
	tea "github.com/charmbracelet/bubbletea"
)

const eventBufferSize = 64

// eventBus carries messages produced on subscription goroutines into the
// update loop. Senders block while the buffer is full and give up once ctx
// is done.
type eventBus struct {
	ctx context.Context
	ch  chan busMsg
}

func newEventBus(ctx context.Context) *eventBus {
	return &eventBus{ctx: ctx, ch: make(chan busMsg, eventBufferSize)}
}

func (b *eventBus) post(msg tea.Msg) {
	select {
	case b.ch <- busMsg{msg: msg}:
	case <-b.ctx.Done():
	}
}

// listen waits for the next bus message.
func (b *eventBus) listen() tea.Cmd {
	return func() tea.Msg {
		select {
		case msg := <-b.ch:
			return msg
		case <-b.ctx.Done():
			return nil
		}
	}
}

func (b *eventBus) editorSink(ev views.SnapshotEvent) {
	b.post(editorSnapshotMsg{event: ev})
}

func (b *eventBus) browserSink(ev views.SnapshotEvent) {
	b.post(browserSnapshotMsg{event: ev})
}

func (b *eventBus) streamFailed(path models.Path, err error) {
	b.post(streamFailedMsg{path: path, err: err})
}

// runner bounds the store calls made on behalf of the UI.
type runner struct {
	ctx     context.Context
	timeout time.Duration
}

func (r runner) do(fn func(ctx context.Context) error) error {
	ctx, cancel := context.WithTimeout(r.ctx, r.timeout)
	defer cancel()
	return fn(ctx)
}

// cmd runs fn off the update loop and reports its result through done.
func (r runner) cmd(fn func(ctx context.Context) error, done func(error) tea.Msg) tea.Cmd {
	return func() tea.Msg {
		return done(r.do(fn))
	}
}

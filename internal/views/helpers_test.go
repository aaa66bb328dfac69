// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package views

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-creds-manager/internal/logger"
	"github.com/MKhiriev/go-creds-manager/internal/mock"
	"github.com/MKhiriev/go-creds-manager/internal/store"
	"github.com/MKhiriev/go-creds-manager/models"
)

const pumpTimeout = 2 * time.Second

// newMemoryStore returns a running in-memory store seeded with data.
func newMemoryStore(t *testing.T, data map[models.Path]models.DataItem) store.Store {
	t.Helper()

	repo := store.NewMemoryRepository()
	broker := store.NewBroker(repo, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go broker.Run(ctx)

	st := store.NewCredentialStore(repo, broker, logger.Nop())
	for path, item := range data {
		require.NoError(t, st.Write(context.Background(), path, item))
	}
	return st
}

// eventQueue stands in for the UI loop's message queue.
type eventQueue chan SnapshotEvent

func newEventQueue() eventQueue {
	return make(eventQueue, 256)
}

func (q eventQueue) sink(ev SnapshotEvent) {
	q <- ev
}

// pumpUntil applies queued events until cond holds.
func (q eventQueue) pumpUntil(t *testing.T, apply func(SnapshotEvent) bool, cond func() bool) {
	t.Helper()

	deadline := time.After(pumpTimeout)
	for !cond() {
		select {
		case ev := <-q:
			apply(ev)
		case <-deadline:
			t.Fatal("condition not reached before timeout")
		}
	}
}

// expectSubscriptions lets st accept any number of subscriptions.
func expectSubscriptions(ctrl *gomock.Controller, st *mock.MockStore) {
	sub := mock.NewMockSubscription(ctrl)
	sub.EXPECT().Unsubscribe().AnyTimes()
	st.EXPECT().Subscribe(gomock.Any(), gomock.Any(), gomock.Any()).Return(sub, nil).AnyTimes()
}

func newMockedEditor(t *testing.T) (*Editor, *mock.MockStore) {
	t.Helper()
	ctrl := gomock.NewController(t)
	st := mock.NewMockStore(ctrl)
	expectSubscriptions(ctrl, st)

	e := NewEditor(st, newEventQueue().sink, logger.Nop())
	require.NoError(t, e.Open(context.Background()))
	return e, st
}

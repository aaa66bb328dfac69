// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package views

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-creds-manager/internal/logger"
	"github.com/MKhiriev/go-creds-manager/internal/store"
	"github.com/MKhiriev/go-creds-manager/models"
)

// SnapshotEvent carries one snapshot from a subscription goroutine to the
// UI loop. Generation identifies the subscription that produced it.
type SnapshotEvent struct {
	Generation uint64
	Snapshot   models.Snapshot
}

// EventSink receives snapshot events on subscription goroutines. Views never
// change state inside the sink; the UI loop hands events back through Apply.
type EventSink func(SnapshotEvent)

// feed opens subscriptions tagged with increasing generations.
type feed struct {
	store  store.Store
	sink   EventSink
	logger *logger.Logger

	generation uint64
}

// liveSubscription is one open subscription and its generation. The zero
// value is an idle slot.
type liveSubscription struct {
	generation uint64
	path       models.Path
	sub        store.Subscription
}

func (f *feed) open(ctx context.Context, path models.Path) (liveSubscription, error) {
	f.generation++
	generation := f.generation
	sink := f.sink

	sub, err := f.store.Subscribe(ctx, path, func(snapshot models.Snapshot) {
		sink(SnapshotEvent{Generation: generation, Snapshot: snapshot})
	})
	if err != nil {
		f.logger.Err(err).Str("func", "*feed.open").Str("path", path.String()).Msg("subscribe failed")
		return liveSubscription{}, fmt.Errorf("%w: subscribe to %s: %w", ErrStore, path, err)
	}

	f.logger.Debug().Str("func", "*feed.open").
		Str("path", path.String()).
		Uint64("generation", generation).
		Msg("subscribed")
	return liveSubscription{generation: generation, path: path, sub: sub}, nil
}

// close cancels s and resets it to an idle slot.
func (s *liveSubscription) close() {
	if s.sub != nil {
		s.sub.Unsubscribe()
	}
	*s = liveSubscription{}
}

func (s liveSubscription) matches(ev SnapshotEvent) bool {
	return s.sub != nil && s.generation == ev.Generation
}

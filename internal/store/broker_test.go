// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-creds-manager/internal/logger"
	"github.com/MKhiriev/go-creds-manager/models"
)

const waitFor = 2 * time.Second

// recorder collects snapshots delivered to one subscription.
type recorder struct {
	mu        sync.Mutex
	snapshots []models.Snapshot
	running   int
	overlap   bool
	delay     time.Duration
}

func (r *recorder) fn(s models.Snapshot) {
	r.mu.Lock()
	r.running++
	if r.running > 1 {
		r.overlap = true
	}
	r.mu.Unlock()

	if r.delay > 0 {
		time.Sleep(r.delay)
	}

	r.mu.Lock()
	r.snapshots = append(r.snapshots, s)
	r.running--
	r.mu.Unlock()
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.snapshots)
}

func (r *recorder) last() models.Snapshot {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.snapshots) == 0 {
		return models.Snapshot{}
	}
	return r.snapshots[len(r.snapshots)-1]
}

// newRunningStore returns a memory-backed store whose notifier runs until
// the test ends.
func newRunningStore(t *testing.T) (Store, *Broker) {
	t.Helper()
	repo := NewMemoryRepository()
	broker := NewBroker(repo, logger.Nop())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		broker.Run(ctx)
		close(done)
	}()
	t.Cleanup(func() {
		cancel()
		<-done
	})

	return NewCredentialStore(repo, broker, logger.Nop()), broker
}

func TestBroker_InitialSnapshotOfAbsentPath(t *testing.T) {
	s, _ := newRunningStore(t)
	rec := &recorder{}

	sub, err := s.Subscribe(context.Background(), automation1, rec.fn)
	require.NoError(t, err)
	defer sub.Unsubscribe()

	require.Eventually(t, func() bool { return rec.count() == 1 }, waitFor, 5*time.Millisecond)
	assert.NotNil(t, rec.last().Item)
	assert.Empty(t, rec.last().Item)
	assert.Equal(t, automation1, rec.last().Path)
}

func TestBroker_ItemSubscriberSeesWrites(t *testing.T) {
	s, _ := newRunningStore(t)
	ctx := context.Background()
	rec := &recorder{}

	sub, err := s.Subscribe(ctx, automation1, rec.fn)
	require.NoError(t, err)
	defer sub.Unsubscribe()

	require.NoError(t, s.Write(ctx, automation1, models.DataItem{"email": "a@x.com"}))

	require.Eventually(t, func() bool {
		return rec.last().Item["email"] == "a@x.com"
	}, waitFor, 5*time.Millisecond)
}

func TestBroker_FolderSubscriberSeesChildChanges(t *testing.T) {
	s, _ := newRunningStore(t)
	ctx := context.Background()
	rec := &recorder{}

	sub, err := s.Subscribe(ctx, models.FolderPath(models.FolderQA), rec.fn)
	require.NoError(t, err)
	defer sub.Unsubscribe()

	require.NoError(t, s.Write(ctx, automation1, models.DataItem{"email": "a@x.com"}))
	require.Eventually(t, func() bool {
		_, ok := rec.last().Folder["automation1"]
		return ok
	}, waitFor, 5*time.Millisecond)

	require.NoError(t, s.Delete(ctx, automation1))
	require.Eventually(t, func() bool {
		snap := rec.last()
		_, ok := snap.Folder["automation1"]
		return !ok && snap.Folder != nil
	}, waitFor, 5*time.Millisecond)
}

func TestBroker_ItemSubscriberSeesFolderDelete(t *testing.T) {
	s, _ := newRunningStore(t)
	ctx := context.Background()
	require.NoError(t, s.Write(ctx, automation1, models.DataItem{"email": "a@x.com"}))

	rec := &recorder{}
	sub, err := s.Subscribe(ctx, automation1, rec.fn)
	require.NoError(t, err)
	defer sub.Unsubscribe()

	require.Eventually(t, func() bool { return len(rec.last().Item) == 1 }, waitFor, 5*time.Millisecond)

	require.NoError(t, s.Delete(ctx, models.FolderPath(models.FolderQA)))
	require.Eventually(t, func() bool {
		return rec.count() >= 2 && len(rec.last().Item) == 0
	}, waitFor, 5*time.Millisecond)
}

func TestBroker_UnrelatedPathNotNotified(t *testing.T) {
	s, _ := newRunningStore(t)
	ctx := context.Background()
	rec := &recorder{}

	sub, err := s.Subscribe(ctx, models.FolderPath(models.FolderUAT), rec.fn)
	require.NoError(t, err)
	defer sub.Unsubscribe()
	require.Eventually(t, func() bool { return rec.count() == 1 }, waitFor, 5*time.Millisecond)

	other := &recorder{}
	otherSub, err := s.Subscribe(ctx, models.FolderPath(models.FolderQA), other.fn)
	require.NoError(t, err)
	defer otherSub.Unsubscribe()

	require.NoError(t, s.Write(ctx, automation1, models.DataItem{"email": "a@x.com"}))
	require.Eventually(t, func() bool { return other.count() >= 2 }, waitFor, 5*time.Millisecond)

	assert.Equal(t, 1, rec.count())
}

func TestBroker_UnsubscribeStopsDelivery(t *testing.T) {
	s, broker := newRunningStore(t)
	ctx := context.Background()
	rec := &recorder{}

	sub, err := s.Subscribe(ctx, automation1, rec.fn)
	require.NoError(t, err)
	require.Eventually(t, func() bool { return rec.count() == 1 }, waitFor, 5*time.Millisecond)

	sub.Unsubscribe()
	sub.Unsubscribe()
	assert.Zero(t, broker.Subscribers())

	require.NoError(t, s.Write(ctx, automation1, models.DataItem{"email": "a@x.com"}))
	time.Sleep(50 * time.Millisecond)
	assert.Equal(t, 1, rec.count())
}

func TestBroker_SlowSubscriberGetsLatestWithoutOverlap(t *testing.T) {
	s, _ := newRunningStore(t)
	ctx := context.Background()
	rec := &recorder{delay: 20 * time.Millisecond}

	sub, err := s.Subscribe(ctx, automation1, rec.fn)
	require.NoError(t, err)
	defer sub.Unsubscribe()

	for i := range 20 {
		require.NoError(t, s.Write(ctx, automation1, models.DataItem{"n": i}))
	}

	require.Eventually(t, func() bool {
		return models.FormatValue(rec.last().Item["n"]) == "19"
	}, waitFor, 5*time.Millisecond)

	rec.mu.Lock()
	defer rec.mu.Unlock()
	assert.False(t, rec.overlap, "callbacks of one subscription must not overlap")
	assert.Less(t, len(rec.snapshots), 21, "intermediate snapshots are coalesced")
}

func TestBroker_CloseRejectsNewSubscriptions(t *testing.T) {
	broker := NewBroker(NewMemoryRepository(), logger.Nop())
	broker.Close()
	broker.Close()

	_, err := broker.Subscribe(context.Background(), automation1, func(models.Snapshot) {})
	assert.ErrorIs(t, err, ErrStoreClosed)
}

func TestBroker_SubscribeReadErrorUnregisters(t *testing.T) {
	broker := NewBroker(NewMemoryRepository(), logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := broker.Subscribe(ctx, automation1, func(models.Snapshot) {})
	assert.ErrorIs(t, err, context.Canceled)
	assert.Zero(t, broker.Subscribers())
}

func TestBroker_RunStopsOnContextCancel(t *testing.T) {
	broker := NewBroker(NewMemoryRepository(), logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())

	done := make(chan struct{})
	go func() {
		broker.Run(ctx)
		close(done)
	}()

	_, err := broker.Subscribe(context.Background(), automation1, func(models.Snapshot) {})
	require.NoError(t, err)

	cancel()
	select {
	case <-done:
	case <-time.After(waitFor):
		t.Fatal("Run did not return after cancel")
	}
	assert.Zero(t, broker.Subscribers())
}

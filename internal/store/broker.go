// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"sync"
	"sync/atomic"

	"github.com/MKhiriev/go-creds-manager/internal/logger"
	"github.com/MKhiriev/go-creds-manager/internal/utils"
	"github.com/MKhiriev/go-creds-manager/models"
)

// Broker fans change notifications out to subscribers.
//
// Every read for a subscriber is stamped with a sequence number taken before
// the read starts; a subscriber drops any snapshot older than the last one
// it accepted. Combined with publishing only after a write commits, this
// makes the last value a subscriber sees always reflect the latest write.
//
// Each subscriber owns a one-slot mailbox drained by its own goroutine, so
// callbacks for one subscription never overlap and a slow consumer only
// sees the newest snapshot. Run drains the change queue.
type Broker struct {
	repo   CredentialRepository
	logger *logger.Logger
	ids    *utils.UUIDGenerator

	seq atomic.Uint64

	mu      sync.Mutex
	subs    map[string]*subscriber
	pending map[models.Path]struct{}
	closed  bool

	wake chan struct{}
}

// NewBroker returns a broker reading snapshots from repo.
func NewBroker(repo CredentialRepository, log *logger.Logger) *Broker {
	return &Broker{
		repo:    repo,
		logger:  log.WithComponent("broker"),
		ids:     utils.NewUUIDGenerator(),
		subs:    make(map[string]*subscriber),
		pending: make(map[models.Path]struct{}),
		wake:    make(chan struct{}, 1),
	}
}

// Subscribe registers fn for path and delivers the current value.
func (b *Broker) Subscribe(ctx context.Context, path models.Path, fn func(models.Snapshot)) (Subscription, error) {
	s := &subscriber{
		id:     b.ids.Generate(),
		path:   path,
		fn:     fn,
		broker: b,
		wake:   make(chan struct{}, 1),
		done:   make(chan struct{}),
	}

	// register before reading so no change between the read and the
	// registration can be missed
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return nil, ErrStoreClosed
	}
	b.subs[s.id] = s
	b.mu.Unlock()

	seq := b.seq.Add(1)
	snapshot, err := b.read(ctx, path)
	if err != nil {
		b.remove(s.id)
		return nil, err
	}

	go s.run()
	s.offer(seq, snapshot)

	b.logger.Debug().Str("func", "*Broker.Subscribe").
		Str("subscription_id", s.id).
		Str("path", path.String()).
		Msg("subscribed")
	return s, nil
}

// Publish records that paths changed and wakes the dispatcher. It never
// blocks.
func (b *Broker) Publish(paths ...models.Path) {
	b.mu.Lock()
	for _, p := range paths {
		b.pending[p] = struct{}{}
	}
	b.mu.Unlock()

	select {
	case b.wake <- struct{}{}:
	default:
	}
}

// Run dispatches published changes until ctx is done, then closes the
// broker and stops every subscriber.
func (b *Broker) Run(ctx context.Context) {
	b.logger.Info().Str("func", "*Broker.Run").Msg("notifier started")
	defer b.logger.Info().Str("func", "*Broker.Run").Msg("notifier stopped")

	for {
		select {
		case <-ctx.Done():
			b.Close()
			return
		case <-b.wake:
			b.dispatch(ctx)
		}
	}
}

// Close stops every subscriber. Later Subscribe calls fail with
// [ErrStoreClosed].
func (b *Broker) Close() {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.closed = true
	subs := b.subs
	b.subs = make(map[string]*subscriber)
	b.mu.Unlock()

	for _, s := range subs {
		s.stop()
	}
}

// Subscribers returns the number of live subscriptions.
func (b *Broker) Subscribers() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.subs)
}

func (b *Broker) dispatch(ctx context.Context) {
	b.mu.Lock()
	changed := make([]models.Path, 0, len(b.pending))
	for p := range b.pending {
		changed = append(changed, p)
	}
	clear(b.pending)

	affected := make(map[models.Path][]*subscriber)
	for _, s := range b.subs {
		for _, p := range changed {
			if s.path.Overlaps(p) {
				affected[s.path] = append(affected[s.path], s)
				break
			}
		}
	}
	b.mu.Unlock()

	if len(affected) == 0 {
		return
	}

	seq := b.seq.Add(1)
	for path, subs := range affected {
		snapshot, err := b.read(ctx, path)
		if err != nil {
			b.logger.Err(err).Str("func", "*Broker.dispatch").
				Str("path", path.String()).
				Msg("error reading snapshot for subscribers")
			continue
		}
		for _, s := range subs {
			s.offer(seq, snapshot)
		}
	}
}

func (b *Broker) read(ctx context.Context, path models.Path) (models.Snapshot, error) {
	if path.IsFolder() {
		folder, err := b.repo.ReadFolder(ctx, path.FolderType)
		if err != nil {
			return models.Snapshot{}, err
		}
		return models.NewFolderSnapshot(path.FolderType, folder), nil
	}

	item, err := b.repo.ReadItem(ctx, path)
	if err != nil {
		return models.Snapshot{}, err
	}
	return models.NewItemSnapshot(path, item), nil
}

func (b *Broker) remove(id string) {
	b.mu.Lock()
	delete(b.subs, id)
	b.mu.Unlock()
}

type subscriber struct {
	id     string
	path   models.Path
	fn     func(models.Snapshot)
	broker *Broker

	mu     sync.Mutex
	seq    uint64
	latest *models.Snapshot

	wake chan struct{}
	done chan struct{}
	once sync.Once
}

// offer replaces the mailbox content unless snapshot is older than what
// the subscriber already accepted.
func (s *subscriber) offer(seq uint64, snapshot models.Snapshot) {
	s.mu.Lock()
	if seq <= s.seq {
		s.mu.Unlock()
		return
	}
	s.seq = seq
	s.latest = &snapshot
	s.mu.Unlock()

	select {
	case s.wake <- struct{}{}:
	default:
	}
}

func (s *subscriber) run() {
	for {
		select {
		case <-s.done:
			return
		case <-s.wake:
		}

		s.mu.Lock()
		snapshot := s.latest
		s.latest = nil
		s.mu.Unlock()

		if snapshot == nil {
			continue
		}

		select {
		case <-s.done:
			return
		default:
			s.fn(*snapshot)
		}
	}
}

func (s *subscriber) stop() {
	s.once.Do(func() { close(s.done) })
}

// Unsubscribe implements [Subscription].
func (s *subscriber) Unsubscribe() {
	s.stop()
	s.broker.remove(s.id)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-creds-manager/internal/logger"
)

// blockingWorker counts starts and blocks until ctx is done.
type blockingWorker struct {
	started atomic.Int32
	stopped atomic.Int32
}

func (b *blockingWorker) Run(ctx context.Context) {
	b.started.Add(1)
	<-ctx.Done()
	b.stopped.Add(1)
}

func TestWorkers_Run_AllWorkersAreCalled(t *testing.T) {
	w1, w2, w3 := &blockingWorker{}, &blockingWorker{}, &blockingWorker{}
	ws := NewWorkers(logger.Nop()).Add("one", w1).Add("two", w2).Add("three", w3)
	require.Equal(t, 3, ws.Len())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		ws.Run(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool {
		return w1.started.Load() == 1 && w2.started.Load() == 1 && w3.started.Load() == 1
	}, time.Second, 5*time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Run did not return after cancel")
	}

	for i, w := range []*blockingWorker{w1, w2, w3} {
		assert.Equal(t, int32(1), w.stopped.Load(), "worker[%d]", i)
	}
}

func TestWorkers_Run_Empty(t *testing.T) {
	ws := NewWorkers(logger.Nop())

	// returns immediately with nothing to wait for
	ws.Run(context.Background())
}

func TestWorkers_Add_SkipsNilAndReplacesByName(t *testing.T) {
	var calls atomic.Int32
	first := WorkerFunc(func(context.Context) { calls.Add(1) })
	second := WorkerFunc(func(context.Context) { calls.Add(10) })

	ws := NewWorkers(logger.Nop()).
		Add("job", first).
		Add("job", second).
		Add("nil", nil)
	assert.Equal(t, 1, ws.Len())

	ws.Run(context.Background())
	assert.Equal(t, int32(10), calls.Load())
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package workers

import (
	"context"
	"sync"

	"github.com/MKhiriev/go-creds-manager/internal/logger"
)

// Workers runs a named set of workers concurrently.
type Workers struct {
	workers map[string]Worker
	logger  *logger.Logger
}

// NewWorkers returns an empty set. Nil workers passed to Add are skipped.
func NewWorkers(log *logger.Logger) *Workers {
	return &Workers{
		workers: make(map[string]Worker),
		logger:  log,
	}
}

// Add registers w under name, replacing any worker with the same name.
func (w *Workers) Add(name string, worker Worker) *Workers {
	if worker != nil {
		w.workers[name] = worker
	}
	return w
}

// Len returns the number of registered workers.
func (w *Workers) Len() int {
	return len(w.workers)
}

// Run starts every worker in its own goroutine and blocks until all of
// them have returned. Workers stop when ctx is done.
func (w *Workers) Run(ctx context.Context) {
	var wg sync.WaitGroup
	for name, worker := range w.workers {
		wg.Add(1)
		go func() {
			defer wg.Done()
			w.logger.Info().Str("func", "*Workers.Run").Str("worker", name).Msg("worker started")
			worker.Run(ctx)
			w.logger.Info().Str("func", "*Workers.Run").Str("worker", name).Msg("worker stopped")
		}()
	}
	wg.Wait()
}

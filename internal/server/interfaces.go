// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package server

import "context"

// Server is the lifecycle of the process's transport.
type Server interface {
	// RunServer serves until ctx is done, a stop signal arrives or the
	// listener fails, then shuts everything down.
	RunServer(ctx context.Context) error

	// Shutdown stops accepting connections and waits for in-flight
	// requests until ctx is done.
	Shutdown(ctx context.Context) error
}

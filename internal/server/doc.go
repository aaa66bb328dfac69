// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package server runs the HTTP transport together with the background
// workers, handling stop signals and graceful shutdown.
package server

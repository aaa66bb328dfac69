// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package views holds the state of the client screens independent of how
// they are drawn.
//
// Views subscribe to a store and receive snapshots through an
// [EventSink]. The sink only forwards events; the UI loop passes them back
// to Apply on its own goroutine, so view state is never touched
// concurrently. Events from a subscription that has since been replaced are
// dropped.
package views

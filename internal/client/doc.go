// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client implements the credentials client application.
//
// [App] wires the session database, the server adapter and the session gate
// together. The terminal UI runs on top of it, and so do the one-shot
// commands (login, logout, get, ls) used by test automation.
package client

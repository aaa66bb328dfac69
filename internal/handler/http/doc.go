// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package http implements the HTTP transport of the credentials server.
//
// It exposes the login endpoints, the credential data API and its
// Server-Sent Events subscription stream. Authentication, request tracing,
// access logging, response compression and integrity checks are handled in
// this package before requests are delegated to the service layer.
package http

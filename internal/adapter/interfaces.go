// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter connects the client to the credentials server.
//
// [ServerAdapter] implements [store.Store] over HTTP: writes and deletes
// are plain requests and subscriptions are Server-Sent Events streams that
// reconnect on their own. Non-2xx answers are mapped to the sentinels in
// errors.go so callers can use [errors.Is] (for example [ErrUnauthorized]
// for 401).
package adapter

import (
	"context"

	"github.com/MKhiriev/go-creds-manager/internal/store"
	"github.com/MKhiriev/go-creds-manager/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter is the client's view of the server.
type ServerAdapter interface {
	store.Store

	// SetToken sets the bearer token attached to every later request. An
	// empty token signs the adapter out.
	SetToken(token string)

	// Token returns the current bearer token or "".
	Token() string

	// Login exchanges creds for a token and stores it via SetToken.
	Login(ctx context.Context, creds models.Credentials) (models.Token, error)

	// Session asks the server whether the current token is still valid.
	Session(ctx context.Context) (models.SessionInfo, error)

	// Version returns the server version string.
	Version(ctx context.Context) (string, error)

	// Folder and Item are one-shot reads used by the command-line tools.
	Folder(ctx context.Context, ft models.FolderType) (models.FolderData, error)
	Item(ctx context.Context, path models.Path) (models.DataItem, error)

	// SetStreamErrorHandler registers fn for errors that end a subscription
	// stream for good, such as [ErrUnauthorized] after the token expired.
	SetStreamErrorHandler(fn func(path models.Path, err error))
}

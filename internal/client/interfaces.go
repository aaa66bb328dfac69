// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-creds-manager/models"
)

// Client is what the command line needs from the client application.
type Client interface {
	// Run starts the terminal UI and blocks until the user quits.
	Run(ctx context.Context) error

	Login(ctx context.Context, creds models.Credentials) (string, error)
	Logout(ctx context.Context) error
	Get(ctx context.Context, path models.Path) (models.DataItem, error)
	List(ctx context.Context, ft models.FolderType) ([]string, error)
	ServerVersion(ctx context.Context) (string, error)

	Close() error
}

var _ Client = (*App)(nil)

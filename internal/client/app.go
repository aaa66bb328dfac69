// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-creds-manager/internal/adapter"
	"github.com/MKhiriev/go-creds-manager/internal/config"
	"github.com/MKhiriev/go-creds-manager/internal/logger"
	"github.com/MKhiriev/go-creds-manager/internal/session"
	"github.com/MKhiriev/go-creds-manager/internal/store"
	"github.com/MKhiriev/go-creds-manager/internal/tui"
	"github.com/MKhiriev/go-creds-manager/models"
)

// App owns the client-side dependencies: the session database, the server
// adapter and the session gate. The terminal UI and the one-shot commands
// share it.
type App struct {
	server    adapter.ServerAdapter
	gate      *session.Gate
	timeout   time.Duration
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	closeFn func() error
}

// NewApp opens the session database and connects the adapter described by
// cfg. Close releases both.
func NewApp(ctx context.Context, cfg *config.ClientConfig, buildInfo models.AppBuildInfo, log *logger.Logger) (*App, error) {
	storages, err := store.NewClientStorages(ctx, cfg.Storage, log)
	if err != nil {
		return nil, fmt.Errorf("create client storages: %w", err)
	}

	server, err := adapter.NewHTTPServerAdapter(cfg.Adapter, log)
	if err != nil {
		storages.Close()
		return nil, fmt.Errorf("create server adapter: %w", err)
	}

	a := newApp(storages.SessionRepository, server, cfg.Adapter.RequestTimeout, buildInfo, log)
	a.closeFn = storages.Close
	return a, nil
}

func newApp(repo store.SessionRepository, server adapter.ServerAdapter, timeout time.Duration, buildInfo models.AppBuildInfo, log *logger.Logger) *App {
	return &App{
		server:    server,
		gate:      session.NewGate(repo, server, log),
		timeout:   timeout,
		buildInfo: buildInfo,
		logger:    log,
	}
}

// Run restores the persisted session, if any, and runs the terminal UI
// until the user quits.
func (a *App) Run(ctx context.Context) error {
	if _, err := a.gate.Restore(ctx); err != nil {
		return err
	}

	ui := tui.New(a.gate, a.server, a.timeout, a.buildInfo, a.logger)
	return ui.Run(ctx)
}

// Login signs in with creds and persists the session for later runs.
func (a *App) Login(ctx context.Context, creds models.Credentials) (string, error) {
	if err := a.gate.SignIn(ctx, creds); err != nil {
		return "", err
	}
	return a.gate.Identifier(), nil
}

// Logout forgets the persisted session. It succeeds when nobody is signed in.
func (a *App) Logout(ctx context.Context) error {
	return a.gate.SignOut(ctx)
}

// Get returns the fields stored at path.
func (a *App) Get(ctx context.Context, path models.Path) (models.DataItem, error) {
	if path.IsFolder() {
		return nil, fmt.Errorf("%w: %q names a folder type, not a subfolder", models.ErrInvalidPath, path.String())
	}
	if err := a.restore(ctx); err != nil {
		return nil, err
	}

	item, err := a.server.Item(ctx, path)
	if err != nil {
		return nil, a.expireOn(ctx, err)
	}
	return item, nil
}

// List returns the subfolder names of ft in snapshot order.
func (a *App) List(ctx context.Context, ft models.FolderType) ([]string, error) {
	if err := a.restore(ctx); err != nil {
		return nil, err
	}

	folder, err := a.server.Folder(ctx, ft)
	if err != nil {
		return nil, a.expireOn(ctx, err)
	}
	return folder.Names(), nil
}

// ServerVersion asks the server for its version. It needs no session.
func (a *App) ServerVersion(ctx context.Context) (string, error) {
	return a.server.Version(ctx)
}

// Close releases the session database.
func (a *App) Close() error {
	if a.closeFn == nil {
		return nil
	}
	return a.closeFn()
}

func (a *App) restore(ctx context.Context) error {
	ok, err := a.gate.Restore(ctx)
	if err != nil {
		return err
	}
	if !ok {
		return session.ErrNotAuthenticated
	}
	return nil
}

// expireOn forgets the session when the server rejected its token.
func (a *App) expireOn(ctx context.Context, err error) error {
	if !errors.Is(err, adapter.ErrUnauthorized) {
		return err
	}
	if signOutErr := a.gate.SignOut(ctx); signOutErr != nil {
		a.logger.Err(signOutErr).Str("func", "*App.expireOn").Msg("failed to clear rejected session")
	}
	return fmt.Errorf("%w: %w", session.ErrNotAuthenticated, err)
}

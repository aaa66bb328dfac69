// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-creds-manager/internal/config"
	handler "github.com/MKhiriev/go-creds-manager/internal/handler/http"
	"github.com/MKhiriev/go-creds-manager/internal/logger"
	"github.com/MKhiriev/go-creds-manager/internal/service"
	"github.com/MKhiriev/go-creds-manager/internal/store"
	"github.com/MKhiriev/go-creds-manager/models"
)

// newRealServer runs the production router over the in-memory store with
// static credentials and integrity checks enabled.
func newRealServer(t *testing.T) *httptest.Server {
	t.Helper()

	storages, err := store.NewStorages(context.Background(), config.Storage{}, logger.Nop())
	require.NoError(t, err)
	ctx, cancel := context.WithCancel(context.Background())
	go storages.Notifier.Run(ctx)
	t.Cleanup(func() {
		cancel()
		_ = storages.Close()
	})

	cfg := &config.StructuredConfig{
		App: config.App{
			TokenSignKey:  "sign-key",
			TokenIssuer:   "creds-server",
			TokenDuration: time.Hour,
			HashKey:       testHashKey,
			Version:       "test",
		},
		Auth:   config.Auth{Strategy: config.AuthStrategyStatic, Username: "qa-lead@example.com", Password: "secret"},
		Server: config.Server{RequestTimeout: 5 * time.Second, StreamHeartbeat: time.Second},
	}
	services, err := service.NewServices(storages, cfg, logger.Nop())
	require.NoError(t, err)

	srv := httptest.NewServer(handler.NewHandler(services, cfg, logger.Nop()).Init())
	t.Cleanup(srv.Close)
	return srv
}

func TestAdapter_AgainstServer(t *testing.T) {
	srv := newRealServer(t)
	a := newTestAdapter(t, srv.URL)
	ctx := context.Background()

	_, err := a.Login(ctx, models.Credentials{Identifier: "qa-lead@example.com", Password: "wrong"})
	var httpErr *HTTPError
	require.ErrorAs(t, err, &httpErr)
	assert.Equal(t, "Invalid identifier or password.", httpErr.Message)

	_, err = a.Login(ctx, models.Credentials{Identifier: "qa-lead@example.com", Password: "secret"})
	require.NoError(t, err)

	info, err := a.Session(ctx)
	require.NoError(t, err)
	assert.Equal(t, "qa-lead@example.com", info.Identifier)

	events := make(chan models.Snapshot, 8)
	sub, err := a.Subscribe(ctx, models.FolderPath(models.FolderQA), func(s models.Snapshot) { events <- s })
	require.NoError(t, err)
	defer sub.Unsubscribe()
	assert.Empty(t, (<-events).Folder)

	automation1 := models.SubfolderPath(models.FolderQA, "automation1")
	require.NoError(t, a.Write(ctx, automation1, models.DataItem{"email": "a@x.com", "password": "p1"}))

	select {
	case s := <-events:
		assert.Equal(t, []string{"automation1"}, s.Folder.Names())
	case <-time.After(5 * time.Second):
		t.Fatal("write not pushed to subscriber")
	}

	item, err := a.Item(ctx, automation1)
	require.NoError(t, err)
	assert.Equal(t, models.DataItem{"email": "a@x.com", "password": "p1"}, item)

	err = a.Write(ctx, models.FolderPath(models.FolderQA), models.DataItem{"k": "v"})
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, a.Delete(ctx, models.FolderPath(models.FolderQA)))
	folder, err := a.Folder(ctx, models.FolderQA)
	require.NoError(t, err)
	assert.Empty(t, folder)

	a.SetToken("")
	_, err = a.Folder(ctx, models.FolderQA)
	assert.ErrorIs(t, err, ErrUnauthorized)
}

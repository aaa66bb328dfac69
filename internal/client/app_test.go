// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-creds-manager/internal/adapter"
	"github.com/MKhiriev/go-creds-manager/internal/logger"
	"github.com/MKhiriev/go-creds-manager/internal/mock"
	"github.com/MKhiriev/go-creds-manager/internal/session"
	"github.com/MKhiriev/go-creds-manager/internal/store"
	"github.com/MKhiriev/go-creds-manager/models"
)

var storedSession = models.Session{
	Identifier: "qa-lead@example.com",
	Token:      "header.payload.signature",
	CreatedAt:  time.Date(2026, 10, 1, 9, 0, 0, 0, time.UTC),
}

func newTestApp(t *testing.T) (*App, *mock.MockSessionRepository, *mock.MockServerAdapter) {
	t.Helper()
	ctrl := gomock.NewController(t)
	repo := mock.NewMockSessionRepository(ctrl)
	server := mock.NewMockServerAdapter(ctrl)
	return newApp(repo, server, time.Second, models.NewAppBuildInfo("1.0.0", "", ""), logger.Nop()), repo, server
}

// ── Get ──────────────────────────────────────────────────────────────────────

func TestApp_Get(t *testing.T) {
	path := models.SubfolderPath(models.FolderQA, "automation1")

	t.Run("signed in", func(t *testing.T) {
		app, repo, server := newTestApp(t)
		gomock.InOrder(
			repo.EXPECT().Load(gomock.Any()).Return(storedSession, nil),
			server.EXPECT().SetToken(storedSession.Token),
			server.EXPECT().Item(gomock.Any(), path).Return(models.DataItem{"email": "qa@example.com"}, nil),
		)

		item, err := app.Get(context.Background(), path)

		require.NoError(t, err)
		assert.Equal(t, models.DataItem{"email": "qa@example.com"}, item)
	})

	t.Run("no session", func(t *testing.T) {
		app, repo, _ := newTestApp(t)
		repo.EXPECT().Load(gomock.Any()).Return(models.Session{}, store.ErrLocalSessionNotFound)

		_, err := app.Get(context.Background(), path)

		assert.ErrorIs(t, err, session.ErrNotAuthenticated)
	})

	t.Run("folder path", func(t *testing.T) {
		app, _, _ := newTestApp(t)

		_, err := app.Get(context.Background(), models.FolderPath(models.FolderQA))

		assert.ErrorIs(t, err, models.ErrInvalidPath)
	})

	t.Run("broken session database", func(t *testing.T) {
		app, repo, _ := newTestApp(t)
		repo.EXPECT().Load(gomock.Any()).Return(models.Session{}, errors.New("database is locked"))

		_, err := app.Get(context.Background(), path)

		require.Error(t, err)
		assert.NotErrorIs(t, err, session.ErrNotAuthenticated)
	})
}

// ── List ─────────────────────────────────────────────────────────────────────

func TestApp_List(t *testing.T) {
	t.Run("names in snapshot order", func(t *testing.T) {
		app, repo, server := newTestApp(t)
		repo.EXPECT().Load(gomock.Any()).Return(storedSession, nil)
		server.EXPECT().SetToken(storedSession.Token)
		server.EXPECT().Folder(gomock.Any(), models.FolderUAT).Return(models.FolderData{
			"smoke":       {"user": "u"},
			"automation1": {"email": "a@example.com"},
		}, nil)

		names, err := app.List(context.Background(), models.FolderUAT)

		require.NoError(t, err)
		assert.Equal(t, []string{"automation1", "smoke"}, names)
	})

	t.Run("rejected token clears the session", func(t *testing.T) {
		app, repo, server := newTestApp(t)
		repo.EXPECT().Load(gomock.Any()).Return(storedSession, nil)
		server.EXPECT().SetToken(storedSession.Token)
		server.EXPECT().Folder(gomock.Any(), models.FolderQA).
			Return(nil, fmt.Errorf("get folder: %w", adapter.ErrUnauthorized))
		server.EXPECT().SetToken("")
		repo.EXPECT().Clear(gomock.Any()).Return(nil)

		_, err := app.List(context.Background(), models.FolderQA)

		assert.ErrorIs(t, err, session.ErrNotAuthenticated)
		assert.ErrorIs(t, err, adapter.ErrUnauthorized)
		assert.False(t, app.gate.IsAuthenticated())
	})

	t.Run("server down keeps the session", func(t *testing.T) {
		app, repo, server := newTestApp(t)
		repo.EXPECT().Load(gomock.Any()).Return(storedSession, nil)
		server.EXPECT().SetToken(storedSession.Token)
		server.EXPECT().Folder(gomock.Any(), models.FolderQA).Return(nil, adapter.ErrServiceUnavailable)

		_, err := app.List(context.Background(), models.FolderQA)

		assert.ErrorIs(t, err, adapter.ErrServiceUnavailable)
		assert.True(t, app.gate.IsAuthenticated())
	})
}

// ── Login / Logout ───────────────────────────────────────────────────────────

func TestApp_Login(t *testing.T) {
	app, repo, server := newTestApp(t)
	creds := models.Credentials{Identifier: "qa-lead@example.com", Password: "secret"}
	server.EXPECT().Login(gomock.Any(), creds).Return(models.Token{
		Identifier:   creds.Identifier,
		SignedString: storedSession.Token,
	}, nil)
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, s models.Session) error {
		assert.Equal(t, creds.Identifier, s.Identifier)
		assert.Equal(t, storedSession.Token, s.Token)
		return nil
	})

	identifier, err := app.Login(context.Background(), creds)

	require.NoError(t, err)
	assert.Equal(t, creds.Identifier, identifier)
}

func TestApp_LoginRejected(t *testing.T) {
	app, _, _ := newTestApp(t)

	_, err := app.Login(context.Background(), models.Credentials{Identifier: "  "})

	var authErr *session.AuthError
	require.ErrorAs(t, err, &authErr)
	assert.NotEmpty(t, authErr.Reason)
}

func TestApp_Logout(t *testing.T) {
	app, repo, server := newTestApp(t)
	server.EXPECT().SetToken("")
	repo.EXPECT().Clear(gomock.Any()).Return(nil)

	require.NoError(t, app.Logout(context.Background()))
	assert.NoError(t, app.Close())
}

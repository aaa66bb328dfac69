// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"bufio"
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-creds-manager/internal/config"
	"github.com/MKhiriev/go-creds-manager/internal/logger"
	"github.com/MKhiriev/go-creds-manager/internal/mock"
	"github.com/MKhiriev/go-creds-manager/internal/service"
	"github.com/MKhiriev/go-creds-manager/internal/store"
	"github.com/MKhiriev/go-creds-manager/models"
)

type streamFixture struct {
	server *httptest.Server
	creds  service.CredentialService
	broker *store.Broker
}

// newStreamFixture serves the router over a real listener, backed by the
// in-memory store.
func newStreamFixture(t *testing.T, heartbeat time.Duration) *streamFixture {
	t.Helper()

	repo := store.NewMemoryRepository()
	broker := store.NewBroker(repo, logger.Nop())
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)
	go broker.Run(ctx)

	creds := service.NewCredentialValidationService().Wrap(
		service.NewCredentialService(store.NewCredentialStore(repo, broker, logger.Nop()), logger.Nop()))

	auth := mock.NewMockAuthService(gomock.NewController(t))
	auth.EXPECT().ParseToken(gomock.Any(), testToken).
		Return(models.Token{SignedString: testToken, Identifier: testIdentifier}, nil).AnyTimes()

	cfg := &config.StructuredConfig{
		Server: config.Server{RequestTimeout: time.Second, StreamHeartbeat: heartbeat},
	}
	h := NewHandler(&service.Services{AuthService: auth, CredentialService: creds}, cfg, logger.Nop())

	srv := httptest.NewServer(h.Init())
	t.Cleanup(srv.Close)

	return &streamFixture{server: srv, creds: creds, broker: broker}
}

func (f *streamFixture) open(t *testing.T, ctx context.Context, path string) (*http.Response, *bufio.Reader) {
	t.Helper()
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.server.URL+"/api/data/"+path, nil)
	require.NoError(t, err)
	req.Header.Set("Accept", eventStreamContentType)
	req.Header.Set("Authorization", "Bearer "+testToken)

	resp, err := f.server.Client().Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })

	return resp, bufio.NewReader(resp.Body)
}

// nextEvent returns the data line of the next snapshot event, skipping
// heartbeat comments.
func nextEvent(t *testing.T, r *bufio.Reader) string {
	t.Helper()
	var event string
	for {
		line, err := r.ReadString('\n')
		require.NoError(t, err)
		line = strings.TrimRight(line, "\n")

		switch {
		case strings.HasPrefix(line, "event: "):
			event = strings.TrimPrefix(line, "event: ")
		case strings.HasPrefix(line, "data: ") && event == snapshotEvent:
			return strings.TrimPrefix(line, "data: ")
		}
	}
}

// ── stream ──────────────────────────────────────────────────────────────────

func TestStream_InitialAndLaterSnapshots(t *testing.T) {
	f := newStreamFixture(t, time.Minute)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	resp, body := f.open(t, ctx, "qa/automation1")

	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, eventStreamContentType, resp.Header.Get("Content-Type"))
	assert.Empty(t, resp.Header.Get("Content-Encoding"))

	assert.Equal(t, `{}`, nextEvent(t, body))

	automation1 := models.SubfolderPath(models.FolderQA, "automation1")
	require.NoError(t, f.creds.Save(ctx, automation1, models.DataItem{"email": "a@x.com"}))
	assert.JSONEq(t, `{"email":"a@x.com"}`, nextEvent(t, body))

	require.NoError(t, f.creds.Delete(ctx, models.FolderPath(models.FolderQA)))
	assert.Equal(t, `{}`, nextEvent(t, body))
}

func TestStream_FolderSeesChildren(t *testing.T) {
	f := newStreamFixture(t, time.Minute)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, body := f.open(t, ctx, "uat")
	assert.Equal(t, `{}`, nextEvent(t, body))

	require.NoError(t, f.creds.Save(ctx, models.SubfolderPath(models.FolderUAT, "smoke"), models.DataItem{"pin": "1"}))
	assert.JSONEq(t, `{"smoke":{"pin":"1"}}`, nextEvent(t, body))
}

func TestStream_Heartbeat(t *testing.T) {
	f := newStreamFixture(t, 20*time.Millisecond)
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	_, body := f.open(t, ctx, "qa")
	nextEvent(t, body)

	for {
		line, err := body.ReadString('\n')
		require.NoError(t, err)
		if line == ": ping\n" {
			return
		}
	}
}

func TestStream_ClientDisconnectUnsubscribes(t *testing.T) {
	f := newStreamFixture(t, time.Minute)
	ctx, cancel := context.WithCancel(context.Background())

	_, body := f.open(t, ctx, "qa")
	nextEvent(t, body)
	require.Equal(t, 1, f.broker.Subscribers())

	cancel()

	assert.Eventually(t, func() bool { return f.broker.Subscribers() == 0 }, 2*time.Second, 10*time.Millisecond)
}

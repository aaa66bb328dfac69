// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package adapter

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-creds-manager/internal/config"
	"github.com/MKhiriev/go-creds-manager/internal/logger"
	"github.com/MKhiriev/go-creds-manager/internal/utils"
	"github.com/MKhiriev/go-creds-manager/models"
)

const testHashKey = "testhashkey"

func newTestAdapter(t *testing.T, serverURL string) *httpServerAdapter {
	t.Helper()
	cfg := config.ClientAdapter{HTTPAddress: serverURL, RequestTimeout: 5 * time.Second, HashKey: testHashKey}

	a, err := NewHTTPServerAdapter(cfg, logger.Nop())
	require.NoError(t, err)
	return a.(*httpServerAdapter)
}

// ── construction ────────────────────────────────────────────────────────────

func TestNormalizeBaseURL(t *testing.T) {
	tests := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{in: "localhost:8080", want: "http://localhost:8080"},
		{in: " https://creds.example.com/ ", want: "https://creds.example.com"},
		{in: "", wantErr: true},
		{in: "http://", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := normalizeBaseURL(tt.in)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNewHTTPServerAdapter_InvalidAddress(t *testing.T) {
	_, err := NewHTTPServerAdapter(config.ClientAdapter{}, logger.Nop())
	assert.ErrorIs(t, err, ErrInvalidAddress)
}

// ── errors ──────────────────────────────────────────────────────────────────

func TestNewHTTPError(t *testing.T) {
	tests := []struct {
		status  int
		body    string
		want    error
		wantMsg string
	}{
		{status: http.StatusBadRequest, body: `{"error":"invalid JSON was passed"}`, want: ErrBadRequest, wantMsg: "invalid JSON was passed"},
		{status: http.StatusUnauthorized, body: `{"error":"Invalid identifier or password."}`, want: ErrUnauthorized, wantMsg: "Invalid identifier or password."},
		{status: http.StatusNotFound, want: ErrNotFound, wantMsg: "Not Found"},
		{status: http.StatusBadGateway, body: "upstream down", want: ErrBadGateway, wantMsg: "upstream down"},
		{status: http.StatusServiceUnavailable, want: ErrServiceUnavailable, wantMsg: "Service Unavailable"},
		{status: http.StatusTeapot, want: ErrUnexpectedStatus, wantMsg: "I'm a teapot"},
	}

	for _, tt := range tests {
		t.Run(http.StatusText(tt.status), func(t *testing.T) {
			err := newHTTPError(tt.status, []byte(tt.body))

			require.ErrorIs(t, err, tt.want)
			var httpErr *HTTPError
			require.ErrorAs(t, err, &httpErr)
			assert.Equal(t, tt.status, httpErr.StatusCode)
			assert.Equal(t, tt.wantMsg, httpErr.Message)
		})
	}

	assert.NoError(t, newHTTPError(http.StatusNoContent, nil))
}

// ── auth ────────────────────────────────────────────────────────────────────

func TestLogin(t *testing.T) {
	creds := models.Credentials{Identifier: "qa-lead@example.com", Password: "secret"}

	tests := []struct {
		name      string
		handler   http.HandlerFunc
		wantToken string
		wantErr   error
	}{
		{
			name: "success",
			handler: func(w http.ResponseWriter, r *http.Request) {
				var got models.Credentials
				require.NoError(t, json.NewDecoder(r.Body).Decode(&got))
				assert.Equal(t, creds, got)

				w.Header().Set("Authorization", "Bearer tok123")
				_, _ = utils.WriteJSON(w, models.SessionInfo{Identifier: got.Identifier}, http.StatusOK)
			},
			wantToken: "tok123",
		},
		{
			name: "rejected",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				utils.WriteError(w, "Invalid identifier or password.", http.StatusUnauthorized)
			},
			wantErr: ErrUnauthorized,
		},
		{
			name: "missing token header",
			handler: func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(http.StatusOK)
			},
			wantErr: ErrNoToken,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(tt.handler)
			defer srv.Close()

			a := newTestAdapter(t, srv.URL)
			token, err := a.Login(context.Background(), creds)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, a.Token())
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantToken, token.SignedString)
			assert.Equal(t, creds.Identifier, token.Identifier)
			assert.Equal(t, tt.wantToken, a.Token())
		})
	}
}

func TestLogin_IdentifierFromToken(t *testing.T) {
	issued, err := utils.GenerateJWTToken("creds-server", "Qa-Lead@Example.com", time.Hour, "sign-key")
	require.NoError(t, err)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Authorization", "Bearer "+issued.SignedString)
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	token, err := a.Login(context.Background(), models.Credentials{Identifier: "qa-lead@example.com", Password: "secret"})

	require.NoError(t, err)
	assert.Equal(t, "Qa-Lead@Example.com", token.Identifier)
}

func TestSessionAndVersion(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/auth/session", func(w http.ResponseWriter, r *http.Request) {
		if r.Header.Get("Authorization") != "Bearer tok" {
			utils.WriteError(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		_, _ = utils.WriteJSON(w, models.SessionInfo{Identifier: "qa-lead@example.com"}, http.StatusOK)
	})
	mux.HandleFunc("GET /api/version", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, "v1.0.0\n")
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	ctx := context.Background()

	_, err := a.Session(ctx)
	assert.ErrorIs(t, err, ErrUnauthorized)

	a.SetToken(" tok ")
	info, err := a.Session(ctx)
	require.NoError(t, err)
	assert.Equal(t, "qa-lead@example.com", info.Identifier)

	version, err := a.Version(ctx)
	require.NoError(t, err)
	assert.Equal(t, "v1.0.0", version)
}

// ── data ────────────────────────────────────────────────────────────────────

func TestWrite_SignsBody(t *testing.T) {
	hasher := utils.NewHasher(testHashKey)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/api/data/qa/login%20page", r.URL.EscapedPath())
		assert.Equal(t, "Bearer tok", r.Header.Get("Authorization"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.True(t, hasher.Verify(body, r.Header.Get(utils.HashHeader)))
		assert.JSONEq(t, `{"email":"a@x.com","pin":1234}`, string(body))

		w.WriteHeader(http.StatusNoContent)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	a.SetToken("tok")

	err := a.Write(context.Background(), models.SubfolderPath(models.FolderQA, "login page"),
		models.DataItem{"email": "a@x.com", "pin": json.Number("1234")})
	require.NoError(t, err)
}

func TestReadsAndDelete(t *testing.T) {
	var deleted []string

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/data/qa", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"automation1":{"email":"a@x.com"}}`)
	})
	mux.HandleFunc("GET /api/data/qa/automation1", func(w http.ResponseWriter, _ *http.Request) {
		_, _ = io.WriteString(w, `{"email":"a@x.com","pin":7}`)
	})
	mux.HandleFunc("GET /api/data/uat", func(w http.ResponseWriter, _ *http.Request) {
		utils.WriteError(w, "store unavailable", http.StatusServiceUnavailable)
	})
	mux.HandleFunc("DELETE /", func(w http.ResponseWriter, r *http.Request) {
		deleted = append(deleted, r.URL.Path)
		w.WriteHeader(http.StatusNoContent)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	ctx := context.Background()

	folder, err := a.Folder(ctx, models.FolderQA)
	require.NoError(t, err)
	assert.Equal(t, []string{"automation1"}, folder.Names())

	item, err := a.Item(ctx, models.SubfolderPath(models.FolderQA, "automation1"))
	require.NoError(t, err)
	assert.Equal(t, json.Number("7"), item["pin"])

	_, err = a.Folder(ctx, models.FolderUAT)
	assert.ErrorIs(t, err, ErrServiceUnavailable)

	require.NoError(t, a.Delete(ctx, models.FolderPath(models.FolderUAT)))
	require.NoError(t, a.Delete(ctx, models.SubfolderPath(models.FolderQA, "smoke")))
	assert.Equal(t, []string{"/api/data/uat", "/api/data/qa/smoke"}, deleted)
}

// ── subscriptions ───────────────────────────────────────────────────────────

func writeEvent(w http.ResponseWriter, data string) {
	_, _ = fmt.Fprintf(w, ": ping\n\nevent: snapshot\ndata: %s\n\n", data)
	w.(http.Flusher).Flush()
}

func startStream(w http.ResponseWriter, r *http.Request) bool {
	if r.Header.Get("Accept") != eventStreamContentType {
		http.Error(w, "expected event stream", http.StatusBadRequest)
		return false
	}
	w.Header().Set("Content-Type", eventStreamContentType)
	w.WriteHeader(http.StatusOK)
	return true
}

func TestSubscribe_ReceivesSnapshots(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !startStream(w, r) {
			return
		}
		writeEvent(w, `{}`)
		writeEvent(w, `{"email":"a@x.com"}`)
		<-r.Context().Done()
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	events := make(chan models.Snapshot, 4)

	path := models.SubfolderPath(models.FolderQA, "automation1")
	sub, err := a.Subscribe(context.Background(), path, func(s models.Snapshot) { events <- s })
	require.NoError(t, err)
	defer sub.Unsubscribe()

	first := <-events
	assert.Equal(t, path, first.Path)
	assert.Empty(t, first.Item)

	second := <-events
	assert.Equal(t, models.DataItem{"email": "a@x.com"}, second.Item)

	sub.Unsubscribe()
	sub.Unsubscribe()
}

func TestSubscribe_Reconnects(t *testing.T) {
	connections := make(chan struct{}, 8)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !startStream(w, r) {
			return
		}
		connections <- struct{}{}
		writeEvent(w, fmt.Sprintf(`{"n":{"conn":"%d"}}`, len(connections)))
		// returning drops the stream
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	events := make(chan models.Snapshot, 8)

	sub, err := a.Subscribe(context.Background(), models.FolderPath(models.FolderQA), func(s models.Snapshot) { events <- s })
	require.NoError(t, err)
	defer sub.Unsubscribe()

	for range 2 {
		select {
		case s := <-events:
			assert.Contains(t, s.Folder, "n")
		case <-time.After(5 * time.Second):
			t.Fatal("no snapshot after reconnect")
		}
	}
}

func TestSubscribe_InitialFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		utils.WriteError(w, "token is expired or invalid", http.StatusUnauthorized)
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	_, err := a.Subscribe(context.Background(), models.FolderPath(models.FolderQA), func(models.Snapshot) {})

	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestSubscribe_UnauthorizedReconnectEndsStream(t *testing.T) {
	var served atomic.Bool
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if served.Swap(true) {
			utils.WriteError(w, "token is expired or invalid", http.StatusUnauthorized)
			return
		}
		if startStream(w, r) {
			writeEvent(w, `{}`)
		}
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	streamErrs := make(chan error, 1)
	a.SetStreamErrorHandler(func(_ models.Path, err error) { streamErrs <- err })

	sub, err := a.Subscribe(context.Background(), models.FolderPath(models.FolderUAT), func(models.Snapshot) {})
	require.NoError(t, err)
	defer sub.Unsubscribe()

	select {
	case err := <-streamErrs:
		assert.True(t, errors.Is(err, ErrUnauthorized))
	case <-time.After(5 * time.Second):
		t.Fatal("stream error not reported")
	}
}

func TestSubscribe_CancelledContext(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		<-r.Context().Done()
	}))
	defer srv.Close()

	a := newTestAdapter(t, srv.URL)
	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := a.Subscribe(ctx, models.FolderPath(models.FolderQA), func(models.Snapshot) {})
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

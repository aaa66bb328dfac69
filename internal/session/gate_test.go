// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package session_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/MKhiriev/go-creds-manager/internal/adapter"
	"github.com/MKhiriev/go-creds-manager/internal/config"
	"github.com/MKhiriev/go-creds-manager/internal/logger"
	"github.com/MKhiriev/go-creds-manager/internal/mock"
	"github.com/MKhiriev/go-creds-manager/internal/session"
	"github.com/MKhiriev/go-creds-manager/internal/store"
	"github.com/MKhiriev/go-creds-manager/internal/utils"
	"github.com/MKhiriev/go-creds-manager/models"
)

// loginServer accepts qa-lead@example.com / secret and answers 503 for
// identifier "down@example.com".
func loginServer(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var creds models.Credentials
		require.NoError(t, json.NewDecoder(r.Body).Decode(&creds))

		switch {
		case creds.Identifier == "down@example.com":
			utils.WriteError(w, "Service Unavailable", http.StatusServiceUnavailable)
		case creds.Identifier == "qa-lead@example.com" && creds.Password == "secret":
			w.Header().Set("Authorization", "Bearer tok")
			_, _ = utils.WriteJSON(w, models.SessionInfo{Identifier: creds.Identifier}, http.StatusOK)
		default:
			utils.WriteError(w, "Invalid identifier or password.", http.StatusUnauthorized)
		}
	}))
	t.Cleanup(srv.Close)
	return srv
}

func newGate(t *testing.T) (*session.Gate, *mock.MockSessionRepository, adapter.ServerAdapter) {
	t.Helper()
	repo := mock.NewMockSessionRepository(gomock.NewController(t))

	a, err := adapter.NewHTTPServerAdapter(config.ClientAdapter{HTTPAddress: loginServer(t).URL, RequestTimeout: time.Second}, logger.Nop())
	require.NoError(t, err)

	return session.NewGate(repo, a, logger.Nop()), repo, a
}

// ── sign in ─────────────────────────────────────────────────────────────────

func TestGate_SignIn(t *testing.T) {
	tests := []struct {
		name       string
		creds      models.Credentials
		persist    bool
		wantAuth   bool
		wantReason string
		wantErr    error
	}{
		{
			name:     "accepted",
			creds:    models.Credentials{Identifier: " qa-lead@example.com ", Password: "secret"},
			persist:  true,
			wantAuth: true,
		},
		{
			name:       "rejected",
			creds:      models.Credentials{Identifier: "qa-lead@example.com", Password: "nope"},
			wantReason: "Invalid identifier or password.",
			wantErr:    session.ErrAuth,
		},
		{
			name:       "empty form",
			creds:      models.Credentials{Identifier: "  "},
			wantReason: "Enter an identifier and a password.",
			wantErr:    session.ErrAuth,
		},
		{
			name:    "server unavailable is not an auth error",
			creds:   models.Credentials{Identifier: "down@example.com", Password: "x"},
			wantErr: adapter.ErrServiceUnavailable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			gate, repo, a := newGate(t)
			if tt.persist {
				repo.EXPECT().Save(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, s models.Session) error {
						assert.Equal(t, "qa-lead@example.com", s.Identifier)
						assert.Equal(t, "tok", s.Token)
						return nil
					})
			}

			err := gate.SignIn(context.Background(), tt.creds)

			assert.Equal(t, tt.wantAuth, gate.IsAuthenticated())
			if tt.wantErr == nil {
				require.NoError(t, err)
				assert.Equal(t, "qa-lead@example.com", gate.Identifier())
				assert.Equal(t, "tok", a.Token())
				return
			}
			require.ErrorIs(t, err, tt.wantErr)
			assert.Empty(t, a.Token())

			var authErr *session.AuthError
			if tt.wantReason != "" {
				require.ErrorAs(t, err, &authErr)
				assert.Equal(t, tt.wantReason, authErr.Reason)
			} else {
				assert.False(t, errors.As(err, &authErr))
			}
		})
	}
}

func TestGate_SignInPersistFailure(t *testing.T) {
	gate, repo, a := newGate(t)
	repo.EXPECT().Save(gomock.Any(), gomock.Any()).Return(store.ErrStoreUnavailable)

	err := gate.SignIn(context.Background(), models.Credentials{Identifier: "qa-lead@example.com", Password: "secret"})

	require.ErrorIs(t, err, store.ErrStoreUnavailable)
	assert.False(t, gate.IsAuthenticated())
	assert.Empty(t, a.Token())
}

// ── restore / sign out ──────────────────────────────────────────────────────

func TestGate_Restore(t *testing.T) {
	t.Run("no session", func(t *testing.T) {
		gate, repo, _ := newGate(t)
		repo.EXPECT().Load(gomock.Any()).Return(models.Session{}, store.ErrLocalSessionNotFound)

		ok, err := gate.Restore(context.Background())

		require.NoError(t, err)
		assert.False(t, ok)
		assert.False(t, gate.IsAuthenticated())
	})

	t.Run("persisted session", func(t *testing.T) {
		gate, repo, a := newGate(t)
		repo.EXPECT().Load(gomock.Any()).Return(models.Session{Identifier: "qa-lead@example.com", Token: "saved"}, nil)

		ok, err := gate.Restore(context.Background())

		require.NoError(t, err)
		assert.True(t, ok)
		assert.True(t, gate.IsAuthenticated())
		assert.Equal(t, "saved", a.Token())
	})

	t.Run("broken database", func(t *testing.T) {
		gate, repo, _ := newGate(t)
		repo.EXPECT().Load(gomock.Any()).Return(models.Session{}, store.ErrStoreUnavailable)

		_, err := gate.Restore(context.Background())

		assert.ErrorIs(t, err, store.ErrStoreUnavailable)
	})
}

func TestGate_SignOut(t *testing.T) {
	gate, repo, a := newGate(t)
	repo.EXPECT().Load(gomock.Any()).Return(models.Session{Identifier: "qa-lead@example.com", Token: "saved"}, nil)
	_, err := gate.Restore(context.Background())
	require.NoError(t, err)

	repo.EXPECT().Clear(gomock.Any()).Return(errors.New("disk full"))

	err = gate.SignOut(context.Background())

	assert.Error(t, err)
	assert.False(t, gate.IsAuthenticated())
	assert.Empty(t, gate.Identifier())
	assert.Empty(t, a.Token())
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session holds the client's signed-in state.
//
// A [Gate] is created once per process, restored from the local session
// database at startup and passed explicitly to the views that need it.
package session

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/MKhiriev/go-creds-manager/internal/adapter"
	"github.com/MKhiriev/go-creds-manager/internal/logger"
	"github.com/MKhiriev/go-creds-manager/internal/store"
	"github.com/MKhiriev/go-creds-manager/models"
)

// Gate decides whether the client is signed in. Successful sign-ins are
// persisted so the next start skips the login form.
type Gate struct {
	repo   store.SessionRepository
	server adapter.ServerAdapter

	mu            sync.RWMutex
	authenticated bool
	identifier    string

	logger *logger.Logger
}

func NewGate(repo store.SessionRepository, server adapter.ServerAdapter, logger *logger.Logger) *Gate {
	return &Gate{
		repo:   repo,
		server: server,
		logger: logger,
	}
}

func (g *Gate) IsAuthenticated() bool {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.authenticated
}

// Identifier returns who is signed in, or "".
func (g *Gate) Identifier() string {
	g.mu.RLock()
	defer g.mu.RUnlock()
	return g.identifier
}

// Restore loads the persisted session, if any, and hands its token to the
// adapter. The token is not checked here: a server that later rejects it
// answers 401 and the caller signs out.
func (g *Gate) Restore(ctx context.Context) (bool, error) {
	sess, err := g.repo.Load(ctx)
	if errors.Is(err, store.ErrLocalSessionNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("restore session: %w", err)
	}

	g.server.SetToken(sess.Token)
	g.set(true, sess.Identifier)

	g.logger.Debug().Str("func", "*Gate.Restore").Str("identifier", sess.Identifier).Msg("session restored")
	return true, nil
}

// SignIn authenticates creds with the server. A rejection returns an
// [AuthError] and leaves the gate signed out.
func (g *Gate) SignIn(ctx context.Context, creds models.Credentials) error {
	creds.Identifier = strings.TrimSpace(creds.Identifier)
	if creds.Identifier == "" || creds.Password == "" {
		return &AuthError{Reason: reasonMissingCredentials}
	}

	token, err := g.server.Login(ctx, creds)
	if err != nil {
		return rejection(err)
	}

	sess := models.Session{Identifier: token.Identifier, Token: token.SignedString, CreatedAt: time.Now()}
	if err = g.repo.Save(ctx, sess); err != nil {
		g.server.SetToken("")
		return fmt.Errorf("persist session: %w", err)
	}

	g.set(true, token.Identifier)
	g.logger.Info().Str("func", "*Gate.SignIn").Str("identifier", token.Identifier).Msg("signed in")
	return nil
}

// SignOut forgets the session locally and in the adapter. The gate is
// signed out even when clearing the database fails.
func (g *Gate) SignOut(ctx context.Context) error {
	g.server.SetToken("")
	g.set(false, "")

	if err := g.repo.Clear(ctx); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	g.logger.Info().Str("func", "*Gate.SignOut").Msg("signed out")
	return nil
}

func (g *Gate) set(authenticated bool, identifier string) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.authenticated = authenticated
	g.identifier = identifier
}

// rejection turns a refused login into an AuthError with the server's
// reason. Transport failures are returned as they are.
func rejection(err error) error {
	var httpErr *adapter.HTTPError
	if !errors.As(err, &httpErr) {
		return fmt.Errorf("sign in: %w", err)
	}

	if errors.Is(err, adapter.ErrUnauthorized) || errors.Is(err, adapter.ErrBadRequest) {
		reason := httpErr.Message
		if reason == "" {
			reason = reasonRejected
		}
		return &AuthError{Reason: reason, Err: err}
	}
	return fmt.Errorf("sign in: %w", err)
}

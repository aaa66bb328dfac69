// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-creds-manager/internal/config"
	"github.com/MKhiriev/go-creds-manager/internal/logger"
	"github.com/MKhiriev/go-creds-manager/migrations"
)

// ClientStorages groups the client-side repositories.
type ClientStorages struct {
	// SessionRepository persists the signed-in session in SQLite.
	SessionRepository SessionRepository

	db *DB
}

// NewClientStorages opens the client SQLite file, creating it when missing,
// and applies the client migrations.
func NewClientStorages(ctx context.Context, cfg config.ClientStorage, log *logger.Logger) (*ClientStorages, error) {
	log.Debug().Str("func", "NewClientStorages").Msg("creating client storages...")

	db, err := NewConnectSQLite(ctx, cfg.DB.DSN, log)
	if err != nil {
		return nil, fmt.Errorf("sqlite connection error: %w", err)
	}

	if err := db.Migrate(migrations.Client); err != nil {
		db.Close()
		return nil, fmt.Errorf("migration failed: %w", err)
	}

	return &ClientStorages{
		SessionRepository: NewSessionRepository(db, log),
		db:                db,
	}, nil
}

// Close closes the session database.
func (s *ClientStorages) Close() error {
	return s.db.Close()
}

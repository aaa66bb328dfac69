// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-creds-manager/internal/config"
	"github.com/MKhiriev/go-creds-manager/internal/logger"
	"github.com/MKhiriev/go-creds-manager/migrations"
)

// Storages groups the server-side storage layer.
type Storages struct {
	// Store is the credential store handed to the service layer.
	Store Store
	// Notifier is the broker; it must be run as a worker.
	Notifier *Broker

	db *DB
}

// NewStorages selects the backend by DSN: empty keeps data in memory,
// "postgres://" or "postgresql://" opens PostgreSQL, anything else is a
// SQLite file. SQL backends are migrated before use.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	log.Info().Str("func", "NewStorages").Msg("creating new storages...")

	var (
		repo CredentialRepository
		db   *DB
		err  error
	)

	dsn := cfg.DB.DSN
	switch {
	case dsn == "":
		log.Warn().Str("func", "NewStorages").Msg("no DSN configured, credentials are kept in memory")
		repo = NewMemoryRepository()
	case strings.HasPrefix(dsn, "postgres://"), strings.HasPrefix(dsn, "postgresql://"):
		if db, err = NewConnectPostgres(ctx, dsn, log); err != nil {
			return nil, fmt.Errorf("postgres connection error: %w", err)
		}
	default:
		if db, err = NewConnectSQLite(ctx, dsn, log); err != nil {
			return nil, fmt.Errorf("sqlite connection error: %w", err)
		}
	}

	if db != nil {
		if err = db.Migrate(migrations.Server); err != nil {
			db.Close()
			return nil, fmt.Errorf("migration failed: %w", err)
		}
		repo = NewCredentialRepository(db, log)
	}

	broker := NewBroker(repo, log)
	return &Storages{
		Store:    NewCredentialStore(repo, broker, log),
		Notifier: broker,
		db:       db,
	}, nil
}

// Close stops subscribers and closes the database, if any.
func (s *Storages) Close() error {
	s.Notifier.Close()
	if s.db == nil {
		return nil
	}
	return s.db.Close()
}

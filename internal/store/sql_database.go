// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-creds-manager/internal/logger"
	"github.com/MKhiriev/go-creds-manager/migrations"
)

// ErrorClassificator decides whether a driver error is transient.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

// DB is a database/sql handle bound to one dialect: the goose dialect used
// for migrations and the squirrel placeholder format used for queries.
type DB struct {
	*sql.DB
	dialect            string
	builder            sq.StatementBuilderType
	errorClassificator ErrorClassificator
	logger             *logger.Logger
}

// Migrate applies the migration set to the database.
func (db *DB) Migrate(set migrations.Set) error {
	return migrations.Migrate(db.DB, db.dialect, set)
}

// wrapError joins err with the operation sentinel and, when the failure is
// a connectivity problem, with [ErrStoreUnavailable].
func (db *DB) wrapError(sentinel, err error) error {
	if db.isUnavailable(err) {
		return fmt.Errorf("%w: %w: %w", ErrStoreUnavailable, sentinel, err)
	}
	return fmt.Errorf("%w: %w", sentinel, err)
}

func (db *DB) isUnavailable(err error) bool {
	if errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone) {
		return true
	}
	if db.errorClassificator != nil && db.errorClassificator.Classify(err) == Retryable {
		return true
	}
	return false
}

func (db *DB) rollback(ctx context.Context, tx *sql.Tx, fn string) {
	if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		logger.FromContext(ctx).Err(err).Str("func", fn).Msg("rollback failed")
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations embeds the goose migrations of the server credential
// table and the client session table.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

// Set names one directory of migrations.
type Set string

const (
	// Server creates the credential_fields table.
	Server Set = "server"
	// Client creates the local sessions table.
	Client Set = "client"
)

// goose dialect names for the two supported drivers.
const (
	DialectPostgres = "pgx"
	DialectSQLite   = "sqlite3"
)

//go:embed server/*.sql client/*.sql
var embedMigrations embed.FS

// Migrate applies every pending migration of set to db.
func Migrate(db *sql.DB, dialect string, set Set) error {
	if db == nil {
		return errors.New("migration error: db is nil")
	}

	goose.SetBaseFS(embedMigrations)

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, string(set)); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

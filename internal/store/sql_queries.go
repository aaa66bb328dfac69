// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"fmt"
	"time"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-creds-manager/models"
)

const (
	credentialFieldsTable = "credential_fields"
	sessionsTable         = "sessions"

	// sessionRowID pins the single session row.
	sessionRowID = 1
)

func pathFilter(path models.Path) sq.Eq {
	where := sq.Eq{"folder_type": string(path.FolderType)}
	if !path.IsFolder() {
		where["subfolder"] = path.Subfolder
	}
	return where
}

func (db *DB) selectFolderQuery(ft models.FolderType) (string, []any, error) {
	return db.builder.
		Select("subfolder", "field_key", "field_value").
		From(credentialFieldsTable).
		Where(sq.Eq{"folder_type": string(ft)}).
		OrderBy("subfolder", "field_key").
		ToSql()
}

func (db *DB) selectItemQuery(path models.Path) (string, []any, error) {
	return db.builder.
		Select("field_key", "field_value").
		From(credentialFieldsTable).
		Where(pathFilter(path)).
		OrderBy("field_key").
		ToSql()
}

func (db *DB) deletePathQuery(path models.Path) (string, []any, error) {
	return db.builder.
		Delete(credentialFieldsTable).
		Where(pathFilter(path)).
		ToSql()
}

// insertItemQuery renders one multi-row INSERT with fields in key order.
func (db *DB) insertItemQuery(path models.Path, item models.DataItem) (string, []any, error) {
	query := db.builder.
		Insert(credentialFieldsTable).
		Columns("folder_type", "subfolder", "field_key", "field_value")

	for _, key := range item.Keys() {
		value, err := models.EncodeValue(item[key])
		if err != nil {
			return "", nil, fmt.Errorf("field %q: %w", key, err)
		}
		query = query.Values(string(path.FolderType), path.Subfolder, key, value)
	}

	return query.ToSql()
}

func (db *DB) selectSessionQuery() (string, []any, error) {
	return db.builder.
		Select("identifier", "token", "created_at").
		From(sessionsTable).
		Where(sq.Eq{"id": sessionRowID}).
		ToSql()
}

func (db *DB) upsertSessionQuery(session models.Session) (string, []any, error) {
	createdAt := session.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now()
	}

	return db.builder.
		Insert(sessionsTable).
		Columns("id", "identifier", "token", "created_at").
		Values(sessionRowID, session.Identifier, session.Token, createdAt.UTC()).
		Suffix("ON CONFLICT (id) DO UPDATE SET identifier = excluded.identifier, token = excluded.token, created_at = excluded.created_at").
		ToSql()
}

func (db *DB) deleteSessionQuery() (string, []any, error) {
	return db.builder.
		Delete(sessionsTable).
		ToSql()
}

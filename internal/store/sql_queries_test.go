// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"encoding/json"
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MKhiriev/go-creds-manager/models"
)

func TestQueries_Postgres(t *testing.T) {
	db := newDBFromSQL(nil)

	tests := []struct {
		name      string
		build     func() (string, []any, error)
		wantQuery string
		wantArgs  []any
	}{
		{
			name:      "select folder",
			build:     func() (string, []any, error) { return db.selectFolderQuery(models.FolderQA) },
			wantQuery: "SELECT subfolder, field_key, field_value FROM credential_fields WHERE folder_type = $1 ORDER BY subfolder, field_key",
			wantArgs:  []any{"qa"},
		},
		{
			name:      "select item",
			build:     func() (string, []any, error) { return db.selectItemQuery(automation1) },
			wantQuery: "SELECT field_key, field_value FROM credential_fields WHERE folder_type = $1 AND subfolder = $2 ORDER BY field_key",
			wantArgs:  []any{"qa", "automation1"},
		},
		{
			name:      "delete folder",
			build:     func() (string, []any, error) { return db.deletePathQuery(models.FolderPath(models.FolderUAT)) },
			wantQuery: "DELETE FROM credential_fields WHERE folder_type = $1",
			wantArgs:  []any{"uat"},
		},
		{
			name: "insert item in key order",
			build: func() (string, []any, error) {
				return db.insertItemQuery(automation1, models.DataItem{"password": "p", "pin": json.Number("42")})
			},
			wantQuery: "INSERT INTO credential_fields (folder_type,subfolder,field_key,field_value) VALUES ($1,$2,$3,$4),($5,$6,$7,$8)",
			wantArgs:  []any{"qa", "automation1", "password", `"p"`, "qa", "automation1", "pin", "42"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := tt.build()
			require.NoError(t, err)
			assert.Equal(t, tt.wantQuery, query)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}

func TestQueries_SQLitePlaceholders(t *testing.T) {
	db := &DB{builder: sq.StatementBuilder.PlaceholderFormat(sq.Question)}

	query, _, err := db.selectItemQuery(automation1)
	require.NoError(t, err)
	assert.Contains(t, query, "folder_type = ? AND subfolder = ?")
}

func TestInsertItemQuery_RejectsUnsupportedValue(t *testing.T) {
	_, _, err := newDBFromSQL(nil).insertItemQuery(automation1, models.DataItem{"flag": true})
	assert.ErrorIs(t, err, models.ErrUnsupportedValue)
}

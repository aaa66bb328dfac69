// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-creds-manager/internal/logger"
	"github.com/MKhiriev/go-creds-manager/models"
)

// credentialRepository is the SQL implementation of [CredentialRepository]
// over the credential_fields table. One row holds one field; the value
// column carries the JSON encoding of the scalar.
type credentialRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewCredentialRepository constructs a [CredentialRepository] backed by db.
func NewCredentialRepository(db *DB, logger *logger.Logger) CredentialRepository {
	logger.Debug().Msg("creating credential repository")
	return &credentialRepository{
		db:     db,
		logger: logger,
	}
}

func (r *credentialRepository) ReadFolder(ctx context.Context, ft models.FolderType) (models.FolderData, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.selectFolderQuery(ft)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*credentialRepository.ReadFolder").Str("folder_type", string(ft)).Msg("error querying folder")
		return nil, r.db.wrapError(ErrExecutingQuery, err)
	}
	defer rows.Close()

	folder := models.FolderData{}
	for rows.Next() {
		var subfolder, key, raw string
		if err = rows.Scan(&subfolder, &key, &raw); err != nil {
			log.Err(err).Str("func", "*credentialRepository.ReadFolder").Msg("error scanning row")
			return nil, r.db.wrapError(ErrScanningRows, err)
		}

		value, err := models.DecodeValue(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %s/%s/%s: %w", ErrDecodingValue, ft, subfolder, key, err)
		}

		item, ok := folder[subfolder]
		if !ok {
			item = models.DataItem{}
			folder[subfolder] = item
		}
		item[key] = value
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*credentialRepository.ReadFolder").Msg("error iterating rows")
		return nil, r.db.wrapError(ErrScanningRows, err)
	}

	return folder, nil
}

func (r *credentialRepository) ReadItem(ctx context.Context, path models.Path) (models.DataItem, error) {
	log := logger.FromContext(ctx)

	query, args, err := r.db.selectItemQuery(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*credentialRepository.ReadItem").Str("path", path.String()).Msg("error querying item")
		return nil, r.db.wrapError(ErrExecutingQuery, err)
	}
	defer rows.Close()

	item := models.DataItem{}
	for rows.Next() {
		var key, raw string
		if err = rows.Scan(&key, &raw); err != nil {
			log.Err(err).Str("func", "*credentialRepository.ReadItem").Msg("error scanning row")
			return nil, r.db.wrapError(ErrScanningRows, err)
		}

		value, err := models.DecodeValue(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %s/%s: %w", ErrDecodingValue, path, key, err)
		}
		item[key] = value
	}
	if err = rows.Err(); err != nil {
		log.Err(err).Str("func", "*credentialRepository.ReadItem").Msg("error iterating rows")
		return nil, r.db.wrapError(ErrScanningRows, err)
	}

	return item, nil
}

// ReplaceItem deletes every field of the subfolder and inserts item in one
// transaction. An empty item leaves the subfolder absent.
func (r *credentialRepository) ReplaceItem(ctx context.Context, path models.Path, item models.DataItem) error {
	log := logger.FromContext(ctx)

	deleteQuery, deleteArgs, err := r.db.deletePathQuery(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var insertQuery string
	var insertArgs []any
	if len(item) > 0 {
		if insertQuery, insertArgs, err = r.db.insertItemQuery(path, item); err != nil {
			return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
		}
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*credentialRepository.ReplaceItem").Msg("error beginning transaction")
		return r.db.wrapError(ErrBeginningTransaction, err)
	}
	defer r.db.rollback(ctx, tx, "*credentialRepository.ReplaceItem")

	if err = r.exec(ctx, tx, deleteQuery, deleteArgs); err != nil {
		log.Err(err).Str("func", "*credentialRepository.ReplaceItem").Str("path", path.String()).Msg("error deleting previous fields")
		return err
	}

	if insertQuery != "" {
		if err = r.exec(ctx, tx, insertQuery, insertArgs); err != nil {
			log.Err(err).Str("func", "*credentialRepository.ReplaceItem").Str("path", path.String()).Msg("error inserting fields")
			return err
		}
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*credentialRepository.ReplaceItem").Msg("error committing transaction")
		return r.db.wrapError(ErrCommitingTransaction, err)
	}

	log.Debug().Str("func", "*credentialRepository.ReplaceItem").
		Str("path", path.String()).
		Int("fields", len(item)).
		Msg("item replaced")
	return nil
}

func (r *credentialRepository) DeletePath(ctx context.Context, path models.Path) error {
	log := logger.FromContext(ctx)

	query, args, err := r.db.deletePathQuery(path)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*credentialRepository.DeletePath").Str("path", path.String()).Msg("error deleting path")
		return r.db.wrapError(ErrExecutingStatement, err)
	}

	affected, _ := res.RowsAffected()
	log.Debug().Str("func", "*credentialRepository.DeletePath").
		Str("path", path.String()).
		Int64("rows", affected).
		Msg("path deleted")
	return nil
}

func (r *credentialRepository) exec(ctx context.Context, tx *sql.Tx, query string, args []any) error {
	if _, err := tx.ExecContext(ctx, query, args...); err != nil {
		return r.db.wrapError(ErrExecutingStatement, err)
	}
	return nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-creds-manager/internal/logger"
	"github.com/MKhiriev/go-creds-manager/models"
)

type sessionRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewSessionRepository constructs a [SessionRepository] over the sessions table.
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	return &sessionRepository{
		db:     db,
		logger: logger,
	}
}

func (r *sessionRepository) Load(ctx context.Context) (models.Session, error) {
	query, args, err := r.db.selectSessionQuery()
	if err != nil {
		return models.Session{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	var session models.Session
	err = r.db.QueryRowContext(ctx, query, args...).Scan(&session.Identifier, &session.Token, &session.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.Session{}, ErrLocalSessionNotFound
	}
	if err != nil {
		r.logger.Err(err).Str("func", "*sessionRepository.Load").Msg("error loading session")
		return models.Session{}, r.db.wrapError(ErrExecutingQuery, err)
	}

	return session, nil
}

func (r *sessionRepository) Save(ctx context.Context, session models.Session) error {
	query, args, err := r.db.upsertSessionQuery(session)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).Str("func", "*sessionRepository.Save").Msg("error saving session")
		return r.db.wrapError(ErrExecutingStatement, err)
	}

	r.logger.Debug().Str("func", "*sessionRepository.Save").Str("identifier", session.Identifier).Msg("session saved")
	return nil
}

func (r *sessionRepository) Clear(ctx context.Context) error {
	query, args, err := r.db.deleteSessionQuery()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	if _, err = r.db.ExecContext(ctx, query, args...); err != nil {
		r.logger.Err(err).Str("func", "*sessionRepository.Clear").Msg("error clearing session")
		return r.db.wrapError(ErrExecutingStatement, err)
	}

	return nil
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// sessionRepository is the SQLite-backed [SessionRepository]. The session
// table holds a single row with id 1.
type sessionRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewSessionRepository constructs a [SessionRepository] over db.
func NewSessionRepository(db *DB, logger *logger.Logger) SessionRepository {
	return &sessionRepository{db: db, logger: logger}
}

// SaveSession replaces the stored session.
func (r *sessionRepository) SaveSession(ctx context.Context, session models.Session) error {
	_, err := r.db.ExecContext(ctx, saveSession,
		session.Identity.ID,
		session.Identity.Email,
		session.Identity.LastSignInAt,
		session.Token,
		session.SavedAt,
	)
	if err != nil {
		r.logger.Err(err).Str("func", "*sessionRepository.SaveSession").Msg("failed to save session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

func (r *sessionRepository) LoadSession(ctx context.Context) (models.Session, error) {
	var session models.Session
	err := r.db.QueryRowContext(ctx, loadSession).Scan(
		&session.Identity.ID,
		&session.Identity.Email,
		&session.Identity.LastSignInAt,
		&session.Token,
		&session.SavedAt,
	)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Session{}, ErrLocalSessionNotFound
	case err != nil:
		r.logger.Err(err).Str("func", "*sessionRepository.LoadSession").Msg("failed to load session")
		return models.Session{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return session, nil
}

// ClearSession forgets the stored session. Clearing an empty store is not
// an error.
func (r *sessionRepository) ClearSession(ctx context.Context) error {
	if _, err := r.db.ExecContext(ctx, clearSession); err != nil {
		r.logger.Err(err).Str("func", "*sessionRepository.ClearSession").Msg("failed to clear session")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

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

type profileRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewProfileRepository(db *DB, logger *logger.Logger) ProfileRepository {
	logger.Debug().Msg("creating profile repository")
	return &profileRepository{db: db, logger: logger}
}

func (r *profileRepository) GetProfile(ctx context.Context, id string) (models.Profile, error) {
	log := logger.FromContext(ctx)

	var profile models.Profile
	err := r.db.QueryRowContext(ctx, getProfile, id).Scan(&profile.ID, &profile.DisplayName)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Profile{}, ErrProfileNotFound
	case err != nil:
		log.Err(err).Str("func", "*profileRepository.GetProfile").Str("user_id", id).Msg("error selecting profile")
		return models.Profile{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return profile, nil
}

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/models"
)

type profileService struct {
	profileRepository store.ProfileRepository

	logger *logger.Logger
}

func NewProfileService(profileRepository store.ProfileRepository, logger *logger.Logger) ProfileService {
	return &profileService{
		profileRepository: profileRepository,
		logger:            logger,
	}
}

func (p *profileService) GetProfile(ctx context.Context, userID string) (models.Profile, error) {
	profile, err := p.profileRepository.GetProfile(ctx, userID)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("id", userID).Msg("profile search failed")
		return models.Profile{}, fmt.Errorf("profile search failed: %w", err)
	}

	return profile, nil
}

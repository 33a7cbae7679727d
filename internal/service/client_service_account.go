package service

import (
	"context"

	"github.com/MKhiriev/go-notes-keeper/internal/adapter"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/models"
)

type clientAccountService struct {
	serverAdapter adapter.ServerAdapter

	logger *logger.Logger
}

func NewClientAccountService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientAccountService {
	return &clientAccountService{
		serverAdapter: serverAdapter,
		logger:        logger,
	}
}

func (s *clientAccountService) Profile(ctx context.Context) (models.Profile, error) {
	profile, err := s.serverAdapter.GetProfile(ctx)
	if err != nil {
		s.logger.Err(err).Str("func", "*clientAccountService.Profile").Msg("error fetching profile")
		return models.Profile{}, mapAdapterError(err)
	}

	return profile, nil
}

func (s *clientAccountService) ServerVersion(ctx context.Context) (string, error) {
	version, err := s.serverAdapter.Version(ctx)
	if err != nil {
		s.logger.Err(err).Str("func", "*clientAccountService.ServerVersion").Msg("error fetching server version")
		return "", mapAdapterError(err)
	}

	return version, nil
}

package service

import (
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
)

// Services groups the server-side services consumed by the handlers.
type Services struct {
	AuthService    AuthService
	ProfileService ProfileService
	NoteService    NoteService
	AppInfoService AppInfoService
}

func NewServices(storages *store.Storages, cfg *config.StructuredConfig, logger *logger.Logger) (*Services, error) {
	appInfoService, err := NewAppInfoService(cfg.App, logger)
	if err != nil {
		return nil, fmt.Errorf("error creating app info service: %w", err)
	}

	noteService := NewNoteValidationService().Wrap(NewNoteService(storages.NoteRepository, logger))

	return &Services{
		AuthService:    NewAuthService(storages.UserRepository, cfg.App, logger),
		ProfileService: NewProfileService(storages.ProfileRepository, logger),
		NoteService:    noteService,
		AppInfoService: appInfoService,
	}, nil
}

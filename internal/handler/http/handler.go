package http

import (
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
)

type Handler struct {
	services *service.Services

	// hasher verifies the HashSHA256 header of signed requests. Nil when no
	// hash key is configured.
	hasher *utils.Hasher

	requestTimeout time.Duration

	logger *logger.Logger
}

func NewHandler(services *service.Services, cfg *config.StructuredConfig, logger *logger.Logger) *Handler {
	logger.Info().Msg("http handler created")
	return &Handler{
		services:       services,
		hasher:         utils.NewHasher(cfg.App.HashKey),
		requestTimeout: cfg.Server.RequestTimeout,
		logger:         logger,
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package grpc

import (
	"context"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
)

// NotesServiceName is the service name reported by the health endpoint next
// to the overall ("") status.
const NotesServiceName = "notes.v1.Notes"

// Handler is the root gRPC transport handler. It serves the standard
// grpc.health.v1.Health service for the notes server.
type Handler struct {
	// services provides access to all application business operations.
	services *service.Services

	health *health.Server

	// logger is used for diagnostic log output.
	logger *logger.Logger
}

// NewHandler constructs a [Handler] whose health statuses start as
// NOT_SERVING until [Handler.SetServing] is called.
func NewHandler(services *service.Services, logger *logger.Logger) *Handler {
	logger.Debug().Msg("gRPC handler created")

	h := &Handler{
		services: services,
		health:   health.NewServer(),
		logger:   logger,
	}
	h.setStatus(healthpb.HealthCheckResponse_NOT_SERVING)

	return h
}

// Register attaches the handler's services to s.
func (h *Handler) Register(s *grpc.Server) {
	healthpb.RegisterHealthServer(s, h.health)
}

// SetServing marks the server and the notes service as SERVING.
func (h *Handler) SetServing(ctx context.Context) {
	h.setStatus(healthpb.HealthCheckResponse_SERVING)

	version := ""
	if h.services != nil && h.services.AppInfoService != nil {
		version = h.services.AppInfoService.GetAppVersion(ctx)
	}
	h.logger.Info().Str("version", version).Msg("gRPC health status is SERVING")
}

// Shutdown sets every status to NOT_SERVING and ignores later updates.
func (h *Handler) Shutdown() {
	h.health.Shutdown()
}

func (h *Handler) setStatus(status healthpb.HealthCheckResponse_ServingStatus) {
	h.health.SetServingStatus("", status)
	h.health.SetServingStatus(NotesServiceName, status)
}

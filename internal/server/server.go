package server

import (
	"context"
	"os/signal"
	"syscall"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/handler"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
)

// ShutdownTimeout bounds how long in-flight requests may drain after a
// stop signal.
const ShutdownTimeout = 10 * time.Second

// server runs the REST API and, when configured, the gRPC health endpoint
// side by side.
type server struct {
	httpServer *httpServer
	gRPCServer *grpcServer
	logger     *logger.Logger
}

type transport struct {
	name    string
	address string
	Server
}

func NewServer(handlers *handler.Handlers, cfg config.Server, logger *logger.Logger) (Server, error) {
	s := &server{logger: logger}

	if cfg.HTTPAddress != "" && handlers.HTTP != nil {
		s.httpServer = newHTTPServer(handlers.HTTP.Init(), cfg, logger)
	}
	if cfg.GRPCAddress != "" && handlers.GRPC != nil {
		g, err := newGRPCServer(handlers.GRPC, cfg, logger)
		if err != nil {
			return nil, err
		}
		s.gRPCServer = g
	}

	if len(s.transports()) == 0 {
		return nil, errNoServersAreCreated
	}
	return s, nil
}

func (s *server) transports() []transport {
	var ts []transport
	if s.httpServer != nil {
		ts = append(ts, transport{name: "http", address: s.httpServer.server.Addr, Server: s.httpServer})
	}
	if s.gRPCServer != nil {
		ts = append(ts, transport{name: "grpc", address: s.gRPCServer.gRPCNetListener.Addr().String(), Server: s.gRPCServer})
	}
	return ts
}

// RunServer serves until SIGTERM, SIGINT or SIGQUIT, then shuts down.
func (s *server) RunServer() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT, syscall.SIGQUIT)
	defer stop()

	s.run(ctx)
}

func (s *server) Shutdown(ctx context.Context) {
	for _, t := range s.transports() {
		t.Shutdown(ctx)
	}
}

// run starts every transport and blocks until ctx is done and they have
// drained.
func (s *server) run(ctx context.Context) {
	for _, t := range s.transports() {
		s.logger.Info().Str("transport", t.name).Str("address", t.address).Msg("notes server listening")
		go t.RunServer()
	}

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), ShutdownTimeout)
	defer cancel()
	s.Shutdown(shutdownCtx)

	s.logger.Info().Msg("notes server stopped")
}

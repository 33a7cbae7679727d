package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/adapter"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/models"
)

type clientAuthService struct {
	sessions      store.SessionRepository
	serverAdapter adapter.ServerAdapter

	now    func() time.Time
	logger *logger.Logger
}

func NewClientAuthService(sessions store.SessionRepository, serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientAuthService {
	return &clientAuthService{
		sessions:      sessions,
		serverAdapter: serverAdapter,
		now:           time.Now,
		logger:        logger,
	}
}

func (s *clientAuthService) Restore(ctx context.Context) (models.Session, error) {
	session, err := s.sessions.LoadSession(ctx)
	if errors.Is(err, store.ErrLocalSessionNotFound) {
		return models.Session{}, ErrNotSignedIn
	}
	if err != nil {
		s.logger.Err(err).Str("func", "*clientAuthService.Restore").Msg("loading local session failed")
		return models.Session{}, fmt.Errorf("loading local session failed: %w", err)
	}

	_, expiresAt, err := utils.ParseUnverifiedClaims(session.Token)
	if err != nil || (!expiresAt.IsZero() && !s.now().Before(expiresAt)) {
		s.logger.Info().Str("func", "*clientAuthService.Restore").Msg("stored session is expired")
		return models.Session{}, s.expire(ctx)
	}

	s.serverAdapter.SetToken(session.Token)

	identity, err := s.serverAdapter.CurrentUser(ctx)
	if err != nil {
		err = mapAdapterError(err)
		if errors.Is(err, ErrSessionExpired) {
			s.logger.Info().Str("func", "*clientAuthService.Restore").Msg("stored session was rejected by the server")
			return models.Session{}, s.expire(ctx)
		}
		s.serverAdapter.SetToken("")
		s.logger.Err(err).Str("func", "*clientAuthService.Restore").Msg("confirming session failed")
		return models.Session{}, fmt.Errorf("confirming session failed: %w", err)
	}

	session.Identity = identity
	return session, nil
}

func (s *clientAuthService) Register(ctx context.Context, user models.User) (models.Session, error) {
	identity, err := s.serverAdapter.Register(ctx, user)
	if err != nil {
		s.logger.Err(err).Str("func", "*clientAuthService.Register").Str("email", user.Email).Msg("registration failed")
		return models.Session{}, mapAdapterError(err)
	}

	return s.persist(ctx, identity)
}

func (s *clientAuthService) Login(ctx context.Context, user models.User) (models.Session, error) {
	identity, err := s.serverAdapter.Login(ctx, user)
	if err != nil {
		s.logger.Err(err).Str("func", "*clientAuthService.Login").Str("email", user.Email).Msg("login failed")
		return models.Session{}, mapAdapterError(err)
	}

	return s.persist(ctx, identity)
}

func (s *clientAuthService) Logout(ctx context.Context) error {
	s.serverAdapter.SetToken("")

	if err := s.sessions.ClearSession(ctx); err != nil {
		s.logger.Err(err).Str("func", "*clientAuthService.Logout").Msg("clearing local session failed")
		return fmt.Errorf("clearing local session failed: %w", err)
	}

	return nil
}

// persist stores the signed-in identity with the token the adapter now
// holds. A failed save only costs the next start a login, so it is logged
// and not returned.
func (s *clientAuthService) persist(ctx context.Context, identity models.Identity) (models.Session, error) {
	session := models.Session{
		Identity: identity,
		Token:    s.serverAdapter.Token(),
		SavedAt:  s.now().UTC(),
	}

	if err := s.sessions.SaveSession(ctx, session); err != nil {
		s.logger.Err(err).Str("func", "*clientAuthService.persist").Msg("saving local session failed")
	}

	return session, nil
}

func (s *clientAuthService) expire(ctx context.Context) error {
	s.serverAdapter.SetToken("")
	if err := s.sessions.ClearSession(ctx); err != nil {
		s.logger.Err(err).Str("func", "*clientAuthService.expire").Msg("clearing local session failed")
	}
	return ErrSessionExpired
}

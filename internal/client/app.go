package client

import (
	"context"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/internal/tui"
	"github.com/MKhiriev/go-notes-keeper/models"
)

var _ UI = (*tui.TUI)(nil)

type App struct {
	auth   service.ClientAuthService
	ui     UI
	logger *logger.Logger
}

func NewApp(services *service.ClientServices, ui UI, logger *logger.Logger) (*App, error) {
	if services == nil || services.AuthService == nil {
		return nil, ErrNoAuthService
	}
	if ui == nil {
		return nil, ErrNoUI
	}

	return &App{
		auth:   services.AuthService,
		ui:     ui,
		logger: logger,
	}, nil
}

// Run restores the stored session or signs in through the UI, then runs the
// main loop. Signing out returns to the sign-in flow. Quitting from either
// screen ends Run without an error.
func (a *App) Run(ctx context.Context) error {
	session, err := a.auth.Restore(ctx)
	switch {
	case err == nil:
		a.logger.Info().Str("user_id", session.Identity.ID).Msg("restored session")
	case errors.Is(err, service.ErrSessionExpired):
		a.ui.SessionExpired()
		fallthrough
	case errors.Is(err, service.ErrNotSignedIn):
		session, err = a.signIn(ctx)
	default:
		// the stored session is kept for the next start
		a.logger.Err(err).Str("func", "*App.Run").Msg("error restoring session")
		session, err = a.signIn(ctx)
	}

	for {
		if errors.Is(err, tui.ErrUserQuit) {
			return nil
		}
		if err != nil {
			return err
		}

		var logout bool
		logout, err = a.ui.MainLoop(ctx, session)
		if err != nil {
			return fmt.Errorf("main loop: %w", err)
		}
		if !logout {
			return nil
		}

		if err = a.auth.Logout(ctx); err != nil {
			a.logger.Err(err).Str("func", "*App.Run").Msg("error signing out")
		}

		session, err = a.signIn(ctx)
	}
}

func (a *App) signIn(ctx context.Context) (models.Session, error) {
	session, err := a.ui.LoginFlow(ctx)
	if err != nil {
		if errors.Is(err, tui.ErrUserQuit) {
			return models.Session{}, err
		}
		return models.Session{}, fmt.Errorf("login flow: %w", err)
	}
	return session, nil
}

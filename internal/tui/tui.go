package tui

import (
	"context"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

// exportDir is where exported HTML documents are written: the directory the
// client was started from.
const exportDir = "."

const msgSessionExpired = "Your session has expired. Please sign in again."

// TUI runs the terminal programs of the client: the sign-in flow and the
// signed-in layout.
type TUI struct {
	services  *service.ClientServices
	cfg       config.ClientApp
	buildInfo models.AppBuildInfo
	logger    *logger.Logger

	// notice is shown on the menu of the next sign-in flow.
	notice string
}

func New(services *service.ClientServices, cfg config.ClientApp, buildInfo models.AppBuildInfo, log *logger.Logger) (*TUI, error) {
	return &TUI{
		services:  services,
		cfg:       cfg,
		buildInfo: buildInfo,
		logger:    log,
	}, nil
}

// LoginFlow shows the menu, sign-in and registration pages until the user
// signs in. It returns ErrUserQuit when the user quits instead.
func (t *TUI) LoginFlow(ctx context.Context) (models.Session, error) {
	pages := map[string]tea.Model{
		pageMenu:     NewMenuModelWithStatus(t.notice),
		pageLogin:    NewLoginModel(ctx, t.services.AuthService),
		pageRegister: NewRegisterModel(ctx, t.services.AuthService),
	}
	t.notice = ""

	root := NewRootModel(pages, pageMenu, t.buildInfo)
	finalModel, err := tea.NewProgram(root, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return models.Session{}, err
	}

	result, ok := finalModel.(RootModel)
	if !ok {
		return models.Session{}, tea.ErrProgramKilled
	}
	if result.quitByUser {
		return models.Session{}, ErrUserQuit
	}

	return result.session, nil
}

// MainLoop runs the signed-in layout. logout is true when the user signed
// out or the server rejected the session.
func (t *TUI) MainLoop(ctx context.Context, session models.Session) (logout bool, err error) {
	model := NewLayoutModel(ctx, t.services, session, LayoutOptions{
		SearchDebounce: t.cfg.SearchDebounce,
		ExportDir:      exportDir,
		BuildInfo:      t.buildInfo,
	}, t.logger)

	finalModel, err := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	if err != nil {
		return false, err
	}

	result, ok := finalModel.(LayoutModel)
	if !ok {
		return false, tea.ErrProgramKilled
	}
	if result.expired {
		t.notice = msgSessionExpired
	}
	return result.logout, nil
}

// SessionExpired makes the next sign-in flow explain why it is shown.
func (t *TUI) SessionExpired() {
	t.notice = msgSessionExpired
}

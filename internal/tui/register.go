package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	registerName = iota
	registerEmail
	registerPassword
	registerRepeat
)

// RegisterModel is the registration page. The server signs a new account in
// right away, so it ends with a [LoginResult] like the sign-in page.
type RegisterModel struct {
	credentialsForm

	ctx  context.Context
	auth service.ClientAuthService
}

func NewRegisterModel(ctx context.Context, auth service.ClientAuthService) *RegisterModel {
	return &RegisterModel{
		credentialsForm: newCredentialsForm("REGISTER", "Register", "Creating account...",
			formField{label: "Display name", placeholder: "display name (optional)", limit: 100},
			formField{label: "Email", placeholder: "you@example.com", limit: 254},
			formField{label: "Password", placeholder: "password", secret: true},
			formField{label: "Repeat password", placeholder: "repeat password", secret: true},
		),
		ctx:  ctx,
		auth: auth,
	}
}

func (m *RegisterModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *RegisterModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, m.update(msg, m.submit)
}

func (m *RegisterModel) View() string {
	return m.view()
}

func (m *RegisterModel) submit(values []string) (tea.Cmd, string) {
	email := strings.TrimSpace(values[registerEmail])
	pass := values[registerPassword]
	switch {
	case email == "" || pass == "":
		return nil, errCredentialsRequired
	case pass != values[registerRepeat]:
		return nil, "Passwords do not match"
	}
	return m.cmdRegister(strings.TrimSpace(values[registerName]), email, pass), ""
}

func (m *RegisterModel) cmdRegister(name, email, pass string) tea.Cmd {
	ctx, auth := m.ctx, m.auth
	return func() tea.Msg {
		session, err := auth.Register(ctx, models.User{DisplayName: name, Email: email, Password: pass})
		return LoginResult{Session: session, Err: err}
	}
}

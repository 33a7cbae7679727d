// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"

	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// LoginModel is the sign-in page. A successful sign-in produces a
// [LoginResult] that [RootModel] turns into the end of the flow.
type LoginModel struct {
	credentialsForm

	ctx  context.Context
	auth service.ClientAuthService
}

func NewLoginModel(ctx context.Context, auth service.ClientAuthService) *LoginModel {
	return &LoginModel{
		credentialsForm: newCredentialsForm("SIGN IN", "Sign in", "Signing in...",
			formField{label: "Email", placeholder: "you@example.com", limit: 254},
			formField{label: "Password", placeholder: "password", limit: 256, secret: true},
		),
		ctx:  ctx,
		auth: auth,
	}
}

func (m *LoginModel) Init() tea.Cmd {
	return textinput.Blink
}

func (m *LoginModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	return m, m.update(msg, m.submit)
}

func (m *LoginModel) View() string {
	return m.view()
}

func (m *LoginModel) submit(values []string) (tea.Cmd, string) {
	email, pass := strings.TrimSpace(values[0]), values[1]
	if email == "" || pass == "" {
		return nil, errCredentialsRequired
	}
	return m.cmdLogin(email, pass), ""
}

func (m *LoginModel) cmdLogin(email, pass string) tea.Cmd {
	ctx, auth := m.ctx, m.auth
	return func() tea.Msg {
		session, err := auth.Login(ctx, models.User{Email: email, Password: pass})
		return LoginResult{Session: session, Err: err}
	}
}

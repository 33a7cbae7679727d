// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"strings"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
)

type page int

const (
	pageNotes page = iota
	pageAccount
)

// header, tab line and a blank line above the page body
const layoutChromeHeight = 4

// LayoutModel is the signed-in shell: a tab bar switching between the notes
// manager and the account page, plus the global sign-out and quit keys.
type LayoutModel struct {
	session models.Session
	current page

	notes   *NotesPage
	account *AccountPage

	width, height int

	logout     bool
	expired    bool
	quitByUser bool
}

// LayoutOptions carries the client settings the signed-in pages need.
type LayoutOptions struct {
	SearchDebounce time.Duration
	ExportDir      string
	BuildInfo      models.AppBuildInfo
}

func NewLayoutModel(ctx context.Context, services *service.ClientServices, session models.Session, opts LayoutOptions, log *logger.Logger) LayoutModel {
	return LayoutModel{
		session: session,
		notes:   NewNotesPage(ctx, services.NotesService, opts.SearchDebounce, opts.ExportDir, log),
		account: NewAccountPage(ctx, services.AccountService, session.Identity, opts.BuildInfo, log),
	}
}

func (m LayoutModel) Init() tea.Cmd {
	return tea.Batch(m.notes.Init(), m.account.Init())
}

func (m LayoutModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		m.notes.SetSize(msg.Width, msg.Height-layoutChromeHeight)
		return m, nil

	case sessionExpiredMsg:
		m.logout = true
		m.expired = true
		return m, tea.Quit

	case profileLoadedMsg, serverVersionMsg:
		return m, m.account.Update(msg)

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.quit):
			m.quitByUser = true
			return m, tea.Quit
		case key.Matches(msg, keys.signOut):
			m.logout = true
			return m, tea.Quit
		case key.Matches(msg, keys.switchPage):
			if m.current == pageNotes {
				m.current = pageAccount
			} else {
				m.current = pageNotes
			}
			return m, nil
		}

		if m.current == pageAccount {
			return m, nil
		}
	}

	return m, m.notes.Update(msg)
}

func (m LayoutModel) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(appName))
	b.WriteString(mutedStyle.Render("  " + m.session.Identity.Email))
	b.WriteString("\n")

	notesTab, accountTab := inactiveTabStyle, inactiveTabStyle
	if m.current == pageNotes {
		notesTab = activeTabStyle
	} else {
		accountTab = activeTabStyle
	}
	b.WriteString(notesTab.Render("Notes"))
	b.WriteString(accountTab.Render("Account"))
	b.WriteString(helpStyle.Render("   ctrl+t: switch │ ctrl+l: sign out │ ctrl+c: quit"))
	b.WriteString("\n\n")

	if m.current == pageAccount {
		b.WriteString(m.account.View())
	} else {
		b.WriteString(m.notes.View())
	}

	return appStyle.Render(b.String())
}

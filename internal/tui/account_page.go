package tui

import (
	"context"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	lastSignInLayout = "Jan 2, 2006 15:04"
	accountStatus    = "Your account is active and in good standing"
)

// AccountPage shows the signed-in identity, the profile display name and
// the versions of the client and the server.
type AccountPage struct {
	ctx     context.Context
	account service.ClientAccountService

	identity      models.Identity
	displayName   string
	serverVersion string
	buildInfo     models.AppBuildInfo

	logger *logger.Logger
}

func NewAccountPage(ctx context.Context, account service.ClientAccountService, identity models.Identity, buildInfo models.AppBuildInfo, log *logger.Logger) *AccountPage {
	return &AccountPage{
		ctx:       ctx,
		account:   account,
		identity:  identity,
		buildInfo: buildInfo,
		logger:    log,
	}
}

func (a *AccountPage) Init() tea.Cmd {
	return tea.Batch(a.cmdProfile(), a.cmdServerVersion())
}

func (a *AccountPage) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case profileLoadedMsg:
		if msg.err != nil {
			a.logger.Err(msg.err).Str("func", "*AccountPage.Update").Msg("error loading profile")
			a.displayName = ""
			return expiredOr(msg.err, nil)
		}
		if msg.profile.ID == "" || msg.profile.ID == a.identity.ID {
			a.displayName = msg.profile.Name()
		}
	case serverVersionMsg:
		if msg.err != nil {
			a.logger.Err(msg.err).Str("func", "*AccountPage.Update").Msg("error fetching server version")
			return nil
		}
		a.serverVersion = msg.version
	}
	return nil
}

func (a *AccountPage) View() string {
	name := a.name()

	header := lipgloss.JoinHorizontal(lipgloss.Center,
		avatarStyle.Render(a.initials()),
		"  ",
		titleStyle.Render(name)+"\n"+mutedStyle.Render(a.identity.Email),
	)

	lastSignIn := "N/A"
	if a.identity.LastSignInAt != nil {
		lastSignIn = a.identity.LastSignInAt.Local().Format(lastSignInLayout)
	}

	var details strings.Builder
	details.WriteString("Email:          " + valueOrNA(a.identity.Email) + "\n")
	details.WriteString("Account ID:     " + valueOrNA(a.identity.ID) + "\n")
	details.WriteString("Last sign in:   " + lastSignIn + "\n")
	details.WriteString("Status:         " + okStyle.Render(accountStatus))

	var versions strings.Builder
	versions.WriteString("Server version: " + valueOrNA(a.serverVersion))
	for _, line := range a.buildInfo.Lines() {
		versions.WriteString("\n" + line)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		header,
		"",
		cardStyle.Render(details.String()),
		"",
		cardStyle.Render(versions.String()),
	)
}

// name is the display name, or the local part of the email when the profile
// has none.
func (a *AccountPage) name() string {
	if name := strings.TrimSpace(a.displayName); name != "" {
		return name
	}
	local, _, _ := strings.Cut(a.identity.Email, "@")
	return local
}

func (a *AccountPage) initials() string {
	source := strings.TrimSpace(a.displayName)
	if source == "" {
		source = a.identity.Email
	}
	r, _ := utf8.DecodeRuneInString(source)
	if r == utf8.RuneError {
		return "?"
	}
	return string(unicode.ToUpper(r))
}

func (a *AccountPage) cmdProfile() tea.Cmd {
	ctx, svc := a.ctx, a.account
	return func() tea.Msg {
		profile, err := svc.Profile(ctx)
		return profileLoadedMsg{profile: profile, err: err}
	}
}

func (a *AccountPage) cmdServerVersion() tea.Cmd {
	ctx, svc := a.ctx, a.account
	return func() tea.Msg {
		version, err := svc.ServerVersion(ctx)
		return serverVersionMsg{version: version, err: err}
	}
}

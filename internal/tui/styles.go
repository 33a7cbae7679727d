package tui

import "github.com/charmbracelet/lipgloss"

const (
	colorAccent = lipgloss.Color("33")
	colorMuted  = lipgloss.Color("245")
	colorDanger = lipgloss.Color("160")
	colorOK     = lipgloss.Color("35")
)

var (
	appStyle        = lipgloss.NewStyle().Padding(1, 2)
	titleStyle      = lipgloss.NewStyle().Bold(true)
	helpStyle       = lipgloss.NewStyle().Faint(true)
	errorStyle      = lipgloss.NewStyle().Bold(true).Foreground(colorDanger)
	okStyle         = lipgloss.NewStyle().Foreground(colorOK)
	overlayBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 2)

	activeTabStyle   = lipgloss.NewStyle().Bold(true).Foreground(colorAccent).Underline(true).Padding(0, 1)
	inactiveTabStyle = lipgloss.NewStyle().Foreground(colorMuted).Padding(0, 1)

	sidebarStyle      = lipgloss.NewStyle().Border(lipgloss.NormalBorder(), false, true, false, false).BorderForeground(colorMuted).PaddingRight(1)
	selectedItemStyle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	mutedStyle        = lipgloss.NewStyle().Foreground(colorMuted)
	panelStyle        = lipgloss.NewStyle().PaddingLeft(2)
	avatarStyle       = lipgloss.NewStyle().Bold(true).Foreground(colorAccent).Border(lipgloss.RoundedBorder()).BorderForeground(colorAccent).Padding(0, 1)
	cardStyle         = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(colorMuted).Padding(0, 2)
)

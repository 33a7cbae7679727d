package tui

import (
	"strconv"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
)

type menuItem struct {
	label string
	page  string
}

var menuItems = []menuItem{
	{label: "Sign in", page: pageLogin},
	{label: "Register", page: pageRegister},
}

// MenuModel is the first page of the sign-in flow.
type MenuModel struct {
	idx    int
	status string
}

func NewMenuModel() *MenuModel {
	return &MenuModel{}
}

// NewMenuModelWithStatus opens the menu with a notice, for example after the
// previous session expired.
func NewMenuModelWithStatus(status string) *MenuModel {
	return &MenuModel{status: status}
}

func (m *MenuModel) Init() tea.Cmd {
	return nil
}

func (m *MenuModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	switch key.String() {
	case "up", "k":
		m.idx = max(m.idx-1, 0)
	case "down", "j":
		m.idx = min(m.idx+1, len(menuItems)-1)
	case "enter":
		m.status = ""
		page := menuItems[m.idx].page
		return m, func() tea.Msg { return NavigateTo{Page: page} }
	}
	return m, nil
}

func (m *MenuModel) View() string {
	rows := make([][]string, len(menuItems))
	for i, item := range menuItems {
		marker := " "
		if i == m.idx {
			marker = ">"
		}
		rows[i] = []string{marker + " " + strconv.Itoa(i+1), item.label}
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderTop(false).BorderBottom(false).BorderLeft(false).BorderRight(false).
		Headers("#", "Action").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == m.idx {
				return selectedItemStyle.Padding(0, 1)
			}
			return lipgloss.NewStyle().Padding(0, 1)
		})

	body := t.Render()
	if m.status != "" {
		body = mutedStyle.Render(m.status) + "\n\n" + body
	}
	return renderPage("WELCOME TO NOTES", body, "enter: select │ ↑/↓: navigate │ v: version")
}

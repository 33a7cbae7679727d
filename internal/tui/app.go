package tui

import (
	"github.com/MKhiriev/go-notes-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	pageMenu     = "menu"
	pageLogin    = "login"
	pageRegister = "register"
)

// RootModel routes the sign-in flow between the menu, login and register
// pages. It quits once a LoginResult without error arrives and keeps the
// session for the caller.
type RootModel struct {
	pages   map[string]tea.Model
	current tea.Model

	quitByUser    bool
	session       models.Session
	buildInfo     models.AppBuildInfo
	showBuildInfo bool
}

func NewRootModel(pages map[string]tea.Model, startPage string, buildInfo models.AppBuildInfo) RootModel {
	return RootModel{
		pages:     pages,
		current:   pages[startPage],
		buildInfo: buildInfo,
	}
}

func (r RootModel) Init() tea.Cmd {
	if r.current == nil {
		return nil
	}
	return r.current.Init()
}

func (r RootModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if handled, cmd := r.handleKey(msg); handled {
			return r, cmd
		}
	case NavigateTo:
		return r.navigate(msg)
	case LoginResult:
		if msg.Err == nil {
			r.session = msg.Session
			return r, tea.Quit
		}
	}

	if r.current == nil {
		return r, nil
	}
	var cmd tea.Cmd
	r.current, cmd = r.current.Update(msg)
	return r, cmd
}

// handleKey consumes the keys owned by the router. While the build info
// window is open every other key is swallowed too.
func (r *RootModel) handleKey(key tea.KeyMsg) (bool, tea.Cmd) {
	switch key.String() {
	case "ctrl+c":
		r.quitByUser = true
		return true, tea.Quit
	case "v":
		if r.isMenuPage() {
			r.showBuildInfo = !r.showBuildInfo
			return true, nil
		}
	case "esc":
		if r.showBuildInfo {
			r.showBuildInfo = false
			return true, nil
		}
	}
	return r.showBuildInfo, nil
}

func (r RootModel) navigate(nav NavigateTo) (tea.Model, tea.Cmd) {
	next, ok := r.pages[nav.Page]
	if !ok {
		return r, nil
	}
	r.current = next
	r.showBuildInfo = false

	if nav.Payload == nil {
		return r, r.current.Init()
	}
	payload := nav.Payload
	return r, func() tea.Msg { return payload }
}

func (r RootModel) View() string {
	switch {
	case r.showBuildInfo:
		return renderBuildInfoWindow(r.buildInfo)
	case r.current == nil:
		return renderPage(appName, "", "")
	default:
		return r.current.View()
	}
}

func (r RootModel) isMenuPage() bool {
	_, ok := r.current.(*MenuModel)
	return ok
}

package tui

import (
	"github.com/MKhiriev/go-notes-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

// NavigateTo asks [RootModel] to open another page. A non-nil Payload is
// delivered to the new page as its first message.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// LoginResult ends the login or the registration form.
type LoginResult struct {
	Session models.Session
	Err     error
}

type notesLoadedMsg struct {
	notes []models.Note
	err   error
}

// The mutation messages carry the list refetched after a successful call.
// refreshErr is set when only that refetch failed; the page then keeps the
// collection it already has.

type noteCreatedMsg struct {
	note       models.Note
	notes      []models.Note
	err        error
	refreshErr error
}

type noteSavedMsg struct {
	id         string
	notes      []models.Note
	err        error
	refreshErr error
	// content is true for an editor save, false for a title commit.
	content bool
}

type noteDeletedMsg struct {
	id         string
	notes      []models.Note
	err        error
	refreshErr error
}

// searchTickMsg fires when the debounce timer of the search input expires.
// Only the tick carrying the latest generation applies its term.
type searchTickMsg struct {
	gen  int
	term string
}

type profileLoadedMsg struct {
	profile models.Profile
	err     error
}

type serverVersionMsg struct {
	version string
	err     error
}

type copiedMsg struct {
	err error
}

type exportedMsg struct {
	path string
	err  error
}

// sessionExpiredMsg is raised when the server rejects the stored token.
type sessionExpiredMsg struct{}

type clearStatusMsg struct{}

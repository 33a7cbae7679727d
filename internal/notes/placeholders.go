package notes

import "fmt"

// Texts shown when the list or the main panel has nothing to display.
const (
	MsgLoadingNotes   = "Loading notes..."
	MsgNoNotesYet     = "No notes yet. Create one!"
	MsgNoSearchMatch  = "No notes match your search."
	MsgNoResults      = "No Results"
	MsgSelectOrCreate = "Select a note or create a new one"
	MsgNotesAppear    = "Your notes will appear here."
	MsgEmptyContent   = "No content. Start typing!"
)

// ListPlaceholder returns the text for an empty list sidebar, or "" when the
// filtered view has notes.
func (s *State) ListPlaceholder() string {
	if s.loading {
		return MsgLoadingNotes
	}
	if len(s.Filtered()) > 0 {
		return ""
	}
	if s.input != "" {
		return MsgNoSearchMatch
	}
	return MsgNoNotesYet
}

// PanelPlaceholder returns the heading and the hint for the main panel when
// no note is selected.
func (s *State) PanelPlaceholder() (heading, hint string) {
	noResults := s.input != "" && len(s.Filtered()) == 0

	switch {
	case s.loading:
		heading = MsgLoadingNotes
	case noResults:
		heading = MsgNoResults
	default:
		heading = MsgSelectOrCreate
	}

	if noResults {
		hint = fmt.Sprintf("No notes found matching %q.", s.input)
	} else {
		hint = MsgNotesAppear
	}

	return heading, hint
}

package tui

import (
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textarea"
	tea "github.com/charmbracelet/bubbletea"
)

// NoteEditor edits the content of one note. It reports every edit through
// onChange and an explicit save (ctrl+s) through onSave. The command returned
// by onSave must answer with a message the owner feeds back via
// [NoteEditor.SaveResult] together with the id of the saved note.
type NoteEditor struct {
	noteID string
	area   textarea.Model

	onChange func(content string)
	onSave   func(content string) tea.Cmd

	saving bool
	status string
}

func NewNoteEditor(onChange func(string), onSave func(string) tea.Cmd) NoteEditor {
	area := textarea.New()
	area.Placeholder = "Start typing..."
	area.ShowLineNumbers = false
	area.CharLimit = 0

	return NoteEditor{
		area:     area,
		onChange: onChange,
		onSave:   onSave,
	}
}

// Open loads a note into the editor. Reopening the same note keeps the
// cursor and any text not yet saved.
func (e *NoteEditor) Open(noteID, content string) {
	if e.noteID == noteID {
		return
	}
	e.noteID = noteID
	e.area.SetValue(content)
	e.saving = false
	e.status = ""
}

func (e *NoteEditor) NoteID() string {
	return e.noteID
}

func (e *NoteEditor) Value() string {
	return e.area.Value()
}

func (e *NoteEditor) Focus() tea.Cmd {
	return e.area.Focus()
}

func (e *NoteEditor) Blur() {
	e.area.Blur()
}

func (e *NoteEditor) Focused() bool {
	return e.area.Focused()
}

func (e *NoteEditor) SetSize(width, height int) {
	e.area.SetWidth(width)
	e.area.SetHeight(height)
}

// SaveResult ends a pending save of noteID. A result for a note that is no
// longer open is dropped; Open already reset the state for the new one.
func (e *NoteEditor) SaveResult(noteID string, ok bool) {
	if noteID != e.noteID {
		return
	}
	e.saving = false
	if ok {
		e.status = "Saved"
	} else {
		e.status = "Save failed"
	}
}

func (e *NoteEditor) Update(msg tea.Msg) tea.Cmd {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && key.Matches(keyMsg, keys.save) {
		if e.saving || e.onSave == nil {
			return nil
		}
		e.saving = true
		e.status = "Saving..."
		return e.onSave(e.area.Value())
	}

	before := e.area.Value()
	var cmd tea.Cmd
	e.area, cmd = e.area.Update(msg)

	if after := e.area.Value(); after != before {
		e.status = ""
		if e.onChange != nil {
			e.onChange(after)
		}
	}

	return cmd
}

func (e *NoteEditor) View() string {
	view := e.area.View()
	if e.status != "" {
		view += "\n" + helpStyle.Render(e.status)
	}
	return view
}

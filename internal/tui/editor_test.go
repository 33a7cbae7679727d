package tui

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNoteEditor_OpenSameNoteKeepsText(t *testing.T) {
	e := NewNoteEditor(nil, nil)
	e.Open("a", "first")
	e.area.SetValue("edited")

	e.Open("a", "first")
	assert.Equal(t, "edited", e.Value())

	e.Open("b", "second")
	assert.Equal(t, "b", e.NoteID())
	assert.Equal(t, "second", e.Value())
}

func TestNoteEditor_ReportsChanges(t *testing.T) {
	var changes []string
	e := NewNoteEditor(func(s string) { changes = append(changes, s) }, nil)
	e.Open("a", "")
	e.Focus()

	e.Update(keyRunes("h"))
	e.Update(keyRunes("i"))

	assert.Equal(t, []string{"h", "hi"}, changes)
}

func TestNoteEditor_IgnoresKeysWhenBlurred(t *testing.T) {
	called := false
	e := NewNoteEditor(func(string) { called = true }, nil)
	e.Open("a", "x")

	e.Update(keyRunes("y"))

	assert.False(t, called)
	assert.Equal(t, "x", e.Value())
}

func TestNoteEditor_SaveOnce(t *testing.T) {
	var saves []string
	e := NewNoteEditor(nil, func(s string) tea.Cmd {
		saves = append(saves, s)
		return func() tea.Msg { return nil }
	})
	e.Open("a", "body")
	e.Focus()

	ctrlS := tea.KeyMsg{Type: tea.KeyCtrlS}
	require.NotNil(t, e.Update(ctrlS))
	assert.Equal(t, "Saving...", e.status)

	assert.Nil(t, e.Update(ctrlS), "a second save waits for the first")
	assert.Equal(t, []string{"body"}, saves)

	e.SaveResult("a", true)
	assert.Contains(t, e.View(), "Saved")

	require.NotNil(t, e.Update(ctrlS))
	e.SaveResult("a", false)
	assert.Contains(t, e.View(), "Save failed")
	assert.Len(t, saves, 2)
}

func TestNoteEditor_DropsResultForOtherNote(t *testing.T) {
	e := NewNoteEditor(nil, func(string) tea.Cmd { return func() tea.Msg { return nil } })
	e.Open("a", "first")
	e.Focus()
	require.NotNil(t, e.Update(tea.KeyMsg{Type: tea.KeyCtrlS}))

	e.Open("b", "second")
	e.SaveResult("a", true)

	assert.Empty(t, e.status)
	assert.NotContains(t, e.View(), "Saved")

	e.SaveResult("a", false)
	assert.NotContains(t, e.View(), "Save failed")
}

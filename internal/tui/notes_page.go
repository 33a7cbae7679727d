// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"context"
	"errors"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/markdown"
	"github.com/MKhiriev/go-notes-keeper/internal/notes"
	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type notesFocus int

const (
	focusList notesFocus = iota
	focusSearch
	focusTitle
	focusEditor
)

const (
	sidebarWidth          = 32
	collapsedSidebarWidth = 4
)

// NotesPage is the notes manager: a searchable list of the user's notes and
// a panel showing the selected note as rendered markdown or in the editor.
// All list and selection rules live in [notes.State]; NotesPage turns key
// presses into state transitions and remote calls.
type NotesPage struct {
	ctx   context.Context
	notes service.ClientNotesService

	state    *notes.State
	search   textinput.Model
	title    textinput.Model
	editor   NoteEditor
	renderer *markdown.TermRenderer

	debounce  time.Duration
	searchGen int
	exportDir string

	focus      notesFocus
	collapsed  bool
	confirming bool
	confirm    confirmModel
	status     string
	statusErr  bool

	width, height int

	previewKey string
	previewOut string

	logger *logger.Logger
}

func NewNotesPage(ctx context.Context, notesService service.ClientNotesService, debounce time.Duration, exportDir string, log *logger.Logger) *NotesPage {
	search := textinput.New()
	search.Placeholder = "Search notes..."
	search.Prompt = "/ "
	search.Width = sidebarWidth - 4

	title := textinput.New()
	title.Placeholder = models.DefaultNoteTitle
	title.Prompt = ""
	title.CharLimit = 255

	p := &NotesPage{
		ctx:       ctx,
		notes:     notesService,
		state:     notes.NewState(),
		search:    search,
		title:     title,
		renderer:  markdown.NewTermRenderer(markdown.DefaultStyle),
		debounce:  debounce,
		exportDir: exportDir,
		logger:    log,
	}
	p.editor = NewNoteEditor(p.state.EditContent, p.cmdSaveContent)

	return p
}

func (p *NotesPage) Init() tea.Cmd {
	p.state.BeginLoad()
	return p.cmdLoad()
}

// Capturing reports whether key presses go to a text input.
func (p *NotesPage) Capturing() bool {
	return p.focus != focusList || p.confirming
}

func (p *NotesPage) SetSize(width, height int) {
	p.width = width
	p.height = height

	panelWidth := p.panelWidth()
	p.title.Width = panelWidth - 2
	// header, mode line, status and help lines
	p.editor.SetSize(panelWidth, max(height-6, 3))
}

func (p *NotesPage) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case notesLoadedMsg:
		if msg.err != nil {
			p.state.LoadFailed()
			return expiredOr(msg.err, nil)
		}
		p.state.Loaded(msg.notes)
		p.syncSelection()
		return nil

	case noteCreatedMsg:
		if msg.err != nil {
			return expiredOr(msg.err, p.setStatus(humanizeError(msg.err), true))
		}
		p.searchGen++
		p.search.SetValue("")
		p.state.Created(msg.note, p.refreshed(msg.notes, msg.refreshErr))
		p.syncSelection()
		return p.setFocus(focusEditor)

	case noteSavedMsg:
		if msg.content {
			p.editor.SaveResult(msg.id, msg.err == nil)
		}
		if msg.err != nil {
			return expiredOr(msg.err, p.setStatus(humanizeError(msg.err), true))
		}
		p.state.Saved(p.refreshed(msg.notes, msg.refreshErr))
		p.syncSelection()
		return nil

	case noteDeletedMsg:
		if msg.err != nil {
			return expiredOr(msg.err, nil)
		}
		p.state.Deleted(msg.id, p.refreshed(msg.notes, msg.refreshErr))
		p.syncSelection()
		return nil

	case searchTickMsg:
		if msg.gen == p.searchGen {
			p.state.ApplySearch(msg.term)
			p.syncSelection()
		}
		return nil

	case copiedMsg:
		if msg.err != nil {
			return p.setStatus("Copy failed: "+msg.err.Error(), true)
		}
		return p.setStatus("Copied to clipboard", false)

	case exportedMsg:
		if msg.err != nil {
			return expiredOr(msg.err, p.setStatus("Export failed: "+humanizeError(msg.err), true))
		}
		return p.setStatus("Exported to "+msg.path, false)

	case clearStatusMsg:
		p.status = ""
		p.statusErr = false
		return nil

	case tea.KeyMsg:
		return p.handleKey(msg)
	}

	return p.forward(msg)
}

func (p *NotesPage) handleKey(msg tea.KeyMsg) tea.Cmd {
	if p.confirming {
		return p.handleConfirm(msg)
	}

	// ctrl+b and ctrl+e move the cursor inside text inputs, so collapse and
	// export only act on the list.
	switch {
	case key.Matches(msg, keys.collapse) && p.focus == focusList:
		p.collapsed = !p.collapsed
		p.SetSize(p.width, p.height)
		return nil
	case key.Matches(msg, keys.copy):
		if note, ok := p.state.Selected(); ok {
			return cmdCopyToClipboard(note.Content)
		}
		return nil
	case key.Matches(msg, keys.export) && p.focus == focusList:
		if note, ok := p.state.Selected(); ok {
			return p.cmdExport(note)
		}
		return nil
	}

	switch p.focus {
	case focusSearch:
		return p.handleSearchKey(msg)
	case focusTitle:
		return p.handleTitleKey(msg)
	case focusEditor:
		if key.Matches(msg, keys.esc) {
			return p.setFocus(focusList)
		}
		return p.editor.Update(msg)
	}

	return p.handleListKey(msg)
}

func (p *NotesPage) handleListKey(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.up):
		p.moveSelection(-1)
	case key.Matches(msg, keys.down):
		p.moveSelection(1)
	case key.Matches(msg, keys.enter), key.Matches(msg, keys.preview):
		p.state.SetMode(notes.ModePreview)
	case key.Matches(msg, keys.search):
		if !p.collapsed {
			return p.setFocus(focusSearch)
		}
	case key.Matches(msg, keys.newNote):
		return p.cmdCreate()
	case key.Matches(msg, keys.edit):
		if _, ok := p.state.Selected(); ok {
			p.state.SetMode(notes.ModeEdit)
			return p.setFocus(focusEditor)
		}
	case key.Matches(msg, keys.rename):
		if _, ok := p.state.Selected(); ok {
			return p.setFocus(focusTitle)
		}
	case key.Matches(msg, keys.delete):
		if note, ok := p.state.Selected(); ok {
			p.confirming = true
			p.confirm.title = note.DisplayTitle()
		}
	}

	return nil
}

func (p *NotesPage) handleSearchKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, keys.esc) || key.Matches(msg, keys.enter) || key.Matches(msg, keys.tab) {
		return p.setFocus(focusList)
	}

	before := p.search.Value()
	var cmd tea.Cmd
	p.search, cmd = p.search.Update(msg)

	after := p.search.Value()
	if after == before {
		return cmd
	}

	// every keystroke restarts the timer; older ticks are ignored
	p.state.SetSearchInput(after)
	p.searchGen++
	return tea.Batch(cmd, cmdDebounce(p.debounce, p.searchGen, after))
}

func (p *NotesPage) handleTitleKey(msg tea.KeyMsg) tea.Cmd {
	if key.Matches(msg, keys.esc) || key.Matches(msg, keys.enter) || key.Matches(msg, keys.tab) {
		return p.setFocus(focusList)
	}

	var cmd tea.Cmd
	p.title, cmd = p.title.Update(msg)
	p.state.EditTitle(p.title.Value())
	return cmd
}

func (p *NotesPage) handleConfirm(msg tea.KeyMsg) tea.Cmd {
	switch {
	case key.Matches(msg, keys.yes):
		p.confirming = false
		if note, ok := p.state.Selected(); ok {
			return p.cmdDelete(note.ID)
		}
	case key.Matches(msg, keys.no), key.Matches(msg, keys.esc):
		p.confirming = false
	}
	return nil
}

// setFocus moves the keyboard focus. Leaving the title input commits the
// title, the terminal counterpart of a blur.
func (p *NotesPage) setFocus(next notesFocus) tea.Cmd {
	prev := p.focus
	if prev == next {
		return nil
	}
	p.focus = next

	var cmds []tea.Cmd
	switch prev {
	case focusSearch:
		p.search.Blur()
	case focusTitle:
		p.title.Blur()
		cmds = append(cmds, p.commitTitle())
	case focusEditor:
		p.editor.Blur()
	}

	switch next {
	case focusSearch:
		cmds = append(cmds, p.search.Focus())
	case focusTitle:
		cmds = append(cmds, p.title.Focus())
	case focusEditor:
		p.state.SetMode(notes.ModeEdit)
		cmds = append(cmds, p.editor.Focus())
	}

	return tea.Batch(cmds...)
}

func (p *NotesPage) commitTitle() tea.Cmd {
	note, ok := p.state.Selected()
	if !ok {
		return nil
	}
	return p.cmdSave(note, false)
}

func (p *NotesPage) moveSelection(delta int) {
	filtered := p.state.Filtered()
	if len(filtered) == 0 {
		return
	}

	i := p.state.SelectedIndex() + delta
	if i < 0 {
		i = 0
	}
	if i >= len(filtered) {
		i = len(filtered) - 1
	}

	p.state.Select(filtered[i].ID)
	p.syncSelection()
}

// syncSelection points the title input and the editor at the selected note.
func (p *NotesPage) syncSelection() {
	note, ok := p.state.Selected()
	if !ok {
		p.editor.Open("", "")
		if p.focus == focusTitle || p.focus == focusEditor {
			p.focus = focusList
			p.title.Blur()
			p.editor.Blur()
		}
		return
	}

	if p.editor.NoteID() != note.ID {
		p.title.SetValue(note.Title)
		if p.focus == focusTitle || p.focus == focusEditor {
			p.focus = focusList
			p.title.Blur()
			p.editor.Blur()
		}
	}
	p.editor.Open(note.ID, note.Content)
}

// forward passes non-key messages such as cursor blinks to the focused
// input.
func (p *NotesPage) forward(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	switch p.focus {
	case focusSearch:
		p.search, cmd = p.search.Update(msg)
	case focusTitle:
		p.title, cmd = p.title.Update(msg)
	case focusEditor:
		cmd = p.editor.Update(msg)
	}
	return cmd
}

func (p *NotesPage) setStatus(status string, isErr bool) tea.Cmd {
	p.status = status
	p.statusErr = isErr
	return cmdClearStatus()
}

func (p *NotesPage) panelWidth() int {
	w := sidebarWidth
	if p.collapsed {
		w = collapsedSidebarWidth
	}
	return max(p.width-w-4, 20)
}

// refreshed returns the list fetched after a mutation, or the collection
// already held when that fetch failed. The list is never patched locally.
func (p *NotesPage) refreshed(list []models.Note, err error) []models.Note {
	if err != nil {
		p.logger.Err(err).Str("func", "*NotesPage.refreshed").Msg("error refetching notes, keeping the current list")
		return p.state.Notes()
	}
	return list
}

// expiredOr turns a rejected session into [sessionExpiredMsg] and returns
// fallback for any other error.
func expiredOr(err error, fallback tea.Cmd) tea.Cmd {
	if errors.Is(err, service.ErrSessionExpired) {
		return func() tea.Msg { return sessionExpiredMsg{} }
	}
	return fallback
}

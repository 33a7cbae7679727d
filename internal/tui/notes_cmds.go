package tui

import (
	"time"

	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"
)

const statusTTL = 3 * time.Second

// writeClipboard is replaced in tests.
var writeClipboard = clipboard.WriteAll

func (p *NotesPage) cmdLoad() tea.Cmd {
	ctx, svc := p.ctx, p.notes
	return func() tea.Msg {
		list, err := svc.List(ctx)
		return notesLoadedMsg{notes: list, err: err}
	}
}

// cmdCreate inserts a placeholder note and refetches the list.
func (p *NotesPage) cmdCreate() tea.Cmd {
	ctx, svc := p.ctx, p.notes
	return func() tea.Msg {
		note, err := svc.Create(ctx)
		if err != nil {
			return noteCreatedMsg{err: err}
		}
		list, err := svc.List(ctx)
		return noteCreatedMsg{note: note, notes: list, refreshErr: err}
	}
}

func (p *NotesPage) cmdSaveContent(content string) tea.Cmd {
	note, ok := p.state.Selected()
	if !ok {
		return func() tea.Msg { return noteSavedMsg{content: true, err: errNothingSelected} }
	}
	note.Content = content
	return p.cmdSave(note, true)
}

func (p *NotesPage) cmdSave(note models.Note, content bool) tea.Cmd {
	ctx, svc := p.ctx, p.notes
	return func() tea.Msg {
		if _, err := svc.Save(ctx, note); err != nil {
			return noteSavedMsg{id: note.ID, content: content, err: err}
		}
		list, err := svc.List(ctx)
		return noteSavedMsg{id: note.ID, content: content, notes: list, refreshErr: err}
	}
}

func (p *NotesPage) cmdDelete(id string) tea.Cmd {
	ctx, svc := p.ctx, p.notes
	return func() tea.Msg {
		if err := svc.Delete(ctx, id); err != nil {
			return noteDeletedMsg{id: id, err: err}
		}
		list, err := svc.List(ctx)
		return noteDeletedMsg{id: id, notes: list, refreshErr: err}
	}
}

func (p *NotesPage) cmdExport(note models.Note) tea.Cmd {
	ctx, svc, dir := p.ctx, p.notes, p.exportDir
	return func() tea.Msg {
		path, err := svc.ExportHTML(ctx, note, dir)
		return exportedMsg{path: path, err: err}
	}
}

func cmdDebounce(delay time.Duration, gen int, term string) tea.Cmd {
	if delay <= 0 {
		return func() tea.Msg { return searchTickMsg{gen: gen, term: term} }
	}
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return searchTickMsg{gen: gen, term: term}
	})
}

func cmdCopyToClipboard(text string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{err: writeClipboard(text)}
	}
}

func cmdClearStatus() tea.Cmd {
	return tea.Tick(statusTTL, func(time.Time) tea.Msg {
		return clearStatusMsg{}
	})
}

package tui

import (
	"context"
	"fmt"
	"slices"
	"testing"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

// fakeNotes is an in-memory ClientNotesService. Setting an error field
// makes the matching call fail.
type fakeNotes struct {
	notes  []models.Note
	nextID int

	listErr   error
	createErr error
	saveErr   error
	deleteErr error
	exportErr error

	saved    []models.Note
	exported []string
}

func (f *fakeNotes) List(context.Context) ([]models.Note, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return slices.Clone(f.notes), nil
}

func (f *fakeNotes) Create(context.Context) (models.Note, error) {
	if f.createErr != nil {
		return models.Note{}, f.createErr
	}
	f.nextID++
	note := models.Note{
		ID:        fmt.Sprintf("new-%d", f.nextID),
		Title:     models.DefaultNoteTitle,
		CreatedAt: time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC),
	}
	f.notes = append([]models.Note{note}, f.notes...)
	return note, nil
}

func (f *fakeNotes) Save(_ context.Context, note models.Note) (models.Note, error) {
	if f.saveErr != nil {
		return models.Note{}, f.saveErr
	}
	f.saved = append(f.saved, note)
	for i := range f.notes {
		if f.notes[i].ID == note.ID {
			f.notes[i].Title = note.Title
			f.notes[i].Content = note.Content
			return f.notes[i], nil
		}
	}
	return note, nil
}

func (f *fakeNotes) Delete(_ context.Context, id string) error {
	if f.deleteErr != nil {
		return f.deleteErr
	}
	f.notes = slices.DeleteFunc(f.notes, func(n models.Note) bool { return n.ID == id })
	return nil
}

func (f *fakeNotes) ExportHTML(_ context.Context, note models.Note, dir string) (string, error) {
	if f.exportErr != nil {
		return "", f.exportErr
	}
	path := dir + "/" + note.ID + ".html"
	f.exported = append(f.exported, path)
	return path, nil
}

type fakeAccount struct {
	profile    models.Profile
	profileErr error
	version    string
	versionErr error
	calls      int
}

func (f *fakeAccount) Profile(context.Context) (models.Profile, error) {
	f.calls++
	return f.profile, f.profileErr
}

func (f *fakeAccount) ServerVersion(context.Context) (string, error) {
	return f.version, f.versionErr
}

func twoNotes() []models.Note {
	return []models.Note{
		{ID: "n2", Title: "Groceries", Content: "milk", CreatedAt: time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)},
		{ID: "n1", Title: "Ideas", Content: "# Big one", CreatedAt: time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)},
	}
}

// newLoadedPage returns a sized NotesPage that already received the
// collection of svc.
func newLoadedPage(t *testing.T, svc *fakeNotes) *NotesPage {
	t.Helper()
	p := NewNotesPage(context.Background(), svc, 0, t.TempDir(), logger.Nop())
	p.SetSize(120, 40)
	p.Update(p.Init()())
	return p
}

func keyRunes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func keyType(k tea.KeyType) tea.KeyMsg {
	return tea.KeyMsg{Type: k}
}

// typeText sends s one rune at a time.
func typeText(p *NotesPage, s string) tea.Cmd {
	var cmd tea.Cmd
	for _, r := range s {
		cmd = p.Update(keyRunes(string(r)))
	}
	return cmd
}

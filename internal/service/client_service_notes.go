package service

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/MKhiriev/go-notes-keeper/internal/adapter"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/models"
)

type clientNotesService struct {
	serverAdapter adapter.ServerAdapter

	logger *logger.Logger
}

func NewClientNotesService(serverAdapter adapter.ServerAdapter, logger *logger.Logger) ClientNotesService {
	return &clientNotesService{
		serverAdapter: serverAdapter,
		logger:        logger,
	}
}

func (s *clientNotesService) List(ctx context.Context) ([]models.Note, error) {
	notes, err := s.serverAdapter.ListNotes(ctx, models.SortNewestFirst)
	if err != nil {
		s.logger.Err(err).Str("func", "*clientNotesService.List").Msg("error fetching notes")
		return nil, mapAdapterError(err)
	}

	return notes, nil
}

func (s *clientNotesService) Create(ctx context.Context) (models.Note, error) {
	title, content := models.DefaultNoteTitle, ""

	note, err := s.serverAdapter.CreateNote(ctx, models.NewNote{Title: &title, Content: &content})
	if err != nil {
		s.logger.Err(err).Str("func", "*clientNotesService.Create").Msg("error creating note")
		return models.Note{}, mapAdapterError(err)
	}

	return note, nil
}

func (s *clientNotesService) Save(ctx context.Context, note models.Note) (models.Note, error) {
	updated, err := s.serverAdapter.UpdateNote(ctx, models.NoteUpdate{
		ID:      note.ID,
		Title:   note.Title,
		Content: note.Content,
	})
	if err != nil {
		s.logger.Err(err).Str("func", "*clientNotesService.Save").Str("id", note.ID).Msg("error updating note")
		return models.Note{}, mapAdapterError(err)
	}

	return updated, nil
}

func (s *clientNotesService) Delete(ctx context.Context, id string) error {
	if err := s.serverAdapter.DeleteNote(ctx, id); err != nil {
		s.logger.Err(err).Str("func", "*clientNotesService.Delete").Str("id", id).Msg("error deleting note")
		return mapAdapterError(err)
	}

	return nil
}

func (s *clientNotesService) ExportHTML(ctx context.Context, note models.Note, dir string) (string, error) {
	page, err := s.serverAdapter.RenderNoteHTML(ctx, note.ID)
	if err != nil {
		s.logger.Err(err).Str("func", "*clientNotesService.ExportHTML").Str("id", note.ID).Msg("error rendering note")
		return "", mapAdapterError(err)
	}

	path := filepath.Join(dir, note.ID+".html")
	if err = os.WriteFile(path, page, 0o600); err != nil {
		s.logger.Err(err).Str("func", "*clientNotesService.ExportHTML").Str("path", path).Msg("error writing html file")
		return "", fmt.Errorf("error writing html file: %w", err)
	}

	return path, nil
}

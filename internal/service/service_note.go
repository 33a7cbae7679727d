// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/internal/markdown"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/internal/utils"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// noteService implements NoteService on top of a NoteRepository. It does
// not validate its input; wrap it with NewNoteValidationService.
type noteService struct {
	noteRepository store.NoteRepository
	idGenerator    IDGenerator
	htmlRenderer   *markdown.HTMLRenderer

	logger *logger.Logger
}

func NewNoteService(noteRepository store.NoteRepository, logger *logger.Logger) NoteService {
	return &noteService{
		noteRepository: noteRepository,
		idGenerator:    utils.NewUUIDGenerator(),
		htmlRenderer:   markdown.NewHTMLRenderer(),
		logger:         logger,
	}
}

// ListNotes returns the notes of req.UserID ordered by creation time,
// newest first unless req.Order says otherwise.
func (n *noteService) ListNotes(ctx context.Context, req models.ListNotesRequest) ([]models.Note, error) {
	if req.Order == "" {
		req.Order = models.SortNewestFirst
	}

	notes, err := n.noteRepository.ListNotes(ctx, req)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("user_id", req.UserID).Msg("listing notes failed")
		return nil, fmt.Errorf("listing notes failed: %w", err)
	}

	return notes, nil
}

// CreateNote inserts a note owned by userID. Missing fields get the
// placeholder title and empty content.
func (n *noteService) CreateNote(ctx context.Context, userID string, newNote models.NewNote) (models.Note, error) {
	note := models.Note{
		ID:     n.idGenerator.Generate(),
		UserID: userID,
		Title:  models.DefaultNoteTitle,
	}
	if newNote.Title != nil && *newNote.Title != "" {
		note.Title = *newNote.Title
	}
	if newNote.Content != nil {
		note.Content = *newNote.Content
	}

	created, err := n.noteRepository.CreateNote(ctx, note)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("user_id", userID).Msg("note creation failed")
		return models.Note{}, fmt.Errorf("note creation failed: %w", err)
	}

	return created, nil
}

// UpdateNote writes both title and content of an owned note.
func (n *noteService) UpdateNote(ctx context.Context, update models.NoteUpdate) (models.Note, error) {
	updated, err := n.noteRepository.UpdateNote(ctx, update)
	if err != nil {
		logger.FromContext(ctx).Err(err).
			Str("id", update.ID).
			Str("user_id", update.UserID).
			Msg("note update failed")
		return models.Note{}, fmt.Errorf("note update failed: %w", err)
	}

	return updated, nil
}

func (n *noteService) DeleteNote(ctx context.Context, key models.NoteKey) error {
	if err := n.noteRepository.DeleteNote(ctx, key); err != nil {
		logger.FromContext(ctx).Err(err).
			Str("id", key.ID).
			Str("user_id", key.UserID).
			Msg("note deletion failed")
		return fmt.Errorf("note deletion failed: %w", err)
	}

	return nil
}

// RenderNoteHTML loads an owned note and renders it with goldmark.
func (n *noteService) RenderNoteHTML(ctx context.Context, key models.NoteKey) ([]byte, error) {
	log := logger.FromContext(ctx)

	note, err := n.noteRepository.GetNote(ctx, key)
	if err != nil {
		log.Err(err).Str("id", key.ID).Str("user_id", key.UserID).Msg("note search failed")
		return nil, fmt.Errorf("note search failed: %w", err)
	}

	page, err := n.htmlRenderer.Document(note.DisplayTitle(), note.Content)
	if err != nil {
		log.Err(err).Str("id", key.ID).Msg("rendering note failed")
		return nil, fmt.Errorf("%w: %w", ErrRenderingNote, err)
	}

	return page, nil
}

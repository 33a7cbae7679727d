package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/internal/validators"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// NoteValidationService checks every request before it reaches the wrapped
// NoteService. Rejections wrap ErrInvalidDataProvided together with the
// validator error.
type NoteValidationService struct {
	inner     NoteService
	validator validators.Validator
}

func NewNoteValidationService() NoteServiceWrapper {
	return &NoteValidationService{
		validator: validators.NewNoteValidator(),
	}
}

func (v *NoteValidationService) ListNotes(ctx context.Context, req models.ListNotesRequest) ([]models.Note, error) {
	if err := v.validator.Validate(ctx, req); err != nil {
		return nil, invalidData(err)
	}

	return v.inner.ListNotes(ctx, req)
}

func (v *NoteValidationService) CreateNote(ctx context.Context, userID string, note models.NewNote) (models.Note, error) {
	if err := v.validator.Validate(ctx, models.NoteKey{UserID: userID}, validators.FieldUserID); err != nil {
		return models.Note{}, invalidData(err)
	}
	if err := v.validator.Validate(ctx, note); err != nil {
		return models.Note{}, invalidData(err)
	}

	return v.inner.CreateNote(ctx, userID, note)
}

func (v *NoteValidationService) UpdateNote(ctx context.Context, update models.NoteUpdate) (models.Note, error) {
	if err := v.validator.Validate(ctx, update); err != nil {
		return models.Note{}, invalidData(err)
	}

	return v.inner.UpdateNote(ctx, update)
}

func (v *NoteValidationService) DeleteNote(ctx context.Context, key models.NoteKey) error {
	if err := v.validator.Validate(ctx, key); err != nil {
		return invalidData(err)
	}

	return v.inner.DeleteNote(ctx, key)
}

func (v *NoteValidationService) RenderNoteHTML(ctx context.Context, key models.NoteKey) ([]byte, error) {
	if err := v.validator.Validate(ctx, key); err != nil {
		return nil, invalidData(err)
	}

	return v.inner.RenderNoteHTML(ctx, key)
}

func (v *NoteValidationService) Wrap(wrapped NoteService) NoteService {
	v.inner = wrapped
	return v
}

func invalidData(err error) error {
	return fmt.Errorf("%w: %w", ErrInvalidDataProvided, err)
}

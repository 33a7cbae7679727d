package validators

import (
	"context"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/google/uuid"
)

// Field name constants used to restrict validation to a subset of fields.
const (
	// FieldID targets the note identifier.
	FieldID = "id"

	// FieldUserID targets the owner identifier.
	FieldUserID = "user_id"

	// FieldTitle targets the note title.
	FieldTitle = "title"

	// FieldContent targets the markdown body.
	FieldContent = "content"

	// FieldOrder targets the created_at sort order of a list request.
	FieldOrder = "order"
)

// Limits enforced on note fields.
const (
	MaxTitleLength  = 255
	MaxContentBytes = 1 << 20
)

// NoteValidator implements the Validator interface for note requests:
// Note, NewNote, NoteUpdate, NoteKey and ListNotesRequest, by value or
// pointer.
type NoteValidator struct {
}

// NewNoteValidator constructs a NoteValidator and returns it as the
// Validator interface.
func NewNoteValidator() Validator {
	return &NoteValidator{}
}

// Validate dispatches to the type-specific rules. With no fields given, all
// fields relevant for the type are checked.
func (v *NoteValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.Note:
		return v.validateNote(value, fields...)
	case *models.Note:
		return v.validateNote(*value, fields...)

	case models.NewNote:
		return v.validateNewNote(value, fields...)
	case *models.NewNote:
		return v.validateNewNote(*value, fields...)

	case models.NoteUpdate:
		return v.validateNoteUpdate(value, fields...)
	case *models.NoteUpdate:
		return v.validateNoteUpdate(*value, fields...)

	case models.NoteKey:
		return v.validateNoteKey(value, fields...)
	case *models.NoteKey:
		return v.validateNoteKey(*value, fields...)

	case models.ListNotesRequest:
		return v.validateListRequest(value, fields...)
	case *models.ListNotesRequest:
		return v.validateListRequest(*value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *NoteValidator) validateNote(note models.Note, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldUserID, FieldTitle, FieldContent}
	}

	for _, f := range fields {
		var err error
		switch f {
		case FieldID:
			err = checkNoteID(note.ID)
		case FieldUserID:
			err = checkUserID(note.UserID)
		case FieldTitle:
			err = checkTitle(note.Title)
		case FieldContent:
			err = checkContent(note.Content)
		default:
			err = ErrUnknownField
		}
		if err != nil {
			return err
		}
	}

	return nil
}

func (v *NoteValidator) validateNewNote(note models.NewNote, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldTitle, FieldContent}
	}

	for _, f := range fields {
		switch f {
		case FieldTitle:
			if note.Title != nil {
				if err := checkTitle(*note.Title); err != nil {
					return err
				}
			}
		case FieldContent:
			if note.Content != nil {
				if err := checkContent(*note.Content); err != nil {
					return err
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *NoteValidator) validateNoteUpdate(update models.NoteUpdate, fields ...string) error {
	return v.validateNote(models.Note{
		ID:      update.ID,
		UserID:  update.UserID,
		Title:   update.Title,
		Content: update.Content,
	}, fields...)
}

func (v *NoteValidator) validateNoteKey(key models.NoteKey, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldID, FieldUserID}
	}

	for _, f := range fields {
		switch f {
		case FieldID:
			if err := checkNoteID(key.ID); err != nil {
				return err
			}
		case FieldUserID:
			if err := checkUserID(key.UserID); err != nil {
				return err
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *NoteValidator) validateListRequest(request models.ListNotesRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldOrder}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if err := checkUserID(request.UserID); err != nil {
				return err
			}
		case FieldOrder:
			switch request.Order {
			case "", models.SortNewestFirst, models.SortOldestFirst:
			default:
				return ErrInvalidSortOrder
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func checkUserID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrInvalidUserID
	}
	return nil
}

func checkNoteID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return ErrInvalidNoteID
	}
	return nil
}

// checkTitle allows any printable text up to MaxTitleLength runes; a title
// is a single line.
func checkTitle(title string) error {
	if utf8.RuneCountInString(title) > MaxTitleLength {
		return ErrTitleTooLong
	}
	if strings.IndexFunc(title, unicode.IsControl) >= 0 {
		return ErrInvalidTitle
	}
	return nil
}

func checkContent(content string) error {
	if len(content) > MaxContentBytes {
		return ErrContentTooLarge
	}
	return nil
}

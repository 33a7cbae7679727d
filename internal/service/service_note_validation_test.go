package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/MKhiriev/go-notes-keeper/internal/validators"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ─────────────────────────────────────────────
// Mocks
// ─────────────────────────────────────────────

type mockInnerService struct {
	listFn   func(ctx context.Context, req models.ListNotesRequest) ([]models.Note, error)
	createFn func(ctx context.Context, userID string, note models.NewNote) (models.Note, error)
	updateFn func(ctx context.Context, update models.NoteUpdate) (models.Note, error)
	deleteFn func(ctx context.Context, key models.NoteKey) error
	renderFn func(ctx context.Context, key models.NoteKey) ([]byte, error)

	calls int
}

func (m *mockInnerService) ListNotes(ctx context.Context, req models.ListNotesRequest) ([]models.Note, error) {
	m.calls++
	if m.listFn != nil {
		return m.listFn(ctx, req)
	}
	return nil, nil
}

func (m *mockInnerService) CreateNote(ctx context.Context, userID string, note models.NewNote) (models.Note, error) {
	m.calls++
	if m.createFn != nil {
		return m.createFn(ctx, userID, note)
	}
	return models.Note{}, nil
}

func (m *mockInnerService) UpdateNote(ctx context.Context, update models.NoteUpdate) (models.Note, error) {
	m.calls++
	if m.updateFn != nil {
		return m.updateFn(ctx, update)
	}
	return models.Note{}, nil
}

func (m *mockInnerService) DeleteNote(ctx context.Context, key models.NoteKey) error {
	m.calls++
	if m.deleteFn != nil {
		return m.deleteFn(ctx, key)
	}
	return nil
}

func (m *mockInnerService) RenderNoteHTML(ctx context.Context, key models.NoteKey) ([]byte, error) {
	m.calls++
	if m.renderFn != nil {
		return m.renderFn(ctx, key)
	}
	return nil, nil
}

const (
	validUserID = "0190f7a8-3b7c-7cc4-a4c8-7e0f5d2b9a10"
	validNoteID = "0190f7a8-3b7c-7cc4-a4c8-7e0f5d2b9a11"
)

func newValidationSvc(inner NoteService) NoteService {
	return NewNoteValidationService().Wrap(inner)
}

// ─────────────────────────────────────────────
// ListNotes
// ─────────────────────────────────────────────

func TestNoteValidation_ListNotes(t *testing.T) {
	tests := []struct {
		name      string
		req       models.ListNotesRequest
		wantErr   error
		wantCalls int
	}{
		{name: "valid default order", req: models.ListNotesRequest{UserID: validUserID}, wantCalls: 1},
		{name: "valid ascending order", req: models.ListNotesRequest{UserID: validUserID, Order: models.SortOldestFirst}, wantCalls: 1},
		{name: "bad user id", req: models.ListNotesRequest{UserID: "42"}, wantErr: validators.ErrInvalidUserID},
		{name: "bad order", req: models.ListNotesRequest{UserID: validUserID, Order: "title.asc"}, wantErr: validators.ErrInvalidSortOrder},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inner := &mockInnerService{}
			_, err := newValidationSvc(inner).ListNotes(context.Background(), tt.req)

			if tt.wantErr != nil {
				require.Error(t, err)
				assert.ErrorIs(t, err, ErrInvalidDataProvided)
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantCalls, inner.calls)
		})
	}
}

// ─────────────────────────────────────────────
// CreateNote
// ─────────────────────────────────────────────

func TestNoteValidation_CreateNote_Delegates(t *testing.T) {
	title := "Groceries"
	inner := &mockInnerService{
		createFn: func(_ context.Context, userID string, note models.NewNote) (models.Note, error) {
			return models.Note{ID: validNoteID, UserID: userID, Title: *note.Title}, nil
		},
	}

	got, err := newValidationSvc(inner).CreateNote(context.Background(), validUserID, models.NewNote{Title: &title})

	require.NoError(t, err)
	assert.Equal(t, validUserID, got.UserID)
	assert.Equal(t, "Groceries", got.Title)
}

func TestNoteValidation_CreateNote_Rejects(t *testing.T) {
	long := strings.Repeat("x", validators.MaxTitleLength+1)

	tests := []struct {
		name    string
		userID  string
		note    models.NewNote
		wantErr error
	}{
		{name: "missing user id", userID: "", wantErr: validators.ErrInvalidUserID},
		{name: "title too long", userID: validUserID, note: models.NewNote{Title: &long}, wantErr: validators.ErrTitleTooLong},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inner := &mockInnerService{}
			_, err := newValidationSvc(inner).CreateNote(context.Background(), tt.userID, tt.note)

			require.Error(t, err)
			assert.ErrorIs(t, err, ErrInvalidDataProvided)
			assert.ErrorIs(t, err, tt.wantErr)
			assert.Zero(t, inner.calls)
		})
	}
}

// ─────────────────────────────────────────────
// UpdateNote / DeleteNote / RenderNoteHTML
// ─────────────────────────────────────────────

func TestNoteValidation_UpdateNote(t *testing.T) {
	inner := &mockInnerService{}
	svc := newValidationSvc(inner)

	_, err := svc.UpdateNote(context.Background(), models.NoteUpdate{ID: validNoteID, UserID: validUserID, Title: "a", Content: "b"})
	require.NoError(t, err)
	assert.Equal(t, 1, inner.calls)

	_, err = svc.UpdateNote(context.Background(), models.NoteUpdate{ID: "nope", UserID: validUserID})
	assert.ErrorIs(t, err, validators.ErrInvalidNoteID)
	assert.Equal(t, 1, inner.calls)

	_, err = svc.UpdateNote(context.Background(), models.NoteUpdate{ID: validNoteID, UserID: validUserID, Title: "line\nbreak"})
	assert.ErrorIs(t, err, validators.ErrInvalidTitle)
	assert.Equal(t, 1, inner.calls)
}

func TestNoteValidation_DeleteNote_PropagatesInnerError(t *testing.T) {
	innerErr := errors.New("boom")
	inner := &mockInnerService{
		deleteFn: func(context.Context, models.NoteKey) error { return innerErr },
	}

	err := newValidationSvc(inner).DeleteNote(context.Background(), models.NoteKey{ID: validNoteID, UserID: validUserID})

	assert.ErrorIs(t, err, innerErr)
	assert.NotErrorIs(t, err, ErrInvalidDataProvided)
}

func TestNoteValidation_DeleteNote_RejectsBadKey(t *testing.T) {
	inner := &mockInnerService{}

	err := newValidationSvc(inner).DeleteNote(context.Background(), models.NoteKey{ID: validNoteID})

	assert.ErrorIs(t, err, validators.ErrInvalidUserID)
	assert.Zero(t, inner.calls)
}

func TestNoteValidation_RenderNoteHTML(t *testing.T) {
	inner := &mockInnerService{
		renderFn: func(context.Context, models.NoteKey) ([]byte, error) { return []byte("<p>x</p>"), nil },
	}
	svc := newValidationSvc(inner)

	page, err := svc.RenderNoteHTML(context.Background(), models.NoteKey{ID: validNoteID, UserID: validUserID})
	require.NoError(t, err)
	assert.Equal(t, "<p>x</p>", string(page))

	_, err = svc.RenderNoteHTML(context.Background(), models.NoteKey{ID: "", UserID: validUserID})
	assert.ErrorIs(t, err, ErrInvalidDataProvided)
	assert.Equal(t, 1, inner.calls)
}

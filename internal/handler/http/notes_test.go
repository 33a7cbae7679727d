// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"testing"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
	"github.com/MKhiriev/go-notes-keeper/internal/validators"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestListNotes(t *testing.T) {
	created := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	var got models.ListNotesRequest
	notes := &mockNoteService{
		listNotesFn: func(_ context.Context, req models.ListNotesRequest) ([]models.Note, error) {
			got = req
			return []models.Note{{ID: testNoteID, Title: "Groceries", Content: "- milk", UserID: testUserID, CreatedAt: created}}, nil
		},
	}
	h := newTestHandler(nil, nil, notes, nil)

	rec := serve(h, http.MethodGet, "/api/notes?order=created_at.asc", "", bearer())

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, testUserID, got.UserID)
	assert.Equal(t, models.SortOldestFirst, got.Order)

	var body []models.Note
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body, 1)
	assert.Equal(t, "Groceries", body[0].Title)
}

func TestListNotes_EmptyIsArray(t *testing.T) {
	notes := &mockNoteService{
		listNotesFn: func(context.Context, models.ListNotesRequest) ([]models.Note, error) {
			return []models.Note{}, nil
		},
	}
	h := newTestHandler(nil, nil, notes, nil)

	rec := serve(h, http.MethodGet, "/api/notes", "", bearer())

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `[]`, rec.Body.String())
}

func TestListNotes_InvalidOrder(t *testing.T) {
	notes := &mockNoteService{
		listNotesFn: func(context.Context, models.ListNotesRequest) ([]models.Note, error) {
			return nil, fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrInvalidSortOrder)
		},
	}
	h := newTestHandler(nil, nil, notes, nil)

	rec := serve(h, http.MethodGet, "/api/notes?order=title", "", bearer())

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid data provided: "+validators.ErrInvalidSortOrder.Error(), decodeError(t, rec.Body.Bytes()))
}

func TestListNotes_RequiresToken(t *testing.T) {
	h := newTestHandler(nil, nil, &mockNoteService{}, nil)

	tests := []struct {
		name    string
		headers map[string]string
	}{
		{name: "no header", headers: nil},
		{name: "not bearer", headers: map[string]string{"Authorization": "Basic abc"}},
		{name: "rejected token", headers: map[string]string{"Authorization": "Bearer expired"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := serve(h, http.MethodGet, "/api/notes", "", tt.headers)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Equal(t, "token is expired or invalid", decodeError(t, rec.Body.Bytes()))
		})
	}
}

func TestCreateNote(t *testing.T) {
	notes := &mockNoteService{
		createNoteFn: func(_ context.Context, userID string, note models.NewNote) (models.Note, error) {
			assert.Equal(t, testUserID, userID)
			require.NotNil(t, note.Title)
			assert.Equal(t, "Untitled Note", *note.Title)
			require.NotNil(t, note.Content)
			assert.Empty(t, *note.Content)
			return models.Note{ID: testNoteID, Title: *note.Title, UserID: userID}, nil
		},
	}
	h := newTestHandler(nil, nil, notes, nil)

	rec := serve(h, http.MethodPost, "/api/notes", `{"title":"Untitled Note","content":""}`, bearer())

	require.Equal(t, http.StatusCreated, rec.Code)
	var note models.Note
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &note))
	assert.Equal(t, testNoteID, note.ID)
}

func TestCreateNote_InvalidJSON(t *testing.T) {
	h := newTestHandler(nil, nil, &mockNoteService{}, nil)

	rec := serve(h, http.MethodPost, "/api/notes", `[`, bearer())

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestUpdateNote(t *testing.T) {
	var got models.NoteUpdate
	notes := &mockNoteService{
		updateNoteFn: func(_ context.Context, update models.NoteUpdate) (models.Note, error) {
			got = update
			return models.Note{ID: update.ID, Title: update.Title, Content: update.Content, UserID: update.UserID}, nil
		},
	}
	h := newTestHandler(nil, nil, notes, nil)

	// ids in the body are ignored in favour of the path and the token
	rec := serve(h, http.MethodPatch, "/api/notes/"+testNoteID,
		`{"id":"other","user_id":"intruder","title":"Plan","content":"# Week"}`, bearer())

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, testNoteID, got.ID)
	assert.Equal(t, testUserID, got.UserID)
	assert.Equal(t, "Plan", got.Title)
	assert.Equal(t, "# Week", got.Content)
}

func TestUpdateNote_Errors(t *testing.T) {
	tests := []struct {
		name       string
		err        error
		wantStatus int
		wantMsg    string
	}{
		{name: "other user's note", err: store.ErrNoteNotFound, wantStatus: http.StatusNotFound, wantMsg: "note not found"},
		{
			name:       "title too long",
			err:        fmt.Errorf("%w: %w", service.ErrInvalidDataProvided, validators.ErrTitleTooLong),
			wantStatus: http.StatusBadRequest,
			wantMsg:    "invalid data provided: title is too long",
		},
		{name: "storage failure", err: store.ErrExecutingStatement, wantStatus: http.StatusInternalServerError, wantMsg: "internal server error"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			notes := &mockNoteService{
				updateNoteFn: func(context.Context, models.NoteUpdate) (models.Note, error) {
					return models.Note{}, tt.err
				},
			}
			h := newTestHandler(nil, nil, notes, nil)

			rec := serve(h, http.MethodPatch, "/api/notes/"+testNoteID, `{"title":"t","content":"c"}`, bearer())

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantMsg, decodeError(t, rec.Body.Bytes()))
		})
	}
}

func TestDeleteNote(t *testing.T) {
	var got models.NoteKey
	notes := &mockNoteService{
		deleteNoteFn: func(_ context.Context, key models.NoteKey) error {
			got = key
			return nil
		},
	}
	h := newTestHandler(nil, nil, notes, nil)

	rec := serve(h, http.MethodDelete, "/api/notes/"+testNoteID, "", bearer())

	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Empty(t, rec.Body.String())
	assert.Equal(t, models.NoteKey{ID: testNoteID, UserID: testUserID}, got)
}

func TestDeleteNote_NotFound(t *testing.T) {
	notes := &mockNoteService{
		deleteNoteFn: func(context.Context, models.NoteKey) error {
			return store.ErrNoteNotFound
		},
	}
	h := newTestHandler(nil, nil, notes, nil)

	rec := serve(h, http.MethodDelete, "/api/notes/"+testNoteID, "", bearer())

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestRenderNote(t *testing.T) {
	notes := &mockNoteService{
		renderNoteHTMLFn: func(_ context.Context, key models.NoteKey) ([]byte, error) {
			assert.Equal(t, testNoteID, key.ID)
			return []byte("<h1>Plan</h1>"), nil
		},
	}
	h := newTestHandler(nil, nil, notes, nil)

	rec := serve(h, http.MethodGet, "/api/notes/"+testNoteID+"/html", "", bearer())

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "text/html; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Equal(t, "<h1>Plan</h1>", rec.Body.String())
}

func TestRenderNote_Failure(t *testing.T) {
	notes := &mockNoteService{
		renderNoteHTMLFn: func(context.Context, models.NoteKey) ([]byte, error) {
			return nil, service.ErrRenderingNote
		},
	}
	h := newTestHandler(nil, nil, notes, nil)

	rec := serve(h, http.MethodGet, "/api/notes/"+testNoteID+"/html", "", bearer())

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}

func TestRequireUserID_MissingInContext(t *testing.T) {
	h := newTestHandler(nil, nil, nil, nil)

	rec := serveDirect(h.listNotes, http.MethodGet, "/api/notes")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Equal(t, "no user ID provided", decodeError(t, rec.Body.Bytes()))
}

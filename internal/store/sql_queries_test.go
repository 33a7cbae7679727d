// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"strings"
	"testing"

	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func Test_buildListNotesQuery(t *testing.T) {
	tests := []struct {
		name      string
		order     models.SortOrder
		wantOrder string
	}{
		{name: "default is newest first", order: "", wantOrder: "ORDER BY created_at DESC"},
		{name: "newest first", order: models.SortNewestFirst, wantOrder: "ORDER BY created_at DESC"},
		{name: "oldest first", order: models.SortOldestFirst, wantOrder: "ORDER BY created_at ASC"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			query, args, err := buildListNotesQuery(models.ListNotesRequest{UserID: "u1", Order: tt.order})
			require.NoError(t, err)

			assert.Equal(t, []any{"u1"}, args)
			assert.Contains(t, query, "FROM notes")
			assert.Contains(t, query, "WHERE user_id = $1")
			assert.True(t, strings.HasSuffix(query, tt.wantOrder), query)
		})
	}
}

func Test_buildListNotesQuery_SelectsAllColumns(t *testing.T) {
	query, _, err := buildListNotesQuery(models.ListNotesRequest{UserID: "u1"})
	require.NoError(t, err)

	for _, c := range noteColumns {
		assert.Contains(t, query, c)
	}
}

// Every statement touching a single note must be filtered by its owner.
func Test_noteQueries_AreOwnerScoped(t *testing.T) {
	key := models.NoteKey{ID: "n1", UserID: "u1"}
	update := models.NoteUpdate{ID: "n1", UserID: "u1", Title: "t", Content: "c"}

	builders := map[string]func() (string, []any, error){
		"get":    func() (string, []any, error) { return buildGetNoteQuery(key) },
		"update": func() (string, []any, error) { return buildUpdateNoteQuery(update) },
		"delete": func() (string, []any, error) { return buildDeleteNoteQuery(key) },
	}

	for name, build := range builders {
		t.Run(name, func(t *testing.T) {
			query, args, err := build()
			require.NoError(t, err)

			assert.Contains(t, query, "id = $")
			assert.Contains(t, query, "user_id = $")
			assert.Equal(t, "n1", args[len(args)-2])
			assert.Equal(t, "u1", args[len(args)-1])
		})
	}
}

func Test_buildCreateNoteQuery(t *testing.T) {
	query, args, err := buildCreateNoteQuery(models.Note{ID: "n1", UserID: "u1", Title: "T", Content: "C"})
	require.NoError(t, err)

	assert.Equal(t, []any{"n1", "u1", "T", "C"}, args)
	assert.Contains(t, query, "INSERT INTO notes")
	assert.Contains(t, query, "$4")
	assert.Contains(t, query, noteReturning)
	assert.Contains(t, query, "(id,user_id,title,content)")
}

func Test_buildUpdateNoteQuery_StampsUpdatedAt(t *testing.T) {
	query, args, err := buildUpdateNoteQuery(models.NoteUpdate{ID: "n1", UserID: "u1", Title: "T", Content: "C"})
	require.NoError(t, err)

	assert.Contains(t, query, "updated_at = now()")
	assert.Equal(t, []any{"T", "C", "n1", "u1"}, args)
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package notes

import (
	"strings"
	"testing"

	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleNotes() []models.Note {
	return []models.Note{
		{ID: "3", Title: "Groceries", Content: "milk, EGGS, bread"},
		{ID: "2", Title: "Beta", Content: "second draft"},
		{ID: "1", Title: "Alpha", Content: "# heading\nfirst"},
	}
}

func ids(notes []models.Note) []string {
	out := make([]string, 0, len(notes))
	for _, n := range notes {
		out = append(out, n.ID)
	}
	return out
}

func TestFilter(t *testing.T) {
	tests := []struct {
		name string
		term string
		want []string
	}{
		{name: "empty term returns everything", term: "", want: []string{"3", "2", "1"}},
		{name: "title match is case-insensitive", term: "alp", want: []string{"1"}},
		{name: "content match", term: "draft", want: []string{"2"}},
		{name: "upper-case content matched by lower-case term", term: "eggs", want: []string{"3"}},
		{name: "upper-case term", term: "BETA", want: []string{"2"}},
		{name: "matches several keeping order", term: "a", want: []string{"3", "2", "1"}},
		{name: "no match", term: "zzz", want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Filter(sampleNotes(), tt.term)
			assert.Equal(t, tt.want, ids(got))
		})
	}
}

func TestFilter_EmptyTermReturnsSameSlice(t *testing.T) {
	all := sampleNotes()
	got := Filter(all, "")
	require.Len(t, got, len(all))
	assert.Same(t, &all[0], &got[0])
}

func TestFilter_EveryResultMatchesAndEveryMatchIsReturned(t *testing.T) {
	all := sampleNotes()
	for _, term := range []string{"a", "e", "first", "MILK", "#", "x"} {
		got := Filter(all, term)
		for _, n := range all {
			matches := containsFold(n.Title, term) || containsFold(n.Content, term)
			assert.Equal(t, matches, indexOf(got, n.ID) >= 0, "term %q note %s", term, n.ID)
		}
	}
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}

func TestReconcile(t *testing.T) {
	all := sampleNotes()
	alpha := all[2]
	beta := all[1]

	t.Run("nothing selected picks first filtered", func(t *testing.T) {
		got := Reconcile(all, all, nil)
		require.NotNil(t, got)
		assert.Equal(t, "3", got.ID)
	})

	t.Run("nothing selected and nothing visible stays empty", func(t *testing.T) {
		assert.Nil(t, Reconcile(all, nil, nil))
	})

	t.Run("selection outside filtered view moves to first", func(t *testing.T) {
		got := Reconcile(all, []models.Note{alpha}, &beta)
		require.NotNil(t, got)
		assert.Equal(t, "1", got.ID)
	})

	t.Run("visible selection is kept as the same pointer", func(t *testing.T) {
		sel := beta
		sel.Title = "edited locally"
		got := Reconcile(all, all, &sel)
		assert.Same(t, &sel, got)
	})

	t.Run("empty filtered view keeps an existing selection", func(t *testing.T) {
		sel := beta
		got := Reconcile(all, nil, &sel)
		assert.Same(t, &sel, got)
	})

	t.Run("empty filtered view clears a vanished selection", func(t *testing.T) {
		gone := models.Note{ID: "404"}
		assert.Nil(t, Reconcile(all, nil, &gone))
	})

	t.Run("idempotent", func(t *testing.T) {
		first := Reconcile(all, []models.Note{alpha}, &beta)
		second := Reconcile(all, []models.Note{alpha}, first)
		assert.Same(t, first, second)
	})
}

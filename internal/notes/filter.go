// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package notes holds the client-side state of the notes screen: the note
// collection, the applied search term, the memoized filtered view and the
// selected-note editing session.
//
// All transitions are plain methods on [State] without I/O. Remote calls are
// performed elsewhere; their results are fed back through [State.Loaded],
// [State.Created], [State.Saved] and [State.Deleted].
package notes

import (
	"strings"

	"github.com/MKhiriev/go-notes-keeper/models"
)

// Filter returns the notes whose title or content contains term,
// case-insensitively, preserving order. An empty term returns notes as is.
func Filter(notes []models.Note, term string) []models.Note {
	if term == "" {
		return notes
	}

	needle := strings.ToLower(term)
	filtered := make([]models.Note, 0, len(notes))
	for _, n := range notes {
		if strings.Contains(strings.ToLower(n.Title), needle) ||
			strings.Contains(strings.ToLower(n.Content), needle) {
			filtered = append(filtered, n)
		}
	}

	return filtered
}

func indexOf(notes []models.Note, id string) int {
	for i, n := range notes {
		if n.ID == id {
			return i
		}
	}
	return -1
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package notes

import "github.com/MKhiriev/go-notes-keeper/models"

// Mode is the presentation of the selected note in the main panel.
type Mode int

const (
	// ModePreview renders the note content as markdown.
	ModePreview Mode = iota
	// ModeEdit opens the note in the editor.
	ModeEdit
)

// State is the notes screen state machine. The zero value is not usable;
// create one with [NewState]. State is owned by a single goroutine (the UI
// update loop) and is not safe for concurrent use.
type State struct {
	all      []models.Note
	revision uint64

	input string
	term  string

	view      []models.Note
	viewRev   uint64
	viewTerm  string
	viewValid bool

	selected *models.Note
	mode     Mode
	loading  bool
}

// NewState returns an empty state that is waiting for the first list.
func NewState() *State {
	return &State{loading: true, mode: ModePreview}
}

// Loading reports whether the first list has not arrived yet or a refresh
// was requested with [State.BeginLoad].
func (s *State) Loading() bool {
	return s.loading
}

// BeginLoad marks the state as waiting for a list.
func (s *State) BeginLoad() {
	s.loading = true
}

// LoadFailed ends a load without touching the collection.
func (s *State) LoadFailed() {
	s.loading = false
}

// Notes returns the full collection, newest first.
func (s *State) Notes() []models.Note {
	return s.all
}

// Loaded replaces the collection with a freshly fetched list.
func (s *State) Loaded(list []models.Note) {
	s.all = list
	s.revision++
	s.loading = false
	s.reconcile()
}

// SearchInput returns the raw search text as typed.
func (s *State) SearchInput() string {
	return s.input
}

// SetSearchInput records the raw search text. The filtered view does not
// change until the debounced value is passed to [State.ApplySearch].
func (s *State) SetSearchInput(raw string) {
	s.input = raw
}

// Term returns the applied (debounced) search term.
func (s *State) Term() string {
	return s.term
}

// ApplySearch applies a debounced search term.
func (s *State) ApplySearch(term string) {
	if term == s.term {
		return
	}
	s.term = term
	s.reconcile()
}

// Filtered returns the notes matching the applied term. The result is
// memoized and only recomputed after the collection or the term changed.
func (s *State) Filtered() []models.Note {
	if s.viewValid && s.viewRev == s.revision && s.viewTerm == s.term {
		return s.view
	}

	s.view = Filter(s.all, s.term)
	s.viewRev = s.revision
	s.viewTerm = s.term
	s.viewValid = true

	return s.view
}

// Selected returns the selected note with any local edits applied.
func (s *State) Selected() (models.Note, bool) {
	if s.selected == nil {
		return models.Note{}, false
	}
	return *s.selected, true
}

// SelectedIndex returns the position of the selected note in the filtered
// view, or -1.
func (s *State) SelectedIndex() int {
	if s.selected == nil {
		return -1
	}
	return indexOf(s.Filtered(), s.selected.ID)
}

// Select opens the filtered note with the given id in preview mode.
// It reports false when no such note is visible.
func (s *State) Select(id string) bool {
	filtered := s.Filtered()
	i := indexOf(filtered, id)
	if i < 0 {
		return false
	}

	note := filtered[i]
	s.selected = &note
	s.mode = ModePreview
	return true
}

// Mode returns the presentation of the selected note.
func (s *State) Mode() Mode {
	return s.mode
}

// SetMode switches between preview and edit.
func (s *State) SetMode(m Mode) {
	s.mode = m
}

// EditTitle changes the title of the selected note locally.
func (s *State) EditTitle(title string) {
	if s.selected != nil {
		s.selected.Title = title
	}
}

// EditContent changes the content of the selected note locally.
func (s *State) EditContent(content string) {
	if s.selected != nil {
		s.selected.Content = content
	}
}

// Created applies the result of an insert followed by a list refresh: the
// search is cleared and the new note is opened in edit mode.
func (s *State) Created(note models.Note, list []models.Note) {
	s.all = list
	s.revision++
	s.loading = false

	s.input = ""
	s.term = ""

	created := note
	s.selected = &created
	s.mode = ModeEdit

	s.reconcile()
}

// Saved applies the list refresh that follows an update.
func (s *State) Saved(list []models.Note) {
	s.Loaded(list)
}

// Deleted applies the list refresh that follows a delete. When the deleted
// note was selected, the selection moves to the first filtered note or is
// cleared.
func (s *State) Deleted(id string, list []models.Note) {
	wasSelected := s.selected != nil && s.selected.ID == id

	s.all = list
	s.revision++
	s.loading = false

	if wasSelected {
		s.selected = nil
		if filtered := s.Filtered(); len(filtered) > 0 {
			first := filtered[0]
			s.selected = &first
		}
	}

	s.reconcile()
}

func (s *State) reconcile() {
	s.selected = Reconcile(s.all, s.Filtered(), s.selected)
}

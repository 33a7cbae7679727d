package models

import "time"

// DefaultNoteTitle is the placeholder title given to freshly created notes
// and shown for notes whose title was cleared.
const DefaultNoteTitle = "Untitled Note"

// Note is a markdown title/content record owned by exactly one user.
type Note struct {
	// ID is the opaque identifier assigned by the data service.
	ID string `json:"id"`

	// Title is the note headline. New notes start with [DefaultNoteTitle].
	Title string `json:"title"`

	// Content is the markdown body of the note. Empty for new notes.
	Content string `json:"content"`

	// UserID is the owner of the note. It is never accepted from the
	// client; the service derives it from the bearer token.
	UserID string `json:"user_id"`

	// CreatedAt is the creation time. Lists are ordered by it, newest first.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt is the time of the last successful save.
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// DisplayTitle returns the title, or [DefaultNoteTitle] when it is blank.
func (n Note) DisplayTitle() string {
	if n.Title == "" {
		return DefaultNoteTitle
	}
	return n.Title
}

// TableName returns the name of the database table
// associated with the Note model.
func (n Note) TableName() string {
	return "notes"
}

// NewNote is the body of an insert request. Nil fields fall back to the
// placeholders ([DefaultNoteTitle] and empty content).
type NewNote struct {
	Title   *string `json:"title,omitempty"`
	Content *string `json:"content,omitempty"`
}

// NoteUpdate is the body of an update request. Both fields are written as
// given; the last writer wins.
type NoteUpdate struct {
	// ID identifies the note. Taken from the URL, not from the body.
	ID string `json:"-"`

	// UserID scopes the update to the owner. Taken from the token.
	UserID string `json:"-"`

	Title   string `json:"title"`
	Content string `json:"content"`
}

// SortOrder is the direction of the created_at ordering of note lists.
type SortOrder string

const (
	// SortNewestFirst orders notes by created_at descending (the default).
	SortNewestFirst SortOrder = "created_at.desc"
	// SortOldestFirst orders notes by created_at ascending.
	SortOldestFirst SortOrder = "created_at.asc"
)

// ListNotesRequest describes a select over the notes table.
type ListNotesRequest struct {
	// UserID restricts the result to one owner. Required.
	UserID string

	// Order is the created_at ordering. Empty means [SortNewestFirst].
	Order SortOrder
}

// NoteKey addresses one note of one owner (delete and render requests).
type NoteKey struct {
	ID     string
	UserID string
}

package service

import (
	"context"

	"github.com/MKhiriev/go-notes-keeper/models"
)

// ClientAuthService manages the signed-in session of the terminal client.
// A successful Register, Login or Restore leaves the bearer token installed
// on the server adapter and the session persisted locally.
type ClientAuthService interface {
	// Restore loads the locally stored session and confirms it with the
	// server. It returns ErrNotSignedIn when nothing is stored and
	// ErrSessionExpired (after clearing the stored session) when the token
	// is expired or rejected.
	Restore(ctx context.Context) (models.Session, error)

	// Register creates an account and signs it in.
	Register(ctx context.Context, user models.User) (models.Session, error)

	// Login signs in with email and password. A wrong combination yields
	// ErrWrongPassword.
	Login(ctx context.Context, user models.User) (models.Session, error)

	// Logout forgets the token and the stored session.
	Logout(ctx context.Context) error
}

// ClientNotesService performs the remote CRUD calls of the notes screen.
// Every failure is logged before it is returned; callers decide whether to
// surface or swallow it.
type ClientNotesService interface {
	// List returns the signed-in user's notes, newest first.
	List(ctx context.Context) ([]models.Note, error)

	// Create inserts a note with the placeholder title and empty content.
	Create(ctx context.Context) (models.Note, error)

	// Save writes the title and content of note.
	Save(ctx context.Context, note models.Note) (models.Note, error)

	Delete(ctx context.Context, id string) error

	// ExportHTML writes the server's HTML rendering of the note into dir and
	// returns the file path.
	ExportHTML(ctx context.Context, note models.Note, dir string) (string, error)
}

// ClientAccountService reads the data the account screen renders.
type ClientAccountService interface {
	Profile(ctx context.Context) (models.Profile, error)
	ServerVersion(ctx context.Context) (string, error)
}

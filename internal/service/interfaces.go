package service

import (
	"context"

	"github.com/MKhiriev/go-notes-keeper/models"
)

// AuthService covers account creation, password sign-in and the bearer
// token lifecycle of the data service.
type AuthService interface {
	RegisterUser(ctx context.Context, user models.User) (models.User, error)
	Login(ctx context.Context, user models.User) (models.User, error)
	GetUser(ctx context.Context, userID string) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// ProfileService reads the public profile row of a user.
type ProfileService interface {
	GetProfile(ctx context.Context, userID string) (models.Profile, error)
}

// NoteService is the owner-scoped notes resource. Every method operates on
// the notes of a single user only.
type NoteService interface {
	ListNotes(ctx context.Context, req models.ListNotesRequest) ([]models.Note, error)
	CreateNote(ctx context.Context, userID string, note models.NewNote) (models.Note, error)
	UpdateNote(ctx context.Context, update models.NoteUpdate) (models.Note, error)
	DeleteNote(ctx context.Context, key models.NoteKey) error

	// RenderNoteHTML returns the note as a standalone HTML document.
	RenderNoteHTML(ctx context.Context, key models.NoteKey) ([]byte, error)
}

// AppInfoService exposes build information of the running server.
type AppInfoService interface {
	GetAppVersion(ctx context.Context) string
}

// NoteServiceWrapper defines middleware composition for NoteService.
// Implementations wrap an existing NoteService to add behavior such as
// logging or validating.
type NoteServiceWrapper interface {
	Wrap(NoteService) NoteService // returns a decorated NoteService applying additional behavior
}

// IDGenerator issues identifiers for new users and notes.
type IDGenerator interface {
	Generate() string
}

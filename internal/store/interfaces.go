package store

import (
	"context"
	"time"

	"github.com/MKhiriev/go-notes-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/store_mock.go -package=mock

// UserRepository persists accounts in the "users" table. A profile row is
// created together with each user.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
	FindUserByID(ctx context.Context, id string) (models.User, error)
	// TouchLastSignIn stamps the current database time as the user's last
	// sign-in and returns it.
	TouchLastSignIn(ctx context.Context, id string) (time.Time, error)
}

// ProfileRepository reads the "profiles" table.
type ProfileRepository interface {
	GetProfile(ctx context.Context, id string) (models.Profile, error)
}

// NoteRepository persists notes. Every method is scoped to the owner given
// in its argument; rows of other users are invisible.
type NoteRepository interface {
	ListNotes(ctx context.Context, req models.ListNotesRequest) ([]models.Note, error)
	GetNote(ctx context.Context, key models.NoteKey) (models.Note, error)
	CreateNote(ctx context.Context, note models.Note) (models.Note, error)
	UpdateNote(ctx context.Context, update models.NoteUpdate) (models.Note, error)
	DeleteNote(ctx context.Context, key models.NoteKey) error
}

// ErrorClassificator decides whether a failed database call may be retried.
type ErrorClassificator interface {
	Classify(err error) ErrorClassification
}

package store

import (
	"context"

	"github.com/MKhiriev/go-notes-keeper/models"
)

//go:generate mockgen -source=client_interfaces.go -destination=../mock/client_store_mock.go -package=mock

// SessionRepository keeps the signed-in session of this device in the local
// SQLite database. At most one session is stored.
type SessionRepository interface {
	SaveSession(ctx context.Context, session models.Session) error
	// LoadSession returns [ErrLocalSessionNotFound] when nobody is signed in.
	LoadSession(ctx context.Context) (models.Session, error)
	ClearSession(ctx context.Context) error
}

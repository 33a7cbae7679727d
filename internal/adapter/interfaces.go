// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package adapter provides the client's transport to the notes data service.
//
// [ServerAdapter] decouples the client services from the protocol. The
// package ships an HTTP/REST implementation ([NewHTTPServerAdapter]) built
// on resty.
//
// Non-2xx responses are mapped by mapHTTPError to the sentinel values in
// errors.go so callers can use [errors.Is] (e.g. [ErrConflict] for 409,
// [ErrUnauthorized] for 401). The server's error message is kept in the
// wrapped error text.
package adapter

import (
	"context"

	"github.com/MKhiriev/go-notes-keeper/models"
)

//go:generate mockgen -source=interfaces.go -destination=../mock/server_adapter_mock.go -package=mock

// ServerAdapter is the client's view of the notes data service. Every method
// is a single request/response call without retries.
type ServerAdapter interface {
	// SetToken stores the bearer token attached to authenticated requests.
	SetToken(token string)

	// Token returns the stored bearer token, or "" when signed out.
	Token() string

	// Register creates an account. On success the bearer token from the
	// response is stored via SetToken.
	Register(ctx context.Context, user models.User) (models.Identity, error)

	// Login authenticates with email and password and stores the returned
	// bearer token. The identity carries the refreshed last sign-in time.
	Login(ctx context.Context, user models.User) (models.Identity, error)

	// CurrentUser returns the identity of the stored token. It fails with
	// [ErrUnauthorized] when the token is expired or revoked.
	CurrentUser(ctx context.Context) (models.Identity, error)

	// GetProfile returns the profile of the signed-in user.
	GetProfile(ctx context.Context) (models.Profile, error)

	// ListNotes returns the signed-in user's notes in the given order.
	ListNotes(ctx context.Context, order models.SortOrder) ([]models.Note, error)

	CreateNote(ctx context.Context, note models.NewNote) (models.Note, error)
	UpdateNote(ctx context.Context, update models.NoteUpdate) (models.Note, error)
	DeleteNote(ctx context.Context, id string) error

	// RenderNoteHTML returns the note content rendered as an HTML document.
	RenderNoteHTML(ctx context.Context, id string) ([]byte, error)

	// Version returns the server's build version.
	Version(ctx context.Context) (string, error)
}

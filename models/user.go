package models

import "time"

// User represents an account entity used for authentication and authorization.
// Sensitive fields must never be exposed outside trusted boundaries.
type User struct {
	// ID is the unique identifier of the user (UUID string). Profiles and
	// notes reference it.
	ID string `json:"id"`

	// Email is the unique login of the user.
	Email string `json:"email"`

	// Password is the plain-text password. It only travels in register and
	// login request bodies and is never persisted.
	Password string `json:"password,omitempty"`

	// PasswordHash is the encoded argon2id hash stored by the service.
	// It is never exposed via JSON.
	PasswordHash string `json:"-"`

	// DisplayName is an optional name supplied at registration. It is
	// stored on the profile, not on the user row.
	DisplayName string `json:"display_name,omitempty"`

	// CreatedAt is the timestamp when the user account was created.
	CreatedAt time.Time `json:"created_at"`

	// LastSignInAt is updated on every successful login.
	LastSignInAt *time.Time `json:"last_sign_in_at,omitempty"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}

// Identity returns the public identity part of the user.
func (u User) Identity() Identity {
	return Identity{
		ID:           u.ID,
		Email:        u.Email,
		LastSignInAt: u.LastSignInAt,
	}
}

// Identity is the signed-in user as seen by the client screens: the values
// the account view renders and the notes view uses for ownership.
type Identity struct {
	ID           string     `json:"id"`
	Email        string     `json:"email"`
	LastSignInAt *time.Time `json:"last_sign_in_at,omitempty"`
}

// IsZero reports whether no user is signed in.
func (i Identity) IsZero() bool {
	return i.ID == ""
}

// Session is an identity together with the bearer token that authenticates
// it against the data service. The client persists it between runs.
type Session struct {
	Identity Identity
	Token    string
	SavedAt  time.Time
}

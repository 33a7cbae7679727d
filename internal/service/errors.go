package service

import "errors"

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrWrongPassword       = errors.New("wrong password")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrVersionIsNotSpecified   = errors.New("app version is not specified")

	ErrRenderingNote = errors.New("error rendering note")
)

// Client-side errors.
var (
	// ErrNotSignedIn is returned by Restore when no session is stored.
	ErrNotSignedIn = errors.New("not signed in")

	// ErrSessionExpired is returned when the stored token is expired or was
	// rejected by the server. The local session is cleared.
	ErrSessionExpired = errors.New("session expired, please sign in again")
)

package adapter

import "errors"

// Sentinels for non-2xx responses of the data service, one per status code
// the service produces.
var (
	ErrBadRequest          = errors.New("bad request")
	ErrUnauthorized        = errors.New("client unauthorized")
	ErrNotFound            = errors.New("not found")
	ErrConflict            = errors.New("conflict")
	ErrInternalServerError = errors.New("internal server error")
)

// ErrInvalidAddress is returned by [NewHTTPServerAdapter] for an empty or
// unparsable server address.
var ErrInvalidAddress = errors.New("invalid adapter http address")

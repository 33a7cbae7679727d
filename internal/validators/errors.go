package validators

import "errors"

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")

	ErrInvalidUserID      = errors.New("invalid user ID")
	ErrInvalidNoteID      = errors.New("invalid note ID")
	ErrTitleTooLong       = errors.New("title is too long")
	ErrInvalidTitle       = errors.New("title contains control characters")
	ErrContentTooLarge    = errors.New("content is too large")
	ErrInvalidSortOrder   = errors.New("invalid sort order")
	ErrInvalidEmail       = errors.New("invalid email")
	ErrPasswordTooShort   = errors.New("password is too short")
	ErrPasswordTooLong    = errors.New("password is too long")
	ErrEmptyPassword      = errors.New("password is required")
	ErrDisplayNameTooLong = errors.New("display name is too long")
)

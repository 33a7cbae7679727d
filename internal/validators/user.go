package validators

import (
	"context"
	"net/mail"
	"strings"
	"unicode/utf8"

	"github.com/MKhiriev/go-notes-keeper/models"
)

// Field name constants for user validation.
const (
	// FieldEmail targets the login email.
	FieldEmail = "email"

	// FieldPassword targets the password of a login request (must be present).
	FieldPassword = "password"

	// FieldNewPassword targets the password of a register request (length rules).
	FieldNewPassword = "new_password"

	// FieldDisplayName targets the optional display name given at register.
	FieldDisplayName = "display_name"
)

// Limits enforced on user fields.
const (
	MinPasswordLength    = 8
	MaxPasswordLength    = 256
	MaxDisplayNameLength = 100
)

// UserValidator implements the Validator interface for models.User
// register and login bodies.
type UserValidator struct {
}

// NewUserValidator constructs a UserValidator and returns it as the
// Validator interface.
func NewUserValidator() Validator {
	return &UserValidator{}
}

// Validate checks a register body by default. Login bodies are validated
// with FieldEmail and FieldPassword.
func (v *UserValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateUser(value, fields...)
	case *models.User:
		return v.validateUser(*value, fields...)
	default:
		return ErrUnsupportedType
	}
}

func (v *UserValidator) validateUser(user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldEmail, FieldNewPassword, FieldDisplayName}
	}

	for _, f := range fields {
		switch f {
		case FieldEmail:
			if !isEmail(user.Email) {
				return ErrInvalidEmail
			}
		case FieldPassword:
			if user.Password == "" {
				return ErrEmptyPassword
			}
		case FieldNewPassword:
			n := utf8.RuneCountInString(user.Password)
			if n < MinPasswordLength {
				return ErrPasswordTooShort
			}
			if n > MaxPasswordLength {
				return ErrPasswordTooLong
			}
		case FieldDisplayName:
			if utf8.RuneCountInString(user.DisplayName) > MaxDisplayNameLength {
				return ErrDisplayNameTooLong
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// isEmail accepts a bare address ("a@b.c"), not the "Name <a@b.c>" form.
func isEmail(s string) bool {
	if s == "" || strings.TrimSpace(s) != s {
		return false
	}
	addr, err := mail.ParseAddress(s)
	if err != nil {
		return false
	}
	return addr.Address == s && addr.Name == ""
}

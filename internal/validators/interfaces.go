// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package validators checks the bodies the notes service accepts before
// they reach storage. [NoteValidator] covers note ids, titles, content size
// and the list sort order; [UserValidator] covers register and login bodies.
// Every failure wraps one of the sentinels in errors.go.
package validators

import "context"

// Validator checks v. When fields are given only those fields are checked;
// an unknown field name yields ErrUnknownField and a value of a type the
// validator does not handle yields ErrUnsupportedType.
type Validator interface {
	Validate(ctx context.Context, v any, fields ...string) error
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"errors"
	"fmt"
	"strings"

	"github.com/MKhiriev/go-notes-keeper/internal/adapter"
	"github.com/MKhiriev/go-notes-keeper/internal/app"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
)

// mapAdapterError translates the adapter's transport error into a service business error
func mapAdapterError(err error) error {
	if err == nil {
		return nil
	}

	msg := extractBody(err)

	switch {
	case errors.Is(err, adapter.ErrBadRequest):
		if reason, ok := strings.CutPrefix(msg, app.MsgInvalidDataProvided); ok {
			return fmt.Errorf("%w%s", ErrInvalidDataProvided, reason)
		}
		return fmt.Errorf("%w: %s", ErrInvalidDataProvided, msg)

	case errors.Is(err, adapter.ErrUnauthorized):
		if msg == app.MsgInvalidEmailPassword {
			return ErrWrongPassword
		}
		return ErrSessionExpired

	case errors.Is(err, adapter.ErrNotFound):
		switch msg {
		case app.MsgNoteNotFound:
			return store.ErrNoteNotFound
		case app.MsgProfileNotFound:
			return store.ErrProfileNotFound
		case app.MsgUserNotFound:
			return ErrSessionExpired
		}

	case errors.Is(err, adapter.ErrConflict):
		if msg == app.MsgEmailAlreadyExists {
			return store.ErrEmailAlreadyExists
		}
	}

	return err
}

// extractBody extracts the body from a message of the form "bad request: <body>"
func extractBody(err error) string {
	msg := err.Error()
	if idx := strings.Index(msg, ": "); idx != -1 {
		return msg[idx+2:]
	}
	return msg
}

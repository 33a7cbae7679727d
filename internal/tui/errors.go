// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package tui

import (
	"errors"
	"strings"

	"github.com/MKhiriev/go-notes-keeper/internal/service"
	"github.com/MKhiriev/go-notes-keeper/internal/store"
)

// ErrUserQuit is returned when the user leaves the program with ctrl+c.
var ErrUserQuit = errors.New("user quit")

// humanizeError turns a client service error into a short status line.
func humanizeError(err error) string {
	if err == nil {
		return ""
	}

	switch {
	case errors.Is(err, service.ErrWrongPassword):
		return "Invalid email or password"
	case errors.Is(err, store.ErrEmailAlreadyExists):
		return "This email is already registered"
	case errors.Is(err, service.ErrSessionExpired):
		return "Session expired, please sign in again"
	case errors.Is(err, store.ErrNoteNotFound):
		return "The note no longer exists"
	case errors.Is(err, service.ErrInvalidDataProvided):
		return capitalize(err.Error())
	}

	s := strings.ToLower(err.Error())
	if strings.Contains(s, "connection refused") ||
		strings.Contains(s, "dial tcp") ||
		strings.Contains(s, "no such host") ||
		strings.Contains(s, "network is unreachable") ||
		strings.Contains(s, "i/o timeout") ||
		strings.Contains(s, "context deadline exceeded") {
		return "No network or the server is unavailable"
	}

	return err.Error()
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}

var errNothingSelected = errors.New("no note is selected")

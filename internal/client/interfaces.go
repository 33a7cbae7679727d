// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"

	"github.com/MKhiriev/go-notes-keeper/models"
)

// Client defines the minimal lifecycle contract for runnable client
// applications.
type Client interface {
	// Run starts the client application and blocks until exit.
	Run(ctx context.Context) error
}

// UI is the terminal front end driven by [App].
type UI interface {
	// LoginFlow blocks until the user signs in or quits.
	LoginFlow(ctx context.Context) (models.Session, error)
	// MainLoop blocks until the user signs out (logout is true) or quits.
	MainLoop(ctx context.Context, session models.Session) (logout bool, err error)
	// SessionExpired tells the next LoginFlow that the stored session was
	// rejected.
	SessionExpired()
}

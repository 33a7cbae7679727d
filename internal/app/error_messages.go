// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package app contains shared application-layer constants used by the
// server handlers and middleware and by the client when it interprets
// error responses.
//
// All Msg* constants are human-readable message strings written into the
// {"error": "..."} body of non-2xx responses.
package app

const (
	// MsgInvalidDataProvided is returned when the request body cannot be
	// decoded or fails validation. Validation failures append the reason
	// after a colon.
	MsgInvalidDataProvided = "invalid data provided"

	// MsgInvalidEmailPassword is returned when the supplied email/password
	// combination does not match any account.
	MsgInvalidEmailPassword = "invalid email/password"

	// MsgInternalServerError is returned when an unexpected server-side
	// failure occurs that the client cannot resolve.
	MsgInternalServerError = "internal server error"

	// MsgTokenIsExpiredOrInvalid is returned when a bearer token is missing,
	// expired or cannot be verified.
	MsgTokenIsExpiredOrInvalid = "token is expired or invalid"

	// MsgNoUserIDProvided is returned when an authenticated route runs
	// without a user ID in the request context.
	MsgNoUserIDProvided = "no user ID provided"

	// MsgEmailAlreadyExists is returned when a registration attempt uses an
	// email that already has an account.
	MsgEmailAlreadyExists = "email already exists"

	// MsgNoteNotFound is returned for notes that do not exist or belong to
	// another user.
	MsgNoteNotFound = "note not found"

	// MsgProfileNotFound is returned when the profile row of the token owner
	// is missing.
	MsgProfileNotFound = "profile not found"

	// MsgUserNotFound is returned when the token subject has no account.
	MsgUserNotFound = "user not found"

	// MsgIntegrityCheckFailed is returned when the HashSHA256 header does not
	// match the request body.
	MsgIntegrityCheckFailed = "request integrity check failed"
)

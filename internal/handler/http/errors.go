// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package http

import "errors"

// Sentinel errors used by the middleware. Callers can match against them
// with [errors.Is].
var (
	// ErrEmptyAuthorizationHeader is returned by the auth middleware when the
	// incoming request does not include an "Authorization" header at all.
	ErrEmptyAuthorizationHeader = errors.New("empty `Authorization` header")

	// ErrMissingBodyHash is returned by the integrity middleware when a hash
	// key is configured but the request carries no HashSHA256 header.
	ErrMissingBodyHash = errors.New("missing body hash")

	// ErrBodyHashMismatch is returned when the HashSHA256 header does not
	// match the request body.
	ErrBodyHashMismatch = errors.New("body hash mismatch")
)

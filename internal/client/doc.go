// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package client drives the terminal notes client from start to exit: it
// resumes a stored session when the server still accepts it, otherwise asks
// the user to sign in, then hands over to the notes layout and loops back to
// sign-in after a logout or an expired token.
package client

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

const (
	saveSession = `
		INSERT INTO session (id, user_id, email, last_sign_in_at, token, saved_at)
		VALUES (1, ?, ?, ?, ?, ?)
		ON CONFLICT (id) DO UPDATE SET
			user_id = excluded.user_id,
			email = excluded.email,
			last_sign_in_at = excluded.last_sign_in_at,
			token = excluded.token,
			saved_at = excluded.saved_at;`

	loadSession = `
		SELECT user_id, email, last_sign_in_at, token, saved_at
		FROM session
		WHERE id = 1;`

	clearSession = `DELETE FROM session;`
)

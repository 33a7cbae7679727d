// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-notes-keeper/models"
)

const (
	createUser = `
		INSERT INTO users (id, email, password_hash)
		VALUES ($1, $2, $3)
		RETURNING id, email, password_hash, created_at, last_sign_in_at;`

	createProfile = `
		INSERT INTO profiles (id, display_name)
		VALUES ($1, $2);`

	findUserByEmail = `
		SELECT id, email, password_hash, created_at, last_sign_in_at
		FROM users
		WHERE email = $1;`

	findUserByID = `
		SELECT id, email, password_hash, created_at, last_sign_in_at
		FROM users
		WHERE id = $1;`

	touchLastSignIn = `
		UPDATE users
		SET last_sign_in_at = now()
		WHERE id = $1
		RETURNING last_sign_in_at;`

	getProfile = `
		SELECT id, display_name
		FROM profiles
		WHERE id = $1;`
)

// noteColumns is the select list scanned by [scanNote].
var noteColumns = []string{"id", "user_id", "title", "content", "created_at", "updated_at"}

const noteReturning = "RETURNING id, user_id, title, content, created_at, updated_at"

func psql() sq.StatementBuilderType {
	return sq.StatementBuilder.PlaceholderFormat(sq.Dollar)
}

// buildListNotesQuery selects all notes of req.UserID ordered by created_at.
func buildListNotesQuery(req models.ListNotesRequest) (string, []any, error) {
	direction := "DESC"
	if req.Order == models.SortOldestFirst {
		direction = "ASC"
	}

	return psql().
		Select(noteColumns...).
		From(models.Note{}.TableName()).
		Where(sq.Eq{"user_id": req.UserID}).
		OrderBy("created_at " + direction).
		ToSql()
}

func buildGetNoteQuery(key models.NoteKey) (string, []any, error) {
	return psql().
		Select(noteColumns...).
		From(models.Note{}.TableName()).
		Where("id = ?", key.ID).
		Where("user_id = ?", key.UserID).
		ToSql()
}

// buildCreateNoteQuery inserts a note; created_at is filled in by the database.
func buildCreateNoteQuery(note models.Note) (string, []any, error) {
	return psql().
		Insert(models.Note{}.TableName()).
		Columns("id", "user_id", "title", "content").
		Values(note.ID, note.UserID, note.Title, note.Content).
		Suffix(noteReturning).
		ToSql()
}

// buildUpdateNoteQuery overwrites title and content of an owned note and
// stamps updated_at.
func buildUpdateNoteQuery(update models.NoteUpdate) (string, []any, error) {
	return psql().
		Update(models.Note{}.TableName()).
		Set("title", update.Title).
		Set("content", update.Content).
		Set("updated_at", sq.Expr("now()")).
		Where("id = ?", update.ID).
		Where("user_id = ?", update.UserID).
		Suffix(noteReturning).
		ToSql()
}

func buildDeleteNoteQuery(key models.NoteKey) (string, []any, error) {
	return psql().
		Delete(models.Note{}.TableName()).
		Where("id = ?", key.ID).
		Where("user_id = ?", key.UserID).
		ToSql()
}

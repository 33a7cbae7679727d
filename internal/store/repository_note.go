package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/models"
)

// noteRepository is the PostgreSQL-backed implementation of [NoteRepository].
// Queries are built with squirrel and always filter by user_id, so a note of
// another user behaves exactly like a missing one.
type noteRepository struct {
	db     *DB
	logger *logger.Logger
}

// NewNoteRepository constructs a [NoteRepository] over db.
func NewNoteRepository(db *DB, logger *logger.Logger) NoteRepository {
	logger.Debug().Msg("creating note repository")
	return &noteRepository{db: db, logger: logger}
}

// ListNotes returns every note of req.UserID ordered by created_at
// (descending unless req.Order says otherwise). An owner without notes gets
// an empty, non-nil slice.
func (r *noteRepository) ListNotes(ctx context.Context, req models.ListNotesRequest) ([]models.Note, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildListNotesQuery(req)
	if err != nil {
		log.Err(err).Str("func", "*noteRepository.ListNotes").Str("user_id", req.UserID).Msg("failed to create query")
		return nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*noteRepository.ListNotes").
			Str("user_id", req.UserID).
			Bool("retryable", r.db.retryable(err)).
			Msg("failed to execute query for listing notes")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	notes := make([]models.Note, 0, 50)
	for rows.Next() {
		note, scanErr := scanNote(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*noteRepository.ListNotes").Str("user_id", req.UserID).Msg("failed to scan note row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}
		notes = append(notes, note)
	}

	if rowsErr := rows.Err(); rowsErr != nil {
		log.Err(rowsErr).Str("func", "*noteRepository.ListNotes").Str("user_id", req.UserID).Msg("error occurred during rows iteration")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, rowsErr)
	}

	return notes, nil
}

// GetNote returns one owned note or [ErrNoteNotFound].
func (r *noteRepository) GetNote(ctx context.Context, key models.NoteKey) (models.Note, error) {
	query, args, err := buildGetNoteQuery(key)
	if err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryNote(ctx, "*noteRepository.GetNote", query, args)
}

// CreateNote inserts note (ID, UserID, Title, Content must be set) and
// returns the stored row.
func (r *noteRepository) CreateNote(ctx context.Context, note models.Note) (models.Note, error) {
	query, args, err := buildCreateNoteQuery(note)
	if err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryNote(ctx, "*noteRepository.CreateNote", query, args)
}

// UpdateNote overwrites title and content of an owned note. Last writer wins.
func (r *noteRepository) UpdateNote(ctx context.Context, update models.NoteUpdate) (models.Note, error) {
	query, args, err := buildUpdateNoteQuery(update)
	if err != nil {
		return models.Note{}, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return r.queryNote(ctx, "*noteRepository.UpdateNote", query, args)
}

// DeleteNote removes an owned note. Zero affected rows means
// [ErrNoteNotFound].
func (r *noteRepository) DeleteNote(ctx context.Context, key models.NoteKey) error {
	log := logger.FromContext(ctx)

	query, args, err := buildDeleteNoteQuery(key)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "*noteRepository.DeleteNote").
			Str("note_id", key.ID).
			Bool("retryable", r.db.retryable(err)).
			Msg("failed to delete note")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}
	if affected == 0 {
		return ErrNoteNotFound
	}

	return nil
}

// queryNote runs a statement returning a single note row.
func (r *noteRepository) queryNote(ctx context.Context, funcName, query string, args []any) (models.Note, error) {
	log := logger.FromContext(ctx)

	note, err := scanNote(r.db.QueryRowContext(ctx, query, args...))
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.Note{}, ErrNoteNotFound
	case err != nil:
		log.Err(err).Str("func", funcName).Bool("retryable", r.db.retryable(err)).Msg("note query failed")
		return models.Note{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return note, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanNote(row rowScanner) (models.Note, error) {
	var note models.Note
	err := row.Scan(&note.ID, &note.UserID, &note.Title, &note.Content, &note.CreatedAt, &note.UpdatedAt)
	return note, err
}

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation and lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser inserts the user and its profile row in one transaction and
// returns the stored user with database-assigned fields (CreatedAt).
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error beginning transaction")
		return models.User{}, fmt.Errorf("%w: %w", ErrBeginningTransaction, err)
	}
	defer func() { _ = tx.Rollback() }()

	// create user in db
	row := tx.QueryRowContext(ctx, createUser, user.ID, user.Email, user.PasswordHash)
	if err = row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error inserting user")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrEmailAlreadyExists
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	created := models.User{DisplayName: user.DisplayName}
	if err = row.Scan(&created.ID, &created.Email, &created.PasswordHash, &created.CreatedAt, &created.LastSignInAt); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	// every user has exactly one profile
	var displayName *string
	if user.DisplayName != "" {
		displayName = &user.DisplayName
	}
	if _, err = tx.ExecContext(ctx, createProfile, created.ID, displayName); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Str("user_id", created.ID).Msg("error inserting profile")
		return models.User{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	if err = tx.Commit(); err != nil {
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error committing transaction")
		return models.User{}, fmt.Errorf("%w: %w", ErrCommitingTransaction, err)
	}

	return created, nil
}

// FindUserByEmail returns the account registered under email, or
// [ErrUserNotFound].
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findUser(ctx, "*userRepository.FindUserByEmail", findUserByEmail, email)
}

// FindUserByID returns the account with the given id, or [ErrUserNotFound].
func (r *userRepository) FindUserByID(ctx context.Context, id string) (models.User, error) {
	return r.findUser(ctx, "*userRepository.FindUserByID", findUserByID, id)
}

func (r *userRepository) findUser(ctx context.Context, funcName, query string, arg string) (models.User, error) {
	log := logger.FromContext(ctx)

	var found models.User
	err := r.db.QueryRowContext(ctx, query, arg).
		Scan(&found.ID, &found.Email, &found.PasswordHash, &found.CreatedAt, &found.LastSignInAt)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return models.User{}, ErrUserNotFound
	case err != nil:
		log.Err(err).Str("func", funcName).Bool("retryable", r.db.retryable(err)).Msg("error finding user")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	return found, nil
}

func (r *userRepository) TouchLastSignIn(ctx context.Context, id string) (time.Time, error) {
	log := logger.FromContext(ctx)

	var at time.Time
	err := r.db.QueryRowContext(ctx, touchLastSignIn, id).Scan(&at)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return time.Time{}, ErrUserNotFound
	case err != nil:
		log.Err(err).Str("func", "*userRepository.TouchLastSignIn").Str("user_id", id).Msg("error updating last sign in")
		return time.Time{}, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return at, nil
}

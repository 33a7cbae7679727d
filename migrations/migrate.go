// Package migrations embeds the goose SQL migrations of the notes service
// (PostgreSQL) and of the terminal client's session database (SQLite).
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/pressly/goose/v3"
)

//go:embed *.sql client/*.sql
var embedMigrations embed.FS

var errNilDB = errors.New("db is nil")

// Migrate applies the service migrations to a PostgreSQL database.
func Migrate(db *sql.DB) error {
	return up(db, "pgx", ".")
}

// MigrateClient applies the client migrations to a SQLite database.
func MigrateClient(db *sql.DB) error {
	return up(db, "sqlite3", "client")
}

func up(db *sql.DB, dialect, dir string) error {
	if db == nil {
		return fmt.Errorf("migration error: %w", errNilDB)
	}

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}

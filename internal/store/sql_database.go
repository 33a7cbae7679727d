package store

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/MKhiriev/go-notes-keeper/internal/logger"
)

// DB is a database handle together with the migration set that belongs to
// its backend.
type DB struct {
	*sql.DB
	errorClassificator ErrorClassificator
	migrate            func(*sql.DB) error
	logger             *logger.Logger
}

// Migrate applies the pending migrations of the backend the handle was
// opened for.
func (db *DB) Migrate() error {
	return db.migrate(db.DB)
}

// retryable reports whether err is a transient backend failure. Handles
// without a classifier treat every error as permanent.
func (db *DB) retryable(err error) bool {
	if db.errorClassificator == nil {
		return false
	}
	return db.errorClassificator.Classify(err) == Retryable
}

// openAndPing opens dsn with the named database/sql driver and checks the
// connection is alive. The handle is closed again when the ping fails.
func openAndPing(ctx context.Context, driver, dsn string, log *logger.Logger) (*sql.DB, error) {
	conn, err := sql.Open(driver, dsn)
	if err != nil {
		log.Err(err).Str("driver", driver).Msg("cannot open database")
		return nil, fmt.Errorf("open %s database: %w", driver, err)
	}

	if err = conn.PingContext(ctx); err != nil {
		log.Err(err).Str("driver", driver).Msg("database did not answer ping")
		_ = conn.Close()
		return nil, fmt.Errorf("ping %s database: %w", driver, err)
	}

	log.Info().Str("driver", driver).Msg("database connected")
	return conn, nil
}

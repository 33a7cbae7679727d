package store

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"

	"github.com/MKhiriev/go-notes-keeper/internal/config"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/MKhiriev/go-notes-keeper/migrations"
)

// NewConnectSQLite opens the client's session file, creating it and its
// directory on first start.
func NewConnectSQLite(ctx context.Context, cfg config.ClientDB, log *logger.Logger) (*DB, error) {
	if err := ensureSessionFile(cfg.DSN); err != nil {
		log.Err(err).Str("dsn", cfg.DSN).Msg("cannot prepare session file")
		return nil, err
	}

	conn, err := openAndPing(ctx, "sqlite3", cfg.DSN, log)
	if err != nil {
		return nil, err
	}
	// the TUI is the only writer
	conn.SetMaxOpenConns(1)

	return &DB{
		DB:      conn,
		logger:  log,
		migrate: migrations.MigrateClient,
	}, nil
}

func ensureSessionFile(path string) error {
	if _, err := os.Stat(path); err == nil {
		return nil
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create session dir: %w", err)
		}
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("create session file: %w", err)
	}
	return f.Close()
}

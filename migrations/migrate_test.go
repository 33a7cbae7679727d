// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"database/sql"
	"io/fs"
	"path"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestMigrate_DBError(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	// no expectations: goose's first statement fails
	err = Migrate(db)
	if err == nil {
		t.Fatal("expected error from Migrate, got nil")
	}

	if !strings.Contains(err.Error(), "migration error") {
		t.Errorf("expected wrapped migration error, got: %v", err)
	}
}

func TestMigrateClient_DBError(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	if err = MigrateClient(db); err == nil {
		t.Fatal("expected error from MigrateClient, got nil")
	}
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	for name, migrate := range map[string]func(*sql.DB) error{
		"server": Migrate,
		"client": MigrateClient,
	} {
		t.Run(name, func(t *testing.T) {
			err := migrate(db)
			if err == nil {
				t.Fatal("expected error when db is nil, got nil")
			}
			if !strings.Contains(err.Error(), "db is nil") {
				t.Errorf("expected 'db is nil' error, got: %v", err)
			}
		})
	}
}

func TestEmbeddedMigrations(t *testing.T) {
	tests := []struct {
		dir      string
		contains []string
	}{
		{dir: ".", contains: []string{"CREATE TABLE IF NOT EXISTS users", "CREATE TABLE IF NOT EXISTS profiles", "CREATE TABLE IF NOT EXISTS notes"}},
		{dir: "client", contains: []string{"CREATE TABLE IF NOT EXISTS session"}},
	}

	for _, tt := range tests {
		t.Run(tt.dir, func(t *testing.T) {
			files, err := fs.Glob(embedMigrations, path.Join(tt.dir, "*.sql"))
			if err != nil {
				t.Fatalf("glob: %v", err)
			}
			if len(files) == 0 {
				t.Fatalf("no migrations embedded in %q", tt.dir)
			}

			var all strings.Builder
			for _, f := range files {
				data, err := embedMigrations.ReadFile(f)
				if err != nil {
					t.Fatalf("read %s: %v", f, err)
				}
				if !strings.Contains(string(data), "-- +goose Up") {
					t.Errorf("%s has no goose Up annotation", f)
				}
				all.Write(data)
			}

			for _, want := range tt.contains {
				if !strings.Contains(all.String(), want) {
					t.Errorf("expected migrations in %q to contain %q", tt.dir, want)
				}
			}
		})
	}
}

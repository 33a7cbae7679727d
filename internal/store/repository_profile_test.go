package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-notes-keeper/internal/logger"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileRepository_GetProfile(t *testing.T) {
	tests := []struct {
		name     string
		rows     *sqlmock.Rows
		queryErr error
		wantName *string
		wantErr  error
	}{
		{
			name:     "with display name",
			rows:     sqlmock.NewRows([]string{"id", "display_name"}).AddRow(testUserID, "Ada"),
			wantName: ptr("Ada"),
		},
		{
			name: "null display name",
			rows: sqlmock.NewRows([]string{"id", "display_name"}).AddRow(testUserID, nil),
		},
		{
			name:     "missing profile",
			queryErr: sql.ErrNoRows,
			wantErr:  ErrProfileNotFound,
		},
		{
			name:     "db error",
			queryErr: errors.New("boom"),
			wantErr:  ErrExecutingQuery,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db, mock := newTestDB(t)
			repo := NewProfileRepository(db, logger.Nop())

			exp := mock.ExpectQuery("SELECT id, display_name FROM profiles WHERE id = \\$1").WithArgs(testUserID)
			if tt.queryErr != nil {
				exp.WillReturnError(tt.queryErr)
			} else {
				exp.WillReturnRows(tt.rows)
			}

			profile, err := repo.GetProfile(context.Background(), testUserID)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, testUserID, profile.ID)
			assert.Equal(t, tt.wantName, profile.DisplayName)
		})
	}
}

func ptr[T any](v T) *T {
	return &v
}

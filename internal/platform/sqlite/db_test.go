package sqlite_test

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/workshop-app/workshop-api/internal/platform/sqlite"
	"github.com/workshop-app/workshop-api/internal/store"
	"gorm.io/gorm"
)

func TestDSNFromURL(t *testing.T) {
	t.Parallel()

	tests := []struct {
		url  string
		want string
	}{
		{"sqlite:///./workshop.db", "./workshop.db?_foreign_keys=on"},
		{"sqlite:////var/lib/workshop.db", "/var/lib/workshop.db?_foreign_keys=on"},
		{"sqlite:///app.db?cache=shared", "app.db?cache=shared&_foreign_keys=on"},
		{"sqlite://", sqlite.MemoryDSN},
		{"sqlite:///:memory:", sqlite.MemoryDSN},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.url, func(t *testing.T) {
			t.Parallel()

			got, err := sqlite.DSNFromURL(tt.url)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	_, err := sqlite.DSNFromURL("postgres://localhost/db")
	assert.Error(t, err)
	assert.False(t, sqlite.IsURL("postgres://localhost/db"))
}

func TestMigrationsAreIdempotent(t *testing.T) {
	t.Parallel()

	db := newTestDB(t)
	sqlDB, err := db.DB()
	require.NoError(t, err)

	provider, err := sqlite.NewMigrationProvider(sqlDB)
	require.NoError(t, err)

	results, err := provider.Up(context.Background())
	require.NoError(t, err)
	assert.Empty(t, results, "OpenMemory should already have applied every migration")

	version, err := provider.GetDBVersion(context.Background())
	require.NoError(t, err)
	assert.Equal(t, int64(20250101000003), version)
}

func TestMapError(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		err  error
		want error
	}{
		{"record not found", gorm.ErrRecordNotFound, store.ErrNotFound},
		{"duplicated key", gorm.ErrDuplicatedKey, store.ErrDuplicate},
		{"foreign key", gorm.ErrForeignKeyViolated, store.ErrInvalidEntity},
		{"raw unique", errors.New("UNIQUE constraint failed: users.email"), store.ErrDuplicate},
		{"raw check", fmt.Errorf("exec: %w", errors.New("CHECK constraint failed: minutes_spent")), store.ErrInvalidEntity},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.ErrorIs(t, sqlite.MapError(tt.err), tt.want)
		})
	}

	assert.NoError(t, sqlite.MapError(nil))

	other := errors.New("disk I/O error")
	assert.Equal(t, other, sqlite.MapError(other))
}

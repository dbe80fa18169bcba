package testdb

import (
	"context"
	"database/sql"
	"log/slog"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/workshop-app/workshop-api/internal/platform/postgres"
)

// TestTimeout bounds individual setup operations.
const TestTimeout = 5 * time.Second

// GetTestDatabaseURL returns the PostgreSQL URL for integration tests, or ""
// when none is configured. A sqlite:// DATABASE_URL is ignored.
func GetTestDatabaseURL() string {
	if url := os.Getenv("WORKSHOP_TEST_DB_URL"); url != "" {
		return url
	}
	url := os.Getenv("DATABASE_URL")
	if strings.HasPrefix(url, "postgres://") || strings.HasPrefix(url, "postgresql://") {
		return url
	}
	return ""
}

// GetTestDBWithT opens the integration database with the schema migrated.
// It skips the test when no database is configured.
func GetTestDBWithT(t *testing.T) *sql.DB {
	t.Helper()

	dbURL := GetTestDatabaseURL()
	if dbURL == "" {
		t.Skip("WORKSHOP_TEST_DB_URL or DATABASE_URL not set - skipping integration test")
	}

	ctx, cancel := context.WithTimeout(context.Background(), TestTimeout)
	defer cancel()

	db, err := postgres.Open(ctx, dbURL, postgres.PoolConfig{MaxOpenConns: 10, MaxIdleConns: 5})
	require.NoError(t, err, "Failed to open database connection")
	t.Cleanup(func() { _ = db.Close() })

	require.NoError(t, postgres.Migrate(ctx, db, slog.Default()), "Failed to run migrations")

	return db
}

// UniqueEmail returns an address no other test run will use, so tests can
// share one database without truncating it.
func UniqueEmail(prefix string) string {
	return prefix + "+" + uuid.NewString() + "@example.com"
}

// CleanupUsers deletes the given users when the test finishes. Tasks and
// session logs go with them through ON DELETE CASCADE.
func CleanupUsers(t *testing.T, db *sql.DB, ids ...uuid.UUID) {
	t.Helper()

	t.Cleanup(func() {
		for _, id := range ids {
			if _, err := db.Exec(`DELETE FROM users WHERE id = $1`, id); err != nil {
				t.Logf("Warning: failed to delete test user %s: %v", id, err)
			}
		}
	})
}

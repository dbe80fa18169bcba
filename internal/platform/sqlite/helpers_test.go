package sqlite_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/workshop-app/workshop-api/internal/domain"
	"github.com/workshop-app/workshop-api/internal/platform/sqlite"
	"gorm.io/gorm"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := sqlite.OpenMemory(context.Background())
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	t.Cleanup(func() { _ = sqlDB.Close() })

	return db
}

func createTestUser(t *testing.T, users *sqlite.UserStore, email string) *domain.User {
	t.Helper()

	user, err := domain.NewUser(email, "$2a$04$notarealhashbutlongenough")
	require.NoError(t, err)
	require.NoError(t, users.Create(context.Background(), user))
	return user
}

func strPtr(s string) *string { return &s }

package sqlite

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"strings"
	"time"

	"github.com/pressly/goose/v3"
	gormsqlite "gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// URLScheme prefixes database URLs served by this package.
const URLScheme = "sqlite://"

// MemoryDSN opens a private in-memory database with foreign keys enforced.
const MemoryDSN = ":memory:?_foreign_keys=on"

//go:embed migrations/*.sql
var embedded embed.FS

// Migrations holds the goose migrations for the SQLite schema.
var Migrations fs.FS = mustSub(embedded, "migrations")

func mustSub(fsys fs.FS, dir string) fs.FS {
	sub, err := fs.Sub(fsys, dir)
	if err != nil {
		panic(fmt.Sprintf("sqlite: embedded migrations: %v", err))
	}
	return sub
}

// IsURL reports whether databaseURL should be opened by this package.
func IsURL(databaseURL string) bool {
	return strings.HasPrefix(databaseURL, URLScheme)
}

// DSNFromURL converts a sqlite:// URL into a go-sqlite3 DSN with foreign
// keys enabled. sqlite:///./app.db names a relative file, sqlite:////tmp/app.db
// an absolute one, and sqlite:// or sqlite:///:memory: an in-memory database.
func DSNFromURL(databaseURL string) (string, error) {
	if !IsURL(databaseURL) {
		return "", fmt.Errorf("not a sqlite URL: %q", databaseURL)
	}

	path := strings.TrimPrefix(databaseURL, URLScheme)
	path = strings.TrimPrefix(path, "/")
	if path == "" || path == ":memory:" {
		return MemoryDSN, nil
	}

	sep := "?"
	if strings.Contains(path, "?") {
		sep = "&"
	}
	return path + sep + "_foreign_keys=on", nil
}

// Open connects to the database named by dsn. The pool is limited to one
// connection: SQLite serialises writers anyway, and an in-memory database
// only exists on the connection that created it.
func Open(dsn string) (*gorm.DB, error) {
	db, err := gorm.Open(gormsqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         gormlogger.Default.LogMode(gormlogger.Silent),
		NowFunc:        func() time.Time { return time.Now().UTC() },
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access sqlite connection pool: %w", err)
	}
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)
	sqlDB.SetConnMaxLifetime(0)

	return db, nil
}

// NewMigrationProvider returns a goose provider for the SQLite schema.
func NewMigrationProvider(db *sql.DB) (*goose.Provider, error) {
	return goose.NewProvider(goose.DialectSQLite3, db, Migrations)
}

// Migrate applies all pending migrations.
func Migrate(ctx context.Context, db *sql.DB, logger *slog.Logger) error {
	provider, err := NewMigrationProvider(db)
	if err != nil {
		return fmt.Errorf("failed to create migration provider: %w", err)
	}

	results, err := provider.Up(ctx)
	if err != nil {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}

	for _, r := range results {
		logger.Debug("applied migration",
			slog.String("dialect", "sqlite3"),
			slog.Int64("version", r.Source.Version),
			slog.Duration("duration", r.Duration))
	}
	return nil
}

// OpenMemory opens a migrated private in-memory database.
func OpenMemory(ctx context.Context) (*gorm.DB, error) {
	db, err := Open(MemoryDSN)
	if err != nil {
		return nil, err
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}
	if err := Migrate(ctx, sqlDB, slog.Default()); err != nil {
		_ = sqlDB.Close()
		return nil, err
	}
	return db, nil
}

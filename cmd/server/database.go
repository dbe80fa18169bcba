package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"time"

	"github.com/pressly/goose/v3"
	"github.com/workshop-app/workshop-api/internal/config"
	"github.com/workshop-app/workshop-api/internal/platform/postgres"
	"github.com/workshop-app/workshop-api/internal/platform/sqlite"
	"github.com/workshop-app/workshop-api/internal/redact"
	"gorm.io/gorm"
)

const (
	dialectSQLite   = "sqlite3"
	dialectPostgres = "postgres"
)

// database is the opened persistence backend. sqlDB is always set; gorm is
// only set for SQLite.
type database struct {
	dialect string
	gorm    *gorm.DB
	sqlDB   *sql.DB
}

// openAppDatabase opens the store named by cfg.Database.URL: sqlite:// URLs
// use the gorm SQLite driver, anything else is a Postgres DSN.
func openAppDatabase(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*database, error) {
	if sqlite.IsURL(cfg.Database.URL) {
		dsn, err := sqlite.DSNFromURL(cfg.Database.URL)
		if err != nil {
			return nil, err
		}
		return openSQLite(dsn, logger)
	}

	db, err := postgres.Open(ctx, cfg.Database.URL, postgres.PoolConfig{
		MaxOpenConns:    cfg.Database.MaxOpenConns,
		MaxIdleConns:    max(cfg.Database.MaxOpenConns/2, 1),
		ConnMaxLifetime: 5 * time.Minute,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", redact.String(cfg.Database.URL), err)
	}

	logger.Info("Database connection established", "dialect", dialectPostgres)
	return &database{dialect: dialectPostgres, sqlDB: db}, nil
}

func openSQLite(dsn string, logger *slog.Logger) (*database, error) {
	gdb, err := sqlite.Open(dsn)
	if err != nil {
		return nil, err
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("failed to access sqlite connection pool: %w", err)
	}

	logger.Info("Database connection established", "dialect", dialectSQLite)
	return &database{dialect: dialectSQLite, gorm: gdb, sqlDB: sqlDB}, nil
}

// migrationProvider returns the goose provider for this dialect's schema.
func (d *database) migrationProvider() (*goose.Provider, error) {
	if d.dialect == dialectSQLite {
		return sqlite.NewMigrationProvider(d.sqlDB)
	}
	return postgres.NewMigrationProvider(d.sqlDB)
}

// migrate applies all pending migrations.
func (d *database) migrate(ctx context.Context, logger *slog.Logger) error {
	if d.dialect == dialectSQLite {
		return sqlite.Migrate(ctx, d.sqlDB, logger)
	}
	return postgres.Migrate(ctx, d.sqlDB, logger)
}

// Close releases the connection pool.
func (d *database) Close() error {
	return d.sqlDB.Close()
}

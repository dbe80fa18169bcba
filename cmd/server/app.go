package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	apiMiddleware "github.com/workshop-app/workshop-api/internal/api/middleware"
	"github.com/workshop-app/workshop-api/internal/config"
	"github.com/workshop-app/workshop-api/internal/platform/postgres"
	"github.com/workshop-app/workshop-api/internal/platform/sqlite"
	"github.com/workshop-app/workshop-api/internal/service"
	"github.com/workshop-app/workshop-api/internal/service/auth"
	"github.com/workshop-app/workshop-api/internal/store"
)

// application holds the shared dependencies and owns their shutdown.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *database

	userStore       store.UserStore
	taskStore       store.TaskStore
	sessionLogStore store.SessionLogStore

	passwordHasher auth.PasswordHasher
	jwtService     auth.JWTService

	authService       service.AuthService
	taskService       service.TaskService
	sessionLogService service.SessionLogService

	registry     *prometheus.Registry
	httpMetrics  *apiMiddleware.HTTPMetrics
	loginLimiter *apiMiddleware.RateLimiter
}

// newApplication wires stores, services and HTTP infrastructure on top of an
// open database. Pending migrations are applied first when
// database.auto_migrate is set.
func newApplication(ctx context.Context, cfg *config.Config, logger *slog.Logger, db *database) (*application, error) {
	app := &application{
		config: cfg,
		logger: logger,
		db:     db,
	}

	if cfg.Database.AutoMigrate {
		if err := db.migrate(ctx, logger); err != nil {
			return nil, fmt.Errorf("failed to apply migrations: %w", err)
		}
		logger.Info("Database schema is up to date", "dialect", db.dialect)
	}

	switch db.dialect {
	case dialectSQLite:
		app.userStore = sqlite.NewUserStore(db.gorm, logger)
		app.taskStore = sqlite.NewTaskStore(db.gorm, logger)
		app.sessionLogStore = sqlite.NewSessionLogStore(db.gorm, logger)
	case dialectPostgres:
		app.userStore = postgres.NewPostgresUserStore(db.sqlDB, logger)
		app.taskStore = postgres.NewPostgresTaskStore(db.sqlDB, logger)
		app.sessionLogStore = postgres.NewPostgresSessionLogStore(db.sqlDB, logger)
	default:
		return nil, fmt.Errorf("unsupported database dialect %q", db.dialect)
	}

	var err error
	app.jwtService, err = auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize JWT service: %w", err)
	}
	logger.Info("JWT authentication service initialized",
		"token_lifetime_minutes", cfg.Auth.TokenLifetimeMinutes)

	app.passwordHasher = auth.NewBcryptHasher(cfg.Auth.BcryptCost)

	app.authService = service.NewAuthService(app.userStore, app.passwordHasher, app.jwtService, logger)
	app.taskService = service.NewTaskService(app.taskStore, logger)
	app.sessionLogService = service.NewSessionLogService(app.sessionLogStore, logger)

	app.registry = prometheus.NewRegistry()
	app.registry.MustRegister(collectors.NewGoCollector())
	app.registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	app.registry.MustRegister(collectors.NewDBStatsCollector(db.sqlDB, "workshop"))
	app.httpMetrics = apiMiddleware.NewHTTPMetrics(app.registry)

	app.loginLimiter = apiMiddleware.NewRateLimiter(apiMiddleware.RateLimiterConfig{
		RatePerSecond: cfg.Server.LoginRatePerSecond,
		Burst:         cfg.Server.LoginBurst,
	})

	logger.Info("Application initialized successfully")
	return app, nil
}

// Run serves HTTP until ctx is cancelled or a shutdown signal arrives.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	return nil
}

// cleanup releases background workers and the database.
func (app *application) cleanup() {
	if app.loginLimiter != nil {
		app.loginLimiter.Stop()
	}

	if app.db != nil {
		if err := app.db.Close(); err != nil {
			app.logger.Error("Error closing database connection", "error", err)
		}
	}

	app.logger.Info("Application shutdown completed")
}

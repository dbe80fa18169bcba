package main

import (
	"fmt"
	"log/slog"

	"github.com/workshop-app/workshop-api/internal/config"
)

// loadAppConfig loads the application configuration from defaults, an
// optional config file and the environment.
func loadAppConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel)

	if cfg.Auth.SecretKey == config.DefaultSecretKey {
		slog.Warn("Using the development secret key; set WORKSHOP_AUTH_SECRET_KEY in production")
	}

	return cfg, nil
}

// Package main implements the entry point for the WorkShop API server,
// which serves users' tasks and Pomodoro session logs.
package main

import (
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"

	"github.com/joho/godotenv"
	"github.com/workshop-app/workshop-api/internal/redact"
)

func main() {
	// A .env file is optional; real environment variables always win.
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "warning: could not read .env: %v\n", err)
	}

	if err := newRootCmd().Execute(); err != nil {
		slog.Error("Command failed", "error", redact.Error(err))
		os.Exit(1)
	}
}

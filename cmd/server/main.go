// Package main implements the entry point for the SprintSync API
// server: multi-user task tracking with session auth and AI-assisted
// task suggestions.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"

	"github.com/sprintsync/sprintsync-api/internal/config"
	"github.com/sprintsync/sprintsync-api/internal/platform/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	migrateCmd := flag.String("migrate", "", "run a migration command (up, down, status) and exit")
	flag.Parse()

	cfg, err := initializeApp()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if *migrateCmd != "" {
		if err := runMigrations(cfg, *migrateCmd); err != nil {
			slog.Error("Migration failed", "command", *migrateCmd, "error", err)
			log.Fatalf("Migration failed: %v", err)
		}
		slog.Info("Migration completed", "command", *migrateCmd)
		return
	}

	ctx := context.Background()

	app, err := newApplication(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to build application: %v", err)
	}

	if err := app.startHTTPServer(ctx, app.setupRouter()); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

// initializeApp loads configuration and sets up structured logging.
func initializeApp() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	if _, err := logger.Setup(cfg.Server); err != nil {
		return nil, fmt.Errorf("failed to set up logger: %w", err)
	}

	slog.Info("Server configuration loaded",
		"port", cfg.Server.Port,
		"log_level", cfg.Server.LogLevel,
		"environment", cfg.Server.Environment,
		"version", version)

	if !cfg.AI.GeminiConfigured() {
		slog.Info("Gemini API key not set, description suggestions will use fallback templates")
	}
	if !cfg.AI.PineconeConfigured() {
		slog.Info("Pinecone not configured, assignee suggestions will use fallback")
	}

	return cfg, nil
}

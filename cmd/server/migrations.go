package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/pressly/goose/v3"

	"github.com/sprintsync/sprintsync-api/internal/config"
)

// migrationsDir is the migrations directory relative to the project
// root.
const migrationsDir = "migrations"

// slogGooseLogger adapts the goose logger interface to slog.
type slogGooseLogger struct{}

func (l *slogGooseLogger) Printf(format string, v ...interface{}) {
	slog.Info(fmt.Sprintf(format, v...))
}

// Fatalf does not exit; the error propagates to main which handles
// the exit consistently.
func (l *slogGooseLogger) Fatalf(format string, v ...interface{}) {
	slog.Error(fmt.Sprintf(format, v...))
}

// runMigrations executes the given goose command against the
// configured database.
func runMigrations(cfg *config.Config, command string) error {
	goose.SetLogger(&slogGooseLogger{})
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}

	db, err := setupAppDatabase(cfg, slog.Default())
	if err != nil {
		return err
	}
	defer func() {
		if cerr := db.Close(); cerr != nil {
			slog.Error("failed to close database after migrations", "error", cerr)
		}
	}()

	dir, err := findMigrationsDir()
	if err != nil {
		return err
	}

	switch command {
	case "up":
		return goose.Up(db, dir)
	case "down":
		return goose.Down(db, dir)
	case "status":
		return goose.Status(db, dir)
	default:
		return fmt.Errorf("unknown migration command %q", command)
	}
}

// findMigrationsDir locates the migrations directory by walking up
// from the working directory to the module root.
func findMigrationsDir() (string, error) {
	cwd, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current working directory: %w", err)
	}

	dir := cwd
	for i := 0; i < 10; i++ {
		candidate := filepath.Join(dir, migrationsDir)
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return candidate, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return "", fmt.Errorf("could not locate migrations directory from %s", cwd)
}

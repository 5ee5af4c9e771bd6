package main

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"

	"github.com/sprintsync/sprintsync-api/internal/ai"
	"github.com/sprintsync/sprintsync-api/internal/config"
	"github.com/sprintsync/sprintsync-api/internal/platform/gemini"
	"github.com/sprintsync/sprintsync-api/internal/platform/metrics"
	"github.com/sprintsync/sprintsync-api/internal/platform/pinecone"
	"github.com/sprintsync/sprintsync-api/internal/platform/postgres"
	"github.com/sprintsync/sprintsync-api/internal/service"
	"github.com/sprintsync/sprintsync-api/internal/service/auth"
	"github.com/sprintsync/sprintsync-api/internal/store"
)

// application holds the wired dependencies of the running server.
type application struct {
	config *config.Config
	logger *slog.Logger
	db     *sql.DB

	userStore store.UserStore
	taskStore store.TaskStore

	jwtService       auth.JWTService
	passwordVerifier auth.PasswordVerifier

	userService *service.UserService
	taskService *service.TaskService
	suggester   *ai.Suggester

	tracker *metrics.Tracker
}

// newApplication builds the full dependency graph from configuration.
// AI capabilities degrade to no-ops when unconfigured so the rest of
// the API works without any external AI services.
func newApplication(ctx context.Context, cfg *config.Config) (*application, error) {
	logger := slog.Default()

	db, err := setupAppDatabase(cfg, logger)
	if err != nil {
		return nil, err
	}

	userStore := postgres.NewUserStore(db, logger)
	taskStore := postgres.NewTaskStore(db, logger)

	jwtService, err := auth.NewJWTService(cfg.Auth)
	if err != nil {
		return nil, fmt.Errorf("failed to create JWT service: %w", err)
	}

	hasher := auth.NewBcryptHasher()
	verifier := auth.NewBcryptVerifier()

	userService, err := service.NewUserService(userStore, hasher, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create user service: %w", err)
	}

	taskService, err := service.NewTaskService(taskStore, logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create task service: %w", err)
	}

	suggester, err := setupSuggester(ctx, cfg, logger)
	if err != nil {
		return nil, err
	}

	return &application{
		config:           cfg,
		logger:           logger,
		db:               db,
		userStore:        userStore,
		taskStore:        taskStore,
		jwtService:       jwtService,
		passwordVerifier: verifier,
		userService:      userService,
		taskService:      taskService,
		suggester:        suggester,
		tracker:          metrics.NewTracker(),
	}, nil
}

// setupSuggester wires the AI suggestion pipelines. The retriever
// needs the Gemini embedder, so Pinecone is only usable when Gemini
// is configured too.
func setupSuggester(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*ai.Suggester, error) {
	var generator ai.Generator = ai.NoopGenerator{}
	var retriever ai.Retriever = ai.NoopRetriever{}

	if cfg.AI.GeminiConfigured() {
		g, err := gemini.NewGenerator(ctx, logger, cfg.AI)
		if err != nil {
			return nil, fmt.Errorf("failed to create Gemini generator: %w", err)
		}
		generator = g

		if cfg.AI.PineconeConfigured() {
			embedder, err := gemini.NewEmbedder(g, cfg.AI.EmbeddingModel)
			if err != nil {
				return nil, fmt.Errorf("failed to create embedder: %w", err)
			}
			r, err := pinecone.NewRetriever(logger, cfg.AI, embedder)
			if err != nil {
				return nil, fmt.Errorf("failed to create Pinecone retriever: %w", err)
			}
			retriever = r
		}
	}

	return ai.NewSuggester(generator, retriever, cfg.AI.RetrievalTopK, logger), nil
}

// cleanup releases application resources during shutdown.
func (app *application) cleanup() {
	if err := app.db.Close(); err != nil {
		app.logger.Error("failed to close database connection", "error", err)
	}
}

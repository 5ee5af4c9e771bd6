package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/sprintsync/sprintsync-api/internal/api"
	apiMiddleware "github.com/sprintsync/sprintsync-api/internal/api/middleware"
)

// setupRouter creates and configures the application router with all
// routes and middleware.
func (app *application) setupRouter() http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	r.Use(apiMiddleware.TraceMiddleware)
	r.Use(apiMiddleware.MetricsMiddleware(app.tracker))

	secureCookies := app.config.Server.Environment == "production"

	authHandler := api.NewAuthHandler(
		app.userStore,
		app.userService,
		app.jwtService,
		app.passwordVerifier,
		secureCookies,
		app.logger,
	)
	taskHandler := api.NewTaskHandler(app.taskService, app.logger)
	userHandler := api.NewUserHandler(app.userService, app.logger)
	aiHandler := api.NewAIHandler(app.suggester, app.logger)
	healthHandler := api.NewHealthHandler(app.db, app.tracker, app.config.Server.Environment, version, app.logger)

	authMiddleware := apiMiddleware.NewAuthMiddleware(app.jwtService, app.userStore)

	// Public endpoints
	r.Post("/auth/register", authHandler.Register)
	r.Post("/auth/login", authHandler.Login)
	r.Post("/auth/logout", authHandler.Logout)
	r.Get("/health", healthHandler.Check)

	// Session-protected endpoints
	r.Group(func(r chi.Router) {
		r.Use(authMiddleware.Authenticate)

		r.Get("/auth/me", authHandler.Me)

		r.Get("/tasks", taskHandler.List)
		r.Post("/tasks", taskHandler.Create)
		r.Get("/tasks/{id}", taskHandler.Get)
		r.Put("/tasks/{id}", taskHandler.Update)
		r.Delete("/tasks/{id}", taskHandler.Delete)
		r.Patch("/tasks/status/{id}", taskHandler.UpdateStatus)
		r.Post("/tasks/status/{id}", taskHandler.AdvanceStatus)

		r.Get("/users", userHandler.List)
		r.Post("/users", userHandler.Create)
		r.Get("/users/{id}", userHandler.Get)
		r.Put("/users/{id}", userHandler.Update)
		r.Delete("/users/{id}", userHandler.Delete)

		r.Post("/ai/suggest", aiHandler.Suggest)
		r.Post("/ai/assign-user", aiHandler.AssignUser)
	})

	return r
}

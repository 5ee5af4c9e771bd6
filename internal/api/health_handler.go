package api

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"time"

	"github.com/sprintsync/sprintsync-api/internal/api/shared"
	"github.com/sprintsync/sprintsync-api/internal/platform/metrics"
)

const healthCheckTimeout = 2 * time.Second

// HealthHandler reports service and database health plus the request
// metrics snapshot.
type HealthHandler struct {
	db          *sql.DB
	tracker     *metrics.Tracker
	environment string
	version     string
	startedAt   time.Time
	logger      *slog.Logger
}

// HealthResponse is the GET /health payload.
type HealthResponse struct {
	Status        string           `json:"status"`
	DBLatencyMs   float64          `json:"db_latency_ms"`
	UptimeSeconds float64          `json:"uptime_seconds"`
	Environment   string           `json:"environment"`
	Version       string           `json:"version,omitempty"`
	Metrics       metrics.Snapshot `json:"metrics"`
}

// NewHealthHandler creates a new HealthHandler with the given
// dependencies.
func NewHealthHandler(
	db *sql.DB,
	tracker *metrics.Tracker,
	environment, version string,
	logger *slog.Logger,
) *HealthHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &HealthHandler{
		db:          db,
		tracker:     tracker,
		environment: environment,
		version:     version,
		startedAt:   time.Now(),
		logger:      logger.With(slog.String("component", "health_handler")),
	}
}

// Check handles GET /health. A failing database probe yields 503.
func (h *HealthHandler) Check(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), healthCheckTimeout)
	defer cancel()

	start := time.Now()
	var one int
	err := h.db.QueryRowContext(ctx, "SELECT 1").Scan(&one)
	dbLatency := time.Since(start)

	resp := HealthResponse{
		Status:        "ok",
		DBLatencyMs:   float64(dbLatency) / float64(time.Millisecond),
		UptimeSeconds: time.Since(h.startedAt).Seconds(),
		Environment:   h.environment,
		Version:       h.version,
		Metrics:       h.tracker.Snapshot(),
	}

	if err != nil {
		h.logger.Error("database health check failed", slog.String("error", err.Error()))
		resp.Status = "degraded"
		shared.RespondWithJSON(w, r, http.StatusServiceUnavailable, resp)
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, resp)
}

package api

import (
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/sprintsync/sprintsync-api/internal/api/shared"
	"github.com/sprintsync/sprintsync-api/internal/domain"
	"github.com/sprintsync/sprintsync-api/internal/service"
	"github.com/sprintsync/sprintsync-api/internal/store"
)

// TaskHandler handles task-related API requests.
type TaskHandler struct {
	taskService *service.TaskService
	logger      *slog.Logger
}

// NewTaskHandler creates a new TaskHandler with the given dependencies.
func NewTaskHandler(taskService *service.TaskService, logger *slog.Logger) *TaskHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &TaskHandler{
		taskService: taskService,
		logger:      logger.With(slog.String("component", "task_handler")),
	}
}

// List handles GET /tasks. Admins may filter by userId; everyone else
// sees only their own tasks. An unknown status value is ignored.
func (h *TaskHandler) List(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	var filter store.TaskFilter
	if raw := r.URL.Query().Get("status"); raw != "" {
		status := domain.TaskStatus(raw)
		filter.Status = &status
	}
	if raw := r.URL.Query().Get("userId"); raw != "" {
		userID, err := uuid.Parse(raw)
		if err != nil {
			shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid userId: has invalid format")
			return
		}
		filter.UserID = &userID
	}

	tasks, err := h.taskService.List(r.Context(), identity, filter)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list tasks")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, TasksResponse{Tasks: tasks})
}

// Create handles POST /tasks.
func (h *TaskHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	var req CreateTaskRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	input := service.CreateTaskInput{
		Title:       req.Title,
		Description: req.Description,
	}
	if req.TotalMinutes != nil {
		input.TotalMinutes = *req.TotalMinutes
	}
	if req.UserID != "" {
		// Validated as a UUID already.
		input.OwnerID = uuid.MustParse(req.UserID)
	}

	task, err := h.taskService.Create(r.Context(), identity, input)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create task")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusCreated, TaskResponse{Task: task})
}

// Get handles GET /tasks/{id}.
func (h *TaskHandler) Get(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	task, err := h.taskService.Get(r.Context(), identity, id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to load task")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, TaskResponse{Task: task})
}

// Update handles PUT /tasks/{id} with a partial patch.
func (h *TaskHandler) Update(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req UpdateTaskRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	patch := service.TaskPatch{
		Title:        req.Title,
		Description:  req.Description,
		TotalMinutes: req.TotalMinutes,
	}
	if req.Status != nil {
		status := domain.TaskStatus(*req.Status)
		patch.Status = &status
	}
	if req.UserID != nil {
		ownerID := uuid.MustParse(*req.UserID)
		patch.OwnerID = &ownerID
	}

	task, err := h.taskService.Update(r.Context(), identity, id, patch)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update task")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, TaskResponse{Task: task})
}

// UpdateStatus handles PATCH /tasks/status/{id}, setting an explicit
// status.
func (h *TaskHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req UpdateTaskStatusRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	status := domain.TaskStatus(req.Status)
	task, err := h.taskService.Update(r.Context(), identity, id, service.TaskPatch{Status: &status})
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update task status")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, TaskResponse{Task: task})
}

// AdvanceStatus handles POST /tasks/status/{id}, cycling the task
// through TODO -> IN_PROGRESS -> DONE -> TODO.
func (h *TaskHandler) AdvanceStatus(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	task, transition, err := h.taskService.Advance(r.Context(), identity, id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to advance task status")
		return
	}

	h.logger.Debug("task status advanced",
		slog.String("task_id", id.String()),
		slog.String("from", string(transition.From)),
		slog.String("to", string(transition.To)))
	shared.RespondWithJSON(w, r, http.StatusOK, TaskResponse{Task: task})
}

// Delete handles DELETE /tasks/{id}.
func (h *TaskHandler) Delete(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.taskService.Delete(r.Context(), identity, id); err != nil {
		HandleAPIError(w, r, err, "Failed to delete task")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{Message: "Task deleted"})
}

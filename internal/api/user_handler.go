package api

import (
	"log/slog"
	"net/http"

	"github.com/sprintsync/sprintsync-api/internal/api/shared"
	"github.com/sprintsync/sprintsync-api/internal/service"
)

// UserHandler handles the admin-only user management API requests.
// Role checks live in the service layer; the handler only translates
// HTTP to service calls.
type UserHandler struct {
	userService *service.UserService
	logger      *slog.Logger
}

// NewUserHandler creates a new UserHandler with the given dependencies.
func NewUserHandler(userService *service.UserService, logger *slog.Logger) *UserHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &UserHandler{
		userService: userService,
		logger:      logger.With(slog.String("component", "user_handler")),
	}
}

// List handles GET /users. The calling admin is excluded from the
// result; each user carries a task count.
func (h *UserHandler) List(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	users, err := h.userService.List(r.Context(), identity)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to list users")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, UsersResponse{Users: users})
}

// Create handles POST /users.
func (h *UserHandler) Create(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	var req CreateUserRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	user, err := h.userService.Create(r.Context(), identity, req.Email, req.Password, req.IsAdmin)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to create user")
		return
	}

	h.logger.Info("user created",
		slog.String("user_id", user.ID.String()),
		slog.String("created_by", identity.UserID.String()))
	shared.RespondWithJSON(w, r, http.StatusCreated, UserResponse{User: user})
}

// Get handles GET /users/{id}.
func (h *UserHandler) Get(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	user, err := h.userService.Get(r.Context(), identity, id)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to load user")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, UserResponse{User: user})
}

// Update handles PUT /users/{id} with a partial patch.
func (h *UserHandler) Update(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	var req UpdateUserRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	user, err := h.userService.Update(r.Context(), identity, id, service.UserPatch{
		Email:   req.Email,
		IsAdmin: req.IsAdmin,
	})
	if err != nil {
		HandleAPIError(w, r, err, "Failed to update user")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, UserResponse{User: user})
}

// Delete handles DELETE /users/{id}. Admins cannot delete their own
// account.
func (h *UserHandler) Delete(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	id, err := getPathUUID(r, "id")
	if err != nil {
		HandleAPIError(w, r, err, "")
		return
	}

	if err := h.userService.Delete(r.Context(), identity, id); err != nil {
		HandleAPIError(w, r, err, "Failed to delete user")
		return
	}

	h.logger.Info("user deleted",
		slog.String("user_id", id.String()),
		slog.String("deleted_by", identity.UserID.String()))
	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{Message: "User deleted"})
}

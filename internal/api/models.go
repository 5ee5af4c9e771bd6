package api

import (
	"github.com/sprintsync/sprintsync-api/internal/domain"
)

// Common request/response structures

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// CreateTaskRequest defines the payload for task creation. UserID is
// honored only for admin callers.
type CreateTaskRequest struct {
	Title        string `json:"title"        validate:"required,max=200"`
	Description  string `json:"description"`
	TotalMinutes *int   `json:"totalMinutes" validate:"omitempty,gte=0"`
	UserID       string `json:"userId"       validate:"omitempty,uuid"`
}

// UpdateTaskRequest defines the payload for partial task updates. Nil
// fields are left unchanged.
type UpdateTaskRequest struct {
	Title        *string `json:"title"        validate:"omitempty,max=200"`
	Description  *string `json:"description"`
	Status       *string `json:"status"       validate:"omitempty,oneof=TODO IN_PROGRESS DONE"`
	TotalMinutes *int    `json:"totalMinutes" validate:"omitempty,gte=0"`
	UserID       *string `json:"userId"       validate:"omitempty,uuid"`
}

// UpdateTaskStatusRequest defines the payload for the explicit status
// update endpoint.
type UpdateTaskStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=TODO IN_PROGRESS DONE"`
}

// CreateUserRequest defines the payload for admin user creation.
type CreateUserRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
	IsAdmin  bool   `json:"isAdmin"`
}

// UpdateUserRequest defines the payload for admin user updates. Nil
// fields are left unchanged.
type UpdateUserRequest struct {
	Email   *string `json:"email"   validate:"omitempty,email"`
	IsAdmin *bool   `json:"isAdmin"`
}

// SuggestRequest defines the payload for the description suggestion
// endpoint.
type SuggestRequest struct {
	Type  string `json:"type"  validate:"required,oneof=description"`
	Title string `json:"title" validate:"required,max=200"`
}

// AssignUserRequest defines the payload for the assignee suggestion
// endpoint.
type AssignUserRequest struct {
	Description string `json:"description" validate:"required"`
}

// Response envelopes mirror the established wire format.

// UserResponse wraps a single user.
type UserResponse struct {
	User *domain.User `json:"user"`
}

// UsersResponse wraps a user list.
type UsersResponse struct {
	Users []*domain.User `json:"users"`
}

// TaskResponse wraps a single task.
type TaskResponse struct {
	Task *domain.Task `json:"task"`
}

// TasksResponse wraps a task list.
type TasksResponse struct {
	Tasks []*domain.Task `json:"tasks"`
}

// MessageResponse wraps a plain confirmation message.
type MessageResponse struct {
	Message string `json:"message"`
}

// SuggestionResponse is the description suggestion result. Type and
// Title echo the request.
type SuggestionResponse struct {
	Suggestion string `json:"suggestion"`
	Source     string `json:"source"`
	Type       string `json:"type"`
	Title      string `json:"title"`
}

// AssignmentResponse is the assignee suggestion result.
type AssignmentResponse struct {
	Suggestion []string `json:"suggestion"`
	Source     string   `json:"source"`
}

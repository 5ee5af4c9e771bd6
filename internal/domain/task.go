package domain

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// TaskStatus represents the workflow state of a task.
type TaskStatus string

// Possible task status values.
const (
	TaskStatusTodo       TaskStatus = "TODO"
	TaskStatusInProgress TaskStatus = "IN_PROGRESS"
	TaskStatusDone       TaskStatus = "DONE"
)

// MaxTitleLength bounds task titles, matching the API contract.
const MaxTitleLength = 200

// Common validation errors for Task. All wrap ErrValidation so
// callers can classify them with errors.Is.
var (
	ErrEmptyTaskID          = fmt.Errorf("%w: task ID cannot be empty", ErrValidation)
	ErrEmptyTaskUserID      = fmt.Errorf("%w: task user ID cannot be empty", ErrValidation)
	ErrEmptyTaskTitle       = fmt.Errorf("%w: task title cannot be empty", ErrValidation)
	ErrTaskTitleTooLong     = fmt.Errorf("%w: task title cannot exceed 200 characters", ErrValidation)
	ErrNegativeTotalMinutes = fmt.Errorf("%w: total minutes cannot be negative", ErrValidation)
)

// Task represents a unit of work owned by exactly one user.
type Task struct {
	ID           uuid.UUID  `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description,omitempty"`
	Status       TaskStatus `json:"status"`
	TotalMinutes int        `json:"totalMinutes"`
	UserID       uuid.UUID  `json:"userId"`
	Owner        *TaskOwner `json:"user,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
	UpdatedAt    time.Time  `json:"updatedAt"`
}

// TaskOwner is the owner summary attached to task responses.
type TaskOwner struct {
	ID    uuid.UUID `json:"id"`
	Email string    `json:"email"`
}

// NewTask creates a Task owned by userID with the initial TODO status.
// It generates the ID and sets the timestamps.
// Returns an error if validation fails.
func NewTask(title, description string, totalMinutes int, userID uuid.UUID) (*Task, error) {
	now := time.Now().UTC()
	task := &Task{
		ID:           uuid.New(),
		Title:        title,
		Description:  description,
		Status:       TaskStatusTodo,
		TotalMinutes: totalMinutes,
		UserID:       userID,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	return task, nil
}

// Validate checks if the Task has valid data.
// Returns an error if any field fails validation.
func (t *Task) Validate() error {
	if t.ID == uuid.Nil {
		return ErrEmptyTaskID
	}

	if t.UserID == uuid.Nil {
		return ErrEmptyTaskUserID
	}

	if t.Title == "" {
		return ErrEmptyTaskTitle
	}

	if len(t.Title) > MaxTitleLength {
		return ErrTaskTitleTooLong
	}

	if t.TotalMinutes < 0 {
		return ErrNegativeTotalMinutes
	}

	if !IsValidTaskStatus(t.Status) {
		return ErrInvalidTaskStatus
	}

	return nil
}

// Next returns the status that follows s in the cyclic advance:
// TODO -> IN_PROGRESS -> DONE -> TODO.
func (s TaskStatus) Next() TaskStatus {
	switch s {
	case TaskStatusTodo:
		return TaskStatusInProgress
	case TaskStatusInProgress:
		return TaskStatusDone
	case TaskStatusDone:
		return TaskStatusTodo
	default:
		return TaskStatusTodo
	}
}

// IsValidTaskStatus checks if the given status is one of the
// enumerated values.
func IsValidTaskStatus(status TaskStatus) bool {
	switch status {
	case TaskStatusTodo, TaskStatusInProgress, TaskStatusDone:
		return true
	default:
		return false
	}
}

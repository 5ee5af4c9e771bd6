package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/sprintsync/sprintsync-api/internal/domain"
)

// TaskFilter narrows task listing. Nil fields are not applied.
type TaskFilter struct {
	UserID *uuid.UUID
	Status *domain.TaskStatus
}

// TaskStore defines the interface for task data persistence.
type TaskStore interface {
	// Create saves a new task to the store.
	// Returns ErrInvalidEntity if the owner does not exist.
	Create(ctx context.Context, task *domain.Task) error

	// GetByID retrieves a task by its unique ID with the owner summary
	// attached. Returns ErrTaskNotFound if the task does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error)

	// List returns tasks matching the filter, ordered by creation time
	// descending, with owner summaries attached.
	List(ctx context.Context, filter TaskFilter) ([]*domain.Task, error)

	// Update persists the task's mutable fields (title, description,
	// status, total minutes, owner, updated_at).
	// Returns ErrTaskNotFound if the task does not exist.
	Update(ctx context.Context, task *domain.Task) error

	// Delete permanently removes a task by its ID.
	// Returns ErrTaskNotFound if the task does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}

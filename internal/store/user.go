// Package store defines the persistence interfaces for SprintSync
// entities along with the shared error taxonomy.
package store

import (
	"context"

	"github.com/google/uuid"

	"github.com/sprintsync/sprintsync-api/internal/domain"
)

// UserStore defines the interface for user data persistence.
type UserStore interface {
	// Create saves a new user to the store.
	// Returns ErrEmailExists if the email is already taken.
	Create(ctx context.Context, user *domain.User) error

	// GetByID retrieves a user by their unique ID.
	// Returns ErrUserNotFound if the user does not exist.
	GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error)

	// GetByEmail retrieves a user by their email address.
	// Returns ErrUserNotFound if the user does not exist.
	GetByEmail(ctx context.Context, email string) (*domain.User, error)

	// List returns all users except the one identified by excludeID,
	// newest first, with owned task counts populated.
	List(ctx context.Context, excludeID uuid.UUID) ([]*domain.User, error)

	// Update modifies an existing user's email, role flag, and hashed
	// password. Returns ErrUserNotFound if the user does not exist and
	// ErrEmailExists when updating to an email that is already taken.
	Update(ctx context.Context, user *domain.User) error

	// Delete removes a user from the store by their ID. All tasks owned
	// by the user are cascade-deleted by the schema.
	// Returns ErrUserNotFound if the user does not exist.
	Delete(ctx context.Context, id uuid.UUID) error
}

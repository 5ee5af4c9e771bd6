// Package authz holds the single authorization decision point for the
// API. Handlers and services consult it instead of re-deriving role
// checks per endpoint.
package authz

import (
	"github.com/google/uuid"

	"github.com/sprintsync/sprintsync-api/internal/domain"
	"github.com/sprintsync/sprintsync-api/internal/store"
)

// Identity is the resolved caller of a request.
type Identity struct {
	UserID  uuid.UUID
	Email   string
	IsAdmin bool
}

// Valid reports whether the identity belongs to an authenticated user.
func (id Identity) Valid() bool {
	return id.UserID != uuid.Nil
}

// CanAccessTask decides whether the caller may read, update, or delete
// the task owned by ownerID. Admins may access any task; everyone else
// only their own.
// Returns domain.ErrUnauthenticated or domain.ErrForbidden on denial.
func CanAccessTask(caller Identity, ownerID uuid.UUID) error {
	if !caller.Valid() {
		return domain.ErrUnauthenticated
	}

	if caller.IsAdmin || caller.UserID == ownerID {
		return nil
	}

	return domain.ErrForbidden
}

// ResolveTaskOwner determines the owner for a new task. A requested
// owner is honored only for admins; for everyone else the override is
// silently ignored and the task is assigned to the caller.
func ResolveTaskOwner(caller Identity, requested uuid.UUID) (uuid.UUID, error) {
	if !caller.Valid() {
		return uuid.Nil, domain.ErrUnauthenticated
	}

	if caller.IsAdmin && requested != uuid.Nil {
		return requested, nil
	}

	return caller.UserID, nil
}

// ScopeTaskFilter constrains a task listing filter to what the caller
// may see: non-admins are always pinned to their own tasks regardless
// of any requested user filter.
func ScopeTaskFilter(caller Identity, filter store.TaskFilter) (store.TaskFilter, error) {
	if !caller.Valid() {
		return store.TaskFilter{}, domain.ErrUnauthenticated
	}

	if !caller.IsAdmin {
		own := caller.UserID
		filter.UserID = &own
	}

	return filter, nil
}

// RequireAdmin gates admin-only operations (user management, arbitrary
// task assignment).
func RequireAdmin(caller Identity) error {
	if !caller.Valid() {
		return domain.ErrUnauthenticated
	}

	if !caller.IsAdmin {
		return domain.ErrForbidden
	}

	return nil
}

// CanDeleteUser decides whether the caller may delete the given user.
// Admin only, and never their own account.
func CanDeleteUser(caller Identity, targetID uuid.UUID) error {
	if err := RequireAdmin(caller); err != nil {
		return err
	}

	if caller.UserID == targetID {
		return domain.ErrSelfDelete
	}

	return nil
}

package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/sprintsync/sprintsync-api/internal/domain"
	"github.com/sprintsync/sprintsync-api/internal/platform/logger"
	"github.com/sprintsync/sprintsync-api/internal/service/auth"
	"github.com/sprintsync/sprintsync-api/internal/service/authz"
	"github.com/sprintsync/sprintsync-api/internal/store"
)

// UserPatch is a partial user update. Nil fields are left unchanged.
type UserPatch struct {
	Email   *string
	IsAdmin *bool
}

// UserService implements registration and the admin-only user
// management operations.
type UserService struct {
	users  store.UserStore
	hasher auth.PasswordHasher
	logger *slog.Logger
}

// NewUserService creates a UserService with the given dependencies.
func NewUserService(users store.UserStore, hasher auth.PasswordHasher, log *slog.Logger) (*UserService, error) {
	if users == nil {
		return nil, fmt.Errorf("user store cannot be nil")
	}
	if hasher == nil {
		return nil, fmt.Errorf("password hasher cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &UserService{
		users:  users,
		hasher: hasher,
		logger: log.With(slog.String("component", "user_service")),
	}, nil
}

// Register creates a new non-admin user from a self-service signup.
// Returns store.ErrEmailExists when the email is taken.
func (s *UserService) Register(ctx context.Context, email, password string) (*domain.User, error) {
	return s.createUser(ctx, email, password, false)
}

// Create creates a user on behalf of an admin, optionally with the
// admin role.
func (s *UserService) Create(
	ctx context.Context,
	caller authz.Identity,
	email, password string,
	isAdmin bool,
) (*domain.User, error) {
	if err := authz.RequireAdmin(caller); err != nil {
		return nil, err
	}

	return s.createUser(ctx, email, password, isAdmin)
}

// List returns all users except the calling admin, newest first.
func (s *UserService) List(ctx context.Context, caller authz.Identity) ([]*domain.User, error) {
	if err := authz.RequireAdmin(caller); err != nil {
		return nil, err
	}

	return s.users.List(ctx, caller.UserID)
}

// Get returns a single user. Admin only.
func (s *UserService) Get(ctx context.Context, caller authz.Identity, id uuid.UUID) (*domain.User, error) {
	if err := authz.RequireAdmin(caller); err != nil {
		return nil, err
	}

	return s.users.GetByID(ctx, id)
}

// Update applies a partial patch to a user. Admin only. A changed
// email is checked for collision first so the caller gets the
// duplicate error rather than a constraint failure.
func (s *UserService) Update(
	ctx context.Context,
	caller authz.Identity,
	id uuid.UUID,
	patch UserPatch,
) (*domain.User, error) {
	if err := authz.RequireAdmin(caller); err != nil {
		return nil, err
	}

	user, err := s.users.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if patch.Email != nil && *patch.Email != user.Email {
		if _, err := s.users.GetByEmail(ctx, *patch.Email); err == nil {
			return nil, store.ErrEmailExists
		} else if !errors.Is(err, store.ErrUserNotFound) {
			return nil, err
		}
		user.Email = *patch.Email
	}
	if patch.IsAdmin != nil {
		user.IsAdmin = *patch.IsAdmin
	}

	if err := s.users.Update(ctx, user); err != nil {
		return nil, err
	}

	logger.FromContextOrDefault(ctx, s.logger).Info("user updated",
		slog.String("user_id", id.String()),
		slog.String("caller_id", caller.UserID.String()))
	return user, nil
}

// Delete removes a user and, via the schema cascade, every task they
// own. Admins cannot delete their own account.
func (s *UserService) Delete(ctx context.Context, caller authz.Identity, id uuid.UUID) error {
	if err := authz.CanDeleteUser(caller, id); err != nil {
		return err
	}

	if err := s.users.Delete(ctx, id); err != nil {
		return err
	}

	logger.FromContextOrDefault(ctx, s.logger).Info("user deleted",
		slog.String("user_id", id.String()),
		slog.String("caller_id", caller.UserID.String()))
	return nil
}

// createUser validates the password, hashes it, and persists the user.
func (s *UserService) createUser(
	ctx context.Context,
	email, password string,
	isAdmin bool,
) (*domain.User, error) {
	if err := domain.ValidatePassword(password); err != nil {
		return nil, err
	}

	hashed, err := s.hasher.Hash(password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user, err := domain.NewUser(email, hashed, isAdmin)
	if err != nil {
		return nil, err
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	logger.FromContextOrDefault(ctx, s.logger).Info("user created",
		slog.String("user_id", user.ID.String()),
		slog.Bool("is_admin", isAdmin))
	return user, nil
}

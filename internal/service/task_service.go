// Package service implements the application's business operations on
// top of the store interfaces.
package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/sprintsync/sprintsync-api/internal/domain"
	"github.com/sprintsync/sprintsync-api/internal/platform/logger"
	"github.com/sprintsync/sprintsync-api/internal/service/authz"
	"github.com/sprintsync/sprintsync-api/internal/store"
)

// CreateTaskInput carries the fields for task creation. OwnerID is a
// requested owner override, honored only for admin callers.
type CreateTaskInput struct {
	Title        string
	Description  string
	TotalMinutes int
	OwnerID      uuid.UUID
}

// TaskPatch is a partial task update. Nil fields are left unchanged.
type TaskPatch struct {
	Title        *string
	Description  *string
	Status       *domain.TaskStatus
	TotalMinutes *int
	OwnerID      *uuid.UUID
}

// StatusTransition records the before/after pair of an advance call.
type StatusTransition struct {
	From domain.TaskStatus
	To   domain.TaskStatus
}

// TaskService enforces the task lifecycle and ownership rules. Every
// operation checks authorization before touching the store; the
// not-found check runs first so callers cannot probe foreign task IDs
// apart by status code.
type TaskService struct {
	tasks  store.TaskStore
	logger *slog.Logger
}

// NewTaskService creates a TaskService with the given dependencies.
func NewTaskService(tasks store.TaskStore, log *slog.Logger) (*TaskService, error) {
	if tasks == nil {
		return nil, fmt.Errorf("task store cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &TaskService{
		tasks:  tasks,
		logger: log.With(slog.String("component", "task_service")),
	}, nil
}

// Create validates the input and persists a new task with the initial
// TODO status. Non-admin callers always own the task they create.
func (s *TaskService) Create(
	ctx context.Context,
	caller authz.Identity,
	input CreateTaskInput,
) (*domain.Task, error) {
	ownerID, err := authz.ResolveTaskOwner(caller, input.OwnerID)
	if err != nil {
		return nil, err
	}

	task, err := domain.NewTask(input.Title, input.Description, input.TotalMinutes, ownerID)
	if err != nil {
		return nil, err
	}

	if err := s.tasks.Create(ctx, task); err != nil {
		return nil, err
	}

	// Re-read to attach the owner summary.
	created, err := s.tasks.GetByID(ctx, task.ID)
	if err != nil {
		return nil, err
	}

	logger.FromContextOrDefault(ctx, s.logger).Info("task created",
		slog.String("task_id", created.ID.String()),
		slog.String("owner_id", ownerID.String()),
		slog.String("caller_id", caller.UserID.String()))
	return created, nil
}

// Get returns a single task if the caller is permitted to see it.
func (s *TaskService) Get(
	ctx context.Context,
	caller authz.Identity,
	id uuid.UUID,
) (*domain.Task, error) {
	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := authz.CanAccessTask(caller, task.UserID); err != nil {
		return nil, err
	}

	return task, nil
}

// Update applies a partial patch to a task, validating each present
// field, and returns the updated task.
func (s *TaskService) Update(
	ctx context.Context,
	caller authz.Identity,
	id uuid.UUID,
	patch TaskPatch,
) (*domain.Task, error) {
	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := authz.CanAccessTask(caller, task.UserID); err != nil {
		return nil, err
	}

	if patch.Title != nil {
		task.Title = *patch.Title
	}
	if patch.Description != nil {
		task.Description = *patch.Description
	}
	if patch.Status != nil {
		task.Status = *patch.Status
	}
	if patch.TotalMinutes != nil {
		task.TotalMinutes = *patch.TotalMinutes
	}
	if patch.OwnerID != nil {
		// Reassignment is an admin-only operation.
		ownerID, err := authz.ResolveTaskOwner(caller, *patch.OwnerID)
		if err != nil {
			return nil, err
		}
		task.UserID = ownerID
	}

	if err := task.Validate(); err != nil {
		return nil, err
	}

	if err := s.tasks.Update(ctx, task); err != nil {
		return nil, err
	}

	return s.tasks.GetByID(ctx, id)
}

// Advance moves a task to the next status in the TODO -> IN_PROGRESS
// -> DONE -> TODO cycle and reports the transition.
func (s *TaskService) Advance(
	ctx context.Context,
	caller authz.Identity,
	id uuid.UUID,
) (*domain.Task, StatusTransition, error) {
	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, StatusTransition{}, err
	}

	if err := authz.CanAccessTask(caller, task.UserID); err != nil {
		return nil, StatusTransition{}, err
	}

	transition := StatusTransition{From: task.Status, To: task.Status.Next()}
	task.Status = transition.To

	if err := s.tasks.Update(ctx, task); err != nil {
		return nil, StatusTransition{}, err
	}

	logger.FromContextOrDefault(ctx, s.logger).Info("task status advanced",
		slog.String("task_id", id.String()),
		slog.String("from", string(transition.From)),
		slog.String("to", string(transition.To)),
		slog.String("caller_id", caller.UserID.String()))

	updated, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return nil, StatusTransition{}, err
	}
	return updated, transition, nil
}

// Delete permanently removes a task.
func (s *TaskService) Delete(ctx context.Context, caller authz.Identity, id uuid.UUID) error {
	task, err := s.tasks.GetByID(ctx, id)
	if err != nil {
		return err
	}

	if err := authz.CanAccessTask(caller, task.UserID); err != nil {
		return err
	}

	if err := s.tasks.Delete(ctx, id); err != nil {
		return err
	}

	logger.FromContextOrDefault(ctx, s.logger).Info("task deleted",
		slog.String("task_id", id.String()),
		slog.String("caller_id", caller.UserID.String()))
	return nil
}

// List returns the tasks visible to the caller, newest first.
// Non-admin callers only ever see their own tasks; an invalid status
// filter is silently ignored.
func (s *TaskService) List(
	ctx context.Context,
	caller authz.Identity,
	filter store.TaskFilter,
) ([]*domain.Task, error) {
	if filter.Status != nil && !domain.IsValidTaskStatus(*filter.Status) {
		filter.Status = nil
	}

	scoped, err := authz.ScopeTaskFilter(caller, filter)
	if err != nil {
		return nil, err
	}

	return s.tasks.List(ctx, scoped)
}

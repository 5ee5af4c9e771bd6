package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/sprintsync/sprintsync-api/internal/domain"
	"github.com/sprintsync/sprintsync-api/internal/platform/logger"
	"github.com/sprintsync/sprintsync-api/internal/store"
)

// TaskStore implements the store.TaskStore interface using PostgreSQL.
type TaskStore struct {
	db     store.DBTX
	logger *slog.Logger
}

// NewTaskStore creates a new PostgreSQL implementation of the
// TaskStore interface. The connection is initialized and managed by
// the caller. If logger is nil, the default logger is used.
func NewTaskStore(db store.DBTX, log *slog.Logger) *TaskStore {
	if db == nil {
		panic("db cannot be nil")
	}
	if log == nil {
		log = slog.Default()
	}

	return &TaskStore{
		db:     db,
		logger: log.With(slog.String("component", "task_store")),
	}
}

// Ensure TaskStore implements store.TaskStore interface
var _ store.TaskStore = (*TaskStore)(nil)

const taskColumns = `
	t.id, t.title, t.description, t.status, t.total_minutes, t.user_id,
	t.created_at, t.updated_at, u.id, u.email
`

// Create implements store.TaskStore.Create.
// Returns store.ErrInvalidEntity if the owner does not exist.
func (s *TaskStore) Create(ctx context.Context, task *domain.Task) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := task.Validate(); err != nil {
		log.Warn("task validation failed during create",
			slog.String("error", err.Error()),
			slog.String("task_id", task.ID.String()))
		return err
	}

	query := `
		INSERT INTO tasks (id, title, description, status, total_minutes, user_id, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
	`
	_, err := s.db.ExecContext(
		ctx,
		query,
		task.ID,
		task.Title,
		task.Description,
		task.Status,
		task.TotalMinutes,
		task.UserID,
		task.CreatedAt,
		task.UpdatedAt,
	)

	if err != nil {
		if IsForeignKeyViolation(err) {
			log.Warn("foreign key violation during task creation",
				slog.String("task_id", task.ID.String()),
				slog.String("user_id", task.UserID.String()))
			return fmt.Errorf("%w: user with ID %s not found",
				store.ErrInvalidEntity, task.UserID)
		}

		log.Error("failed to create task",
			slog.String("error", err.Error()),
			slog.String("task_id", task.ID.String()))
		return MapError(err)
	}

	log.Info("task created",
		slog.String("task_id", task.ID.String()),
		slog.String("user_id", task.UserID.String()))
	return nil
}

// GetByID implements store.TaskStore.GetByID.
// Returns store.ErrTaskNotFound if the task does not exist.
func (s *TaskStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	query := `
		SELECT ` + taskColumns + `
		FROM tasks t
		JOIN users u ON u.id = t.user_id
		WHERE t.id = $1
	`

	task, err := scanTask(s.db.QueryRowContext(ctx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, store.ErrTaskNotFound
		}
		logger.FromContextOrDefault(ctx, s.logger).Error("failed to get task by ID",
			slog.String("error", err.Error()),
			slog.String("task_id", id.String()))
		return nil, err
	}

	return task, nil
}

// List implements store.TaskStore.List. Results are ordered by
// creation time descending.
func (s *TaskStore) List(ctx context.Context, filter store.TaskFilter) ([]*domain.Task, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	query := `
		SELECT ` + taskColumns + `
		FROM tasks t
		JOIN users u ON u.id = t.user_id
		WHERE ($1::uuid IS NULL OR t.user_id = $1)
		  AND ($2::text IS NULL OR t.status = $2)
		ORDER BY t.created_at DESC
	`

	var userID, status any
	if filter.UserID != nil {
		userID = *filter.UserID
	}
	if filter.Status != nil {
		status = string(*filter.Status)
	}

	rows, err := s.db.QueryContext(ctx, query, userID, status)
	if err != nil {
		log.Error("failed to list tasks", slog.String("error", err.Error()))
		return nil, MapError(err)
	}
	defer func() { _ = rows.Close() }()

	tasks := make([]*domain.Task, 0)
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			log.Error("failed to scan task row", slog.String("error", err.Error()))
			return nil, err
		}
		tasks = append(tasks, task)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return tasks, nil
}

// Update implements store.TaskStore.Update.
// Returns store.ErrTaskNotFound if the task does not exist.
func (s *TaskStore) Update(ctx context.Context, task *domain.Task) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	if err := task.Validate(); err != nil {
		log.Warn("task validation failed during update",
			slog.String("error", err.Error()),
			slog.String("task_id", task.ID.String()))
		return err
	}

	task.UpdatedAt = time.Now().UTC()

	query := `
		UPDATE tasks
		SET title = $2, description = $3, status = $4, total_minutes = $5,
		    user_id = $6, updated_at = $7
		WHERE id = $1
	`
	result, err := s.db.ExecContext(
		ctx,
		query,
		task.ID,
		task.Title,
		task.Description,
		task.Status,
		task.TotalMinutes,
		task.UserID,
		task.UpdatedAt,
	)

	if err != nil {
		if IsForeignKeyViolation(err) {
			return fmt.Errorf("%w: user with ID %s not found",
				store.ErrInvalidEntity, task.UserID)
		}
		log.Error("failed to update task",
			slog.String("error", err.Error()),
			slog.String("task_id", task.ID.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, "task"); err != nil {
		return store.ErrTaskNotFound
	}

	log.Info("task updated",
		slog.String("task_id", task.ID.String()),
		slog.String("status", string(task.Status)))
	return nil
}

// Delete implements store.TaskStore.Delete.
// Returns store.ErrTaskNotFound if the task does not exist.
func (s *TaskStore) Delete(ctx context.Context, id uuid.UUID) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	result, err := s.db.ExecContext(ctx, `DELETE FROM tasks WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete task",
			slog.String("error", err.Error()),
			slog.String("task_id", id.String()))
		return MapError(err)
	}

	if err := CheckRowsAffected(result, "task"); err != nil {
		return store.ErrTaskNotFound
	}

	log.Info("task deleted", slog.String("task_id", id.String()))
	return nil
}

// rowScanner abstracts *sql.Row and *sql.Rows for shared scanning.
type rowScanner interface {
	Scan(dest ...any) error
}

// scanTask scans one task row including the joined owner summary.
func scanTask(row rowScanner) (*domain.Task, error) {
	var task domain.Task
	var owner domain.TaskOwner
	var description sql.NullString
	var status string

	err := row.Scan(
		&task.ID,
		&task.Title,
		&description,
		&status,
		&task.TotalMinutes,
		&task.UserID,
		&task.CreatedAt,
		&task.UpdatedAt,
		&owner.ID,
		&owner.Email,
	)
	if err != nil {
		return nil, err
	}

	task.Description = description.String
	task.Status = domain.TaskStatus(status)
	task.Owner = &owner
	return &task, nil
}

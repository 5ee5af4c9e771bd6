package service

import (
	"context"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sprintsync/sprintsync-api/internal/domain"
	"github.com/sprintsync/sprintsync-api/internal/service/authz"
	"github.com/sprintsync/sprintsync-api/internal/store"
)

// mockTaskStore implements store.TaskStore with function fields so
// each test configures only the calls it expects.
type mockTaskStore struct {
	createFn  func(ctx context.Context, task *domain.Task) error
	getByIDFn func(ctx context.Context, id uuid.UUID) (*domain.Task, error)
	listFn    func(ctx context.Context, filter store.TaskFilter) ([]*domain.Task, error)
	updateFn  func(ctx context.Context, task *domain.Task) error
	deleteFn  func(ctx context.Context, id uuid.UUID) error
}

var _ store.TaskStore = (*mockTaskStore)(nil)

func (m *mockTaskStore) Create(ctx context.Context, task *domain.Task) error {
	if m.createFn != nil {
		return m.createFn(ctx, task)
	}
	return nil
}

func (m *mockTaskStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	if m.getByIDFn != nil {
		return m.getByIDFn(ctx, id)
	}
	return nil, store.ErrTaskNotFound
}

func (m *mockTaskStore) List(ctx context.Context, filter store.TaskFilter) ([]*domain.Task, error) {
	if m.listFn != nil {
		return m.listFn(ctx, filter)
	}
	return nil, nil
}

func (m *mockTaskStore) Update(ctx context.Context, task *domain.Task) error {
	if m.updateFn != nil {
		return m.updateFn(ctx, task)
	}
	return nil
}

func (m *mockTaskStore) Delete(ctx context.Context, id uuid.UUID) error {
	if m.deleteFn != nil {
		return m.deleteFn(ctx, id)
	}
	return nil
}

// inMemoryTaskStore is a minimal store for flows that need real
// persistence semantics (create then re-read).
type inMemoryTaskStore struct {
	tasks map[uuid.UUID]*domain.Task
}

var _ store.TaskStore = (*inMemoryTaskStore)(nil)

func newInMemoryTaskStore() *inMemoryTaskStore {
	return &inMemoryTaskStore{tasks: make(map[uuid.UUID]*domain.Task)}
}

func (s *inMemoryTaskStore) Create(ctx context.Context, task *domain.Task) error {
	copied := *task
	s.tasks[task.ID] = &copied
	return nil
}

func (s *inMemoryTaskStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	task, ok := s.tasks[id]
	if !ok {
		return nil, store.ErrTaskNotFound
	}
	copied := *task
	return &copied, nil
}

func (s *inMemoryTaskStore) List(ctx context.Context, filter store.TaskFilter) ([]*domain.Task, error) {
	var result []*domain.Task
	for _, task := range s.tasks {
		if filter.UserID != nil && task.UserID != *filter.UserID {
			continue
		}
		if filter.Status != nil && task.Status != *filter.Status {
			continue
		}
		copied := *task
		result = append(result, &copied)
	}
	return result, nil
}

func (s *inMemoryTaskStore) Update(ctx context.Context, task *domain.Task) error {
	if _, ok := s.tasks[task.ID]; !ok {
		return store.ErrTaskNotFound
	}
	copied := *task
	s.tasks[task.ID] = &copied
	return nil
}

func (s *inMemoryTaskStore) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := s.tasks[id]; !ok {
		return store.ErrTaskNotFound
	}
	delete(s.tasks, id)
	return nil
}

func testUser() authz.Identity {
	return authz.Identity{UserID: uuid.New(), Email: "user@example.com"}
}

func testAdmin() authz.Identity {
	return authz.Identity{UserID: uuid.New(), Email: "admin@example.com", IsAdmin: true}
}

func TestTaskServiceCreate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("defaults to TODO and caller ownership", func(t *testing.T) {
		t.Parallel()
		svc, err := NewTaskService(newInMemoryTaskStore(), nil)
		require.NoError(t, err)

		caller := testUser()
		task, err := svc.Create(ctx, caller, CreateTaskInput{Title: "Write tests"})
		require.NoError(t, err)

		assert.Equal(t, domain.TaskStatusTodo, task.Status)
		assert.Equal(t, caller.UserID, task.UserID)
		assert.Zero(t, task.TotalMinutes)
	})

	t.Run("non-admin owner override is ignored", func(t *testing.T) {
		t.Parallel()
		svc, err := NewTaskService(newInMemoryTaskStore(), nil)
		require.NoError(t, err)

		caller := testUser()
		task, err := svc.Create(ctx, caller, CreateTaskInput{Title: "Sneaky", OwnerID: uuid.New()})
		require.NoError(t, err)
		assert.Equal(t, caller.UserID, task.UserID)
	})

	t.Run("admin assigns to another user", func(t *testing.T) {
		t.Parallel()
		svc, err := NewTaskService(newInMemoryTaskStore(), nil)
		require.NoError(t, err)

		target := uuid.New()
		task, err := svc.Create(ctx, testAdmin(), CreateTaskInput{Title: "Assigned", OwnerID: target})
		require.NoError(t, err)
		assert.Equal(t, target, task.UserID)
	})

	t.Run("title over limit rejected", func(t *testing.T) {
		t.Parallel()
		svc, err := NewTaskService(newInMemoryTaskStore(), nil)
		require.NoError(t, err)

		_, err = svc.Create(ctx, testUser(), CreateTaskInput{Title: strings.Repeat("a", domain.MaxTitleLength+1)})
		assert.ErrorIs(t, err, domain.ErrTaskTitleTooLong)
	})

	t.Run("negative minutes rejected", func(t *testing.T) {
		t.Parallel()
		svc, err := NewTaskService(newInMemoryTaskStore(), nil)
		require.NoError(t, err)

		_, err = svc.Create(ctx, testUser(), CreateTaskInput{Title: "T", TotalMinutes: -5})
		assert.ErrorIs(t, err, domain.ErrNegativeTotalMinutes)
	})
}

func TestTaskServiceGetAuthorization(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	owner := testUser()
	someTask, err := domain.NewTask("Private", "", 0, owner.UserID)
	require.NoError(t, err)

	tasks := &mockTaskStore{
		getByIDFn: func(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
			if id == someTask.ID {
				return someTask, nil
			}
			return nil, store.ErrTaskNotFound
		},
	}
	svc, err := NewTaskService(tasks, nil)
	require.NoError(t, err)

	t.Run("owner reads own task", func(t *testing.T) {
		t.Parallel()
		got, err := svc.Get(ctx, owner, someTask.ID)
		require.NoError(t, err)
		assert.Equal(t, someTask.ID, got.ID)
	})

	t.Run("other user forbidden", func(t *testing.T) {
		t.Parallel()
		_, err := svc.Get(ctx, testUser(), someTask.ID)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("admin reads any task", func(t *testing.T) {
		t.Parallel()
		_, err := svc.Get(ctx, testAdmin(), someTask.ID)
		assert.NoError(t, err)
	})

	t.Run("missing task is not found before authorization", func(t *testing.T) {
		t.Parallel()
		_, err := svc.Get(ctx, testUser(), uuid.New())
		assert.ErrorIs(t, err, store.ErrTaskNotFound)
	})
}

func TestTaskServiceAdvanceCycles(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	tasks := newInMemoryTaskStore()
	svc, err := NewTaskService(tasks, nil)
	require.NoError(t, err)

	caller := testUser()
	task, err := svc.Create(ctx, caller, CreateTaskInput{Title: "Cycle me"})
	require.NoError(t, err)

	want := []domain.TaskStatus{
		domain.TaskStatusInProgress,
		domain.TaskStatusDone,
		domain.TaskStatusTodo,
		domain.TaskStatusInProgress,
	}

	prev := domain.TaskStatusTodo
	for _, expected := range want {
		updated, transition, err := svc.Advance(ctx, caller, task.ID)
		require.NoError(t, err)
		assert.Equal(t, prev, transition.From)
		assert.Equal(t, expected, transition.To)
		assert.Equal(t, expected, updated.Status)
		prev = expected
	}
}

func TestTaskServiceUpdate(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("patches only provided fields", func(t *testing.T) {
		t.Parallel()
		tasks := newInMemoryTaskStore()
		svc, err := NewTaskService(tasks, nil)
		require.NoError(t, err)

		caller := testUser()
		task, err := svc.Create(ctx, caller, CreateTaskInput{
			Title:        "Original",
			Description:  "Keep me",
			TotalMinutes: 15,
		})
		require.NoError(t, err)

		newTitle := "Renamed"
		updated, err := svc.Update(ctx, caller, task.ID, TaskPatch{Title: &newTitle})
		require.NoError(t, err)

		assert.Equal(t, "Renamed", updated.Title)
		assert.Equal(t, "Keep me", updated.Description)
		assert.Equal(t, 15, updated.TotalMinutes)
	})

	t.Run("patched entity is revalidated", func(t *testing.T) {
		t.Parallel()
		tasks := newInMemoryTaskStore()
		svc, err := NewTaskService(tasks, nil)
		require.NoError(t, err)

		caller := testUser()
		task, err := svc.Create(ctx, caller, CreateTaskInput{Title: "Valid"})
		require.NoError(t, err)

		negative := -1
		_, err = svc.Update(ctx, caller, task.ID, TaskPatch{TotalMinutes: &negative})
		assert.ErrorIs(t, err, domain.ErrNegativeTotalMinutes)
	})

	t.Run("non-admin cannot reassign", func(t *testing.T) {
		t.Parallel()
		tasks := newInMemoryTaskStore()
		svc, err := NewTaskService(tasks, nil)
		require.NoError(t, err)

		caller := testUser()
		task, err := svc.Create(ctx, caller, CreateTaskInput{Title: "Mine"})
		require.NoError(t, err)

		other := uuid.New()
		updated, err := svc.Update(ctx, caller, task.ID, TaskPatch{OwnerID: &other})
		require.NoError(t, err)
		assert.Equal(t, caller.UserID, updated.UserID)
	})
}

func TestTaskServiceList(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	t.Run("non-admin scoped to own tasks", func(t *testing.T) {
		t.Parallel()
		caller := testUser()
		other := uuid.New()

		tasks := &mockTaskStore{
			listFn: func(ctx context.Context, filter store.TaskFilter) ([]*domain.Task, error) {
				require.NotNil(t, filter.UserID)
				assert.Equal(t, caller.UserID, *filter.UserID)
				return nil, nil
			},
		}
		svc, err := NewTaskService(tasks, nil)
		require.NoError(t, err)

		_, err = svc.List(ctx, caller, store.TaskFilter{UserID: &other})
		assert.NoError(t, err)
	})

	t.Run("invalid status filter silently dropped", func(t *testing.T) {
		t.Parallel()
		caller := testUser()

		tasks := &mockTaskStore{
			listFn: func(ctx context.Context, filter store.TaskFilter) ([]*domain.Task, error) {
				assert.Nil(t, filter.Status)
				return nil, nil
			},
		}
		svc, err := NewTaskService(tasks, nil)
		require.NoError(t, err)

		bogus := domain.TaskStatus("BOGUS")
		_, err = svc.List(ctx, caller, store.TaskFilter{Status: &bogus})
		assert.NoError(t, err)
	})
}

func TestTaskServiceDelete(t *testing.T) {
	t.Parallel()
	ctx := context.Background()

	tasks := newInMemoryTaskStore()
	svc, err := NewTaskService(tasks, nil)
	require.NoError(t, err)

	caller := testUser()
	task, err := svc.Create(ctx, caller, CreateTaskInput{Title: "Remove me"})
	require.NoError(t, err)

	t.Run("other user forbidden", func(t *testing.T) {
		err := svc.Delete(ctx, testUser(), task.ID)
		assert.ErrorIs(t, err, domain.ErrForbidden)
	})

	t.Run("owner deletes", func(t *testing.T) {
		err := svc.Delete(ctx, caller, task.ID)
		require.NoError(t, err)

		_, err = svc.Get(ctx, caller, task.ID)
		assert.ErrorIs(t, err, store.ErrTaskNotFound)
	})
}

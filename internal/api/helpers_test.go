package api

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sprintsync/sprintsync-api/internal/api/shared"
	"github.com/sprintsync/sprintsync-api/internal/domain"
	"github.com/sprintsync/sprintsync-api/internal/service/auth"
	"github.com/sprintsync/sprintsync-api/internal/service/authz"
	"github.com/sprintsync/sprintsync-api/internal/store"
)

// memUserStore is an in-memory store.UserStore for handler tests.
type memUserStore struct {
	users map[uuid.UUID]*domain.User
}

var _ store.UserStore = (*memUserStore)(nil)

func newMemUserStore() *memUserStore {
	return &memUserStore{users: make(map[uuid.UUID]*domain.User)}
}

func (s *memUserStore) Create(ctx context.Context, user *domain.User) error {
	for _, existing := range s.users {
		if existing.Email == user.Email {
			return store.ErrEmailExists
		}
	}
	copied := *user
	s.users[user.ID] = &copied
	return nil
}

func (s *memUserStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, store.ErrUserNotFound
	}
	copied := *user
	return &copied, nil
}

func (s *memUserStore) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	for _, user := range s.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, store.ErrUserNotFound
}

func (s *memUserStore) List(ctx context.Context, excludeID uuid.UUID) ([]*domain.User, error) {
	var result []*domain.User
	for _, user := range s.users {
		if user.ID == excludeID {
			continue
		}
		copied := *user
		result = append(result, &copied)
	}
	return result, nil
}

func (s *memUserStore) Update(ctx context.Context, user *domain.User) error {
	if _, ok := s.users[user.ID]; !ok {
		return store.ErrUserNotFound
	}
	copied := *user
	s.users[user.ID] = &copied
	return nil
}

func (s *memUserStore) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := s.users[id]; !ok {
		return store.ErrUserNotFound
	}
	delete(s.users, id)
	return nil
}

// memTaskStore is an in-memory store.TaskStore for handler tests.
type memTaskStore struct {
	tasks map[uuid.UUID]*domain.Task
}

var _ store.TaskStore = (*memTaskStore)(nil)

func newMemTaskStore() *memTaskStore {
	return &memTaskStore{tasks: make(map[uuid.UUID]*domain.Task)}
}

func (s *memTaskStore) Create(ctx context.Context, task *domain.Task) error {
	copied := *task
	s.tasks[task.ID] = &copied
	return nil
}

func (s *memTaskStore) GetByID(ctx context.Context, id uuid.UUID) (*domain.Task, error) {
	task, ok := s.tasks[id]
	if !ok {
		return nil, store.ErrTaskNotFound
	}
	copied := *task
	return &copied, nil
}

func (s *memTaskStore) List(ctx context.Context, filter store.TaskFilter) ([]*domain.Task, error) {
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

func (s *memTaskStore) Update(ctx context.Context, task *domain.Task) error {
	if _, ok := s.tasks[task.ID]; !ok {
		return store.ErrTaskNotFound
	}
	copied := *task
	s.tasks[task.ID] = &copied
	return nil
}

func (s *memTaskStore) Delete(ctx context.Context, id uuid.UUID) error {
	if _, ok := s.tasks[id]; !ok {
		return store.ErrTaskNotFound
	}
	delete(s.tasks, id)
	return nil
}

// stubJWTService returns canned tokens and claims.
type stubJWTService struct {
	generateFn func(ctx context.Context, userID uuid.UUID, email string, isAdmin bool) (string, error)
	validateFn func(ctx context.Context, tokenString string) (*auth.Claims, error)
}

var _ auth.JWTService = (*stubJWTService)(nil)

func (s *stubJWTService) GenerateToken(ctx context.Context, userID uuid.UUID, email string, isAdmin bool) (string, error) {
	if s.generateFn != nil {
		return s.generateFn(ctx, userID, email, isAdmin)
	}
	return "test-token", nil
}

func (s *stubJWTService) ValidateToken(ctx context.Context, tokenString string) (*auth.Claims, error) {
	if s.validateFn != nil {
		return s.validateFn(ctx, tokenString)
	}
	return nil, auth.ErrInvalidToken
}

// plainHasher and plainVerifier skip bcrypt in handler tests.
type plainHasher struct{}

func (plainHasher) Hash(password string) (string, error) { return "hashed:" + password, nil }

type plainVerifier struct{}

func (plainVerifier) Compare(hashedPassword, password string) error {
	if hashedPassword != "hashed:"+password {
		return auth.ErrInvalidCredentials
	}
	return nil
}

// withIdentity installs a caller identity on the request context the
// way the auth middleware would.
func withIdentity(r *http.Request, identity authz.Identity) *http.Request {
	ctx := context.WithValue(r.Context(), shared.IdentityContextKey, identity)
	return r.WithContext(ctx)
}

// withURLParam installs a chi route parameter on the request so
// handlers can be exercised without a router.
func withURLParam(r *http.Request, key, value string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add(key, value)
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, rctx))
}

package authz

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sprintsync/sprintsync-api/internal/domain"
	"github.com/sprintsync/sprintsync-api/internal/store"
)

func adminIdentity() Identity {
	return Identity{UserID: uuid.New(), Email: "admin@example.com", IsAdmin: true}
}

func userIdentity() Identity {
	return Identity{UserID: uuid.New(), Email: "user@example.com"}
}

func TestCanAccessTask(t *testing.T) {
	t.Parallel()

	owner := userIdentity()
	other := userIdentity()
	admin := adminIdentity()

	tests := []struct {
		name    string
		caller  Identity
		ownerID uuid.UUID
		wantErr error
	}{
		{"owner accesses own task", owner, owner.UserID, nil},
		{"admin accesses any task", admin, owner.UserID, nil},
		{"non-owner denied", other, owner.UserID, domain.ErrForbidden},
		{"unauthenticated denied", Identity{}, owner.UserID, domain.ErrUnauthenticated},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := CanAccessTask(tc.caller, tc.ownerID)
			if tc.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tc.wantErr)
			}
		})
	}
}

func TestResolveTaskOwner(t *testing.T) {
	t.Parallel()

	admin := adminIdentity()
	user := userIdentity()
	target := uuid.New()

	t.Run("admin override honored", func(t *testing.T) {
		t.Parallel()
		owner, err := ResolveTaskOwner(admin, target)
		require.NoError(t, err)
		assert.Equal(t, target, owner)
	})

	t.Run("admin without override owns the task", func(t *testing.T) {
		t.Parallel()
		owner, err := ResolveTaskOwner(admin, uuid.Nil)
		require.NoError(t, err)
		assert.Equal(t, admin.UserID, owner)
	})

	t.Run("non-admin override silently ignored", func(t *testing.T) {
		t.Parallel()
		owner, err := ResolveTaskOwner(user, target)
		require.NoError(t, err)
		assert.Equal(t, user.UserID, owner)
	})

	t.Run("unauthenticated rejected", func(t *testing.T) {
		t.Parallel()
		_, err := ResolveTaskOwner(Identity{}, target)
		assert.ErrorIs(t, err, domain.ErrUnauthenticated)
	})
}

func TestScopeTaskFilter(t *testing.T) {
	t.Parallel()

	admin := adminIdentity()
	user := userIdentity()
	other := uuid.New()

	t.Run("non-admin pinned to own tasks", func(t *testing.T) {
		t.Parallel()
		scoped, err := ScopeTaskFilter(user, store.TaskFilter{UserID: &other})
		require.NoError(t, err)
		require.NotNil(t, scoped.UserID)
		assert.Equal(t, user.UserID, *scoped.UserID)
	})

	t.Run("admin filter passes through", func(t *testing.T) {
		t.Parallel()
		scoped, err := ScopeTaskFilter(admin, store.TaskFilter{UserID: &other})
		require.NoError(t, err)
		require.NotNil(t, scoped.UserID)
		assert.Equal(t, other, *scoped.UserID)
	})

	t.Run("admin without filter sees everything", func(t *testing.T) {
		t.Parallel()
		scoped, err := ScopeTaskFilter(admin, store.TaskFilter{})
		require.NoError(t, err)
		assert.Nil(t, scoped.UserID)
	})

	t.Run("status filter preserved", func(t *testing.T) {
		t.Parallel()
		status := domain.TaskStatusDone
		scoped, err := ScopeTaskFilter(user, store.TaskFilter{Status: &status})
		require.NoError(t, err)
		require.NotNil(t, scoped.Status)
		assert.Equal(t, domain.TaskStatusDone, *scoped.Status)
	})
}

func TestRequireAdmin(t *testing.T) {
	t.Parallel()

	assert.NoError(t, RequireAdmin(adminIdentity()))
	assert.ErrorIs(t, RequireAdmin(userIdentity()), domain.ErrForbidden)
	assert.ErrorIs(t, RequireAdmin(Identity{}), domain.ErrUnauthenticated)
}

func TestCanDeleteUser(t *testing.T) {
	t.Parallel()

	admin := adminIdentity()

	assert.NoError(t, CanDeleteUser(admin, uuid.New()))
	assert.ErrorIs(t, CanDeleteUser(admin, admin.UserID), domain.ErrSelfDelete)
	assert.ErrorIs(t, CanDeleteUser(userIdentity(), uuid.New()), domain.ErrForbidden)
}

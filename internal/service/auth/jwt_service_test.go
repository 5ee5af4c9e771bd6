package auth

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sprintsync/sprintsync-api/internal/config"
)

const testSecret = "0123456789abcdef0123456789abcdef"

func newTestJWTService(t *testing.T) *hmacJWTService {
	t.Helper()
	svc, err := NewJWTService(config.AuthConfig{
		JWTSecret:          testSecret,
		TokenLifetimeHours: 168,
	})
	require.NoError(t, err)
	return svc.(*hmacJWTService)
}

func TestNewJWTServiceRejectsShortSecret(t *testing.T) {
	t.Parallel()

	_, err := NewJWTService(config.AuthConfig{
		JWTSecret:          "too-short",
		TokenLifetimeHours: 168,
	})
	assert.Error(t, err)
}

func TestJWTRoundTrip(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestJWTService(t)

	userID := uuid.New()
	token, err := svc.GenerateToken(ctx, userID, "user@example.com", true)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(ctx, token)
	require.NoError(t, err)

	assert.Equal(t, userID, claims.UserID)
	assert.Equal(t, "user@example.com", claims.Email)
	assert.True(t, claims.IsAdmin)
	assert.Equal(t, userID.String(), claims.Subject)
	assert.NotEmpty(t, claims.ID)
	assert.WithinDuration(t, time.Now().Add(168*time.Hour), claims.ExpiresAt, time.Minute)
}

func TestJWTExpiredToken(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestJWTService(t)

	issued := time.Now()
	svc.timeFunc = func() time.Time { return issued }

	token, err := svc.GenerateToken(ctx, uuid.New(), "user@example.com", false)
	require.NoError(t, err)

	// Jump past the lifetime plus the clock skew allowance.
	svc.timeFunc = func() time.Time {
		return issued.Add(168*time.Hour + svc.clockSkew + time.Minute)
	}

	_, err = svc.ValidateToken(ctx, token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestJWTClockSkewLeeway(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestJWTService(t)

	issued := time.Now()
	svc.timeFunc = func() time.Time { return issued }

	token, err := svc.GenerateToken(ctx, uuid.New(), "user@example.com", false)
	require.NoError(t, err)

	// Just past expiry but within the skew allowance.
	svc.timeFunc = func() time.Time {
		return issued.Add(168*time.Hour + time.Minute)
	}

	_, err = svc.ValidateToken(ctx, token)
	assert.NoError(t, err)
}

func TestJWTTamperedToken(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestJWTService(t)

	token, err := svc.GenerateToken(ctx, uuid.New(), "user@example.com", false)
	require.NoError(t, err)

	tampered := token[:len(token)-2] + "xx"
	_, err = svc.ValidateToken(ctx, tampered)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTWrongKey(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestJWTService(t)

	other, err := NewJWTService(config.AuthConfig{
		JWTSecret:          "ffffffffffffffffffffffffffffffff",
		TokenLifetimeHours: 168,
	})
	require.NoError(t, err)

	token, err := other.GenerateToken(ctx, uuid.New(), "user@example.com", false)
	require.NoError(t, err)

	_, err = svc.ValidateToken(ctx, token)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTGarbageInput(t *testing.T) {
	t.Parallel()
	ctx := context.Background()
	svc := newTestJWTService(t)

	for _, input := range []string{"", "not-a-token", "a.b.c"} {
		_, err := svc.ValidateToken(ctx, input)
		assert.ErrorIs(t, err, ErrInvalidToken, "input %q", input)
	}
}

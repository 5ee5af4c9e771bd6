package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setRequiredEnv(t *testing.T) {
	t.Helper()
	t.Setenv("SPRINTSYNC_DATABASE_URL", "postgres://localhost:5432/sprintsync")
	t.Setenv("SPRINTSYNC_AUTH_JWT_SECRET", strings.Repeat("s", 32))
}

func TestLoadFromEnvironment(t *testing.T) {
	setRequiredEnv(t)
	t.Setenv("SPRINTSYNC_SERVER_PORT", "9090")
	t.Setenv("SPRINTSYNC_AI_GEMINI_API_KEY", "test-key")

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 9090, cfg.Server.Port)
	assert.Equal(t, "postgres://localhost:5432/sprintsync", cfg.Database.URL)
	assert.True(t, cfg.AI.GeminiConfigured())
	assert.False(t, cfg.AI.PineconeConfigured())
}

func TestLoadDefaults(t *testing.T) {
	setRequiredEnv(t)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, 8080, cfg.Server.Port)
	assert.Equal(t, "info", cfg.Server.LogLevel)
	assert.Equal(t, "development", cfg.Server.Environment)
	assert.Equal(t, 168, cfg.Auth.TokenLifetimeHours)
	assert.Equal(t, "gemini-2.0-flash", cfg.AI.GeminiModel)
	assert.Equal(t, 5, cfg.AI.RetrievalTopK)
	assert.False(t, cfg.AI.GeminiConfigured())
}

func TestLoadValidation(t *testing.T) {
	t.Run("missing database URL", func(t *testing.T) {
		t.Setenv("SPRINTSYNC_AUTH_JWT_SECRET", strings.Repeat("s", 32))
		t.Setenv("SPRINTSYNC_DATABASE_URL", "")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid configuration")
	})

	t.Run("short JWT secret", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("SPRINTSYNC_AUTH_JWT_SECRET", "too-short")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid configuration")
	})

	t.Run("invalid log level", func(t *testing.T) {
		setRequiredEnv(t)
		t.Setenv("SPRINTSYNC_SERVER_LOG_LEVEL", "verbose")

		_, err := Load()
		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid configuration")
	})
}

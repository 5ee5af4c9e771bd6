package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Load reads configuration from a .env file (if present), environment
// variables with the SPRINTSYNC_ prefix, and an optional config.yaml.
// Environment variables take precedence over values from config files.
// Returns a populated Config or an error if loading/validation fails.
func Load() (*Config, error) {
	// Best effort: a missing .env is normal outside development.
	_ = godotenv.Load()

	v := viper.New()

	v.SetDefault("server.port", 8080)
	v.SetDefault("server.log_level", "info")
	v.SetDefault("server.environment", "development")
	v.SetDefault("auth.token_lifetime_hours", 168) // 7 days
	v.SetDefault("ai.gemini_model", "gemini-2.0-flash")
	v.SetDefault("ai.embedding_model", "text-embedding-004")
	v.SetDefault("ai.retrieval_top_k", 5)

	v.SetConfigName("config")
	v.SetConfigType("yaml")
	v.AddConfigPath(".")

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}
	}

	v.SetEnvPrefix("SPRINTSYNC")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// AutomaticEnv does not register keys on its own; binding makes the
	// env-only path work without a config file.
	for _, key := range []string{
		"server.port", "server.log_level", "server.environment",
		"database.url",
		"auth.jwt_secret", "auth.token_lifetime_hours",
		"ai.gemini_api_key", "ai.gemini_model", "ai.embedding_model",
		"ai.pinecone_api_key", "ai.pinecone_host", "ai.retrieval_top_k",
	} {
		if err := v.BindEnv(key); err != nil {
			return nil, fmt.Errorf("failed to bind env for %s: %w", key, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal configuration: %w", err)
	}

	if err := validator.New().Struct(cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}

	return &cfg, nil
}

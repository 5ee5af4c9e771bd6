// Package config loads and validates application configuration.
package config

// Config holds all application configuration.
// It organizes settings into logical groups for better maintainability.
type Config struct {
	Server   ServerConfig   `mapstructure:"server"   validate:"required"`
	Database DatabaseConfig `mapstructure:"database" validate:"required"`
	Auth     AuthConfig     `mapstructure:"auth"     validate:"required"`
	AI       AIConfig       `mapstructure:"ai"`
}

// ServerConfig contains all server-related configuration settings.
type ServerConfig struct {
	Port        int    `mapstructure:"port"        validate:"required,gt=0,lt=65536"`
	LogLevel    string `mapstructure:"log_level"   validate:"required,oneof=debug info warn error"`
	Environment string `mapstructure:"environment" validate:"required,oneof=development production test"`
}

// DatabaseConfig contains all database-related configuration settings.
type DatabaseConfig struct {
	URL string `mapstructure:"url" validate:"required"`
}

// AuthConfig contains authentication and session settings.
type AuthConfig struct {
	JWTSecret          string `mapstructure:"jwt_secret"           validate:"required,min=32"`
	TokenLifetimeHours int    `mapstructure:"token_lifetime_hours" validate:"required,gt=0"`
}

// AIConfig contains the optional AI integration settings. Empty values
// disable the corresponding capability rather than failing startup.
type AIConfig struct {
	GeminiAPIKey   string `mapstructure:"gemini_api_key"`
	GeminiModel    string `mapstructure:"gemini_model"`
	EmbeddingModel string `mapstructure:"embedding_model"`
	PineconeAPIKey string `mapstructure:"pinecone_api_key"`
	PineconeHost   string `mapstructure:"pinecone_host"`
	RetrievalTopK  int    `mapstructure:"retrieval_top_k"`
}

// GeminiConfigured reports whether the LLM capability is usable.
func (c AIConfig) GeminiConfigured() bool {
	return c.GeminiAPIKey != ""
}

// PineconeConfigured reports whether the retrieval capability is usable.
func (c AIConfig) PineconeConfigured() bool {
	return c.PineconeAPIKey != "" && c.PineconeHost != ""
}

// Package gemini implements the language-model and embedding
// capabilities on Google's Gemini API.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"google.golang.org/genai"

	"github.com/sprintsync/sprintsync-api/internal/ai"
	"github.com/sprintsync/sprintsync-api/internal/config"
)

// Generator implements ai.Generator using the Gemini API.
type Generator struct {
	client *genai.Client
	model  string
	logger *slog.Logger
}

var _ ai.Generator = (*Generator)(nil)

// NewGenerator creates a Generator from the AI configuration. The API
// key must be set; the caller decides between this and ai.NoopGenerator
// based on config.AIConfig.GeminiConfigured.
func NewGenerator(ctx context.Context, logger *slog.Logger, cfg config.AIConfig) (*Generator, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if cfg.GeminiAPIKey == "" {
		return nil, errors.New("gemini API key cannot be empty")
	}
	if cfg.GeminiModel == "" {
		return nil, errors.New("gemini model name cannot be empty")
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:  cfg.GeminiAPIKey,
		Backend: genai.BackendGeminiAPI,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create Gemini client: %w", err)
	}

	return &Generator{
		client: client,
		model:  cfg.GeminiModel,
		logger: logger.With("component", "gemini_generator"),
	}, nil
}

// Available implements ai.Generator.
func (g *Generator) Available() bool { return true }

// Generate implements ai.Generator. It sends a single-turn request and
// returns the concatenated text of the first candidate.
func (g *Generator) Generate(ctx context.Context, opts ai.GenerateOptions) (string, error) {
	genCfg := &genai.GenerateContentConfig{
		Temperature:     genai.Ptr(opts.Temperature),
		MaxOutputTokens: opts.MaxTokens,
	}
	if opts.System != "" {
		genCfg.SystemInstruction = genai.NewContentFromText(opts.System, genai.RoleUser)
	}

	g.logger.DebugContext(ctx, "calling Gemini API",
		"model", g.model,
		"prompt_length", len(opts.Prompt))

	resp, err := g.client.Models.GenerateContent(ctx,
		g.model,
		genai.Text(opts.Prompt),
		genCfg,
	)
	if err != nil {
		return "", fmt.Errorf("gemini generate content: %w", err)
	}
	if resp == nil || len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil {
		return "", fmt.Errorf("%w: no content generated", ai.ErrInvalidResponse)
	}
	if resp.Candidates[0].FinishReason == genai.FinishReasonSafety {
		return "", fmt.Errorf("%w: content blocked by safety filters", ai.ErrInvalidResponse)
	}

	var b strings.Builder
	for _, part := range resp.Candidates[0].Content.Parts {
		if part != nil {
			b.WriteString(part.Text)
		}
	}
	text := b.String()
	if text == "" {
		return "", fmt.Errorf("%w: empty content in response", ai.ErrInvalidResponse)
	}
	return text, nil
}

// Embedder produces query embeddings for vector search.
type Embedder struct {
	client *genai.Client
	model  string
	logger *slog.Logger
}

// NewEmbedder creates an Embedder sharing the Generator's client.
func NewEmbedder(g *Generator, model string) (*Embedder, error) {
	if g == nil {
		return nil, errors.New("generator cannot be nil")
	}
	if model == "" {
		return nil, errors.New("embedding model name cannot be empty")
	}
	return &Embedder{
		client: g.client,
		model:  model,
		logger: g.logger.With("component", "gemini_embedder"),
	}, nil
}

// Embed returns the embedding vector for the given text.
func (e *Embedder) Embed(ctx context.Context, text string) ([]float32, error) {
	resp, err := e.client.Models.EmbedContent(ctx, e.model, genai.Text(text), nil)
	if err != nil {
		return nil, fmt.Errorf("gemini embed content: %w", err)
	}
	if resp == nil || len(resp.Embeddings) == 0 || len(resp.Embeddings[0].Values) == 0 {
		return nil, fmt.Errorf("%w: empty embedding", ai.ErrInvalidResponse)
	}
	return resp.Embeddings[0].Values, nil
}

// Package ai implements the AI-assisted suggestion pipelines:
// task description generation and resume-based assignee ranking.
// Both degrade to deterministic fallbacks whenever the underlying
// capability is unconfigured or fails.
package ai

import (
	"context"
	"errors"
)

// Common pipeline errors. These never escape the Suggester; they exist
// so the platform implementations can report failures precisely.
var (
	// ErrUnavailable is returned by no-op capabilities.
	ErrUnavailable = errors.New("capability not configured")

	// ErrInvalidResponse indicates the model or retrieval service
	// returned something unusable.
	ErrInvalidResponse = errors.New("invalid response")
)

// Generator is the language-model capability. Absence is modeled with
// NoopGenerator rather than nil checks at call sites.
type Generator interface {
	// Available reports whether the capability is configured.
	Available() bool

	// Generate produces a completion for the given system instruction
	// and user prompt.
	Generate(ctx context.Context, opts GenerateOptions) (string, error)
}

// GenerateOptions carries a single generation request.
type GenerateOptions struct {
	System      string
	Prompt      string
	MaxTokens   int32
	Temperature float32
}

// Candidate is one retrieved resume profile.
type Candidate struct {
	Name   string
	Email  string
	Resume string
}

// Retriever is the vector-search capability over the resume corpus.
type Retriever interface {
	// Available reports whether the capability is configured.
	Available() bool

	// Search returns up to k candidates most similar to the query.
	Search(ctx context.Context, query string, k int) ([]Candidate, error)
}

// NoopGenerator is the Generator used when no LLM is configured.
type NoopGenerator struct{}

// Available implements Generator.
func (NoopGenerator) Available() bool { return false }

// Generate implements Generator.
func (NoopGenerator) Generate(ctx context.Context, opts GenerateOptions) (string, error) {
	return "", ErrUnavailable
}

// NoopRetriever is the Retriever used when no vector store is
// configured.
type NoopRetriever struct{}

// Available implements Retriever.
func (NoopRetriever) Available() bool { return false }

// Search implements Retriever.
func (NoopRetriever) Search(ctx context.Context, query string, k int) ([]Candidate, error) {
	return nil, ErrUnavailable
}

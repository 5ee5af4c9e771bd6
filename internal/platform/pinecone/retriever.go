// Package pinecone implements the resume-search capability against a
// Pinecone index over its REST query endpoint.
package pinecone

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/sprintsync/sprintsync-api/internal/ai"
	"github.com/sprintsync/sprintsync-api/internal/config"
)

const requestTimeout = 10 * time.Second

// Embedder turns a text query into the vector the index is keyed by.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float32, error)
}

// Retriever implements ai.Retriever by embedding the query and running
// a similarity search against the Pinecone index.
type Retriever struct {
	apiKey   string
	host     string
	embedder Embedder
	client   *http.Client
	logger   *slog.Logger
}

var _ ai.Retriever = (*Retriever)(nil)

// NewRetriever creates a Retriever. The caller decides between this
// and ai.NoopRetriever based on config.AIConfig.PineconeConfigured.
func NewRetriever(logger *slog.Logger, cfg config.AIConfig, embedder Embedder) (*Retriever, error) {
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}
	if cfg.PineconeAPIKey == "" {
		return nil, errors.New("pinecone API key cannot be empty")
	}
	if cfg.PineconeHost == "" {
		return nil, errors.New("pinecone host cannot be empty")
	}
	if embedder == nil {
		return nil, errors.New("embedder cannot be nil")
	}

	return &Retriever{
		apiKey:   cfg.PineconeAPIKey,
		host:     strings.TrimSuffix(cfg.PineconeHost, "/"),
		embedder: embedder,
		client:   &http.Client{Timeout: requestTimeout},
		logger:   logger.With("component", "pinecone_retriever"),
	}, nil
}

// Available implements ai.Retriever.
func (r *Retriever) Available() bool { return true }

type queryRequest struct {
	TopK            int       `json:"topK"`
	Vector          []float32 `json:"vector"`
	IncludeMetadata bool      `json:"includeMetadata"`
}

type queryResponse struct {
	Matches []struct {
		ID       string  `json:"id"`
		Score    float64 `json:"score"`
		Metadata struct {
			Name   string `json:"name"`
			Email  string `json:"email"`
			Resume string `json:"text"`
		} `json:"metadata"`
	} `json:"matches"`
}

// Search implements ai.Retriever. Matches without an email in their
// metadata are dropped since they cannot be suggested as assignees.
func (r *Retriever) Search(ctx context.Context, query string, k int) ([]ai.Candidate, error) {
	vector, err := r.embedder.Embed(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("embed query: %w", err)
	}

	body, err := json.Marshal(queryRequest{
		TopK:            k,
		Vector:          vector,
		IncludeMetadata: true,
	})
	if err != nil {
		return nil, fmt.Errorf("marshal query request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, r.host+"/query", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create query request: %w", err)
	}
	req.Header.Set("Api-Key", r.apiKey)
	req.Header.Set("Content-Type", "application/json")

	start := time.Now()
	resp, err := r.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("pinecone query: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, fmt.Errorf("%w: pinecone query returned %d: %s",
			ai.ErrInvalidResponse, resp.StatusCode, string(snippet))
	}

	var parsed queryResponse
	if err := json.NewDecoder(resp.Body).Decode(&parsed); err != nil {
		return nil, fmt.Errorf("%w: decode pinecone response: %v", ai.ErrInvalidResponse, err)
	}

	candidates := make([]ai.Candidate, 0, len(parsed.Matches))
	for _, match := range parsed.Matches {
		if match.Metadata.Email == "" {
			continue
		}
		candidates = append(candidates, ai.Candidate{
			Name:   match.Metadata.Name,
			Email:  match.Metadata.Email,
			Resume: match.Metadata.Resume,
		})
	}

	r.logger.DebugContext(ctx, "pinecone query completed",
		"matches", len(parsed.Matches),
		"candidates", len(candidates),
		"latency_ms", time.Since(start).Milliseconds())

	return candidates, nil
}

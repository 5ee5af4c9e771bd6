package ai

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Source values reported to clients alongside each suggestion. They
// are part of the API contract and must not change.
const (
	SourceLLM       = "openai"
	SourceRetrieval = "pinecone+llm"
	SourceFallback  = "fallback"
)

const (
	descriptionSystemPrompt = "You are a helpful assistant that creates clear, actionable task descriptions. " +
		"Responses must not repeat the task title. " +
		"Write 2-4 sentences describing what needs to be done, why it matters, and any key considerations. " +
		"Do not use markdown formatting."

	descriptionMaxTokens   = 200
	descriptionTemperature = 0.7

	rankingMaxTokens   = 100
	rankingTemperature = 0.2
	rankingMaxPicks    = 3

	retrievalTopK = 5
)

// DescriptionSuggestion is the result of a description request.
type DescriptionSuggestion struct {
	Text   string
	Source string
}

// AssigneeSuggestion is the result of an assignee ranking request.
type AssigneeSuggestion struct {
	Emails []string
	Source string
}

// Suggester runs both suggestion pipelines. Failures anywhere in a
// pipeline degrade to the fallback result; errors are logged, never
// returned to the caller.
type Suggester struct {
	generator Generator
	retriever Retriever
	topK      int
	logger    *slog.Logger
}

// NewSuggester creates a Suggester. Pass NoopGenerator/NoopRetriever
// for unconfigured capabilities. topK bounds retrieval; values < 1
// fall back to the default.
func NewSuggester(generator Generator, retriever Retriever, topK int, logger *slog.Logger) *Suggester {
	if logger == nil {
		logger = slog.Default()
	}
	if topK < 1 {
		topK = retrievalTopK
	}
	return &Suggester{
		generator: generator,
		retriever: retriever,
		topK:      topK,
		logger:    logger.With("component", "ai_suggester"),
	}
}

// SuggestDescription produces a task description for the given title.
// When the generator is unavailable or fails, the static keyword
// fallback is used instead.
func (s *Suggester) SuggestDescription(ctx context.Context, callerID uuid.UUID, title string) DescriptionSuggestion {
	start := time.Now()
	log := s.logger.With("user_id", callerID, "title", title)

	if s.generator.Available() {
		text, err := s.generator.Generate(ctx, GenerateOptions{
			System:      descriptionSystemPrompt,
			Prompt:      fmt.Sprintf("Write a task description for: %s", title),
			MaxTokens:   descriptionMaxTokens,
			Temperature: descriptionTemperature,
		})
		if err == nil {
			text = strings.TrimSpace(text)
			if text != "" {
				log.Info("description generated",
					"source", SourceLLM,
					"latency_ms", time.Since(start).Milliseconds())
				return DescriptionSuggestion{Text: text, Source: SourceLLM}
			}
			err = ErrInvalidResponse
		}
		log.Warn("description generation failed, using fallback", "error", err)
	}

	text := FallbackDescription(title)
	log.Info("description generated",
		"source", SourceFallback,
		"latency_ms", time.Since(start).Milliseconds())
	return DescriptionSuggestion{Text: text, Source: SourceFallback}
}

// SuggestAssignees ranks candidate assignees for a task description.
// The full pipeline needs both retrieval and generation; if either is
// unavailable, retrieval returns no candidates, or any step fails, the
// result is an empty list with the fallback source.
func (s *Suggester) SuggestAssignees(ctx context.Context, callerID uuid.UUID, description string) AssigneeSuggestion {
	start := time.Now()
	log := s.logger.With("user_id", callerID)

	emails, err := s.rankAssignees(ctx, description)
	if err != nil {
		log.Warn("assignee ranking failed, using fallback", "error", err)
		return AssigneeSuggestion{Emails: []string{}, Source: SourceFallback}
	}

	log.Info("assignees ranked",
		"source", SourceRetrieval,
		"emails", emails,
		"latency_ms", time.Since(start).Milliseconds())
	return AssigneeSuggestion{Emails: emails, Source: SourceRetrieval}
}

func (s *Suggester) rankAssignees(ctx context.Context, description string) ([]string, error) {
	if !s.retriever.Available() || !s.generator.Available() {
		return nil, ErrUnavailable
	}

	candidates, err := s.retriever.Search(ctx, description, s.topK)
	if err != nil {
		return nil, fmt.Errorf("candidate search: %w", err)
	}
	if len(candidates) == 0 {
		return nil, fmt.Errorf("candidate search: %w", ErrInvalidResponse)
	}

	raw, err := s.generator.Generate(ctx, GenerateOptions{
		System:      rankingSystemPrompt(),
		Prompt:      rankingPrompt(description, candidates),
		MaxTokens:   rankingMaxTokens,
		Temperature: rankingTemperature,
	})
	if err != nil {
		return nil, fmt.Errorf("candidate ranking: %w", err)
	}

	emails, err := ParseEmailList(raw)
	if err != nil {
		return nil, fmt.Errorf("parse ranking response: %w", err)
	}
	if len(emails) > rankingMaxPicks {
		emails = emails[:rankingMaxPicks]
	}
	return emails, nil
}

func rankingSystemPrompt() string {
	return fmt.Sprintf("You are a technical recruiter matching candidates to tasks. "+
		"Given a task description and candidate resumes, pick up to %d best-suited candidates. "+
		`Respond with only a JSON array of objects of the form [{"email": "..."}] and nothing else.`,
		rankingMaxPicks)
}

func rankingPrompt(description string, candidates []Candidate) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Task description:\n%s\n\nCandidates:\n", description)
	for i, c := range candidates {
		fmt.Fprintf(&b, "%d. %s <%s>\n%s\n\n", i+1, c.Name, c.Email, c.Resume)
	}
	return b.String()
}

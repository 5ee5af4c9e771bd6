package api

import (
	"log/slog"
	"net/http"

	"github.com/sprintsync/sprintsync-api/internal/ai"
	"github.com/sprintsync/sprintsync-api/internal/api/shared"
)

// AIHandler handles the AI suggestion API requests. Suggestion
// pipelines never fail outward: degraded results carry the fallback
// source instead.
type AIHandler struct {
	suggester *ai.Suggester
	logger    *slog.Logger
}

// NewAIHandler creates a new AIHandler with the given dependencies.
func NewAIHandler(suggester *ai.Suggester, logger *slog.Logger) *AIHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AIHandler{
		suggester: suggester,
		logger:    logger.With(slog.String("component", "ai_handler")),
	}
}

// Suggest handles POST /ai/suggest, producing a task description for
// the given title.
func (h *AIHandler) Suggest(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	var req SuggestRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result := h.suggester.SuggestDescription(r.Context(), identity.UserID, req.Title)

	shared.RespondWithJSON(w, r, http.StatusOK, SuggestionResponse{
		Suggestion: result.Text,
		Source:     result.Source,
		Type:       req.Type,
		Title:      req.Title,
	})
}

// AssignUser handles POST /ai/assign-user, ranking candidate assignees
// for a task description.
func (h *AIHandler) AssignUser(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	var req AssignUserRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	result := h.suggester.SuggestAssignees(r.Context(), identity.UserID, req.Description)

	shared.RespondWithJSON(w, r, http.StatusOK, AssignmentResponse{
		Suggestion: result.Emails,
		Source:     result.Source,
	})
}

package api

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/sprintsync/sprintsync-api/internal/api/shared"
	"github.com/sprintsync/sprintsync-api/internal/domain"
	"github.com/sprintsync/sprintsync-api/internal/service/authz"
)

// getIdentityFromContext extracts the authenticated caller's identity
// from the request context. The identity is placed there by the
// authentication middleware.
func getIdentityFromContext(r *http.Request) (authz.Identity, bool) {
	identity, ok := r.Context().Value(shared.IdentityContextKey).(authz.Identity)
	if !ok || !identity.Valid() {
		return authz.Identity{}, false
	}
	return identity, true
}

// requireIdentity extracts the caller's identity or writes a 401 and
// reports false.
func requireIdentity(w http.ResponseWriter, r *http.Request) (authz.Identity, bool) {
	identity, ok := getIdentityFromContext(r)
	if !ok {
		shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
		return authz.Identity{}, false
	}
	return identity, true
}

// getPathUUID extracts and parses a UUID path parameter.
func getPathUUID(r *http.Request, paramName string) (uuid.UUID, error) {
	pathParam := chi.URLParam(r, paramName)
	if pathParam == "" {
		return uuid.Nil, domain.NewValidationError(paramName, "is required", domain.ErrValidation)
	}

	id, err := uuid.Parse(pathParam)
	if err != nil {
		return uuid.Nil, domain.NewValidationError(paramName, "has invalid format", domain.ErrInvalidID)
	}

	return id, nil
}

// decodeAndValidate decodes the JSON body into v and runs struct
// validation, writing a 400 response on failure.
func decodeAndValidate(w http.ResponseWriter, r *http.Request, v interface{}) bool {
	if err := shared.DecodeJSON(r, v); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, "Invalid request format")
		return false
	}
	if err := shared.ValidateRequest(v); err != nil {
		shared.RespondWithError(w, r, http.StatusBadRequest, SanitizeValidationError(err))
		return false
	}
	return true
}

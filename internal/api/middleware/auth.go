package middleware

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/sprintsync/sprintsync-api/internal/api/shared"
	"github.com/sprintsync/sprintsync-api/internal/service/auth"
	"github.com/sprintsync/sprintsync-api/internal/service/authz"
	"github.com/sprintsync/sprintsync-api/internal/store"
)

// AuthMiddleware provides cookie-based session authentication.
type AuthMiddleware struct {
	jwtService auth.JWTService
	users      store.UserStore
}

// NewAuthMiddleware creates a new AuthMiddleware with the given
// dependencies.
func NewAuthMiddleware(jwtService auth.JWTService, users store.UserStore) *AuthMiddleware {
	return &AuthMiddleware{
		jwtService: jwtService,
		users:      users,
	}
}

// Authenticate validates the session cookie and installs the caller's
// identity in the request context. The user is re-read from the store
// so tokens for deleted users are rejected and the role flag is always
// current, not the claims snapshot.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		cookie, err := r.Cookie(auth.SessionCookieName)
		if err != nil || cookie.Value == "" {
			shared.RespondWithError(w, r, http.StatusUnauthorized, "Authentication required")
			return
		}

		claims, err := m.jwtService.ValidateToken(r.Context(), cookie.Value)
		if err != nil {
			switch {
			case errors.Is(err, auth.ErrExpiredToken):
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Token expired")
			case errors.Is(err, auth.ErrInvalidToken), errors.Is(err, auth.ErrTokenNotYetValid):
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid token")
			default:
				slog.Error("failed to validate session token", "error", err)
				shared.RespondWithError(w, r, http.StatusInternalServerError, "Authentication error")
			}
			return
		}

		user, err := m.users.GetByID(r.Context(), claims.UserID)
		if err != nil {
			if errors.Is(err, store.ErrUserNotFound) {
				shared.RespondWithError(w, r, http.StatusUnauthorized, "Invalid token")
				return
			}
			slog.Error("failed to resolve session user", "error", err)
			shared.RespondWithError(w, r, http.StatusInternalServerError, "Authentication error")
			return
		}

		identity := authz.Identity{
			UserID:  user.ID,
			Email:   user.Email,
			IsAdmin: user.IsAdmin,
		}
		ctx := context.WithValue(r.Context(), shared.IdentityContextKey, identity)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetIdentity extracts the caller's identity from the request context.
// Returns the identity and a boolean indicating if it was found.
func GetIdentity(r *http.Request) (authz.Identity, bool) {
	identity, ok := r.Context().Value(shared.IdentityContextKey).(authz.Identity)
	return identity, ok
}

package api

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/sprintsync/sprintsync-api/internal/api/shared"
	"github.com/sprintsync/sprintsync-api/internal/domain"
	"github.com/sprintsync/sprintsync-api/internal/service"
	"github.com/sprintsync/sprintsync-api/internal/service/auth"
	"github.com/sprintsync/sprintsync-api/internal/store"
)

// AuthHandler handles authentication-related API requests.
type AuthHandler struct {
	users         store.UserStore
	userService   *service.UserService
	jwtService    auth.JWTService
	verifier      auth.PasswordVerifier
	secureCookies bool
	logger        *slog.Logger
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
// secureCookies should be true in production so session cookies only
// travel over TLS.
func NewAuthHandler(
	users store.UserStore,
	userService *service.UserService,
	jwtService auth.JWTService,
	verifier auth.PasswordVerifier,
	secureCookies bool,
	logger *slog.Logger,
) *AuthHandler {
	if logger == nil {
		logger = slog.Default()
	}
	return &AuthHandler{
		users:         users,
		userService:   userService,
		jwtService:    jwtService,
		verifier:      verifier,
		secureCookies: secureCookies,
		logger:        logger.With(slog.String("component", "auth_handler")),
	}
}

// Register handles POST /auth/register. A successful signup starts a
// session immediately.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req RegisterRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	user, err := h.userService.Register(r.Context(), req.Email, req.Password)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to register user")
		return
	}

	if !h.startSession(w, r, user) {
		return
	}

	h.logger.Info("user registered", slog.String("user_id", user.ID.String()))
	shared.RespondWithJSON(w, r, http.StatusOK, UserResponse{User: user})
}

// Login handles POST /auth/login. Unknown email and wrong password are
// indistinguishable to the client.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req LoginRequest
	if !decodeAndValidate(w, r, &req) {
		return
	}

	user, err := h.users.GetByEmail(r.Context(), req.Email)
	if err != nil {
		if errors.Is(err, store.ErrUserNotFound) {
			HandleAPIError(w, r, auth.ErrInvalidCredentials, "")
			return
		}
		HandleAPIError(w, r, err, "Failed to authenticate user")
		return
	}

	if err := h.verifier.Compare(user.HashedPassword, req.Password); err != nil {
		HandleAPIError(w, r, auth.ErrInvalidCredentials, "")
		return
	}

	if !h.startSession(w, r, user) {
		return
	}

	h.logger.Info("user logged in", slog.String("user_id", user.ID.String()))
	shared.RespondWithJSON(w, r, http.StatusOK, UserResponse{User: user})
}

// Logout handles POST /auth/logout by clearing the session cookie.
func (h *AuthHandler) Logout(w http.ResponseWriter, r *http.Request) {
	http.SetCookie(w, auth.ClearSessionCookie(h.secureCookies))
	shared.RespondWithJSON(w, r, http.StatusOK, MessageResponse{Message: "Logged out"})
}

// Me handles GET /auth/me. The user record is re-read from the store
// so the response reflects current state, not the claims snapshot.
func (h *AuthHandler) Me(w http.ResponseWriter, r *http.Request) {
	identity, ok := requireIdentity(w, r)
	if !ok {
		return
	}

	user, err := h.users.GetByID(r.Context(), identity.UserID)
	if err != nil {
		HandleAPIError(w, r, err, "Failed to load user")
		return
	}

	shared.RespondWithJSON(w, r, http.StatusOK, UserResponse{User: user})
}

// startSession issues a session token for the user and sets the
// session cookie. Writes an error response and reports false on
// failure.
func (h *AuthHandler) startSession(w http.ResponseWriter, r *http.Request, user *domain.User) bool {
	token, err := h.jwtService.GenerateToken(r.Context(), user.ID, user.Email, user.IsAdmin)
	if err != nil {
		h.logger.Error("failed to generate session token",
			slog.String("error", err.Error()),
			slog.String("user_id", user.ID.String()))
		shared.RespondWithError(w, r, http.StatusInternalServerError, "Failed to generate authentication token")
		return false
	}

	http.SetCookie(w, auth.NewSessionCookie(token, h.secureCookies))
	return true
}

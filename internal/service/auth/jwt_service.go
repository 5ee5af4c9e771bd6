// Package auth provides session token and password services.
package auth

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// JWTService defines operations for managing session tokens.
type JWTService interface {
	// GenerateToken creates a signed JWT carrying the user's identity
	// (ID, email, role flag).
	// Returns the token string or an error if signing fails.
	GenerateToken(ctx context.Context, userID uuid.UUID, email string, isAdmin bool) (string, error)

	// ValidateToken validates the provided token string and extracts
	// the claims. Returns an error if validation fails (expired,
	// invalid signature, etc.).
	ValidateToken(ctx context.Context, tokenString string) (*Claims, error)
}

// Claims is the identity payload carried by session tokens.
type Claims struct {
	// UserID is the unique identifier of the user the token was issued for.
	UserID uuid.UUID `json:"uid"`

	// Email is the user's login handle at issue time.
	Email string `json:"email"`

	// IsAdmin is the user's role flag at issue time.
	IsAdmin bool `json:"admin"`

	// Standard registered JWT claims
	Subject   string    `json:"sub,omitempty"`
	IssuedAt  time.Time `json:"iat,omitempty"`
	ExpiresAt time.Time `json:"exp,omitempty"`
	ID        string    `json:"jti,omitempty"`
}

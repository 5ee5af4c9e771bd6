package domain

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// Common validation errors for User. All wrap ErrValidation so
// callers can classify them with errors.Is.
var (
	ErrEmptyUserID         = fmt.Errorf("%w: user ID cannot be empty", ErrValidation)
	ErrEmptyEmail          = fmt.Errorf("%w: email cannot be empty", ErrValidation)
	ErrPasswordTooShort    = fmt.Errorf("%w: password must be at least 6 characters long", ErrValidation)
	ErrPasswordTooLong     = fmt.Errorf("%w: password must be at most 72 characters long", ErrValidation)
	ErrEmptyHashedPassword = fmt.Errorf("%w: hashed password cannot be empty", ErrValidation)
)

// Password length bounds. The upper bound is bcrypt's practical limit.
const (
	MinPasswordLength = 6
	MaxPasswordLength = 72
)

// User represents a registered SprintSync user. The hashed password is
// owned by the auth layer and never serialized.
type User struct {
	ID             uuid.UUID `json:"id"`
	Email          string    `json:"email"`
	HashedPassword string    `json:"-"`
	IsAdmin        bool      `json:"isAdmin"`
	TaskCount      int       `json:"taskCount,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

// NewUser creates a User with the given email, hashed password, and
// role flag. It generates the ID and sets the timestamps.
// Returns an error if validation fails.
func NewUser(email, hashedPassword string, isAdmin bool) (*User, error) {
	now := time.Now().UTC()
	user := &User{
		ID:             uuid.New(),
		Email:          strings.ToLower(strings.TrimSpace(email)),
		HashedPassword: hashedPassword,
		IsAdmin:        isAdmin,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := user.Validate(); err != nil {
		return nil, err
	}

	return user, nil
}

// Validate checks if the User has valid data.
// Returns an error if any field fails validation.
func (u *User) Validate() error {
	if u.ID == uuid.Nil {
		return ErrEmptyUserID
	}

	if u.Email == "" {
		return ErrEmptyEmail
	}

	if !ValidateEmailFormat(u.Email) {
		return ErrInvalidEmail
	}

	if u.HashedPassword == "" {
		return ErrEmptyHashedPassword
	}

	return nil
}

// ValidatePassword checks a plaintext password against the length
// bounds before hashing.
func ValidatePassword(password string) error {
	if len(password) < MinPasswordLength {
		return ErrPasswordTooShort
	}
	if len(password) > MaxPasswordLength {
		return ErrPasswordTooLong
	}
	return nil
}

// ValidateEmailFormat performs basic validation of email format.
// Returns true if the email appears to be in a valid format.
func ValidateEmailFormat(email string) bool {
	atIndex := strings.Index(email, "@")
	if atIndex <= 0 || atIndex == len(email)-1 {
		return false
	}

	// Domain must contain a dot that is neither first nor last.
	domain := email[atIndex+1:]
	dotIndex := strings.Index(domain, ".")
	if dotIndex <= 0 || dotIndex == len(domain)-1 {
		return false
	}

	return true
}

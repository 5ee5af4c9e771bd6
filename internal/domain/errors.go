// Package domain defines the core business entities and errors.
package domain

import "errors"

// Common domain errors used across the application.
var (
	// ErrValidation is returned when a domain entity fails validation.
	// This is often wrapped with a more specific error message.
	ErrValidation = errors.New("validation failed")

	// ErrInvalidID is returned when an ID is malformed or invalid.
	ErrInvalidID = errors.New("invalid ID")

	// ErrInvalidEmail is returned when an email address is malformed.
	ErrInvalidEmail = errors.New("invalid email format")

	// ErrInvalidTaskStatus is returned when a task status is not one of
	// the enumerated values.
	ErrInvalidTaskStatus = errors.New("invalid task status")

	// ErrUnauthenticated is returned when no valid identity accompanies
	// a protected operation.
	ErrUnauthenticated = errors.New("authentication required")

	// ErrForbidden is returned when an authenticated caller is not
	// permitted to perform an operation.
	ErrForbidden = errors.New("operation not permitted")

	// ErrSelfDelete is returned when an admin attempts to delete their
	// own account.
	ErrSelfDelete = errors.New("cannot delete own account")
)

// ValidationError carries a per-field message so handlers can report
// which field was rejected.
type ValidationError struct {
	Field   string
	Message string
	Err     error
}

// Error implements the error interface.
func (e *ValidationError) Error() string {
	return e.Field + " " + e.Message
}

// Unwrap returns the wrapped sentinel to support errors.Is.
func (e *ValidationError) Unwrap() error {
	return e.Err
}

// NewValidationError creates a ValidationError for the given field.
// The wrapped error defaults to ErrValidation when nil.
func NewValidationError(field, message string, err error) *ValidationError {
	if err == nil {
		err = ErrValidation
	}
	return &ValidationError{Field: field, Message: message, Err: err}
}

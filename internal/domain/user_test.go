package domain

import (
	"strings"
	"testing"

	"github.com/google/uuid"
)

func TestNewUser(t *testing.T) {
	t.Parallel()
	validEmail := "test@example.com"
	validHash := "hashedpassword123"

	user, err := NewUser(validEmail, validHash, false)

	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if user.ID == uuid.Nil {
		t.Error("Expected non-nil UUID, got nil UUID")
	}

	if user.Email != validEmail {
		t.Errorf("Expected email %s, got %s", validEmail, user.Email)
	}

	if user.IsAdmin {
		t.Error("Expected non-admin user")
	}

	if user.CreatedAt.IsZero() {
		t.Error("Expected non-zero CreatedAt time")
	}

	// Admin flag is carried through
	admin, err := NewUser(validEmail, validHash, true)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}
	if !admin.IsAdmin {
		t.Error("Expected admin user")
	}

	// Invalid inputs
	_, err = NewUser("", validHash, false)
	if err != ErrEmptyEmail {
		t.Errorf("Expected error %v, got %v", ErrEmptyEmail, err)
	}

	_, err = NewUser("invalidemail", validHash, false)
	if err != ErrInvalidEmail {
		t.Errorf("Expected error %v, got %v", ErrInvalidEmail, err)
	}

	_, err = NewUser(validEmail, "", false)
	if err != ErrEmptyHashedPassword {
		t.Errorf("Expected error %v, got %v", ErrEmptyHashedPassword, err)
	}
}

func TestNewUserNormalizesEmail(t *testing.T) {
	t.Parallel()

	user, err := NewUser("  Alice@Example.COM ", "hash", false)
	if err != nil {
		t.Fatalf("Expected no error, got %v", err)
	}

	if user.Email != "alice@example.com" {
		t.Errorf("Expected normalized email alice@example.com, got %s", user.Email)
	}
}

func TestValidatePassword(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		password string
		wantErr  error
	}{
		{"minimum length", strings.Repeat("a", MinPasswordLength), nil},
		{"maximum length", strings.Repeat("a", MaxPasswordLength), nil},
		{"too short", strings.Repeat("a", MinPasswordLength-1), ErrPasswordTooShort},
		{"too long", strings.Repeat("a", MaxPasswordLength+1), ErrPasswordTooLong},
		{"empty", "", ErrPasswordTooShort},
	}

	for _, tc := range tests {
		if err := ValidatePassword(tc.password); err != tc.wantErr {
			t.Errorf("%s: expected error %v, got %v", tc.name, tc.wantErr, err)
		}
	}
}

func TestValidateEmailFormat(t *testing.T) {
	t.Parallel()

	valid := []string{"a@b.co", "user.name@example.com", "x@sub.domain.org"}
	for _, email := range valid {
		if !ValidateEmailFormat(email) {
			t.Errorf("Expected %q to be valid", email)
		}
	}

	invalid := []string{"", "plain", "@example.com", "user@", "user@nodot", "user@.com", "user@domain."}
	for _, email := range invalid {
		if ValidateEmailFormat(email) {
			t.Errorf("Expected %q to be invalid", email)
		}
	}
}

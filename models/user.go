package models

import (
	"context"
	"strings"
)

// User represents a registered storefront account. The password is stored
// in plaintext on purpose: this service is a QA fixture, not a product.
type User struct {
	Email    string `json:"email"`
	Password string `json:"-"`
}

// UserRepository manages user credential records keyed by normalized email.
type UserRepository interface {
	// Create inserts a new user. It fails with a conflict error when the
	// normalized email is already registered.
	Create(ctx context.Context, user *User) error

	// GetByEmail retrieves a user by normalized email.
	GetByEmail(ctx context.Context, email string) (User, error)

	// UpdatePassword overwrites the stored password in place.
	UpdatePassword(ctx context.Context, email, password string) error
}

// NormalizeEmail lowercases and trims an email so lookups are
// case/whitespace insensitive.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

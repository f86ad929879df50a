package identity

import (
	"context"

	"github.com/google/uuid"
)

// UserRepository defines the persistence contract for users
type UserRepository interface {
	// Create persists a new user
	Create(ctx context.Context, user *User) error

	// FindByID finds a user by ID.
	// Returns shared.ErrNotFound if the user does not exist.
	FindByID(ctx context.Context, id uuid.UUID) (*User, error)

	// FindByEmail finds a user by email (case-insensitive).
	// Returns shared.ErrNotFound if the user does not exist.
	FindByEmail(ctx context.Context, email string) (*User, error)

	// ExistsByEmail checks if a user with the given email already exists
	ExistsByEmail(ctx context.Context, email string) (bool, error)
}

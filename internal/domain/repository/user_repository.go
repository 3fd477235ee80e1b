// Package repository defines the interfaces for the persistence layer.
// These interfaces act as a contract between the domain/application layers and the infrastructure layer.
package repository

import (
	"context"
	"errors"

	"housekeep/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrUserNotFound is a domain-specific error returned when a user is not found.
var ErrUserNotFound = errors.New("user not found")

// UserRepository defines the standard operations for user persistence.
// The application layer will depend on this interface, not the concrete implementation.
type UserRepository interface {
	// FindByID retrieves a single user by their unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.User, error)

	// FindByPhone retrieves a single user by their E.164 phone number.
	// Phone is the strong natural key: at most one user per non-null phone.
	FindByPhone(ctx context.Context, phoneE164 string) (*entity.User, error)

	// FindByDisplayName retrieves a single user by their display name.
	// Display name is a weaker secondary key and is not unique.
	FindByDisplayName(ctx context.Context, displayName string) (*entity.User, error)

	// Create persists a new user entity to the storage.
	Create(ctx context.Context, user *entity.User) error
}

package repository

import (
	"context"
	"errors"

	"housekeep/internal/domain/entity"

	"github.com/google/uuid"
)

// ErrHomeNotFound is a domain-specific error returned when a home is not found.
var ErrHomeNotFound = errors.New("home not found")

// HomeRepository defines the standard operations for home persistence.
type HomeRepository interface {
	// FindByID retrieves a single home by its unique ID.
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Home, error)

	// FindByUserAndAddress retrieves the home for an exact (userID, addressText)
	// pair. Matching is exact-string: differently formatted strings for the same
	// physical address are distinct homes.
	FindByUserAndAddress(ctx context.Context, userID uuid.UUID, addressText string) (*entity.Home, error)

	// FindByUser retrieves all homes owned by a user.
	FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Home, error)

	// FindWithCoordinates retrieves all homes that have both latitude and
	// longitude set. Used by the alert poller.
	FindWithCoordinates(ctx context.Context) ([]*entity.Home, error)

	// Create persists a new home entity to the storage. A foreign-key violation
	// on the owning user is surfaced as an integrity error, not masked.
	Create(ctx context.Context, home *entity.Home) error
}

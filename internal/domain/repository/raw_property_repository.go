package repository

import (
	"context"

	"housekeep/internal/domain/entity"

	"github.com/google/uuid"
)

// RawPropertyRepository defines the append-only archive of provider payloads.
// No update or delete operations are exposed: archival is write-once.
type RawPropertyRepository interface {
	// Archive inserts an immutable raw payload record.
	Archive(ctx context.Context, raw *entity.RawProperty) error

	// FindByHome retrieves all archived payloads linked to a home.
	FindByHome(ctx context.Context, homeID uuid.UUID) ([]*entity.RawProperty, error)
}

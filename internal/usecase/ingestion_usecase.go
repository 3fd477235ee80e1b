package usecase

import (
	"context"

	"housekeep/internal/domain/entity"

	"github.com/google/uuid"
)

// IngestionUsecase defines the interface for property ingestion operations.
type IngestionUsecase interface {
	// IngestPayload normalizes a provider payload into a home for the user,
	// archiving the raw payload alongside. Only the first property document in
	// the payload is mapped; an empty document list is rejected.
	IngestPayload(ctx context.Context, input *IngestPayloadInput) (*IngestOutput, error)

	// IngestAddress fetches the property payload for an address from the
	// configured provider and runs IngestPayload on the result.
	IngestAddress(ctx context.Context, input *IngestAddressInput) (*IngestOutput, error)

	// ListHomes returns all homes owned by a user.
	ListHomes(ctx context.Context, userID uuid.UUID) ([]*entity.Home, error)
}

// --- Input DTOs ---

// IngestPayloadInput defines the data required to ingest a raw provider payload.
// StoreRaw controls archival of the verbatim payload; callers normally leave
// it on and only disable it for bulk backfills that already hold the source.
type IngestPayloadInput struct {
	UserID   uuid.UUID
	Source   string
	Raw      []byte
	StoreRaw bool
}

// IngestAddressInput defines the data required to ingest by address lookup.
type IngestAddressInput struct {
	UserID   uuid.UUID
	Address1 string
	Address2 string
	StoreRaw bool
}

// --- Output DTOs ---

// IngestOutput reports the home an ingestion resolved to.
// Created is false when the (user, address) pair already had a home.
type IngestOutput struct {
	HomeID  uuid.UUID `json:"home_id"`
	Created bool      `json:"created"`
}

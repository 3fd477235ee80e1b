// Package usecase contains the application-specific business rules.
package usecase

import (
	"context"

	"housekeep/internal/domain/entity"
)

// IdentityUsecase defines the interface for user identity resolution.
type IdentityUsecase interface {
	// ResolveOrCreateUser finds the user by phone first, then by display name,
	// and creates a new user when neither matches. At least one of the two
	// identifiers must be provided.
	ResolveOrCreateUser(ctx context.Context, input *ResolveUserInput) (*entity.User, error)
}

// --- Input DTOs ---

// ResolveUserInput defines the identifiers used to resolve a user.
type ResolveUserInput struct {
	DisplayName string  `json:"display_name"`
	PhoneE164   *string `json:"phone_e164,omitempty"`
}

// Package entity contains the core business objects of the project,
// each representing a unique, identifiable concept within the domain.
package entity

import (
	"time"

	"github.com/google/uuid"
)

// User is the owning identity for homes in the system.
// Identity is resolved by phone number first, then by display name;
// a non-null phone is the strong natural key.
type User struct {
	ID          uuid.UUID // The Global Unique Identifier (GUID) for the user.
	DisplayName string    // The user's display name; a weaker secondary identity key.
	PhoneE164   *string   // The user's phone number in E.164 form. Nil when unknown.
	CreatedAt   time.Time // Timestamp of when this user account was created.
}

package entity

import (
	"time"

	"github.com/google/uuid"
)

// RawProperty is an immutable archival record of an original provider payload.
// One row is written per ingestion call, even when the mapped home is reused,
// so normalized fields can be re-derived later if the mapping logic changes.
// HomeID is nullable: a payload may be archived before a home exists.
type RawProperty struct {
	ID        uuid.UUID  // The Global Unique Identifier (GUID) for the archive row.
	HomeID    *uuid.UUID // The home this payload produced, if any.
	Source    string     // Provider tag, e.g. "attom".
	RawJSON   []byte     // The verbatim, unparsed provider payload.
	CreatedAt time.Time  // Timestamp of when this payload was archived.
}

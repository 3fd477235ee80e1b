package entity

import (
	"time"

	"github.com/google/uuid"
)

// Alert is a weather alert recorded for a home's location.
// Alerts are produced by the periodic poller, not by the ingestion pipeline;
// they share the same persistence layer.
type Alert struct {
	ID          uuid.UUID  // The Global Unique Identifier (GUID) for the alert.
	HomeID      uuid.UUID  // The home this alert applies to.
	Source      string     // Provider tag, e.g. "noaa".
	ExternalRef string     // Provider-assigned alert identifier, used for dedup.
	Event       string     // Alert event name, e.g. "Freeze Warning".
	Severity    string     // Provider severity label.
	Headline    string     // Human-readable alert headline.
	Description string     // Full alert description text.
	Effective   *time.Time // When the alert takes effect. Nil when unknown.
	Expires     *time.Time // When the alert expires. Nil when unknown.
	CreatedAt   time.Time  // Timestamp of when this alert was recorded.
}

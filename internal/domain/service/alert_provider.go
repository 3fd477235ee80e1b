package service

import (
	"context"
	"time"
)

// ProviderAlert is a weather alert as returned by the external alert API,
// before it is attached to a home.
type ProviderAlert struct {
	ExternalRef string
	Event       string
	Severity    string
	Headline    string
	Description string
	Effective   *time.Time
	Expires     *time.Time
}

// AlertProvider is the external weather-alert API collaborator.
type AlertProvider interface {
	// Source returns the provider tag recorded on alerts, e.g. "noaa".
	Source() string

	// LatestAlert fetches the most recent alert for a coordinate pair.
	// Returns (nil, nil) when no alert is active for the location.
	LatestAlert(ctx context.Context, lat, lon float64) (*ProviderAlert, error)
}

// Package service defines interfaces for external collaborators.
// Concrete implementations live in the infrastructure layer.
package service

import "context"

// PropertyProvider is the external property-detail API collaborator.
// Transport, timeout, and retry concerns belong to the implementation;
// the pipeline treats any failure or empty result as "no data".
type PropertyProvider interface {
	// Source returns the provider tag recorded on archived payloads, e.g. "attom".
	Source() string

	// FetchByAddress fetches the property-detail document for an address pair
	// (street line and city/state line) and returns the verbatim response body.
	FetchByAddress(ctx context.Context, address1, address2 string) ([]byte, error)
}

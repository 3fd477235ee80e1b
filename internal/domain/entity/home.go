package entity

import (
	"strings"

	"github.com/google/uuid"
)

// BuildingType is the closed classification set for a home.
// Provider property classes outside the set collapse to BuildingTypeOther.
type BuildingType string

const (
	BuildingTypeApartment BuildingType = "apartment"
	BuildingTypeCondo     BuildingType = "condo"
	BuildingTypeHouse     BuildingType = "house"
	BuildingTypeTownhome  BuildingType = "townhome"
	BuildingTypeOther     BuildingType = "other"
)

// ParseBuildingType matches a provider property-class string against the
// closed set, case-insensitively. Unrecognized or empty input maps to "other".
func ParseBuildingType(propClass string) BuildingType {
	switch BuildingType(strings.ToLower(strings.TrimSpace(propClass))) {
	case BuildingTypeApartment:
		return BuildingTypeApartment
	case BuildingTypeCondo:
		return BuildingTypeCondo
	case BuildingTypeHouse:
		return BuildingTypeHouse
	case BuildingTypeTownhome:
		return BuildingTypeTownhome
	default:
		return BuildingTypeOther
	}
}

// Home is one normalized property record belonging to exactly one User.
// A home is unique per (UserID, AddressText); re-ingesting the same address
// for the same user resolves to the existing row.
//
// CreatedAt/UpdatedAt carry the provider's vintage publication date: the
// normalized ISO-8601 value when it parses, the verbatim provider string when
// it does not. UpdatedAt is set at creation only; re-ingestion never rewrites
// stored fields.
type Home struct {
	ID           uuid.UUID    // The Global Unique Identifier (GUID) for the home.
	UserID       uuid.UUID    // The owning user. Immutable after creation.
	AddressText  string       // Canonical one-line address. Required.
	Latitude     *float64     // Geographic latitude. Nil when absent or unparsable.
	Longitude    *float64     // Geographic longitude. Nil when absent or unparsable.
	BuildingType BuildingType // Closed-set building classification.
	YearBuilt    *int         // Construction year. Nil when absent or unparsable.
	Bedrooms     *int         // Bedroom count. Nil when absent.
	Bathrooms    *float64     // Bathroom count. Nil when absent.
	CreatedAt    string       // Provider vintage date (normalized or verbatim).
	UpdatedAt    string       // Mirrors CreatedAt; no update path on re-ingestion.
}

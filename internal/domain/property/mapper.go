package property

import (
	"strconv"
	"strings"
	"time"

	"housekeep/internal/domain/entity"
)

// vintageLayouts are the accepted pubDate formats, tried in order.
var vintageLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// NormalizedFields is the result of mapping a property document onto home
// fields. Absent pointers mean the source value was missing or unparsable.
// Degraded lists the fields that were present but could not be parsed.
type NormalizedFields struct {
	AddressText  string
	Latitude     *float64
	Longitude    *float64
	BuildingType entity.BuildingType
	YearBuilt    *int
	Bedrooms     *int
	Bathrooms    *float64
	CreatedAt    string
	Degraded     []string
}

// MapHomeFields normalizes a single property document into home fields.
// Each field degrades independently; a bad coordinate or room count never
// affects the rest of the mapping.
func MapHomeFields(doc Document) NormalizedFields {
	fields := NormalizedFields{
		AddressText:  joinAddress(doc.Address),
		BuildingType: entity.ParseBuildingType(doc.Summary.PropClass),
	}

	fields.Latitude = parseCoordinate(doc.Location.Latitude, "latitude", &fields)
	fields.Longitude = parseCoordinate(doc.Location.Longitude, "longitude", &fields)
	fields.YearBuilt = parseIntField(doc.Summary.YearBuilt, "year_built", &fields)
	fields.Bedrooms = parseIntField(doc.Building.Rooms.Beds, "bedrooms", &fields)
	fields.Bathrooms = parseFloatField(doc.Building.Rooms.BathsTotal, "bathrooms", &fields)
	fields.CreatedAt = normalizeVintage(doc.Vintage.PubDate, &fields)

	return fields
}

// joinAddress prefers the provider's one-line form, falling back to joining
// the two address lines with a comma.
func joinAddress(addr Address) string {
	if one := strings.TrimSpace(addr.OneLine); one != "" {
		return one
	}

	parts := make([]string, 0, 2)
	if line := strings.TrimSpace(addr.Line1); line != "" {
		parts = append(parts, line)
	}
	if line := strings.TrimSpace(addr.Line2); line != "" {
		parts = append(parts, line)
	}

	return strings.Join(parts, ", ")
}

func parseCoordinate(raw Scalar, field string, fields *NormalizedFields) *float64 {
	text := strings.TrimSpace(string(raw))
	if text == "" {
		return nil
	}

	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		fields.Degraded = append(fields.Degraded, field)

		return nil
	}

	return &value
}

func parseIntField(raw Scalar, field string, fields *NormalizedFields) *int {
	text := strings.TrimSpace(string(raw))
	if text == "" {
		return nil
	}

	// Providers sometimes format integral counts as "3.0".
	value, err := strconv.ParseFloat(text, 64)
	if err != nil || value != float64(int(value)) {
		fields.Degraded = append(fields.Degraded, field)

		return nil
	}

	n := int(value)

	return &n
}

func parseFloatField(raw Scalar, field string, fields *NormalizedFields) *float64 {
	text := strings.TrimSpace(string(raw))
	if text == "" {
		return nil
	}

	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		fields.Degraded = append(fields.Degraded, field)

		return nil
	}

	return &value
}

// normalizeVintage parses the record's pubDate into ISO-8601 with a time
// component. An unparsable non-empty value is kept verbatim so the original
// vintage is never lost.
func normalizeVintage(pubDate string, fields *NormalizedFields) string {
	text := strings.TrimSpace(pubDate)
	if text == "" {
		return ""
	}

	for _, layout := range vintageLayouts {
		if ts, err := time.Parse(layout, text); err == nil {
			return ts.Format("2006-01-02T15:04:05")
		}
	}

	fields.Degraded = append(fields.Degraded, "vintage")

	return text
}

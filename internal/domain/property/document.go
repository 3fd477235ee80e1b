// Package property contains the provider payload shape and the pure
// payload-to-home field mapping.
package property

import "encoding/json"

// Scalar accepts a JSON string or number and stores its raw text.
// Providers are inconsistent about quoting numeric fields; Scalar coerces
// both forms and degrades any other JSON value to absent instead of failing
// the whole payload decode.
type Scalar string

// UnmarshalJSON implements json.Unmarshaler. It never returns an error.
func (s *Scalar) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err == nil {
		*s = Scalar(str)

		return nil
	}

	var num json.Number
	if err := json.Unmarshal(data, &num); err == nil {
		*s = Scalar(num.String())

		return nil
	}

	*s = ""

	return nil
}

// Payload is the top-level property-detail response.
// An absent or empty Property list means there is nothing to ingest.
type Payload struct {
	Property []Document `json:"property"`
}

// Document is a single property record inside a payload.
type Document struct {
	Address  Address  `json:"address"`
	Location Location `json:"location"`
	Summary  Summary  `json:"summary"`
	Building Building `json:"building"`
	Vintage  Vintage  `json:"vintage"`
}

// Address carries the provider's address fields. OneLine is preferred;
// Line1/Line2 are the fallback pair.
type Address struct {
	OneLine string `json:"oneLine"`
	Line1   string `json:"line1"`
	Line2   string `json:"line2"`
}

// Location carries the coordinate pair as provider-formatted scalars.
type Location struct {
	Latitude  Scalar `json:"latitude"`
	Longitude Scalar `json:"longitude"`
}

// Summary carries the build year and property classification.
type Summary struct {
	YearBuilt Scalar `json:"yearbuilt"`
	PropClass string `json:"propclass"`
}

// Building carries room counts.
type Building struct {
	Rooms Rooms `json:"rooms"`
}

// Rooms carries bedroom and bathroom counts as provider-formatted scalars.
type Rooms struct {
	Beds       Scalar `json:"beds"`
	BathsTotal Scalar `json:"bathstotal"`
}

// Vintage carries the record's publication date.
type Vintage struct {
	PubDate string `json:"pubDate"`
}

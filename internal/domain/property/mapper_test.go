package property

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"housekeep/internal/domain/entity"
)

func TestScalar_UnmarshalJSON(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
		want Scalar
	}{
		{name: "string", raw: `"41.85"`, want: "41.85"},
		{name: "number", raw: `41.85`, want: "41.85"},
		{name: "integer", raw: `1987`, want: "1987"},
		{name: "null", raw: `null`, want: ""},
		{name: "object", raw: `{"a":1}`, want: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var got Scalar
			require.NoError(t, json.Unmarshal([]byte(tt.raw), &got))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMapHomeFields_FullDocument(t *testing.T) {
	t.Parallel()

	doc := Document{
		Address:  Address{OneLine: "4529 Winona Ct, Denver, CO 80212"},
		Location: Location{Latitude: "39.7789", Longitude: "-105.0477"},
		Summary:  Summary{YearBuilt: "1922", PropClass: "Single Family Residence"},
		Building: Building{Rooms: Rooms{Beds: "3", BathsTotal: "2.5"}},
		Vintage:  Vintage{PubDate: "2024-05-01"},
	}

	fields := MapHomeFields(doc)

	assert.Equal(t, "4529 Winona Ct, Denver, CO 80212", fields.AddressText)
	require.NotNil(t, fields.Latitude)
	assert.InDelta(t, 39.7789, *fields.Latitude, 1e-9)
	require.NotNil(t, fields.Longitude)
	assert.InDelta(t, -105.0477, *fields.Longitude, 1e-9)
	assert.Equal(t, entity.BuildingTypeOther, fields.BuildingType)
	require.NotNil(t, fields.YearBuilt)
	assert.Equal(t, 1922, *fields.YearBuilt)
	require.NotNil(t, fields.Bedrooms)
	assert.Equal(t, 3, *fields.Bedrooms)
	require.NotNil(t, fields.Bathrooms)
	assert.InDelta(t, 2.5, *fields.Bathrooms, 1e-9)
	assert.Equal(t, "2024-05-01T00:00:00", fields.CreatedAt)
	assert.Empty(t, fields.Degraded)
}

func TestMapHomeFields_DegradesPerField(t *testing.T) {
	t.Parallel()

	doc := Document{
		Address:  Address{Line1: "100 Main St", Line2: "Springfield, IL"},
		Location: Location{Latitude: "not-a-number", Longitude: "-89.65"},
		Summary:  Summary{YearBuilt: "circa 1900", PropClass: "Condo"},
		Building: Building{Rooms: Rooms{Beds: "2.5", BathsTotal: ""}},
		Vintage:  Vintage{PubDate: "spring 2024"},
	}

	fields := MapHomeFields(doc)

	assert.Equal(t, "100 Main St, Springfield, IL", fields.AddressText)
	assert.Nil(t, fields.Latitude)
	require.NotNil(t, fields.Longitude)
	assert.InDelta(t, -89.65, *fields.Longitude, 1e-9)
	assert.Equal(t, entity.BuildingTypeCondo, fields.BuildingType)
	assert.Nil(t, fields.YearBuilt)
	assert.Nil(t, fields.Bedrooms)
	assert.Nil(t, fields.Bathrooms)
	assert.Equal(t, "spring 2024", fields.CreatedAt)
	assert.ElementsMatch(t, []string{"latitude", "year_built", "bedrooms", "vintage"}, fields.Degraded)
}

func TestMapHomeFields_MissingEverything(t *testing.T) {
	t.Parallel()

	fields := MapHomeFields(Document{})

	assert.Empty(t, fields.AddressText)
	assert.Nil(t, fields.Latitude)
	assert.Nil(t, fields.Longitude)
	assert.Equal(t, entity.BuildingTypeOther, fields.BuildingType)
	assert.Nil(t, fields.YearBuilt)
	assert.Nil(t, fields.Bedrooms)
	assert.Nil(t, fields.Bathrooms)
	assert.Empty(t, fields.CreatedAt)
	assert.Empty(t, fields.Degraded)
}

func TestNormalizeVintage_Layouts(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{name: "date only", in: "2024-05-01", want: "2024-05-01T00:00:00"},
		{name: "datetime", in: "2024-05-01T12:30:00", want: "2024-05-01T12:30:00"},
		{name: "empty", in: "", want: ""},
		{name: "verbatim fallback", in: "05/01/2024", want: "05/01/2024"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var fields NormalizedFields
			assert.Equal(t, tt.want, normalizeVintage(tt.in, &fields))
		})
	}
}

func TestPayload_Unmarshal(t *testing.T) {
	t.Parallel()

	raw := []byte(`{"property":[{"address":{"oneLine":"1 Elm St"},"location":{"latitude":40.1,"longitude":"-75.2"},"summary":{"yearbuilt":1987,"propclass":"Townhome"},"building":{"rooms":{"beds":"4","bathstotal":3}},"vintage":{"pubDate":"2023-11-12T08:00:00"}}]}`)

	var payload Payload
	require.NoError(t, json.Unmarshal(raw, &payload))
	require.Len(t, payload.Property, 1)

	fields := MapHomeFields(payload.Property[0])
	assert.Equal(t, "1 Elm St", fields.AddressText)
	require.NotNil(t, fields.Latitude)
	assert.InDelta(t, 40.1, *fields.Latitude, 1e-9)
	assert.Equal(t, entity.BuildingTypeTownhome, fields.BuildingType)
	require.NotNil(t, fields.YearBuilt)
	assert.Equal(t, 1987, *fields.YearBuilt)
	assert.Equal(t, "2023-11-12T08:00:00", fields.CreatedAt)
}

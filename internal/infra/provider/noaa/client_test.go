package noaa

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"housekeep/config"
)

func TestClient_LatestAlert(t *testing.T) {
	t.Parallel()

	const payload = `{"features":[{"properties":{
		"id":"urn:oid:2.49.0.1.840.0.abc",
		"event":"Tornado Warning",
		"severity":"Extreme",
		"headline":"Tornado Warning issued for Denver County",
		"description":"Take shelter now.",
		"effective":"2025-06-01T18:00:00Z",
		"expires":"2025-06-01T19:00:00Z"
	}}]}`

	var gotPoint, gotLimit, gotUserAgent string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPoint = r.URL.Query().Get("point")
		gotLimit = r.URL.Query().Get("limit")
		gotUserAgent = r.Header.Get("User-Agent")

		w.Header().Set("Content-Type", "application/geo+json")
		_, _ = w.Write([]byte(payload))
	}))
	defer server.Close()

	client := New(&config.NOAAConfig{
		BaseURL:   server.URL,
		UserAgent: "housekeep-test (test@example.com)",
		Timeout:   time.Second,
	})

	alert, err := client.LatestAlert(context.Background(), 39.7789, -105.0477)

	require.NoError(t, err)
	require.NotNil(t, alert)
	assert.Equal(t, "urn:oid:2.49.0.1.840.0.abc", alert.ExternalRef)
	assert.Equal(t, "Tornado Warning", alert.Event)
	assert.Equal(t, "Extreme", alert.Severity)
	assert.Equal(t, "Tornado Warning issued for Denver County", alert.Headline)
	require.NotNil(t, alert.Effective)
	assert.Equal(t, time.Date(2025, 6, 1, 18, 0, 0, 0, time.UTC), alert.Effective.UTC())
	require.NotNil(t, alert.Expires)

	assert.Equal(t, "39.7789,-105.0477", gotPoint)
	assert.Equal(t, "1", gotLimit)
	assert.Equal(t, "housekeep-test (test@example.com)", gotUserAgent)
	assert.Equal(t, "noaa", client.Source())
}

func TestClient_LatestAlert_NoActiveAlerts(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "application/geo+json")
		_, _ = w.Write([]byte(`{"features":[]}`))
	}))
	defer server.Close()

	client := New(&config.NOAAConfig{BaseURL: server.URL, Timeout: time.Second})

	alert, err := client.LatestAlert(context.Background(), 39.7789, -105.0477)

	require.NoError(t, err)
	assert.Nil(t, alert)
}

func TestClient_LatestAlert_MalformedTimestampsKeptNil(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`{"features":[{"properties":{"id":"ref-1","event":"Flood Watch","effective":"soon","expires":""}}]}`))
	}))
	defer server.Close()

	client := New(&config.NOAAConfig{BaseURL: server.URL, Timeout: time.Second})

	alert, err := client.LatestAlert(context.Background(), 40.0, -75.0)

	require.NoError(t, err)
	require.NotNil(t, alert)
	assert.Nil(t, alert.Effective)
	assert.Nil(t, alert.Expires)
}

func TestClient_LatestAlert_ServerError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := New(&config.NOAAConfig{BaseURL: server.URL, Timeout: time.Second})

	alert, err := client.LatestAlert(context.Background(), 40.0, -75.0)

	require.Error(t, err)
	assert.Nil(t, alert)
	assert.Contains(t, err.Error(), "status 503")
}

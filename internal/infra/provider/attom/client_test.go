package attom

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

func TestClient_FetchByAddress(t *testing.T) {
	t.Parallel()

	const payload = `{"property":[{"address":{"oneLine":"4529 Winona Ct, Denver, CO 80212"}}]}`

	var gotPath, gotAddress1, gotAddress2, gotAPIKey string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		gotAddress1 = r.URL.Query().Get("address1")
		gotAddress2 = r.URL.Query().Get("address2")
		gotAPIKey = r.Header.Get("apikey")

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(payload))
	}))
	defer server.Close()

	client := New(&config.AttomConfig{
		BaseURL: server.URL,
		APIKey:  "test-key",
		Timeout: time.Second,
	})

	body, err := client.FetchByAddress(context.Background(), "4529 Winona Ct", "Denver, CO 80212")

	require.NoError(t, err)
	assert.Equal(t, payload, string(body))
	assert.Equal(t, "/propertyapi/v1.0.0/property/detail", gotPath)
	assert.Equal(t, "4529 Winona Ct", gotAddress1)
	assert.Equal(t, "Denver, CO 80212", gotAddress2)
	assert.Equal(t, "test-key", gotAPIKey)
	assert.Equal(t, "attom", client.Source())
}

func TestClient_FetchByAddress_NonOKStatus(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = w.Write([]byte(`{"status":{"msg":"SuccessWithoutResult"}}`))
	}))
	defer server.Close()

	client := New(&config.AttomConfig{BaseURL: server.URL, Timeout: time.Second})

	body, err := client.FetchByAddress(context.Background(), "1 Nowhere Ln", "Nowhere, ZZ 00000")

	require.Error(t, err)
	assert.Nil(t, body)
	assert.Contains(t, err.Error(), "status 400")
}

// Package attom implements the property-detail provider against the ATTOM Data API.
package attom

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"time"

	"housekeep/config"
	"housekeep/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	defaultBaseURL = "https://api.gateway.attomdata.com"
	defaultTimeout = 15 * time.Second

	detailPath = "/propertyapi/v1.0.0/property/detail"
)

// Client fetches property-detail documents from ATTOM.
// FetchByAddress returns the response body verbatim so the caller can archive
// exactly what the provider sent.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// New is the constructor for the ATTOM client.
func New(cfg *config.AttomConfig) service.PropertyProvider {
	baseURL := defaultBaseURL
	apiKey := ""
	timeout := defaultTimeout
	if cfg != nil {
		if cfg.BaseURL != "" {
			baseURL = cfg.BaseURL
		}
		apiKey = cfg.APIKey
		if cfg.Timeout > 0 {
			timeout = cfg.Timeout
		}
	}

	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Source returns the provider tag recorded on archived payloads.
func (c *Client) Source() string {
	return "attom"
}

// FetchByAddress fetches the property-detail document for an address pair.
// ATTOM splits the address into a street line (address1) and a
// city/state/zip line (address2).
func (c *Client) FetchByAddress(ctx context.Context, address1, address2 string) ([]byte, error) {
	endpoint, err := url.Parse(c.baseURL + detailPath)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build property detail URL")
	}

	query := endpoint.Query()
	query.Set("address1", address1)
	query.Set("address2", address2)
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build property detail request")
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("apikey", c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "property detail request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read property detail response")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("property detail request returned status %d", resp.StatusCode)
	}

	return body, nil
}

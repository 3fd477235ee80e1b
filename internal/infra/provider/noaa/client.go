// Package noaa implements the weather-alert provider against the NOAA/NWS API.
package noaa

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"housekeep/config"
	"housekeep/internal/domain/service"

	"github.com/pkg/errors"
)

const (
	defaultBaseURL   = "https://api.weather.gov"
	defaultUserAgent = "housekeep (contact: ops@housekeep.example)"
	defaultTimeout   = 15 * time.Second
)

// alertsResponse mirrors the GeoJSON envelope returned by the NWS alerts endpoint.
type alertsResponse struct {
	Features []struct {
		Properties struct {
			ID          string `json:"id"`
			Event       string `json:"event"`
			Severity    string `json:"severity"`
			Headline    string `json:"headline"`
			Description string `json:"description"`
			Effective   string `json:"effective"`
			Expires     string `json:"expires"`
		} `json:"properties"`
	} `json:"features"`
}

// Client fetches active weather alerts for a coordinate from NOAA.
type Client struct {
	baseURL    string
	userAgent  string
	httpClient *http.Client
}

// New is the constructor for the NOAA client.
func New(cfg *config.NOAAConfig) service.AlertProvider {
	baseURL := defaultBaseURL
	userAgent := defaultUserAgent
	timeout := defaultTimeout
	if cfg != nil {
		if cfg.BaseURL != "" {
			baseURL = cfg.BaseURL
		}
		if cfg.UserAgent != "" {
			userAgent = cfg.UserAgent
		}
		if cfg.Timeout > 0 {
			timeout = cfg.Timeout
		}
	}

	return &Client{
		baseURL:   baseURL,
		userAgent: userAgent,
		httpClient: &http.Client{
			Timeout: timeout,
		},
	}
}

// Source returns the provider tag recorded on alerts.
func (c *Client) Source() string {
	return "noaa"
}

// LatestAlert fetches the most recent active alert for a coordinate pair.
// Returns (nil, nil) when no alert is active for the location.
func (c *Client) LatestAlert(ctx context.Context, lat, lon float64) (*service.ProviderAlert, error) {
	endpoint, err := url.Parse(c.baseURL + "/alerts")
	if err != nil {
		return nil, errors.Wrap(err, "failed to build alerts URL")
	}

	point := strconv.FormatFloat(lat, 'f', 4, 64) + "," + strconv.FormatFloat(lon, 'f', 4, 64)
	query := endpoint.Query()
	query.Set("point", point)
	query.Set("limit", "1")
	endpoint.RawQuery = query.Encode()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint.String(), nil)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build alerts request")
	}
	// NWS rejects requests without a contact User-Agent.
	req.Header.Set("User-Agent", c.userAgent)
	req.Header.Set("Accept", "application/geo+json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "alerts request failed")
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read alerts response")
	}

	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("alerts request returned status %d", resp.StatusCode)
	}

	var parsed alertsResponse
	if err := json.Unmarshal(body, &parsed); err != nil {
		return nil, errors.Wrap(err, "failed to decode alerts response")
	}

	if len(parsed.Features) == 0 {
		return nil, nil
	}

	props := parsed.Features[0].Properties
	if strings.TrimSpace(props.ID) == "" {
		return nil, nil
	}

	return &service.ProviderAlert{
		ExternalRef: props.ID,
		Event:       props.Event,
		Severity:    props.Severity,
		Headline:    props.Headline,
		Description: props.Description,
		Effective:   parseAlertTime(props.Effective),
		Expires:     parseAlertTime(props.Expires),
	}, nil
}

// parseAlertTime parses an RFC 3339 timestamp, returning nil when absent or malformed.
func parseAlertTime(raw string) *time.Time {
	if strings.TrimSpace(raw) == "" {
		return nil
	}

	ts, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return nil
	}

	return &ts
}

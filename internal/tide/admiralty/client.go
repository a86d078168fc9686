// Package admiralty implements the tide provider against the UK Admiralty
// Tidal API.
package admiralty

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/shorecast/shorecast/internal/provider/resilience"
	"github.com/shorecast/shorecast/internal/tide"
)

const (
	// ProviderName identifies this tide provider.
	ProviderName = "admiralty"

	// DefaultBaseURL is the Admiralty UK Tidal API base URL.
	DefaultBaseURL = "https://admiraltyapi.azure-api.net/uktidalapi"
)

// ClientConfig holds configuration for the Admiralty client.
type ClientConfig struct {
	// APIKey is the Admiralty subscription key (required).
	APIKey string

	// BaseURL is the API base URL (optional, defaults to the Admiralty API).
	BaseURL string

	// HTTPClient is the HTTP client to use (optional).
	// If nil, uses a resilient client with defaults.
	HTTPClient *resilience.Client

	// Logger for client operations.
	Logger zerolog.Logger
}

// Client is an Admiralty UK Tidal API client.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *resilience.Client
	logger     zerolog.Logger
}

// NewClient creates a new Admiralty client.
func NewClient(cfg ClientConfig) *Client {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = resilience.NewClient(resilience.DefaultClientConfig(ProviderName))
	}

	return &Client{
		apiKey:     cfg.APIKey,
		baseURL:    baseURL,
		httpClient: httpClient,
		logger:     cfg.Logger,
	}
}

// Name returns the provider name.
func (c *Client) Name() string {
	return ProviderName
}

// TidalEvents fetches predicted high and low water events for a station.
func (c *Client) TidalEvents(ctx context.Context, stationID string, durationDays int) ([]tide.Event, error) {
	url := fmt.Sprintf("%s/api/V1/Stations/%s/TidalEvents?duration=%d",
		c.baseURL, stationID, durationDays)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return nil, fmt.Errorf("creating request: %w", err)
	}

	req.Header.Set("Ocp-Apim-Subscription-Key", c.apiKey)
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	var events []tidalEvent
	if err := json.NewDecoder(resp.Body).Decode(&events); err != nil {
		return nil, fmt.Errorf("decoding response: %w", err)
	}

	if len(events) == 0 {
		return nil, tide.ErrNoEvents
	}

	return c.toEvents(events), nil
}

// toEvents converts Admiralty events to domain events, skipping entries
// with unparseable timestamps or unknown event types.
func (c *Client) toEvents(events []tidalEvent) []tide.Event {
	out := make([]tide.Event, 0, len(events))
	for _, e := range events {
		kind, ok := eventKind(e.EventType)
		if !ok {
			continue
		}

		at, err := parseEventTime(e.DateTime)
		if err != nil {
			c.logger.Warn().
				Str("date_time", e.DateTime).
				Msg("skipping tidal event with bad timestamp")
			continue
		}

		out = append(out, tide.Event{
			Kind:   kind,
			Time:   at,
			Height: e.Height,
		})
	}
	return out
}

func eventKind(eventType string) (tide.EventKind, bool) {
	lower := strings.ToLower(eventType)
	switch {
	case strings.Contains(lower, "high"):
		return tide.HighWater, true
	case strings.Contains(lower, "low"):
		return tide.LowWater, true
	}
	return "", false
}

// parseEventTime handles the fractional-second UTC timestamps the API
// returns, with and without an explicit zone.
func parseEventTime(s string) (time.Time, error) {
	for _, layout := range []string{time.RFC3339, "2006-01-02T15:04:05.999999999", "2006-01-02T15:04:05"} {
		if t, err := time.Parse(layout, s); err == nil {
			return t.UTC(), nil
		}
	}
	return time.Time{}, fmt.Errorf("unrecognised timestamp %q", s)
}

// Admiralty API response structures.

type tidalEvent struct {
	EventType string  `json:"EventType"`
	DateTime  string  `json:"DateTime"`
	Height    float64 `json:"Height"`
}

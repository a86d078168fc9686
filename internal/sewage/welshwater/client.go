// Package welshwater reads Dŵr Cymru's public storm-overflow spill feed and
// matches discharges to beaches by proximity.
package welshwater

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/shorecast/shorecast/internal/beach"
	"github.com/shorecast/shorecast/internal/provider/resilience"
	"github.com/shorecast/shorecast/internal/sewage"
)

// StrategyName identifies this feed in logs and health output.
const StrategyName = "welsh-water"

// DefaultBaseURL is the ArcGIS host serving the spill feed.
const DefaultBaseURL = "https://services3.arcgis.com"

const spillFeedPath = "/KLNF7YxtENPLYVey/arcgis/rest/services/Spill_Prod__view/FeatureServer/0/query?where=1%3D1&outFields=*&f=json&returnGeometry=false"

const sourceLabel = "Welsh Water"

// maxOutfallDistanceKm bounds how far an outfall can be from a beach and
// still count against it.
const maxOutfallDistanceKm = 5.0

// StrategyConfig configures a welsh-water Strategy.
type StrategyConfig struct {
	BaseURL    string
	HTTPClient *resilience.Client
	Logger     zerolog.Logger
}

// Strategy implements sewage.Strategy against the spill feed.
type Strategy struct {
	baseURL    string
	httpClient *resilience.Client
	logger     zerolog.Logger
}

// NewStrategy creates a welsh-water strategy.
func NewStrategy(cfg StrategyConfig) *Strategy {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = resilience.NewClient(resilience.DefaultClientConfig(StrategyName))
	}

	return &Strategy{
		baseURL:    baseURL,
		httpClient: httpClient,
		logger:     cfg.Logger,
	}
}

// Name implements sewage.Strategy.
func (s *Strategy) Name() string { return StrategyName }

type spillFeedResponse struct {
	Features []spillFeature `json:"features"`
}

type spillFeature struct {
	Attributes spillAttributes `json:"attributes"`
}

type spillAttributes struct {
	Status   string          `json:"status"`
	StopTime json.RawMessage `json:"stop_date_time_discharge"`
	Lon      float64         `json:"X"`
	Lat      float64         `json:"Y"`
}

// Report implements sewage.Strategy. It finds the nearest outfall within
// range of the beach: a discharging outfall reports active, a stopped one
// is assessed against the beach's clearance window, and no outfall in range
// means clear.
func (s *Strategy) Report(ctx context.Context, b beach.Beach, now time.Time) (sewage.Report, error) {
	feed, err := s.fetchFeed(ctx)
	if err != nil {
		return sewage.Report{}, err
	}

	nearest, distance := nearestOutfall(feed.Features, b)
	if nearest == nil {
		return sewage.Report{
			Status: sewage.StatusClear,
			Icon:   sewage.StatusClear.Icon(),
			Source: sourceLabel,
		}, nil
	}

	s.logger.Debug().
		Str("beach", b.Slug).
		Str("status", nearest.Attributes.Status).
		Float64("distanceKm", distance).
		Msg("nearest outfall matched")

	if isDischarging(nearest.Attributes.Status) {
		return sewage.Report{
			Status: sewage.StatusActive,
			Icon:   sewage.StatusActive.Icon(),
			Source: sourceLabel,
		}, nil
	}

	stopped, ok := parseStopTime(nearest.Attributes.StopTime)
	if !ok || stopped.After(now) {
		return sewage.Report{
			Status: sewage.StatusClear,
			Icon:   sewage.StatusClear.Icon(),
			Source: sourceLabel,
		}, nil
	}

	hoursSince := int(now.Sub(stopped).Hours())
	return sewage.AssessStopped(b.OverflowTier, hoursSince, sourceLabel), nil
}

func (s *Strategy) fetchFeed(ctx context.Context) (*spillFeedResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+spillFeedPath, nil)
	if err != nil {
		return nil, fmt.Errorf("creating spill feed request: %w", err)
	}

	resp, err := s.httpClient.DoWithContext(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("fetching spill feed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("spill feed returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading spill feed response: %w", err)
	}

	var feed spillFeedResponse
	if err := json.Unmarshal(body, &feed); err != nil {
		return nil, fmt.Errorf("parsing spill feed response: %w", err)
	}
	return &feed, nil
}

func nearestOutfall(features []spillFeature, b beach.Beach) (*spillFeature, float64) {
	var nearest *spillFeature
	nearestDistance := maxOutfallDistanceKm

	for i := range features {
		attrs := features[i].Attributes
		if attrs.Lat == 0 && attrs.Lon == 0 {
			continue
		}
		d := sewage.HaversineKm(b.Lat, b.Lon, attrs.Lat, attrs.Lon)
		if d <= nearestDistance {
			nearest = &features[i]
			nearestDistance = d
		}
	}
	return nearest, nearestDistance
}

func isDischarging(status string) bool {
	lowered := strings.ToLower(status)
	for _, token := range []string{"operating", "discharging", "spilling"} {
		if strings.Contains(lowered, token) {
			return true
		}
	}
	return false
}

// parseStopTime handles both representations the feed has been observed to
// use: epoch milliseconds and RFC 3339 strings.
func parseStopTime(raw json.RawMessage) (time.Time, bool) {
	if len(raw) == 0 || string(raw) == "null" {
		return time.Time{}, false
	}

	if millis, err := strconv.ParseInt(string(raw), 10, 64); err == nil {
		if millis <= 0 {
			return time.Time{}, false
		}
		return time.UnixMilli(millis).UTC(), true
	}

	var text string
	if err := json.Unmarshal(raw, &text); err != nil || text == "" {
		return time.Time{}, false
	}
	parsed, err := time.Parse(time.RFC3339, text)
	if err != nil {
		return time.Time{}, false
	}
	return parsed.UTC(), true
}

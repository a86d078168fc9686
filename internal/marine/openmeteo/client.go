// Package openmeteo implements the marine provider against the Open-Meteo
// marine and forecast APIs. Both are keyless.
package openmeteo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/shorecast/shorecast/internal/marine"
	"github.com/shorecast/shorecast/internal/provider/resilience"
)

const (
	// ProviderName identifies this marine provider.
	ProviderName = "open-meteo"

	// DefaultMarineBaseURL is the Open-Meteo marine API base URL.
	DefaultMarineBaseURL = "https://marine-api.open-meteo.com"

	// DefaultForecastBaseURL is the Open-Meteo forecast API base URL.
	DefaultForecastBaseURL = "https://api.open-meteo.com"
)

// ClientConfig holds configuration for the Open-Meteo client.
type ClientConfig struct {
	// MarineBaseURL overrides the marine API base URL (optional).
	MarineBaseURL string

	// ForecastBaseURL overrides the forecast API base URL (optional).
	ForecastBaseURL string

	// HTTPClient is the HTTP client to use (optional).
	// If nil, uses a resilient client with defaults.
	HTTPClient *resilience.Client

	// Logger for client operations.
	Logger zerolog.Logger
}

// Client is an Open-Meteo API client combining the marine and forecast
// endpoints into one snapshot.
type Client struct {
	marineBaseURL   string
	forecastBaseURL string
	httpClient      *resilience.Client
	logger          zerolog.Logger
}

// NewClient creates a new Open-Meteo client.
func NewClient(cfg ClientConfig) *Client {
	marineBaseURL := cfg.MarineBaseURL
	if marineBaseURL == "" {
		marineBaseURL = DefaultMarineBaseURL
	}

	forecastBaseURL := cfg.ForecastBaseURL
	if forecastBaseURL == "" {
		forecastBaseURL = DefaultForecastBaseURL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = resilience.NewClient(resilience.DefaultClientConfig(ProviderName))
	}

	return &Client{
		marineBaseURL:   marineBaseURL,
		forecastBaseURL: forecastBaseURL,
		httpClient:      httpClient,
		logger:          cfg.Logger,
	}
}

// Name returns the provider name.
func (c *Client) Name() string {
	return ProviderName
}

// Snapshot fetches sea state and shore weather for the target hour. The two
// upstream endpoints are queried concurrently.
func (c *Client) Snapshot(ctx context.Context, lat, lon float64, target time.Time) (*marine.Snapshot, error) {
	utc := target.UTC()
	dateStr := utc.Format("2006-01-02")
	hour := utc.Hour()

	marineURL := fmt.Sprintf(
		"%s/v1/marine?latitude=%.4f&longitude=%.4f&hourly=wave_height,swell_wave_height,wave_period,sea_surface_temperature&start_date=%s&end_date=%s",
		c.marineBaseURL, lat, lon, dateStr, dateStr)
	forecastURL := fmt.Sprintf(
		"%s/v1/forecast?latitude=%.4f&longitude=%.4f&hourly=temperature_2m,apparent_temperature,wind_speed_10m,wind_direction_10m,uv_index,cloud_cover,precipitation,weather_code&start_date=%s&end_date=%s",
		c.forecastBaseURL, lat, lon, dateStr, dateStr)

	var marineResp marineResponse
	var forecastResp forecastResponse

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return c.getJSON(gctx, marineURL, &marineResp)
	})
	g.Go(func() error {
		return c.getJSON(gctx, forecastURL, &forecastResp)
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if len(forecastResp.Hourly.Temperature) == 0 {
		return nil, marine.ErrNoData
	}

	snapshot := &marine.Snapshot{
		SeaTemp:       at(marineResp.Hourly.SeaSurfaceTemperature, hour),
		WaveHeight:    value(marineResp.Hourly.WaveHeight, hour),
		SwellHeight:   value(marineResp.Hourly.SwellWaveHeight, hour),
		WavePeriod:    at(marineResp.Hourly.WavePeriod, hour),
		AirTemp:       at(forecastResp.Hourly.Temperature, hour),
		FeelsLike:     at(forecastResp.Hourly.ApparentTemperature, hour),
		WindSpeed:     value(forecastResp.Hourly.WindSpeed, hour),
		WindDirection: at(forecastResp.Hourly.WindDirection, hour),
		UVIndex:       value(forecastResp.Hourly.UVIndex, hour),
		CloudCover:    value(forecastResp.Hourly.CloudCover, hour),
		Precipitation: value(forecastResp.Hourly.Precipitation, hour),
		WeatherCode:   atInt(forecastResp.Hourly.WeatherCode, hour),
	}
	return snapshot, nil
}

func (c *Client) getJSON(ctx context.Context, url string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, http.NoBody)
	if err != nil {
		return fmt.Errorf("creating request: %w", err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("executing request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// at returns the hour's value as a pointer, nil when missing or null.
func at(values []*float64, hour int) *float64 {
	if hour < 0 || hour >= len(values) {
		return nil
	}
	return values[hour]
}

// value returns the hour's value, zero when missing or null.
func value(values []*float64, hour int) float64 {
	if v := at(values, hour); v != nil {
		return *v
	}
	return 0
}

func atInt(values []*int, hour int) *int {
	if hour < 0 || hour >= len(values) {
		return nil
	}
	return values[hour]
}

// Open-Meteo API response structures. Hourly arrays carry nulls for hours
// outside model coverage, hence the pointer elements.

type marineResponse struct {
	Hourly struct {
		WaveHeight            []*float64 `json:"wave_height"`
		SwellWaveHeight       []*float64 `json:"swell_wave_height"`
		WavePeriod            []*float64 `json:"wave_period"`
		SeaSurfaceTemperature []*float64 `json:"sea_surface_temperature"`
	} `json:"hourly"`
}

type forecastResponse struct {
	Hourly struct {
		Temperature         []*float64 `json:"temperature_2m"`
		ApparentTemperature []*float64 `json:"apparent_temperature"`
		WindSpeed           []*float64 `json:"wind_speed_10m"`
		WindDirection       []*float64 `json:"wind_direction_10m"`
		UVIndex             []*float64 `json:"uv_index"`
		CloudCover          []*float64 `json:"cloud_cover"`
		Precipitation       []*float64 `json:"precipitation"`
		WeatherCode         []*int     `json:"weather_code"`
	} `json:"hourly"`
}

package openmeteo

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shorecast/shorecast/internal/marine"
)

// hourly builds a 24-value array with v at the given hour and nulls
// elsewhere, mirroring sparse model coverage.
func hourly(hour int, v string) string {
	values := make([]string, 24)
	for i := range values {
		values[i] = "null"
	}
	values[hour] = v
	return "[" + strings.Join(values, ",") + "]"
}

func TestSnapshot(t *testing.T) {
	hour := 8
	target := time.Date(2025, time.June, 11, hour, 30, 0, 0, time.UTC)

	marineSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/marine", r.URL.Path)
		assert.Contains(t, r.URL.RawQuery, "start_date=2025-06-11")
		fmt.Fprintf(w, `{"hourly":{"wave_height":%s,"swell_wave_height":%s,"wave_period":%s,"sea_surface_temperature":%s}}`,
			hourly(hour, "0.8"), hourly(hour, "0.5"), hourly(hour, "7.2"), hourly(hour, "9.4"))
	}))
	defer marineSrv.Close()

	forecastSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/forecast", r.URL.Path)
		fmt.Fprintf(w, `{"hourly":{"temperature_2m":%s,"apparent_temperature":%s,"wind_speed_10m":%s,"wind_direction_10m":%s,"uv_index":%s,"cloud_cover":%s,"precipitation":%s,"weather_code":%s}}`,
			hourly(hour, "12.5"), hourly(hour, "10.1"), hourly(hour, "18"), hourly(hour, "270"),
			hourly(hour, "4"), hourly(hour, "25"), hourly(hour, "0"), hourly(hour, "2"))
	}))
	defer forecastSrv.Close()

	client := NewClient(ClientConfig{
		MarineBaseURL:   marineSrv.URL,
		ForecastBaseURL: forecastSrv.URL,
		Logger:          zerolog.Nop(),
	})

	snapshot, err := client.Snapshot(context.Background(), 51.568, -4.291, target)
	require.NoError(t, err)

	require.NotNil(t, snapshot.SeaTemp)
	assert.InDelta(t, 9.4, *snapshot.SeaTemp, 0.001)
	assert.InDelta(t, 0.8, snapshot.WaveHeight, 0.001)
	assert.InDelta(t, 0.5, snapshot.SwellHeight, 0.001)
	require.NotNil(t, snapshot.AirTemp)
	assert.InDelta(t, 12.5, *snapshot.AirTemp, 0.001)
	require.NotNil(t, snapshot.FeelsLike)
	assert.InDelta(t, 10.1, *snapshot.FeelsLike, 0.001)
	assert.InDelta(t, 18, snapshot.WindSpeed, 0.001)
	assert.InDelta(t, 25, snapshot.CloudCover, 0.001)
	require.NotNil(t, snapshot.WeatherCode)
	assert.Equal(t, 2, *snapshot.WeatherCode)
}

func TestSnapshotNullSeaTemp(t *testing.T) {
	hour := 8
	target := time.Date(2025, time.June, 11, hour, 0, 0, 0, time.UTC)

	marineSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprintf(w, `{"hourly":{"wave_height":%s,"swell_wave_height":%s,"wave_period":[],"sea_surface_temperature":%s}}`,
			hourly(hour, "0.4"), hourly(hour, "0.2"), hourly(23, "9.0"))
	}))
	defer marineSrv.Close()

	forecastSrv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprintf(w, `{"hourly":{"temperature_2m":%s,"apparent_temperature":%s,"wind_speed_10m":%s,"wind_direction_10m":%s,"uv_index":%s,"cloud_cover":%s,"precipitation":%s,"weather_code":%s}}`,
			hourly(hour, "12.5"), hourly(hour, "10.1"), hourly(hour, "18"), hourly(hour, "270"),
			hourly(hour, "4"), hourly(hour, "25"), hourly(hour, "0"), hourly(hour, "2"))
	}))
	defer forecastSrv.Close()

	client := NewClient(ClientConfig{
		MarineBaseURL:   marineSrv.URL,
		ForecastBaseURL: forecastSrv.URL,
		Logger:          zerolog.Nop(),
	})

	snapshot, err := client.Snapshot(context.Background(), 51.568, -4.291, target)
	require.NoError(t, err)

	assert.Nil(t, snapshot.SeaTemp, "null sea temp stays nil")
	assert.Nil(t, snapshot.WavePeriod, "short array stays nil")
	assert.InDelta(t, 0.4, snapshot.WaveHeight, 0.001)
}

func TestSnapshotNoForecastCoverage(t *testing.T) {
	empty := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		fmt.Fprint(w, `{"hourly":{}}`)
	}))
	defer empty.Close()

	client := NewClient(ClientConfig{
		MarineBaseURL:   empty.URL,
		ForecastBaseURL: empty.URL,
		Logger:          zerolog.Nop(),
	})

	_, err := client.Snapshot(context.Background(), 51.5, -4.2, time.Now())
	assert.ErrorIs(t, err, marine.ErrNoData)
}

func TestSnapshotUpstreamError(t *testing.T) {
	bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer bad.Close()

	client := NewClient(ClientConfig{
		MarineBaseURL:   bad.URL,
		ForecastBaseURL: bad.URL,
		Logger:          zerolog.Nop(),
	})

	_, err := client.Snapshot(context.Background(), 51.5, -4.2, time.Now())
	assert.ErrorContains(t, err, "unexpected status code: 404")
}

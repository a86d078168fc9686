// Package marine provides combined sea-state and shore weather conditions
// for a beach at a point in time.
package marine

import (
	"errors"
	"math"
)

// Predefined errors for marine operations.
var (
	// ErrProviderUnavailable is returned when conditions cannot be fetched.
	ErrProviderUnavailable = errors.New("marine provider unavailable")

	// ErrNoData is returned when the provider has no coverage for the hour.
	ErrNoData = errors.New("no marine data for location")

	// ErrInvalidCoordinates is returned for out-of-range coordinates.
	ErrInvalidCoordinates = errors.New("invalid coordinates")
)

// Snapshot is the sea state and shore weather for one beach and hour.
// Pointer fields are nil when the provider has no value; for sea surface
// temperature in particular some coves have no model coverage.
type Snapshot struct {
	SeaTemp     *float64 `json:"seaTemp"`
	WaveHeight  float64  `json:"waveHeight"`
	SwellHeight float64  `json:"swellHeight"`
	WavePeriod  *float64 `json:"wavePeriod"`

	AirTemp       *float64 `json:"airTemp"`
	FeelsLike     *float64 `json:"feelsLike"`
	WindSpeed     float64  `json:"windSpeed"`
	WindDirection *float64 `json:"windDirection"`
	UVIndex       float64  `json:"uvIndex"`
	CloudCover    float64  `json:"cloudCover"`
	Precipitation float64  `json:"precipitation"`
	WeatherCode   *int     `json:"weatherCode"`
}

// EffectiveFeelsLike returns the provider's apparent temperature when
// present, otherwise the wind-chill estimate from air temperature and wind.
// The boolean is false when air temperature is also missing.
func (s *Snapshot) EffectiveFeelsLike() (float64, bool) {
	if s.FeelsLike != nil {
		return *s.FeelsLike, true
	}
	if s.AirTemp != nil {
		return FeelsLike(*s.AirTemp, s.WindSpeed), true
	}
	return 0, false
}

// FeelsLike computes the wind-chill adjusted temperature. Above 10°C or in
// near-calm wind the chill model does not apply and the air temperature is
// returned unchanged. Wind speed is in km/h.
func FeelsLike(airTemp, windSpeed float64) float64 {
	if airTemp > 10 || windSpeed < 5 {
		return airTemp
	}
	v := math.Pow(windSpeed, 0.16)
	return math.Round(13.12 + 0.6215*airTemp - 11.37*v + 0.3965*airTemp*v)
}

// Package config loads Shorecast configuration from the environment.
package config

import (
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"
)

// Per-upstream throttle budgets. These track the documented or observed
// limits of each upstream class rather than anything configurable.
const (
	// TideRequestsPerMinute bounds Admiralty calls; the free tier allows
	// very little headroom.
	TideRequestsPerMinute = 30
	TideMaxConcurrent     = 4

	// WeatherRequestsPerMinute bounds the two Open-Meteo endpoints, which
	// are generous but still metered per IP.
	WeatherRequestsPerMinute = 300
	WeatherMaxConcurrent     = 16

	// SewageRequestsPerMinute bounds the water company feeds, which are
	// shared public endpoints with no published limit.
	SewageRequestsPerMinute = 60
	SewageMaxConcurrent     = 8
)

// Config holds the runtime configuration for the API server.
type Config struct {
	// Port the HTTP server listens on.
	Port string

	// Env names the deployment environment (development, production).
	Env string

	// AdmiraltyAPIKey is the UK Tidal API subscription key. When empty
	// tide lookups fail upstream and conditions degrade to unknown tides.
	AdmiraltyAPIKey string

	// OTELEnabled turns on OpenTelemetry export.
	OTELEnabled bool

	// OTLPEndpoint is the OTLP collector address.
	OTLPEndpoint string

	// PrewarmEnabled turns on the dashboard prewarm job.
	PrewarmEnabled bool

	// PrewarmInterval is how often the prewarm job runs.
	PrewarmInterval time.Duration
}

// Load reads configuration from the environment, honouring a .env file when
// one is present.
func Load() (*Config, error) {
	// A missing .env file is the normal case outside local development.
	_ = godotenv.Load()

	cfg := &Config{
		Port:            getenvDefault("APP_PORT", "8080"),
		Env:             getenvDefault("APP_ENV", "development"),
		AdmiraltyAPIKey: os.Getenv("ADMIRALTY_API_KEY"),
		OTELEnabled:     os.Getenv("OTEL_ENABLED") == "true",
		OTLPEndpoint:    getenvDefault("OTEL_EXPORTER_OTLP_ENDPOINT", "localhost:4317"),
		PrewarmEnabled:  os.Getenv("PREWARM_ENABLED") == "true",
	}

	intervalStr := getenvDefault("PREWARM_INTERVAL", "4m")
	interval, err := time.ParseDuration(intervalStr)
	if err != nil {
		return nil, fmt.Errorf("invalid PREWARM_INTERVAL: %w", err)
	}
	cfg.PrewarmInterval = interval

	return cfg, nil
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

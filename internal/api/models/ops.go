package models

import "github.com/shorecast/shorecast/internal/provider/resilience"

// Health represents the health status of the service.
type Health struct {
	Status  HealthStatus           `json:"status"`
	Time    Timestamp              `json:"time"`
	Details map[string]interface{} `json:"details,omitempty"`
}

// SystemStatus represents the overall system status.
type SystemStatus struct {
	Status    HealthStatus     `json:"status"`
	Time      Timestamp        `json:"time"`
	Upstreams []UpstreamStatus `json:"upstreams"`
	Caches    []CacheStatus    `json:"caches"`
}

// UpstreamStatus reports one upstream's circuit breaker and throttle state.
type UpstreamStatus struct {
	Name          string                   `json:"name"`
	Status        HealthStatus             `json:"status"`
	CircuitState  string                   `json:"circuitState"`
	Failures      int64                    `json:"consecutiveFailures"`
	LastSuccessAt *Timestamp               `json:"lastSuccessAt,omitempty"`
	LastFailureAt *Timestamp               `json:"lastFailureAt,omitempty"`
	Throttle      resilience.ThrottleStats `json:"throttle"`
}

// CacheStatus reports one service cache's state.
type CacheStatus struct {
	Name         string `json:"name"`
	Entries      int    `json:"entries"`
	FreshEntries int    `json:"freshEntries"`
}

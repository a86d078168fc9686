package handler

import (
	"net/http"
	"time"

	"github.com/sony/gobreaker/v2"

	"github.com/shorecast/shorecast/internal/api/models"
	"github.com/shorecast/shorecast/internal/api/response"
	"github.com/shorecast/shorecast/internal/provider/resilience"
)

// OpsHandler handles operational endpoints.
type OpsHandler struct {
	version   string
	buildTime string
	upstreams *resilience.Registry

	// cacheStats reports the domain caches; wired from main so the
	// handler stays decoupled from the services.
	cacheStats func() []models.CacheStatus
}

// NewOpsHandler creates a new OpsHandler.
func NewOpsHandler(version, buildTime string, upstreams *resilience.Registry, cacheStats func() []models.CacheStatus) *OpsHandler {
	return &OpsHandler{
		version:    version,
		buildTime:  buildTime,
		upstreams:  upstreams,
		cacheStats: cacheStats,
	}
}

// HealthCheck handles GET /ops/health - liveness check.
func (h *OpsHandler) HealthCheck(w http.ResponseWriter, r *http.Request) {
	health := models.Health{
		Status: models.HealthStatusOK,
		Time:   models.Timestamp(time.Now()),
		Details: map[string]interface{}{
			"version":   h.version,
			"buildTime": h.buildTime,
		},
	}
	response.JSON(w, r, http.StatusOK, health)
}

// SystemStatus handles GET /ops/status - upstream and cache status.
func (h *OpsHandler) SystemStatus(w http.ResponseWriter, r *http.Request) {
	overall := models.HealthStatusOK

	var upstreams []models.UpstreamStatus
	if h.upstreams != nil {
		for _, health := range h.upstreams.AllHealth() {
			status := upstreamStatus(health)
			if status == models.HealthStatusFail {
				overall = models.HealthStatusDegraded
			}
			upstreams = append(upstreams, models.UpstreamStatus{
				Name:          health.Name,
				Status:        status,
				CircuitState:  health.CircuitState.String(),
				Failures:      int64(health.Counts.ConsecutiveFailures),
				LastSuccessAt: timestampPtr(health.LastSuccessAt),
				LastFailureAt: timestampPtr(health.LastFailureAt),
				Throttle:      health.Throttle,
			})
		}
	}

	var caches []models.CacheStatus
	if h.cacheStats != nil {
		caches = h.cacheStats()
	}

	response.JSON(w, r, http.StatusOK, models.SystemStatus{
		Status:    overall,
		Time:      models.Timestamp(time.Now()),
		Upstreams: upstreams,
		Caches:    caches,
	})
}

func upstreamStatus(health *resilience.UpstreamHealth) models.HealthStatus {
	switch health.CircuitState {
	case gobreaker.StateOpen:
		return models.HealthStatusFail
	case gobreaker.StateHalfOpen:
		return models.HealthStatusDegraded
	default:
		return models.HealthStatusOK
	}
}

func timestampPtr(t *time.Time) *models.Timestamp {
	if t == nil {
		return nil
	}
	ts := models.Timestamp(*t)
	return &ts
}

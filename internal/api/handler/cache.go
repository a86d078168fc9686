package handler

import (
	"net/http"

	"github.com/shorecast/shorecast/internal/api/response"
	"github.com/shorecast/shorecast/internal/conditions"
	"github.com/shorecast/shorecast/internal/marine"
	"github.com/shorecast/shorecast/internal/sewage"
	"github.com/shorecast/shorecast/internal/tide"
)

// CacheHandler exposes cache statistics and invalidation across the domain
// services.
type CacheHandler struct {
	tides      *tide.Service
	marine     *marine.Service
	sewage     *sewage.Service
	conditions *conditions.Service
}

// NewCacheHandler creates a CacheHandler.
func NewCacheHandler(tides *tide.Service, marineSvc *marine.Service, sewageSvc *sewage.Service, conditionsSvc *conditions.Service) *CacheHandler {
	return &CacheHandler{
		tides:      tides,
		marine:     marineSvc,
		sewage:     sewageSvc,
		conditions: conditionsSvc,
	}
}

// CacheStats aggregates the per-service cache statistics.
type CacheStats struct {
	Tides     tide.CacheStats       `json:"tides"`
	Marine    marine.CacheStats     `json:"marine"`
	Sewage    sewage.CacheStats     `json:"sewage"`
	Dashboard conditions.CacheStats `json:"dashboard"`
}

// Stats handles GET /cache/stats.
func (h *CacheHandler) Stats(w http.ResponseWriter, r *http.Request) {
	response.JSON(w, r, http.StatusOK, CacheStats{
		Tides:     h.tides.CacheStats(),
		Marine:    h.marine.CacheStats(),
		Sewage:    h.sewage.CacheStats(),
		Dashboard: h.conditions.CacheStats(),
	})
}

// Clear handles POST /cache/clear.
func (h *CacheHandler) Clear(w http.ResponseWriter, r *http.Request) {
	h.tides.InvalidateCache()
	h.marine.InvalidateCache()
	h.sewage.InvalidateCache()
	h.conditions.InvalidateCache()

	response.JSON(w, r, http.StatusOK, map[string]string{"status": "cleared"})
}

package handler

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/shorecast/shorecast/internal/api/response"
	"github.com/shorecast/shorecast/internal/beach"
	"github.com/shorecast/shorecast/internal/marine"
	"github.com/shorecast/shorecast/internal/sewage"
	"github.com/shorecast/shorecast/internal/tide"
)

// DebugHandler exposes the raw upstream views behind a beach's conditions.
type DebugHandler struct {
	registry *beach.Registry
	tides    *tide.Service
	marine   *marine.Service
	sewage   *sewage.Service
}

// NewDebugHandler creates a DebugHandler.
func NewDebugHandler(registry *beach.Registry, tides *tide.Service, marineSvc *marine.Service, sewageSvc *sewage.Service) *DebugHandler {
	return &DebugHandler{
		registry: registry,
		tides:    tides,
		marine:   marineSvc,
		sewage:   sewageSvc,
	}
}

func (h *DebugHandler) beach(w http.ResponseWriter, r *http.Request) (beach.Beach, bool) {
	b, err := h.registry.Get(chi.URLParam(r, "slug"))
	if err != nil {
		response.NotFound(w, r, "Beach not found")
		return beach.Beach{}, false
	}
	return b, true
}

// Tides handles GET /debug/tides/{slug}.
func (h *DebugHandler) Tides(w http.ResponseWriter, r *http.Request) {
	b, ok := h.beach(w, r)
	if !ok {
		return
	}

	now := time.Now()
	events, err := h.tides.EventsFor(r.Context(), b.StationID, now, now)
	if err != nil && !errors.Is(err, tide.ErrNoEvents) {
		response.InternalError(w, r, "Tide lookup failed")
		return
	}

	response.JSON(w, r, http.StatusOK, map[string]interface{}{
		"beach":     b.Name,
		"stationId": b.StationID,
		"events":    events,
	})
}

// Marine handles GET /debug/marine/{slug}.
func (h *DebugHandler) Marine(w http.ResponseWriter, r *http.Request) {
	b, ok := h.beach(w, r)
	if !ok {
		return
	}

	snap, err := h.marine.SnapshotFor(r.Context(), b.Lat, b.Lon, time.Now())
	if err != nil {
		response.InternalError(w, r, "Marine lookup failed")
		return
	}

	response.JSON(w, r, http.StatusOK, map[string]interface{}{
		"beach":    b.Name,
		"lat":      b.Lat,
		"lon":      b.Lon,
		"snapshot": snap,
	})
}

// Sewage handles GET /debug/sewage/{slug}.
func (h *DebugHandler) Sewage(w http.ResponseWriter, r *http.Request) {
	b, ok := h.beach(w, r)
	if !ok {
		return
	}

	report := h.sewage.ReportFor(r.Context(), b)

	response.JSON(w, r, http.StatusOK, map[string]interface{}{
		"beach":        b.Name,
		"lat":          b.Lat,
		"lon":          b.Lon,
		"company":      b.Company,
		"overflowTier": b.OverflowTier,
		"report":       report,
	})
}

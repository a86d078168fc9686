// Package handler provides HTTP handlers for the Shorecast API.
package handler

import (
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/shorecast/shorecast/internal/api/response"
	"github.com/shorecast/shorecast/internal/beach"
	"github.com/shorecast/shorecast/internal/conditions"
	"github.com/shorecast/shorecast/internal/marine"
	"github.com/shorecast/shorecast/internal/recommend"
	"github.com/shorecast/shorecast/internal/timeslot"
)

// DefaultSlug is served when /conditions is requested without a beach.
const DefaultSlug = "barry-island"

// ConditionsHandler serves beach listings, single-beach conditions and the
// dashboard.
type ConditionsHandler struct {
	service  *conditions.Service
	registry *beach.Registry
}

// NewConditionsHandler creates a ConditionsHandler.
func NewConditionsHandler(service *conditions.Service, registry *beach.Registry) *ConditionsHandler {
	return &ConditionsHandler{service: service, registry: registry}
}

// Location is one entry in the beach listing.
type Location struct {
	Slug     string       `json:"slug"`
	Name     string       `json:"name"`
	Location string       `json:"location"`
	Facing   beach.Facing `json:"facing"`
	Region   string       `json:"region"`
}

// ListLocations handles GET /locations.
func (h *ConditionsHandler) ListLocations(w http.ResponseWriter, r *http.Request) {
	all := h.registry.All()
	locations := make([]Location, 0, len(all))
	for _, b := range all {
		locations = append(locations, Location{
			Slug:     b.Slug,
			Name:     b.Name,
			Location: b.Area,
			Facing:   b.Facing,
			Region:   b.Region,
		})
	}
	response.JSON(w, r, http.StatusOK, locations)
}

// GetConditions handles GET /conditions/{slug}.
func (h *ConditionsHandler) GetConditions(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	if slug == "" {
		slug = DefaultSlug
	}

	mode, err := recommend.ParseMode(r.URL.Query().Get("mode"))
	if err != nil {
		response.BadRequest(w, r, "Invalid mode", nil)
		return
	}

	result, err := h.service.ConditionsFor(r.Context(), slug, mode)
	switch {
	case errors.Is(err, beach.ErrNotFound):
		response.NotFound(w, r, "Beach not found")
		return
	case errors.Is(err, marine.ErrNoData), errors.Is(err, marine.ErrProviderUnavailable):
		response.InternalError(w, r, "Failed to fetch weather data")
		return
	case err != nil:
		response.InternalError(w, r, "Internal server error")
		return
	}

	response.JSON(w, r, http.StatusOK, result)
}

// Dashboard handles GET /dashboard.
func (h *ConditionsHandler) Dashboard(w http.ResponseWriter, r *http.Request) {
	var slugs []string
	if raw := r.URL.Query().Get("beaches"); raw != "" {
		slugs = strings.Split(raw, ",")
	}

	mode, err := recommend.ParseMode(r.URL.Query().Get("mode"))
	if err != nil {
		response.BadRequest(w, r, "Invalid mode", nil)
		return
	}

	slot, err := timeslot.Parse(r.URL.Query().Get("time"))
	if err != nil {
		response.BadRequest(w, r, "Invalid time", nil)
		return
	}

	dashboard, err := h.service.DashboardFor(r.Context(), slugs, mode, slot)
	switch {
	case errors.Is(err, conditions.ErrNoBeaches):
		response.NotFound(w, r, "No valid beaches found")
		return
	case err != nil:
		response.InternalError(w, r, "Failed to fetch dashboard data")
		return
	}

	response.JSON(w, r, http.StatusOK, dashboard)
}

// Root handles GET /, redirecting to the default beach.
func (h *ConditionsHandler) Root(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/conditions/"+DefaultSlug, http.StatusFound)
}

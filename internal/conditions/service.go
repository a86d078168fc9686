// Package conditions orchestrates the tide, marine and sewage services into
// single-beach condition reports and the multi-beach dashboard.
package conditions

import (
	"context"
	"errors"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/shorecast/shorecast/internal/astro"
	"github.com/shorecast/shorecast/internal/beach"
	"github.com/shorecast/shorecast/internal/marine"
	"github.com/shorecast/shorecast/internal/recommend"
	"github.com/shorecast/shorecast/internal/sewage"
	"github.com/shorecast/shorecast/internal/tide"
	"github.com/shorecast/shorecast/internal/timeslot"
)

// ErrNoBeaches reports a dashboard request where no requested beach could
// be resolved and fetched.
var ErrNoBeaches = errors.New("no valid beaches found")

// DefaultSlugs is the dashboard served when no beaches are requested.
var DefaultSlugs = []string{"rhossili", "barry-island", "tenby-south"}

// ServiceConfig wires the orchestrator's collaborators.
type ServiceConfig struct {
	Tides    *tide.Service
	Marine   *marine.Service
	Sewage   *sewage.Service
	Registry *beach.Registry
	Logger   zerolog.Logger

	// DashboardTTL bounds dashboard cache entries. Defaults to 5 minutes.
	DashboardTTL time.Duration
}

// Service assembles beach conditions on demand. Single-beach lookups are
// always fetched fresh; dashboards are cached briefly per slug set, mode
// and slot.
type Service struct {
	tides    *tide.Service
	marine   *marine.Service
	sewage   *sewage.Service
	registry *beach.Registry
	logger   zerolog.Logger
	location *time.Location

	dashboardTTL time.Duration
	mu           sync.RWMutex
	dashboards   map[string]*cachedDashboard
}

type cachedDashboard struct {
	dashboard *Dashboard
	fetchedAt time.Time
}

// sweepThreshold is how many dashboard entries accumulate before expired
// ones are swept out.
const sweepThreshold = 100

// NewService creates the orchestrator.
func NewService(cfg ServiceConfig) *Service {
	if cfg.DashboardTTL <= 0 {
		cfg.DashboardTTL = 5 * time.Minute
	}

	location, err := time.LoadLocation("Europe/London")
	if err != nil {
		location = time.UTC
	}

	return &Service{
		tides:        cfg.Tides,
		marine:       cfg.Marine,
		sewage:       cfg.Sewage,
		registry:     cfg.Registry,
		logger:       cfg.Logger,
		location:     location,
		dashboardTTL: cfg.DashboardTTL,
		dashboards:   make(map[string]*cachedDashboard),
	}
}

// bundle is one beach's gathered upstream data.
type bundle struct {
	window tide.Window
	snap   *marine.Snapshot
	report sewage.Report
	sun    astro.SunTimes
}

// gather fans out to the three domain services for one beach. A marine
// failure is fatal for the beach; a tide failure degrades to unknown tide
// times and sewage never fails.
func (s *Service) gather(ctx context.Context, b beach.Beach, target, now time.Time) (bundle, error) {
	var out bundle

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		window, err := s.tides.WindowFor(gctx, b.StationID, target, now)
		if err != nil {
			s.logger.Warn().Err(err).Str("beach", b.Slug).Msg("tide lookup failed")
		}
		out.window = window
		return nil
	})

	g.Go(func() error {
		snap, err := s.marine.SnapshotFor(gctx, b.Lat, b.Lon, target)
		if err != nil {
			return err
		}
		out.snap = snap
		return nil
	})

	g.Go(func() error {
		out.report = s.sewage.ReportFor(gctx, b)
		return nil
	})

	if err := g.Wait(); err != nil {
		return bundle{}, err
	}

	out.sun = astro.Sun(b.Lat, b.Lon, target)
	return out, nil
}

// ConditionsFor builds the single-beach report for the current moment.
func (s *Service) ConditionsFor(ctx context.Context, slug string, mode recommend.Mode) (*Conditions, error) {
	b, err := s.registry.Get(slug)
	if err != nil {
		return nil, err
	}

	now := time.Now().In(s.location)
	data, err := s.gather(ctx, b, now, now)
	if err != nil {
		return nil, err
	}

	rec := recommend.Recommend(recommend.Inputs{
		Beach:  b,
		Marine: *data.snap,
		Sewage: data.report,
		Tide:   data.window,
		Sun:    data.sun,
		Slot:   timeslot.Now,
		Hour:   now.Hour(),
	}, mode)

	var feelsLike *float64
	if v, ok := data.snap.EffectiveFeelsLike(); ok {
		feelsLike = &v
	}

	return &Conditions{
		Beach:          b.Name,
		Location:       b.Area,
		Mode:           mode,
		SeaTemp:        data.snap.SeaTemp,
		WaveHeight:     data.snap.WaveHeight,
		Tide:           tideTimes(data.window),
		AirTemp:        data.snap.AirTemp,
		FeelsLike:      feelsLike,
		WindSpeed:      data.snap.WindSpeed,
		UVIndex:        data.snap.UVIndex,
		Sewage:         data.report,
		Sunrise:        data.sun.Sunrise,
		Sunset:         data.sun.Sunset,
		Recommendation: recommendationView(rec),
	}, nil
}

// DashboardFor builds the multi-beach dashboard for a slot and mode.
// Beaches that cannot be resolved or fetched are dropped; the call fails
// only when nothing survives.
func (s *Service) DashboardFor(ctx context.Context, slugs []string, mode recommend.Mode, slot timeslot.Slot) (*Dashboard, error) {
	if len(slugs) == 0 {
		slugs = DefaultSlugs
	}

	key := cacheKey(slugs, mode, slot)
	now := time.Now().In(s.location)

	s.mu.RLock()
	if entry, ok := s.dashboards[key]; ok && now.Sub(entry.fetchedAt) < s.dashboardTTL {
		s.mu.RUnlock()
		return entry.dashboard, nil
	}
	s.mu.RUnlock()

	target := slot.TargetTime(now)

	cards := make([]*Card, len(slugs))
	g, gctx := errgroup.WithContext(ctx)
	for i, slug := range slugs {
		g.Go(func() error {
			b, err := s.registry.Get(slug)
			if err != nil {
				s.logger.Warn().Str("beach", slug).Msg("unknown beach dropped from dashboard")
				return nil
			}

			data, err := s.gather(gctx, b, target, now)
			if err != nil {
				s.logger.Warn().Err(err).Str("beach", slug).Msg("beach dropped from dashboard")
				return nil
			}

			card := s.card(b, data, mode, slot, now, target)
			cards[i] = &card
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	survivors := make([]Card, 0, len(cards))
	for _, card := range cards {
		if card != nil {
			survivors = append(survivors, *card)
		}
	}
	if len(survivors) == 0 {
		return nil, ErrNoBeaches
	}

	dashboard := &Dashboard{
		Meta: Meta{
			Slot:               slot,
			Label:              slot.Label(now),
			Mode:               mode,
			IsForecast:         slot.IsForecast(),
			UpdatedAt:          now.UTC(),
			AvailableTimeSlots: timeslot.Available(now),
		},
		Beaches: survivors,
	}

	s.mu.Lock()
	s.dashboards[key] = &cachedDashboard{dashboard: dashboard, fetchedAt: now}
	if len(s.dashboards) > sweepThreshold {
		s.sweepLocked(now)
	}
	s.mu.Unlock()

	return dashboard, nil
}

func (s *Service) card(b beach.Beach, data bundle, mode recommend.Mode, slot timeslot.Slot, now, target time.Time) Card {
	rec := recommend.Recommend(recommend.Inputs{
		Beach:  b,
		Marine: *data.snap,
		Sewage: data.report,
		Tide:   data.window,
		Sun:    data.sun,
		Slot:   slot,
		Hour:   now.Hour(),
	}, mode)

	var waves *WavesView
	if mode == recommend.ModeSwimming {
		waves = &WavesView{HeightDisplay: wavesDisplay(data.snap.WaveHeight)}
	}

	var feelsLike *float64
	if v, ok := data.snap.EffectiveFeelsLike(); ok {
		feelsLike = &v
	}

	return Card{
		Name:           b.Name,
		Slug:           b.Slug,
		Location:       b.Area,
		Facing:         b.Facing,
		SeaTempDisplay: degreesDisplay(data.snap.SeaTemp),
		Waves:          waves,
		Tide:           tideTimes(data.window),
		Weather: WeatherView{
			AirTempDisplay:   degreesDisplay(data.snap.AirTemp),
			FeelsLikeDisplay: degreesDisplay(feelsLike),
			UVIndex:          data.snap.UVIndex,
		},
		Sewage: data.report,
		Sun: SunView{
			Sunrise:          data.sun.Sunrise,
			Sunset:           data.sun.Sunset,
			ShowSunriseBadge: astro.ShowSunriseBadge(slot, target),
			ShowSunsetBadge:  astro.ShowSunsetBadge(slot, b.Facing, data.snap.CloudCover),
		},
		Alerts: Alerts{
			RecentRainfall:      data.snap.Precipitation > 5,
			BathingWaterQuality: "good",
		},
		Recommendation: recommendationView(rec),
		IsForecast:     slot.IsForecast(),
	}
}

func (s *Service) sweepLocked(now time.Time) {
	for key, entry := range s.dashboards {
		if now.Sub(entry.fetchedAt) >= s.dashboardTTL {
			delete(s.dashboards, key)
		}
	}
}

// InvalidateCache drops all cached dashboards.
func (s *Service) InvalidateCache() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.dashboards = make(map[string]*cachedDashboard)
}

// CacheStats reports dashboard cache state.
type CacheStats struct {
	Entries      int `json:"entries"`
	FreshEntries int `json:"freshEntries"`
}

// CacheStats returns current dashboard cache statistics.
func (s *Service) CacheStats() CacheStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := time.Now()
	stats := CacheStats{Entries: len(s.dashboards)}
	for _, entry := range s.dashboards {
		if now.Sub(entry.fetchedAt) < s.dashboardTTL {
			stats.FreshEntries++
		}
	}
	return stats
}

func cacheKey(slugs []string, mode recommend.Mode, slot timeslot.Slot) string {
	sorted := make([]string, len(slugs))
	copy(sorted, slugs)
	sort.Strings(sorted)
	return strings.Join(sorted, ",") + "|" + string(mode) + "|" + string(slot)
}

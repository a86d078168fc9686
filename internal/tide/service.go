package tide

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog"
)

// Provider defines the interface for tidal event providers.
type Provider interface {
	// TidalEvents fetches predicted events for a station covering the
	// given number of days from today.
	TidalEvents(ctx context.Context, stationID string, durationDays int) ([]Event, error)

	// Name returns the provider name for logging.
	Name() string
}

// ServiceConfig holds configuration for the tide service.
type ServiceConfig struct {
	// Provider is the tidal event provider.
	Provider Provider

	// Logger for service operations.
	Logger zerolog.Logger

	// CacheTTL is how long to cache station events (default: 30 minutes).
	// Predictions are astronomical so they barely change between fetches.
	CacheTTL time.Duration

	// StaleIfErrorTTL allows serving stale events on provider errors
	// (default: 6 hours).
	StaleIfErrorTTL time.Duration
}

// Service provides tidal windows with per-station caching.
type Service struct {
	provider        Provider
	logger          zerolog.Logger
	cacheTTL        time.Duration
	staleIfErrorTTL time.Duration
	loc             *time.Location

	mu              sync.RWMutex
	cache           map[string]*cachedEvents
	lastCleanup     time.Time
	cleanupInterval time.Duration
}

type cachedEvents struct {
	events    []Event
	fetchedAt time.Time
	expiresAt time.Time
}

// NewService creates a new tide service.
func NewService(cfg ServiceConfig) *Service {
	cacheTTL := cfg.CacheTTL
	if cacheTTL == 0 {
		cacheTTL = 30 * time.Minute
	}

	staleIfErrorTTL := cfg.StaleIfErrorTTL
	if staleIfErrorTTL == 0 {
		staleIfErrorTTL = 6 * time.Hour
	}

	loc, err := time.LoadLocation("Europe/London")
	if err != nil {
		loc = time.UTC
	}

	return &Service{
		provider:        cfg.Provider,
		logger:          cfg.Logger,
		cacheTTL:        cacheTTL,
		staleIfErrorTTL: staleIfErrorTTL,
		loc:             loc,
		cache:           make(map[string]*cachedEvents),
		cleanupInterval: 10 * time.Minute,
	}
}

// Location returns the display timezone for tide times.
func (s *Service) Location() *time.Location {
	return s.loc
}

// WindowFor returns the high and low water readings most relevant to target.
// The request window always stretches from today to two days past the
// target so the selection has events on both sides.
func (s *Service) WindowFor(ctx context.Context, stationID string, target, now time.Time) (Window, error) {
	events, err := s.EventsFor(ctx, stationID, target, now)
	if err != nil {
		return UnknownWindow(), err
	}

	var highs, lows []Event
	for _, e := range events {
		switch e.Kind {
		case HighWater:
			highs = append(highs, e)
		case LowWater:
			lows = append(lows, e)
		}
	}

	return Window{
		High: s.reading(highs, target),
		Low:  s.reading(lows, target),
	}, nil
}

// EventsFor returns the raw station events covering the target date. It is
// also used by the tide debug endpoint.
func (s *Service) EventsFor(ctx context.Context, stationID string, target, now time.Time) ([]Event, error) {
	duration := s.DurationDays(target, now)
	cacheKey := fmt.Sprintf("%s:%d", stationID, duration)

	s.mu.RLock()
	if cached, ok := s.cache[cacheKey]; ok && time.Now().Before(cached.expiresAt) {
		s.mu.RUnlock()
		return cached.events, nil
	}
	s.mu.RUnlock()

	return s.fetch(ctx, stationID, duration, cacheKey)
}

// DurationDays computes the request window in days for a target time, at
// least two and always extending two days beyond the target.
func (s *Service) DurationDays(target, now time.Time) int {
	nowLocal := now.In(s.loc)
	targetLocal := target.In(s.loc)

	todayStart := time.Date(nowLocal.Year(), nowLocal.Month(), nowLocal.Day(), 0, 0, 0, 0, s.loc)
	targetStart := time.Date(targetLocal.Year(), targetLocal.Month(), targetLocal.Day(), 0, 0, 0, 0, s.loc)

	daysAhead := int(targetStart.Sub(todayStart).Hours() / 24)
	if daysAhead+2 < 2 {
		return 2
	}
	return daysAhead + 2
}

func (s *Service) fetch(ctx context.Context, stationID string, duration int, cacheKey string) ([]Event, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	// Double-check cache
	if cached, ok := s.cache[cacheKey]; ok && time.Now().Before(cached.expiresAt) {
		return cached.events, nil
	}

	s.logger.Debug().
		Str("station_id", stationID).
		Int("duration_days", duration).
		Str("provider", s.provider.Name()).
		Msg("fetching tidal events from provider")

	events, err := s.provider.TidalEvents(ctx, stationID, duration)
	if err != nil {
		s.logger.Error().Err(err).
			Str("station_id", stationID).
			Msg("failed to fetch tidal events")

		if cached, ok := s.cache[cacheKey]; ok {
			if time.Now().Before(cached.fetchedAt.Add(s.staleIfErrorTTL)) {
				s.logger.Warn().
					Time("fetched_at", cached.fetchedAt).
					Msg("serving stale tidal events due to provider error")
				return cached.events, nil
			}
		}

		return nil, ErrProviderUnavailable
	}

	now := time.Now()
	s.cache[cacheKey] = &cachedEvents{
		events:    events,
		fetchedAt: now,
		expiresAt: now.Add(s.cacheTTL),
	}

	s.cleanupIfNeeded()

	return events, nil
}

func (s *Service) reading(events []Event, target time.Time) Reading {
	e, ok := SelectEvent(events, target)
	if !ok {
		return unknownReading()
	}
	height := e.Height
	return Reading{
		At:      e.Time,
		Display: e.Time.In(s.loc).Format("15:04"),
		Height:  &height,
		Known:   true,
	}
}

func (s *Service) cleanupIfNeeded() {
	now := time.Now()
	if now.Sub(s.lastCleanup) < s.cleanupInterval {
		return
	}

	s.lastCleanup = now
	expired := 0
	for key, cached := range s.cache {
		if now.After(cached.fetchedAt.Add(s.staleIfErrorTTL)) {
			delete(s.cache, key)
			expired++
		}
	}
	if expired > 0 {
		s.logger.Debug().
			Int("expired_entries", expired).
			Msg("cleaned up expired tide cache entries")
	}
}

// InvalidateCache clears all cached events.
func (s *Service) InvalidateCache() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache = make(map[string]*cachedEvents)
}

// CacheStats returns cache statistics.
func (s *Service) CacheStats() CacheStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := time.Now()
	fresh := 0
	for _, c := range s.cache {
		if now.Before(c.expiresAt) {
			fresh++
		}
	}

	return CacheStats{
		Entries:      len(s.cache),
		FreshEntries: fresh,
		Provider:     s.provider.Name(),
	}
}

// CacheStats contains cache statistics.
type CacheStats struct {
	Entries      int    `json:"entries"`
	FreshEntries int    `json:"freshEntries"`
	Provider     string `json:"provider"`
}

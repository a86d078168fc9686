package sewage

import (
	"context"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/shorecast/shorecast/internal/beach"
)

// Strategy assesses discharge status for beaches under one water company's
// reporting feed.
type Strategy interface {
	// Report returns the discharge assessment for the beach at the given
	// time.
	Report(ctx context.Context, b beach.Beach, now time.Time) (Report, error)

	// Name identifies the strategy for logging and debug output.
	Name() string
}

// ServiceConfig configures a sewage Service.
type ServiceConfig struct {
	// Strategies maps beach.Company values to the strategy that serves
	// them. Companies without an entry report no-data.
	Strategies map[string]Strategy

	Logger zerolog.Logger

	// CacheTTL bounds how long a report is reused. Defaults to 5 minutes.
	CacheTTL time.Duration
}

// Service dispatches discharge lookups to per-company strategies and caches
// the results briefly. Feed failures degrade to StatusUnknown rather than
// erroring, so a broken upstream never takes conditions down with it.
type Service struct {
	strategies map[string]Strategy
	logger     zerolog.Logger
	cacheTTL   time.Duration

	mu          sync.RWMutex
	cache       map[string]*cachedReport
	lastCleanup time.Time
}

type cachedReport struct {
	report    Report
	fetchedAt time.Time
}

const cleanupInterval = 10 * time.Minute

// NewService creates a sewage Service.
func NewService(cfg ServiceConfig) *Service {
	if cfg.CacheTTL <= 0 {
		cfg.CacheTTL = 5 * time.Minute
	}
	strategies := cfg.Strategies
	if strategies == nil {
		strategies = map[string]Strategy{}
	}
	return &Service{
		strategies:  strategies,
		logger:      cfg.Logger,
		cacheTTL:    cfg.CacheTTL,
		cache:       make(map[string]*cachedReport),
		lastCleanup: time.Now(),
	}
}

// ReportFor returns the discharge report for a beach. It never returns an
// error: strategies that fail produce StatusUnknown.
func (s *Service) ReportFor(ctx context.Context, b beach.Beach) Report {
	now := time.Now()

	s.mu.RLock()
	if entry, ok := s.cache[b.Slug]; ok && now.Sub(entry.fetchedAt) < s.cacheTTL {
		s.mu.RUnlock()
		return entry.report
	}
	s.mu.RUnlock()

	report := s.fetch(ctx, b, now)

	s.mu.Lock()
	s.cache[b.Slug] = &cachedReport{report: report, fetchedAt: now}
	s.cleanupIfNeeded(now)
	s.mu.Unlock()

	return report
}

func (s *Service) fetch(ctx context.Context, b beach.Beach, now time.Time) Report {
	strategy, ok := s.strategies[b.Company]
	if !ok {
		return Report{
			Status: StatusNoData,
			Icon:   StatusNoData.Icon(),
			Source: b.CompanyName,
		}
	}

	report, err := strategy.Report(ctx, b, now)
	if err != nil {
		s.logger.Warn().
			Err(err).
			Str("beach", b.Slug).
			Str("strategy", strategy.Name()).
			Msg("sewage lookup failed")
		return Report{
			Status: StatusUnknown,
			Icon:   StatusUnknown.Icon(),
			Source: b.CompanyName,
		}
	}

	s.logger.Debug().
		Str("beach", b.Slug).
		Str("strategy", strategy.Name()).
		Str("status", string(report.Status)).
		Msg("sewage report fetched")

	return report
}

func (s *Service) cleanupIfNeeded(now time.Time) {
	if now.Sub(s.lastCleanup) < cleanupInterval {
		return
	}
	for slug, entry := range s.cache {
		if now.Sub(entry.fetchedAt) >= s.cacheTTL {
			delete(s.cache, slug)
		}
	}
	s.lastCleanup = now
}

// InvalidateCache drops all cached reports.
func (s *Service) InvalidateCache() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cache = make(map[string]*cachedReport)
}

// CacheStats reports cache state for the ops endpoints.
type CacheStats struct {
	Entries      int      `json:"entries"`
	FreshEntries int      `json:"freshEntries"`
	Strategies   []string `json:"strategies"`
}

// CacheStats returns current cache statistics.
func (s *Service) CacheStats() CacheStats {
	s.mu.RLock()
	defer s.mu.RUnlock()

	now := time.Now()
	stats := CacheStats{Entries: len(s.cache)}
	for _, entry := range s.cache {
		if now.Sub(entry.fetchedAt) < s.cacheTTL {
			stats.FreshEntries++
		}
	}
	for company := range s.strategies {
		stats.Strategies = append(stats.Strategies, company)
	}
	return stats
}

package sewage

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shorecast/shorecast/internal/beach"
)

type stubStrategy struct {
	report    Report
	err       error
	callCount atomic.Int32
}

func (s *stubStrategy) Report(_ context.Context, _ beach.Beach, _ time.Time) (Report, error) {
	s.callCount.Add(1)
	if s.err != nil {
		return Report{}, s.err
	}
	return s.report, nil
}

func (s *stubStrategy) Name() string { return "stub" }

func welshBeach() beach.Beach {
	return beach.Beach{
		Slug:         "barry-island",
		Name:         "Barry Island",
		Company:      beach.CompanyWelshWater,
		CompanyName:  "Welsh Water",
		OverflowTier: beach.TierFrequent,
	}
}

func TestReportForDispatchesByCompany(t *testing.T) {
	strategy := &stubStrategy{report: Report{Status: StatusActive, Icon: "✗", Source: "Welsh Water"}}
	svc := NewService(ServiceConfig{
		Strategies: map[string]Strategy{beach.CompanyWelshWater: strategy},
		Logger:     zerolog.Nop(),
	})

	report := svc.ReportFor(context.Background(), welshBeach())

	assert.Equal(t, StatusActive, report.Status)
	assert.Equal(t, int32(1), strategy.callCount.Load())
}

func TestReportForCachesPerBeach(t *testing.T) {
	strategy := &stubStrategy{report: Report{Status: StatusClear, Icon: "✓"}}
	svc := NewService(ServiceConfig{
		Strategies: map[string]Strategy{beach.CompanyWelshWater: strategy},
		Logger:     zerolog.Nop(),
		CacheTTL:   time.Minute,
	})

	b := welshBeach()
	svc.ReportFor(context.Background(), b)
	svc.ReportFor(context.Background(), b)

	assert.Equal(t, int32(1), strategy.callCount.Load())

	svc.InvalidateCache()
	svc.ReportFor(context.Background(), b)
	assert.Equal(t, int32(2), strategy.callCount.Load())
}

func TestReportForUnknownCompanyReportsNoData(t *testing.T) {
	svc := NewService(ServiceConfig{Logger: zerolog.Nop()})

	b := welshBeach()
	b.Company = beach.CompanySouthWestWater
	b.CompanyName = "South West Water"

	report := svc.ReportFor(context.Background(), b)

	assert.Equal(t, StatusNoData, report.Status)
	assert.Equal(t, "South West Water", report.Source)
}

func TestReportForStrategyFailureDegradesToUnknown(t *testing.T) {
	strategy := &stubStrategy{err: errors.New("feed down")}
	svc := NewService(ServiceConfig{
		Strategies: map[string]Strategy{beach.CompanyWelshWater: strategy},
		Logger:     zerolog.Nop(),
	})

	report := svc.ReportFor(context.Background(), welshBeach())

	assert.Equal(t, StatusUnknown, report.Status)
	assert.Equal(t, "?", report.Icon)
	assert.Equal(t, "Welsh Water", report.Source)
}

func TestCacheStats(t *testing.T) {
	strategy := &stubStrategy{report: Report{Status: StatusClear}}
	svc := NewService(ServiceConfig{
		Strategies: map[string]Strategy{beach.CompanyWelshWater: strategy},
		Logger:     zerolog.Nop(),
	})

	svc.ReportFor(context.Background(), welshBeach())

	stats := svc.CacheStats()
	require.Equal(t, 1, stats.Entries)
	assert.Equal(t, 1, stats.FreshEntries)
	assert.Contains(t, stats.Strategies, beach.CompanyWelshWater)
}

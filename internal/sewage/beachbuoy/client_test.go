package beachbuoy

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shorecast/shorecast/internal/beach"
	"github.com/shorecast/shorecast/internal/sewage"
)

func brighton() beach.Beach {
	return beach.Beach{
		Slug:         "brighton",
		Name:         "Brighton Beach",
		Company:      beach.CompanySouthernWater,
		CompanyName:  "Southern Water",
		OverflowTier: beach.TierFrequent,
	}
}

func releasesServer(t *testing.T, body string) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/v1/releases/recent", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(body))
	}))
}

func TestReportActiveRelease(t *testing.T) {
	body := `[
	  {"bathingSite":"Brighton Central","status":"Active","startDateTime":"2025-06-11T08:00:00Z","endDateTime":"","durationMinutes":0}
	]`
	server := releasesServer(t, body)
	defer server.Close()

	strategy := NewStrategy(StrategyConfig{BaseURL: server.URL, Logger: zerolog.Nop()})

	report, err := strategy.Report(context.Background(), brighton(), time.Now())
	require.NoError(t, err)

	assert.Equal(t, sewage.StatusActive, report.Status)
	assert.Equal(t, "Southern Water Beachbuoy", report.Source)
}

func TestReportRecentReleaseWithRollingDuration(t *testing.T) {
	now := time.Date(2025, time.June, 11, 18, 0, 0, 0, time.UTC)
	ended := now.Add(-12 * time.Hour)
	older := now.Add(-3 * 24 * time.Hour)

	body := fmt.Sprintf(`[
	  {"bathingSite":"Brighton Central","status":"Stopped","startDateTime":"2025-06-10T22:00:00Z","endDateTime":"%s","durationMinutes":90},
	  {"bathingSite":"Brighton Central","status":"Stopped","startDateTime":"2025-06-08T04:00:00Z","endDateTime":"%s","durationMinutes":45}
	]`, ended.Format(time.RFC3339), older.Format(time.RFC3339))
	server := releasesServer(t, body)
	defer server.Close()

	strategy := NewStrategy(StrategyConfig{BaseURL: server.URL, Logger: zerolog.Nop()})

	report, err := strategy.Report(context.Background(), brighton(), now)
	require.NoError(t, err)

	assert.Equal(t, sewage.StatusRecent, report.Status)
	require.NotNil(t, report.HoursSince)
	assert.Equal(t, 12, *report.HoursSince)
	assert.NotEmpty(t, report.Message)
	require.NotNil(t, report.Last7DayMinutes)
	assert.Equal(t, 135, *report.Last7DayMinutes)
}

func TestReportOldReleasesAreClear(t *testing.T) {
	now := time.Date(2025, time.June, 11, 18, 0, 0, 0, time.UTC)
	ended := now.Add(-5 * 24 * time.Hour)

	body := fmt.Sprintf(`[
	  {"bathingSite":"Brighton Central","status":"Stopped","startDateTime":"2025-06-06T02:00:00Z","endDateTime":"%s","durationMinutes":30}
	]`, ended.Format(time.RFC3339))
	server := releasesServer(t, body)
	defer server.Close()

	strategy := NewStrategy(StrategyConfig{BaseURL: server.URL, Logger: zerolog.Nop()})

	report, err := strategy.Report(context.Background(), brighton(), now)
	require.NoError(t, err)

	assert.Equal(t, sewage.StatusClear, report.Status)
	require.NotNil(t, report.Last7DayMinutes)
	assert.Equal(t, 30, *report.Last7DayMinutes)
}

func TestReportNoRecordsMeansNoData(t *testing.T) {
	body := `[
	  {"bathingSite":"Hastings","status":"Stopped","startDateTime":"2025-06-10T02:00:00Z","endDateTime":"2025-06-10T04:00:00Z","durationMinutes":120}
	]`
	server := releasesServer(t, body)
	defer server.Close()

	strategy := NewStrategy(StrategyConfig{BaseURL: server.URL, Logger: zerolog.Nop()})

	report, err := strategy.Report(context.Background(), brighton(), time.Now())
	require.NoError(t, err)
	assert.Equal(t, sewage.StatusNoData, report.Status)
}

func TestReportMatchesOverriddenSiteName(t *testing.T) {
	hove := beach.Beach{
		Slug:         "hove",
		Name:         "Hove",
		Company:      beach.CompanySouthernWater,
		CompanyName:  "Southern Water",
		OverflowTier: beach.TierFrequent,
	}

	body := `[
	  {"bathingSite":"hove lawns","status":"Activated","startDateTime":"2025-06-11T08:00:00Z","endDateTime":"","durationMinutes":0}
	]`
	server := releasesServer(t, body)
	defer server.Close()

	strategy := NewStrategy(StrategyConfig{BaseURL: server.URL, Logger: zerolog.Nop()})

	report, err := strategy.Report(context.Background(), hove, time.Now())
	require.NoError(t, err)
	assert.Equal(t, sewage.StatusActive, report.Status)
}

func TestReportFeedFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer server.Close()

	strategy := NewStrategy(StrategyConfig{BaseURL: server.URL, Logger: zerolog.Nop()})

	_, err := strategy.Report(context.Background(), brighton(), time.Now())
	assert.ErrorContains(t, err, "status 404")
}

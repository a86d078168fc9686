// Package beachbuoy reads Southern Water's Beachbuoy release feed and
// matches discharges to beaches by bathing-site name.
package beachbuoy

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/shorecast/shorecast/internal/beach"
	"github.com/shorecast/shorecast/internal/provider/resilience"
	"github.com/shorecast/shorecast/internal/sewage"
)

// StrategyName identifies this feed in logs and health output.
const StrategyName = "beachbuoy"

// DefaultBaseURL is the Beachbuoy API host.
const DefaultBaseURL = "https://beachbuoy.southernwater.co.uk"

const releasesPath = "/api/v1/releases/recent"

const sourceLabel = "Southern Water Beachbuoy"

// recentWindow is how long after a release stops that swimmers are still
// warned.
const recentWindow = 48 * time.Hour

// siteOverrides maps beach slugs whose Beachbuoy bathing-site name differs
// from our display name.
var siteOverrides = map[string]string{
	"brighton": "Brighton Central",
	"hove":     "Hove Lawns",
}

// StrategyConfig configures a Beachbuoy Strategy.
type StrategyConfig struct {
	BaseURL    string
	HTTPClient *resilience.Client
	Logger     zerolog.Logger
}

// Strategy implements sewage.Strategy against the Beachbuoy feed.
type Strategy struct {
	baseURL    string
	httpClient *resilience.Client
	logger     zerolog.Logger
}

// NewStrategy creates a Beachbuoy strategy.
func NewStrategy(cfg StrategyConfig) *Strategy {
	baseURL := cfg.BaseURL
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}

	httpClient := cfg.HTTPClient
	if httpClient == nil {
		httpClient = resilience.NewClient(resilience.DefaultClientConfig(StrategyName))
	}

	return &Strategy{
		baseURL:    baseURL,
		httpClient: httpClient,
		logger:     cfg.Logger,
	}
}

// Name implements sewage.Strategy.
func (s *Strategy) Name() string { return StrategyName }

type release struct {
	BathingSite     string `json:"bathingSite"`
	Status          string `json:"status"`
	StartDateTime   string `json:"startDateTime"`
	EndDateTime     string `json:"endDateTime"`
	DurationMinutes int    `json:"durationMinutes"`
}

// Report implements sewage.Strategy. Releases are matched to the beach by
// bathing-site name: an active release reports active, one that ended
// inside the recent window reports recent with tier guidance, older records
// mean clear and no records at all mean the site is not covered.
func (s *Strategy) Report(ctx context.Context, b beach.Beach, now time.Time) (sewage.Report, error) {
	releases, err := s.fetchReleases(ctx)
	if err != nil {
		return sewage.Report{}, err
	}

	matched := matchSite(releases, siteName(b))
	if len(matched) == 0 {
		return sewage.Report{
			Status: sewage.StatusNoData,
			Icon:   sewage.StatusNoData.Icon(),
			Source: sourceLabel,
		}, nil
	}

	weekMinutes := rollingDuration(matched, now)

	for _, r := range matched {
		if isActive(r.Status) {
			return sewage.Report{
				Status:          sewage.StatusActive,
				Icon:            sewage.StatusActive.Icon(),
				Source:          sourceLabel,
				Last7DayMinutes: &weekMinutes,
			}, nil
		}
	}

	if ended, ok := latestEnd(matched); ok && now.Sub(ended) < recentWindow {
		hoursSince := int(now.Sub(ended).Hours())
		report := sewage.Report{
			Status:          sewage.StatusRecent,
			Icon:            sewage.StatusRecent.Icon(),
			Source:          sourceLabel,
			Tier:            b.OverflowTier,
			HoursSince:      &hoursSince,
			Message:         sewage.TierMessage(b.OverflowTier, hoursSince),
			Last7DayMinutes: &weekMinutes,
		}
		return report, nil
	}

	return sewage.Report{
		Status:          sewage.StatusClear,
		Icon:            sewage.StatusClear.Icon(),
		Source:          sourceLabel,
		Last7DayMinutes: &weekMinutes,
	}, nil
}

func (s *Strategy) fetchReleases(ctx context.Context) ([]release, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+releasesPath, nil)
	if err != nil {
		return nil, fmt.Errorf("creating releases request: %w", err)
	}

	resp, err := s.httpClient.DoWithContext(ctx, req)
	if err != nil {
		return nil, fmt.Errorf("fetching releases: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("releases feed returned status %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("reading releases response: %w", err)
	}

	var releases []release
	if err := json.Unmarshal(body, &releases); err != nil {
		return nil, fmt.Errorf("parsing releases response: %w", err)
	}
	return releases, nil
}

func siteName(b beach.Beach) string {
	if name, ok := siteOverrides[b.Slug]; ok {
		return name
	}
	return b.Name
}

func matchSite(releases []release, site string) []release {
	lowered := strings.ToLower(site)
	var matched []release
	for _, r := range releases {
		if strings.ToLower(r.BathingSite) == lowered {
			matched = append(matched, r)
		}
	}
	return matched
}

func isActive(status string) bool {
	lowered := strings.ToLower(status)
	return strings.Contains(lowered, "active") || strings.Contains(lowered, "activated")
}

func latestEnd(releases []release) (time.Time, bool) {
	var latest time.Time
	found := false
	for _, r := range releases {
		ended, err := time.Parse(time.RFC3339, r.EndDateTime)
		if err != nil {
			continue
		}
		if !found || ended.After(latest) {
			latest = ended
			found = true
		}
	}
	return latest.UTC(), found
}

func rollingDuration(releases []release, now time.Time) int {
	total := 0
	for _, r := range releases {
		ended, err := time.Parse(time.RFC3339, r.EndDateTime)
		if err != nil {
			continue
		}
		if now.Sub(ended) <= 7*24*time.Hour {
			total += r.DurationMinutes
		}
	}
	return total
}

// Package worker provides background cache prewarming for Shorecast.
package worker

import (
	"time"

	"github.com/shorecast/shorecast/internal/recommend"
	"github.com/shorecast/shorecast/internal/timeslot"
)

// PrewarmTarget is one dashboard variant to keep warm.
type PrewarmTarget struct {
	// Name is a human-readable label for logs.
	Name string

	// Slugs are the beach slugs the dashboard request covers.
	Slugs []string

	// Modes are the recommendation modes to warm for these slugs.
	Modes []recommend.Mode

	// Slots are the forecast slots to warm. Usually just Now; the
	// evening slots churn too fast to be worth prewarming.
	Slots []timeslot.Slot
}

// PrewarmConfig holds configuration for the dashboard prewarm job.
type PrewarmConfig struct {
	// Enabled turns the job on. Default: false.
	Enabled bool

	// Targets are the dashboard variants to warm.
	// If empty, uses DefaultPrewarmTargets.
	Targets []PrewarmTarget

	// Interval is how often the job runs.
	// Default: 4 minutes, just inside the dashboard cache TTL.
	Interval time.Duration

	// Concurrency is the number of concurrent warm operations.
	// Default: 2
	Concurrency int

	// Timeout is the timeout for warming a single variant.
	// Default: 30 seconds
	Timeout time.Duration
}

// DefaultPrewarmConfig returns the default prewarm configuration.
func DefaultPrewarmConfig() PrewarmConfig {
	return PrewarmConfig{
		Enabled:     false,
		Targets:     DefaultPrewarmTargets(),
		Interval:    4 * time.Minute,
		Concurrency: 2,
		Timeout:     30 * time.Second,
	}
}

// DefaultPrewarmTargets returns the dashboard variants worth keeping warm:
// the default south Wales set most visitors land on, plus the busiest
// individual beaches in both modes.
func DefaultPrewarmTargets() []PrewarmTarget {
	return []PrewarmTarget{
		{
			Name:  "default dashboard",
			Slugs: nil, // empty means the service's default set
			Modes: []recommend.Mode{recommend.ModeSwimming, recommend.ModeDipping},
			Slots: []timeslot.Slot{timeslot.Now},
		},
		{
			Name:  "gower",
			Slugs: []string{"rhossili", "langland", "caswell", "three-cliffs"},
			Modes: []recommend.Mode{recommend.ModeSwimming},
			Slots: []timeslot.Slot{timeslot.Now, timeslot.TomorrowAM},
		},
		{
			Name:  "south coast",
			Slugs: []string{"brighton", "hove", "west-wittering"},
			Modes: []recommend.Mode{recommend.ModeSwimming},
			Slots: []timeslot.Slot{timeslot.Now},
		},
	}
}

// variant is one concrete DashboardFor call.
type variant struct {
	name  string
	slugs []string
	mode  recommend.Mode
	slot  timeslot.Slot
}

// allVariants expands the targets into the flat list of calls to make.
func (c PrewarmConfig) allVariants() []variant {
	var out []variant
	for _, t := range c.Targets {
		for _, mode := range t.Modes {
			for _, slot := range t.Slots {
				out = append(out, variant{
					name:  t.Name,
					slugs: t.Slugs,
					mode:  mode,
					slot:  slot,
				})
			}
		}
	}
	return out
}

// TotalVariants returns the number of dashboard variants per run.
func (c PrewarmConfig) TotalVariants() int {
	total := 0
	for _, t := range c.Targets {
		total += len(t.Modes) * len(t.Slots)
	}
	return total
}

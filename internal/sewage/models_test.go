package sewage

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/shorecast/shorecast/internal/beach"
)

func TestAssessStoppedClearanceBoundaries(t *testing.T) {
	tests := []struct {
		name       string
		tier       beach.OverflowTier
		hoursSince int
		want       Status
	}{
		{name: "frequent inside window", tier: beach.TierFrequent, hoursSince: 23, want: StatusRecent},
		{name: "frequent at boundary", tier: beach.TierFrequent, hoursSince: 24, want: StatusClear},
		{name: "moderate inside window", tier: beach.TierModerate, hoursSince: 35, want: StatusRecent},
		{name: "moderate at boundary", tier: beach.TierModerate, hoursSince: 36, want: StatusClear},
		{name: "rare inside window", tier: beach.TierRare, hoursSince: 47, want: StatusRecent},
		{name: "rare at boundary", tier: beach.TierRare, hoursSince: 48, want: StatusClear},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			report := AssessStopped(tt.tier, tt.hoursSince, "test feed")
			assert.Equal(t, tt.want, report.Status)
			if tt.want == StatusRecent {
				assert.NotNil(t, report.HoursSince)
				assert.Equal(t, tt.hoursSince, *report.HoursSince)
				assert.NotEmpty(t, report.Message)
				assert.Equal(t, tt.tier, report.Tier)
			} else {
				assert.Nil(t, report.HoursSince)
				assert.Empty(t, report.Message)
			}
		})
	}
}

func TestTierMessageSharperInsideFirstDay(t *testing.T) {
	early := TierMessage(beach.TierRare, 6)
	late := TierMessage(beach.TierRare, 30)

	assert.NotEqual(t, early, late)
	assert.Contains(t, early, "unusual discharge")
	assert.Contains(t, late, "being cautious")
}

func TestStatusIcons(t *testing.T) {
	assert.Equal(t, "✓", StatusClear.Icon())
	assert.Equal(t, "✗", StatusActive.Icon())
	assert.Equal(t, "!", StatusRecent.Icon())
	assert.Equal(t, "?", StatusUnknown.Icon())
	assert.Equal(t, "?", StatusNoData.Icon())
}

func TestHaversineKm(t *testing.T) {
	// Barry Island to Penarth is roughly 8 km along the coast.
	d := HaversineKm(51.389, -3.271, 51.434, -3.165)
	assert.InDelta(t, 8.9, d, 1.0)

	assert.Zero(t, HaversineKm(51.389, -3.271, 51.389, -3.271))
}

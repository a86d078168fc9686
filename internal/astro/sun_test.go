package astro

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/shorecast/shorecast/internal/beach"
	"github.com/shorecast/shorecast/internal/timeslot"
)

func TestSunSummerVsWinter(t *testing.T) {
	// Rhossili, midsummer vs midwinter.
	summer := Sun(51.568, -4.291, time.Date(2025, time.June, 21, 0, 0, 0, 0, time.UTC))
	winter := Sun(51.568, -4.291, time.Date(2025, time.December, 21, 0, 0, 0, 0, time.UTC))

	assert.Less(t, summer.Sunrise, winter.Sunrise, "summer sun rises earlier")
	assert.Greater(t, summer.Sunset, winter.Sunset, "summer sun sets later")

	assert.Regexp(t, `^\d{2}:\d{2}$`, summer.Sunrise)
	assert.Regexp(t, `^\d{2}:\d{2}$`, summer.Sunset)
}

func TestSunLongitudeShift(t *testing.T) {
	date := time.Date(2025, time.March, 20, 0, 0, 0, 0, time.UTC)
	west := Sun(50.5, -5.0, date)
	east := Sun(50.5, 0.5, date)

	// Further west means later solar events.
	assert.Greater(t, west.Sunrise, east.Sunrise)
	assert.Greater(t, west.Sunset, east.Sunset)
}

func TestShowSunriseBadge(t *testing.T) {
	earlyMorning := time.Date(2025, time.June, 11, 7, 0, 0, 0, time.UTC)
	midday := time.Date(2025, time.June, 11, 12, 0, 0, 0, time.UTC)

	assert.True(t, ShowSunriseBadge(timeslot.Now, earlyMorning))
	assert.False(t, ShowSunriseBadge(timeslot.Now, midday))
	assert.True(t, ShowSunriseBadge(timeslot.TomorrowAM, midday))
	assert.True(t, ShowSunriseBadge(timeslot.DayAfterAM, midday))
	assert.False(t, ShowSunriseBadge(timeslot.Tonight, midday))
}

func TestShowSunsetBadge(t *testing.T) {
	assert.True(t, ShowSunsetBadge(timeslot.Tonight, beach.FacingWest, 10))
	assert.True(t, ShowSunsetBadge(timeslot.TomorrowPM, beach.FacingSouthwest, 25))
	assert.False(t, ShowSunsetBadge(timeslot.Tonight, beach.FacingEast, 10), "east-facing")
	assert.False(t, ShowSunsetBadge(timeslot.Tonight, beach.FacingWest, 60), "cloudy")
	assert.False(t, ShowSunsetBadge(timeslot.Now, beach.FacingWest, 10), "not an evening slot")
}

// Package astro computes approximate sunrise and sunset times and decides
// when the dashboard should surface sunrise or sunset badges.
package astro

import (
	"fmt"
	"math"
	"time"

	"github.com/shorecast/shorecast/internal/beach"
	"github.com/shorecast/shorecast/internal/timeslot"
)

// SunTimes holds formatted HH:MM sunrise and sunset for one location and day.
type SunTimes struct {
	Sunrise string `json:"sunrise"`
	Sunset  string `json:"sunset"`
}

// Sun estimates sunrise and sunset for the given coordinates and date using
// a solar declination approximation. Accuracy is a few minutes, which is
// plenty for "catch the sunrise" messaging.
func Sun(lat, lon float64, date time.Time) SunTimes {
	dayOfYear := float64(date.YearDay())
	latRad := lat * math.Pi / 180

	declination := -23.45 * math.Cos(2*math.Pi*(dayOfYear+10)/365)
	declinationRad := declination * math.Pi / 180

	cosHourAngle := -math.Tan(latRad) * math.Tan(declinationRad)
	cosHourAngle = math.Max(-1, math.Min(1, cosHourAngle))
	hourAngle := math.Acos(cosHourAngle) * 180 / math.Pi

	sunrise := 12 - hourAngle/15 - lon/15
	sunset := 12 + hourAngle/15 - lon/15

	return SunTimes{
		Sunrise: formatHour(sunrise),
		Sunset:  formatHour(sunset),
	}
}

// ShowSunriseBadge reports whether a sunrise callout makes sense: mornings
// viewed live, or any morning forecast slot.
func ShowSunriseBadge(slot timeslot.Slot, target time.Time) bool {
	if slot == timeslot.Now {
		return target.Hour() < 9
	}
	return slot == timeslot.TomorrowAM || slot == timeslot.DayAfterAM
}

// ShowSunsetBadge reports whether a sunset callout makes sense: an evening
// slot at a west-facing beach under mostly clear skies.
func ShowSunsetBadge(slot timeslot.Slot, facing beach.Facing, cloudCover float64) bool {
	evening := slot == timeslot.Tonight || slot == timeslot.TomorrowPM
	return evening && facing.WestFacing() && cloudCover < 30
}

func formatHour(hour float64) string {
	h := int(math.Floor(hour))
	m := int(math.Floor((hour - float64(h)) * 60))
	return fmt.Sprintf("%02d:%02d", h, m)
}

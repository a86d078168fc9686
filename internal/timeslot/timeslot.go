// Package timeslot defines the forecast slots the dashboard and conditions
// endpoints accept, and how each slot maps to a concrete local time.
package timeslot

import (
	"errors"
	"strings"
	"time"
)

// ErrUnknown is returned when a slot identifier is not recognised.
var ErrUnknown = errors.New("unknown time slot")

// Slot identifies a point in time the caller wants conditions for.
type Slot string

const (
	Now        Slot = "now"
	Tonight    Slot = "tonight"
	TomorrowAM Slot = "tomorrow-am"
	TomorrowPM Slot = "tomorrow-pm"
	DayAfterAM Slot = "day-after-am"
)

// Parse validates a slot identifier. The empty string means Now.
func Parse(s string) (Slot, error) {
	if s == "" {
		return Now, nil
	}
	switch Slot(s) {
	case Now, Tonight, TomorrowAM, TomorrowPM, DayAfterAM:
		return Slot(s), nil
	}
	return "", ErrUnknown
}

// IsForecast reports whether the slot refers to a future time.
func (s Slot) IsForecast() bool {
	return s != Now
}

// TargetTime resolves the slot to a concrete time relative to now, in now's
// location. Tonight rolls to the next evening once 20:00 has passed.
func (s Slot) TargetTime(now time.Time) time.Time {
	switch s {
	case Tonight:
		day := 0
		if now.Hour() >= 20 {
			day = 1
		}
		return at(now, day, 20)
	case TomorrowAM:
		return at(now, 1, 8)
	case TomorrowPM:
		return at(now, 1, 17)
	case DayAfterAM:
		return at(now, 2, 8)
	default:
		return now
	}
}

// Label returns the spoken-style label for the slot, e.g. "tomorrow morning"
// or "saturday morning" for the day after tomorrow.
func (s Slot) Label(now time.Time) string {
	switch s {
	case Tonight:
		return "tonight"
	case TomorrowAM:
		return "tomorrow morning"
	case TomorrowPM:
		return "tomorrow evening"
	case DayAfterAM:
		return weekday(s.TargetTime(now)) + " morning"
	default:
		return "right now"
	}
}

// Option is one offerable slot, as surfaced to dashboard clients.
type Option struct {
	ID    Slot   `json:"id"`
	Label string `json:"label"`
	Time  string `json:"time"`
}

// Available returns the slots worth offering at the given local time.
// Tonight disappears from 18:00 since a 20:00 dip is too close to plan for.
func Available(now time.Time) []Option {
	options := []Option{
		{ID: Now, Label: "right now", Time: now.Format("15:04")},
	}
	if now.Hour() < 18 {
		options = append(options, Option{ID: Tonight, Label: "tonight", Time: "20:00"})
	}
	return append(options,
		Option{ID: TomorrowAM, Label: "tomorrow am", Time: "08:00"},
		Option{ID: TomorrowPM, Label: "tomorrow pm", Time: "17:00"},
		Option{ID: DayAfterAM, Label: weekday(now.AddDate(0, 0, 2)), Time: "08:00"},
	)
}

func at(now time.Time, daysAhead, hour int) time.Time {
	return time.Date(now.Year(), now.Month(), now.Day()+daysAhead, hour, 0, 0, 0, now.Location())
}

func weekday(t time.Time) string {
	return strings.ToLower(t.Weekday().String())
}

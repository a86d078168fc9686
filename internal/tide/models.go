// Package tide provides tidal event data for beaches via UK tidal station
// predictions, selecting the most relevant high and low water for a target
// time.
package tide

import (
	"errors"
	"time"
)

// Predefined errors for tide operations.
var (
	// ErrProviderUnavailable is returned when tide data cannot be fetched.
	ErrProviderUnavailable = errors.New("tide provider unavailable")

	// ErrNoEvents is returned when a station reports no tidal events.
	ErrNoEvents = errors.New("no tidal events for station")
)

// EventKind distinguishes high and low water events.
type EventKind string

const (
	HighWater EventKind = "high"
	LowWater  EventKind = "low"
)

// Event is one predicted tidal event at a station.
type Event struct {
	Kind   EventKind `json:"kind"`
	Time   time.Time `json:"time"`
	Height float64   `json:"height"`
}

// Reading is a selected tidal event prepared for display. Known is false
// when no event could be selected, in which case Display is an em dash.
type Reading struct {
	At      time.Time `json:"at,omitempty"`
	Display string    `json:"display"`
	Height  *float64  `json:"height"`
	Known   bool      `json:"known"`
}

// Window pairs the high and low water readings relevant to a target time.
type Window struct {
	High Reading `json:"high"`
	Low  Reading `json:"low"`
}

// Unknown is the placeholder reading used when selection fails.
func unknownReading() Reading {
	return Reading{Display: "—"}
}

// UnknownWindow returns a window with both readings unknown.
func UnknownWindow() Window {
	return Window{High: unknownReading(), Low: unknownReading()}
}

// selectionHorizon bounds how far ahead of the target a future event may be
// and still win over a nearer past event.
const selectionHorizon = 12 * time.Hour

// SelectEvent picks the event most relevant to target: the nearest upcoming
// event within twelve hours if one exists, otherwise the event closest in
// absolute terms. The second return is false when events is empty.
func SelectEvent(events []Event, target time.Time) (Event, bool) {
	var (
		future     *Event
		futureDiff time.Duration
		nearest    *Event
		nearDiff   time.Duration
	)

	for i := range events {
		e := &events[i]
		diff := e.Time.Sub(target)

		if diff >= 0 && diff <= selectionHorizon {
			if future == nil || diff < futureDiff {
				future = e
				futureDiff = diff
			}
		}

		abs := diff
		if abs < 0 {
			abs = -abs
		}
		if nearest == nil || abs < nearDiff {
			nearest = e
			nearDiff = abs
		}
	}

	if future != nil {
		return *future, true
	}
	if nearest != nil {
		return *nearest, true
	}
	return Event{}, false
}

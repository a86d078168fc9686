// Package sewage provides storm-overflow discharge status for beaches,
// dispatching to a per-regulator strategy and applying tier-based clearance
// windows to recent discharges.
package sewage

import (
	"github.com/shorecast/shorecast/internal/beach"
)

// Status classifies the discharge state at a beach.
type Status string

const (
	// StatusClear means no active or recent discharge.
	StatusClear Status = "clear"

	// StatusActive means an outfall is discharging right now.
	StatusActive Status = "active"

	// StatusRecent means a discharge stopped inside the clearance window.
	StatusRecent Status = "recent"

	// StatusNoData means no live feed covers this regulator or beach.
	StatusNoData Status = "no-data"

	// StatusUnknown means the feed failed; treat with caution.
	StatusUnknown Status = "unknown"
)

// Icon returns the single-character marker clients render next to the
// status.
func (s Status) Icon() string {
	switch s {
	case StatusClear:
		return "✓"
	case StatusActive:
		return "✗"
	case StatusRecent:
		return "!"
	default:
		return "?"
	}
}

// Report is the discharge assessment for one beach.
type Report struct {
	Status Status `json:"status"`
	Icon   string `json:"icon"`
	Source string `json:"source"`

	// Tier echoes the beach's overflow tier when a clearance window was
	// applied.
	Tier beach.OverflowTier `json:"context,omitempty"`

	// HoursSince is set for recent discharges.
	HoursSince *int `json:"hoursSince,omitempty"`

	// Message carries the tier guidance for recent discharges.
	Message string `json:"message,omitempty"`

	// Last7DayMinutes is the rolling discharge-duration total where the
	// feed reports durations.
	Last7DayMinutes *int `json:"last7DayMinutes,omitempty"`
}

// tierProfile describes how quickly water at a beach clears after a
// discharge and what to tell users meanwhile.
type tierProfile struct {
	clearanceHours int
	description    string
	messageAmber   string
	messageGreen   string
}

var tierProfiles = map[beach.OverflowTier]tierProfile{
	beach.TierFrequent: {
		clearanceHours: 24,
		description:    "urban beach with regular monitored discharges",
		messageAmber:   "discharge earlier today. water clearing. this beach has frequent overflows but good treatment systems",
		messageGreen:   "discharge yesterday. urban beach with UV treatment and regular testing - water quality rated excellent",
	},
	beach.TierModerate: {
		clearanceHours: 36,
		description:    "popular beach with occasional discharges",
		messageAmber:   "recent discharge. check again in a few hours if concerned",
		messageGreen:   "discharge clearing. popular beach with monitoring",
	},
	beach.TierRare: {
		clearanceHours: 48,
		description:    "remote beach where overflows are unusual",
		messageAmber:   "unusual discharge for this remote beach. recommend waiting 48 hours",
		messageGreen:   "discharge 24-48 hours ago. being cautious as this beach rarely has overflows",
	},
}

func profile(tier beach.OverflowTier) tierProfile {
	if p, ok := tierProfiles[tier]; ok {
		return p
	}
	return tierProfiles[beach.TierModerate]
}

// ClearanceHours returns the clearance window for a tier.
func ClearanceHours(tier beach.OverflowTier) int {
	return profile(tier).clearanceHours
}

// TierDescription returns the human description of a tier.
func TierDescription(tier beach.OverflowTier) string {
	return profile(tier).description
}

// TierMessage returns the guidance message for a discharge that stopped
// hoursSince hours ago, sharper inside the first day.
func TierMessage(tier beach.OverflowTier, hoursSince int) string {
	p := profile(tier)
	if hoursSince < 24 {
		return p.messageAmber
	}
	return p.messageGreen
}

// AssessStopped classifies a discharge that stopped hoursSince hours ago.
// Inside the tier's clearance window it produces a recent report with the
// tier message (the sharper message under 24 hours); beyond it the water is
// considered clear.
func AssessStopped(tier beach.OverflowTier, hoursSince int, source string) Report {
	p := profile(tier)
	if hoursSince >= p.clearanceHours {
		return Report{Status: StatusClear, Icon: StatusClear.Icon(), Source: source}
	}

	message := TierMessage(tier, hoursSince)
	hours := hoursSince
	return Report{
		Status:     StatusRecent,
		Icon:       StatusRecent.Icon(),
		Source:     source,
		Tier:       tier,
		HoursSince: &hours,
		Message:    message,
	}
}

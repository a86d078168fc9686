// Package beach holds the static beach registry and voice-name resolution.
package beach

import "errors"

// ErrNotFound is returned when a slug does not match any known beach.
var ErrNotFound = errors.New("beach not found")

// OverflowTier classifies how often a beach sees sewage overflows, which
// governs how long after a discharge the water is deemed clear again.
type OverflowTier string

const (
	// TierFrequent is an urban beach with regular monitored discharges.
	TierFrequent OverflowTier = "frequent"

	// TierModerate is a popular beach with occasional discharges.
	TierModerate OverflowTier = "moderate"

	// TierRare is a remote beach where overflows are unusual.
	TierRare OverflowTier = "rare"
)

// Facing is the compass orientation a beach faces.
type Facing string

const (
	FacingNorth     Facing = "north"
	FacingNortheast Facing = "northeast"
	FacingEast      Facing = "east"
	FacingSoutheast Facing = "southeast"
	FacingSouth     Facing = "south"
	FacingSouthwest Facing = "southwest"
	FacingWest      Facing = "west"
	FacingNorthwest Facing = "northwest"
)

// WestFacing reports whether the beach faces the setting sun.
func (f Facing) WestFacing() bool {
	return f == FacingWest || f == FacingNorthwest || f == FacingSouthwest
}

// Beach is one entry in the static location table. Immutable after startup.
type Beach struct {
	// Slug is the stable lowercase hyphenated identifier.
	Slug string

	// Name is the display name.
	Name string

	// Area is the local region grouping (e.g. "Gower Peninsula").
	Area string

	// Region is the country-level grouping ("wales" | "england").
	Region string

	Lat float64
	Lon float64

	// Facing is the compass orientation the beach faces.
	Facing Facing

	// StationID is the UK Admiralty tidal station identifier.
	StationID string

	// Company is the water company / regulator identifier.
	Company string

	// CompanyName is the regulator display name used as a source label.
	CompanyName string

	// OverflowTier governs the sewage clearance window for this beach.
	OverflowTier OverflowTier
}

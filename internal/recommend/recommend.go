// Package recommend turns a beach's assembled conditions into a go, caution
// or avoid recommendation for the selected activity mode. It is pure: all
// inputs arrive in the Inputs struct and no I/O happens here.
package recommend

import (
	"fmt"
	"math"
	"strings"

	"github.com/shorecast/shorecast/internal/astro"
	"github.com/shorecast/shorecast/internal/beach"
	"github.com/shorecast/shorecast/internal/marine"
	"github.com/shorecast/shorecast/internal/sewage"
	"github.com/shorecast/shorecast/internal/tide"
	"github.com/shorecast/shorecast/internal/timeslot"
)

// Mode selects the activity the recommendation is for.
type Mode string

const (
	// ModeSwimming is ordinary sea swimming.
	ModeSwimming Mode = "swimming"

	// ModeDipping is cold-water dipping, where colder is better.
	ModeDipping Mode = "dipping"
)

// ErrUnknownMode reports an unrecognised mode value.
var ErrUnknownMode = fmt.Errorf("unknown mode")

// ParseMode validates a mode string, defaulting empty to swimming.
func ParseMode(raw string) (Mode, error) {
	switch Mode(raw) {
	case "":
		return ModeSwimming, nil
	case ModeSwimming:
		return ModeSwimming, nil
	case ModeDipping:
		return ModeDipping, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownMode, raw)
	}
}

// Status is the traffic-light verdict.
type Status string

const (
	StatusGreen Status = "green"
	StatusAmber Status = "amber"
	StatusRed   Status = "red"
)

// Clause is one sentence of the recommendation, tagged with a stable ID so
// clients can style or filter individual clauses.
type Clause struct {
	ID   string `json:"id"`
	Text string `json:"text"`
}

// Recommendation is the engine's verdict for one beach, mode and time slot.
type Recommendation struct {
	Status  Status   `json:"status"`
	Label   string   `json:"statusText"`
	Clauses []Clause `json:"clauses"`
}

// Text joins the clauses into the display sentence, collapsing doubled
// full stops and guaranteeing a trailing one.
func (r Recommendation) Text() string {
	parts := make([]string, 0, len(r.Clauses))
	for _, c := range r.Clauses {
		parts = append(parts, c.Text)
	}
	text := strings.Join(parts, " ")
	text = strings.ReplaceAll(text, "..", ".")
	text = strings.ReplaceAll(text, ". .", ".")
	if text != "" && !strings.HasSuffix(text, ".") {
		text += "."
	}
	return text
}

// Inputs carries everything the engine looks at.
type Inputs struct {
	Beach  beach.Beach
	Marine marine.Snapshot
	Sewage sewage.Report
	Tide   tide.Window
	Sun    astro.SunTimes
	Slot   timeslot.Slot

	// Hour is the local hour of day, used for the sunrise context on the
	// "now" slot.
	Hour int
}

// Wave and wind thresholds for swimming.
const (
	roughWaveHeight  = 2.0
	choppyWaveHeight = 1.5
	gentleWaveHeight = 1.0
	calmWaveHeight   = 0.5
	strongWindSpeed  = 40.0
)

// Sea-temperature bands for dipping.
const (
	mildSeaTemp      = 13.0
	perfectSeaTemp   = 8.0
	excellentSeaTemp = 10.0
	bitterSeaTemp    = 5.0
)

const coldWaterSeaTemp = 12.0

// Recommend produces the verdict for the given inputs and mode.
func Recommend(in Inputs, mode Mode) Recommendation {
	if mode == ModeDipping {
		return dipping(in)
	}
	return swimming(in)
}

func swimming(in Inputs) Recommendation {
	weather := weatherState(in.Marine)

	if in.Sewage.Status == sewage.StatusActive {
		note := weather
		if in.Marine.Precipitation > 2 {
			note = weather + "."
		}
		return Recommendation{
			Status: StatusRed,
			Label:  "avoid",
			Clauses: []Clause{{
				ID:   "sewage-active",
				Text: fmt.Sprintf("**active sewage discharge.** swimming not recommended. %s. try a nearby beach instead.", note),
			}},
		}
	}

	if in.Marine.WaveHeight > roughWaveHeight {
		note := weather + "."
		if in.Marine.Precipitation > 1 {
			note = weather + " making conditions worse."
		}
		return Recommendation{
			Status: StatusRed,
			Label:  "rough",
			Clauses: []Clause{{
				ID:   "rough-seas",
				Text: fmt.Sprintf("**very rough seas** at %.1fm waves. %s dangerous conditions.", in.Marine.WaveHeight, note),
			}},
		}
	}

	sun := sunVisibility(in)

	switch {
	case in.Sewage.Status == sewage.StatusRecent:
		clauses := []Clause{}
		if in.Sewage.Message != "" {
			clauses = append(clauses, Clause{ID: "sewage-recent", Text: "**" + in.Sewage.Message + "**"})
		} else {
			clauses = append(clauses, Clause{ID: "sewage-recent", Text: "**sewage discharge ended 24-48 hours ago.** water should be clear but some prefer to wait."})
		}
		clauses = append(clauses, Clause{ID: "weather", Text: weather})
		if in.Marine.WaveHeight >= gentleWaveHeight {
			clauses = append(clauses, Clause{ID: "waves", Text: fmt.Sprintf("choppy at %.1fm", in.Marine.WaveHeight)})
		}
		if in.Marine.WindSpeed > 25 {
			clauses = append(clauses, Clause{ID: "wind", Text: fmt.Sprintf("wind at %dkm/h", round(in.Marine.WindSpeed))})
		}
		return Recommendation{Status: StatusAmber, Label: "check", Clauses: clauses}

	case in.Marine.WaveHeight >= choppyWaveHeight:
		clauses := []Clause{
			{ID: "waves", Text: fmt.Sprintf("**choppy conditions** at %.1fm waves.", in.Marine.WaveHeight)},
			{ID: "weather", Text: weather},
		}
		if sun != "" {
			clauses = append(clauses, Clause{ID: "sun", Text: sun})
		}
		if in.Marine.WindSpeed > 20 {
			clauses = append(clauses, Clause{ID: "wind", Text: fmt.Sprintf("wind at %dkm/h - find shelter for changing", round(in.Marine.WindSpeed))})
		}
		return Recommendation{Status: StatusAmber, Label: "choppy", Clauses: clauses}

	case in.Marine.WindSpeed > strongWindSpeed:
		return Recommendation{
			Status: StatusAmber,
			Label:  "windy",
			Clauses: []Clause{
				{ID: "wind", Text: fmt.Sprintf("**strong winds** at %dkm/h.", round(in.Marine.WindSpeed))},
				{ID: "weather", Text: weather},
				{ID: "caution", Text: "experienced swimmers only"},
			},
		}
	}

	clauses := []Clause{headlineClause(in.Marine.WaveHeight, weather)}
	if sun != "" {
		clauses = append(clauses, Clause{ID: "sun", Text: sun})
	}
	if wind := breezeClause(in.Marine.WindSpeed); wind != "" {
		clauses = append(clauses, Clause{ID: "wind", Text: wind})
	}
	if in.Sewage.Status == sewage.StatusClear {
		clauses = append(clauses, Clause{ID: "sewage", Text: "no sewage alerts"})
	}
	if uv := uvClause(in.Marine); uv != "" {
		clauses = append(clauses, Clause{ID: "uv", Text: uv})
	}
	if in.Tide.High.Known {
		clauses = append(clauses, Clause{ID: "tide", Text: fmt.Sprintf("high tide %s, low %s", in.Tide.High.Display, in.Tide.Low.Display)})
	}
	if in.Marine.SeaTemp != nil && *in.Marine.SeaTemp < coldWaterSeaTemp {
		clauses = append(clauses, Clause{ID: "sea-temp", Text: fmt.Sprintf("water's %d°C - bring warm layers for afterwards", round(*in.Marine.SeaTemp))})
	}

	return Recommendation{Status: StatusGreen, Label: "excellent", Clauses: clauses}
}

func dipping(in Inputs) Recommendation {
	weather := weatherState(in.Marine)

	if in.Sewage.Status == sewage.StatusActive || in.Sewage.Status == sewage.StatusRecent {
		return Recommendation{
			Status: StatusRed,
			Label:  "wait",
			Clauses: []Clause{{
				ID:   "sewage",
				Text: fmt.Sprintf("**sewage discharge recently.** %s. wait 48 hours for dipping.", weather),
			}},
		}
	}

	if feels, ok := in.Marine.EffectiveFeelsLike(); ok && feels < 0 {
		note := weather
		if in.Marine.Precipitation > 1 {
			note = weather + " adding to the challenge."
		}
		return Recommendation{
			Status: StatusRed,
			Label:  "dangerous",
			Clauses: []Clause{{
				ID:   "hypothermia",
				Text: fmt.Sprintf("**severe hypothermia risk.** feels like %d°C outside. %s. recovery will be brutal.", round(feels), note),
			}},
		}
	}

	if in.Marine.SeaTemp == nil {
		return Recommendation{
			Status: StatusAmber,
			Label:  "unknown",
			Clauses: []Clause{
				{ID: "sea-temp", Text: "**sea temperature unavailable.** " + weather + "."},
				{ID: "caution", Text: "check conditions on arrival before getting in"},
			},
		}
	}

	seaTemp := *in.Marine.SeaTemp
	sun := sunVisibility(in)
	feels, feelsKnown := in.Marine.EffectiveFeelsLike()

	switch {
	case seaTemp >= mildSeaTemp:
		return Recommendation{
			Status: StatusAmber,
			Label:  "mild",
			Clauses: []Clause{
				{ID: "sea-temp", Text: fmt.Sprintf("**%d°C - too mild for cold therapy.** %s.", round(seaTemp), weather)},
				{ID: "advice", Text: "better for a longer, gentler dip"},
			},
		}

	case seaTemp <= perfectSeaTemp:
		clauses := []Clause{{ID: "sea-temp", Text: fmt.Sprintf("**pure winter magic.** water at %d°C. %s.", round(seaTemp), weather)}}
		if sun != "" {
			clauses = append(clauses, Clause{ID: "sun", Text: sun})
		}
		switch {
		case in.Marine.WindSpeed < 15:
			clauses = append(clauses, Clause{ID: "wind", Text: "still conditions for getting changed"})
		case in.Marine.WindSpeed < 25:
			clauses = append(clauses, Clause{ID: "wind", Text: "moderate breeze - find shelter"})
		default:
			clauses = append(clauses, Clause{ID: "wind", Text: fmt.Sprintf("wind at %dkm/h - you'll earn this one", round(in.Marine.WindSpeed))})
		}
		if feelsKnown && feels < 5 {
			clauses = append(clauses, Clause{ID: "feels-like", Text: fmt.Sprintf("feels like %d°C outside - warm layers essential for recovery. hot drink recommended", round(feels))})
		}
		if in.Sewage.Status == sewage.StatusClear {
			clauses = append(clauses, Clause{ID: "sewage", Text: "water quality clear"})
		}
		if seaTemp <= bitterSeaTemp {
			clauses = append(clauses, Clause{ID: "safe-time", Text: "safe time: 2-3 minutes"})
		} else {
			clauses = append(clauses, Clause{ID: "safe-time", Text: "safe time: 3-5 minutes"})
		}
		return Recommendation{Status: StatusGreen, Label: "perfect", Clauses: clauses}

	case seaTemp <= excellentSeaTemp:
		clauses := []Clause{{ID: "sea-temp", Text: fmt.Sprintf("**crisp and clarifying.** %d°C. %s.", round(seaTemp), weather)}}
		if sun != "" {
			clauses = append(clauses, Clause{ID: "sun", Text: sun})
		}
		if in.Marine.WindSpeed < 15 {
			clauses = append(clauses, Clause{ID: "wind", Text: "calm conditions"})
		} else if in.Marine.WindSpeed > 30 {
			clauses = append(clauses, Clause{ID: "wind", Text: fmt.Sprintf("wind at %dkm/h - breezy recovery", round(in.Marine.WindSpeed))})
		}
		if feelsKnown && feels < 8 {
			clauses = append(clauses, Clause{ID: "feels-like", Text: fmt.Sprintf("feels like %d°C - bring extra layers", round(feels))})
		}
		clauses = append(clauses, Clause{ID: "safe-time", Text: "safe time: 5-10 minutes depending on your experience"})
		return Recommendation{Status: StatusGreen, Label: "excellent", Clauses: clauses}

	default:
		clauses := []Clause{{ID: "sea-temp", Text: fmt.Sprintf("**gentle cold therapy.** %d°C. %s.", round(seaTemp), weather)}}
		if sun != "" {
			clauses = append(clauses, Clause{ID: "sun", Text: sun})
		}
		clauses = append(clauses, Clause{ID: "advice", Text: "still bracing, still good"})
		return Recommendation{Status: StatusAmber, Label: "mild", Clauses: clauses}
	}
}

func headlineClause(waveHeight float64, weather string) Clause {
	switch {
	case waveHeight < calmWaveHeight:
		return Clause{ID: "headline", Text: fmt.Sprintf("**perfect conditions.** calm water like glass. %s.", weather)}
	case waveHeight < gentleWaveHeight:
		return Clause{ID: "headline", Text: fmt.Sprintf("**lovely conditions.** gentle rolling waves. %s.", weather)}
	default:
		return Clause{ID: "headline", Text: fmt.Sprintf("**good swimming weather.** moderate swell. %s.", weather)}
	}
}

func breezeClause(windSpeed float64) string {
	switch {
	case windSpeed < 10:
		return "barely any breeze"
	case windSpeed < 20:
		return "light breeze"
	case windSpeed < 30:
		return "moderate breeze - nothing to worry about"
	default:
		return ""
	}
}

func uvClause(snap marine.Snapshot) string {
	switch {
	case snap.UVIndex >= 6:
		return fmt.Sprintf("UV high (%s) - definitely bring sun cream", trimFloat(snap.UVIndex))
	case snap.UVIndex >= 3 && snap.CloudCover < 50:
		return fmt.Sprintf("UV moderate (%s) - sun cream recommended", trimFloat(snap.UVIndex))
	default:
		return ""
	}
}

// weatherState summarises precipitation and cloud cover in one phrase.
// Precipitation wins over cloud.
func weatherState(snap marine.Snapshot) string {
	switch {
	case snap.Precipitation > 2:
		return "heavy rain forecast"
	case snap.Precipitation > 0.5:
		return "light rain expected"
	case snap.CloudCover < 20:
		return "clear skies"
	case snap.CloudCover < 50:
		return "partly cloudy"
	case snap.CloudCover < 80:
		return "mostly cloudy"
	default:
		return "overcast conditions"
	}
}

// sunVisibility returns a sunrise or sunset remark when the slot and the
// beach's aspect make one worth mentioning.
func sunVisibility(in Inputs) string {
	morning := (in.Slot == timeslot.Now && in.Hour < 9) ||
		in.Slot == timeslot.TomorrowAM || in.Slot == timeslot.DayAfterAM
	evening := in.Slot == timeslot.Tonight || in.Slot == timeslot.TomorrowPM

	if morning {
		switch {
		case in.Marine.CloudCover < 20:
			return fmt.Sprintf("sunrise at %s will be spectacular", in.Sun.Sunrise)
		case in.Marine.CloudCover > 70:
			return fmt.Sprintf("sunrise at %s hidden by cloud", in.Sun.Sunrise)
		default:
			return fmt.Sprintf("sunrise at %s", in.Sun.Sunrise)
		}
	}

	if evening && in.Beach.Facing.WestFacing() {
		switch {
		case in.Marine.CloudCover < 20:
			return fmt.Sprintf("sunset at %s looking golden", in.Sun.Sunset)
		case in.Marine.CloudCover > 70:
			return fmt.Sprintf("sunset at %s will be muted", in.Sun.Sunset)
		default:
			return fmt.Sprintf("sunset at %s", in.Sun.Sunset)
		}
	}

	return ""
}

func round(v float64) int {
	return int(math.Round(v))
}

func trimFloat(v float64) string {
	return strings.TrimSuffix(fmt.Sprintf("%.1f", v), ".0")
}

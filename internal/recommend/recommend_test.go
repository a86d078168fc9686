package recommend

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shorecast/shorecast/internal/astro"
	"github.com/shorecast/shorecast/internal/beach"
	"github.com/shorecast/shorecast/internal/marine"
	"github.com/shorecast/shorecast/internal/sewage"
	"github.com/shorecast/shorecast/internal/tide"
	"github.com/shorecast/shorecast/internal/timeslot"
)

func float(v float64) *float64 { return &v }

func calmInputs() Inputs {
	return Inputs{
		Beach: beach.Beach{Slug: "barry-island", Facing: beach.FacingSouth},
		Marine: marine.Snapshot{
			SeaTemp:    float(14),
			WaveHeight: 0.3,
			WindSpeed:  8,
			CloudCover: 10,
			UVIndex:    2,
			AirTemp:    float(18),
			FeelsLike:  float(18),
		},
		Sewage: sewage.Report{Status: sewage.StatusClear},
		Tide:   tide.Window{High: tide.Reading{Display: "14:32", Known: true}, Low: tide.Reading{Display: "08:05", Known: true}},
		Sun:    astro.SunTimes{Sunrise: "05:10", Sunset: "21:20"},
		Slot:   timeslot.Now,
		Hour:   12,
	}
}

func TestParseMode(t *testing.T) {
	mode, err := ParseMode("")
	require.NoError(t, err)
	assert.Equal(t, ModeSwimming, mode)

	mode, err = ParseMode("dipping")
	require.NoError(t, err)
	assert.Equal(t, ModeDipping, mode)

	_, err = ParseMode("surfing")
	assert.ErrorIs(t, err, ErrUnknownMode)
}

func TestSwimmingActiveSewageIsRed(t *testing.T) {
	in := calmInputs()
	in.Sewage = sewage.Report{Status: sewage.StatusActive}

	rec := Recommend(in, ModeSwimming)

	assert.Equal(t, StatusRed, rec.Status)
	assert.Equal(t, "avoid", rec.Label)
	assert.Contains(t, rec.Text(), "active sewage discharge")
	assert.Contains(t, rec.Text(), "try a nearby beach")
}

func TestSwimmingRoughSeasBeatEverythingButSewage(t *testing.T) {
	in := calmInputs()
	in.Marine.WaveHeight = 2.4

	rec := Recommend(in, ModeSwimming)

	assert.Equal(t, StatusRed, rec.Status)
	assert.Equal(t, "rough", rec.Label)
	assert.Contains(t, rec.Text(), "very rough seas** at 2.4m")

	in.Sewage.Status = sewage.StatusActive
	rec = Recommend(in, ModeSwimming)
	assert.Equal(t, "avoid", rec.Label)
}

func TestSwimmingRecentSewageIsAmber(t *testing.T) {
	in := calmInputs()
	in.Sewage = sewage.Report{Status: sewage.StatusRecent, Message: "recent discharge. check again in a few hours if concerned"}

	rec := Recommend(in, ModeSwimming)

	assert.Equal(t, StatusAmber, rec.Status)
	assert.Equal(t, "check", rec.Label)
	assert.Contains(t, rec.Text(), "**recent discharge. check again in a few hours if concerned**")
}

func TestSwimmingChoppyAndWindyBands(t *testing.T) {
	in := calmInputs()
	in.Marine.WaveHeight = 1.7

	rec := Recommend(in, ModeSwimming)
	assert.Equal(t, StatusAmber, rec.Status)
	assert.Equal(t, "choppy", rec.Label)

	in.Marine.WaveHeight = 0.3
	in.Marine.WindSpeed = 45
	rec = Recommend(in, ModeSwimming)
	assert.Equal(t, StatusAmber, rec.Status)
	assert.Equal(t, "windy", rec.Label)
	assert.Contains(t, rec.Text(), "experienced swimmers only")
}

func TestSwimmingGreenHeadlineBands(t *testing.T) {
	in := calmInputs()

	rec := Recommend(in, ModeSwimming)
	require.Equal(t, StatusGreen, rec.Status)
	assert.Equal(t, "excellent", rec.Label)
	assert.Contains(t, rec.Text(), "calm water like glass")
	assert.Contains(t, rec.Text(), "no sewage alerts")
	assert.Contains(t, rec.Text(), "high tide 14:32, low 08:05")

	in.Marine.WaveHeight = 0.7
	rec = Recommend(in, ModeSwimming)
	assert.Contains(t, rec.Text(), "gentle rolling waves")

	in.Marine.WaveHeight = 1.2
	rec = Recommend(in, ModeSwimming)
	assert.Contains(t, rec.Text(), "moderate swell")
}

func TestSwimmingColdWaterWarning(t *testing.T) {
	in := calmInputs()
	in.Marine.SeaTemp = float(9.6)

	rec := Recommend(in, ModeSwimming)
	assert.Contains(t, rec.Text(), "water's 10°C - bring warm layers")
}

func TestSwimmingUVGuidance(t *testing.T) {
	in := calmInputs()
	in.Marine.UVIndex = 7

	rec := Recommend(in, ModeSwimming)
	assert.Contains(t, rec.Text(), "UV high (7)")

	in.Marine.UVIndex = 4
	in.Marine.CloudCover = 30
	rec = Recommend(in, ModeSwimming)
	assert.Contains(t, rec.Text(), "UV moderate (4)")

	in.Marine.CloudCover = 60
	rec = Recommend(in, ModeSwimming)
	assert.NotContains(t, rec.Text(), "UV moderate")
}

func TestDippingSewagePrecedence(t *testing.T) {
	// Dipping treats recent discharges as a hard stop where swimming only
	// downgrades to amber.
	in := calmInputs()
	in.Sewage = sewage.Report{Status: sewage.StatusRecent, Message: "recent discharge"}

	rec := Recommend(in, ModeDipping)
	assert.Equal(t, StatusRed, rec.Status)
	assert.Equal(t, "wait", rec.Label)
	assert.Contains(t, rec.Text(), "wait 48 hours for dipping")

	swim := Recommend(in, ModeSwimming)
	assert.Equal(t, StatusAmber, swim.Status)
}

func TestDippingHypothermiaRisk(t *testing.T) {
	in := calmInputs()
	in.Marine.FeelsLike = float(-3)

	rec := Recommend(in, ModeDipping)
	assert.Equal(t, StatusRed, rec.Status)
	assert.Equal(t, "dangerous", rec.Label)
	assert.Contains(t, rec.Text(), "feels like -3°C")
}

func TestDippingTemperatureInversion(t *testing.T) {
	// Colder water scores better for dipping.
	in := calmInputs()

	in.Marine.SeaTemp = float(15)
	rec := Recommend(in, ModeDipping)
	assert.Equal(t, StatusAmber, rec.Status)
	assert.Equal(t, "mild", rec.Label)
	assert.Contains(t, rec.Text(), "too mild for cold therapy")

	in.Marine.SeaTemp = float(7)
	rec = Recommend(in, ModeDipping)
	assert.Equal(t, StatusGreen, rec.Status)
	assert.Equal(t, "perfect", rec.Label)
	assert.Contains(t, rec.Text(), "pure winter magic")
	assert.Contains(t, rec.Text(), "safe time: 3-5 minutes")

	in.Marine.SeaTemp = float(4)
	rec = Recommend(in, ModeDipping)
	assert.Equal(t, StatusGreen, rec.Status)
	assert.Equal(t, "perfect", rec.Label)
	assert.Contains(t, rec.Text(), "safe time: 2-3 minutes")
	assert.NotContains(t, rec.Text(), "safe time: 3-5 minutes")

	in.Marine.SeaTemp = float(9.5)
	rec = Recommend(in, ModeDipping)
	assert.Equal(t, StatusGreen, rec.Status)
	assert.Equal(t, "excellent", rec.Label)
	assert.Contains(t, rec.Text(), "crisp and clarifying")
	assert.Contains(t, rec.Text(), "safe time: 5-10 minutes")

	in.Marine.SeaTemp = float(11.5)
	rec = Recommend(in, ModeDipping)
	assert.Equal(t, StatusAmber, rec.Status)
	assert.Equal(t, "mild", rec.Label)
	assert.Contains(t, rec.Text(), "gentle cold therapy")
}

func TestDippingMissingSeaTemp(t *testing.T) {
	in := calmInputs()
	in.Marine.SeaTemp = nil

	rec := Recommend(in, ModeDipping)
	assert.Equal(t, StatusAmber, rec.Status)
	assert.Equal(t, "unknown", rec.Label)
	assert.Contains(t, rec.Text(), "sea temperature unavailable")
}

func TestDippingFeelsLikeLayers(t *testing.T) {
	in := calmInputs()
	in.Marine.SeaTemp = float(7)
	in.Marine.FeelsLike = float(3)

	rec := Recommend(in, ModeDipping)
	assert.Contains(t, rec.Text(), "feels like 3°C outside - warm layers essential")
}

func TestSunVisibility(t *testing.T) {
	in := calmInputs()
	in.Slot = timeslot.TomorrowAM
	in.Marine.CloudCover = 10

	rec := Recommend(in, ModeSwimming)
	assert.Contains(t, rec.Text(), "sunrise at 05:10 will be spectacular")

	// Sunset only mentioned for west-facing beaches.
	in.Slot = timeslot.TomorrowPM
	rec = Recommend(in, ModeSwimming)
	assert.NotContains(t, rec.Text(), "sunset")

	in.Beach.Facing = beach.FacingWest
	rec = Recommend(in, ModeSwimming)
	assert.Contains(t, rec.Text(), "sunset at 21:20 looking golden")

	in.Marine.CloudCover = 85
	rec = Recommend(in, ModeSwimming)
	assert.Contains(t, rec.Text(), "sunset at 21:20 will be muted")
}

func TestTextNormalisesPunctuation(t *testing.T) {
	rec := Recommendation{Clauses: []Clause{
		{ID: "a", Text: "first clause."},
		{ID: "b", Text: "second clause"},
	}}
	assert.Equal(t, "first clause. second clause.", rec.Text())

	rec = Recommendation{Clauses: []Clause{{ID: "a", Text: "ends twice.."}}}
	assert.Equal(t, "ends twice.", rec.Text())
}

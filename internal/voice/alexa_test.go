package voice

import (
	"context"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shorecast/shorecast/internal/beach"
	"github.com/shorecast/shorecast/internal/conditions"
	"github.com/shorecast/shorecast/internal/marine"
	"github.com/shorecast/shorecast/internal/sewage"
	"github.com/shorecast/shorecast/internal/tide"
)

type stubTideProvider struct{}

func (stubTideProvider) TidalEvents(_ context.Context, _ string, _ int) ([]tide.Event, error) {
	base := time.Now().Add(3 * time.Hour)
	return []tide.Event{
		{Kind: tide.HighWater, Time: base, Height: 5.0},
		{Kind: tide.LowWater, Time: base.Add(6 * time.Hour), Height: 1.2},
	}, nil
}

func (stubTideProvider) Name() string { return "stub-tide" }

type stubMarineProvider struct{ fail bool }

func (p stubMarineProvider) Snapshot(_ context.Context, _, _ float64, _ time.Time) (*marine.Snapshot, error) {
	if p.fail {
		return nil, marine.ErrNoData
	}
	seaTemp := 12.4
	return &marine.Snapshot{SeaTemp: &seaTemp, WaveHeight: 0.8, WindSpeed: 10, CloudCover: 40}, nil
}

func (stubMarineProvider) Name() string { return "stub-marine" }

type clearSewage struct{}

func (clearSewage) Report(_ context.Context, _ beach.Beach, _ time.Time) (sewage.Report, error) {
	return sewage.Report{Status: sewage.StatusClear, Icon: "✓", Source: "Welsh Water"}, nil
}

func (clearSewage) Name() string { return "stub" }

func newHandler(t *testing.T, marineProvider stubMarineProvider) *Handler {
	t.Helper()

	registry := beach.NewRegistry()
	svc := conditions.NewService(conditions.ServiceConfig{
		Tides:  tide.NewService(tide.ServiceConfig{Provider: stubTideProvider{}, Logger: zerolog.Nop()}),
		Marine: marine.NewService(marine.ServiceConfig{Provider: marineProvider, Logger: zerolog.Nop()}),
		Sewage: sewage.NewService(sewage.ServiceConfig{
			Strategies: map[string]sewage.Strategy{beach.CompanyWelshWater: clearSewage{}},
			Logger:     zerolog.Nop(),
		}),
		Registry: registry,
		Logger:   zerolog.Nop(),
	})
	return NewHandler(svc, registry, zerolog.Nop())
}

func conditionsRequest(location string) Request {
	slots := map[string]Slot{}
	if location != "" {
		slots["location"] = Slot{Value: location}
	}
	return Request{
		Version: "1.0",
		Request: RequestBody{
			Type:   "IntentRequest",
			Intent: &Intent{Name: "GetConditionsIntent", Slots: slots},
		},
	}
}

func TestHandleLaunchRequest(t *testing.T) {
	h := newHandler(t, stubMarineProvider{})

	resp := h.Handle(context.Background(), Request{Request: RequestBody{Type: "LaunchRequest"}})

	assert.Equal(t, "Welcome to Shorecast. Ask me about any beach.", resp.Response.OutputSpeech.Text)
	assert.False(t, resp.Response.ShouldEndSession)
}

func TestHandleConditionsIntent(t *testing.T) {
	h := newHandler(t, stubMarineProvider{})

	resp := h.Handle(context.Background(), conditionsRequest("Barry Island"))

	text := resp.Response.OutputSpeech.Text
	assert.Contains(t, text, "Barry Island. Water 12 degrees. Waves 0.8 metres.")
	assert.Contains(t, text, "No sewage alerts.")
	assert.True(t, resp.Response.ShouldEndSession)
}

func TestHandleConditionsIntentSpokenAlias(t *testing.T) {
	h := newHandler(t, stubMarineProvider{})

	resp := h.Handle(context.Background(), conditionsRequest("rhossili bay"))
	assert.Contains(t, resp.Response.OutputSpeech.Text, "Rhossili.")
}

func TestHandleConditionsIntentMissingSlot(t *testing.T) {
	h := newHandler(t, stubMarineProvider{})

	resp := h.Handle(context.Background(), conditionsRequest(""))

	assert.Equal(t, "Which beach?", resp.Response.OutputSpeech.Text)
	assert.False(t, resp.Response.ShouldEndSession)
}

func TestHandleConditionsIntentUnknownBeach(t *testing.T) {
	h := newHandler(t, stubMarineProvider{})

	resp := h.Handle(context.Background(), conditionsRequest("Bondi"))

	assert.Equal(t, "Sorry, I don't have Bondi.", resp.Response.OutputSpeech.Text)
	assert.True(t, resp.Response.ShouldEndSession)
}

func TestHandleConditionsIntentUpstreamFailure(t *testing.T) {
	h := newHandler(t, stubMarineProvider{fail: true})

	resp := h.Handle(context.Background(), conditionsRequest("Barry Island"))

	assert.Equal(t, "Sorry, couldn't fetch conditions.", resp.Response.OutputSpeech.Text)
	require.True(t, resp.Response.ShouldEndSession)
}

func TestHandleUnrecognisedRequest(t *testing.T) {
	h := newHandler(t, stubMarineProvider{})

	resp := h.Handle(context.Background(), Request{Request: RequestBody{Type: "SessionEndedRequest"}})
	assert.Equal(t, "Sorry, didn't understand.", resp.Response.OutputSpeech.Text)
}

// Package voice serves the Alexa skill endpoint. Whatever goes wrong, the
// skill answers with speech rather than an error status.
package voice

import (
	"context"
	"fmt"
	"math"

	"github.com/rs/zerolog"

	"github.com/shorecast/shorecast/internal/beach"
	"github.com/shorecast/shorecast/internal/conditions"
	"github.com/shorecast/shorecast/internal/recommend"
	"github.com/shorecast/shorecast/internal/sewage"
)

// Alexa request envelope, reduced to the fields the skill reads.
type Request struct {
	Version string      `json:"version"`
	Request RequestBody `json:"request"`
}

type RequestBody struct {
	Type   string  `json:"type"`
	Intent *Intent `json:"intent,omitempty"`
}

type Intent struct {
	Name  string          `json:"name"`
	Slots map[string]Slot `json:"slots"`
}

type Slot struct {
	Value string `json:"value"`
}

// Response is the Alexa response envelope.
type Response struct {
	Version  string       `json:"version"`
	Response ResponseBody `json:"response"`
}

type ResponseBody struct {
	OutputSpeech     OutputSpeech `json:"outputSpeech"`
	ShouldEndSession bool         `json:"shouldEndSession"`
}

type OutputSpeech struct {
	Type string `json:"type"`
	Text string `json:"text"`
}

const intentGetConditions = "GetConditionsIntent"

// Handler answers Alexa requests from live beach conditions.
type Handler struct {
	conditions *conditions.Service
	registry   *beach.Registry
	logger     zerolog.Logger
}

// NewHandler creates the Alexa handler.
func NewHandler(svc *conditions.Service, registry *beach.Registry, logger zerolog.Logger) *Handler {
	return &Handler{conditions: svc, registry: registry, logger: logger}
}

// Handle produces the spoken response for a request.
func (h *Handler) Handle(ctx context.Context, req Request) Response {
	switch {
	case req.Request.Type == "LaunchRequest":
		return speak("Welcome to Shorecast. Ask me about any beach.", false)

	case req.Request.Type == "IntentRequest" && req.Request.Intent != nil && req.Request.Intent.Name == intentGetConditions:
		return h.conditionsIntent(ctx, req.Request.Intent)

	default:
		return speak("Sorry, didn't understand.", true)
	}
}

func (h *Handler) conditionsIntent(ctx context.Context, intent *Intent) Response {
	location := intent.Slots["location"].Value
	if location == "" {
		return speak("Which beach?", false)
	}

	b, err := h.registry.Resolve(location)
	if err != nil {
		return speak(fmt.Sprintf("Sorry, I don't have %s.", location), true)
	}

	current, err := h.conditions.ConditionsFor(ctx, b.Slug, recommend.ModeSwimming)
	if err != nil {
		h.logger.Warn().Err(err).Str("beach", b.Slug).Msg("alexa conditions lookup failed")
		return speak("Sorry, couldn't fetch conditions.", true)
	}

	return speak(speech(b.Name, current), true)
}

func speech(name string, c *conditions.Conditions) string {
	water := "unknown"
	if c.SeaTemp != nil {
		water = fmt.Sprintf("%d", int(math.Round(*c.SeaTemp)))
	}

	sewageNote := "Check sewage status."
	if c.Sewage.Status == sewage.StatusClear {
		sewageNote = "No sewage alerts."
	}

	return fmt.Sprintf("%s. Water %s degrees. Waves %.1f metres. High tide at %s, low tide at %s. %s",
		name, water, c.WaveHeight, c.Tide.High, c.Tide.Low, sewageNote)
}

func speak(text string, endSession bool) Response {
	return Response{
		Version: "1.0",
		Response: ResponseBody{
			OutputSpeech:     OutputSpeech{Type: "PlainText", Text: text},
			ShouldEndSession: endSession,
		},
	}
}

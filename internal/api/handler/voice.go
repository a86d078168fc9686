package handler

import (
	"encoding/json"
	"net/http"

	"github.com/shorecast/shorecast/internal/api/response"
	"github.com/shorecast/shorecast/internal/voice"
)

// VoiceHandler serves the Alexa skill endpoint.
type VoiceHandler struct {
	alexa *voice.Handler
}

// NewVoiceHandler creates a VoiceHandler.
func NewVoiceHandler(alexa *voice.Handler) *VoiceHandler {
	return &VoiceHandler{alexa: alexa}
}

// Alexa handles POST /alexa. The skill contract requires a spoken answer
// with status 200 no matter what, including malformed request bodies.
func (h *VoiceHandler) Alexa(w http.ResponseWriter, r *http.Request) {
	var req voice.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.JSON(w, r, http.StatusOK, voice.Response{
			Version: "1.0",
			Response: voice.ResponseBody{
				OutputSpeech:     voice.OutputSpeech{Type: "PlainText", Text: "Something went wrong."},
				ShouldEndSession: true,
			},
		})
		return
	}

	response.JSON(w, r, http.StatusOK, h.alexa.Handle(r.Context(), req))
}

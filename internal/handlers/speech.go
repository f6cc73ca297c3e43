package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"dayone/internal/contextutil"
	"dayone/internal/service"
)

// SpeechHandler handles HTTP requests for text-to-speech synthesis.
type SpeechHandler struct {
	speech service.SpeechService
	logger *slog.Logger
}

// NewSpeechHandler creates a new SpeechHandler.
func NewSpeechHandler(speech service.SpeechService) *SpeechHandler {
	return &SpeechHandler{
		speech: speech,
		logger: slog.Default(),
	}
}

// SpeechRequest represents the HTTP request payload for synthesis.
type SpeechRequest struct {
	Text    string `json:"text"`
	VoiceID string `json:"voice_id,omitempty"`
}

// ServeHTTP handles POST /api/tts. The response body is the raw audio
// stream from the synthesis gateway.
func (h *SpeechHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var req SpeechRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	audio, err := h.speech.Synthesize(ctx, service.SpeechRequest{
		Text:    req.Text,
		VoiceID: req.VoiceID,
	})
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to synthesize speech")
		return
	}

	w.Header().Set("Content-Type", "audio/mpeg")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(audio)
}

package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_speech_service.go -package=mocks -mock_names=SpeechService=MockSpeechService,SpeechGateway=MockSpeechGateway dayone/internal/service SpeechService,SpeechGateway

import (
	"context"
	"log/slog"

	"dayone/internal/contextutil"
	"dayone/internal/playback"
	"dayone/internal/tts"
)

// SpeechGateway is the speech synthesis endpoint, from the service layer's
// perspective.
type SpeechGateway interface {
	// Synthesize converts text to audio bytes using the given voice.
	Synthesize(ctx context.Context, text, voiceID string) ([]byte, error)
}

// SpeechRequest holds the fields for a synthesis request.
type SpeechRequest struct {
	Text    string
	VoiceID string // Optional; empty selects by text content
}

// SpeechService converts text to speech through the synthesis gateway.
type SpeechService interface {
	// Synthesize returns audio bytes for the text. Markdown structure is
	// flattened before synthesis, and the Hindi voice is chosen when the
	// text contains Devanagari runes.
	Synthesize(ctx context.Context, req SpeechRequest) ([]byte, error)
}

// speechService implements SpeechService.
type speechService struct {
	gateway      SpeechGateway
	defaultVoice string
	hindiVoice   string
	logger       *slog.Logger
}

// NewSpeechService creates a new SpeechService.
func NewSpeechService(gateway SpeechGateway, defaultVoice, hindiVoice string) SpeechService {
	return &speechService{
		gateway:      gateway,
		defaultVoice: defaultVoice,
		hindiVoice:   hindiVoice,
		logger:       slog.Default(),
	}
}

// Synthesize returns audio bytes for the text.
func (s *speechService) Synthesize(ctx context.Context, req SpeechRequest) ([]byte, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if req.Text == "" {
		logger.WarnContext(ctx, "empty text in synthesis request")
		return nil, &ValidationError{Field: "text", Message: "cannot be empty"}
	}

	text := tts.Flatten(req.Text)
	if text == "" {
		// Markdown-only input (e.g. a bare horizontal rule); nothing to speak.
		return nil, &ValidationError{Field: "text", Message: "no speakable content"}
	}

	voiceID := req.VoiceID
	if voiceID == "" {
		voiceID = s.defaultVoice
		if playback.ContainsDevanagari(text) {
			voiceID = s.hindiVoice
		}
	}

	audio, err := s.gateway.Synthesize(ctx, text, voiceID)
	if err != nil {
		logger.ErrorContext(ctx, "speech synthesis failed", "voice_id", voiceID, "error", err)
		return nil, WrapError(ErrExternalService, err.Error())
	}

	logger.InfoContext(ctx, "speech synthesized", "voice_id", voiceID, "text_length", len(text), "audio_bytes", len(audio))
	return audio, nil
}

package handlers

import (
	"bytes"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/mock/gomock"

	"dayone/internal/service"
	"dayone/internal/service/mocks"
)

func TestSpeechHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		mockSetup  func(m *mocks.MockSpeechService)
		wantStatus int
		wantAudio  string
	}{
		{
			name: "successful synthesis",
			body: `{"text":"good morning"}`,
			mockSetup: func(m *mocks.MockSpeechService) {
				m.EXPECT().
					Synthesize(gomock.Any(), service.SpeechRequest{Text: "good morning"}).
					Return([]byte("mpeg-bytes"), nil)
			},
			wantStatus: http.StatusOK,
			wantAudio:  "mpeg-bytes",
		},
		{
			name: "explicit voice forwarded",
			body: `{"text":"hello","voice_id":"voice-9"}`,
			mockSetup: func(m *mocks.MockSpeechService) {
				m.EXPECT().
					Synthesize(gomock.Any(), service.SpeechRequest{Text: "hello", VoiceID: "voice-9"}).
					Return([]byte("x"), nil)
			},
			wantStatus: http.StatusOK,
			wantAudio:  "x",
		},
		{
			name:       "invalid json body",
			body:       `{"text"`,
			mockSetup:  func(m *mocks.MockSpeechService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "empty text rejected",
			body: `{"text":""}`,
			mockSetup: func(m *mocks.MockSpeechService) {
				m.EXPECT().
					Synthesize(gomock.Any(), gomock.Any()).
					Return(nil, &service.ValidationError{Field: "text", Message: "text is required"})
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "gateway failure maps to bad gateway",
			body: `{"text":"hello"}`,
			mockSetup: func(m *mocks.MockSpeechService) {
				m.EXPECT().
					Synthesize(gomock.Any(), gomock.Any()).
					Return(nil, service.WrapError(service.ErrExternalService, "tts unavailable"))
			},
			wantStatus: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockSpeech := mocks.NewMockSpeechService(ctrl)
			tt.mockSetup(mockSpeech)
			handler := NewSpeechHandler(mockSpeech)

			req := httptest.NewRequest(http.MethodPost, "/api/tts", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("ServeHTTP() status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantStatus == http.StatusOK {
				if ct := rec.Header().Get("Content-Type"); ct != "audio/mpeg" {
					t.Errorf("Content-Type = %q, want audio/mpeg", ct)
				}
				if rec.Body.String() != tt.wantAudio {
					t.Errorf("body = %q, want %q", rec.Body.String(), tt.wantAudio)
				}
			}
		})
	}
}

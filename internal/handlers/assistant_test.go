package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/mock/gomock"

	"dayone/internal/service"
	"dayone/internal/service/mocks"
)

func TestAssistantHandler_ServeHTTP(t *testing.T) {
	tests := []struct {
		name       string
		body       string
		mockSetup  func(m *mocks.MockAssistantService)
		wantStatus int
		wantReply  string
	}{
		{
			name: "successful reply",
			body: `{"prompt":"how do I stay consistent?"}`,
			mockSetup: func(m *mocks.MockAssistantService) {
				m.EXPECT().
					Ask(gomock.Any(), service.AskRequest{Prompt: "how do I stay consistent?"}).
					Return(service.AskResponse{Reply: "start small"}, nil)
			},
			wantStatus: http.StatusOK,
			wantReply:  "start small",
		},
		{
			name:       "invalid json body",
			body:       `{"prompt"`,
			mockSetup:  func(m *mocks.MockAssistantService) {},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "empty prompt rejected",
			body: `{"prompt":""}`,
			mockSetup: func(m *mocks.MockAssistantService) {
				m.EXPECT().
					Ask(gomock.Any(), gomock.Any()).
					Return(service.AskResponse{}, &service.ValidationError{Field: "prompt", Message: "prompt is required"})
			},
			wantStatus: http.StatusBadRequest,
		},
		{
			name: "upstream failure maps to bad gateway",
			body: `{"prompt":"hi"}`,
			mockSetup: func(m *mocks.MockAssistantService) {
				m.EXPECT().
					Ask(gomock.Any(), gomock.Any()).
					Return(service.AskResponse{}, service.WrapError(service.ErrExternalService, "model offline"))
			},
			wantStatus: http.StatusBadGateway,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			defer ctrl.Finish()

			mockAssistant := mocks.NewMockAssistantService(ctrl)
			tt.mockSetup(mockAssistant)
			handler := NewAssistantHandler(mockAssistant)

			req := httptest.NewRequest(http.MethodPost, "/api/assistant", bytes.NewBufferString(tt.body))
			rec := httptest.NewRecorder()
			handler.ServeHTTP(rec, req)

			if rec.Code != tt.wantStatus {
				t.Fatalf("ServeHTTP() status = %d, want %d", rec.Code, tt.wantStatus)
			}
			if tt.wantReply != "" {
				var resp AskResponse
				if err := json.NewDecoder(rec.Body).Decode(&resp); err != nil {
					t.Fatalf("decoding response: %v", err)
				}
				if resp.Reply != tt.wantReply {
					t.Errorf("reply = %q, want %q", resp.Reply, tt.wantReply)
				}
			}
		})
	}
}

func TestAssistantHandler_Stream(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAssistant := mocks.NewMockAssistantService(ctrl)
	mockAssistant.EXPECT().
		StreamAsk(gomock.Any(), service.AskRequest{Prompt: "hi"}, gomock.Any()).
		DoAndReturn(func(_ any, _ service.AskRequest, callback func(string) error) error {
			for _, chunk := range []string{"one", " day"} {
				if err := callback(chunk); err != nil {
					return err
				}
			}
			return nil
		})

	handler := NewAssistantHandler(mockAssistant)
	req := httptest.NewRequest(http.MethodPost, "/api/assistant?stream=true", bytes.NewBufferString(`{"prompt":"hi"}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("ServeHTTP() status = %d, want %d", rec.Code, http.StatusOK)
	}
	if ct := rec.Header().Get("Content-Type"); ct != "text/event-stream" {
		t.Errorf("Content-Type = %q, want text/event-stream", ct)
	}
	body := rec.Body.String()
	for _, want := range []string{"data: one\n\n", "data:  day\n\n", "data: [DONE]\n\n"} {
		if !strings.Contains(body, want) {
			t.Errorf("stream body missing %q:\n%s", want, body)
		}
	}
}

func TestAssistantHandler_StreamError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockAssistant := mocks.NewMockAssistantService(ctrl)
	mockAssistant.EXPECT().
		StreamAsk(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(service.WrapError(service.ErrExternalService, "model offline"))

	handler := NewAssistantHandler(mockAssistant)
	req := httptest.NewRequest(http.MethodPost, "/api/assistant?stream=true", bytes.NewBufferString(`{"prompt":"hi"}`))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if !strings.Contains(rec.Body.String(), "error") {
		t.Errorf("stream body should carry an error event:\n%s", rec.Body.String())
	}
}

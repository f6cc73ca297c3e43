package tts

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClient_Synthesize(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if r.URL.Path != "/v1/text-to-speech/voice-1" {
			t.Errorf("path = %s, want /v1/text-to-speech/voice-1", r.URL.Path)
		}
		if r.Header.Get("xi-api-key") != "secret" {
			t.Error("missing xi-api-key header")
		}

		var req synthesisRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decoding request: %v", err)
		}
		if req.Text != "hello" {
			t.Errorf("text = %q, want hello", req.Text)
		}
		if req.ModelID == "" {
			t.Error("model_id is empty")
		}

		w.Header().Set("Content-Type", "audio/mpeg")
		_, _ = w.Write([]byte("mpeg-bytes"))
	}))
	defer server.Close()

	client := NewClient(server.URL, "secret")
	audio, err := client.Synthesize(context.Background(), "hello", "voice-1")
	if err != nil {
		t.Fatalf("Synthesize() error = %v", err)
	}
	if string(audio) != "mpeg-bytes" {
		t.Errorf("audio = %q, want mpeg-bytes", audio)
	}
}

func TestClient_SynthesizeBadStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "quota exceeded", http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := NewClient(server.URL, "secret")
	if _, err := client.Synthesize(context.Background(), "hello", "voice-1"); err == nil {
		t.Error("Synthesize() should fail on a non-200 status")
	}
}

func TestClient_SynthesizeEmptyBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	client := NewClient(server.URL, "secret")
	if _, err := client.Synthesize(context.Background(), "hello", "voice-1"); err == nil {
		t.Error("Synthesize() should reject an empty audio body")
	}
}

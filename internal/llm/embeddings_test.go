package llm

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestEmbeddingsClient_EmbedTexts(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/embeddings" {
			t.Errorf("expected /v1/embeddings, got %s", r.URL.Path)
		}
		var req embeddingsRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decoding request: %v", err)
		}

		data := make([]map[string]any, len(req.Input))
		for i := range req.Input {
			data[i] = map[string]any{"embedding": []float32{0.1, 0.2, 0.3}}
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"data": data})
	}))
	defer server.Close()

	client := NewEmbeddingsClient(server.URL, "key", "embed-model")
	vectors, err := client.EmbedTexts(context.Background(), []string{"one", "two"})
	if err != nil {
		t.Fatalf("EmbedTexts() error = %v", err)
	}
	if len(vectors) != 2 {
		t.Fatalf("got %d vectors, want 2", len(vectors))
	}
	if len(vectors[0]) != 3 {
		t.Errorf("vector size = %d, want 3", len(vectors[0]))
	}
}

func TestEmbeddingsClient_EmbedTextsEmptyInput(t *testing.T) {
	client := NewEmbeddingsClient("http://unused", "key", "embed-model")
	if _, err := client.EmbedTexts(context.Background(), nil); err == nil {
		t.Error("EmbedTexts() with no input should fail")
	}
}

func TestEmbeddingsClient_EmbedTextsCountMismatch(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{
			"data": []map[string]any{{"embedding": []float32{0.1}}},
		})
	}))
	defer server.Close()

	client := NewEmbeddingsClient(server.URL, "key", "embed-model")
	if _, err := client.EmbedTexts(context.Background(), []string{"one", "two"}); err == nil {
		t.Error("EmbedTexts() should fail when the embedding count does not match the input count")
	}
}

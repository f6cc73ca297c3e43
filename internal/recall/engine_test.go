package recall

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"go.uber.org/mock/gomock"

	"dayone/internal/llm"
	"dayone/internal/vectorstore"
	"dayone/internal/vectorstore/mocks"
)

// embeddingsServer returns one fixed vector per input text.
func embeddingsServer(t *testing.T) *httptest.Server {
	t.Helper()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		var req struct {
			Input []string `json:"input"`
		}
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			t.Errorf("decoding embeddings request: %v", err)
		}
		data := make([]map[string]any, len(req.Input))
		for i := range req.Input {
			data[i] = map[string]any{"embedding": []float32{0.1, 0.2, 0.3}}
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]any{"data": data})
	}))
	t.Cleanup(server.Close)
	return server
}

func TestEngine_IndexNote(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server := embeddingsServer(t)
	mockStore := mocks.NewMockVectorStore(ctrl)
	mockStore.EXPECT().
		Upsert(gomock.Any(), "notes", gomock.Any()).
		DoAndReturn(func(_ context.Context, _ string, points []vectorstore.Point) error {
			if len(points) != 1 {
				t.Fatalf("got %d points, want 1", len(points))
			}
			if points[0].ID != "n1" {
				t.Errorf("point id = %q, want n1", points[0].ID)
			}
			if points[0].Meta["content"] != "drink water" {
				t.Errorf("point content = %v, want drink water", points[0].Meta["content"])
			}
			return nil
		})

	engine := NewEngine(llm.NewEmbeddingsClient(server.URL, "key", "embed-model"), mockStore, "notes")
	if err := engine.IndexNote(context.Background(), "n1", "drink water"); err != nil {
		t.Fatalf("IndexNote() error = %v", err)
	}
}

func TestEngine_IndexNoteEmptyContentRemoves(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server := embeddingsServer(t)
	mockStore := mocks.NewMockVectorStore(ctrl)
	mockStore.EXPECT().Delete(gomock.Any(), "notes", []string{"n1"}).Return(nil)

	engine := NewEngine(llm.NewEmbeddingsClient(server.URL, "key", "embed-model"), mockStore, "notes")
	if err := engine.IndexNote(context.Background(), "n1", ""); err != nil {
		t.Fatalf("IndexNote() error = %v", err)
	}
}

func TestEngine_RemoveNote(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server := embeddingsServer(t)
	mockStore := mocks.NewMockVectorStore(ctrl)
	mockStore.EXPECT().Delete(gomock.Any(), "notes", []string{"n2"}).Return(errors.New("collection missing"))

	engine := NewEngine(llm.NewEmbeddingsClient(server.URL, "key", "embed-model"), mockStore, "notes")
	if err := engine.RemoveNote(context.Background(), "n2"); err == nil {
		t.Error("RemoveNote() should surface store errors")
	}
}

func TestEngine_Recall(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server := embeddingsServer(t)
	mockStore := mocks.NewMockVectorStore(ctrl)
	mockStore.EXPECT().
		Search(gomock.Any(), "notes", gomock.Any(), 3).
		Return([]vectorstore.SearchResult{
			{PointID: "p1", Score: 0.9, Meta: map[string]any{"note_id": "n1", "content": "morning run"}},
			{PointID: "p2", Score: 0.5, Meta: map[string]any{"note_id": "n2"}}, // No content: dropped
		}, nil)

	engine := NewEngine(llm.NewEmbeddingsClient(server.URL, "key", "embed-model"), mockStore, "notes")
	snippets, err := engine.Recall(context.Background(), "how is my running going?", 3)
	if err != nil {
		t.Fatalf("Recall() error = %v", err)
	}
	if len(snippets) != 1 {
		t.Fatalf("got %d snippets, want 1", len(snippets))
	}
	if snippets[0].NoteID != "n1" || snippets[0].Content != "morning run" {
		t.Errorf("snippet = %+v, want note n1 with content", snippets[0])
	}
}

func TestEngine_RecallDefaultsK(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server := embeddingsServer(t)
	mockStore := mocks.NewMockVectorStore(ctrl)
	mockStore.EXPECT().Search(gomock.Any(), "notes", gomock.Any(), 5).Return(nil, nil)

	engine := NewEngine(llm.NewEmbeddingsClient(server.URL, "key", "embed-model"), mockStore, "notes")
	if _, err := engine.Recall(context.Background(), "anything", 0); err != nil {
		t.Fatalf("Recall() error = %v", err)
	}
}

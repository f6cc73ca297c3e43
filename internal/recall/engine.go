package recall

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_engine.go -package=mocks -mock_names=Engine=MockEngine dayone/internal/recall Engine

import (
	"context"
	"fmt"
	"log/slog"

	"dayone/internal/contextutil"
	"dayone/internal/llm"
	"dayone/internal/vectorstore"
)

// Snippet is one recalled note fragment with its relevance score.
type Snippet struct {
	NoteID  string
	Content string
	Score   float32
}

// Engine indexes note content into the vector store and recalls the notes
// most relevant to a prompt, so the assistant can ground its replies in the
// user's own notebook.
type Engine interface {
	// IndexNote embeds a note's content and upserts it into the collection.
	IndexNote(ctx context.Context, noteID, content string) error
	// RemoveNote drops a note from the collection.
	RemoveNote(ctx context.Context, noteID string) error
	// Recall returns up to k note snippets relevant to the prompt.
	Recall(ctx context.Context, prompt string, k int) ([]Snippet, error)
}

// engine implements Engine over an embeddings client and a vector store.
type engine struct {
	embedder    *llm.EmbeddingsClient
	vectorStore vectorstore.VectorStore
	collection  string
	logger      *slog.Logger
}

// NewEngine creates a recall engine.
func NewEngine(embedder *llm.EmbeddingsClient, vectorStore vectorstore.VectorStore, collection string) Engine {
	return &engine{
		embedder:    embedder,
		vectorStore: vectorStore,
		collection:  collection,
		logger:      slog.Default(),
	}
}

// IndexNote embeds a note's content and upserts it into the collection.
// The note id doubles as the point id, so reindexing a note replaces its
// previous vector.
func (e *engine) IndexNote(ctx context.Context, noteID, content string) error {
	if content == "" {
		return e.RemoveNote(ctx, noteID)
	}

	embeddings, err := e.embedder.EmbedTexts(ctx, []string{content})
	if err != nil {
		return fmt.Errorf("failed to embed note: %w", err)
	}
	if len(embeddings) == 0 {
		return fmt.Errorf("no embedding returned for note")
	}

	point := vectorstore.Point{
		ID:  noteID,
		Vec: embeddings[0],
		Meta: map[string]any{
			"note_id": noteID,
			"content": content,
		},
	}
	if err := e.vectorStore.Upsert(ctx, e.collection, []vectorstore.Point{point}); err != nil {
		return fmt.Errorf("failed to upsert note vector: %w", err)
	}
	return nil
}

// RemoveNote drops a note from the collection.
func (e *engine) RemoveNote(ctx context.Context, noteID string) error {
	if err := e.vectorStore.Delete(ctx, e.collection, []string{noteID}); err != nil {
		return fmt.Errorf("failed to delete note vector: %w", err)
	}
	return nil
}

// Recall returns up to k note snippets relevant to the prompt, best first.
func (e *engine) Recall(ctx context.Context, prompt string, k int) ([]Snippet, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if k <= 0 {
		k = 5
	}

	embeddings, err := e.embedder.EmbedTexts(ctx, []string{prompt})
	if err != nil {
		return nil, fmt.Errorf("failed to embed prompt: %w", err)
	}
	if len(embeddings) == 0 {
		return nil, fmt.Errorf("no embedding returned for prompt")
	}

	results, err := e.vectorStore.Search(ctx, e.collection, embeddings[0], k)
	if err != nil {
		return nil, fmt.Errorf("failed to search notes: %w", err)
	}

	snippets := make([]Snippet, 0, len(results))
	for _, result := range results {
		snippet := Snippet{NoteID: result.PointID, Score: result.Score}
		if content, ok := result.Meta["content"].(string); ok {
			snippet.Content = content
		}
		if noteID, ok := result.Meta["note_id"].(string); ok && noteID != "" {
			snippet.NoteID = noteID
		}
		if snippet.Content == "" {
			continue
		}
		snippets = append(snippets, snippet)
	}

	logger.DebugContext(ctx, "note recall completed", "k", k, "results", len(snippets))
	return snippets, nil
}

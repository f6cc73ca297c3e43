package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_note_service.go -package=mocks -mock_names=NoteService=MockNoteService dayone/internal/service NoteService

import (
	"context"
	"errors"
	"log/slog"

	"dayone/internal/contextutil"
	"dayone/internal/recall"
	"dayone/internal/storage"
)

// NoteRequest holds the fields for creating or updating a note. Tag order
// is preserved exactly as supplied: it defines the default playback order.
type NoteRequest struct {
	ID      string // Required for updates, ignored on create
	Content string
	Tags    []string
}

// NoteService provides notebook functionality.
type NoteService interface {
	// ListNotes returns all notes with their ordered tags.
	ListNotes(ctx context.Context) ([]storage.Note, error)
	// CreateNote creates a note. Content is required.
	CreateNote(ctx context.Context, req NoteRequest) (*storage.Note, error)
	// UpdateNote replaces a note's content and tag list. The id is required.
	UpdateNote(ctx context.Context, req NoteRequest) (*storage.Note, error)
	// DeleteNote removes a note and its tags.
	DeleteNote(ctx context.Context, id string) error
}

// noteService implements NoteService. When a recall engine is configured,
// note saves are indexed best-effort: indexing failures are logged, never
// surfaced.
type noteService struct {
	notes  storage.NoteStore
	recall recall.Engine // Optional; nil disables indexing
	logger *slog.Logger
}

// NewNoteService creates a new NoteService. recallEngine may be nil.
func NewNoteService(notes storage.NoteStore, recallEngine recall.Engine) NoteService {
	return &noteService{
		notes:  notes,
		recall: recallEngine,
		logger: slog.Default(),
	}
}

// ListNotes returns all notes with their ordered tags.
func (s *noteService) ListNotes(ctx context.Context) ([]storage.Note, error) {
	notes, err := s.notes.ListAll(ctx)
	if err != nil {
		contextutil.LoggerFromContext(ctx).ErrorContext(ctx, "failed to list notes", "error", err)
		return nil, WrapError(err, "failed to list notes")
	}
	return notes, nil
}

// CreateNote creates a note.
func (s *noteService) CreateNote(ctx context.Context, req NoteRequest) (*storage.Note, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if req.Content == "" {
		logger.WarnContext(ctx, "empty content in create note request")
		return nil, &ValidationError{Field: "content", Message: "cannot be empty"}
	}

	note, err := s.notes.Create(ctx, &storage.Note{
		Content: req.Content,
		Tags:    req.Tags,
	})
	if err != nil {
		logger.ErrorContext(ctx, "failed to create note", "error", err)
		return nil, WrapError(err, "failed to create note")
	}

	s.index(ctx, note)
	logger.InfoContext(ctx, "note created", "note_id", note.ID, "tags", len(note.Tags))
	return note, nil
}

// UpdateNote replaces a note's content and tag list.
func (s *noteService) UpdateNote(ctx context.Context, req NoteRequest) (*storage.Note, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if req.ID == "" {
		logger.WarnContext(ctx, "missing id in update note request")
		return nil, &ValidationError{Field: "id", Message: "cannot be empty"}
	}
	if req.Content == "" {
		return nil, &ValidationError{Field: "content", Message: "cannot be empty"}
	}

	note, err := s.notes.Update(ctx, &storage.Note{
		ID:      req.ID,
		Content: req.Content,
		Tags:    req.Tags,
	})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		logger.ErrorContext(ctx, "failed to update note", "note_id", req.ID, "error", err)
		return nil, WrapError(err, "failed to update note")
	}

	s.index(ctx, note)
	logger.InfoContext(ctx, "note updated", "note_id", note.ID, "tags", len(note.Tags))
	return note, nil
}

// DeleteNote removes a note and its tags.
func (s *noteService) DeleteNote(ctx context.Context, id string) error {
	logger := contextutil.LoggerFromContext(ctx)

	if err := s.notes.Delete(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrNotFound
		}
		logger.ErrorContext(ctx, "failed to delete note", "note_id", id, "error", err)
		return WrapError(err, "failed to delete note")
	}

	if s.recall != nil {
		if err := s.recall.RemoveNote(ctx, id); err != nil {
			logger.WarnContext(ctx, "failed to drop note from recall index", "note_id", id, "error", err)
		}
	}

	logger.InfoContext(ctx, "note deleted", "note_id", id)
	return nil
}

// index updates the recall index for a saved note, best-effort.
func (s *noteService) index(ctx context.Context, note *storage.Note) {
	if s.recall == nil {
		return
	}
	if err := s.recall.IndexNote(ctx, note.ID, note.Content); err != nil {
		contextutil.LoggerFromContext(ctx).WarnContext(ctx, "failed to index note for recall", "note_id", note.ID, "error", err)
	}
}

package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"dayone/internal/contextutil"
	"dayone/internal/service"
	"dayone/internal/storage"
)

// NoteHandler handles HTTP requests for notebook notes.
type NoteHandler struct {
	notes  service.NoteService
	logger *slog.Logger
}

// NewNoteHandler creates a new NoteHandler.
func NewNoteHandler(notes service.NoteService) *NoteHandler {
	return &NoteHandler{
		notes:  notes,
		logger: slog.Default(),
	}
}

// NoteRequest represents the HTTP request payload for creating or updating
// a note. Tags are stored in the order given.
type NoteRequest struct {
	ID      string   `json:"id,omitempty"`
	Content string   `json:"content"`
	Tags    []string `json:"tags,omitempty"`
}

// NoteResponse represents a note in HTTP responses.
type NoteResponse struct {
	ID        string    `json:"id"`
	Content   string    `json:"content"`
	Tags      []string  `json:"tags"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// List handles GET /api/notes.
func (h *NoteHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	notes, err := h.notes.ListNotes(ctx)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to list notes")
		return
	}

	resp := make([]NoteResponse, 0, len(notes))
	for i := range notes {
		resp = append(resp, noteResponse(&notes[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Create handles POST /api/notes.
func (h *NoteHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var req NoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	note, err := h.notes.CreateNote(ctx, service.NoteRequest{
		Content: req.Content,
		Tags:    req.Tags,
	})
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to create note")
		return
	}

	writeJSON(w, http.StatusCreated, noteResponse(note))
}

// Update handles PUT /api/notes. The note id is required in the payload.
func (h *NoteHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var req NoteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	note, err := h.notes.UpdateNote(ctx, service.NoteRequest{
		ID:      req.ID,
		Content: req.Content,
		Tags:    req.Tags,
	})
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to update note")
		return
	}

	writeJSON(w, http.StatusOK, noteResponse(note))
}

// Delete handles DELETE /api/notes/{id}.
func (h *NoteHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id := chi.URLParam(r, "id")
	if id == "" {
		writeError(w, http.StatusBadRequest, "Invalid note id")
		return
	}

	if err := h.notes.DeleteNote(ctx, id); err != nil {
		handleServiceError(w, ctx, err, "Failed to delete note")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func noteResponse(note *storage.Note) NoteResponse {
	tags := note.Tags
	if tags == nil {
		tags = []string{}
	}
	return NoteResponse{
		ID:        note.ID,
		Content:   note.Content,
		Tags:      tags,
		CreatedAt: note.CreatedAt,
		UpdatedAt: note.UpdatedAt,
	}
}

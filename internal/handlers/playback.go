package handlers

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"dayone/internal/contextutil"
	"dayone/internal/media"
	"dayone/internal/playback"
	"dayone/internal/storage"
)

// PlaybackHandler exposes the tag playback scheduler over HTTP. The server
// owns each session's state machine; the browser owns the actual audio
// element and reports completion through the "complete" action.
type PlaybackHandler struct {
	notes  storage.NoteStore
	synth  playback.Synthesizer
	opts   playback.Options
	logger *slog.Logger

	mu       sync.Mutex
	sessions map[string]*playbackSession
}

type playbackSession struct {
	scheduler *playback.Scheduler
	player    *playback.RemotePlayer
}

// NewPlaybackHandler creates a new PlaybackHandler. synth is the speech
// synthesis gateway used for text tags.
func NewPlaybackHandler(notes storage.NoteStore, synth playback.Synthesizer, defaultVoice, hindiVoice string) *PlaybackHandler {
	return &PlaybackHandler{
		notes: notes,
		synth: synth,
		opts: playback.Options{
			AudioPathPrefix: media.AudiosPrefix,
			DefaultVoiceID:  defaultVoice,
			HindiVoiceID:    hindiVoice,
		},
		logger:   slog.Default(),
		sessions: make(map[string]*playbackSession),
	}
}

// noteSource adapts the note store to the scheduler's live tag lookup.
type noteSource struct {
	notes storage.NoteStore
}

func (s noteSource) TagValue(noteID string, tagIndex int) (string, bool) {
	value, err := s.notes.TagValue(context.Background(), noteID, tagIndex)
	if err != nil {
		return "", false
	}
	return value, true
}

// SessionRequest represents the HTTP request payload carrying a selection
// of tag references.
type SessionRequest struct {
	Tags []playback.TagRef `json:"tags"`
}

// NowPlayingResponse describes what the client should currently play.
// For text tags the synthesized audio is fetched from SpeechURL.
type NowPlayingResponse struct {
	Kind      string `json:"kind"`
	Source    string `json:"source,omitempty"`
	SpeechURL string `json:"speech_url,omitempty"`
	Paused    bool   `json:"paused"`
}

// SessionResponse represents a playback session snapshot in HTTP responses.
type SessionResponse struct {
	SessionID  string              `json:"session_id"`
	State      string              `json:"state"`
	Current    *playback.TagRef    `json:"current,omitempty"`
	Queue      []playback.TagRef   `json:"queue"`
	Played     []playback.TagRef   `json:"played"`
	NowPlaying *NowPlayingResponse `json:"now_playing,omitempty"`
}

// Create handles POST /api/playback/sessions.
func (h *PlaybackHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var req SessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	player := playback.NewRemotePlayer()
	scheduler := playback.NewScheduler(noteSource{notes: h.notes}, h.synth, player, h.opts)
	scheduler.SetQueue(req.Tags)

	id := uuid.New().String()
	h.mu.Lock()
	h.sessions[id] = &playbackSession{scheduler: scheduler, player: player}
	h.mu.Unlock()

	logger.InfoContext(ctx, "playback session created", "session_id", id, "tags", len(req.Tags))
	writeJSON(w, http.StatusCreated, h.sessionResponse(id))
}

// Get handles GET /api/playback/sessions/{id}.
func (h *PlaybackHandler) Get(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if h.session(id) == nil {
		writeError(w, http.StatusNotFound, "Session not found")
		return
	}
	writeJSON(w, http.StatusOK, h.sessionResponse(id))
}

// SetQueue handles PUT /api/playback/sessions/{id}/queue, replacing the
// selection set while the session may be active.
func (h *PlaybackHandler) SetQueue(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	id := chi.URLParam(r, "id")
	session := h.session(id)
	if session == nil {
		writeError(w, http.StatusNotFound, "Session not found")
		return
	}

	var req SessionRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	session.scheduler.SetQueue(req.Tags)
	writeJSON(w, http.StatusOK, h.sessionResponse(id))
}

// Action handles POST /api/playback/sessions/{id}/{action} for the
// transport controls: start, pause, resume, stop, next, previous, and the
// client's complete signal.
func (h *PlaybackHandler) Action(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id := chi.URLParam(r, "id")
	session := h.session(id)
	if session == nil {
		writeError(w, http.StatusNotFound, "Session not found")
		return
	}

	switch action := chi.URLParam(r, "action"); action {
	case "start":
		// Detach from the request context: synthesis for later tags
		// outlives this request.
		session.scheduler.Start(context.WithoutCancel(ctx))
	case "pause":
		session.scheduler.Pause()
	case "resume":
		session.scheduler.Resume()
	case "stop":
		session.scheduler.Stop()
	case "next":
		session.scheduler.Next()
	case "previous":
		session.scheduler.Previous()
	case "complete":
		session.player.Complete()
	default:
		writeError(w, http.StatusBadRequest, "Unknown action")
		return
	}

	writeJSON(w, http.StatusOK, h.sessionResponse(id))
}

// Speech handles GET /api/playback/sessions/{id}/speech, serving the
// synthesized audio for the current text tag. The URL is short-lived by
// nature: once the tag completes, the bytes are gone.
func (h *PlaybackHandler) Speech(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	session := h.session(id)
	if session == nil {
		writeError(w, http.StatusNotFound, "Session not found")
		return
	}

	now := session.player.Now()
	if now == nil || len(now.Speech) == 0 {
		writeError(w, http.StatusNotFound, "No speech available")
		return
	}

	w.Header().Set("Content-Type", "audio/mpeg")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(now.Speech)
}

// Delete handles DELETE /api/playback/sessions/{id}.
func (h *PlaybackHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	session := h.session(id)
	if session == nil {
		writeError(w, http.StatusNotFound, "Session not found")
		return
	}

	session.scheduler.Stop()
	h.mu.Lock()
	delete(h.sessions, id)
	h.mu.Unlock()

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func (h *PlaybackHandler) session(id string) *playbackSession {
	h.mu.Lock()
	defer h.mu.Unlock()
	return h.sessions[id]
}

func (h *PlaybackHandler) sessionResponse(id string) SessionResponse {
	session := h.session(id)
	snap := session.scheduler.Snapshot()

	resp := SessionResponse{
		SessionID: id,
		State:     snap.State.String(),
		Current:   snap.Current,
		Queue:     snap.Queue,
		Played:    snap.Played,
	}
	if now := session.player.Now(); now != nil {
		nowResp := &NowPlayingResponse{
			Kind:   now.Media.Kind.String(),
			Source: now.Media.Source,
			Paused: now.Paused,
		}
		if now.Media.Kind == playback.KindText {
			nowResp.SpeechURL = "/api/playback/sessions/" + id + "/speech"
		}
		resp.NowPlaying = nowResp
	}
	return resp
}

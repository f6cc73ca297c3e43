package handlers

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"dayone/internal/contextutil"
	"dayone/internal/service"
)

// AssistantHandler handles HTTP requests for the habit-coach assistant.
type AssistantHandler struct {
	assistant service.AssistantService
	logger    *slog.Logger
}

// NewAssistantHandler creates a new AssistantHandler.
func NewAssistantHandler(assistant service.AssistantService) *AssistantHandler {
	return &AssistantHandler{
		assistant: assistant,
		logger:    slog.Default(),
	}
}

// AskRequest represents the HTTP request payload for an assistant prompt.
type AskRequest struct {
	Prompt string `json:"prompt"`
}

// AskResponse represents the HTTP response payload for an assistant reply.
type AskResponse struct {
	Reply string `json:"reply"`
}

// ServeHTTP handles POST /api/assistant. With ?stream=true the reply is
// sent as Server-Sent Events.
func (h *AssistantHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var req AskRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if r.URL.Query().Get("stream") == "true" {
		h.stream(w, r, req)
		return
	}

	resp, err := h.assistant.Ask(ctx, service.AskRequest{Prompt: req.Prompt})
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to process prompt")
		return
	}

	writeJSON(w, http.StatusOK, AskResponse{Reply: resp.Reply})
}

// stream sends the assistant reply as Server-Sent Events.
func (h *AssistantHandler) stream(w http.ResponseWriter, r *http.Request, req AskRequest) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	flusher, ok := w.(http.Flusher)
	if !ok {
		logger.ErrorContext(ctx, "streaming not supported by response writer")
		writeError(w, http.StatusInternalServerError, "Streaming not supported")
		return
	}

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")

	err := h.assistant.StreamAsk(ctx, service.AskRequest{Prompt: req.Prompt}, func(chunk string) error {
		if _, err := fmt.Fprintf(w, "data: %s\n\n", chunk); err != nil {
			return err
		}
		flusher.Flush()
		return nil
	})
	if err != nil {
		logger.ErrorContext(ctx, "error streaming reply", "error", err)
		_, _ = fmt.Fprintf(w, "data: {\"error\":%q}\n\n", err.Error())
		flusher.Flush()
		return
	}

	_, _ = fmt.Fprintf(w, "data: [DONE]\n\n")
	flusher.Flush()
}

package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"dayone/internal/contextutil"
	"dayone/internal/service"
	"dayone/internal/storage"
)

// HabitHandler handles HTTP requests for habits and their events.
type HabitHandler struct {
	habits service.HabitService
	logger *slog.Logger
}

// NewHabitHandler creates a new HabitHandler.
func NewHabitHandler(habits service.HabitService) *HabitHandler {
	return &HabitHandler{
		habits: habits,
		logger: slog.Default(),
	}
}

// CreateHabitRequest represents the HTTP request payload for creating a habit.
type CreateHabitRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Color       string `json:"color,omitempty"`
}

// UpdateHabitRequest represents the HTTP request payload for a partial habit update.
type UpdateHabitRequest struct {
	Name        *string `json:"name,omitempty"`
	Description *string `json:"description,omitempty"`
	Color       *string `json:"color,omitempty"`
}

// RecordEventRequest represents the HTTP request payload for recording a hit or slip.
type RecordEventRequest struct {
	Kind string `json:"kind"`
	Note string `json:"note,omitempty"`
}

// DeleteEventsRequest represents the HTTP request payload for bulk event deletion.
type DeleteEventsRequest struct {
	IDs []int `json:"ids"`
}

// HabitResponse represents a habit in HTTP responses.
type HabitResponse struct {
	ID          int             `json:"id"`
	Name        string          `json:"name"`
	Description string          `json:"description"`
	Color       string          `json:"color"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	Events      []EventResponse `json:"events"`
}

// EventResponse represents a habit event in HTTP responses.
type EventResponse struct {
	ID         int       `json:"id"`
	HabitID    int       `json:"habit_id"`
	Kind       string    `json:"kind"`
	Note       string    `json:"note,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}

// Create handles POST /api/habits.
func (h *HabitHandler) Create(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var req CreateHabitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	habit, err := h.habits.CreateHabit(ctx, service.CreateHabitRequest{
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
	})
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to create habit")
		return
	}

	writeJSON(w, http.StatusCreated, habitResponse(habit))
}

// List handles GET /api/habits.
func (h *HabitHandler) List(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	habits, err := h.habits.ListHabits(ctx)
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to list habits")
		return
	}

	resp := make([]HabitResponse, 0, len(habits))
	for i := range habits {
		resp = append(resp, habitResponse(&habits[i]))
	}
	writeJSON(w, http.StatusOK, resp)
}

// Update handles PATCH /api/habits/{id}.
func (h *HabitHandler) Update(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid habit id")
		return
	}

	var req UpdateHabitRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	habit, err := h.habits.UpdateHabit(ctx, id, service.UpdateHabitRequest{
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
	})
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to update habit")
		return
	}

	writeJSON(w, http.StatusOK, habitResponse(habit))
}

// Delete handles DELETE /api/habits/{id}.
func (h *HabitHandler) Delete(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	id, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid habit id")
		return
	}

	if err := h.habits.DeleteHabit(ctx, id); err != nil {
		handleServiceError(w, ctx, err, "Failed to delete habit")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

// RecordEvent handles POST /api/habits/{id}/events.
func (h *HabitHandler) RecordEvent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	habitID, err := strconv.Atoi(chi.URLParam(r, "id"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "Invalid habit id")
		return
	}

	var req RecordEventRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	event, err := h.habits.RecordEvent(ctx, service.RecordEventRequest{
		HabitID: habitID,
		Kind:    req.Kind,
		Note:    req.Note,
	})
	if err != nil {
		handleServiceError(w, ctx, err, "Failed to record event")
		return
	}

	writeJSON(w, http.StatusOK, eventResponse(*event))
}

// DeleteEvents handles DELETE /api/habits/{id}/events. The ids in the
// payload select which of the habit's events to remove.
func (h *HabitHandler) DeleteEvents(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := contextutil.LoggerFromContext(ctx)

	var req DeleteEventsRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.WarnContext(ctx, "invalid request body", "error", err)
		writeError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	if err := h.habits.DeleteEvents(ctx, req.IDs); err != nil {
		handleServiceError(w, ctx, err, "Failed to delete events")
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"status": "deleted"})
}

func habitResponse(habit *storage.Habit) HabitResponse {
	events := make([]EventResponse, 0, len(habit.Events))
	for _, event := range habit.Events {
		events = append(events, eventResponse(event))
	}
	return HabitResponse{
		ID:          habit.ID,
		Name:        habit.Name,
		Description: habit.Description,
		Color:       habit.Color,
		CreatedAt:   habit.CreatedAt,
		UpdatedAt:   habit.UpdatedAt,
		Events:      events,
	}
}

func eventResponse(event storage.HabitEvent) EventResponse {
	return EventResponse{
		ID:         event.ID,
		HabitID:    event.HabitID,
		Kind:       event.Kind,
		Note:       event.Note,
		OccurredAt: event.OccurredAt,
	}
}

package service

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_habit_service.go -package=mocks -mock_names=HabitService=MockHabitService dayone/internal/service HabitService

import (
	"context"
	"errors"
	"log/slog"

	"dayone/internal/contextutil"
	"dayone/internal/storage"
)

// Event kinds recorded against a habit.
const (
	EventHit  = "hit"
	EventSlip = "slip"
)

// CreateHabitRequest holds the fields for creating a habit.
type CreateHabitRequest struct {
	Name        string
	Description string
	Color       string
}

// UpdateHabitRequest holds a partial habit update; nil fields are unchanged.
type UpdateHabitRequest struct {
	Name        *string
	Description *string
	Color       *string
}

// RecordEventRequest holds the fields for recording a hit or slip.
type RecordEventRequest struct {
	HabitID int
	Kind    string
	Note    string
}

// HabitService provides habit and habit-event functionality.
type HabitService interface {
	// CreateHabit creates a new habit. The name is required.
	CreateHabit(ctx context.Context, req CreateHabitRequest) (*storage.Habit, error)
	// ListHabits returns all habits, each with its events.
	ListHabits(ctx context.Context) ([]storage.Habit, error)
	// UpdateHabit applies a partial update to a habit.
	UpdateHabit(ctx context.Context, id int, req UpdateHabitRequest) (*storage.Habit, error)
	// DeleteHabit removes a habit and its events.
	DeleteHabit(ctx context.Context, id int) error
	// RecordEvent records a hit or slip against an existing habit.
	RecordEvent(ctx context.Context, req RecordEventRequest) (*storage.HabitEvent, error)
	// DeleteEvents removes the given events. The id list must be non-empty.
	DeleteEvents(ctx context.Context, ids []int) error
}

// habitService implements HabitService.
type habitService struct {
	habits storage.HabitStore
	events storage.EventStore
	logger *slog.Logger
}

// NewHabitService creates a new HabitService.
func NewHabitService(habits storage.HabitStore, events storage.EventStore) HabitService {
	return &habitService{
		habits: habits,
		events: events,
		logger: slog.Default(),
	}
}

// CreateHabit creates a new habit.
func (s *habitService) CreateHabit(ctx context.Context, req CreateHabitRequest) (*storage.Habit, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if req.Name == "" {
		logger.WarnContext(ctx, "empty name in create habit request")
		return nil, &ValidationError{Field: "name", Message: "cannot be empty"}
	}

	habit, err := s.habits.Create(ctx, &storage.Habit{
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
	})
	if err != nil {
		logger.ErrorContext(ctx, "failed to create habit", "error", err)
		return nil, WrapError(err, "failed to create habit")
	}

	logger.InfoContext(ctx, "habit created", "habit_id", habit.ID, "name", habit.Name)
	return habit, nil
}

// ListHabits returns all habits, each with its events.
func (s *habitService) ListHabits(ctx context.Context) ([]storage.Habit, error) {
	habits, err := s.habits.ListWithEvents(ctx)
	if err != nil {
		contextutil.LoggerFromContext(ctx).ErrorContext(ctx, "failed to list habits", "error", err)
		return nil, WrapError(err, "failed to list habits")
	}
	return habits, nil
}

// UpdateHabit applies a partial update to a habit.
func (s *habitService) UpdateHabit(ctx context.Context, id int, req UpdateHabitRequest) (*storage.Habit, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if req.Name != nil && *req.Name == "" {
		return nil, &ValidationError{Field: "name", Message: "cannot be empty"}
	}

	habit, err := s.habits.Update(ctx, id, storage.HabitUpdate{
		Name:        req.Name,
		Description: req.Description,
		Color:       req.Color,
	})
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		logger.ErrorContext(ctx, "failed to update habit", "habit_id", id, "error", err)
		return nil, WrapError(err, "failed to update habit")
	}

	logger.InfoContext(ctx, "habit updated", "habit_id", id)
	return habit, nil
}

// DeleteHabit removes a habit and its events.
func (s *habitService) DeleteHabit(ctx context.Context, id int) error {
	logger := contextutil.LoggerFromContext(ctx)

	if err := s.habits.Delete(ctx, id); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return ErrNotFound
		}
		logger.ErrorContext(ctx, "failed to delete habit", "habit_id", id, "error", err)
		return WrapError(err, "failed to delete habit")
	}

	logger.InfoContext(ctx, "habit deleted", "habit_id", id)
	return nil
}

// RecordEvent records a hit or slip against an existing habit.
func (s *habitService) RecordEvent(ctx context.Context, req RecordEventRequest) (*storage.HabitEvent, error) {
	logger := contextutil.LoggerFromContext(ctx)

	if req.Kind != EventHit && req.Kind != EventSlip {
		logger.WarnContext(ctx, "invalid event kind", "kind", req.Kind)
		return nil, &ValidationError{Field: "kind", Message: "must be hit or slip"}
	}

	// The habit must exist; a missing habit is the caller's 404.
	if _, err := s.habits.GetByID(ctx, req.HabitID); err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return nil, ErrNotFound
		}
		logger.ErrorContext(ctx, "failed to look up habit", "habit_id", req.HabitID, "error", err)
		return nil, WrapError(err, "failed to look up habit")
	}

	event, err := s.events.Create(ctx, &storage.HabitEvent{
		HabitID: req.HabitID,
		Kind:    req.Kind,
		Note:    req.Note,
	})
	if err != nil {
		logger.ErrorContext(ctx, "failed to record event", "habit_id", req.HabitID, "error", err)
		return nil, WrapError(err, "failed to record event")
	}

	logger.InfoContext(ctx, "event recorded", "habit_id", req.HabitID, "kind", req.Kind, "event_id", event.ID)
	return event, nil
}

// DeleteEvents removes the given events.
func (s *habitService) DeleteEvents(ctx context.Context, ids []int) error {
	logger := contextutil.LoggerFromContext(ctx)

	if len(ids) == 0 {
		logger.WarnContext(ctx, "empty id list in delete events request")
		return &ValidationError{Field: "ids", Message: "cannot be empty"}
	}

	if err := s.events.DeleteByIDs(ctx, ids); err != nil {
		logger.ErrorContext(ctx, "failed to delete events", "count", len(ids), "error", err)
		return WrapError(err, "failed to delete events")
	}

	logger.InfoContext(ctx, "events deleted", "count", len(ids))
	return nil
}

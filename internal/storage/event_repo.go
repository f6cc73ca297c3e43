package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_event_store.go -package=mocks dayone/internal/storage EventStore

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"
)

// EventStore defines the interface for habit event storage operations.
type EventStore interface {
	// Create records a hit or slip against a habit and returns the stored event.
	Create(ctx context.Context, event *HabitEvent) (*HabitEvent, error)
	// ListByHabit returns all events for a habit, newest first.
	ListByHabit(ctx context.Context, habitID int) ([]HabitEvent, error)
	// DeleteByIDs removes the events with the given ids.
	// Ids that do not exist are ignored.
	DeleteByIDs(ctx context.Context, ids []int) error
}

// EventRepo provides methods for habit event operations.
// It implements the EventStore interface.
type EventRepo struct {
	db *sql.DB
}

// NewEventRepo creates a new EventRepo.
func NewEventRepo(db *sql.DB) *EventRepo {
	return &EventRepo{db: db}
}

// Create records a hit or slip against a habit and returns the stored event.
func (r *EventRepo) Create(ctx context.Context, event *HabitEvent) (*HabitEvent, error) {
	occurredAt := event.OccurredAt
	if occurredAt.IsZero() {
		occurredAt = time.Now().UTC()
	}

	result, err := r.db.ExecContext(ctx,
		"INSERT INTO habit_events (habit_id, kind, note, occurred_at) VALUES (?, ?, ?, ?)",
		event.HabitID, event.Kind, event.Note, occurredAt.Format("2006-01-02 15:04:05"),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert habit event: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get inserted event id: %w", err)
	}

	return r.getByID(ctx, int(id))
}

// getByID gets an event by id. Returns ErrNotFound if not found.
func (r *EventRepo) getByID(ctx context.Context, id int) (*HabitEvent, error) {
	var event HabitEvent
	var occurredAtStr, createdAtStr string

	err := r.db.QueryRowContext(ctx,
		"SELECT id, habit_id, kind, note, occurred_at, created_at FROM habit_events WHERE id = ?",
		id,
	).Scan(&event.ID, &event.HabitID, &event.Kind, &event.Note, &occurredAtStr, &createdAtStr)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query habit event: %w", err)
	}

	if event.OccurredAt, err = parseTimestamp(occurredAtStr); err != nil {
		return nil, fmt.Errorf("failed to parse occurred_at timestamp: %w", err)
	}
	if event.CreatedAt, err = parseTimestamp(createdAtStr); err != nil {
		return nil, fmt.Errorf("failed to parse created_at timestamp: %w", err)
	}

	return &event, nil
}

// ListByHabit returns all events for a habit, newest first.
func (r *EventRepo) ListByHabit(ctx context.Context, habitID int) ([]HabitEvent, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, habit_id, kind, note, occurred_at, created_at FROM habit_events WHERE habit_id = ? ORDER BY occurred_at DESC, id DESC",
		habitID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query habit events: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	events := []HabitEvent{}
	for rows.Next() {
		var event HabitEvent
		var occurredAtStr, createdAtStr string
		if err := rows.Scan(&event.ID, &event.HabitID, &event.Kind, &event.Note, &occurredAtStr, &createdAtStr); err != nil {
			return nil, fmt.Errorf("failed to scan habit event: %w", err)
		}
		if event.OccurredAt, err = parseTimestamp(occurredAtStr); err != nil {
			return nil, fmt.Errorf("failed to parse occurred_at timestamp: %w", err)
		}
		if event.CreatedAt, err = parseTimestamp(createdAtStr); err != nil {
			return nil, fmt.Errorf("failed to parse created_at timestamp: %w", err)
		}
		events = append(events, event)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate habit events: %w", err)
	}

	return events, nil
}

// DeleteByIDs removes the events with the given ids.
func (r *EventRepo) DeleteByIDs(ctx context.Context, ids []int) error {
	if len(ids) == 0 {
		return nil
	}

	placeholders := strings.TrimSuffix(strings.Repeat("?,", len(ids)), ",")
	args := make([]any, len(ids))
	for i, id := range ids {
		args[i] = id
	}

	if _, err := r.db.ExecContext(ctx, "DELETE FROM habit_events WHERE id IN ("+placeholders+")", args...); err != nil {
		return fmt.Errorf("failed to delete habit events: %w", err)
	}
	return nil
}

package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_habit_store.go -package=mocks dayone/internal/storage HabitStore

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned when a record is not found.
	ErrNotFound = errors.New("record not found")
)

// HabitUpdate holds the fields of a partial habit update.
// Nil fields are left unchanged.
type HabitUpdate struct {
	Name        *string
	Description *string
	Color       *string
}

// HabitStore defines the interface for habit storage operations.
type HabitStore interface {
	// Create inserts a new habit and returns it with its generated id.
	Create(ctx context.Context, habit *Habit) (*Habit, error)
	// GetByID gets a habit by id. Returns ErrNotFound if not found.
	GetByID(ctx context.Context, id int) (*Habit, error)
	// ListWithEvents returns all habits, each with its events attached.
	ListWithEvents(ctx context.Context) ([]Habit, error)
	// Update applies a partial update. Returns ErrNotFound if the habit does not exist.
	Update(ctx context.Context, id int, update HabitUpdate) (*Habit, error)
	// Delete removes a habit and (via FK cascade) its events.
	// Returns ErrNotFound if the habit does not exist.
	Delete(ctx context.Context, id int) error
}

// HabitRepo provides methods for habit operations.
// It implements the HabitStore interface.
type HabitRepo struct {
	db *sql.DB
}

// NewHabitRepo creates a new HabitRepo.
func NewHabitRepo(db *sql.DB) *HabitRepo {
	return &HabitRepo{db: db}
}

// Create inserts a new habit and returns it with its generated id.
func (r *HabitRepo) Create(ctx context.Context, habit *Habit) (*Habit, error) {
	result, err := r.db.ExecContext(ctx,
		"INSERT INTO habits (user_id, name, description, color) VALUES (?, ?, ?, ?)",
		habit.UserID, habit.Name, habit.Description, habit.Color,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to insert habit: %w", err)
	}

	id, err := result.LastInsertId()
	if err != nil {
		return nil, fmt.Errorf("failed to get inserted habit id: %w", err)
	}

	return r.GetByID(ctx, int(id))
}

// GetByID gets a habit by id. Returns ErrNotFound if not found.
func (r *HabitRepo) GetByID(ctx context.Context, id int) (*Habit, error) {
	var habit Habit
	var createdAtStr, updatedAtStr string

	err := r.db.QueryRowContext(ctx,
		"SELECT id, user_id, name, description, color, created_at, updated_at FROM habits WHERE id = ?",
		id,
	).Scan(&habit.ID, &habit.UserID, &habit.Name, &habit.Description, &habit.Color, &createdAtStr, &updatedAtStr)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query habit: %w", err)
	}

	if habit.CreatedAt, err = parseTimestamp(createdAtStr); err != nil {
		return nil, fmt.Errorf("failed to parse created_at timestamp: %w", err)
	}
	if habit.UpdatedAt, err = parseTimestamp(updatedAtStr); err != nil {
		return nil, fmt.Errorf("failed to parse updated_at timestamp: %w", err)
	}

	return &habit, nil
}

// ListWithEvents returns all habits, each with its events attached,
// ordered by creation time. Events are ordered by occurred_at descending.
func (r *HabitRepo) ListWithEvents(ctx context.Context) ([]Habit, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, user_id, name, description, color, created_at, updated_at FROM habits ORDER BY created_at, id",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query habits: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	habits := []Habit{}
	byID := make(map[int]int) // habit id -> index into habits
	for rows.Next() {
		var habit Habit
		var createdAtStr, updatedAtStr string
		if err := rows.Scan(&habit.ID, &habit.UserID, &habit.Name, &habit.Description, &habit.Color, &createdAtStr, &updatedAtStr); err != nil {
			return nil, fmt.Errorf("failed to scan habit: %w", err)
		}
		if habit.CreatedAt, err = parseTimestamp(createdAtStr); err != nil {
			return nil, fmt.Errorf("failed to parse created_at timestamp: %w", err)
		}
		if habit.UpdatedAt, err = parseTimestamp(updatedAtStr); err != nil {
			return nil, fmt.Errorf("failed to parse updated_at timestamp: %w", err)
		}
		habit.Events = []HabitEvent{}
		byID[habit.ID] = len(habits)
		habits = append(habits, habit)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate habits: %w", err)
	}

	eventRows, err := r.db.QueryContext(ctx,
		"SELECT id, habit_id, kind, note, occurred_at, created_at FROM habit_events ORDER BY occurred_at DESC, id DESC",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query habit events: %w", err)
	}
	defer func() {
		_ = eventRows.Close()
	}()

	for eventRows.Next() {
		var event HabitEvent
		var occurredAtStr, createdAtStr string
		if err := eventRows.Scan(&event.ID, &event.HabitID, &event.Kind, &event.Note, &occurredAtStr, &createdAtStr); err != nil {
			return nil, fmt.Errorf("failed to scan habit event: %w", err)
		}
		if event.OccurredAt, err = parseTimestamp(occurredAtStr); err != nil {
			return nil, fmt.Errorf("failed to parse occurred_at timestamp: %w", err)
		}
		if event.CreatedAt, err = parseTimestamp(createdAtStr); err != nil {
			return nil, fmt.Errorf("failed to parse created_at timestamp: %w", err)
		}
		if idx, ok := byID[event.HabitID]; ok {
			habits[idx].Events = append(habits[idx].Events, event)
		}
	}
	if err := eventRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate habit events: %w", err)
	}

	return habits, nil
}

// Update applies a partial update. Returns ErrNotFound if the habit does not exist.
func (r *HabitRepo) Update(ctx context.Context, id int, update HabitUpdate) (*Habit, error) {
	// Verify existence first so callers get ErrNotFound rather than a silent no-op.
	if _, err := r.GetByID(ctx, id); err != nil {
		return nil, err
	}

	setClauses := "updated_at = CURRENT_TIMESTAMP"
	args := []any{}
	if update.Name != nil {
		setClauses += ", name = ?"
		args = append(args, *update.Name)
	}
	if update.Description != nil {
		setClauses += ", description = ?"
		args = append(args, *update.Description)
	}
	if update.Color != nil {
		setClauses += ", color = ?"
		args = append(args, *update.Color)
	}
	args = append(args, id)

	if _, err := r.db.ExecContext(ctx, "UPDATE habits SET "+setClauses+" WHERE id = ?", args...); err != nil {
		return nil, fmt.Errorf("failed to update habit: %w", err)
	}

	return r.GetByID(ctx, id)
}

// Delete removes a habit and (via FK cascade) its events.
// Returns ErrNotFound if the habit does not exist.
func (r *HabitRepo) Delete(ctx context.Context, id int) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM habits WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete habit: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check deleted rows: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

package storage

import "time"

// User represents an account that owns habits.
type User struct {
	ID        int
	Name      string
	Email     string
	CreatedAt time.Time
}

// Habit represents a tracked habit.
type Habit struct {
	ID          int
	UserID      *int // Optional owner (users.id)
	Name        string
	Description string
	Color       string
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Events      []HabitEvent // Populated by ListWithEvents
}

// HabitEvent records a single hit or slip against a habit.
type HabitEvent struct {
	ID         int
	HabitID    int
	Kind       string // "hit" or "slip"
	Note       string // Optional reflection text
	OccurredAt time.Time
	CreatedAt  time.Time
}

// Note represents a notebook entry with ordered string tags.
// Tag order is stable and meaningful: it defines the default playback order.
type Note struct {
	ID        string // UUID
	Content   string // Markdown
	CreatedAt time.Time
	UpdatedAt time.Time
	Tags      []string // Ordered by tag position
}

// MediaRecord represents an uploaded image or audio file.
type MediaRecord struct {
	ID        int
	Filename  string // Timestamp-prefixed name on disk
	URL       string // Public URL path (e.g. /uploads/1693..._cat.png)
	CreatedAt time.Time
}

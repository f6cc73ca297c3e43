package storage

//go:generate go run go.uber.org/mock/mockgen@latest -destination=mocks/mock_note_store.go -package=mocks dayone/internal/storage NoteStore

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
)

// NoteStore defines the interface for note storage operations.
type NoteStore interface {
	// Create inserts a new note with its tags. A UUID is generated if the
	// note has no id.
	Create(ctx context.Context, note *Note) (*Note, error)
	// GetByID gets a note with its ordered tags.
	// Returns ErrNotFound if not found.
	GetByID(ctx context.Context, id string) (*Note, error)
	// ListAll returns all notes with their ordered tags, newest first.
	ListAll(ctx context.Context) ([]Note, error)
	// Update replaces a note's content and tag list.
	// Returns ErrNotFound if the note does not exist.
	Update(ctx context.Context, note *Note) (*Note, error)
	// Delete removes a note and (via FK cascade) its tags.
	// Returns ErrNotFound if the note does not exist.
	Delete(ctx context.Context, id string) error
	// TagValue returns the live value of one tag by note id and position.
	// Returns ErrNotFound if the note or position does not exist.
	TagValue(ctx context.Context, noteID string, tagIndex int) (string, error)
}

// NoteRepo provides methods for note operations.
// It implements the NoteStore interface.
type NoteRepo struct {
	db *sql.DB
}

// NewNoteRepo creates a new NoteRepo.
func NewNoteRepo(db *sql.DB) *NoteRepo {
	return &NoteRepo{db: db}
}

// Create inserts a new note with its tags.
func (r *NoteRepo) Create(ctx context.Context, note *Note) (*Note, error) {
	if note.ID == "" {
		note.ID = uuid.New().String()
	}

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	if _, err := tx.ExecContext(ctx,
		"INSERT INTO notes (id, content) VALUES (?, ?)",
		note.ID, note.Content,
	); err != nil {
		return nil, fmt.Errorf("failed to insert note: %w", err)
	}

	if err := insertTags(ctx, tx, note.ID, note.Tags); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit note: %w", err)
	}

	return r.GetByID(ctx, note.ID)
}

// GetByID gets a note with its ordered tags. Returns ErrNotFound if not found.
func (r *NoteRepo) GetByID(ctx context.Context, id string) (*Note, error) {
	var note Note
	var createdAtStr, updatedAtStr string

	err := r.db.QueryRowContext(ctx,
		"SELECT id, content, created_at, updated_at FROM notes WHERE id = ?",
		id,
	).Scan(&note.ID, &note.Content, &createdAtStr, &updatedAtStr)

	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to query note: %w", err)
	}

	if note.CreatedAt, err = parseTimestamp(createdAtStr); err != nil {
		return nil, fmt.Errorf("failed to parse created_at timestamp: %w", err)
	}
	if note.UpdatedAt, err = parseTimestamp(updatedAtStr); err != nil {
		return nil, fmt.Errorf("failed to parse updated_at timestamp: %w", err)
	}

	note.Tags, err = r.tagsForNote(ctx, note.ID)
	if err != nil {
		return nil, err
	}

	return &note, nil
}

// ListAll returns all notes with their ordered tags, newest first.
func (r *NoteRepo) ListAll(ctx context.Context) ([]Note, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT id, content, created_at, updated_at FROM notes ORDER BY created_at DESC, id",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query notes: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	notes := []Note{}
	byID := make(map[string]int)
	for rows.Next() {
		var note Note
		var createdAtStr, updatedAtStr string
		if err := rows.Scan(&note.ID, &note.Content, &createdAtStr, &updatedAtStr); err != nil {
			return nil, fmt.Errorf("failed to scan note: %w", err)
		}
		if note.CreatedAt, err = parseTimestamp(createdAtStr); err != nil {
			return nil, fmt.Errorf("failed to parse created_at timestamp: %w", err)
		}
		if note.UpdatedAt, err = parseTimestamp(updatedAtStr); err != nil {
			return nil, fmt.Errorf("failed to parse updated_at timestamp: %w", err)
		}
		note.Tags = []string{}
		byID[note.ID] = len(notes)
		notes = append(notes, note)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate notes: %w", err)
	}

	// Tag order within a note is its playback order, so position ordering matters.
	tagRows, err := r.db.QueryContext(ctx,
		"SELECT note_id, value FROM tags ORDER BY note_id, position",
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query tags: %w", err)
	}
	defer func() {
		_ = tagRows.Close()
	}()

	for tagRows.Next() {
		var noteID, value string
		if err := tagRows.Scan(&noteID, &value); err != nil {
			return nil, fmt.Errorf("failed to scan tag: %w", err)
		}
		if idx, ok := byID[noteID]; ok {
			notes[idx].Tags = append(notes[idx].Tags, value)
		}
	}
	if err := tagRows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tags: %w", err)
	}

	return notes, nil
}

// Update replaces a note's content and tag list atomically.
func (r *NoteRepo) Update(ctx context.Context, note *Note) (*Note, error) {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback()
	}()

	result, err := tx.ExecContext(ctx,
		"UPDATE notes SET content = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?",
		note.Content, note.ID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to update note: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return nil, fmt.Errorf("failed to check updated rows: %w", err)
	}
	if affected == 0 {
		return nil, ErrNotFound
	}

	if _, err := tx.ExecContext(ctx, "DELETE FROM tags WHERE note_id = ?", note.ID); err != nil {
		return nil, fmt.Errorf("failed to clear tags: %w", err)
	}
	if err := insertTags(ctx, tx, note.ID, note.Tags); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit note update: %w", err)
	}

	return r.GetByID(ctx, note.ID)
}

// Delete removes a note and (via FK cascade) its tags.
func (r *NoteRepo) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, "DELETE FROM notes WHERE id = ?", id)
	if err != nil {
		return fmt.Errorf("failed to delete note: %w", err)
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

// TagValue returns the live value of one tag by note id and position.
// The playback scheduler reads tag values through this at play time so it
// never acts on a cached copy.
func (r *NoteRepo) TagValue(ctx context.Context, noteID string, tagIndex int) (string, error) {
	var value string
	err := r.db.QueryRowContext(ctx,
		"SELECT value FROM tags WHERE note_id = ? AND position = ?",
		noteID, tagIndex,
	).Scan(&value)
	if err == sql.ErrNoRows {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("failed to query tag value: %w", err)
	}
	return value, nil
}

// tagsForNote returns a note's tag values ordered by position.
func (r *NoteRepo) tagsForNote(ctx context.Context, noteID string) ([]string, error) {
	rows, err := r.db.QueryContext(ctx,
		"SELECT value FROM tags WHERE note_id = ? ORDER BY position",
		noteID,
	)
	if err != nil {
		return nil, fmt.Errorf("failed to query tags: %w", err)
	}
	defer func() {
		_ = rows.Close()
	}()

	tags := []string{}
	for rows.Next() {
		var value string
		if err := rows.Scan(&value); err != nil {
			return nil, fmt.Errorf("failed to scan tag: %w", err)
		}
		tags = append(tags, value)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate tags: %w", err)
	}

	return tags, nil
}

// insertTags writes a note's tag list preserving the caller-supplied order.
func insertTags(ctx context.Context, tx *sql.Tx, noteID string, tags []string) error {
	for position, value := range tags {
		if _, err := tx.ExecContext(ctx,
			"INSERT INTO tags (note_id, position, value) VALUES (?, ?, ?)",
			noteID, position, value,
		); err != nil {
			return fmt.Errorf("failed to insert tag: %w", err)
		}
	}
	return nil
}

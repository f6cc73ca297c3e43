package storage

import (
	"context"
	"errors"
	"testing"
)

func TestNoteRepo_CreatePreservesTagOrder(t *testing.T) {
	repo := NewNoteRepo(testDB(t))
	ctx := context.Background()

	tags := []string{"zebra", "apple", "morning-run.mp3", "zebra again"}
	note, err := repo.Create(ctx, &Note{Content: "# Today", Tags: tags})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if note.ID == "" {
		t.Error("Create() did not assign a uuid")
	}
	if len(note.Tags) != len(tags) {
		t.Fatalf("Tags length = %d, want %d", len(note.Tags), len(tags))
	}
	// Insertion order, not alphabetical order.
	for i, want := range tags {
		if note.Tags[i] != want {
			t.Errorf("Tags[%d] = %q, want %q", i, note.Tags[i], want)
		}
	}
}

func TestNoteRepo_CreateWithExplicitID(t *testing.T) {
	repo := NewNoteRepo(testDB(t))
	ctx := context.Background()

	note, err := repo.Create(ctx, &Note{ID: "fixed-id", Content: "pinned"})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if note.ID != "fixed-id" {
		t.Errorf("ID = %q, want %q", note.ID, "fixed-id")
	}
	if note.Tags == nil {
		t.Error("Tags should be an empty slice, not nil")
	}
}

func TestNoteRepo_GetByIDNotFound(t *testing.T) {
	repo := NewNoteRepo(testDB(t))

	_, err := repo.GetByID(context.Background(), "missing")
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("GetByID() error = %v, want ErrNotFound", err)
	}
}

func TestNoteRepo_ListAll(t *testing.T) {
	repo := NewNoteRepo(testDB(t))
	ctx := context.Background()

	if _, err := repo.Create(ctx, &Note{Content: "first", Tags: []string{"a", "b"}}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}
	if _, err := repo.Create(ctx, &Note{Content: "second"}); err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	notes, err := repo.ListAll(ctx)
	if err != nil {
		t.Fatalf("ListAll() error = %v", err)
	}
	if len(notes) != 2 {
		t.Fatalf("ListAll() returned %d notes, want 2", len(notes))
	}
	for _, note := range notes {
		if note.Tags == nil {
			t.Errorf("note %q has nil Tags, want empty slice", note.ID)
		}
		if note.Content == "first" && len(note.Tags) != 2 {
			t.Errorf("note %q has %d tags, want 2", note.ID, len(note.Tags))
		}
	}
}

func TestNoteRepo_UpdateReplacesTagList(t *testing.T) {
	repo := NewNoteRepo(testDB(t))
	ctx := context.Background()

	note, err := repo.Create(ctx, &Note{Content: "before", Tags: []string{"x", "y", "z"}})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	updated, err := repo.Update(ctx, &Note{ID: note.ID, Content: "after", Tags: []string{"only"}})
	if err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if updated.Content != "after" {
		t.Errorf("Content = %q, want %q", updated.Content, "after")
	}
	if len(updated.Tags) != 1 || updated.Tags[0] != "only" {
		t.Errorf("Tags = %v, want [only]", updated.Tags)
	}
}

func TestNoteRepo_UpdateNotFound(t *testing.T) {
	repo := NewNoteRepo(testDB(t))

	_, err := repo.Update(context.Background(), &Note{ID: "missing", Content: "x"})
	if !errors.Is(err, ErrNotFound) {
		t.Errorf("Update() error = %v, want ErrNotFound", err)
	}
}

func TestNoteRepo_DeleteCascadesTags(t *testing.T) {
	db := testDB(t)
	repo := NewNoteRepo(db)
	ctx := context.Background()

	note, err := repo.Create(ctx, &Note{Content: "bye", Tags: []string{"a"}})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	if err := repo.Delete(ctx, note.ID); err != nil {
		t.Fatalf("Delete() error = %v", err)
	}

	var count int
	if err := db.QueryRow("SELECT COUNT(*) FROM tags WHERE note_id = ?", note.ID).Scan(&count); err != nil {
		t.Fatalf("count query error = %v", err)
	}
	if count != 0 {
		t.Errorf("tags remaining after note delete = %d, want 0", count)
	}

	if err := repo.Delete(ctx, note.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("second Delete() error = %v, want ErrNotFound", err)
	}
}

func TestNoteRepo_TagValue(t *testing.T) {
	repo := NewNoteRepo(testDB(t))
	ctx := context.Background()

	note, err := repo.Create(ctx, &Note{Content: "c", Tags: []string{"zero", "one", "two"}})
	if err != nil {
		t.Fatalf("Create() error = %v", err)
	}

	value, err := repo.TagValue(ctx, note.ID, 1)
	if err != nil {
		t.Fatalf("TagValue() error = %v", err)
	}
	if value != "one" {
		t.Errorf("TagValue() = %q, want %q", value, "one")
	}

	if _, err := repo.TagValue(ctx, note.ID, 7); !errors.Is(err, ErrNotFound) {
		t.Errorf("TagValue() out-of-range error = %v, want ErrNotFound", err)
	}
	if _, err := repo.TagValue(ctx, "missing", 0); !errors.Is(err, ErrNotFound) {
		t.Errorf("TagValue() missing note error = %v, want ErrNotFound", err)
	}

	// After an update shrinks the tag list, old positions vanish.
	if _, err := repo.Update(ctx, &Note{ID: note.ID, Content: "c", Tags: []string{"fresh"}}); err != nil {
		t.Fatalf("Update() error = %v", err)
	}
	if _, err := repo.TagValue(ctx, note.ID, 2); !errors.Is(err, ErrNotFound) {
		t.Errorf("TagValue() after shrink error = %v, want ErrNotFound", err)
	}
	value, err = repo.TagValue(ctx, note.ID, 0)
	if err != nil {
		t.Fatalf("TagValue() error = %v", err)
	}
	if value != "fresh" {
		t.Errorf("TagValue() = %q, want %q", value, "fresh")
	}
}

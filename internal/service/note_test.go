package service_test

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/mock/gomock"

	recallmocks "dayone/internal/recall/mocks"
	"dayone/internal/service"
	"dayone/internal/storage"
	storagemocks "dayone/internal/storage/mocks"
)

func TestNoteService_CreateNote(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	noteStore := storagemocks.NewMockNoteStore(ctrl)
	svc := service.NewNoteService(noteStore, nil)

	t.Run("successful create preserves tags", func(t *testing.T) {
		tags := []string{"water.png", "drink up"}
		noteStore.EXPECT().
			Create(gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, note *storage.Note) (*storage.Note, error) {
				note.ID = "n1"
				return note, nil
			})

		note, err := svc.CreateNote(testContext(), service.NoteRequest{Content: "hi", Tags: tags})
		if err != nil {
			t.Fatalf("CreateNote() error = %v", err)
		}
		if len(note.Tags) != 2 || note.Tags[0] != "water.png" {
			t.Errorf("Tags = %v, want order preserved", note.Tags)
		}
	})

	t.Run("empty content is rejected", func(t *testing.T) {
		_, err := svc.CreateNote(testContext(), service.NoteRequest{Tags: []string{"a"}})
		var vErr *service.ValidationError
		if !errors.As(err, &vErr) || vErr.Field != "content" {
			t.Errorf("CreateNote() error = %v, want content ValidationError", err)
		}
	})
}

func TestNoteService_CreateNoteIndexesForRecall(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	noteStore := storagemocks.NewMockNoteStore(ctrl)
	engine := recallmocks.NewMockEngine(ctrl)
	svc := service.NewNoteService(noteStore, engine)

	noteStore.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(&storage.Note{ID: "n1", Content: "remember this"}, nil)
	engine.EXPECT().IndexNote(gomock.Any(), "n1", "remember this").Return(nil)

	if _, err := svc.CreateNote(testContext(), service.NoteRequest{Content: "remember this"}); err != nil {
		t.Fatalf("CreateNote() error = %v", err)
	}
}

func TestNoteService_CreateNoteSurvivesIndexFailure(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	noteStore := storagemocks.NewMockNoteStore(ctrl)
	engine := recallmocks.NewMockEngine(ctrl)
	svc := service.NewNoteService(noteStore, engine)

	noteStore.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(&storage.Note{ID: "n1", Content: "still saved"}, nil)
	engine.EXPECT().
		IndexNote(gomock.Any(), "n1", "still saved").
		Return(errors.New("qdrant down"))

	// Indexing is best-effort: the note save must succeed regardless.
	note, err := svc.CreateNote(testContext(), service.NoteRequest{Content: "still saved"})
	if err != nil {
		t.Fatalf("CreateNote() error = %v", err)
	}
	if note.ID != "n1" {
		t.Errorf("ID = %q, want n1", note.ID)
	}
}

func TestNoteService_UpdateNote(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	noteStore := storagemocks.NewMockNoteStore(ctrl)
	svc := service.NewNoteService(noteStore, nil)

	t.Run("successful update", func(t *testing.T) {
		noteStore.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			Return(&storage.Note{ID: "n1", Content: "new"}, nil)

		note, err := svc.UpdateNote(testContext(), service.NoteRequest{ID: "n1", Content: "new"})
		if err != nil {
			t.Fatalf("UpdateNote() error = %v", err)
		}
		if note.Content != "new" {
			t.Errorf("Content = %q, want %q", note.Content, "new")
		}
	})

	t.Run("missing id is rejected", func(t *testing.T) {
		_, err := svc.UpdateNote(testContext(), service.NoteRequest{Content: "new"})
		var vErr *service.ValidationError
		if !errors.As(err, &vErr) || vErr.Field != "id" {
			t.Errorf("UpdateNote() error = %v, want id ValidationError", err)
		}
	})

	t.Run("missing note maps to ErrNotFound", func(t *testing.T) {
		noteStore.EXPECT().
			Update(gomock.Any(), gomock.Any()).
			Return(nil, storage.ErrNotFound)

		_, err := svc.UpdateNote(testContext(), service.NoteRequest{ID: "nope", Content: "new"})
		if !errors.Is(err, service.ErrNotFound) {
			t.Errorf("UpdateNote() error = %v, want service.ErrNotFound", err)
		}
	})
}

func TestNoteService_DeleteNote(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	noteStore := storagemocks.NewMockNoteStore(ctrl)
	engine := recallmocks.NewMockEngine(ctrl)
	svc := service.NewNoteService(noteStore, engine)

	noteStore.EXPECT().Delete(gomock.Any(), "n1").Return(nil)
	engine.EXPECT().RemoveNote(gomock.Any(), "n1").Return(nil)
	if err := svc.DeleteNote(testContext(), "n1"); err != nil {
		t.Errorf("DeleteNote() error = %v", err)
	}

	noteStore.EXPECT().Delete(gomock.Any(), "missing").Return(storage.ErrNotFound)
	if err := svc.DeleteNote(testContext(), "missing"); !errors.Is(err, service.ErrNotFound) {
		t.Errorf("DeleteNote() error = %v, want service.ErrNotFound", err)
	}
}

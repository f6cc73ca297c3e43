package storage

import (
	"context"
	"testing"
)

func TestUserRepo_GetOrCreateByEmail(t *testing.T) {
	repo := NewUserRepo(testDB(t))
	ctx := context.Background()

	created, err := repo.GetOrCreateByEmail(ctx, "Sam", "sam@example.com")
	if err != nil {
		t.Fatalf("GetOrCreateByEmail() error = %v", err)
	}
	if created.ID == 0 {
		t.Error("GetOrCreateByEmail() did not assign an id")
	}

	// A second call with the same email returns the same user, even when the
	// name differs.
	again, err := repo.GetOrCreateByEmail(ctx, "Sam Different", "sam@example.com")
	if err != nil {
		t.Fatalf("GetOrCreateByEmail() error = %v", err)
	}
	if again.ID != created.ID {
		t.Errorf("second call id = %d, want %d", again.ID, created.ID)
	}
	if again.Name != "Sam" {
		t.Errorf("Name = %q, want the originally stored %q", again.Name, "Sam")
	}
}

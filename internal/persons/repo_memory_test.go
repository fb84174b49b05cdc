package persons

import (
	"context"
	"testing"

	"docproc-backend/internal/fields"
)

func TestFindOrCreateMergesOnAnyField(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	first, err := repo.FindOrCreate(ctx, fields.Identity{Name: "Jane Doe", Email: "jane@example.com"})
	if err != nil {
		t.Fatalf("FindOrCreate first: %v", err)
	}

	// Same email, different name: OR-match resolves to the same person.
	second, err := repo.FindOrCreate(ctx, fields.Identity{Name: "J Doe", Email: "jane@example.com"})
	if err != nil {
		t.Fatalf("FindOrCreate second: %v", err)
	}
	if first != second {
		t.Fatalf("expected same person id, got %s and %s", first, second)
	}

	// The stored record keeps its original fields: persons are never updated.
	person, err := repo.GetByID(ctx, first)
	if err != nil {
		t.Fatalf("GetByID: %v", err)
	}
	if person.Name != "Jane Doe" {
		t.Fatalf("expected original name preserved, got %q", person.Name)
	}
}

func TestFindOrCreateCreatesOnNoMatch(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	first, err := repo.FindOrCreate(ctx, fields.Identity{Name: "Jane Doe", SSN: "123-45-6789"})
	if err != nil {
		t.Fatalf("FindOrCreate first: %v", err)
	}
	second, err := repo.FindOrCreate(ctx, fields.Identity{Name: "Bob Martin", SSN: "234-56-7890"})
	if err != nil {
		t.Fatalf("FindOrCreate second: %v", err)
	}
	if first == second {
		t.Fatalf("expected distinct person ids")
	}
}

func TestFindOrCreateEmptyFieldsNeverMatch(t *testing.T) {
	repo := NewMemoryRepo()
	ctx := context.Background()

	// Two anonymous documents create two persons: empty fields are NULLs,
	// not joint values.
	first, err := repo.FindOrCreate(ctx, fields.Identity{})
	if err != nil {
		t.Fatalf("FindOrCreate first: %v", err)
	}
	second, err := repo.FindOrCreate(ctx, fields.Identity{})
	if err != nil {
		t.Fatalf("FindOrCreate second: %v", err)
	}
	if first == second {
		t.Fatalf("expected distinct person ids for empty identities")
	}
}

func TestGetByIDNotFound(t *testing.T) {
	repo := NewMemoryRepo()
	if _, err := repo.GetByID(context.Background(), "missing"); err != ErrNotFound {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

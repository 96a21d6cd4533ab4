package catalog

import (
	"context"
	"testing"

	"github.com/gsingh93/gdl-parser/pkg/gdl"
)

const testSource = `(role white) (role black)
(<= (legal ?p noop) (true (control ?p)))`

func mustEntry(t *testing.T, name, path, source string) *Entry {
	t.Helper()

	desc, err := gdl.Parse(source)
	if err != nil {
		t.Fatalf("failed to parse source: %v", err)
	}
	entry, err := NewEntry(name, path, source, desc)
	if err != nil {
		t.Fatalf("failed to build entry: %v", err)
	}
	return entry
}

func TestNewEntry(t *testing.T) {
	entry := mustEntry(t, "tictactoe", "games/tictactoe.kif", testSource)

	if entry.ID == "" {
		t.Error("expected entry to get an ID")
	}
	if entry.Name != "tictactoe" {
		t.Errorf("expected name tictactoe, got %q", entry.Name)
	}
	if entry.SourceHash == "" {
		t.Error("expected source hash to be set")
	}
	if entry.ClauseCount != 3 {
		t.Errorf("expected 3 clauses, got %d", entry.ClauseCount)
	}
	if entry.RuleCount != 1 {
		t.Errorf("expected 1 rule, got %d", entry.RuleCount)
	}
	if entry.CreatedAt.IsZero() || entry.UpdatedAt.IsZero() {
		t.Error("expected timestamps to be set")
	}

	// The stored canonical text must re-parse to the stored tree.
	reparsed, err := gdl.Parse(entry.Canonical)
	if err != nil {
		t.Fatalf("canonical text failed to parse: %v", err)
	}
	stored, err := entry.Description()
	if err != nil {
		t.Fatalf("failed to decode stored tree: %v", err)
	}
	if !reparsed.Equal(stored) {
		t.Error("canonical text and stored tree diverge")
	}
}

func TestMemoryStoreCRUD(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	defer store.Close()

	entry := mustEntry(t, "chess", "games/chess.kif", testSource)
	if err := store.Put(ctx, entry); err != nil {
		t.Fatalf("failed to put entry: %v", err)
	}

	got, err := store.Get(ctx, "chess")
	if err != nil {
		t.Fatalf("failed to get entry: %v", err)
	}
	if got.ID != entry.ID {
		t.Errorf("expected ID %q, got %q", entry.ID, got.ID)
	}

	count, err := store.Count(ctx)
	if err != nil {
		t.Fatalf("failed to count: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 entry, got %d", count)
	}

	if err := store.Delete(ctx, "chess"); err != nil {
		t.Fatalf("failed to delete: %v", err)
	}
	if _, err := store.Get(ctx, "chess"); err != ErrNotFound {
		t.Errorf("expected ErrNotFound after delete, got %v", err)
	}
	if err := store.Delete(ctx, "chess"); err != ErrNotFound {
		t.Errorf("expected ErrNotFound for double delete, got %v", err)
	}
}

func TestMemoryStoreUpdatePreservesIdentity(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	defer store.Close()

	original := mustEntry(t, "checkers", "games/checkers.kif", testSource)
	if err := store.Put(ctx, original); err != nil {
		t.Fatalf("failed to put entry: %v", err)
	}

	updated := mustEntry(t, "checkers", "games/checkers.kif", "(role red) (role black)")
	if err := store.Put(ctx, updated); err != nil {
		t.Fatalf("failed to update entry: %v", err)
	}

	got, err := store.Get(ctx, "checkers")
	if err != nil {
		t.Fatalf("failed to get entry: %v", err)
	}
	if got.ID != original.ID {
		t.Errorf("update changed ID: %q -> %q", original.ID, got.ID)
	}
	if !got.CreatedAt.Equal(original.CreatedAt) {
		t.Error("update changed CreatedAt")
	}
	if got.ClauseCount != 2 {
		t.Errorf("expected updated clause count 2, got %d", got.ClauseCount)
	}

	count, err := store.Count(ctx)
	if err != nil {
		t.Fatalf("failed to count: %v", err)
	}
	if count != 1 {
		t.Errorf("expected 1 entry after update, got %d", count)
	}
}

func TestMemoryStoreListSorted(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	defer store.Close()

	for _, name := range []string{"pente", "connect4", "hex"} {
		if err := store.Put(ctx, mustEntry(t, name, "", testSource)); err != nil {
			t.Fatalf("failed to put %q: %v", name, err)
		}
	}

	entries, err := store.List(ctx)
	if err != nil {
		t.Fatalf("failed to list: %v", err)
	}
	if len(entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(entries))
	}

	want := []string{"connect4", "hex", "pente"}
	for i, entry := range entries {
		if entry.Name != want[i] {
			t.Errorf("entry %d: expected %q, got %q", i, want[i], entry.Name)
		}
	}
}

func TestMemoryStoreCopiesEntries(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	defer store.Close()

	entry := mustEntry(t, "go", "", testSource)
	if err := store.Put(ctx, entry); err != nil {
		t.Fatalf("failed to put entry: %v", err)
	}

	// Mutating a retrieved entry must not affect the stored copy.
	got, err := store.Get(ctx, "go")
	if err != nil {
		t.Fatalf("failed to get entry: %v", err)
	}
	got.Canonical = "tampered"

	again, err := store.Get(ctx, "go")
	if err != nil {
		t.Fatalf("failed to re-get entry: %v", err)
	}
	if again.Canonical == "tampered" {
		t.Error("store returned aliased entry")
	}
}

package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/viant/cbir/feature"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	db, err := Open(":memory:")
	if err != nil {
		t.Fatalf("Open(:memory:) failed: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })

	s, err := New(db)
	if err != nil {
		t.Fatalf("New failed: %v", err)
	}
	return s
}

func TestStore_PutGetRemove(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	vec := feature.Vector{1.5, -2, 3}
	if err := s.Put(ctx, "img.0.jpg", "center-patch", vec); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	got, err := s.Get(ctx, "img.0.jpg", "center-patch")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if len(got) != 3 || got[0] != 1.5 || got[1] != -2 || got[2] != 3 {
		t.Fatalf("Get = %v, want %v", got, vec)
	}

	// Replacing overwrites in place.
	if err := s.Put(ctx, "img.0.jpg", "center-patch", feature.Vector{9}); err != nil {
		t.Fatalf("Put (replace) failed: %v", err)
	}
	got, err = s.Get(ctx, "img.0.jpg", "center-patch")
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if len(got) != 1 || got[0] != 9 {
		t.Fatalf("Get after replace = %v, want [9]", got)
	}

	if err := s.Remove(ctx, "img.0.jpg", "center-patch"); err != nil {
		t.Fatalf("Remove failed: %v", err)
	}
	if _, err := s.Get(ctx, "img.0.jpg", "center-patch"); !errors.Is(err, sql.ErrNoRows) {
		t.Fatalf("Get after Remove error = %v, want sql.ErrNoRows", err)
	}
}

func TestStore_ListByKind(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	records := []Record{
		{ID: "img.1.jpg", Vector: feature.Vector{1}},
		{ID: "img.0.jpg", Vector: feature.Vector{2}},
	}
	if err := s.PutAll(ctx, "histogram", records); err != nil {
		t.Fatalf("PutAll failed: %v", err)
	}
	if err := s.Put(ctx, "img.0.jpg", "center-patch", feature.Vector{3}); err != nil {
		t.Fatalf("Put failed: %v", err)
	}

	got, err := s.List(ctx, "histogram")
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("List returned %d records, want 2", len(got))
	}
	// Ordered by id regardless of insertion order.
	if got[0].ID != "img.0.jpg" || got[1].ID != "img.1.jpg" {
		t.Fatalf("List order = %q, %q; want img.0.jpg, img.1.jpg", got[0].ID, got[1].ID)
	}
}

func TestStore_Validation(t *testing.T) {
	s := openTestStore(t)
	ctx := context.Background()

	if err := s.Put(ctx, "", "histogram", feature.Vector{1}); err == nil {
		t.Fatal("expected error for empty id")
	}
	if err := s.Put(ctx, "img.0.jpg", "histogram", nil); err == nil {
		t.Fatal("expected error for empty vector")
	}
	if _, err := New(nil); err == nil {
		t.Fatal("expected error for nil db")
	}
}

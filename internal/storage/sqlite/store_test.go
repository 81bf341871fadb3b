package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/herabit/jrand/internal/core/javarand"
	"github.com/herabit/jrand/internal/storage"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "generators.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { _ = store.Close() })
	return store
}

func TestOpenRequiresPath(t *testing.T) {
	if _, err := Open("  "); err == nil {
		t.Fatal("expected error for blank path")
	}
}

func TestPutGetRoundTrip(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	r := javarand.WithSeed(42)
	for i := 0; i < 5; i++ {
		r.NextInt32()
	}

	record := storage.GeneratorRecord{Name: "worldgen", State: r.State()}
	if err := store.Put(ctx, record); err != nil {
		t.Fatalf("put: %v", err)
	}

	got, err := store.Get(ctx, "worldgen")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Name != "worldgen" {
		t.Fatalf("expected name worldgen, got %q", got.Name)
	}
	if got.UpdatedAt.IsZero() {
		t.Fatal("expected updated_at to be populated")
	}

	restored := javarand.FromState(got.State)
	for i := 0; i < 100; i++ {
		if a, b := r.NextInt64(), restored.NextInt64(); a != b {
			t.Fatalf("draw %d diverged after restore (%d vs %d)", i, a, b)
		}
	}
}

func TestPendingGaussianSurvivesRoundTrip(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	r := javarand.WithSeed(7)
	r.NextGaussian()

	if err := store.Put(ctx, storage.GeneratorRecord{Name: "gauss", State: r.State()}); err != nil {
		t.Fatalf("put: %v", err)
	}
	got, err := store.Get(ctx, "gauss")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.State.PendingGaussian == nil {
		t.Fatal("pending gaussian lost in storage")
	}

	restored := javarand.FromState(got.State)
	if a, b := r.NextGaussian(), restored.NextGaussian(); a != b {
		t.Fatalf("pending gaussian not bit-exact after round trip (%v vs %v)", a, b)
	}
}

func TestPutReplacesExisting(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	first := javarand.WithSeed(1).State()
	second := javarand.WithSeed(2).State()

	if err := store.Put(ctx, storage.GeneratorRecord{Name: "g", State: first}); err != nil {
		t.Fatalf("put first: %v", err)
	}
	if err := store.Put(ctx, storage.GeneratorRecord{Name: "g", State: second}); err != nil {
		t.Fatalf("put second: %v", err)
	}

	got, err := store.Get(ctx, "g")
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.State.Seed != second.Seed {
		t.Fatalf("expected seed %d, got %d", second.Seed, got.State.Seed)
	}

	records, err := store.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
}

func TestGetMissingReturnsNotFound(t *testing.T) {
	store := openTestStore(t)

	_, err := store.Get(context.Background(), "missing")
	if !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestDelete(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	if err := store.Put(ctx, storage.GeneratorRecord{Name: "g", State: javarand.WithSeed(1).State()}); err != nil {
		t.Fatalf("put: %v", err)
	}
	if err := store.Delete(ctx, "g"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := store.Delete(ctx, "g"); !errors.Is(err, storage.ErrNotFound) {
		t.Fatalf("expected ErrNotFound on second delete, got %v", err)
	}
}

func TestListOrdersByName(t *testing.T) {
	store := openTestStore(t)
	ctx := context.Background()

	for _, name := range []string{"zeta", "alpha", "mid"} {
		if err := store.Put(ctx, storage.GeneratorRecord{Name: name, State: javarand.WithSeed(1).State()}); err != nil {
			t.Fatalf("put %s: %v", name, err)
		}
	}

	records, err := store.List(ctx)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	want := []string{"alpha", "mid", "zeta"}
	if len(records) != len(want) {
		t.Fatalf("expected %d records, got %d", len(want), len(records))
	}
	for i, name := range want {
		if records[i].Name != name {
			t.Fatalf("record %d: expected %q, got %q", i, name, records[i].Name)
		}
	}
}

package storage

import (
	"context"
	"errors"
	"time"

	"github.com/herabit/jrand/internal/core/javarand"
)

// ErrNotFound indicates a requested generator record is missing.
var ErrNotFound = errors.New("generator not found")

// GeneratorRecord is one persisted generator: its name, the snapshot
// of its state, and when it was last written. Restoring the state
// must reproduce the generator's future output sequence exactly.
type GeneratorRecord struct {
	Name      string
	State     javarand.State
	UpdatedAt time.Time
}

// GeneratorStore persists named generator states.
type GeneratorStore interface {
	// Put writes a record, replacing any existing one with the same
	// name.
	Put(ctx context.Context, record GeneratorRecord) error
	// Get returns the record with the given name, or ErrNotFound.
	Get(ctx context.Context, name string) (GeneratorRecord, error)
	// List returns all records ordered by name.
	List(ctx context.Context) ([]GeneratorRecord, error)
	// Delete removes the record with the given name, or returns
	// ErrNotFound.
	Delete(ctx context.Context, name string) error
}

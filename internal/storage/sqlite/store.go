// Package sqlite provides a SQLite-backed generator store.
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/herabit/jrand/internal/core/javarand"
	"github.com/herabit/jrand/internal/platform/storage/sqlitemigrate"
	"github.com/herabit/jrand/internal/storage"
	"github.com/herabit/jrand/internal/storage/sqlite/migrations"
	_ "modernc.org/sqlite"
)

// Store persists generator states in SQLite. The pending Gaussian
// value rides in a nullable REAL column; REAL is an IEEE double, so
// the round trip is bit-exact.
type Store struct {
	sqlDB *sql.DB
}

// Open opens a SQLite generator store at the provided path and
// applies embedded migrations.
func Open(path string) (*Store, error) {
	if strings.TrimSpace(path) == "" {
		return nil, fmt.Errorf("storage path is required")
	}

	cleanPath := filepath.Clean(path)
	dsn := cleanPath + "?_journal_mode=WAL&_foreign_keys=ON&_busy_timeout=5000&_synchronous=NORMAL"
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("ping sqlite db: %w", err)
	}
	if err := sqlitemigrate.ApplyMigrations(sqlDB, migrations.FS); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("run migrations: %w", err)
	}

	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// Put writes a record, replacing any existing one with the same name.
func (s *Store) Put(ctx context.Context, record storage.GeneratorRecord) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	name := strings.TrimSpace(record.Name)
	if name == "" {
		return fmt.Errorf("generator name is required")
	}
	updatedAt := record.UpdatedAt
	if updatedAt.IsZero() {
		updatedAt = time.Now().UTC()
	}

	var pending sql.NullFloat64
	if record.State.PendingGaussian != nil {
		pending = sql.NullFloat64{Float64: *record.State.PendingGaussian, Valid: true}
	}

	_, err := s.sqlDB.ExecContext(ctx, `
INSERT INTO generators (name, seed, pending_gaussian, updated_at)
VALUES (?, ?, ?, ?)
ON CONFLICT(name) DO UPDATE SET
    seed = excluded.seed,
    pending_gaussian = excluded.pending_gaussian,
    updated_at = excluded.updated_at
`, name, record.State.Seed, pending, updatedAt.UTC().UnixMilli())
	if err != nil {
		return fmt.Errorf("put generator %s: %w", name, err)
	}
	return nil
}

// Get returns the record with the given name, or storage.ErrNotFound.
func (s *Store) Get(ctx context.Context, name string) (storage.GeneratorRecord, error) {
	if err := ctx.Err(); err != nil {
		return storage.GeneratorRecord{}, err
	}
	if s == nil || s.sqlDB == nil {
		return storage.GeneratorRecord{}, fmt.Errorf("storage is not configured")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return storage.GeneratorRecord{}, fmt.Errorf("generator name is required")
	}

	row := s.sqlDB.QueryRowContext(ctx, `
SELECT name, seed, pending_gaussian, updated_at FROM generators WHERE name = ?
`, name)
	return scanRecord(row.Scan)
}

// List returns all records ordered by name.
func (s *Store) List(ctx context.Context) ([]storage.GeneratorRecord, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if s == nil || s.sqlDB == nil {
		return nil, fmt.Errorf("storage is not configured")
	}

	rows, err := s.sqlDB.QueryContext(ctx, `
SELECT name, seed, pending_gaussian, updated_at FROM generators ORDER BY name
`)
	if err != nil {
		return nil, fmt.Errorf("list generators: %w", err)
	}
	defer rows.Close()

	var records []storage.GeneratorRecord
	for rows.Next() {
		record, err := scanRecord(rows.Scan)
		if err != nil {
			return nil, err
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list generators: %w", err)
	}
	return records, nil
}

// Delete removes the record with the given name.
func (s *Store) Delete(ctx context.Context, name string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if s == nil || s.sqlDB == nil {
		return fmt.Errorf("storage is not configured")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return fmt.Errorf("generator name is required")
	}

	result, err := s.sqlDB.ExecContext(ctx, "DELETE FROM generators WHERE name = ?", name)
	if err != nil {
		return fmt.Errorf("delete generator %s: %w", name, err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("delete generator %s: %w", name, err)
	}
	if affected == 0 {
		return storage.ErrNotFound
	}
	return nil
}

func scanRecord(scan func(dest ...any) error) (storage.GeneratorRecord, error) {
	var (
		record    storage.GeneratorRecord
		seed      int64
		pending   sql.NullFloat64
		updatedAt int64
	)
	if err := scan(&record.Name, &seed, &pending, &updatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return storage.GeneratorRecord{}, storage.ErrNotFound
		}
		return storage.GeneratorRecord{}, fmt.Errorf("scan generator: %w", err)
	}

	record.State = javarand.State{Seed: seed}
	if pending.Valid {
		value := pending.Float64
		record.State.PendingGaussian = &value
	}
	record.UpdatedAt = time.UnixMilli(updatedAt).UTC()
	return record, nil
}

// Package storage contains the storage-agnostic contracts for the pipeline's
// destination store: a small Repository interface, a factory keyed by backend
// kind, and a DDL bootstrap registry. Concrete backends live in subpackages
// and register themselves at init time; importing storage/all enables them.
package storage

import (
	"context"
	"fmt"
	"sync"
)

// Repository is the write-side contract a destination backend must satisfy.
type Repository interface {
	// Exec executes an arbitrary SQL statement (typically DDL).
	Exec(ctx context.Context, sql string) error

	// InsertRows bulk-inserts rows (aligned to the columns order) into table
	// within a single transaction, returning the number of rows inserted.
	// Implementations must make the insert all-or-nothing: any failed row
	// rolls back the whole call.
	InsertRows(ctx context.Context, table string, columns []string, rows [][]any) (int64, error)

	// Close releases the underlying connection resources.
	Close()
}

// Config selects and configures a backend.
type Config struct {
	// Kind selects the backend implementation, e.g. "sqlite" or "postgres".
	Kind string

	// DSN is the backend connection string. For sqlite this is a file path
	// (or ":memory:"); for postgres a pgx pool DSN.
	DSN string
}

// Factory constructs a Repository from a Config.
type Factory func(ctx context.Context, cfg Config) (Repository, error)

var (
	mu        sync.RWMutex
	factories = map[string]Factory{}
)

// Register registers (or replaces) a Factory for the given backend kind. It
// is typically called from backend packages' init() functions.
func Register(kind string, fn Factory) {
	mu.Lock()
	defer mu.Unlock()
	factories[kind] = fn
}

// New opens a Repository of the configured kind. An unknown kind is an error
// listing nothing beyond the kind itself; callers decide how to surface it.
func New(ctx context.Context, cfg Config) (Repository, error) {
	mu.RLock()
	fn, ok := factories[cfg.Kind]
	mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("no storage backend registered for kind=%q", cfg.Kind)
	}
	return fn(ctx, cfg)
}

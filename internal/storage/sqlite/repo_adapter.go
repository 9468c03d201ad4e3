// This file wires the SQLite backend into the storage factory. Callers never
// import this package directly; registration happens in init and the blank
// import in storage/all enables it.
package sqlite

import (
	"context"
	"fmt"

	"shopetl/internal/schema"
	"shopetl/internal/storage"
	sqliteddl "shopetl/internal/storage/sqlite/ddl"
)

// newRepository is a test hook that points to NewRepository by default.
// Tests may replace this variable to avoid real DB connections.
var newRepository = NewRepository

// wrappedRepo adapts *Repository to storage.Repository, tying Close to the
// cleanup function returned by NewRepository.
type wrappedRepo struct {
	*Repository
	closeFn func()
}

func (w *wrappedRepo) Close() {
	if w.closeFn != nil {
		w.closeFn()
	}
}

// Ensure wrappedRepo satisfies the interface at compile time.
var _ storage.Repository = (*wrappedRepo)(nil)

func init() {
	storage.Register("sqlite", func(ctx context.Context, cfg storage.Config) (storage.Repository, error) {
		r, closeFn, err := newRepository(ctx, cfg.DSN)
		if err != nil {
			return nil, err
		}
		return &wrappedRepo{Repository: r, closeFn: closeFn}, nil
	})

	// DDL bootstrap registration.
	storage.RegisterDDL("sqlite",
		func(ctx context.Context, repo storage.Repository, c schema.Contract) error {
			stmt, err := sqliteddl.BuildCreateTableSQL(sqliteddl.FromContract(c))
			if err != nil {
				return fmt.Errorf("build table definition: %w", err)
			}
			return repo.Exec(ctx, stmt)
		})
}

// This file wires the Postgres backend into the storage factory; see the
// sqlite adapter for the pattern.
package postgres

import (
	"context"
	"fmt"

	"shopetl/internal/schema"
	"shopetl/internal/storage"
	pgddl "shopetl/internal/storage/postgres/ddl"
)

// newRepository is a test hook that points to NewRepository by default.
var newRepository = NewRepository

type wrappedRepo struct {
	*Repository
	closeFn func()
}

func (w *wrappedRepo) Close() {
	if w.closeFn != nil {
		w.closeFn()
	}
}

var _ storage.Repository = (*wrappedRepo)(nil)

func init() {
	storage.Register("postgres", func(ctx context.Context, cfg storage.Config) (storage.Repository, error) {
		r, closeFn, err := newRepository(ctx, cfg.DSN)
		if err != nil {
			return nil, err
		}
		return &wrappedRepo{Repository: r, closeFn: closeFn}, nil
	})

	storage.RegisterDDL("postgres",
		func(ctx context.Context, repo storage.Repository, c schema.Contract) error {
			stmt, err := pgddl.BuildCreateTableSQL(pgddl.FromContract(c))
			if err != nil {
				return fmt.Errorf("build table definition: %w", err)
			}
			return repo.Exec(ctx, stmt)
		})
}

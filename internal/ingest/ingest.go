// Package ingest implements the core loader: it turns the five generated CSV
// files into a consistent relational store with declared types, primary keys,
// and foreign keys.
//
// Failure semantics: any missing file, malformed row, or constraint
// violation aborts the whole run. In the default (rebuild) mode the new
// store is built in a temporary file and renamed over the destination only
// after every table has loaded, so a failed run leaves the previous store
// untouched.
package ingest

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"

	"shopetl/internal/datasource/file"
	csvparser "shopetl/internal/parser/csv"
	"shopetl/internal/schema"
	"shopetl/internal/storage"
	"shopetl/internal/transformer/builtin"
)

// Options configures an ingestion run. RawDir and the destination are both
// explicit; nothing in the pipeline reads global state.
type Options struct {
	// RawDir is the directory containing the five generated CSV files.
	RawDir string

	// StorePath is the destination SQLite file. Ignored when DSN is set.
	StorePath string

	// KeepExisting opens the destination without dropping prior tables and
	// appends new rows. Rerunning against already-loaded data then fails on
	// the primary-key constraint; that is the documented behavior, not a bug.
	KeepExisting bool

	// Kind selects the storage backend ("sqlite" by default).
	Kind string

	// DSN overrides the connection string for server backends (postgres).
	DSN string
}

// Summary reports what a successful run loaded: rows per table and an xxh3
// fingerprint per input file.
type Summary struct {
	Rows         map[string]int64
	Fingerprints map[string]string
}

// Run executes a full ingestion: verify inputs, create the schema, and load
// all five entity collections in dependency order (parents before children).
func Run(ctx context.Context, opts Options) (*Summary, error) {
	kind := opts.Kind
	if kind == "" {
		kind = "sqlite"
	}

	entities := schema.Entities()

	// Verify every input exists before any table is created, so a missing
	// file can never leave a half-built store behind.
	paths := make(map[string]string, len(entities))
	for _, c := range entities {
		p := filepath.Join(opts.RawDir, c.File)
		if _, err := os.Stat(p); err != nil {
			return nil, fmt.Errorf("ingest: missing input file %s: %w", c.File, err)
		}
		paths[c.Table] = p
	}

	sum := &Summary{
		Rows:         make(map[string]int64, len(entities)),
		Fingerprints: make(map[string]string, len(entities)),
	}
	for _, c := range entities {
		fp, err := fingerprintFile(paths[c.Table])
		if err != nil {
			return nil, fmt.Errorf("ingest: %w", err)
		}
		sum.Fingerprints[c.File] = fp
		log.Printf("input %s: xxh3=%s", c.File, fp)
	}

	switch kind {
	case "sqlite":
		if opts.DSN != "" {
			return nil, fmt.Errorf("ingest: sqlite uses -db PATH, not a DSN")
		}
		if err := runSQLite(ctx, opts, entities, paths, sum); err != nil {
			return nil, err
		}
	default:
		if opts.DSN == "" {
			return nil, fmt.Errorf("ingest: kind %q requires a DSN", kind)
		}
		if err := runServer(ctx, kind, opts, entities, paths, sum); err != nil {
			return nil, err
		}
	}

	for _, c := range entities {
		log.Printf("loaded %s: %s rows", c.Table, humanize.Comma(sum.Rows[c.Table]))
	}
	return sum, nil
}

// runSQLite handles the single-file destination. Default mode builds into a
// fresh temp file next to the destination and renames it into place only
// after every table committed; KeepExisting appends in place.
func runSQLite(
	ctx context.Context,
	opts Options,
	entities []schema.Contract,
	paths map[string]string,
	sum *Summary,
) error {
	if opts.StorePath == "" {
		return fmt.Errorf("ingest: store path must not be empty")
	}
	if dir := filepath.Dir(opts.StorePath); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("ingest: create store directory: %w", err)
		}
	}

	target := opts.StorePath
	if !opts.KeepExisting {
		target = fmt.Sprintf("%s.tmp-%d", opts.StorePath, os.Getpid())
		// A leftover temp from a crashed run would make the rebuild append.
		if err := os.Remove(target); err != nil && !os.IsNotExist(err) {
			return fmt.Errorf("ingest: clear stale temp store: %w", err)
		}
		defer os.Remove(target) // no-op after a successful rename
	}

	repo, err := storage.New(ctx, storage.Config{Kind: "sqlite", DSN: target})
	if err != nil {
		return fmt.Errorf("ingest: open store: %w", err)
	}

	if err := loadAll(ctx, "sqlite", repo, entities, paths, sum); err != nil {
		repo.Close()
		return err
	}
	// Close before the rename; the handle must not outlive the swap.
	repo.Close()

	if !opts.KeepExisting {
		if err := os.Rename(target, opts.StorePath); err != nil {
			return fmt.Errorf("ingest: swap store into place: %w", err)
		}
	}
	return nil
}

// runServer handles server-backed destinations. There is no file to swap, so
// the default mode drops the five tables (children first) inside the same
// connection before recreating them.
func runServer(
	ctx context.Context,
	kind string,
	opts Options,
	entities []schema.Contract,
	paths map[string]string,
	sum *Summary,
) error {
	repo, err := storage.New(ctx, storage.Config{Kind: kind, DSN: opts.DSN})
	if err != nil {
		return fmt.Errorf("ingest: open store: %w", err)
	}
	defer repo.Close()

	if !opts.KeepExisting {
		for i := len(entities) - 1; i >= 0; i-- {
			stmt := fmt.Sprintf("DROP TABLE IF EXISTS %q;", entities[i].Table)
			if err := repo.Exec(ctx, stmt); err != nil {
				return fmt.Errorf("ingest: drop %s: %w", entities[i].Table, err)
			}
		}
	}

	return loadAll(ctx, kind, repo, entities, paths, sum)
}

// loadAll creates each table and loads its rows, in contract order. Each
// table loads in a single transaction inside the repository, so a failed row
// never leaves a partially-loaded table.
func loadAll(
	ctx context.Context,
	kind string,
	repo storage.Repository,
	entities []schema.Contract,
	paths map[string]string,
	sum *Summary,
) error {
	start := time.Now()
	for _, c := range entities {
		if err := storage.EnsureTable(ctx, kind, repo, c); err != nil {
			return fmt.Errorf("ingest: create %s: %w", c.Table, err)
		}
		n, err := loadTable(ctx, repo, c, paths[c.Table])
		if err != nil {
			return err
		}
		sum.Rows[c.Table] = n
	}
	log.Printf("ingest completed in %s", time.Since(start).Truncate(time.Millisecond))
	return nil
}

// loadTable parses one CSV and bulk-inserts it. The returned error names the
// source file and the 1-based data row for anything row-shaped that fails.
func loadTable(ctx context.Context, repo storage.Repository, c schema.Contract, path string) (int64, error) {
	src := file.NewLocal(path)
	rc, err := src.Open(ctx)
	if err != nil {
		return 0, fmt.Errorf("ingest: %w", err)
	}
	defer rc.Close()

	parser := csvparser.NewParser(csvparser.Options{TrimSpace: true})
	recs, err := parser.Parse(rc)
	if err != nil {
		return 0, fmt.Errorf("ingest: %s: %w", c.File, err)
	}

	require := builtin.Require{Contract: c}
	coerce := builtin.Coerce{Contract: c}
	cols := c.Columns()

	rows := make([][]any, 0, len(recs))
	for i, rec := range recs {
		if err := require.Apply(rec); err != nil {
			return 0, fmt.Errorf("ingest: %s row %d: %w", c.File, i+1, err)
		}
		if err := coerce.Apply(rec); err != nil {
			return 0, fmt.Errorf("ingest: %s row %d: %w", c.File, i+1, err)
		}
		row := make([]any, len(cols))
		for j, col := range cols {
			row[j] = rec[col]
		}
		rows = append(rows, row)
	}

	n, err := repo.InsertRows(ctx, c.Table, cols, rows)
	if err != nil {
		return 0, fmt.Errorf("ingest: load %s: %w", c.File, err)
	}
	return n, nil
}

package storage

import (
	"context"
	"fmt"
	"sync"

	"shopetl/internal/schema"
)

// DDLBootstrapper is a backend-specific function that maps an entity contract
// to that backend's column types and applies the resulting CREATE TABLE via
// repo.Exec. Backends register their implementation for a given storage kind
// at init time.
type DDLBootstrapper func(ctx context.Context, repo Repository, c schema.Contract) error

var (
	ddlMu  sync.RWMutex
	ddlFns = map[string]DDLBootstrapper{}
)

// RegisterDDL registers (or replaces) a DDLBootstrapper for the given storage
// kind. It is typically called from backend packages' init() functions.
func RegisterDDL(kind string, fn DDLBootstrapper) {
	ddlMu.Lock()
	defer ddlMu.Unlock()
	ddlFns[kind] = fn
}

// EnsureTable locates the DDLBootstrapper for kind and invokes it for the
// contract. Callers do not need to know which backend they are using.
func EnsureTable(ctx context.Context, kind string, repo Repository, c schema.Contract) error {
	ddlMu.RLock()
	fn, ok := ddlFns[kind]
	ddlMu.RUnlock()
	if !ok {
		return fmt.Errorf("no DDL bootstrapper registered for kind=%q", kind)
	}
	return fn(ctx, repo, c)
}

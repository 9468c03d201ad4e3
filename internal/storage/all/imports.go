// Package all wires all built-in storage backends into the storage factory.
//
// This package exists purely for side effects: importing it (even as a blank
// import) causes the init functions of each concrete storage backend to run,
// which in turn register their factories and DDL bootstrappers with the
// storage package.
//
// Storage kinds made available by importing this package:
//
//   - "sqlite"   (shopetl/internal/storage/sqlite), the default single-file store
//   - "postgres" (shopetl/internal/storage/postgres)
package all

import (
	_ "shopetl/internal/storage/postgres"
	_ "shopetl/internal/storage/sqlite"
)

// Package ddl contains SQLite-specific helpers for generating DDL.
//
// It maps the logical types used by entity contracts into SQLite column
// types. The mapping is intentionally simple and biased toward common,
// portable choices.
package ddl

import "strings"

// MapType maps a logical type string (e.g., "integer", "real") into a SQLite
// column type.
//
// SQLite uses type affinities, so the mapping prefers canonical ones:
//   - integer-ish types -> INTEGER
//   - float-ish types   -> REAL
//   - everything else   -> TEXT (dates are stored as ISO-8601 strings)
func MapType(kind string) string {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "int", "integer", "bigint":
		return "INTEGER"
	case "float", "double", "real":
		return "REAL"
	case "numeric", "decimal":
		return "NUMERIC"
	default:
		return "TEXT"
	}
}

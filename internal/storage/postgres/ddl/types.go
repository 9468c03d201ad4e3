// Package ddl contains Postgres-specific helpers for generating DDL.
package ddl

import "strings"

// MapType maps a logical type string into a Postgres column type.
func MapType(kind string) string {
	switch strings.ToLower(strings.TrimSpace(kind)) {
	case "int", "integer":
		return "INTEGER"
	case "bigint":
		return "BIGINT"
	case "float", "double", "real":
		return "DOUBLE PRECISION"
	case "numeric", "decimal":
		return "NUMERIC"
	default:
		return "TEXT"
	}
}

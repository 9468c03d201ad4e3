// Package records defines the row representation passed between the CSV
// parser, the coercion transformers, and storage.
package records

// Record is a single parsed row, keyed by canonical column name. Values are
// raw strings as read from the CSV until a transformer coerces them.
type Record map[string]any

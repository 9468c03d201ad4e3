// Package ddl defines the database-agnostic table definition model shared by
// the backend-specific DDL builders.
package ddl

// ColumnDef describes a single column in a table definition.
//
// Fields:
//   - Name: logical column name (unquoted; quoting/escaping happens at render time)
//   - SQLType: target SQL type (e.g., TEXT, INTEGER, REAL)
//   - Nullable: whether NULL is allowed
//   - PrimaryKey: whether the column is part of the primary key
//   - Check: raw CHECK expression scoped to this column (e.g., "quantity > 0")
type ColumnDef struct {
	Name       string
	SQLType    string
	Nullable   bool
	PrimaryKey bool
	Check      string
}

// ForeignKey declares that Column references RefColumn in RefTable. Renderers
// emit it as a table-level FOREIGN KEY constraint.
type ForeignKey struct {
	Column    string
	RefTable  string
	RefColumn string
}

// TableDef holds the table name, an ordered list of columns, and the foreign
// keys the table declares. The name may be dotted (e.g., "main.orders") and
// will be quoted/escaped by renderers as needed.
type TableDef struct {
	FQN         string
	Columns     []ColumnDef
	ForeignKeys []ForeignKey
}

package ddl

import (
	"fmt"
	"strings"

	gddl "shopetl/internal/ddl"
	"shopetl/internal/schema"
)

// FromContract maps an entity contract onto a SQLite table definition using
// MapType for column types. Required fields become NOT NULL, the contract's
// primary key and foreign keys carry over unchanged.
func FromContract(c schema.Contract) gddl.TableDef {
	cols := make([]gddl.ColumnDef, 0, len(c.Fields))
	for _, f := range c.Fields {
		cols = append(cols, gddl.ColumnDef{
			Name:       f.Name,
			SQLType:    MapType(f.Type),
			Nullable:   !f.Required,
			PrimaryKey: f.Name == c.PrimaryKey,
			Check:      f.Check,
		})
	}
	fks := make([]gddl.ForeignKey, 0, len(c.ForeignKeys))
	for _, fk := range c.ForeignKeys {
		fks = append(fks, gddl.ForeignKey{
			Column:    fk.Column,
			RefTable:  fk.RefTable,
			RefColumn: fk.RefColumn,
		})
	}
	return gddl.TableDef{FQN: c.Table, Columns: cols, ForeignKeys: fks}
}

// BuildCreateTableSQL returns a SQLite CREATE TABLE statement for the given
// table definition. The statement has the form:
//
//	CREATE TABLE IF NOT EXISTS "table" (
//	  "col1" TYPE [NOT NULL] [CHECK (expr)],
//	  "col2" TYPE,
//	  PRIMARY KEY ("pk"),
//	  FOREIGN KEY ("col") REFERENCES "parent" ("id")
//	);
//
// TableDef.FQN is interpreted as a table name; if it contains dots (e.g.,
// "main.orders"), each segment is individually quoted.
func BuildCreateTableSQL(t gddl.TableDef) (string, error) {
	fqn := strings.TrimSpace(t.FQN)
	if fqn == "" {
		return "", fmt.Errorf("sqlite ddl: table FQN must not be empty")
	}
	if len(t.Columns) == 0 {
		return "", fmt.Errorf("sqlite ddl: at least one column is required")
	}

	cols := make([]string, 0, len(t.Columns)+1+len(t.ForeignKeys))
	pks := make([]string, 0, len(t.Columns))

	for _, c := range t.Columns {
		name := strings.TrimSpace(c.Name)
		if name == "" {
			return "", fmt.Errorf("sqlite ddl: column with empty name in table %s", fqn)
		}
		typ := strings.TrimSpace(c.SQLType)
		if typ == "" {
			return "", fmt.Errorf("sqlite ddl: column %s missing SQLType", name)
		}

		var sb strings.Builder
		sb.WriteString(quoteIdent(name))
		sb.WriteByte(' ')
		sb.WriteString(typ)

		if !c.Nullable {
			sb.WriteString(" NOT NULL")
		}

		if chk := strings.TrimSpace(c.Check); chk != "" {
			sb.WriteString(" CHECK (")
			sb.WriteString(chk)
			sb.WriteString(")")
		}

		cols = append(cols, sb.String())

		if c.PrimaryKey {
			pks = append(pks, quoteIdent(name))
		}
	}

	if len(pks) > 0 {
		cols = append(cols,
			fmt.Sprintf("PRIMARY KEY (%s)", strings.Join(pks, ", ")),
		)
	}

	for _, fk := range t.ForeignKeys {
		if fk.Column == "" || fk.RefTable == "" || fk.RefColumn == "" {
			return "", fmt.Errorf("sqlite ddl: incomplete foreign key in table %s", fqn)
		}
		cols = append(cols, fmt.Sprintf(
			"FOREIGN KEY (%s) REFERENCES %s (%s)",
			quoteIdent(fk.Column),
			quoteIdent(fk.RefTable),
			quoteIdent(fk.RefColumn),
		))
	}

	stmt := fmt.Sprintf(
		"CREATE TABLE IF NOT EXISTS %s (\n  %s\n);",
		quoteFQN(fqn),
		strings.Join(cols, ",\n  "),
	)
	return stmt, nil
}

func quoteIdent(id string) string {
	return `"` + strings.ReplaceAll(id, `"`, `""`) + `"`
}

func quoteFQN(fqn string) string {
	parts := strings.Split(fqn, ".")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p == "" {
			continue
		}
		out = append(out, quoteIdent(p))
	}
	return strings.Join(out, ".")
}

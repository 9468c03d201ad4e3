package ddl

import (
	"strings"
	"testing"

	gddl "shopetl/internal/ddl"
	"shopetl/internal/schema"
)

func TestMapType(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"integer": "INTEGER",
		"int":     "INTEGER",
		"real":    "REAL",
		"text":    "TEXT",
		"":        "TEXT",
	}
	for in, want := range cases {
		if got := MapType(in); got != want {
			t.Fatalf("MapType(%q) = %q, want %q", in, got, want)
		}
	}
}

// TestBuildCreateTableSQL renders the order_items contract and asserts the
// statement carries every constraint the loader relies on.
func TestBuildCreateTableSQL(t *testing.T) {
	t.Parallel()

	stmt, err := BuildCreateTableSQL(FromContract(schema.OrderItems))
	if err != nil {
		t.Fatalf("BuildCreateTableSQL: %v", err)
	}

	wantParts := []string{
		`CREATE TABLE IF NOT EXISTS "order_items"`,
		`"quantity" INTEGER NOT NULL CHECK (quantity > 0)`,
		`"unit_price" REAL NOT NULL CHECK (unit_price >= 0)`,
		`PRIMARY KEY ("id")`,
		`FOREIGN KEY ("order_id") REFERENCES "orders" ("id")`,
		`FOREIGN KEY ("product_id") REFERENCES "products" ("id")`,
	}
	for _, w := range wantParts {
		if !strings.Contains(stmt, w) {
			t.Fatalf("statement missing %q:\n%s", w, stmt)
		}
	}
}

func TestBuildCreateTableSQLErrors(t *testing.T) {
	t.Parallel()

	if _, err := BuildCreateTableSQL(gddl.TableDef{}); err == nil {
		t.Fatal("expected error for empty FQN")
	}
	if _, err := BuildCreateTableSQL(gddl.TableDef{FQN: "t"}); err == nil {
		t.Fatal("expected error for zero columns")
	}
	bad := gddl.TableDef{
		FQN:         "t",
		Columns:     []gddl.ColumnDef{{Name: "id", SQLType: "TEXT"}},
		ForeignKeys: []gddl.ForeignKey{{Column: "id"}},
	}
	if _, err := BuildCreateTableSQL(bad); err == nil {
		t.Fatal("expected error for incomplete foreign key")
	}
}

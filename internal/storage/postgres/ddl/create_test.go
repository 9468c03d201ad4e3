package ddl

import (
	"strings"
	"testing"

	"shopetl/internal/schema"
)

func TestMapType(t *testing.T) {
	t.Parallel()

	cases := map[string]string{
		"integer": "INTEGER",
		"real":    "DOUBLE PRECISION",
		"text":    "TEXT",
	}
	for in, want := range cases {
		if got := MapType(in); got != want {
			t.Fatalf("MapType(%q) = %q, want %q", in, got, want)
		}
	}
}

func TestBuildCreateTableSQL(t *testing.T) {
	t.Parallel()

	stmt, err := BuildCreateTableSQL(FromContract(schema.Payments))
	if err != nil {
		t.Fatalf("BuildCreateTableSQL: %v", err)
	}

	wantParts := []string{
		`CREATE TABLE IF NOT EXISTS "payments"`,
		`"amount" DOUBLE PRECISION NOT NULL CHECK (amount >= 0)`,
		`PRIMARY KEY ("id")`,
		`FOREIGN KEY ("order_id") REFERENCES "orders" ("id")`,
	}
	for _, w := range wantParts {
		if !strings.Contains(stmt, w) {
			t.Fatalf("statement missing %q:\n%s", w, stmt)
		}
	}
}

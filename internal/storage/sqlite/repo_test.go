package sqlite

import (
	"context"
	"strings"
	"testing"

	"shopetl/internal/schema"
	"shopetl/internal/storage/sqlite/ddl"
)

func newRepo(tb testing.TB) *Repository {
	tb.Helper()
	db, err := Open(":memory:")
	if err != nil {
		tb.Fatalf("open: %v", err)
	}
	tb.Cleanup(func() { db.Close() })
	return New(db)
}

func mustCreate(tb testing.TB, r *Repository, c schema.Contract) {
	tb.Helper()
	stmt, err := ddl.BuildCreateTableSQL(ddl.FromContract(c))
	if err != nil {
		tb.Fatalf("build ddl for %s: %v", c.Table, err)
	}
	if err := r.Exec(context.Background(), stmt); err != nil {
		tb.Fatalf("create %s: %v", c.Table, err)
	}
}

func countRows(tb testing.TB, r *Repository, table string) int {
	tb.Helper()
	var n int
	if err := r.DB().QueryRow("SELECT COUNT(*) FROM " + sqlIdent(table)).Scan(&n); err != nil {
		tb.Fatalf("count %s: %v", table, err)
	}
	return n
}

func TestInsertRowsRoundTrip(t *testing.T) {
	r := newRepo(t)
	mustCreate(t, r, schema.Customers)

	rows := [][]any{
		{"c1", "Ada", "Lovelace", "ada@example.com", "United Kingdom"},
		{"c2", "Alan", "Turing", "alan@example.com", "United Kingdom"},
	}
	n, err := r.InsertRows(context.Background(), "customers", schema.Customers.Columns(), rows)
	if err != nil {
		t.Fatalf("InsertRows: %v", err)
	}
	if n != 2 {
		t.Fatalf("inserted = %d, want 2", n)
	}
	if got := countRows(t, r, "customers"); got != 2 {
		t.Fatalf("count = %d, want 2", got)
	}
}

func TestInsertRowsDuplicatePrimaryKeyRollsBack(t *testing.T) {
	r := newRepo(t)
	mustCreate(t, r, schema.Customers)

	cols := schema.Customers.Columns()
	if _, err := r.InsertRows(context.Background(), "customers", cols, [][]any{
		{"c1", "Ada", "Lovelace", "ada@example.com", "United Kingdom"},
	}); err != nil {
		t.Fatalf("seed insert: %v", err)
	}

	_, err := r.InsertRows(context.Background(), "customers", cols, [][]any{
		{"c2", "Alan", "Turing", "alan@example.com", "United Kingdom"},
		{"c1", "Grace", "Hopper", "grace@example.com", "United States"},
	})
	if err == nil {
		t.Fatal("expected duplicate primary key error")
	}

	// The failing batch must not leave partial rows behind.
	if got := countRows(t, r, "customers"); got != 1 {
		t.Fatalf("count after rollback = %d, want 1", got)
	}
}

func TestInsertRowsForeignKeyViolation(t *testing.T) {
	r := newRepo(t)
	mustCreate(t, r, schema.Customers)
	mustCreate(t, r, schema.Orders)

	_, err := r.InsertRows(context.Background(), "orders", schema.Orders.Columns(), [][]any{
		{"o1", "no-such-customer", "2026-01-02T15:04:05Z", "pending"},
	})
	if err == nil {
		t.Fatal("expected foreign key violation")
	}
	if !strings.Contains(strings.ToUpper(err.Error()), "FOREIGN KEY") {
		t.Fatalf("error does not mention foreign key: %v", err)
	}
}

func TestInsertRowsCheckViolation(t *testing.T) {
	r := newRepo(t)
	mustCreate(t, r, schema.Products)

	_, err := r.InsertRows(context.Background(), "products", schema.Products.Columns(), [][]any{
		{"p1", "Anti Widget", "Home", -1.0},
	})
	if err == nil {
		t.Fatal("expected check constraint violation")
	}
}

func TestInsertRowsEmptyBatch(t *testing.T) {
	r := newRepo(t)
	mustCreate(t, r, schema.Customers)

	n, err := r.InsertRows(context.Background(), "customers", schema.Customers.Columns(), nil)
	if err != nil {
		t.Fatalf("InsertRows: %v", err)
	}
	if n != 0 {
		t.Fatalf("inserted = %d, want 0", n)
	}
}

func TestInsertRowsWidthMismatch(t *testing.T) {
	r := newRepo(t)
	mustCreate(t, r, schema.Customers)

	_, err := r.InsertRows(context.Background(), "customers", schema.Customers.Columns(), [][]any{
		{"c1", "Ada"},
	})
	if err == nil {
		t.Fatal("expected row length error")
	}
}

func TestOpenRejectsEmptyPath(t *testing.T) {
	if _, err := Open("  "); err == nil {
		t.Fatal("expected error for empty path")
	}
}

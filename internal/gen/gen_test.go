package gen

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopetl/internal/schema"
)

func testOptions() Options {
	return Options{
		Customers:        20,
		Products:         10,
		Orders:           30,
		MaxItemsPerOrder: 4,
		Seed:             1337,
		Now:              time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
	}
}

func TestGenerateCounts(t *testing.T) {
	t.Parallel()

	opts := testOptions()
	d, err := Generate(opts)
	require.NoError(t, err)

	assert.Len(t, d.Customers, opts.Customers)
	assert.Len(t, d.Products, opts.Products)
	assert.Len(t, d.Orders, opts.Orders)
	assert.Len(t, d.Payments, opts.Orders)

	// Every order gets between 1 and MaxItemsPerOrder items.
	assert.GreaterOrEqual(t, len(d.OrderItems), opts.Orders)
	assert.LessOrEqual(t, len(d.OrderItems), opts.Orders*opts.MaxItemsPerOrder)
}

func TestGenerateReferentialIntegrity(t *testing.T) {
	t.Parallel()

	d, err := Generate(testOptions())
	require.NoError(t, err)

	customers := map[string]bool{}
	for _, c := range d.Customers {
		assert.False(t, customers[c.ID], "duplicate customer id %s", c.ID)
		customers[c.ID] = true
	}
	products := map[string]bool{}
	for _, p := range d.Products {
		products[p.ID] = true
	}
	orders := map[string]bool{}
	for _, o := range d.Orders {
		orders[o.ID] = true
		assert.True(t, customers[o.CustomerID], "order %s references unknown customer", o.ID)
	}
	for _, it := range d.OrderItems {
		assert.True(t, orders[it.OrderID], "item %s references unknown order", it.ID)
		assert.True(t, products[it.ProductID], "item %s references unknown product", it.ID)
	}
	for _, p := range d.Payments {
		assert.True(t, orders[p.OrderID], "payment %s references unknown order", p.ID)
	}
}

func TestGenerateValueBounds(t *testing.T) {
	t.Parallel()

	d, err := Generate(testOptions())
	require.NoError(t, err)

	statuses := map[string]bool{
		"pending": true, "processing": true, "fulfilled": true, "cancelled": true,
	}
	for _, p := range d.Products {
		assert.GreaterOrEqual(t, p.Price, 5.0)
		assert.LessOrEqual(t, p.Price, 500.0)
	}
	for _, o := range d.Orders {
		assert.True(t, statuses[o.Status], "unknown status %q", o.Status)
	}
	for _, it := range d.OrderItems {
		assert.GreaterOrEqual(t, it.Quantity, 1)
		assert.LessOrEqual(t, it.Quantity, 5)
	}
}

func TestPaymentAmountMatchesItemTotal(t *testing.T) {
	t.Parallel()

	d, err := Generate(testOptions())
	require.NoError(t, err)

	totals := map[string]float64{}
	for _, it := range d.OrderItems {
		totals[it.OrderID] += float64(it.Quantity) * it.UnitPrice
	}
	paidAt := map[string]time.Time{}
	for _, p := range d.Payments {
		assert.InDelta(t, totals[p.OrderID], p.Amount, 0.005,
			"payment for order %s does not match item total", p.OrderID)
		paidAt[p.OrderID] = p.PaidAt
	}
	for _, o := range d.Orders {
		at, ok := paidAt[o.ID]
		require.True(t, ok, "order %s has no payment", o.ID)
		assert.True(t, at.After(o.OrderDate), "payment precedes order date")
		assert.LessOrEqual(t, at.Sub(o.OrderDate), 48*time.Hour)
	}
}

// TestRunDeterministic writes the same (seed, clock) run twice and expects
// byte-identical files.
func TestRunDeterministic(t *testing.T) {
	t.Parallel()

	opts := testOptions()
	dirA, dirB := t.TempDir(), t.TempDir()

	opts.OutputDir = dirA
	_, err := Run(opts)
	require.NoError(t, err)

	opts.OutputDir = dirB
	_, err = Run(opts)
	require.NoError(t, err)

	for _, c := range schema.Entities() {
		a, err := os.ReadFile(filepath.Join(dirA, c.File))
		require.NoError(t, err)
		b, err := os.ReadFile(filepath.Join(dirB, c.File))
		require.NoError(t, err)
		assert.Equal(t, a, b, "%s differs between identical runs", c.File)
	}
}

func TestRunWritesContractHeaders(t *testing.T) {
	t.Parallel()

	opts := testOptions()
	opts.OutputDir = t.TempDir()
	_, err := Run(opts)
	require.NoError(t, err)

	for _, c := range schema.Entities() {
		b, err := os.ReadFile(filepath.Join(opts.OutputDir, c.File))
		require.NoError(t, err)
		content := string(b)
		require.NotEmpty(t, content)
		first, _, _ := strings.Cut(content, "\n")
		assert.Equal(t, strings.Join(c.Columns(), ","), first, "%s header", c.File)
	}
}

func TestGenerateRejectsBadCounts(t *testing.T) {
	t.Parallel()

	for _, mutate := range []func(*Options){
		func(o *Options) { o.Customers = 0 },
		func(o *Options) { o.Products = -1 },
		func(o *Options) { o.Orders = 0 },
		func(o *Options) { o.MaxItemsPerOrder = 0 },
	} {
		opts := testOptions()
		mutate(&opts)
		_, err := Generate(opts)
		assert.Error(t, err)
	}
}

func TestRound2(t *testing.T) {
	t.Parallel()

	assert.Equal(t, 19.99, round2(19.994))
	assert.Equal(t, 20.0, round2(19.996))
	assert.Equal(t, 5.0, round2(5))
}

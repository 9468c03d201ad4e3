// Package gen produces the synthetic e-commerce dataset: five related entity
// collections with internally consistent foreign keys and randomized but
// plausible values, written as headered CSV files.
//
// Generation is deterministic for a fixed (seed, clock) pair: ids come from
// a UUID source fed by the seeded generator, and every random draw goes
// through the same *rand.Rand.
package gen

import (
	"encoding/csv"
	"fmt"
	"math"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"

	"shopetl/internal/schema"
)

// Options configures a generation run.
type Options struct {
	Customers        int
	Products         int
	Orders           int
	MaxItemsPerOrder int

	// Seed makes the run reproducible. Two runs with the same Seed and Now
	// produce byte-identical files.
	Seed int64

	// Now anchors order dates; zero means time.Now().UTC().
	Now time.Time

	// OutputDir receives the five CSV files.
	OutputDir string
}

// Customer is an independent entity; orders reference it.
type Customer struct {
	ID        string
	FirstName string
	LastName  string
	Email     string
	Country   string
}

// Product is an independent entity; order items reference it.
type Product struct {
	ID       string
	Name     string
	Category string
	Price    float64
}

// Order references the placing customer.
type Order struct {
	ID         string
	CustomerID string
	OrderDate  time.Time
	Status     string
}

// OrderItem references its order and product, capturing the unit price at
// time of purchase.
type OrderItem struct {
	ID        string
	OrderID   string
	ProductID string
	Quantity  int
	UnitPrice float64
}

// Payment references the paid order; Amount equals the sum of the order's
// item totals.
type Payment struct {
	ID            string
	OrderID       string
	PaymentMethod string
	Amount        float64
	PaidAt        time.Time
}

// Dataset holds one complete generated run.
type Dataset struct {
	Customers  []Customer
	Products   []Product
	Orders     []Order
	OrderItems []OrderItem
	Payments   []Payment
}

// Generate builds a dataset in memory. It validates counts and guarantees
// every foreign key resolves: orders draw from the generated customers,
// items from the generated orders and products, payments from the orders.
func Generate(opts Options) (*Dataset, error) {
	if opts.Customers <= 0 || opts.Products <= 0 || opts.Orders <= 0 {
		return nil, fmt.Errorf("gen: customer, product, and order counts must be positive")
	}
	if opts.MaxItemsPerOrder <= 0 {
		return nil, fmt.Errorf("gen: max items per order must be positive")
	}

	rng := rand.New(rand.NewSource(opts.Seed))
	now := opts.Now
	if now.IsZero() {
		now = time.Now().UTC()
	}

	d := &Dataset{}

	for i := 0; i < opts.Customers; i++ {
		first := pick(rng, firstNames)
		last := pick(rng, lastNames)
		id := newID(rng)
		d.Customers = append(d.Customers, Customer{
			ID:        id,
			FirstName: first,
			LastName:  last,
			Email:     strings.ToLower(fmt.Sprintf("%s.%s.%s@example.com", first, last, id[:6])),
			Country:   pick(rng, countries),
		})
	}

	for i := 0; i < opts.Products; i++ {
		d.Products = append(d.Products, Product{
			ID:       newID(rng),
			Name:     pick(rng, productAdjectives) + " " + pick(rng, productNouns),
			Category: pick(rng, categories),
			Price:    round2(5 + rng.Float64()*495),
		})
	}

	for i := 0; i < opts.Orders; i++ {
		d.Orders = append(d.Orders, Order{
			ID:         newID(rng),
			CustomerID: d.Customers[rng.Intn(len(d.Customers))].ID,
			OrderDate:  now.Add(-time.Duration(rng.Intn(181)) * 24 * time.Hour),
			Status:     pickStatus(rng),
		})
	}

	for _, o := range d.Orders {
		n := 1 + rng.Intn(opts.MaxItemsPerOrder)
		for j := 0; j < n; j++ {
			p := d.Products[rng.Intn(len(d.Products))]
			d.OrderItems = append(d.OrderItems, OrderItem{
				ID:        newID(rng),
				OrderID:   o.ID,
				ProductID: p.ID,
				Quantity:  1 + rng.Intn(5),
				UnitPrice: p.Price,
			})
		}
	}

	totals := make(map[string]float64, len(d.Orders))
	for _, it := range d.OrderItems {
		totals[it.OrderID] += float64(it.Quantity) * it.UnitPrice
	}
	for _, o := range d.Orders {
		d.Payments = append(d.Payments, Payment{
			ID:            newID(rng),
			OrderID:       o.ID,
			PaymentMethod: pick(rng, paymentMethods),
			Amount:        round2(totals[o.ID]),
			PaidAt:        o.OrderDate.Add(time.Duration(1+rng.Intn(48)) * time.Hour),
		})
	}

	return d, nil
}

// WriteCSV writes the five collections as headered CSV files into dir,
// creating it if needed. Headers come from the entity contracts so the
// generator and the loader cannot drift apart.
func (d *Dataset) WriteCSV(dir string) error {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("gen: create output dir: %w", err)
	}

	if err := writeFile(dir, schema.Customers, len(d.Customers), func(i int) []string {
		c := d.Customers[i]
		return []string{c.ID, c.FirstName, c.LastName, c.Email, c.Country}
	}); err != nil {
		return err
	}
	if err := writeFile(dir, schema.Products, len(d.Products), func(i int) []string {
		p := d.Products[i]
		return []string{p.ID, p.Name, p.Category, money(p.Price)}
	}); err != nil {
		return err
	}
	if err := writeFile(dir, schema.Orders, len(d.Orders), func(i int) []string {
		o := d.Orders[i]
		return []string{o.ID, o.CustomerID, o.OrderDate.Format(time.RFC3339), o.Status}
	}); err != nil {
		return err
	}
	if err := writeFile(dir, schema.OrderItems, len(d.OrderItems), func(i int) []string {
		it := d.OrderItems[i]
		return []string{it.ID, it.OrderID, it.ProductID, strconv.Itoa(it.Quantity), money(it.UnitPrice)}
	}); err != nil {
		return err
	}
	return writeFile(dir, schema.Payments, len(d.Payments), func(i int) []string {
		p := d.Payments[i]
		return []string{p.ID, p.OrderID, p.PaymentMethod, money(p.Amount), p.PaidAt.Format(time.RFC3339)}
	})
}

// Run generates a dataset and writes it to opts.OutputDir.
func Run(opts Options) (*Dataset, error) {
	d, err := Generate(opts)
	if err != nil {
		return nil, err
	}
	if err := d.WriteCSV(opts.OutputDir); err != nil {
		return nil, err
	}
	return d, nil
}

func writeFile(dir string, c schema.Contract, n int, row func(i int) []string) error {
	path := filepath.Join(dir, c.File)
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("gen: create %s: %w", path, err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(c.Columns()); err != nil {
		return fmt.Errorf("gen: write %s header: %w", c.File, err)
	}
	for i := 0; i < n; i++ {
		if err := w.Write(row(i)); err != nil {
			return fmt.Errorf("gen: write %s row %d: %w", c.File, i+1, err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return fmt.Errorf("gen: flush %s: %w", c.File, err)
	}
	return f.Close()
}

// newID derives a UUIDv4 from the seeded generator so runs are reproducible.
func newID(rng *rand.Rand) string {
	return uuid.Must(uuid.NewRandomFromReader(rng)).String()
}

func pick(rng *rand.Rand, pool []string) string {
	return pool[rng.Intn(len(pool))]
}

// pickStatus draws an order status according to the configured weights.
func pickStatus(rng *rand.Rand) string {
	r := rng.Float64()
	acc := 0.0
	for _, s := range orderStatuses {
		acc += s.weight
		if r < acc {
			return s.status
		}
	}
	return orderStatuses[len(orderStatuses)-1].status
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

func money(v float64) string {
	return strconv.FormatFloat(v, 'f', 2, 64)
}


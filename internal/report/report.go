// Package report implements the two supported aggregations over a populated
// store: per-customer lifetime value and per-category gross revenue. Both
// are read-only and idempotent; order totals are always recomputed from
// order_items, never read from a stored column.
package report

import (
	"context"
	"database/sql"
	"fmt"
)

// CustomerRevenueRow is one line of the customer revenue report.
type CustomerRevenueRow struct {
	CustomerID    string
	Name          string
	Country       string
	OrdersPlaced  int64
	LifetimeValue float64
}

// CategoryRevenueRow is one line of the category revenue report.
type CategoryRevenueRow struct {
	Category      string
	Orders        int64
	GrossRevenue  float64
	AvgOrderValue float64
}

// customerRevenueSQL reports the top 10 customers by lifetime value.
// Inner joins deliberately exclude customers with no orders: the report
// answers "who are our best customers", not "list all customers".
const customerRevenueSQL = `
SELECT
  c.id,
  c.first_name || ' ' || c.last_name AS customer,
  c.country,
  COUNT(DISTINCT o.id)                    AS orders_placed,
  ROUND(SUM(oi.quantity * oi.unit_price), 2) AS lifetime_value
FROM customers c
JOIN orders o       ON o.customer_id = c.id
JOIN order_items oi ON oi.order_id = o.id
GROUP BY c.id, customer, c.country
ORDER BY lifetime_value DESC
LIMIT 10;`

// categoryRevenueSQL reports every category, ordered by gross revenue. The
// average is per order per category: gross revenue over the count of
// distinct orders that touched the category.
const categoryRevenueSQL = `
SELECT
  p.category,
  COUNT(DISTINCT o.id)                        AS orders_touching,
  ROUND(SUM(oi.quantity * oi.unit_price), 2)  AS gross_revenue,
  ROUND(SUM(oi.quantity * oi.unit_price) / COUNT(DISTINCT o.id), 2) AS avg_order_value
FROM order_items oi
JOIN orders o   ON o.id = oi.order_id
JOIN products p ON p.id = oi.product_id
GROUP BY p.category
ORDER BY gross_revenue DESC;`

// CustomerRevenue runs the customer lifetime value query. A store that was
// never ingested surfaces the underlying "no such table" error directly.
func CustomerRevenue(ctx context.Context, db *sql.DB) ([]CustomerRevenueRow, error) {
	rows, err := db.QueryContext(ctx, customerRevenueSQL)
	if err != nil {
		return nil, fmt.Errorf("report: customer revenue: %w", err)
	}
	defer rows.Close()

	var out []CustomerRevenueRow
	for rows.Next() {
		var r CustomerRevenueRow
		if err := rows.Scan(&r.CustomerID, &r.Name, &r.Country, &r.OrdersPlaced, &r.LifetimeValue); err != nil {
			return nil, fmt.Errorf("report: customer revenue scan: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("report: customer revenue rows: %w", err)
	}
	return out, nil
}

// CategoryRevenue runs the category gross revenue query.
func CategoryRevenue(ctx context.Context, db *sql.DB) ([]CategoryRevenueRow, error) {
	rows, err := db.QueryContext(ctx, categoryRevenueSQL)
	if err != nil {
		return nil, fmt.Errorf("report: category revenue: %w", err)
	}
	defer rows.Close()

	var out []CategoryRevenueRow
	for rows.Next() {
		var r CategoryRevenueRow
		if err := rows.Scan(&r.Category, &r.Orders, &r.GrossRevenue, &r.AvgOrderValue); err != nil {
			return nil, fmt.Errorf("report: category revenue scan: %w", err)
		}
		out = append(out, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("report: category revenue rows: %w", err)
	}
	return out, nil
}

// Package schema declares the five e-commerce entity contracts the pipeline
// works with: CSV file names, column sets, logical types, primary keys, and
// foreign keys. The contracts drive CSV validation, type coercion, and DDL
// generation, so the loader, the storage backends, and the reports all agree
// on one definition of the data.
package schema

// Field describes one column of an entity contract.
//
// Type is a logical type ("text", "integer", "real"); backend DDL packages
// map it to a concrete column type. Check is an optional raw SQL expression
// enforced as a column CHECK constraint.
type Field struct {
	Name     string
	Type     string
	Required bool
	Check    string
}

// ForeignKey declares that Column must resolve to RefColumn in RefTable.
type ForeignKey struct {
	Column    string
	RefTable  string
	RefColumn string
}

// Contract is the full definition of one entity collection: its destination
// table, its source CSV file, and its columns and constraints.
type Contract struct {
	Table       string
	File        string
	Fields      []Field
	PrimaryKey  string
	ForeignKeys []ForeignKey
}

// Columns returns the contract's column names in declaration order.
func (c Contract) Columns() []string {
	cols := make([]string, len(c.Fields))
	for i, f := range c.Fields {
		cols[i] = f.Name
	}
	return cols
}

// Entities returns the five contracts in load order: parent entities first so
// that child foreign keys resolve during ingestion.
func Entities() []Contract {
	return []Contract{Customers, Products, Orders, OrderItems, Payments}
}

// Customers is an independent entity; no foreign keys.
var Customers = Contract{
	Table: "customers",
	File:  "customers.csv",
	Fields: []Field{
		{Name: "id", Type: "text", Required: true},
		{Name: "first_name", Type: "text", Required: true},
		{Name: "last_name", Type: "text", Required: true},
		{Name: "email", Type: "text", Required: true},
		{Name: "country", Type: "text", Required: true},
	},
	PrimaryKey: "id",
}

// Products is an independent entity; no foreign keys.
var Products = Contract{
	Table: "products",
	File:  "products.csv",
	Fields: []Field{
		{Name: "id", Type: "text", Required: true},
		{Name: "name", Type: "text", Required: true},
		{Name: "category", Type: "text", Required: true},
		{Name: "price", Type: "real", Required: true, Check: "price >= 0"},
	},
	PrimaryKey: "id",
}

// Orders references the placing customer.
var Orders = Contract{
	Table: "orders",
	File:  "orders.csv",
	Fields: []Field{
		{Name: "id", Type: "text", Required: true},
		{Name: "customer_id", Type: "text", Required: true},
		{Name: "order_date", Type: "text", Required: true},
		{Name: "status", Type: "text", Required: true},
	},
	PrimaryKey: "id",
	ForeignKeys: []ForeignKey{
		{Column: "customer_id", RefTable: "customers", RefColumn: "id"},
	},
}

// OrderItems references its order and the purchased product, and records the
// unit price at time of purchase. Order totals are always recomputed from
// these rows; they are never stored on the order.
var OrderItems = Contract{
	Table: "order_items",
	File:  "order_items.csv",
	Fields: []Field{
		{Name: "id", Type: "text", Required: true},
		{Name: "order_id", Type: "text", Required: true},
		{Name: "product_id", Type: "text", Required: true},
		{Name: "quantity", Type: "integer", Required: true, Check: "quantity > 0"},
		{Name: "unit_price", Type: "real", Required: true, Check: "unit_price >= 0"},
	},
	PrimaryKey: "id",
	ForeignKeys: []ForeignKey{
		{Column: "order_id", RefTable: "orders", RefColumn: "id"},
		{Column: "product_id", RefTable: "products", RefColumn: "id"},
	},
}

// Payments references the paid order.
var Payments = Contract{
	Table: "payments",
	File:  "payments.csv",
	Fields: []Field{
		{Name: "id", Type: "text", Required: true},
		{Name: "order_id", Type: "text", Required: true},
		{Name: "payment_method", Type: "text", Required: true},
		{Name: "amount", Type: "real", Required: true, Check: "amount >= 0"},
		{Name: "paid_at", Type: "text", Required: true},
	},
	PrimaryKey: "id",
	ForeignKeys: []ForeignKey{
		{Column: "order_id", RefTable: "orders", RefColumn: "id"},
	},
}

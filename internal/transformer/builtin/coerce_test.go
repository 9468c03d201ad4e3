package builtin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shopetl/internal/schema"
	"shopetl/pkg/records"
)

func TestCoerceTypes(t *testing.T) {
	t.Parallel()

	c := Coerce{Contract: schema.OrderItems}
	rec := records.Record{
		"id":         "a",
		"order_id":   "b",
		"product_id": "c",
		"quantity":   "3",
		"unit_price": "19.99",
	}
	require.NoError(t, c.Apply(rec))

	assert.Equal(t, int64(3), rec["quantity"])
	assert.Equal(t, 19.99, rec["unit_price"])
	assert.Equal(t, "a", rec["id"])
}

func TestCoerceRejectsMalformedValues(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		rec  records.Record
		want string
	}{
		{
			name: "non_numeric_quantity",
			rec:  records.Record{"quantity": "lots"},
			want: `field "quantity"`,
		},
		{
			name: "non_numeric_price",
			rec:  records.Record{"unit_price": "free"},
			want: `field "unit_price"`,
		},
		{
			name: "float_where_integer_expected",
			rec:  records.Record{"quantity": "2.5"},
			want: "not an integer",
		},
	}

	c := Coerce{Contract: schema.OrderItems}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			err := c.Apply(tc.rec)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.want)
		})
	}
}

func TestCoerceSkipsMissingValues(t *testing.T) {
	t.Parallel()

	// Presence is Require's job; Coerce only converts what is there.
	c := Coerce{Contract: schema.OrderItems}
	rec := records.Record{"quantity": nil}
	require.NoError(t, c.Apply(rec))
}

func TestRequire(t *testing.T) {
	t.Parallel()

	r := Require{Contract: schema.Customers}

	full := records.Record{
		"id": "1", "first_name": "Ada", "last_name": "Lovelace",
		"email": "ada@example.com", "country": "United Kingdom",
	}
	require.NoError(t, r.Apply(full))

	missing := records.Record{
		"id": "1", "first_name": "Ada", "last_name": "Lovelace",
		"email": nil, "country": "United Kingdom",
	}
	err := r.Apply(missing)
	require.Error(t, err)
	assert.Contains(t, err.Error(), `"email"`)
}

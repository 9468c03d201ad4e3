// Package builtin contains the reusable row transformers applied between
// parsing and storage: presence checks and strict type coercion driven by an
// entity contract.
package builtin

import (
	"fmt"
	"strconv"

	"shopetl/internal/schema"
	"shopetl/pkg/records"
)

// Coerce converts a record's raw string values into the types declared by a
// contract. Unlike a lenient pipeline transform, coercion here is strict: a
// value that does not parse is an error, because the ingestion contract says
// a malformed row fails the whole run rather than loading partial data.
type Coerce struct {
	Contract schema.Contract
}

// Apply coerces rec in place. Integer fields become int64, real fields
// become float64; text fields are left as-is. The returned error names the
// field and the offending value.
func (c Coerce) Apply(rec records.Record) error {
	for _, f := range c.Contract.Fields {
		v, ok := rec[f.Name]
		if !ok || v == nil {
			continue
		}
		s, isStr := v.(string)
		if !isStr {
			continue
		}
		switch f.Type {
		case "integer":
			i, err := strconv.ParseInt(s, 10, 64)
			if err != nil {
				return fmt.Errorf("field %q: %q is not an integer", f.Name, s)
			}
			rec[f.Name] = i
		case "real":
			r, err := strconv.ParseFloat(s, 64)
			if err != nil {
				return fmt.Errorf("field %q: %q is not a number", f.Name, s)
			}
			rec[f.Name] = r
		case "text":
			// already a string
		default:
			return fmt.Errorf("field %q: unknown contract type %q", f.Name, f.Type)
		}
	}
	return nil
}

package builtin

import (
	"fmt"

	"shopetl/internal/schema"
	"shopetl/pkg/records"
)

// Require checks that every contract field marked Required is present and
// non-empty in a record.
type Require struct {
	Contract schema.Contract
}

// Apply returns an error naming the first missing or empty required field.
func (r Require) Apply(rec records.Record) error {
	for _, f := range r.Contract.Fields {
		if !f.Required {
			continue
		}
		v, exists := rec[f.Name]
		if !exists || v == nil || v == "" {
			return fmt.Errorf("required field %q missing", f.Name)
		}
	}
	return nil
}

// Package csv parses headered CSV input into records keyed by canonical
// column names. Parsing is strict: the ingestion contract treats a malformed
// row as fatal, so syntax errors and field-count mismatches are returned as
// errors carrying the offending data row number instead of being skipped.
package csv

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"shopetl/pkg/records"
)

// Options configures the CSV parser. All fields are optional; sensible
// defaults are applied when a field is zero.
type Options struct {
	// Comma specifies the field delimiter. When zero, ',' is used.
	Comma rune

	// TrimSpace trims leading/trailing ASCII spaces from each field value.
	TrimSpace bool
}

// Parser parses CSV input according to Options. It is safe to reuse across
// inputs, but Parser itself is not concurrency-safe.
type Parser struct{ opt Options }

// NewParser constructs a Parser with the provided Options.
func NewParser(opt Options) *Parser { return &Parser{opt: opt} }

// utf8BOM is stripped from the first header cell if present.
const utf8BOM = "\uFEFF"

// Parse consumes CSV records from r and returns the parsed rows. The first
// row must be a header naming the columns; body rows become records keyed by
// the normalized header names. Column order in the file is irrelevant.
//
// Any CSV syntax error or row whose field count differs from the header is
// returned as an error naming the 1-based data row number.
func (p *Parser) Parse(r io.Reader) ([]records.Record, error) {
	cr := csv.NewReader(r)
	if p.opt.Comma != 0 {
		cr.Comma = p.opt.Comma
	}
	// Width is enforced against the header below so that the error message
	// can carry the row number.
	cr.FieldsPerRecord = -1

	h, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("read csv header: %w", err)
	}
	headers := normalizeHeaders(h)

	var out []records.Record
	for row := 1; ; row++ {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", row, err)
		}
		if len(rec) != len(headers) {
			return nil, fmt.Errorf("row %d: expected %d fields, got %d", row, len(headers), len(rec))
		}

		m := make(records.Record, len(rec))
		for i, val := range rec {
			if p.opt.TrimSpace {
				val = strings.TrimSpace(val)
			}
			m[headers[i]] = emptyToNil(val)
		}
		out = append(out, m)
	}
	return out, nil
}

// emptyToNil converts an empty string to nil; all other values are returned as-is.
func emptyToNil(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// normalizeHeaders produces canonical header keys (lowercase, spaces to
// underscores) and strips a UTF-8 BOM from the first cell if present.
func normalizeHeaders(h []string) []string {
	res := make([]string, len(h))
	for i, col := range h {
		c := strings.TrimSpace(col)
		if i == 0 {
			c = strings.TrimPrefix(c, utf8BOM)
		}
		res[i] = strings.ReplaceAll(strings.ToLower(c), " ", "_")
	}
	return res
}

// Package table holds cost table schemas and lookups.
// A table is immutable once built; every read returns a copy.
package table

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// Resource names one quantity in a cost record (hammers, satin, xp...)
type Resource string

// Schema is the fixed, ordered resource vocabulary of one calculator variant
type Schema []Resource

// NewSchema builds a schema from resource names
func NewSchema(names ...string) Schema {
	s := make(Schema, len(names))
	for i, n := range names {
		s[i] = Resource(n)
	}
	return s
}

// Has reports whether the schema contains r
func (s Schema) Has(r Resource) bool {
	for _, x := range s {
		if x == r {
			return true
		}
	}
	return false
}

// Validate checks the schema is non-empty with unique, non-blank names
func (s Schema) Validate() error {
	if len(s) == 0 {
		return fmt.Errorf("schema has no resources")
	}
	seen := make(map[Resource]bool, len(s))
	for _, r := range s {
		if strings.TrimSpace(string(r)) == "" {
			return fmt.Errorf("schema has a blank resource name")
		}
		if seen[r] {
			return fmt.Errorf("schema repeats resource %q", r)
		}
		seen[r] = true
	}
	return nil
}

// Strings returns the resource names in order
func (s Schema) Strings() []string {
	out := make([]string, len(s))
	for i, r := range s {
		out[i] = string(r)
	}
	return out
}

// Record maps resource names to quantities. A missing field reads as zero.
type Record map[Resource]decimal.Decimal

// Ints builds a record from integer values in schema order
func Ints(schema Schema, values ...int64) Record {
	if len(values) > len(schema) {
		panic(fmt.Sprintf("table.Ints: %d values for %d resources", len(values), len(schema)))
	}
	r := make(Record, len(schema))
	for i, v := range values {
		r[schema[i]] = decimal.NewFromInt(v)
	}
	return r
}

// Decimals builds a record from string decimals in schema order ("0.5", "1200")
func Decimals(schema Schema, values ...string) Record {
	if len(values) > len(schema) {
		panic(fmt.Sprintf("table.Decimals: %d values for %d resources", len(values), len(schema)))
	}
	r := make(Record, len(schema))
	for i, v := range values {
		r[schema[i]] = decimal.RequireFromString(v)
	}
	return r
}

// Get returns the quantity for a resource, zero if absent
func (r Record) Get(res Resource) decimal.Decimal {
	if v, ok := r[res]; ok {
		return v
	}
	return decimal.Zero
}

// Clone returns an independent copy
func (r Record) Clone() Record {
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v
	}
	return out
}

// Add returns r + other field by field
func (r Record) Add(other Record) Record {
	out := r.Clone()
	for k, v := range other {
		out[k] = out.Get(k).Add(v)
	}
	return out
}

// Scale returns r with every field multiplied by n
func (r Record) Scale(n int64) Record {
	factor := decimal.NewFromInt(n)
	out := make(Record, len(r))
	for k, v := range r {
		out[k] = v.Mul(factor)
	}
	return out
}

// Equal compares two records over a schema; absent fields count as zero
func (r Record) Equal(other Record, schema Schema) bool {
	for _, res := range schema {
		if !r.Get(res).Equal(other.Get(res)) {
			return false
		}
	}
	return true
}

// Zero returns a record with every schema field set to zero
func Zero(schema Schema) Record {
	out := make(Record, len(schema))
	for _, res := range schema {
		out[res] = decimal.Zero
	}
	return out
}

// Package piecewise - Cost-by-level formulas split into level brackets,
// and one-time milestone bonuses.
package piecewise

import (
	"fmt"
	"strconv"

	"kingshot-calc/core/table"
	apperrors "kingshot-calc/internal/errors"
)

// Bracket covers every level up to and including Upper that the previous
// bracket did not
type Bracket struct {
	Upper int
	Cost  func(level int) table.Record
}

// Function is a cost curve defined by closed, gap-free brackets.
// It satisfies table.Source.
type Function struct {
	name     string
	schema   table.Schema
	lower    int
	upper    int
	brackets []Bracket
}

var _ table.Source = (*Function)(nil)

// NewFunction builds a bracketed cost function over (lower, upper].
// Bracket bounds must strictly increase and the last must reach upper.
func NewFunction(name string, schema table.Schema, lower, upper int, brackets ...Bracket) (*Function, error) {
	if err := schema.Validate(); err != nil {
		return nil, apperrors.Wrapf(apperrors.TypeInternal, err, "function %s", name)
	}
	if lower >= upper {
		return nil, apperrors.Newf(apperrors.TypeInternal, "function %s: lower bound %d must be below upper bound %d", name, lower, upper)
	}
	if len(brackets) == 0 {
		return nil, apperrors.Newf(apperrors.TypeInternal, "function %s has no brackets", name)
	}
	for i, b := range brackets {
		if b.Cost == nil {
			return nil, apperrors.Newf(apperrors.TypeInternal, "function %s: bracket %d has no cost", name, i)
		}
		if i > 0 && b.Upper <= brackets[i-1].Upper {
			return nil, apperrors.Newf(apperrors.TypeInternal, "function %s: bracket bound %d does not follow %d", name, b.Upper, brackets[i-1].Upper)
		}
	}
	if last := brackets[len(brackets)-1].Upper; last < upper {
		return nil, apperrors.Newf(apperrors.TypeInternal, "function %s: brackets stop at %d, below %d", name, last, upper)
	}

	return &Function{
		name:     name,
		schema:   schema,
		lower:    lower,
		upper:    upper,
		brackets: brackets,
	}, nil
}

// MustFunction is NewFunction for static data
func MustFunction(name string, schema table.Schema, lower, upper int, brackets ...Bracket) *Function {
	fn, err := NewFunction(name, schema, lower, upper, brackets...)
	if err != nil {
		panic(err)
	}
	return fn
}

// Name returns the function name
func (f *Function) Name() string { return f.name }

// Schema returns the resource vocabulary
func (f *Function) Schema() table.Schema { return f.schema }

// Kind is always Levels
func (f *Function) Kind() table.KeyKind { return table.Levels }

// Bounds returns the declared level domain
func (f *Function) Bounds() (int, int) { return f.lower, f.upper }

// KeyAt returns the level key
func (f *Function) KeyAt(level int) table.Key {
	s := strconv.Itoa(level)
	return table.Key{Ordinal: level, ID: s, Label: s}
}

// BracketFor returns the index of the bracket that owns level
func (f *Function) BracketFor(level int) int {
	for i, b := range f.brackets {
		if level <= b.Upper {
			return i
		}
	}
	return -1
}

// CostForLevel evaluates the formula of the bracket that owns level
func (f *Function) CostForLevel(level int) (table.Record, error) {
	if level <= f.lower || level > f.upper {
		return nil, apperrors.Newf(apperrors.TypeInternal, "function %s has no cost for level %d", f.name, level)
	}
	return f.brackets[f.BracketFor(level)].Cost(level), nil
}

// CostAt implements table.Source
func (f *Function) CostAt(level int) (table.Record, error) {
	return f.CostForLevel(level)
}

// Materialize enumerates the function into a dense level table
func Materialize(f *Function) (*table.Table, error) {
	rows := make([]table.LevelEntry, 0, f.upper-f.lower)
	for level := f.lower + 1; level <= f.upper; level++ {
		cost, err := f.CostForLevel(level)
		if err != nil {
			return nil, err
		}
		rows = append(rows, table.LevelEntry{Level: level, Cost: cost})
	}
	tbl, err := table.NewLevelTable(f.name, f.schema, f.lower, f.upper, rows)
	if err != nil {
		return nil, fmt.Errorf("materialize %s: %w", f.name, err)
	}
	return tbl, nil
}

package table

import "github.com/shopspring/decimal"

// InterpolationPolicy says how a sparse table fills missing levels
type InterpolationPolicy int

const (
	// NoInterpolation marks a dense table
	NoInterpolation InterpolationPolicy = iota
	// Linear interpolates exactly between the nearest listed levels
	Linear
	// LinearFloor interpolates then floors each field to an integer
	LinearFloor
)

// String returns the policy name
func (p InterpolationPolicy) String() string {
	switch p {
	case Linear:
		return "linear"
	case LinearFloor:
		return "linear_floor"
	default:
		return "none"
	}
}

// ParsePolicy maps a policy name back to its value
func ParsePolicy(s string) (InterpolationPolicy, bool) {
	switch s {
	case "", "none":
		return NoInterpolation, true
	case "linear":
		return Linear, true
	case "linear_floor":
		return LinearFloor, true
	}
	return NoInterpolation, false
}

// interpolate computes cost(L) + (cost(U)-cost(L)) * (k-L)/(U-L) per field.
// With a single neighbour its cost is returned unmodified.
func (t *Table) interpolate(ordinal int) Record {
	lo, hi := t.neighbours(ordinal)
	low := t.costs[lo]
	if lo == hi {
		return low.Clone()
	}
	high := t.costs[hi]

	offset := decimal.NewFromInt(int64(ordinal - lo))
	width := decimal.NewFromInt(int64(hi - lo))

	out := make(Record, len(t.schema))
	for _, res := range t.schema {
		a, b := low.Get(res), high.Get(res)
		v := a.Add(b.Sub(a).Mul(offset).Div(width))
		if t.policy == LinearFloor {
			v = v.Floor()
		}
		out[res] = v
	}
	return out
}

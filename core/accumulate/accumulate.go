// Package accumulate sums cost records across a progression range.
package accumulate

import (
	"fmt"

	"github.com/shopspring/decimal"

	"kingshot-calc/core/guards"
	"kingshot-calc/core/table"
)

// Request is a validated range plus a slot multiplier
type Request struct {
	Current    int
	Target     int
	Multiplier int
}

// Step is one breakdown row: the key, its (multiplied) cost, and the
// running totals up to and including it
type Step struct {
	Key        table.Key    `json:"key"`
	Cost       table.Record `json:"cost"`
	Cumulative table.Record `json:"cumulative"`
}

// Result is the outcome of one accumulation
type Result struct {
	Source     string        `json:"source"`
	Schema     table.Schema  `json:"schema"`
	Kind       table.KeyKind `json:"kind"`
	Current    table.Key     `json:"current"`
	Target     table.Key     `json:"target"`
	Multiplier int           `json:"multiplier"`
	Totals     table.Record  `json:"totals"`
	Breakdown  []Step        `json:"breakdown"`
}

// Total returns the summed quantity of one resource
func (r *Result) Total(res table.Resource) decimal.Decimal {
	return r.Totals.Get(res)
}

// Consistent reports whether the last cumulative row equals the totals
// for every resource
func (r *Result) Consistent() bool {
	if len(r.Breakdown) == 0 {
		return r.Totals.Equal(table.Zero(r.Schema), r.Schema)
	}
	return r.Breakdown[len(r.Breakdown)-1].Cumulative.Equal(r.Totals, r.Schema)
}

// Accumulate walks every key in (Current, Target] in table order, scales
// each cost by the multiplier and adds it to the running totals.
//
// The request must already have passed validate.Range against the
// source's bounds. A lookup failure past that point is a programming
// error and panics.
func Accumulate(src table.Source, req Request) *Result {
	mult := req.Multiplier
	if mult < 1 {
		mult = 1
	}
	lower, upper := src.Bounds()
	guards.Invariant(req.Current >= lower && req.Target <= upper && req.Current < req.Target,
		"unvalidated range %d..%d on %s [%d, %d]", req.Current, req.Target, src.Name(), lower, upper)

	schema := src.Schema()
	running := table.Zero(schema)
	steps := make([]Step, 0, req.Target-req.Current)

	for ordinal := req.Current + 1; ordinal <= req.Target; ordinal++ {
		cost, err := src.CostAt(ordinal)
		guards.NoError(err, fmt.Sprintf("%s lookup at %d", src.Name(), ordinal))

		scaled := project(cost, schema).Scale(int64(mult))
		running = running.Add(scaled)
		steps = append(steps, Step{
			Key:        src.KeyAt(ordinal),
			Cost:       scaled,
			Cumulative: running.Clone(),
		})
	}

	result := &Result{
		Source:     src.Name(),
		Schema:     schema,
		Kind:       src.Kind(),
		Current:    src.KeyAt(req.Current),
		Target:     src.KeyAt(req.Target),
		Multiplier: mult,
		Totals:     running,
		Breakdown:  steps,
	}
	guards.Invariant(result.Consistent(), "breakdown of %s disagrees with totals", src.Name())
	return result
}

// project fills every schema field so breakdown rows have a uniform shape
func project(r table.Record, schema table.Schema) table.Record {
	out := make(table.Record, len(schema))
	for _, res := range schema {
		out[res] = r.Get(res)
	}
	return out
}

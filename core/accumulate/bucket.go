package accumulate

import (
	"fmt"

	"kingshot-calc/core/table"
)

// Bucket is a display grouping of consecutive steps
type Bucket struct {
	Label      string       `json:"label"`
	First      table.Key    `json:"first"`
	Last       table.Key    `json:"last"`
	Steps      int          `json:"steps"`
	Cost       table.Record `json:"cost"`
	Cumulative table.Record `json:"cumulative"`
}

// Buckets groups the breakdown into blocks that close on every ordinal
// divisible by size, and on the final step. It is a view: bucket costs
// sum to the same totals as the steps.
func (r *Result) Buckets(size int) []Bucket {
	if size < 1 || len(r.Breakdown) == 0 {
		return nil
	}

	var out []Bucket
	var open *Bucket
	for i, step := range r.Breakdown {
		if open == nil {
			open = &Bucket{First: step.Key, Cost: table.Zero(r.Schema)}
		}
		open.Steps++
		open.Cost = open.Cost.Add(step.Cost)
		open.Last = step.Key
		open.Cumulative = step.Cumulative.Clone()

		if step.Key.Ordinal%size == 0 || i == len(r.Breakdown)-1 {
			open.Label = fmt.Sprintf("%s-%s", open.First.Label, open.Last.Label)
			out = append(out, *open)
			open = nil
		}
	}
	return out
}

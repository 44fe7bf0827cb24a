package piecewise

import "github.com/shopspring/decimal"

// Milestone is a one-time bonus unlocked at a level. It is not part of
// any running sum.
type Milestone struct {
	Level    int             `json:"level"`
	Category string          `json:"category"`
	Stat     string          `json:"stat"`
	Value    decimal.Decimal `json:"value"`
}

// Triggered returns the milestones with current < Level <= target, in
// their listed order
func Triggered(milestones []Milestone, current, target int) []Milestone {
	var out []Milestone
	for _, m := range milestones {
		if m.Level > current && m.Level <= target {
			out = append(out, m)
		}
	}
	return out
}

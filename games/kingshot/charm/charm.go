// Package charm - Governor charm calculator
// Cost model (per level n, piecewise):
// - 1-10:  5n guides, floor(n/2) designs, +0.5% boost
// - 11-25: 50+10(n-10) guides, 5+2(n-10) designs, +1.0% boost
// - 26-50: 200+20(n-25) guides, 35+3(n-25) designs, +2.0% boost
package charm

import (
	"github.com/shopspring/decimal"

	"kingshot-calc/core/calculator"
	"kingshot-calc/core/piecewise"
	"kingshot-calc/core/table"
	"kingshot-calc/core/validate"
)

const (
	Name = "charm"

	MinLevel = 0
	MaxLevel = 50
)

const (
	Guides  table.Resource = "guides"
	Designs table.Resource = "designs"
	Boost   table.Resource = "boost"
)

// Schema is the charm cost record layout
var Schema = table.Schema{Guides, Designs, Boost}

// Type is a charm family
type Type struct {
	ID       string
	Name     string
	StatType string
}

// Types lists the charm families
var Types = []Type{
	{ID: "protection", Name: "Protection Charm", StatType: "Defense"},
	{ID: "keenness", Name: "Keenness Charm", StatType: "Attack"},
	{ID: "fusion", Name: "Fusion Charm", StatType: "Mixed Stats"},
}

func cost(guides, designs int, boost string) table.Record {
	return table.Record{
		Guides:  decimal.NewFromInt(int64(guides)),
		Designs: decimal.NewFromInt(int64(designs)),
		Boost:   decimal.RequireFromString(boost),
	}
}

// Function builds the bracketed charm cost curve
func Function() (*piecewise.Function, error) {
	return piecewise.NewFunction(Name, Schema, MinLevel, MaxLevel,
		piecewise.Bracket{Upper: 10, Cost: func(n int) table.Record {
			return cost(5*n, n/2, "0.5")
		}},
		piecewise.Bracket{Upper: 25, Cost: func(n int) table.Record {
			return cost(50+10*(n-10), 5+2*(n-10), "1.0")
		}},
		piecewise.Bracket{Upper: 50, Cost: func(n int) table.Record {
			return cost(200+20*(n-25), 35+3*(n-25), "2.0")
		}},
	)
}

type tip struct {
	level int
	text  string
}

var milestoneTips = []tip{
	{10, "Level 10 is a great milestone for cost-effectiveness"},
	{15, "Level 15 provides significant stat boost improvements"},
	{25, "Level 25 unlocks advanced charm benefits"},
}

// Tips returns upgrade advice for a range
func Tips(current, target int) []string {
	var out []string
	for _, t := range milestoneTips {
		if current < t.level && target >= t.level {
			out = append(out, t.text)
		}
	}
	if target > 30 {
		out = append(out, "Levels beyond 30 are expensive - ensure you have sufficient resources")
	}
	if len(out) == 0 {
		out = append(out, "Consider upgrading in increments of 5 levels for milestone bonuses")
	}
	return out
}

// Calculator is the governor charm calculator
type Calculator struct {
	source table.Source
}

// New creates a charm calculator over the built-in curve
func New() *Calculator {
	fn, err := Function()
	if err != nil {
		panic(err)
	}
	return &Calculator{source: fn}
}

// NewWithSource creates a charm calculator over a replacement table
func NewWithSource(src table.Source) *Calculator {
	return &Calculator{source: src}
}

// Name returns the registry key
func (c *Calculator) Name() string { return Name }

// Title returns the report heading
func (c *Calculator) Title() string { return "Governor Charms Calculator" }

// Description returns a one-line summary
func (c *Calculator) Description() string {
	return "Charm guides and designs for a charm level range"
}

// Source returns the cost curve
func (c *Calculator) Source(map[string]string) (table.Source, error) {
	return c.source, nil
}

// Calculate runs a charm range. Option "type" picks the charm family.
func (c *Calculator) Calculate(in calculator.Input) (*calculator.Report, error) {
	charm, err := lookupType(in.Option("type", Types[0].ID))
	if err != nil {
		return nil, err
	}

	res, _, err := calculator.Run(calculator.RangeSpec{Source: c.source, Input: in})
	if err != nil {
		return nil, err
	}

	report := &calculator.Report{
		Calculator: Name,
		Title:      c.Title(),
		Input:      in,
		Result:     res,
		Tips:       Tips(res.Current.Ordinal, res.Target.Ordinal),
	}
	report.AddDetail("Charm Type", charm.Name)
	report.AddDetail("Stat Type", charm.StatType)
	report.AddDetail("Total Stat Boost", res.Total(Boost).String()+"%")
	return report, nil
}

func lookupType(raw string) (Type, error) {
	ids := make([]string, len(Types))
	for i, t := range Types {
		ids[i] = t.ID
	}
	id, err := validate.Choice("charm type", raw, ids)
	if err != nil {
		return Type{}, err
	}
	for _, t := range Types {
		if t.ID == id {
			return t, nil
		}
	}
	return Type{}, nil
}

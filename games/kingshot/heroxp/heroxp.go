// Package heroxp - Hero XP calculator
// Cost model:
// - Level n costs 800 + 20n² XP
// - Each level adds 2+0.4n ATK, 2+0.35n DEF, 10+1.2n HP
// - Optional daily XP income gives days to completion
package heroxp

import (
	"strings"

	"github.com/shopspring/decimal"

	"kingshot-calc/core/calculator"
	"kingshot-calc/core/guards"
	"kingshot-calc/core/table"
	"kingshot-calc/core/timeline"
)

const (
	Name = "heroxp"

	MinLevel = 0
	MaxLevel = 100

	MaxDailyXP = 100_000_000
)

const (
	XP      table.Resource = "xp"
	Attack  table.Resource = "atk"
	Defense table.Resource = "def"
	Health  table.Resource = "hp"
)

// Schema is the hero XP record layout
var Schema = table.Schema{XP, Attack, Defense, Health}

func linear(base, step string, n int) decimal.Decimal {
	return decimal.RequireFromString(base).Add(decimal.RequireFromString(step).Mul(decimal.NewFromInt(int64(n))))
}

// Row returns the XP cost and stat gain of level n
func Row(n int) table.Record {
	return table.Record{
		XP:      decimal.NewFromInt(int64(800 + 20*n*n)),
		Attack:  linear("2", "0.4", n),
		Defense: linear("2", "0.35", n),
		Health:  linear("10", "1.2", n),
	}
}

// Table builds the level table
func Table() (*table.Table, error) {
	rows := make([]table.LevelEntry, 0, MaxLevel)
	for n := MinLevel + 1; n <= MaxLevel; n++ {
		rows = append(rows, table.LevelEntry{Level: n, Cost: Row(n)})
	}
	return table.NewLevelTable(Name, Schema, MinLevel, MaxLevel, rows)
}

// Calculator is the hero XP calculator
type Calculator struct {
	source table.Source
}

// New creates a hero XP calculator over the built-in curve
func New() *Calculator {
	return &Calculator{source: guards.Must(Table())}
}

// NewWithSource creates a hero XP calculator over a replacement table
func NewWithSource(src table.Source) *Calculator {
	return &Calculator{source: src}
}

// Name returns the registry key
func (c *Calculator) Name() string { return Name }

// Title returns the report heading
func (c *Calculator) Title() string { return "Hero XP Calculator" }

// Description returns a one-line summary
func (c *Calculator) Description() string {
	return "Hero XP and stat gains for a level range, with an optional daily XP timeline"
}

// Source returns the level table
func (c *Calculator) Source(map[string]string) (table.Source, error) {
	return c.source, nil
}

// Calculate runs a hero level range. A blank Income skips the timeline.
func (c *Calculator) Calculate(in calculator.Input) (*calculator.Report, error) {
	spec := calculator.RangeSpec{Source: c.source, Input: in}
	if strings.TrimSpace(in.Income) != "" {
		spec.IncomeUnit = timeline.Day
		spec.IncomeMax = decimal.NewFromInt(MaxDailyXP)
		spec.Projected = XP
	}

	res, proj, err := calculator.Run(spec)
	if err != nil {
		return nil, err
	}

	report := &calculator.Report{
		Calculator: Name,
		Title:      c.Title(),
		Input:      in,
		Result:     res,
		Timeline:   proj,
	}
	report.AddDetail("Total Stats", "ATK +"+res.Total(Attack).StringFixed(1)+
		", DEF +"+res.Total(Defense).StringFixed(1)+
		", HP +"+res.Total(Health).StringFixed(1))
	return report, nil
}

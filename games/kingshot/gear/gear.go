// Package gear - Governor gear enhancement calculator
// Cost model:
// - Gear climbs a fixed ladder of named tiers (Green 0★ ... Red T4 3★)
// - Each tier step costs satin, gilded threads and artisan's vision
// - Upgrading several slots together multiplies the cost
package gear

import (
	"fmt"

	"kingshot-calc/core/calculator"
	"kingshot-calc/core/guards"
	"kingshot-calc/core/table"
)

const (
	Name = "gear"

	MaxSlots = 6
)

const (
	Satin   table.Resource = "satin"
	Threads table.Resource = "threads"
	Vision  table.Resource = "vision"
)

// Schema is the gear cost record layout
var Schema = table.Schema{Satin, Threads, Vision}

// Slots are the governor gear slots
var Slots = []string{"coat", "pants", "ring", "weapon", "hat", "necklace"}

func tier(id, label string, satin, threads, vision int64) table.Tier {
	return table.Tier{ID: id, Label: label, Cost: table.Ints(Schema, satin, threads, vision)}
}

// Tiers is the enhancement ladder in upgrade order
var Tiers = []table.Tier{
	tier("green-0", "Green 0★", 1500, 15, 0),
	tier("green-1", "Green 1★", 3800, 40, 0),
	tier("blue-0", "Blue 0★", 7000, 70, 0),
	tier("blue-1", "Blue 1★", 9700, 95, 0),
	tier("blue-2", "Blue 2★", 1000, 10, 45),
	tier("blue-3", "Blue 3★", 1000, 10, 50),
	tier("purple-0", "Purple 0★", 1500, 15, 60),
	tier("purple-1", "Purple 1★", 2000, 20, 80),
	tier("purple-2", "Purple 2★", 3000, 30, 100),
	tier("purple-3", "Purple 3★", 4500, 45, 120),
	tier("gold-0", "Gold T1 0★", 10000, 100, 140),
	tier("gold-1", "Gold T1 1★", 20000, 200, 160),
	tier("gold-2", "Gold T1 2★", 40000, 400, 180),
	tier("gold-3", "Gold T3 3★", 90000, 900, 180),
	tier("red-0", "Red T4 0★", 150000, 1500, 300),
	tier("red-1", "Red T4 1★", 250000, 2500, 500),
	tier("red-2", "Red T4 2★", 350000, 3500, 700),
	tier("red-3", "Red T4 3★", 475000, 4750, 990),
}

// Table builds the tier table
func Table() (*table.Table, error) {
	return table.NewTierTable(Name, Schema, Tiers)
}

// Calculator is the governor gear calculator
type Calculator struct {
	source table.Source
}

// New creates a gear calculator over the built-in ladder
func New() *Calculator {
	return &Calculator{source: guards.Must(Table())}
}

// NewWithSource creates a gear calculator over a replacement table
func NewWithSource(src table.Source) *Calculator {
	return &Calculator{source: src}
}

// Name returns the registry key
func (c *Calculator) Name() string { return Name }

// Title returns the report heading
func (c *Calculator) Title() string { return "Governor Gear Enhancement Calculator" }

// Description returns a one-line summary
func (c *Calculator) Description() string {
	return "Satin, gilded threads and artisan's vision between two gear tiers"
}

// Source returns the tier table
func (c *Calculator) Source(map[string]string) (table.Source, error) {
	return c.source, nil
}

// Calculate runs a tier range. Multiplier is the number of slots.
func (c *Calculator) Calculate(in calculator.Input) (*calculator.Report, error) {
	res, _, err := calculator.Run(calculator.RangeSpec{
		Source:        c.source,
		Input:         in,
		MaxMultiplier: MaxSlots,
	})
	if err != nil {
		return nil, err
	}

	report := &calculator.Report{
		Calculator: Name,
		Title:      c.Title(),
		Input:      in,
		Result:     res,
	}
	report.AddDetail("Current Tier", res.Current.Label)
	report.AddDetail("Target Tier", res.Target.Label)
	report.AddDetail("Number of Slots", fmt.Sprint(res.Multiplier))
	return report, nil
}

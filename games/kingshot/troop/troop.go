// Package troop - Troop training calculator
// Cost model:
// - Every unit type has a flat per-unit cost, training time and stats
// - Totals scale linearly with quantity
// - Training speed bonus shortens time only
package troop

import (
	"fmt"
	"sort"

	"github.com/shopspring/decimal"

	"kingshot-calc/core/calculator"
	"kingshot-calc/core/table"
	"kingshot-calc/core/validate"
)

const (
	Name = "troop"

	MaxQuantity = 1_000_000
	MaxBonus    = 99
)

const (
	Gold    table.Resource = "gold"
	Wood    table.Resource = "wood"
	Stone   table.Resource = "stone"
	Attack  table.Resource = "atk"
	Defense table.Resource = "def"
	Health  table.Resource = "hp"
	Seconds table.Resource = "seconds"
)

// Schema is the per-unit record layout
var Schema = table.Schema{Gold, Wood, Stone, Attack, Defense, Health, Seconds}

// Unit is a trainable troop type
type Unit struct {
	ID   string
	Name string
	Cost table.Record
}

func unit(id, name string, seconds, gold, wood, stone, atk, def, hp int64) Unit {
	return Unit{ID: id, Name: name, Cost: table.Ints(Schema, gold, wood, stone, atk, def, hp, seconds)}
}

// Units lists the trainable troop types
var Units = map[string]Unit{
	"footman": unit("footman", "Footman", 15, 100, 50, 30, 5, 6, 40),
	"archer":  unit("archer", "Archer", 20, 150, 70, 40, 8, 4, 30),
	"cavalry": unit("cavalry", "Cavalry", 30, 250, 100, 80, 10, 7, 60),
	"mage":    unit("mage", "Mage", 25, 200, 90, 60, 12, 3, 25),
}

// UnitIDs returns unit ids in sorted order
func UnitIDs() []string {
	ids := make([]string, 0, len(Units))
	for id := range Units {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

// Order is a validated training request
type Order struct {
	Unit     Unit
	Quantity int
	Bonus    decimal.Decimal
}

// Plan is the outcome of a training order
type Plan struct {
	Order   Order        `json:"-"`
	PerUnit table.Record `json:"per_unit"`
	Totals  table.Record `json:"totals"`
}

// Train scales the unit cost by quantity and the time by the speed bonus
func Train(o Order) Plan {
	factor := decimal.NewFromInt(1).Sub(o.Bonus.Div(decimal.NewFromInt(100)))
	per := o.Unit.Cost.Clone()
	per[Seconds] = per.Get(Seconds).Mul(factor)
	return Plan{Order: o, PerUnit: per, Totals: per.Scale(int64(o.Quantity))}
}

// FormatSeconds renders "2h 5m 0s", "5m 30s" or "45s"
func FormatSeconds(secs decimal.Decimal) string {
	total := secs.Floor().IntPart()
	h, m, s := total/3600, total%3600/60, total%60
	switch {
	case h > 0:
		return fmt.Sprintf("%dh %dm %ds", h, m, s)
	case m > 0:
		return fmt.Sprintf("%dm %ds", m, s)
	default:
		return fmt.Sprintf("%ds", s)
	}
}

// ParseOrder validates raw unit, quantity and bonus values
func ParseOrder(unitID, quantity, bonus string) (Order, error) {
	id, err := validate.Choice("unit type", unitID, UnitIDs())
	if err != nil {
		return Order{}, err
	}
	qty, err := validate.ParseLevel("quantity", quantity)
	if err != nil {
		return Order{}, err
	}
	if err := validate.Int("quantity", qty, 1, MaxQuantity); err != nil {
		return Order{}, err
	}
	b := decimal.Zero
	if bonus != "" {
		if b, err = validate.ParseNumber("bonus", bonus); err != nil {
			return Order{}, err
		}
		if err := validate.Number("bonus", b, decimal.Zero, decimal.NewFromInt(MaxBonus)); err != nil {
			return Order{}, err
		}
	}
	return Order{Unit: Units[id], Quantity: qty, Bonus: b}, nil
}

// Calculator exposes troop training through the registry.
// Options: "unit", "quantity", "bonus".
type Calculator struct{}

// New creates a troop training calculator
func New() *Calculator {
	return &Calculator{}
}

// Name returns the registry key
func (c *Calculator) Name() string { return Name }

// Title returns the report heading
func (c *Calculator) Title() string { return "Troop Training Calculator" }

// Description returns a one-line summary
func (c *Calculator) Description() string {
	return "Training time, cost and stats for a batch of troops"
}

// Calculate trains one batch
func (c *Calculator) Calculate(in calculator.Input) (*calculator.Report, error) {
	order, err := ParseOrder(in.Option("unit", ""), in.Option("quantity", ""), in.Option("bonus", ""))
	if err != nil {
		return nil, err
	}
	plan := Train(order)

	report := &calculator.Report{
		Calculator: Name,
		Title:      c.Title(),
		Input:      in,
	}
	report.AddDetail("Unit Type", order.Unit.Name)
	report.AddDetail("Quantity", fmt.Sprint(order.Quantity))
	report.AddDetail("Training Time", FormatSeconds(plan.Totals.Get(Seconds)))
	report.AddDetail("Cost", fmt.Sprintf("Gold: %s | Wood: %s | Stone: %s",
		plan.Totals.Get(Gold), plan.Totals.Get(Wood), plan.Totals.Get(Stone)))
	report.AddDetail("Stats", fmt.Sprintf("ATK +%s, DEF +%s, HP +%s",
		plan.Totals.Get(Attack), plan.Totals.Get(Defense), plan.Totals.Get(Health)))
	return report, nil
}

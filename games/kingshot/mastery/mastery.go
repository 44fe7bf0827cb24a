// Package mastery - Forgehammer mastery calculator
// Cost model:
// - Each gear piece levels 0..20 independently (0 = unmastered)
// - Current accepts 0 so a fresh piece can be costed; level 0 itself costs nothing
// - Inputs below 0 or above 20 are out of bounds
// - Level n costs 10n forgehammers
// - Levels 11-20 also cost n-10 mythic gear
// - Selected pieces multiply the per-piece cost
package mastery

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"kingshot-calc/core/calculator"
	"kingshot-calc/core/guards"
	"kingshot-calc/core/table"
	"kingshot-calc/core/timeline"
	"kingshot-calc/core/validate"
)

const (
	Name = "mastery"

	MinLevel  = 0
	MaxLevel  = 20
	MaxPieces = 12
	MaxIncome = 10000
)

const (
	Hammers    table.Resource = "hammers"
	MythicGear table.Resource = "mythic_gear"
)

// Schema is the mastery cost record layout
var Schema = table.Schema{Hammers, MythicGear}

// Piece is one equippable gear piece
type Piece struct {
	ID    string
	Class string
	Name  string
}

// Pieces lists the twelve masterable pieces (3 hero classes x 4)
var Pieces = buildPieces()

func buildPieces() []Piece {
	classes := []struct {
		id, name string
		weapon   string
	}{
		{"infantry", "Infantry", "Weapon"},
		{"cavalry", "Cavalry", "Spear"},
		{"archer", "Archer", "Bow"},
	}
	var out []Piece
	for _, c := range classes {
		for i, p := range []string{"Head Armor", "Chest Plate", "Boots", c.weapon} {
			out = append(out, Piece{
				ID:    fmt.Sprintf("%s-%d", c.id, i),
				Class: c.name,
				Name:  p,
			})
		}
	}
	return out
}

// Table builds the level table
func Table() (*table.Table, error) {
	var rows []table.LevelEntry
	for n := MinLevel + 1; n <= MaxLevel; n++ {
		gear := int64(0)
		if n > 10 {
			gear = int64(n - 10)
		}
		rows = append(rows, table.LevelEntry{Level: n, Cost: table.Ints(Schema, int64(10*n), gear)})
	}
	return table.NewLevelTable(Name, Schema, MinLevel, MaxLevel, rows)
}

// Calculator is the forgehammer mastery calculator
type Calculator struct {
	source table.Source
}

// New creates a mastery calculator over the built-in table
func New() *Calculator {
	return &Calculator{source: guards.Must(Table())}
}

// NewWithSource creates a mastery calculator over a replacement table
func NewWithSource(src table.Source) *Calculator {
	return &Calculator{source: src}
}

// Name returns the registry key
func (c *Calculator) Name() string { return Name }

// Title returns the report heading
func (c *Calculator) Title() string { return "Forgehammer Mastery Calculator" }

// Description returns a one-line summary
func (c *Calculator) Description() string {
	return "Forgehammers and mythic gear to raise gear mastery, with a monthly income timeline"
}

// Source returns the cost table
func (c *Calculator) Source(map[string]string) (table.Source, error) {
	return c.source, nil
}

// Calculate runs a mastery range for the selected pieces.
// Option "pieces" (comma separated piece ids) overrides Multiplier.
func (c *Calculator) Calculate(in calculator.Input) (*calculator.Report, error) {
	selected, err := selectedPieces(in.Option("pieces", ""))
	if err != nil {
		return nil, err
	}
	if len(selected) > 0 {
		in.Multiplier = len(selected)
	}

	res, proj, err := calculator.Run(calculator.RangeSpec{
		Source:        c.source,
		Input:         in,
		MaxMultiplier: MaxPieces,
		IncomeUnit:    timeline.Month,
		IncomeMax:     decimal.NewFromInt(MaxIncome),
		Projected:     Hammers,
	})
	if err != nil {
		return nil, err
	}

	perPiece := decimal.NewFromInt(int64(res.Multiplier))
	report := &calculator.Report{
		Calculator: Name,
		Title:      c.Title(),
		Input:      in,
		Result:     res,
		Timeline:   proj,
	}
	report.AddDetail("Pieces", fmt.Sprint(res.Multiplier))
	report.AddDetail("Hammers per piece", res.Total(Hammers).Div(perPiece).String())
	report.AddDetail("Mythic gear per piece", res.Total(MythicGear).Div(perPiece).String())
	for _, p := range selected {
		report.AddDetail("Piece", p.Class+" - "+p.Name)
	}
	return report, nil
}

func selectedPieces(raw string) ([]Piece, error) {
	if raw == "" {
		return nil, nil
	}
	ids := make([]string, len(Pieces))
	byID := make(map[string]Piece, len(Pieces))
	for i, p := range Pieces {
		ids[i] = p.ID
		byID[p.ID] = p
	}

	var out []Piece
	seen := make(map[string]bool)
	for _, part := range strings.Split(raw, ",") {
		id, err := validate.Choice("gear piece", part, ids)
		if err != nil {
			return nil, err
		}
		if seen[id] {
			continue
		}
		seen[id] = true
		out = append(out, byID[id])
	}
	return out, nil
}

// Package pet - Pet leveling calculator
// Cost model:
// - Food per level grows in four linear stretches (1-10, 11-30, 31-60, 61-100)
// - Stored as anchor levels, interpolated and floored in between
// - Level cap depends on pet rarity
// - Daily food income gives days to completion, per 10-level block too
package pet

import (
	"fmt"

	"github.com/shopspring/decimal"

	"kingshot-calc/core/calculator"
	"kingshot-calc/core/piecewise"
	"kingshot-calc/core/table"
	"kingshot-calc/core/timeline"
	"kingshot-calc/core/validate"
)

const (
	Name = "pet"

	MinLevel  = 1
	MaxLevel  = 100
	MaxIncome = 10000

	// BucketSize groups the breakdown into 10-level blocks
	BucketSize = 10
)

// Food is the only pet leveling resource
const Food table.Resource = "food"

// Schema is the pet cost record layout
var Schema = table.Schema{Food}

// anchors are the literal rows of the sparse food table
var anchors = []table.LevelEntry{
	{Level: 1, Cost: table.Ints(Schema, 10)},
	{Level: 10, Cost: table.Ints(Schema, 100)},
	{Level: 30, Cost: table.Ints(Schema, 500)},
	{Level: 60, Cost: table.Ints(Schema, 1700)},
	{Level: 100, Cost: table.Ints(Schema, 4900)},
}

// Species is a pet type
type Species struct {
	ID        string
	Name      string
	Specialty string
	Tip       string
}

// AllSpecies lists the pet types
var AllSpecies = []Species{
	{ID: "moose", Name: "Moose", Specialty: "Gathering",
		Tip: "Moose is excellent for resource gathering - prioritize for economy"},
	{ID: "lion", Name: "Lion", Specialty: "Combat (Attack)",
		Tip: "Lion excels in combat - essential for PvP and boss fights"},
	{ID: "cheetah", Name: "Cheetah", Specialty: "Speed/Marching",
		Tip: "Cheetah increases march speed - great for quick raids"},
	{ID: "bear", Name: "Bear", Specialty: "Combat (Defense)",
		Tip: "Bear excels in combat - essential for PvP and boss fights"},
	{ID: "wolf", Name: "Wolf", Specialty: "Pack Hunting"},
	{ID: "eagle", Name: "Eagle", Specialty: "Scouting"},
}

// Rarity caps the reachable level
type Rarity struct {
	ID  string
	Cap int
}

// Rarities lists pet rarities in ascending order
var Rarities = []Rarity{
	{ID: "common", Cap: 50},
	{ID: "rare", Cap: 70},
	{ID: "epic", Cap: 80},
	{ID: "legendary", Cap: MaxLevel},
}

// Table builds the sparse food table for a level cap
func Table(cap int) (*table.Table, error) {
	return table.NewLevelTable(Name, Schema, MinLevel, cap, anchors, table.Sparse(table.LinearFloor))
}

// Curve is the food cost as a bracketed formula. It agrees with Table
// at every level.
func Curve() (*piecewise.Function, error) {
	food := func(n int64) table.Record { return table.Ints(Schema, n) }
	return piecewise.NewFunction(Name, Schema, MinLevel-1, MaxLevel,
		piecewise.Bracket{Upper: 10, Cost: func(n int) table.Record { return food(int64(10 * n)) }},
		piecewise.Bracket{Upper: 30, Cost: func(n int) table.Record { return food(int64(100 + 20*(n-10))) }},
		piecewise.Bracket{Upper: 60, Cost: func(n int) table.Record { return food(int64(500 + 40*(n-30))) }},
		piecewise.Bracket{Upper: MaxLevel, Cost: func(n int) table.Record { return food(int64(1700 + 80*(n-60))) }},
	)
}

// TamingMarks estimates the taming marks needed to reach target
func TamingMarks(target int) int {
	return target/10*5 + target/20*10
}

// Tips returns advice for a pet and target level
func Tips(s Species, target int) []string {
	var out []string
	if s.Tip != "" {
		out = append(out, s.Tip)
	}
	if target >= 30 {
		out = append(out, "Level 30+ pets unlock special abilities")
	}
	if target >= 60 {
		out = append(out, "Level 60+ requires significant investment but provides major power spikes")
	}
	if target >= 80 {
		out = append(out, "Level 80+ pets are endgame content - ensure steady resource income")
	}
	return append(out,
		"Participate in pet events for bonus food and marks",
		"Focus on one pet at a time for efficient progression",
	)
}

// Calculator is the pet leveling calculator
type Calculator struct {
	tables map[string]table.Source
}

// New creates a pet calculator with one table per rarity cap
func New() *Calculator {
	c := &Calculator{tables: make(map[string]table.Source, len(Rarities))}
	for _, r := range Rarities {
		tbl, err := Table(r.Cap)
		if err != nil {
			panic(err)
		}
		c.tables[r.ID] = tbl
	}
	return c
}

// NewWithSource creates a pet calculator over a replacement food table.
// Each rarity sees the table capped at its own level cap.
func NewWithSource(src table.Source) *Calculator {
	c := &Calculator{tables: make(map[string]table.Source, len(Rarities))}
	for _, r := range Rarities {
		c.tables[r.ID] = table.Capped(src, r.Cap)
	}
	return c
}

// Name returns the registry key
func (c *Calculator) Name() string { return Name }

// Title returns the report heading
func (c *Calculator) Title() string { return "Pet Leveling Calculator" }

// Description returns a one-line summary
func (c *Calculator) Description() string {
	return "Pet food and taming marks for a level range, with a daily food timeline"
}

// Source returns the food table for option "rarity"
func (c *Calculator) Source(options map[string]string) (table.Source, error) {
	return c.source(calculator.Input{Options: options}.Option("rarity", "legendary"))
}

func (c *Calculator) source(rarity string) (table.Source, error) {
	ids := make([]string, len(Rarities))
	for i, r := range Rarities {
		ids[i] = r.ID
	}
	id, err := validate.Choice("pet rarity", rarity, ids)
	if err != nil {
		return nil, err
	}
	return c.tables[id], nil
}

// Calculate runs a pet range. Options "type" and "rarity" pick the pet.
func (c *Calculator) Calculate(in calculator.Input) (*calculator.Report, error) {
	species, err := lookupSpecies(in.Option("type", AllSpecies[0].ID))
	if err != nil {
		return nil, err
	}
	src, err := c.source(in.Option("rarity", "legendary"))
	if err != nil {
		return nil, err
	}

	res, proj, err := calculator.Run(calculator.RangeSpec{
		Source:     src,
		Input:      in,
		IncomeUnit: timeline.Day,
		IncomeMax:  decimal.NewFromInt(MaxIncome),
		Projected:  Food,
	})
	if err != nil {
		return nil, err
	}

	report := &calculator.Report{
		Calculator: Name,
		Title:      c.Title(),
		Input:      in,
		Result:     res,
		Buckets:    res.Buckets(BucketSize),
		Timeline:   proj,
		Tips:       Tips(species, res.Target.Ordinal),
	}
	report.AddDetail("Pet Type", species.Name)
	report.AddDetail("Specialty", species.Specialty)
	report.AddDetail("Taming Marks (Est.)", fmt.Sprint(TamingMarks(res.Target.Ordinal)))

	for _, b := range report.Buckets {
		report.AddDetail("Levels "+b.Label, fmt.Sprintf("%s food, %s", b.Cost.Get(Food), blockDays(b.Cost.Get(Food), proj.Rate)))
	}
	return report, nil
}

func blockDays(food, daily decimal.Decimal) string {
	p := timeline.Project(food, daily, timeline.Day)
	if !p.Defined {
		return timeline.Undefined
	}
	days := p.Periods.Ceil().IntPart()
	if days == 1 {
		return "1 day"
	}
	return fmt.Sprintf("%d days", days)
}

func lookupSpecies(raw string) (Species, error) {
	ids := make([]string, len(AllSpecies))
	for i, s := range AllSpecies {
		ids[i] = s.ID
	}
	id, err := validate.Choice("pet type", raw, ids)
	if err != nil {
		return Species{}, err
	}
	for _, s := range AllSpecies {
		if s.ID == id {
			return s, nil
		}
	}
	return Species{}, nil
}

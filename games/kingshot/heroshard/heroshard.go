// Package heroshard - Hero star promotion calculator
// Cost model:
// - Heroes promote from 0★ to 5★
// - Each star costs shards and coins and adds ATK/DEF/HP
// - Costs depend on hero rarity (epic, legendary)
// - Shards already owned reduce the shard requirement, never below zero
package heroshard

import (
	"github.com/shopspring/decimal"

	"kingshot-calc/core/calculator"
	"kingshot-calc/core/table"
	"kingshot-calc/core/validate"
)

const (
	Name = "heroshard"

	MinStars = 0
	MaxStars = 5

	MaxOwned = 1_000_000
)

const (
	Shards  table.Resource = "shards"
	Coins   table.Resource = "coins"
	Attack  table.Resource = "atk"
	Defense table.Resource = "def"
	Health  table.Resource = "hp"
)

// Schema is the star promotion record layout
var Schema = table.Schema{Shards, Coins, Attack, Defense, Health}

func star(n int, shards, coins, atk, def, hp int64) table.LevelEntry {
	return table.LevelEntry{Level: n, Cost: table.Ints(Schema, shards, coins, atk, def, hp)}
}

// Stars holds the per-rarity promotion rows
var Stars = map[string][]table.LevelEntry{
	"epic": {
		star(1, 10, 5000, 5, 4, 20),
		star(2, 20, 10000, 6, 5, 25),
		star(3, 40, 20000, 7, 6, 30),
		star(4, 80, 40000, 8, 7, 35),
		star(5, 160, 80000, 10, 9, 45),
	},
	"legendary": {
		star(1, 20, 20000, 8, 7, 30),
		star(2, 40, 40000, 10, 8, 40),
		star(3, 80, 80000, 12, 10, 50),
		star(4, 160, 160000, 15, 12, 65),
		star(5, 320, 320000, 20, 16, 85),
	},
}

// Rarities lists the supported rarities in display order
var Rarities = []string{"epic", "legendary"}

// Table builds the star table for a rarity
func Table(rarity string) (*table.Table, error) {
	return table.NewLevelTable(Name+"-"+rarity, Schema, MinStars, MaxStars, Stars[rarity])
}

// Calculator is the hero shard calculator
type Calculator struct {
	tables map[string]table.Source
}

// New creates a hero shard calculator with one table per rarity
func New() *Calculator {
	c := &Calculator{tables: make(map[string]table.Source, len(Rarities))}
	for _, r := range Rarities {
		tbl, err := Table(r)
		if err != nil {
			panic(err)
		}
		c.tables[r] = tbl
	}
	return c
}

// Name returns the registry key
func (c *Calculator) Name() string { return Name }

// Title returns the report heading
func (c *Calculator) Title() string { return "Hero Shard Calculator" }

// Description returns a one-line summary
func (c *Calculator) Description() string {
	return "Shards and coins to promote a hero between star levels"
}

// Source returns the star table for option "rarity"
func (c *Calculator) Source(options map[string]string) (table.Source, error) {
	rarity, err := rarityOf(options)
	if err != nil {
		return nil, err
	}
	return c.tables[rarity], nil
}

func rarityOf(options map[string]string) (string, error) {
	return validate.Choice("hero rarity", calculator.Input{Options: options}.Option("rarity", "epic"), Rarities)
}

// Calculate runs a star range. Options "rarity" and "owned" (shards in
// hand).
func (c *Calculator) Calculate(in calculator.Input) (*calculator.Report, error) {
	rarity, err := rarityOf(in.Options)
	if err != nil {
		return nil, err
	}
	src := c.tables[rarity]

	owned := decimal.Zero
	if raw := in.Option("owned", ""); raw != "" {
		if owned, err = validate.ParseNumber("owned", raw); err != nil {
			return nil, err
		}
		if err := validate.Number("owned", owned, decimal.Zero, decimal.NewFromInt(MaxOwned)); err != nil {
			return nil, err
		}
	}

	res, _, err := calculator.Run(calculator.RangeSpec{Source: src, Input: in})
	if err != nil {
		return nil, err
	}

	report := &calculator.Report{
		Calculator: Name,
		Title:      c.Title(),
		Input:      in,
		Result:     res,
	}
	report.AddDetail("Rarity", rarity)
	report.AddDetail("Stars", res.Current.Label+"★ → "+res.Target.Label+"★")
	report.AddDetail("Shards Owned", owned.String())
	report.AddDetail("Shards Still Needed", ShardsNeeded(res.Total(Shards), owned).String())
	report.AddDetail("Total Stats", "ATK +"+res.Total(Attack).StringFixed(1)+
		", DEF +"+res.Total(Defense).StringFixed(1)+
		", HP +"+res.Total(Health).StringFixed(1))
	return report, nil
}

// ShardsNeeded subtracts owned shards from a total, floored at zero
func ShardsNeeded(total, owned decimal.Decimal) decimal.Decimal {
	return decimal.Max(decimal.Zero, total.Sub(owned))
}

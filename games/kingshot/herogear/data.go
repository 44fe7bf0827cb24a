package herogear

import (
	"github.com/shopspring/decimal"

	"kingshot-calc/core/piecewise"
	"kingshot-calc/core/table"
)

const (
	HeroAttack    table.Resource = "hero_attack"
	HeroDefense   table.Resource = "hero_defense"
	HeroHealth    table.Resource = "hero_health"
	EscortAttack  table.Resource = "escort_attack"
	EscortDefense table.Resource = "escort_defense"
	EscortHealth  table.Resource = "escort_health"
	Lethality     table.Resource = "lethality"
	TroopHealth   table.Resource = "troop_health"
)

// Category groups gear pieces that share a stat line
type Category string

const (
	HelmetBoots Category = "helmet_boots"
	ChestGloves Category = "chest_gloves"
)

// Stat is one gold-phase stat line: value at level 0, at level 100, and
// the gain per level
type Stat struct {
	Resource table.Resource
	Base     decimal.Decimal
	Max      decimal.Decimal
	PerLevel decimal.Decimal
}

func stat(res table.Resource, base, max int64, per string) Stat {
	return Stat{
		Resource: res,
		Base:     decimal.NewFromInt(base),
		Max:      decimal.NewFromInt(max),
		PerLevel: decimal.RequireFromString(per),
	}
}

// expedition stats are troop buff percentages shared by every class
var expedition = map[Category]Stat{
	HelmetBoots: stat(Lethality, 15, 50, "0.35"),
	ChestGloves: stat(TroopHealth, 15, 50, "0.35"),
}

// conquest stats are flat hero and escort stats per class
var conquest = map[string]map[Category][]Stat{
	"infantry": {
		HelmetBoots: {
			stat(HeroAttack, 115, 345, "2.3"),
			stat(HeroHealth, 1125, 3375, "22.5"),
			stat(EscortAttack, 38, 115, "0.77"),
			stat(EscortHealth, 375, 1125, "7.5"),
		},
		ChestGloves: {
			stat(HeroDefense, 150, 450, "3.0"),
			stat(HeroHealth, 1125, 3375, "22.5"),
			stat(EscortDefense, 50, 150, "1.0"),
			stat(EscortHealth, 375, 1125, "7.5"),
		},
	},
	"archer": {
		HelmetBoots: {
			stat(HeroAttack, 182, 546, "3.64"),
			stat(HeroHealth, 562, 1687, "11.25"),
			stat(EscortAttack, 60, 182, "1.22"),
			stat(EscortHealth, 187, 562, "3.75"),
		},
		ChestGloves: {
			stat(HeroDefense, 150, 450, "3.0"),
			stat(HeroHealth, 562, 1687, "11.25"),
			stat(EscortDefense, 50, 150, "1.0"),
			stat(EscortHealth, 187, 562, "3.75"),
		},
	},
	"cavalry": {
		HelmetBoots: {
			stat(HeroAttack, 150, 450, "3.0"),
			stat(HeroHealth, 750, 2250, "15.0"),
			stat(EscortAttack, 50, 150, "1.0"),
			stat(EscortHealth, 250, 750, "5.0"),
		},
		ChestGloves: {
			stat(HeroDefense, 150, 450, "3.0"),
			stat(HeroHealth, 750, 2250, "15.0"),
			stat(EscortDefense, 50, 150, "1.0"),
			stat(EscortHealth, 250, 750, "5.0"),
		},
	},
}

// Stats returns the gold-phase stat lines of a class and category,
// conquest first then expedition
func Stats(class string, cat Category) []Stat {
	out := append([]Stat(nil), conquest[class][cat]...)
	return append(out, expedition[cat])
}

// schemaOf lists the resources of a stat line set
func schemaOf(stats []Stat) table.Schema {
	out := make(table.Schema, len(stats))
	for i, s := range stats {
		out[i] = s.Resource
	}
	return out
}

// GoldCurve is the per-level gold-phase gain of a class and category
func GoldCurve(class string, cat Category) (*piecewise.Function, error) {
	stats := Stats(class, cat)
	gain := table.Record{}
	for _, s := range stats {
		gain[s.Resource] = s.PerLevel
	}
	return piecewise.NewFunction("herogear-"+class+"-"+string(cat), schemaOf(stats), MinLevel, GoldCap,
		piecewise.Bracket{Upper: GoldCap, Cost: func(int) table.Record { return gain.Clone() }},
	)
}

// Imbuement group of a piece: helmet and chest share one milestone line,
// gloves and boots the other
const (
	HelmetChest = "helmet_chest"
	GlovesBoots = "gloves_boots"
)

func imbuements(troop string, attackFirst bool) []piecewise.Milestone {
	first, second := troop+" Attack", troop+" Defense"
	up := "Hero Attack Up"
	if !attackFirst {
		first, second = second, first
		up = "Hero Defense Up"
	}
	return []piecewise.Milestone{
		{Level: 120, Category: "expedition", Stat: first, Value: decimal.NewFromInt(20)},
		{Level: 140, Category: "conquest", Stat: "Hero Health Up", Value: decimal.RequireFromString("7.5")},
		{Level: 160, Category: "expedition", Stat: second, Value: decimal.NewFromInt(30)},
		{Level: 180, Category: "conquest", Stat: up, Value: decimal.NewFromInt(15)},
		{Level: 200, Category: "expedition", Stat: first, Value: decimal.NewFromInt(50)},
	}
}

// RedImbuements lists the red-phase milestones per class and group
var RedImbuements = map[string]map[string][]piecewise.Milestone{
	"infantry": {HelmetChest: imbuements("Infantry", true), GlovesBoots: imbuements("Infantry", false)},
	"archer":   {HelmetChest: imbuements("Archer", true), GlovesBoots: imbuements("Archer", false)},
	"cavalry":  {HelmetChest: imbuements("Cavalry", true), GlovesBoots: imbuements("Cavalry", false)},
}

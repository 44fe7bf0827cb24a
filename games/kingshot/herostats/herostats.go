// Package herostats - Hero stat comparison
// Stat model:
// - stats = base(rarity) + gain(rarity) x (level - 1) + gear bonus(tier)
// - Two heroes compare field by field (A - B)
package herostats

import (
	"strings"

	"github.com/shopspring/decimal"

	"kingshot-calc/core/calculator"
	"kingshot-calc/core/table"
	"kingshot-calc/core/validate"
	apperrors "kingshot-calc/internal/errors"
)

const (
	Name = "herostats"

	MinLevel = 1
	MaxLevel = 100
)

const (
	Attack  table.Resource = "atk"
	Defense table.Resource = "def"
	Health  table.Resource = "hp"
)

// Schema is the hero stat record layout
var Schema = table.Schema{Attack, Defense, Health}

func stats(atk, def, hp string) table.Record {
	return table.Decimals(Schema, atk, def, hp)
}

type rarityData struct {
	base table.Record
	gain table.Record
}

var rarities = map[string]rarityData{
	"epic":      {base: stats("50", "40", "300"), gain: stats("2", "1.5", "10")},
	"legendary": {base: stats("80", "60", "450"), gain: stats("3.5", "2.5", "15")},
	"mythic":    {base: stats("120", "90", "650"), gain: stats("5", "3.5", "22")},
}

var gearBonuses = map[string]table.Record{
	"none":      stats("0", "0", "0"),
	"common":    stats("5", "4", "20"),
	"rare":      stats("10", "8", "40"),
	"epic":      stats("20", "16", "80"),
	"legendary": stats("40", "32", "160"),
}

// Rarities lists hero rarities in ascending order
var Rarities = []string{"epic", "legendary", "mythic"}

// GearTiers lists gear bonus tiers in ascending order
var GearTiers = []string{"none", "common", "rare", "epic", "legendary"}

// Hero selects a hero build
type Hero struct {
	Rarity string `json:"rarity"`
	Level  int    `json:"level"`
	Gear   string `json:"gear"`
}

// Sheet is a hero's computed stats with their parts
type Sheet struct {
	Hero      Hero         `json:"hero"`
	Base      table.Record `json:"base"`
	LevelGain table.Record `json:"level_gain"`
	GearBonus table.Record `json:"gear_bonus"`
	Total     table.Record `json:"total"`
}

// Comparison is two sheets and their difference (A - B)
type Comparison struct {
	A          Sheet        `json:"a"`
	B          Sheet        `json:"b"`
	Difference table.Record `json:"difference"`
}

// ParseHero parses "rarity:level[:gear]". Gear defaults to common.
func ParseHero(field, raw string) (Hero, error) {
	parts := strings.Split(strings.TrimSpace(raw), ":")
	if len(parts) < 2 || len(parts) > 3 {
		return Hero{}, apperrors.Newf(apperrors.TypeParsing, "%s: expected rarity:level[:gear], got %q", field, raw)
	}
	rarity, err := validate.Choice("hero rarity", parts[0], Rarities)
	if err != nil {
		return Hero{}, err
	}
	level, err := validate.ParseLevel(field+" level", parts[1])
	if err != nil {
		return Hero{}, err
	}
	if err := validate.Int(field+" level", level, MinLevel, MaxLevel); err != nil {
		return Hero{}, err
	}
	gear := "common"
	if len(parts) == 3 {
		if gear, err = validate.Choice("gear tier", parts[2], GearTiers); err != nil {
			return Hero{}, err
		}
	}
	return Hero{Rarity: rarity, Level: level, Gear: gear}, nil
}

// Stats computes a hero's stat sheet. The hero must come from ParseHero.
func Stats(h Hero) Sheet {
	data := rarities[h.Rarity]
	gain := data.gain.Clone()
	steps := decimal.NewFromInt(int64(h.Level - 1))
	for _, res := range Schema {
		gain[res] = gain.Get(res).Mul(steps)
	}
	bonus := gearBonuses[h.Gear].Clone()
	return Sheet{
		Hero:      h,
		Base:      data.base.Clone(),
		LevelGain: gain,
		GearBonus: bonus,
		Total:     data.base.Add(gain).Add(bonus),
	}
}

// Compare computes both sheets and A - B per stat
func Compare(a, b Hero) Comparison {
	sa, sb := Stats(a), Stats(b)
	diff := table.Record{}
	for _, res := range Schema {
		diff[res] = sa.Total.Get(res).Sub(sb.Total.Get(res))
	}
	return Comparison{A: sa, B: sb, Difference: diff}
}

// Calculator exposes the comparison through the calculator registry.
// Options "a" and "b" hold the hero builds.
type Calculator struct{}

// New creates a hero comparison calculator
func New() *Calculator {
	return &Calculator{}
}

// Name returns the registry key
func (c *Calculator) Name() string { return Name }

// Title returns the report heading
func (c *Calculator) Title() string { return "Hero Stat Comparison" }

// Description returns a one-line summary
func (c *Calculator) Description() string {
	return "Compare two heroes by rarity, level and gear"
}

// Calculate compares options "a" and "b"
func (c *Calculator) Calculate(in calculator.Input) (*calculator.Report, error) {
	a, err := ParseHero("a", in.Option("a", ""))
	if err != nil {
		return nil, err
	}
	b, err := ParseHero("b", in.Option("b", ""))
	if err != nil {
		return nil, err
	}

	cmp := Compare(a, b)
	report := &calculator.Report{
		Calculator: Name,
		Title:      c.Title(),
		Input:      in,
	}
	report.AddDetail("Hero A", describe(cmp.A))
	report.AddDetail("Hero B", describe(cmp.B))
	for _, res := range Schema {
		report.AddDetail(strings.ToUpper(string(res))+" Difference", signed(cmp.Difference.Get(res)))
	}
	return report, nil
}

func describe(s Sheet) string {
	return strings.ToUpper(s.Hero.Rarity) + " Hero L" + decimal.NewFromInt(int64(s.Hero.Level)).String() +
		" (" + s.Hero.Gear + " gear): ATK " + s.Total.Get(Attack).Round(0).String() +
		" | DEF " + s.Total.Get(Defense).Round(0).String() +
		" | HP " + s.Total.Get(Health).Round(0).String()
}

func signed(d decimal.Decimal) string {
	s := d.Round(0).String()
	if d.Round(0).IsPositive() {
		return "+" + s
	}
	return s
}

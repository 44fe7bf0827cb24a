// Package herogear - Hero gear stat progression calculator
// Stat model:
//   - Gold phase (levels 0-100): every level adds a fixed conquest and
//     expedition stat gain, by troop class and gear category
//   - Red phase (levels 100-200): one-time imbuements at 120/140/160/180/200
//   - A range that spans both phases is split at level 100
package herogear

import (
	"strconv"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"kingshot-calc/core/calculator"
	"kingshot-calc/core/piecewise"
	"kingshot-calc/core/table"
	"kingshot-calc/core/validate"
)

const (
	Name = "herogear"

	MinLevel = 0
	GoldCap  = 100
	MaxLevel = 200
)

// Classes are the troop classes
var Classes = []string{"infantry", "archer", "cavalry"}

// Pieces are the hero gear pieces
var Pieces = []string{"helmet", "boots", "chest", "gloves"}

// CategoryOf returns the gold-phase stat category of a piece
func CategoryOf(piece string) Category {
	if piece == "helmet" || piece == "boots" {
		return HelmetBoots
	}
	return ChestGloves
}

// GroupOf returns the red-phase imbuement group of a piece
func GroupOf(piece string) string {
	if piece == "helmet" || piece == "chest" {
		return HelmetChest
	}
	return GlovesBoots
}

// Calculator is the hero gear calculator
type Calculator struct {
	curves map[string]map[Category]table.Source
}

// New creates a hero gear calculator
func New() *Calculator {
	c := &Calculator{curves: make(map[string]map[Category]table.Source)}
	for _, class := range Classes {
		c.curves[class] = make(map[Category]table.Source)
		for _, cat := range []Category{HelmetBoots, ChestGloves} {
			fn, err := GoldCurve(class, cat)
			if err != nil {
				panic(err)
			}
			c.curves[class][cat] = fn
		}
	}
	return c
}

// Name returns the registry key
func (c *Calculator) Name() string { return Name }

// Title returns the report heading
func (c *Calculator) Title() string { return "Hero Gear Stat Calculator" }

// Description returns a one-line summary
func (c *Calculator) Description() string {
	return "Gold gear stat gains and red gear imbuements between two gear levels"
}

// Source returns the gold-phase curve for options "class" and "piece"
func (c *Calculator) Source(options map[string]string) (table.Source, error) {
	class, piece, err := selection(calculator.Input{Options: options})
	if err != nil {
		return nil, err
	}
	return c.curves[class][CategoryOf(piece)], nil
}

func selection(in calculator.Input) (class, piece string, err error) {
	if class, err = validate.Choice("troop class", in.Option("class", Classes[0]), Classes); err != nil {
		return "", "", err
	}
	if piece, err = validate.Choice("gear piece", in.Option("piece", Pieces[0]), Pieces); err != nil {
		return "", "", err
	}
	return class, piece, nil
}

// Calculate runs a gear level range over both phases
func (c *Calculator) Calculate(in calculator.Input) (*calculator.Report, error) {
	class, piece, err := selection(in)
	if err != nil {
		return nil, err
	}
	current, err := validate.ParseLevel("current", in.Current)
	if err != nil {
		return nil, err
	}
	target, err := validate.ParseLevel("target", in.Target)
	if err != nil {
		return nil, err
	}
	if err := validate.Range(current, target, MinLevel, MaxLevel); err != nil {
		return nil, err
	}

	title := cases.Title(language.English)
	report := &calculator.Report{
		Calculator: Name,
		Title:      c.Title(),
		Input:      in,
	}
	report.AddDetail("Troop Type", title.String(class))
	report.AddDetail("Gear Piece", title.String(piece))

	if current < GoldCap {
		gold := in
		gold.Target = strconv.Itoa(min(target, GoldCap))
		gold.Multiplier = 0
		res, _, err := calculator.Run(calculator.RangeSpec{
			Source: c.curves[class][CategoryOf(piece)],
			Input:  gold,
		})
		if err != nil {
			return nil, err
		}
		report.Result = res
		report.AddDetail("Phase", "Gold Gear")

		level := res.Target.Ordinal
		for _, s := range Stats(class, CategoryOf(piece)) {
			at := s.Base.Add(s.PerLevel.Mul(decimalOf(level)))
			report.AddDetail(label(s.Resource)+" at "+strconv.Itoa(level), at.StringFixed(2))
		}
	}

	if target > GoldCap {
		report.AddDetail("Phase", "Red Imbuement")
		report.Milestones = piecewise.Triggered(RedImbuements[class][GroupOf(piece)], max(current, GoldCap), target)
	}
	return report, nil
}

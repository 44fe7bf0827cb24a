// Package kingshot - Registers the Kingshot calculators.
// Built-in tables can be replaced by loaded table definitions of the
// same name, as long as the replacement keeps the calculator's kind and
// every resource of its built-in schema.
package kingshot

import (
	"go.uber.org/multierr"
	"go.uber.org/zap"

	"kingshot-calc/core/calculator"
	"kingshot-calc/core/table"
	"kingshot-calc/games/kingshot/bear"
	"kingshot-calc/games/kingshot/building"
	"kingshot-calc/games/kingshot/charm"
	"kingshot-calc/games/kingshot/gear"
	"kingshot-calc/games/kingshot/herogear"
	"kingshot-calc/games/kingshot/heroshard"
	"kingshot-calc/games/kingshot/herostats"
	"kingshot-calc/games/kingshot/heroxp"
	"kingshot-calc/games/kingshot/mastery"
	"kingshot-calc/games/kingshot/pet"
	"kingshot-calc/games/kingshot/troop"
	apperrors "kingshot-calc/internal/errors"
	"kingshot-calc/internal/logging"
)

// replaceable maps a table name to the constructor taking it
var replaceable = map[string]struct {
	builtin func() calculator.Calculator
	with    func(table.Source) calculator.Calculator
}{
	mastery.Name:  {func() calculator.Calculator { return mastery.New() }, func(s table.Source) calculator.Calculator { return mastery.NewWithSource(s) }},
	charm.Name:    {func() calculator.Calculator { return charm.New() }, func(s table.Source) calculator.Calculator { return charm.NewWithSource(s) }},
	gear.Name:     {func() calculator.Calculator { return gear.New() }, func(s table.Source) calculator.Calculator { return gear.NewWithSource(s) }},
	heroxp.Name:   {func() calculator.Calculator { return heroxp.New() }, func(s table.Source) calculator.Calculator { return heroxp.NewWithSource(s) }},
	pet.Name:      {func() calculator.Calculator { return pet.New() }, func(s table.Source) calculator.Calculator { return pet.NewWithSource(s) }},
	building.Name: {func() calculator.Calculator { return building.New() }, func(s table.Source) calculator.Calculator { return building.NewWithSource(s) }},
}

// Calculators returns every calculator over its built-in tables
func Calculators() []calculator.Calculator {
	return []calculator.Calculator{
		mastery.New(),
		charm.New(),
		gear.New(),
		heroxp.New(),
		pet.New(),
		building.New(),
		herogear.New(),
		heroshard.New(),
		herostats.New(),
		troop.New(),
		bear.New(),
	}
}

// Register adds every calculator to reg. Entries in overrides replace the
// built-in table of the calculator with the same name. Overrides that do
// not fit are reported and the built-in table is kept.
func Register(reg *calculator.Registry, overrides map[string]*table.Table) error {
	log := logging.Named("kingshot")
	var errs error

	for name := range overrides {
		if _, ok := replaceable[name]; !ok {
			errs = multierr.Append(errs, apperrors.Newf(apperrors.TypeConfig, "table %s does not replace any calculator table", name))
		}
	}

	for _, calc := range Calculators() {
		if r, ok := replaceable[calc.Name()]; ok {
			if tbl, ok := overrides[calc.Name()]; ok {
				if err := compatible(r.builtin(), tbl); err != nil {
					errs = multierr.Append(errs, err)
				} else {
					calc = r.with(tbl)
					log.Info("using loaded table", zap.String("calculator", calc.Name()))
				}
			}
		}
		if err := reg.RegisterSafe(calc); err != nil {
			errs = multierr.Append(errs, err)
		}
	}
	return errs
}

// compatible checks a replacement table against the built-in one
func compatible(builtin calculator.Calculator, tbl *table.Table) error {
	sourced, ok := builtin.(calculator.Sourced)
	if !ok {
		return apperrors.Newf(apperrors.TypeInternal, "calculator %s has no table", builtin.Name())
	}
	want, err := sourced.Source(nil)
	if err != nil {
		return err
	}
	if want.Kind() != tbl.Kind() {
		return apperrors.Newf(apperrors.TypeConfig, "table %s: want %s keys, got %s", tbl.Name(), want.Kind(), tbl.Kind())
	}
	var errs error
	for _, res := range want.Schema() {
		if !tbl.Schema().Has(res) {
			errs = multierr.Append(errs, apperrors.Newf(apperrors.TypeConfig, "table %s: missing resource %q", tbl.Name(), res))
		}
	}
	return errs
}

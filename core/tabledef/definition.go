// Package tabledef - Cost tables described in HCL or TOML files.
// Definitions are validated as a whole: every problem in a file is
// reported, not just the first.
package tabledef

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/multierr"

	"kingshot-calc/core/table"
	apperrors "kingshot-calc/internal/errors"
)

// Kind names accepted in files
const (
	KindLevels = "levels"
	KindTiers  = "tiers"
)

// Definition is one table as written in a file
type Definition struct {
	Name          string     `toml:"name"`
	Kind          string     `toml:"kind"`
	Lower         int        `toml:"lower"`
	Upper         int        `toml:"upper"`
	Schema        []string   `toml:"schema"`
	Interpolation string     `toml:"interpolation"`
	Levels        []LevelDef `toml:"level"`
	Tiers         []TierDef  `toml:"tier"`

	// Source is "file:line" of the definition
	Source string `toml:"-"`
}

// LevelDef is one level row
type LevelDef struct {
	Level int                    `toml:"level"`
	Cost  map[string]interface{} `toml:"cost"`
}

// TierDef is one tier row
type TierDef struct {
	ID    string                 `toml:"id"`
	Label string                 `toml:"label"`
	Cost  map[string]interface{} `toml:"cost"`
}

// Validate reports every problem in the definition
func (d Definition) Validate() error {
	var errs error
	where := d.Name
	if d.Source != "" {
		where = d.Name + " (" + d.Source + ")"
	}
	fail := func(format string, args ...interface{}) {
		errs = multierr.Append(errs, apperrors.Newf(apperrors.TypeParsing, "table %s: %s", where, fmt.Sprintf(format, args...)))
	}

	if d.Name == "" {
		fail("missing name")
	}
	if len(d.Schema) == 0 {
		fail("missing schema")
	}
	if _, ok := table.ParsePolicy(d.Interpolation); !ok {
		fail("unknown interpolation %q", d.Interpolation)
	}

	schema := table.NewSchema(d.Schema...)
	check := func(row string, cost map[string]interface{}) {
		if _, err := record(schema, cost); err != nil {
			fail("%s: %v", row, err)
		}
	}

	switch d.Kind {
	case KindLevels, "":
		if len(d.Tiers) > 0 {
			fail("level table has tier rows")
		}
		if d.Lower >= d.Upper {
			fail("lower %d must be below upper %d", d.Lower, d.Upper)
		}
		for _, l := range d.Levels {
			check(fmt.Sprintf("level %d", l.Level), l.Cost)
		}
	case KindTiers:
		if len(d.Levels) > 0 {
			fail("tier table has level rows")
		}
		for i, t := range d.Tiers {
			if t.ID == "" {
				fail("tier %d has no id", i)
			}
			check("tier "+t.ID, t.Cost)
		}
	default:
		fail("unknown kind %q", d.Kind)
	}
	return errs
}

// Build validates the definition and constructs the table
func (d Definition) Build() (*table.Table, error) {
	if err := d.Validate(); err != nil {
		return nil, err
	}
	schema := table.NewSchema(d.Schema...)

	if d.Kind == KindTiers {
		tiers := make([]table.Tier, 0, len(d.Tiers))
		for _, t := range d.Tiers {
			cost, _ := record(schema, t.Cost)
			tiers = append(tiers, table.Tier{ID: t.ID, Label: t.Label, Cost: cost})
		}
		tbl, err := table.NewTierTable(d.Name, schema, tiers)
		if err != nil {
			return nil, apperrors.Wrapf(apperrors.TypeParsing, err, "%s", d.Source)
		}
		return tbl, nil
	}

	rows := make([]table.LevelEntry, 0, len(d.Levels))
	for _, l := range d.Levels {
		cost, _ := record(schema, l.Cost)
		rows = append(rows, table.LevelEntry{Level: l.Level, Cost: cost})
	}
	sort.Slice(rows, func(i, j int) bool { return rows[i].Level < rows[j].Level })
	var opts []table.Option
	if policy, _ := table.ParsePolicy(d.Interpolation); policy != table.NoInterpolation {
		opts = append(opts, table.Sparse(policy))
	}
	tbl, err := table.NewLevelTable(d.Name, schema, d.Lower, d.Upper, rows, opts...)
	if err != nil {
		return nil, apperrors.Wrapf(apperrors.TypeParsing, err, "%s", d.Source)
	}
	return tbl, nil
}

// record converts a raw cost map into a schema record
func record(schema table.Schema, raw map[string]interface{}) (table.Record, error) {
	var errs error
	out := make(table.Record, len(raw))
	for name, v := range raw {
		res := table.Resource(name)
		if !schema.Has(res) {
			errs = multierr.Append(errs, fmt.Errorf("resource %q is not in the schema", name))
			continue
		}
		d, err := quantity(v)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s: %w", name, err))
			continue
		}
		if d.IsNegative() {
			errs = multierr.Append(errs, fmt.Errorf("%s: negative quantity %s", name, d))
			continue
		}
		out[res] = d
	}
	return out, errs
}

func quantity(v interface{}) (decimal.Decimal, error) {
	switch n := v.(type) {
	case int64:
		return decimal.NewFromInt(n), nil
	case int:
		return decimal.NewFromInt(int64(n)), nil
	case float64:
		return decimal.NewFromFloat(n), nil
	case decimal.Decimal:
		return n, nil
	case string:
		return decimal.NewFromString(strings.TrimSpace(n))
	default:
		return decimal.Zero, fmt.Errorf("unsupported value %v (%T)", v, v)
	}
}

// LoadFile reads every definition in a .hcl or .toml file
func LoadFile(path string) ([]Definition, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".hcl":
		return LoadHCL(path)
	case ".toml":
		return LoadTOML(path)
	default:
		return nil, apperrors.Newf(apperrors.TypeParsing, "%s: unsupported table file type", path)
	}
}

// LoadTables loads and builds every table in the given files. All
// failures across all files are combined into one error.
func LoadTables(paths ...string) (map[string]*table.Table, error) {
	out := make(map[string]*table.Table)
	var errs error
	for _, p := range paths {
		defs, err := LoadFile(p)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		for _, d := range defs {
			tbl, err := d.Build()
			if err != nil {
				errs = multierr.Append(errs, err)
				continue
			}
			if _, dup := out[d.Name]; dup {
				errs = multierr.Append(errs, apperrors.Newf(apperrors.TypeParsing, "table %s defined twice", d.Name))
				continue
			}
			out[d.Name] = tbl
		}
	}
	return out, errs
}

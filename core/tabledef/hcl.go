package tabledef

import (
	"fmt"
	"os"
	"strconv"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/shopspring/decimal"
	"github.com/zclconf/go-cty/cty"
	"go.uber.org/multierr"

	apperrors "kingshot-calc/internal/errors"
)

var fileSchema = &hcl.BodySchema{
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "table", LabelNames: []string{"name"}},
	},
}

var tableSchema = &hcl.BodySchema{
	Attributes: []hcl.AttributeSchema{
		{Name: "kind"},
		{Name: "lower"},
		{Name: "upper"},
		{Name: "schema", Required: true},
		{Name: "interpolation"},
	},
	Blocks: []hcl.BlockHeaderSchema{
		{Type: "level", LabelNames: []string{"level"}},
		{Type: "tier", LabelNames: []string{"id"}},
	},
}

// LoadHCL reads table blocks from an HCL file
func LoadHCL(path string) ([]Definition, error) {
	src, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.Wrapf(apperrors.TypeParsing, err, "read %s", path)
	}
	return ParseHCL(src, path)
}

// ParseHCL decodes table blocks:
//
//	table "pet" {
//	  schema        = ["food"]
//	  lower         = 1
//	  upper         = 100
//	  interpolation = "linear_floor"
//	  level "10" { food = 100 }
//	}
func ParseHCL(src []byte, filename string) ([]Definition, error) {
	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, diagError(diags)
	}

	content, diags := file.Body.Content(fileSchema)
	if diags.HasErrors() {
		return nil, diagError(diags)
	}

	var defs []Definition
	var errs error
	for _, block := range content.Blocks {
		def, err := decodeTable(block)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		defs = append(defs, def)
	}
	return defs, errs
}

func decodeTable(block *hcl.Block) (Definition, error) {
	def := Definition{
		Name:   block.Labels[0],
		Kind:   KindLevels,
		Source: fmt.Sprintf("%s:%d", block.DefRange.Filename, block.DefRange.Start.Line),
	}

	content, diags := block.Body.Content(tableSchema)
	if diags.HasErrors() {
		return def, diagError(diags)
	}

	var errs error
	attr := func(name string) (cty.Value, bool) {
		a, ok := content.Attributes[name]
		if !ok {
			return cty.NilVal, false
		}
		v, diags := a.Expr.Value(nil)
		if diags.HasErrors() {
			errs = multierr.Append(errs, diagError(diags))
			return cty.NilVal, false
		}
		return v, true
	}

	if v, ok := attr("kind"); ok {
		def.Kind, errs = str(v, "kind", errs)
	}
	if v, ok := attr("interpolation"); ok {
		def.Interpolation, errs = str(v, "interpolation", errs)
	}
	if v, ok := attr("lower"); ok {
		def.Lower, errs = integer(v, "lower", errs)
	}
	if v, ok := attr("upper"); ok {
		def.Upper, errs = integer(v, "upper", errs)
	}
	if v, ok := attr("schema"); ok {
		if !v.IsKnown() || v.IsNull() || !v.CanIterateElements() {
			errs = multierr.Append(errs, fmt.Errorf("schema must be a list of strings"))
		} else {
			for it := v.ElementIterator(); it.Next(); {
				_, e := it.Element()
				var name string
				name, errs = str(e, "schema", errs)
				def.Schema = append(def.Schema, name)
			}
		}
	}

	for _, b := range content.Blocks {
		cost, label, err := decodeRow(b)
		if err != nil {
			errs = multierr.Append(errs, err)
			continue
		}
		switch b.Type {
		case "level":
			n, err := strconv.Atoi(b.Labels[0])
			if err != nil {
				errs = multierr.Append(errs, fmt.Errorf("%s: level label %q is not an integer", b.DefRange, b.Labels[0]))
				continue
			}
			def.Levels = append(def.Levels, LevelDef{Level: n, Cost: cost})
		case "tier":
			def.Tiers = append(def.Tiers, TierDef{ID: b.Labels[0], Label: label, Cost: cost})
		}
	}
	if len(def.Tiers) > 0 && def.Kind == KindLevels {
		if _, set := content.Attributes["kind"]; !set {
			def.Kind = KindTiers
		}
	}

	if errs != nil {
		return def, apperrors.Wrapf(apperrors.TypeParsing, errs, "table %s (%s)", def.Name, def.Source)
	}
	return def, nil
}

// decodeRow reads a level or tier body. Every attribute is a resource
// quantity except "label".
func decodeRow(b *hcl.Block) (map[string]interface{}, string, error) {
	attrs, diags := b.Body.JustAttributes()
	if diags.HasErrors() {
		return nil, "", diagError(diags)
	}

	cost := make(map[string]interface{}, len(attrs))
	label := ""
	var errs error
	for name, a := range attrs {
		v, diags := a.Expr.Value(nil)
		if diags.HasErrors() {
			errs = multierr.Append(errs, diagError(diags))
			continue
		}
		if name == "label" {
			label, errs = str(v, "label", errs)
			continue
		}
		d, err := number(v)
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("%s: %s: %w", a.Range, name, err))
			continue
		}
		cost[name] = d
	}
	return cost, label, errs
}

// number converts a cty number or numeric string without going through
// float64
func number(v cty.Value) (decimal.Decimal, error) {
	if !v.IsKnown() || v.IsNull() {
		return decimal.Zero, fmt.Errorf("value is not known")
	}
	switch v.Type() {
	case cty.Number:
		return decimal.NewFromString(v.AsBigFloat().Text('f', -1))
	case cty.String:
		return decimal.NewFromString(v.AsString())
	default:
		return decimal.Zero, fmt.Errorf("expected a number, got %s", v.Type().FriendlyName())
	}
}

func str(v cty.Value, field string, errs error) (string, error) {
	if !v.IsKnown() || v.IsNull() || v.Type() != cty.String {
		return "", multierr.Append(errs, fmt.Errorf("%s must be a string", field))
	}
	return v.AsString(), errs
}

func integer(v cty.Value, field string, errs error) (int, error) {
	d, err := number(v)
	if err != nil || !d.IsInteger() {
		return 0, multierr.Append(errs, fmt.Errorf("%s must be an integer", field))
	}
	return int(d.IntPart()), errs
}

func diagError(diags hcl.Diagnostics) error {
	var errs error
	for _, d := range diags {
		if d.Severity != hcl.DiagError {
			continue
		}
		line := 0
		file := ""
		if d.Subject != nil {
			line = d.Subject.Start.Line
			file = d.Subject.Filename
		}
		errs = multierr.Append(errs, apperrors.Newf(apperrors.TypeParsing, "%s:%d: %s: %s", file, line, d.Summary, d.Detail))
	}
	return errs
}

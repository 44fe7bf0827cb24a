// Package validate checks calculator inputs before any table is read.
// Every function here is a pure predicate over its arguments.
package validate

import (
	"math"
	"strconv"
	"strings"

	"github.com/sahilm/fuzzy"
	"github.com/shopspring/decimal"

	"kingshot-calc/core/table"
	apperrors "kingshot-calc/internal/errors"
)

// maxSuggestions caps the "did you mean" list on UnknownKey errors
const maxSuggestions = 3

// Range checks lower <= current < target <= upper. Bounds are inclusive.
// Bounds are checked before ordering so an out-of-domain value is never
// reported as a mere ordering problem.
func Range(current, target, lower, upper int) error {
	if current < lower || current > upper {
		return apperrors.OutOfBounds("current", current, lower, upper)
	}
	if target < lower || target > upper {
		return apperrors.OutOfBounds("target", target, lower, upper)
	}
	if current >= target {
		return apperrors.InvalidRange(current, target)
	}
	return nil
}

// ParseNumber parses a decimal form value
func ParseNumber(field, raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero, apperrors.NotANumber(field, raw)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, apperrors.NotANumber(field, raw)
	}
	return d, nil
}

// ParseLevel parses a whole-number level. "7.0" is accepted, "7.5" is not.
func ParseLevel(field, raw string) (int, error) {
	s := strings.TrimSpace(raw)
	if n, err := strconv.Atoi(s); err == nil {
		return n, nil
	}
	d, err := ParseNumber(field, raw)
	if err != nil {
		return 0, err
	}
	if !d.IsInteger() {
		return 0, apperrors.NotANumber(field, raw)
	}
	if d.LessThan(minInt) || d.GreaterThan(maxInt) {
		return 0, apperrors.OutOfBounds(field, d, minInt, maxInt)
	}
	return int(d.IntPart()), nil
}

var (
	minInt = decimal.NewFromInt(math.MinInt)
	maxInt = decimal.NewFromInt(math.MaxInt)
)

// Number checks min <= v <= max for an auxiliary input such as an income
// rate or a slot count
func Number(field string, v, min, max decimal.Decimal) error {
	if v.LessThan(min) || v.GreaterThan(max) {
		return apperrors.OutOfBounds(field, v, min, max)
	}
	return nil
}

// Int is Number for integer inputs
func Int(field string, v, min, max int) error {
	if v < min || v > max {
		return apperrors.OutOfBounds(field, v, min, max)
	}
	return nil
}

// Resolver is the part of a tier table the validator needs
type Resolver interface {
	Resolve(name string) (int, bool)
	Names() []string
}

// Tier resolves a tier name to its position in the table's fixed order.
// An unresolvable name is UnknownKey, distinct from OutOfBounds.
func Tier(r Resolver, field, raw string) (int, error) {
	if strings.TrimSpace(raw) == "" {
		return 0, apperrors.UnknownKey(field, raw, nil)
	}
	if idx, ok := r.Resolve(raw); ok {
		return idx, nil
	}
	return 0, apperrors.UnknownKey(field, raw, Suggest(raw, r.Names()))
}

// Choice checks raw against a fixed set of names (pet type, rarity...)
// and returns the canonical spelling
func Choice(kind, raw string, options []string) (string, error) {
	want := strings.ToLower(strings.TrimSpace(raw))
	for _, o := range options {
		if strings.ToLower(o) == want {
			return o, nil
		}
	}
	return "", apperrors.UnknownKey(kind, raw, Suggest(raw, options))
}

// Key parses a progression key of either kind into an ordinal
func Key(src table.Source, r Resolver, field, raw string) (int, error) {
	if src.Kind() == table.Tiers {
		return Tier(r, field, raw)
	}
	return ParseLevel(field, raw)
}

// Suggest returns up to three close matches for name among options
func Suggest(name string, options []string) []string {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil
	}
	matches := fuzzy.Find(strings.ToLower(name), lowerAll(options))
	var out []string
	seen := make(map[string]bool)
	for _, m := range matches {
		o := options[m.Index]
		if seen[o] {
			continue
		}
		seen[o] = true
		out = append(out, o)
		if len(out) == maxSuggestions {
			break
		}
	}
	return out
}

func lowerAll(in []string) []string {
	out := make([]string, len(in))
	for i, s := range in {
		out[i] = strings.ToLower(s)
	}
	return out
}

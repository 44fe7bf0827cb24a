// Package building - True Gold command center upgrade calculator
// Cost model:
// - 50 named upgrade steps from 30-1 to TG 10
// - Each step costs wood, stone, ore, gold, jewels and construction time
// - Costs are shipped as compact strings ("20M 20M 4M 1M 26", "1d 19:12:00")
// - Build speed bonus shortens construction time
package building

import (
	"strconv"
	"strings"

	"github.com/shopspring/decimal"

	"kingshot-calc/core/table"
	apperrors "kingshot-calc/internal/errors"
)

const (
	Name = "building"

	MaxSpeedBonus = 99
	MaxDailyHours = 24
)

const (
	Wood    table.Resource = "wood"
	Stone   table.Resource = "stone"
	Ore     table.Resource = "ore"
	Gold    table.Resource = "gold"
	Jewels  table.Resource = "jewels"
	Seconds table.Resource = "seconds"
)

// Schema is the building cost record layout
var Schema = table.Schema{Wood, Stone, Ore, Gold, Jewels, Seconds}

// Row is one upgrade step as shipped
type Row struct {
	Level string
	Cost  string
	Time  string
}

// TrueGoldCommandCenter lists the command center upgrade steps in order
var TrueGoldCommandCenter = []Row{
	{"30-1", "20M 20M 4M 1M 26", "20:09:30"},
	{"30-2", "20M 20M 4M 1M 26", "20:09:30"},
	{"30-3", "20M 20M 4M 1M 26", "20:09:30"},
	{"30-4", "20M 20M 4M 1M 26", "20:09:30"},
	{"TG 1", "20M 20M 4M 1M 26", "20:09:30"},
	{"TG1-1", "21M 21M 4.3M 1M 31", "1d 01:55:00"},
	{"TG1-2", "21M 21M 4.3M 1M 31", "1d 01:55:00"},
	{"TG1-3", "21M 21M 4.3M 1M 31", "1d 01:55:00"},
	{"TG1-4", "21M 21M 4.3M 1M 31", "1d 01:55:00"},
	{"TG 2", "21M 21M 4.3M 1M 31", "1d 01:55:00"},
	{"TG2-1", "23M 23M 4.7M 1.1M 47", "1d 07:40:00"},
	{"TG2-2", "23M 23M 4.7M 1.1M 47", "1d 07:40:00"},
	{"TG2-3", "23M 23M 4.7M 1.1M 47", "1d 07:40:00"},
	{"TG2-4", "23M 23M 4.7M 1.1M 47", "1d 07:40:00"},
	{"TG 3", "23M 23M 4.7M 1.1M 47", "1d 07:40:00"},
	{"TG 3-1", "24M 24M 4.9M 1.2M 56", "1d 10:33:00"},
	{"TG 3-2", "24M 24M 4.9M 1.2M 56", "1d 10:33:00"},
	{"TG 3-3", "24M 24M 4.9M 1.2M 56", "1d 10:33:00"},
	{"TG 3-4", "24M 24M 4.9M 1.2M 56", "1d 10:33:00"},
	{"TG 4", "24M 24M 4.9M 1.2M 56", "1d 10:33:00"},
	{"TG 4-1", "25M 25M 5M 1.2M 67", "1d 16:31:00"},
	{"TG 4-2", "25M 25M 5M 1.2M 67", "1d 16:31:00"},
	{"TG 4-3", "25M 25M 5M 1.2M 67", "1d 16:31:00"},
	{"TG 4-4", "25M 25M 5M 1.2M 67", "1d 16:31:00"},
	{"TG 5", "25M 25M 5M 1.2M 67", "1d 16:31:00"},
	{"TG 5.1", "29M 29M 5.8M 1.4M 40 2", "1d 19:12:00"},
	{"TG 5.2", "29M 29M 5.8M 1.4M 40 2", "1d 19:12:00"},
	{"TG 5.3", "29M 29M 5.8M 1.4M 40 2", "1d 19:12:00"},
	{"TG 5.4", "29M 29M 5.8M 1.4M 40 2", "1d 19:12:00"},
	{"TG 6", "29M 29M 5.8M 1.4M 20 4", "1d 19:12:00"},
	{"TG 6.1", "32M 32M 6.5M 1.5M 48 3", "2d 03:50:00"},
	{"TG 6.2", "32M 32M 6.5M 1.5M 48 3", "2d 03:50:00"},
	{"TG 6.3", "32M 32M 6.5M 1.5M 48 3", "2d 03:50:00"},
	{"TG 6.4", "32M 32M 6.5M 1.5M 48 3", "2d 03:50:00"},
	{"TG 7", "32M 32M 6.5M 1.5M 24 6", "2d 03:50:00"},
	{"TG 7.1", "39M 39M 7.9M 1.9M 48 4", "2d 09:36:00"},
	{"TG 7.2", "39M 39M 7.9M 1.9M 48 4", "2d 09:36:00"},
	{"TG 7.3", "39M 39M 7.9M 1.9M 48 4", "2d 09:36:00"},
	{"TG 7.4", "39M 39M 7.9M 1.9M 48 4", "2d 09:36:00"},
	{"TG 8", "39M 39M 7.9M 1.9M 24 8", "2d 09:36:00"},
	{"TG 8.1", "43M 43M 8.7M 2.1M 56 6", "1d 13:26:00"},
	{"TG 8.2", "43M 43M 8.7M 2.1M 56 6", "1d 13:26:00"},
	{"TG 8.3", "43M 43M 8.7M 2.1M 56 6", "1d 13:26:00"},
	{"TG 8.4", "43M 43M 8.7M 2.1M 56 6", "1d 13:26:00"},
	{"TG 9", "43M 43M 8.7M 2.1M 28 12", "1d 13:26:00"},
	{"TG 9.1", "50M 50M 10M 2.5M 70 14", "2d 09:36:00"},
	{"TG 9.2", "50M 50M 10M 2.5M 70 14", "2d 09:36:00"},
	{"TG 9.3", "50M 50M 10M 2.5M 70 14", "2d 09:36:00"},
	{"TG 9.4", "50M 50M 10M 2.5M 70 14", "2d 09:36:00"},
	{"TG 10", "50M 50M 10M 2.5M 35 28", "2d 09:36:00"},
}

var suffixes = map[byte]decimal.Decimal{
	'K': decimal.NewFromInt(1_000),
	'M': decimal.NewFromInt(1_000_000),
	'B': decimal.NewFromInt(1_000_000_000),
}

// ParseAmount parses "4.3M", "750K", "26"
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	mult := decimal.NewFromInt(1)
	if n := len(s); n > 0 {
		if m, ok := suffixes[s[n-1]]; ok {
			mult = m
			s = s[:n-1]
		}
	}
	d, err := decimal.NewFromString(s)
	if err != nil || d.IsNegative() {
		return decimal.Zero, apperrors.Newf(apperrors.TypeParsing, "invalid amount %q", s)
	}
	return d.Mul(mult), nil
}

// ParseCost parses "wood stone ore gold jewels". Tokens past the fifth
// are not costed.
func ParseCost(s string) (table.Record, error) {
	parts := strings.Fields(s)
	if len(parts) < 5 {
		return nil, apperrors.Newf(apperrors.TypeParsing, "cost %q needs 5 amounts", s)
	}
	rec := table.Record{}
	for i, res := range []table.Resource{Wood, Stone, Ore, Gold} {
		v, err := ParseAmount(parts[i])
		if err != nil {
			return nil, err
		}
		rec[res] = v
	}
	jewels, err := strconv.ParseInt(parts[4], 10, 64)
	if err != nil || jewels < 0 {
		return nil, apperrors.Newf(apperrors.TypeParsing, "invalid jewel count %q", parts[4])
	}
	rec[Jewels] = decimal.NewFromInt(jewels)
	return rec, nil
}

// ParseDuration parses "20:09:30" or "1d 19:12:00" into seconds
func ParseDuration(s string) (int64, error) {
	s = strings.TrimSpace(s)
	var days int64
	if d, rest, ok := strings.Cut(s, "d "); ok {
		n, err := strconv.ParseInt(strings.TrimSpace(d), 10, 64)
		if err != nil || n < 0 {
			return 0, apperrors.Newf(apperrors.TypeParsing, "invalid duration %q", s)
		}
		days = n
		s = rest
	}

	parts := strings.Split(s, ":")
	if len(parts) == 0 || len(parts) > 3 {
		return 0, apperrors.Newf(apperrors.TypeParsing, "invalid duration %q", s)
	}
	var hms [3]int64
	for i, p := range parts {
		n, err := strconv.ParseInt(strings.TrimSpace(p), 10, 64)
		if err != nil || n < 0 {
			return 0, apperrors.Newf(apperrors.TypeParsing, "invalid duration %q", s)
		}
		hms[i] = n
	}
	return days*86400 + hms[0]*3600 + hms[1]*60 + hms[2], nil
}

// Tiers converts shipped rows into tier entries
func Tiers(rows []Row) ([]table.Tier, error) {
	out := make([]table.Tier, 0, len(rows))
	for _, r := range rows {
		cost, err := ParseCost(r.Cost)
		if err != nil {
			return nil, apperrors.Wrapf(apperrors.TypeParsing, err, "level %s", r.Level)
		}
		secs, err := ParseDuration(r.Time)
		if err != nil {
			return nil, apperrors.Wrapf(apperrors.TypeParsing, err, "level %s", r.Level)
		}
		cost[Seconds] = decimal.NewFromInt(secs)
		out = append(out, table.Tier{ID: r.Level, Label: r.Level, Cost: cost})
	}
	return out, nil
}

// Table builds the command center tier table
func Table() (*table.Table, error) {
	tiers, err := Tiers(TrueGoldCommandCenter)
	if err != nil {
		return nil, err
	}
	return table.NewTierTable(Name, Schema, tiers)
}

// Hours converts a seconds quantity to hours
func Hours(seconds decimal.Decimal) decimal.Decimal {
	return seconds.Div(decimal.NewFromInt(3600))
}

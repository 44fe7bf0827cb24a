// Package timeline turns accumulated totals into durations given an
// income rate, and formats them for display.
package timeline

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Unit is the period an income rate is expressed in
type Unit string

const (
	Month Unit = "month"
	Day   Unit = "day"
	Hour  Unit = "hour"
)

// Undefined renders a projection that has no income to divide by
const Undefined = "—"

// Projection is the number of periods needed to earn a total
type Projection struct {
	Periods decimal.Decimal `json:"periods"`
	Rate    decimal.Decimal `json:"rate"`
	Unit    Unit            `json:"unit"`
	Defined bool            `json:"defined"`
}

// Project divides total by rate. A rate of zero or less gives an
// undefined projection with zero periods instead of dividing.
func Project(total, rate decimal.Decimal, unit Unit) Projection {
	if !rate.IsPositive() {
		return Projection{Periods: decimal.Zero, Rate: rate, Unit: unit}
	}
	return Projection{Periods: total.Div(rate), Rate: rate, Unit: unit, Defined: true}
}

// String formats the projection per its unit
func (p Projection) String() string {
	if !p.Defined {
		return Undefined
	}
	switch p.Unit {
	case Day:
		return FormatDays(p.Periods)
	case Hour:
		return FormatHours(p.Periods)
	default:
		return FormatMonths(p.Periods)
	}
}

var (
	one    = decimal.NewFromInt(1)
	twelve = decimal.NewFromInt(12)
	thirty = decimal.NewFromInt(30)
	day    = decimal.NewFromInt(24)
	minute = decimal.NewFromInt(60)
)

// FormatMonths renders "< 1 month", "1 month", "4.5 months",
// "2 years", "1 year 3 months"
func FormatMonths(months decimal.Decimal) string {
	switch {
	case months.LessThan(one):
		return "< 1 month"
	case months.Equal(one):
		return "1 month"
	case months.LessThan(twelve):
		return months.StringFixed(1) + " months"
	}

	years := months.Div(twelve).Floor().IntPart()
	rem := months.Sub(decimal.NewFromInt(years).Mul(twelve)).Round(0).IntPart()
	if rem == 12 {
		years++
		rem = 0
	}
	if rem == 0 {
		return plural(years, "year")
	}
	return plural(years, "year") + " " + plural(rem, "month")
}

// FormatDays renders "< 1 day", "1 day", "12 days", "1 month",
// "2 months 4 days". Partial days round up.
func FormatDays(days decimal.Decimal) string {
	switch {
	case days.LessThan(one):
		return "< 1 day"
	case days.Equal(one):
		return "1 day"
	case days.LessThan(thirty):
		return plural(days.Ceil().IntPart(), "day")
	}

	months := days.Div(thirty).Floor().IntPart()
	rem := days.Sub(decimal.NewFromInt(months).Mul(thirty)).Ceil().IntPart()
	if rem == 30 {
		months++
		rem = 0
	}
	if rem == 0 {
		return plural(months, "month")
	}
	return plural(months, "month") + " " + plural(rem, "day")
}

// FormatHours renders construction time as "1d 19h 12m", "5h 30m" or "45m"
func FormatHours(hours decimal.Decimal) string {
	days := hours.Div(day).Floor().IntPart()
	hrs := hours.Mod(day).Floor().IntPart()
	mins := hours.Sub(hours.Floor()).Mul(minute).Floor().IntPart()

	switch {
	case days > 0:
		return fmt.Sprintf("%dd %dh %dm", days, hrs, mins)
	case hrs > 0:
		return fmt.Sprintf("%dh %dm", hrs, mins)
	default:
		return fmt.Sprintf("%dm", mins)
	}
}

func plural(n int64, unit string) string {
	if n == 1 {
		return "1 " + unit
	}
	return fmt.Sprintf("%d %ss", n, unit)
}

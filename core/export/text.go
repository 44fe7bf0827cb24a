package export

import (
	"bytes"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/shopspring/decimal"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"kingshot-calc/core/calculator"
	"kingshot-calc/core/table"
)

// TimeLayout is the layout of the Generated line
const TimeLayout = "2006-01-02 15:04:05"

// TextOptions configures the text report
type TextOptions struct {
	// Locale selects number grouping ("en", "de")
	Locale string

	// Breakdown includes the per-step section
	Breakdown bool

	// Now stamps the Generated line; time.Now when nil
	Now func() time.Time
}

// TextFormatter writes the "=== TITLE ===" report
type TextFormatter struct {
	printer   *message.Printer
	breakdown bool
	now       func() time.Time
}

// NewTextFormatter creates a text formatter
func NewTextFormatter(opts TextOptions) *TextFormatter {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	return &TextFormatter{printer: Printer(opts.Locale), breakdown: opts.Breakdown, now: now}
}

// Printer returns a number printer for a locale, English when the tag
// does not parse
func Printer(locale string) *message.Printer {
	tag, err := language.Parse(locale)
	if err != nil || locale == "" {
		tag = language.English
	}
	return message.NewPrinter(tag)
}

func (f *TextFormatter) Format() Format { return FormatText }

func (f *TextFormatter) Render(w io.Writer, report *calculator.Report) error {
	_, err := io.WriteString(w, Text(report, f.printer, f.breakdown, f.now()))
	return err
}

// Text renders a report with numbers grouped by p
func Text(report *calculator.Report, p *message.Printer, breakdown bool, now time.Time) string {
	var b bytes.Buffer
	fmt.Fprintf(&b, "=== %s ===\n\n", strings.ToUpper(report.Title))

	res := report.Result
	if res != nil {
		noun := "Level"
		if res.Kind == table.Tiers {
			noun = "Tier"
		}
		fmt.Fprintf(&b, "Current %s: %s\n", noun, res.Current.Label)
		fmt.Fprintf(&b, "Target %s: %s\n", noun, res.Target.Label)
		if res.Multiplier > 1 {
			fmt.Fprintf(&b, "Multiplier: %d\n", res.Multiplier)
		}
		if in := strings.TrimSpace(report.Input.Income); in != "" {
			fmt.Fprintf(&b, "Income: %s\n", in)
		}
		b.WriteString("\n")

		for _, r := range res.Schema {
			fmt.Fprintf(&b, "Total %s: %s\n", resourceLabel(r), FormatNumber(p, res.Totals.Get(r)))
		}
		if report.Timeline != nil {
			fmt.Fprintf(&b, "Timeline: %s\n", report.Timeline.String())
		}
		b.WriteString("\n")
	}

	if len(report.Details) > 0 {
		for _, d := range report.Details {
			fmt.Fprintf(&b, "%s: %s\n", d.Label, d.Value)
		}
		b.WriteString("\n")
	}

	if len(report.Milestones) > 0 {
		b.WriteString("=== MILESTONES ===\n")
		for _, m := range report.Milestones {
			fmt.Fprintf(&b, "Level %d: %s %s +%s\n", m.Level, m.Category, m.Stat, m.Value.String())
		}
		b.WriteString("\n")
	}

	if res != nil && breakdown && len(report.Buckets) > 0 {
		b.WriteString("=== PROGRESSION TIMELINE ===\n")
		for _, bucket := range report.Buckets {
			prefix := bucket.Label
			if res.Kind == table.Levels {
				prefix = "Levels " + prefix
			}
			fmt.Fprintf(&b, "%s: %s\n", prefix, costLine(p, res.Schema, bucket.Cost))
		}
		b.WriteString("\n")
	} else if res != nil && breakdown && len(res.Breakdown) > 0 {
		if res.Kind == table.Tiers {
			b.WriteString("=== TIER BREAKDOWN ===\n")
		} else {
			b.WriteString("=== LEVEL BREAKDOWN ===\n")
		}
		for _, step := range res.Breakdown {
			prefix := step.Key.Label
			if res.Kind == table.Levels {
				prefix = "Level " + prefix
			}
			fmt.Fprintf(&b, "%s: %s\n", prefix, costLine(p, res.Schema, step.Cost))
		}
		b.WriteString("\n")
	}

	if len(report.Tips) > 0 {
		b.WriteString("=== TIPS ===\n")
		for _, tip := range report.Tips {
			fmt.Fprintf(&b, "- %s\n", tip)
		}
		b.WriteString("\n")
	}

	fmt.Fprintf(&b, "Generated: %s\n", now.Format(TimeLayout))
	return b.String()
}

// costLine renders "110 hammers, 1 mythic gear". Zero fields are left
// out except the first.
func costLine(p *message.Printer, schema table.Schema, cost table.Record) string {
	var parts []string
	for i, r := range schema {
		v := cost.Get(r)
		if v.IsZero() && i > 0 {
			continue
		}
		parts = append(parts, FormatNumber(p, v)+" "+strings.ReplaceAll(string(r), "_", " "))
	}
	return strings.Join(parts, ", ")
}

// FormatNumber groups thousands; integers print exactly, fractions to
// two places
func FormatNumber(p *message.Printer, d decimal.Decimal) string {
	if d.IsInteger() {
		return p.Sprintf("%d", d.IntPart())
	}
	return p.Sprint(number.Decimal(d.InexactFloat64(), number.MaxFractionDigits(2)))
}

func resourceLabel(r table.Resource) string {
	return cases.Title(language.English).String(strings.ReplaceAll(string(r), "_", " "))
}

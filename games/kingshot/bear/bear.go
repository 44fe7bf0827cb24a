// Package bear - Bear pitfall event income calculator
// Income model:
// - monthly = events per month x hammers per event
// - yearly = monthly x 12, daily = monthly / 30
// - Compared against a 150-300 hammers/month baseline
// The monthly figure is the forgehammer income used by mastery.
package bear

import (
	"fmt"
	"strconv"

	"github.com/shopspring/decimal"

	"kingshot-calc/core/calculator"
	"kingshot-calc/core/validate"
)

const (
	Name = "bear"

	DefaultEvents  = 15
	DefaultHammers = 15

	MinEvents, MaxEvents   = 1, 31
	MinHammers, MaxHammers = 1, 100

	BaselineMin = 150
	BaselineMax = 300
)

// Estimate is the hammer income from bear pitfall events
type Estimate struct {
	EventsPerMonth  int             `json:"events_per_month"`
	HammersPerEvent int             `json:"hammers_per_event"`
	Monthly         decimal.Decimal `json:"monthly"`
	Yearly          decimal.Decimal `json:"yearly"`
	Daily           decimal.Decimal `json:"daily"`
	AboveBaseline   bool            `json:"above_baseline"`
}

// Baseline renders the baseline comparison line
func (e Estimate) Baseline() string {
	if e.AboveBaseline {
		return fmt.Sprintf("✓ Above baseline (%d-%d)", BaselineMin, BaselineMax)
	}
	return fmt.Sprintf("⚠ Below baseline (%d-%d)", BaselineMin, BaselineMax)
}

// Income computes the estimate from validated counts
func Income(events, hammers int) Estimate {
	monthly := decimal.NewFromInt(int64(events * hammers))
	return Estimate{
		EventsPerMonth:  events,
		HammersPerEvent: hammers,
		Monthly:         monthly,
		Yearly:          monthly.Mul(decimal.NewFromInt(12)),
		Daily:           monthly.Div(decimal.NewFromInt(30)),
		AboveBaseline:   monthly.GreaterThanOrEqual(decimal.NewFromInt(BaselineMin)),
	}
}

// Parse validates raw event and hammer counts. Blank values take the
// defaults.
func Parse(events, hammers string) (int, int, error) {
	e, err := count("events", events, DefaultEvents, MinEvents, MaxEvents)
	if err != nil {
		return 0, 0, err
	}
	h, err := count("hammers", hammers, DefaultHammers, MinHammers, MaxHammers)
	if err != nil {
		return 0, 0, err
	}
	return e, h, nil
}

func count(field, raw string, def, lo, hi int) (int, error) {
	if raw == "" {
		return def, nil
	}
	n, err := validate.ParseLevel(field, raw)
	if err != nil {
		return 0, err
	}
	if err := validate.Int(field, n, lo, hi); err != nil {
		return 0, err
	}
	return n, nil
}

// Tips are the bear pitfall strategy notes
var Tips = []string{
	"Event Frequency: Bear Pitfall occurs approximately every 2 days (15 events/month)",
	"Hero Selection: Cavalry: Amadeus, Helga | Infantry: Chenko, Yeonwoo",
	"Formation Strategy: 80% Archers, 10% Cavalry, 10% Infantry",
	"City Buffs: Maximize Governor ATK, Troop ATK, and Troop Defense buffs before events",
	fmt.Sprintf("Target Baseline: Aim for %d-%d+ hammers per month", BaselineMin, BaselineMax),
}

// Calculator exposes the estimate through the registry.
// Options: "events", "hammers".
type Calculator struct{}

// New creates a bear pitfall calculator
func New() *Calculator {
	return &Calculator{}
}

// Name returns the registry key
func (c *Calculator) Name() string { return Name }

// Title returns the report heading
func (c *Calculator) Title() string { return "Bear Pitfall Event Calculator" }

// Description returns a one-line summary
func (c *Calculator) Description() string {
	return "Monthly forgehammer income from bear pitfall events"
}

// Calculate estimates the income
func (c *Calculator) Calculate(in calculator.Input) (*calculator.Report, error) {
	events, hammers, err := Parse(in.Option("events", ""), in.Option("hammers", ""))
	if err != nil {
		return nil, err
	}
	est := Income(events, hammers)

	report := &calculator.Report{
		Calculator: Name,
		Title:      c.Title(),
		Input:      in,
		Tips:       append([]string(nil), Tips...),
	}
	report.AddDetail("Events Per Month", strconv.Itoa(est.EventsPerMonth))
	report.AddDetail("Hammers Per Event", strconv.Itoa(est.HammersPerEvent))
	report.AddDetail("Monthly Total", est.Monthly.String()+" hammers")
	report.AddDetail("Yearly Total", est.Yearly.String()+" hammers")
	report.AddDetail("Daily Average", est.Daily.StringFixed(1)+" hammers/day")
	report.AddDetail("Baseline Comparison", est.Baseline())
	return report, nil
}

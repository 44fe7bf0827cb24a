package building

import (
	"github.com/shopspring/decimal"

	"kingshot-calc/core/calculator"
	"kingshot-calc/core/table"
	"kingshot-calc/core/timeline"
	"kingshot-calc/core/validate"
)

// speedSource scales construction time by a build speed bonus
type speedSource struct {
	table.Source
	factor decimal.Decimal
}

func (s speedSource) CostAt(ordinal int) (table.Record, error) {
	cost, err := s.Source.CostAt(ordinal)
	if err != nil {
		return nil, err
	}
	cost[Seconds] = cost.Get(Seconds).Mul(s.factor)
	return cost, nil
}

func (s speedSource) Resolve(name string) (int, bool) {
	if r, ok := s.Source.(validate.Resolver); ok {
		return r.Resolve(name)
	}
	return 0, false
}

func (s speedSource) Names() []string {
	if r, ok := s.Source.(validate.Resolver); ok {
		return r.Names()
	}
	return nil
}

// Calculator is the command center upgrade calculator
type Calculator struct {
	source table.Source
}

// New creates a building calculator over the built-in table
func New() *Calculator {
	tbl, err := Table()
	if err != nil {
		panic(err)
	}
	return &Calculator{source: tbl}
}

// NewWithSource creates a building calculator over a replacement table
func NewWithSource(src table.Source) *Calculator {
	return &Calculator{source: src}
}

// Name returns the registry key
func (c *Calculator) Name() string { return Name }

// Title returns the report heading
func (c *Calculator) Title() string { return "Building Upgrade Calculator" }

// Description returns a one-line summary
func (c *Calculator) Description() string {
	return "Resources and construction time for True Gold command center upgrades"
}

// Source returns the upgrade table
func (c *Calculator) Source(map[string]string) (table.Source, error) {
	return c.source, nil
}

// Calculate runs an upgrade range. Option "speed" is the build speed
// bonus percent; Income, when given, is build hours per day.
func (c *Calculator) Calculate(in calculator.Input) (*calculator.Report, error) {
	bonus := decimal.Zero
	if raw := in.Option("speed", ""); raw != "" {
		var err error
		if bonus, err = validate.ParseNumber("speed", raw); err != nil {
			return nil, err
		}
		if err := validate.Number("speed", bonus, decimal.Zero, decimal.NewFromInt(MaxSpeedBonus)); err != nil {
			return nil, err
		}
	}

	var daily decimal.Decimal
	projected := in.Income != ""
	if projected {
		var err error
		if daily, err = validate.ParseNumber("income", in.Income); err != nil {
			return nil, err
		}
		if err := validate.Number("income", daily, decimal.Zero, decimal.NewFromInt(MaxDailyHours)); err != nil {
			return nil, err
		}
	}

	factor := decimal.NewFromInt(1).Sub(bonus.Div(decimal.NewFromInt(100)))
	res, _, err := calculator.Run(calculator.RangeSpec{
		Source: speedSource{Source: c.source, factor: factor},
		Input:  in,
	})
	if err != nil {
		return nil, err
	}

	hours := Hours(res.Total(Seconds))
	report := &calculator.Report{
		Calculator: Name,
		Title:      c.Title(),
		Input:      in,
		Result:     res,
	}
	if projected {
		p := timeline.Project(hours, daily, timeline.Day)
		report.Timeline = &p
	}
	report.AddDetail("Building", "True Gold Command Center")
	report.AddDetail("Construction Time", timeline.FormatHours(hours))
	if bonus.IsPositive() {
		report.AddDetail("Build Speed Bonus", bonus.String()+"%")
	}
	return report, nil
}

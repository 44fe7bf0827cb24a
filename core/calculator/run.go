package calculator

import (
	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	"kingshot-calc/core/accumulate"
	"kingshot-calc/core/table"
	"kingshot-calc/core/timeline"
	"kingshot-calc/core/validate"
	apperrors "kingshot-calc/internal/errors"
	"kingshot-calc/internal/logging"
)

// RangeSpec describes one range calculation
type RangeSpec struct {
	Source table.Source
	Input  Input

	// MaxMultiplier bounds Input.Multiplier; zero means no multiplier
	MaxMultiplier int

	// IncomeUnit enables the timeline; empty skips income entirely
	IncomeUnit timeline.Unit
	IncomeMax  decimal.Decimal
	Projected  table.Resource
}

// Run parses and validates the input, then accumulates and projects.
// Nothing reads the source's costs until every check has passed.
func Run(rs RangeSpec) (*accumulate.Result, *timeline.Projection, error) {
	log := logging.Named("calculator").With(zap.String("source", rs.Source.Name()))

	req, income, err := check(rs)
	if err != nil {
		log.Debug("rejected",
			zap.String("type", string(apperrors.TypeOf(err))),
			zap.Error(err))
		return nil, nil, err
	}

	result := accumulate.Accumulate(rs.Source, req)

	var projection *timeline.Projection
	if rs.IncomeUnit != "" {
		p := timeline.Project(result.Total(rs.Projected), income, rs.IncomeUnit)
		projection = &p
	}

	log.Debug("accumulated",
		zap.String("current", result.Current.Label),
		zap.String("target", result.Target.Label),
		zap.Int("multiplier", result.Multiplier),
		zap.Int("steps", len(result.Breakdown)))
	return result, projection, nil
}

func check(rs RangeSpec) (accumulate.Request, decimal.Decimal, error) {
	src := rs.Source
	resolver, _ := src.(validate.Resolver)
	lower, upper := src.Bounds()

	var current, target int
	var err error
	if src.Kind() == table.Tiers && resolver != nil {
		if current, err = validate.Tier(resolver, "current", rs.Input.Current); err != nil {
			return accumulate.Request{}, decimal.Zero, err
		}
		if target, err = validate.Tier(resolver, "target", rs.Input.Target); err != nil {
			return accumulate.Request{}, decimal.Zero, err
		}
	} else {
		if current, err = validate.ParseLevel("current", rs.Input.Current); err != nil {
			return accumulate.Request{}, decimal.Zero, err
		}
		if target, err = validate.ParseLevel("target", rs.Input.Target); err != nil {
			return accumulate.Request{}, decimal.Zero, err
		}
	}
	if err := validate.Range(current, target, lower, upper); err != nil {
		return accumulate.Request{}, decimal.Zero, err
	}

	mult := 1
	if rs.MaxMultiplier > 0 {
		mult = rs.Input.Multiplier
		if mult == 0 {
			mult = 1
		}
		if err := validate.Int("multiplier", mult, 1, rs.MaxMultiplier); err != nil {
			return accumulate.Request{}, decimal.Zero, err
		}
	}

	income := decimal.Zero
	if rs.IncomeUnit != "" {
		if income, err = validate.ParseNumber("income", rs.Input.Income); err != nil {
			return accumulate.Request{}, decimal.Zero, err
		}
		if err := validate.Number("income", income, decimal.Zero, rs.IncomeMax); err != nil {
			return accumulate.Request{}, decimal.Zero, err
		}
	}

	return accumulate.Request{Current: current, Target: target, Multiplier: mult}, income, nil
}

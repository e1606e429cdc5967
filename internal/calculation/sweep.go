package calculation

import (
	"fmt"

	"github.com/rgehrsitz/bdtax/internal/domain"
	"github.com/shopspring/decimal"
)

// MaxSweepPoints bounds the number of incomes a single sweep may evaluate
const MaxSweepPoints = 10000

// SweepPoint is the tax outcome at one income in a sweep
type SweepPoint struct {
	Income        decimal.Decimal `yaml:"income" json:"income"`
	TotalTax      decimal.Decimal `yaml:"total_tax" json:"totalTax"`
	EffectiveRate decimal.Decimal `yaml:"effective_rate" json:"effectiveRate"`
	MarginalRate  decimal.Decimal `yaml:"marginal_rate" json:"marginalRate"`
}

// MarginalRate is the rate of the highest bracket the result reached
func MarginalRate(result domain.TaxCalculationResult) decimal.Decimal {
	if len(result.Breakdown) == 0 {
		return decimal.Zero
	}
	return result.Breakdown[len(result.Breakdown)-1].Rate
}

// Sweep evaluates the tax at from, from+step, ... up to and including to
func Sweep(from, to, step decimal.Decimal, brackets []domain.TaxBracket) ([]SweepPoint, error) {
	if !step.IsPositive() {
		return nil, fmt.Errorf("sweep step must be positive, got %s", step.String())
	}
	if to.LessThan(from) {
		return nil, fmt.Errorf("sweep end %s is below start %s", to.String(), from.String())
	}
	// compare in decimal; IntPart wraps for spans past int64
	span := to.Sub(from).Div(step).Floor()
	if span.GreaterThanOrEqual(decimal.NewFromInt(MaxSweepPoints)) {
		return nil, fmt.Errorf("sweep would evaluate %s incomes, limit is %d", span.Add(decimal.NewFromInt(1)).String(), MaxSweepPoints)
	}
	count := span.IntPart() + 1

	points := make([]SweepPoint, 0, count)
	for income := from; income.LessThanOrEqual(to); income = income.Add(step) {
		result := CalculateTax(income, brackets)
		points = append(points, SweepPoint{
			Income:        income,
			TotalTax:      result.TotalTax,
			EffectiveRate: result.EffectiveRate,
			MarginalRate:  MarginalRate(result),
		})
	}
	return points, nil
}

package breakeven

import (
	"fmt"

	"github.com/rgehrsitz/bdtax/internal/calculation"
	"github.com/rgehrsitz/bdtax/internal/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// slabFn returns how much of the goal figure a slab of the given rate yields
// per unit of income, as a percentage
type slabFn func(rate decimal.Decimal) decimal.Decimal

func taxSlope(rate decimal.Decimal) decimal.Decimal      { return rate }
func takeHomeSlope(rate decimal.Decimal) decimal.Decimal { return hundred.Sub(rate) }

// Solve finds the smallest annual income whose tax (or take-home pay) reaches
// req.Target. Tax and take-home pay are piecewise linear in income, so the
// inverse is found exactly by walking the brackets.
func Solve(req Request) (*Result, error) {
	if err := calculation.ValidateBrackets(req.Brackets); err != nil {
		return nil, &BreakEvenError{Operation: "solve", Message: "invalid brackets", Cause: err}
	}
	if req.Target.IsNegative() {
		return nil, &BreakEvenError{Operation: "solve", Message: fmt.Sprintf("target %s must not be negative", req.Target.String())}
	}

	var slope slabFn
	switch req.Goal {
	case GoalTotalTax:
		slope = taxSlope
	case GoalTakeHome:
		slope = takeHomeSlope
	default:
		return nil, &BreakEvenError{Operation: "solve", Message: fmt.Sprintf("unsupported goal: %s", req.Goal)}
	}

	income, ok := invert(req.Target, req.Brackets, slope)
	if !ok {
		return nil, &BreakEvenError{
			Operation: "solve",
			Message:   fmt.Sprintf("%s of %s is not reachable with these brackets", req.Goal, req.Target.String()),
		}
	}
	income = income.Round(2)

	result := calculation.CalculateTax(income, req.Brackets)
	return &Result{
		Goal:         req.Goal,
		Target:       req.Target,
		Income:       income,
		MonthlyGross: income.Div(decimal.NewFromInt(12)).Round(2),
		Calculation:  result,
	}, nil
}

// invert walks the brackets accumulating the goal figure until the slab
// containing target is found, then interpolates inside it
func invert(target decimal.Decimal, brackets []domain.TaxBracket, slope slabFn) (decimal.Decimal, bool) {
	if target.IsZero() {
		return decimal.Zero, true
	}

	previous := decimal.Zero
	reached := decimal.Zero
	for _, b := range brackets {
		s := slope(b.Rate)

		if b.IsUnbounded() {
			if !s.IsPositive() {
				return decimal.Zero, false
			}
			return previous.Add(target.Sub(reached).Mul(hundred).Div(s)), true
		}

		width := b.UpperLimit.Sub(previous)
		gained := width.Mul(s).Div(hundred)
		if s.IsPositive() && target.LessThanOrEqual(reached.Add(gained)) {
			return previous.Add(target.Sub(reached).Mul(hundred).Div(s)), true
		}

		reached = reached.Add(gained)
		previous = *b.UpperLimit
	}
	return decimal.Zero, false
}

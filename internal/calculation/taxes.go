package calculation

import (
	"github.com/rgehrsitz/bdtax/internal/domain"
	"github.com/shopspring/decimal"
)

// TAX CALCULATION ASSUMPTIONS:
//
// 1. Brackets are cumulative: each UpperLimit is a total-income threshold,
//    not a slab size. The slab size is UpperLimit minus the previous limit.
//
// 2. The final bracket has no UpperLimit and absorbs whatever income remains.
//
// 3. Only the aggregate figures are rounded: TotalTax to whole units and
//    EffectiveRate to two decimal places. Breakdown rows keep full precision,
//    so independently rounded rows may not add up to the displayed total.
//
// 4. Brackets are trusted as given. CalculateTax does not check ordering or
//    the single unbounded bracket; use ValidateBrackets before calling it with
//    a table that came from outside the program.

var hundred = decimal.NewFromInt(100)

// bracketFold is the running state while walking the bracket table
type bracketFold struct {
	remaining     decimal.Decimal
	previousLimit decimal.Decimal
	totalTax      decimal.Decimal
	breakdown     []domain.TaxBreakdownItem
}

// exhausted reports whether all income has been assigned to a bracket
func (f bracketFold) exhausted() bool {
	return f.remaining.LessThanOrEqual(decimal.Zero)
}

// step assigns as much remaining income as fits into bracket b
func (f bracketFold) step(b domain.TaxBracket) bracketFold {
	bracketSize := f.remaining
	if b.UpperLimit != nil {
		bracketSize = b.UpperLimit.Sub(f.previousLimit)
	}

	taxable := decimal.Min(f.remaining, bracketSize)
	tax := taxable.Mul(b.Rate).Div(hundred)

	if taxable.IsPositive() {
		f.breakdown = append(f.breakdown, domain.TaxBreakdownItem{
			Bracket:       b.Description,
			TaxableAmount: taxable,
			Rate:          b.Rate,
			Tax:           tax,
		})
	}

	f.totalTax = f.totalTax.Add(tax)
	f.remaining = f.remaining.Sub(taxable)
	if b.UpperLimit != nil {
		f.previousLimit = *b.UpperLimit
	}
	return f
}

// CalculateTax computes progressive income tax on annualIncome using brackets.
//
// Non-positive income yields the zero result. brackets must be ordered by
// ascending UpperLimit and end with exactly one unbounded bracket; a table
// that breaks this produces an unspecified (but non-panicking) result.
func CalculateTax(annualIncome decimal.Decimal, brackets []domain.TaxBracket) domain.TaxCalculationResult {
	if annualIncome.LessThanOrEqual(decimal.Zero) {
		return domain.TaxCalculationResult{
			AnnualIncome:  decimal.Zero,
			TotalTax:      decimal.Zero,
			EffectiveRate: decimal.Zero,
			Breakdown:     []domain.TaxBreakdownItem{},
		}
	}

	acc := bracketFold{
		remaining:     annualIncome,
		previousLimit: decimal.Zero,
		totalTax:      decimal.Zero,
		breakdown:     make([]domain.TaxBreakdownItem, 0, len(brackets)),
	}
	for _, b := range brackets {
		if acc.exhausted() {
			break
		}
		acc = acc.step(b)
	}

	effectiveRate := decimal.Zero
	if annualIncome.IsPositive() {
		effectiveRate = acc.totalTax.Mul(hundred).Div(annualIncome)
	}

	return domain.TaxCalculationResult{
		AnnualIncome:  annualIncome,
		TotalTax:      acc.totalTax.Round(0),
		EffectiveRate: effectiveRate.Round(2),
		Breakdown:     acc.breakdown,
	}
}

// BracketTaxCalculator binds a bracket table to CalculateTax and logs each step
type BracketTaxCalculator struct {
	Config domain.TaxConfig
	Logger Logger
}

// NewBracketTaxCalculator creates a calculator for the given table
func NewBracketTaxCalculator(config domain.TaxConfig) *BracketTaxCalculator {
	return &BracketTaxCalculator{
		Config: config,
		Logger: NopLogger{},
	}
}

// SetLogger sets the logger; nil installs a no-op logger
func (btc *BracketTaxCalculator) SetLogger(l Logger) {
	if l == nil {
		btc.Logger = NopLogger{}
		return
	}
	btc.Logger = l
}

// Calculate computes tax on an annual income with the calculator's table
func (btc *BracketTaxCalculator) Calculate(annualIncome decimal.Decimal) domain.TaxCalculationResult {
	result := CalculateTax(annualIncome, btc.Config.Brackets)

	btc.Logger.Debugf("FY %s: income=%s brackets=%d", btc.Config.FiscalYear, annualIncome.String(), len(btc.Config.Brackets))
	for _, item := range result.Breakdown {
		btc.Logger.Debugf("  %s: %s @ %s%% = %s", item.Bracket, item.TaxableAmount.String(), item.Rate.String(), item.Tax.String())
	}
	btc.Logger.Debugf("total=%s effective=%s%%", result.TotalTax.String(), result.EffectiveRate.String())

	return result
}

// CalculateMonthly annualizes a monthly income and computes tax on it
func (btc *BracketTaxCalculator) CalculateMonthly(monthlyIncome decimal.Decimal) domain.TaxCalculationResult {
	return btc.Calculate(domain.AnnualFromMonthly(monthlyIncome))
}

package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// TaxBracket is one slab of a progressive income tax table.
// UpperLimit is the cumulative income threshold where the slab ends; nil marks
// the unbounded final slab.
type TaxBracket struct {
	UpperLimit  *decimal.Decimal `yaml:"upper_limit" json:"upperLimit"`
	Rate        decimal.Decimal  `yaml:"rate" json:"rate"` // percentage, e.g. 5 for 5%
	Description string           `yaml:"description" json:"description"`
}

// IsUnbounded reports whether the bracket has no upper limit
func (b TaxBracket) IsUnbounded() bool {
	return b.UpperLimit == nil
}

// TaxConfig is a complete bracket table for one fiscal year
type TaxConfig struct {
	FiscalYear string       `yaml:"fiscal_year" json:"fiscalYear"`
	Currency   string       `yaml:"currency" json:"currency"`
	Brackets   []TaxBracket `yaml:"brackets" json:"brackets"`
}

// TaxBreakdownItem is the portion of income taxed inside a single bracket
type TaxBreakdownItem struct {
	Bracket       string          `yaml:"bracket" json:"bracket"`
	TaxableAmount decimal.Decimal `yaml:"taxable_amount" json:"taxableAmount"`
	Rate          decimal.Decimal `yaml:"rate" json:"rate"`
	Tax           decimal.Decimal `yaml:"tax" json:"tax"`
}

// TaxCalculationResult holds the outcome of a bracket tax calculation.
// TotalTax is rounded to whole currency units and EffectiveRate to two
// decimal places; breakdown values are left unrounded.
type TaxCalculationResult struct {
	AnnualIncome  decimal.Decimal    `yaml:"annual_income" json:"annualIncome"`
	TotalTax      decimal.Decimal    `yaml:"total_tax" json:"totalTax"`
	EffectiveRate decimal.Decimal    `yaml:"effective_rate" json:"effectiveRate"`
	Breakdown     []TaxBreakdownItem `yaml:"breakdown" json:"breakdown"`
}

var monthsPerYear = decimal.NewFromInt(12)

// MonthlyTax spreads the annual tax evenly over twelve months, rounded to whole units
func (r TaxCalculationResult) MonthlyTax() decimal.Decimal {
	if !r.TotalTax.IsPositive() {
		return decimal.Zero
	}
	return r.TotalTax.Div(monthsPerYear).Round(0)
}

// AnnualFromMonthly converts a monthly figure to the annual figure the calculator expects
func AnnualFromMonthly(monthly decimal.Decimal) decimal.Decimal {
	return monthly.Mul(monthsPerYear)
}

// ParseAmount parses a user-entered amount. Thousands separators (western or
// lakh style) and surrounding spaces are ignored; an empty string is zero.
func ParseAmount(s string) (decimal.Decimal, error) {
	cleaned := strings.ReplaceAll(strings.TrimSpace(s), ",", "")
	if cleaned == "" {
		return decimal.Zero, nil
	}
	d, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero, fmt.Errorf("not a number: %s", s)
	}
	return d, nil
}

package compare

import (
	"fmt"

	"github.com/rgehrsitz/bdtax/internal/calculation"
	"github.com/rgehrsitz/bdtax/internal/domain"
	"github.com/shopspring/decimal"
)

var hundred = decimal.NewFromInt(100)

// ComparisonResult is the tax one bracket table levies on the compared income
type ComparisonResult struct {
	TableName  string                      `json:"tableName"`
	FiscalYear string                      `json:"fiscalYear"`
	Result     domain.TaxCalculationResult `json:"-"`

	// Key Metrics
	TotalTax      decimal.Decimal `json:"totalTax"`
	MonthlyTax    decimal.Decimal `json:"monthlyTax"`
	EffectiveRate decimal.Decimal `json:"effectiveRate"`
	MarginalRate  decimal.Decimal `json:"marginalRate"`
	TakeHome      decimal.Decimal `json:"takeHome"`

	// Comparison to Base
	TaxDiffFromBase decimal.Decimal `json:"taxDiffFromBase"`
	TaxPctFromBase  decimal.Decimal `json:"taxPctFromBase"`
}

// ComparisonSet is one income evaluated under a base table and its alternatives
type ComparisonSet struct {
	Income             decimal.Decimal    `json:"income"`
	Currency           string             `json:"currency"`
	BaseResult         *ComparisonResult  `json:"baseResult"`
	AlternativeResults []ComparisonResult `json:"alternativeResults"`
	Notes              []string           `json:"notes"`
}

// MetricsCalculator extracts comparison metrics from calculation results
type MetricsCalculator struct{}

// NewMetricsCalculator creates a new metrics calculator
func NewMetricsCalculator() *MetricsCalculator {
	return &MetricsCalculator{}
}

// CalculateMetrics computes the metrics of a single table's result
func (mc *MetricsCalculator) CalculateMetrics(name string, cfg domain.TaxConfig, result domain.TaxCalculationResult) ComparisonResult {
	return ComparisonResult{
		TableName:     name,
		FiscalYear:    cfg.FiscalYear,
		Result:        result,
		TotalTax:      result.TotalTax,
		MonthlyTax:    result.MonthlyTax(),
		EffectiveRate: result.EffectiveRate,
		MarginalRate:  calculation.MarginalRate(result),
		TakeHome:      result.AnnualIncome.Sub(result.TotalTax),
	}
}

// CalculateComparison computes how an alternative differs from the base.
// The percentage is left at zero when the base levies no tax.
func (mc *MetricsCalculator) CalculateComparison(alt, base ComparisonResult) ComparisonResult {
	alt.TaxDiffFromBase = alt.TotalTax.Sub(base.TotalTax)
	if !base.TotalTax.IsZero() {
		alt.TaxPctFromBase = alt.TaxDiffFromBase.Mul(hundred).Div(base.TotalTax).Round(2)
	}
	return alt
}

// Label names a result for display, e.g. "built-in (FY 2024-2025)"
func (r ComparisonResult) Label() string {
	if r.FiscalYear == "" {
		return r.TableName
	}
	return fmt.Sprintf("%s (FY %s)", r.TableName, r.FiscalYear)
}

// GenerateNotes summarizes which table is cheapest for the income
func GenerateNotes(compSet *ComparisonSet) []string {
	notes := []string{}
	if compSet.BaseResult == nil || len(compSet.AlternativeResults) == 0 {
		return notes
	}

	lowest := compSet.BaseResult
	highest := compSet.BaseResult
	for i := range compSet.AlternativeResults {
		alt := &compSet.AlternativeResults[i]
		if alt.TotalTax.LessThan(lowest.TotalTax) {
			lowest = alt
		}
		if alt.TotalTax.GreaterThan(highest.TotalTax) {
			highest = alt
		}
	}

	if lowest.TotalTax.Equal(highest.TotalTax) {
		return append(notes, "All tables levy the same tax on this income")
	}

	notes = append(notes,
		fmt.Sprintf("Lowest tax: %s at %s %s", lowest.Label(), compSet.Currency, lowest.TotalTax.StringFixed(0)),
		fmt.Sprintf("Highest tax: %s, %s %s more", highest.Label(), compSet.Currency, highest.TotalTax.Sub(lowest.TotalTax).StringFixed(0)),
	)
	return notes
}

package calculation

import (
	"fmt"
	"testing"

	"github.com/rgehrsitz/bdtax/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func assertDecimalEqual(t *testing.T, expected string, actual decimal.Decimal, msgAndArgs ...interface{}) {
	t.Helper()
	want := decimal.RequireFromString(expected)
	label := ""
	if len(msgAndArgs) > 0 {
		label = fmt.Sprintf(msgAndArgs[0].(string), msgAndArgs[1:]...) + ": "
	}
	assert.True(t, want.Equal(actual), "%sexpected %s, got %s", label, want.String(), actual.String())
}

func sumTaxable(items []domain.TaxBreakdownItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.TaxableAmount)
	}
	return total
}

func TestCalculateTax_NonPositiveIncome(t *testing.T) {
	brackets := DefaultTaxConfig().Brackets

	for _, income := range []string{"0", "-1", "-0.01", "-5000000"} {
		t.Run(income, func(t *testing.T) {
			result := CalculateTax(decimal.RequireFromString(income), brackets)

			assert.True(t, result.AnnualIncome.IsZero(), "income should normalize to zero")
			assert.True(t, result.TotalTax.IsZero())
			assert.True(t, result.EffectiveRate.IsZero())
			assert.NotNil(t, result.Breakdown, "breakdown should be an empty list, not nil")
			assert.Empty(t, result.Breakdown)
		})
	}
}

func TestCalculateTax_StandardScenarios(t *testing.T) {
	type row struct {
		taxable string
		rate    string
		tax     string
	}

	tests := []struct {
		name          string
		income        int64
		totalTax      string
		effectiveRate string
		breakdown     []row
	}{
		{
			name:          "tax-free threshold",
			income:        350000,
			totalTax:      "0",
			effectiveRate: "0",
			breakdown:     []row{{"350000", "0", "0"}},
		},
		{
			name:          "second and third slab",
			income:        500000,
			totalTax:      "10000",
			effectiveRate: "2",
			breakdown: []row{
				{"350000", "0", "0"},
				{"100000", "5", "5000"},
				{"50000", "10", "5000"},
			},
		},
		{
			name:          "into the 15 percent slab",
			income:        900000,
			totalTax:      "52500",
			effectiveRate: "5.83",
			breakdown: []row{
				{"350000", "0", "0"},
				{"100000", "5", "5000"},
				{"400000", "10", "40000"},
				{"50000", "15", "7500"},
			},
		},
		{
			name:          "into the unbounded slab",
			income:        5000000,
			totalTax:      "1065000",
			effectiveRate: "21.3",
			breakdown: []row{
				{"350000", "0", "0"},
				{"100000", "5", "5000"},
				{"400000", "10", "40000"},
				{"500000", "15", "75000"},
				{"500000", "20", "100000"},
				{"2000000", "25", "500000"},
				{"1150000", "30", "345000"},
			},
		},
	}

	brackets := DefaultTaxConfig().Brackets
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := CalculateTax(decimal.NewFromInt(tt.income), brackets)

			assertDecimalEqual(t, fmt.Sprint(tt.income), result.AnnualIncome)
			assertDecimalEqual(t, tt.totalTax, result.TotalTax, "total tax")
			assertDecimalEqual(t, tt.effectiveRate, result.EffectiveRate, "effective rate")

			require.Len(t, result.Breakdown, len(tt.breakdown))
			for i, want := range tt.breakdown {
				got := result.Breakdown[i]
				assert.Equal(t, brackets[i].Description, got.Bracket)
				assertDecimalEqual(t, want.taxable, got.TaxableAmount, "row %d taxable", i)
				assertDecimalEqual(t, want.rate, got.Rate, "row %d rate", i)
				assertDecimalEqual(t, want.tax, got.Tax, "row %d tax", i)
			}
		})
	}
}

func TestCalculateTax_ContinuityAtBoundary(t *testing.T) {
	brackets := DefaultTaxConfig().Brackets

	atLimit := CalculateTax(decimal.NewFromInt(350000), brackets)
	justOver := CalculateTax(decimal.NewFromInt(350001), brackets)

	assert.True(t, atLimit.TotalTax.IsZero())
	// 1 unit at 5% is 0.05, which rounds away
	assert.True(t, justOver.TotalTax.IsZero())
	require.Len(t, justOver.Breakdown, 2)
	assertDecimalEqual(t, "1", justOver.Breakdown[1].TaxableAmount)
	assertDecimalEqual(t, "0.05", justOver.Breakdown[1].Tax)
}

func TestCalculateTax_BreakdownNotRounded(t *testing.T) {
	result := CalculateTax(decimal.RequireFromString("450010.50"), DefaultTaxConfig().Brackets)

	require.Len(t, result.Breakdown, 3)
	assertDecimalEqual(t, "10.50", result.Breakdown[2].TaxableAmount)
	assertDecimalEqual(t, "1.05", result.Breakdown[2].Tax)
	// 5000 + 1.05 rounds to 5001
	assertDecimalEqual(t, "5001", result.TotalTax)
}

func TestCalculateTax_Monotonic(t *testing.T) {
	brackets := DefaultTaxConfig().Brackets

	previous := decimal.Zero
	for income := int64(0); income <= 6000000; income += 12500 {
		result := CalculateTax(decimal.NewFromInt(income), brackets)
		assert.True(t, result.TotalTax.GreaterThanOrEqual(previous),
			"tax decreased at income %d: %s < %s", income, result.TotalTax.String(), previous.String())
		previous = result.TotalTax
	}
}

func TestCalculateTax_BracketExhaustion(t *testing.T) {
	brackets := DefaultTaxConfig().Brackets

	for _, income := range []string{"1", "349999.99", "350000", "1234567.89", "3850000", "3850001", "987654321"} {
		t.Run(income, func(t *testing.T) {
			amount := decimal.RequireFromString(income)
			result := CalculateTax(amount, brackets)
			assert.True(t, sumTaxable(result.Breakdown).Equal(amount),
				"taxable amounts sum to %s, want %s", sumTaxable(result.Breakdown).String(), income)
		})
	}
}

func TestCalculateTax_EffectiveRateBounds(t *testing.T) {
	brackets := DefaultTaxConfig().Brackets
	top := decimal.NewFromInt(30)

	for _, income := range []int64{1, 350000, 450000, 1000000, 3850000, 10000000, 10000000000} {
		result := CalculateTax(decimal.NewFromInt(income), brackets)
		assert.False(t, result.EffectiveRate.IsNegative(), "income %d", income)
		assert.True(t, result.EffectiveRate.LessThanOrEqual(top), "income %d: %s", income, result.EffectiveRate.String())
	}
}

func TestCalculateTax_Idempotent(t *testing.T) {
	brackets := DefaultTaxConfig().Brackets
	income := decimal.RequireFromString("2750000.25")

	first := CalculateTax(income, brackets)
	second := CalculateTax(income, brackets)

	assert.Equal(t, first, second)
}

func TestCalculateTax_StopsWhenIncomeExhausted(t *testing.T) {
	brackets := DefaultTaxConfig().Brackets

	result := CalculateTax(decimal.NewFromInt(400000), brackets)

	// later brackets are never visited, so they never show up
	require.Len(t, result.Breakdown, 2)
	assert.Equal(t, brackets[1].Description, result.Breakdown[1].Bracket)
	assertDecimalEqual(t, "2500", result.TotalTax)
}

func TestCalculateTax_CustomTable(t *testing.T) {
	brackets := []domain.TaxBracket{
		{UpperLimit: limit(1000), Rate: decimal.NewFromInt(10), Description: "first"},
		{UpperLimit: nil, Rate: decimal.RequireFromString("12.5"), Description: "rest"},
	}

	result := CalculateTax(decimal.NewFromInt(3000), brackets)

	assertDecimalEqual(t, "350", result.TotalTax)
	assertDecimalEqual(t, "11.67", result.EffectiveRate)
	require.Len(t, result.Breakdown, 2)
	assertDecimalEqual(t, "2000", result.Breakdown[1].TaxableAmount)
	assertDecimalEqual(t, "250", result.Breakdown[1].Tax)
}

func TestCalculateTax_MalformedTableDoesNotPanic(t *testing.T) {
	reversed := []domain.TaxBracket{
		{UpperLimit: nil, Rate: decimal.NewFromInt(30), Description: "rest"},
		{UpperLimit: limit(850000), Rate: decimal.NewFromInt(10), Description: "b"},
		{UpperLimit: limit(350000), Rate: decimal.Zero, Description: "a"},
	}

	assert.NotPanics(t, func() {
		CalculateTax(decimal.NewFromInt(1000000), reversed)
		CalculateTax(decimal.NewFromInt(1000000), nil)
	})
}

func TestCalculateTax_EmptyTableLeavesIncomeUntaxed(t *testing.T) {
	result := CalculateTax(decimal.NewFromInt(500000), nil)

	assert.True(t, result.TotalTax.IsZero())
	assert.True(t, result.EffectiveRate.IsZero())
	assert.Empty(t, result.Breakdown)
}

func TestMonthlyTax(t *testing.T) {
	brackets := DefaultTaxConfig().Brackets

	assertDecimalEqual(t, "88750", CalculateTax(decimal.NewFromInt(5000000), brackets).MonthlyTax())
	assertDecimalEqual(t, "833", CalculateTax(decimal.NewFromInt(500000), brackets).MonthlyTax())
	assert.True(t, CalculateTax(decimal.NewFromInt(300000), brackets).MonthlyTax().IsZero())
}

func TestNewBracketTaxCalculator(t *testing.T) {
	calc := NewBracketTaxCalculator(DefaultTaxConfig())

	assert.NotNil(t, calc)
	assert.Equal(t, DefaultFiscalYear, calc.Config.FiscalYear)
	assert.IsType(t, NopLogger{}, calc.Logger, "Should default to no-op logger")
}

func TestBracketTaxCalculator_SetLogger(t *testing.T) {
	calc := NewBracketTaxCalculator(DefaultTaxConfig())

	logger := &TestLogger{}
	calc.SetLogger(logger)
	assert.Equal(t, logger, calc.Logger)

	calc.SetLogger(nil)
	assert.IsType(t, NopLogger{}, calc.Logger)
}

func TestBracketTaxCalculator_Calculate(t *testing.T) {
	calc := NewBracketTaxCalculator(DefaultTaxConfig())
	logger := &TestLogger{}
	calc.SetLogger(logger)

	result := calc.Calculate(decimal.NewFromInt(900000))

	assertDecimalEqual(t, "52500", result.TotalTax)
	// header + one line per breakdown row + summary
	assert.Len(t, logger.messages, len(result.Breakdown)+2)
}

func TestBracketTaxCalculator_CalculateMonthly(t *testing.T) {
	calc := NewBracketTaxCalculator(DefaultTaxConfig())

	result := calc.CalculateMonthly(decimal.NewFromInt(75000))

	assertDecimalEqual(t, "900000", result.AnnualIncome)
	assertDecimalEqual(t, "52500", result.TotalTax)
}

// TestLogger records formats for assertions
type TestLogger struct {
	messages []string
}

func (tl *TestLogger) Debugf(format string, args ...interface{}) {
	tl.messages = append(tl.messages, "DEBUG: "+format)
}

func (tl *TestLogger) Infof(format string, args ...interface{}) {
	tl.messages = append(tl.messages, "INFO: "+format)
}

func (tl *TestLogger) Warnf(format string, args ...interface{}) {
	tl.messages = append(tl.messages, "WARN: "+format)
}

func (tl *TestLogger) Errorf(format string, args ...interface{}) {
	tl.messages = append(tl.messages, "ERROR: "+format)
}

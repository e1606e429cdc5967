package compare

import (
	"context"
	"testing"

	"github.com/rgehrsitz/bdtax/internal/calculation"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompareEngine_Compare(t *testing.T) {
	ce := NewCompareEngine()
	base := NamedTable{Name: "built-in", Config: calculation.DefaultTaxConfig()}
	alt := NamedTable{Name: "fy2023.yaml", Config: fy2023()}

	compSet, err := ce.Compare(context.Background(), decimal.NewFromInt(900000), base, []NamedTable{alt})
	require.NoError(t, err)

	assert.Equal(t, "BDT", compSet.Currency)
	assert.True(t, compSet.BaseResult.TotalTax.Equal(decimal.NewFromInt(52500)))
	require.Len(t, compSet.AlternativeResults, 1)

	got := compSet.AlternativeResults[0]
	assert.Equal(t, "2023-2024", got.FiscalYear)
	assert.True(t, got.TotalTax.Equal(decimal.NewFromInt(57500)), got.TotalTax.String())
	assert.True(t, got.EffectiveRate.Equal(decimal.RequireFromString("6.39")), got.EffectiveRate.String())
	assert.True(t, got.TaxDiffFromBase.Equal(decimal.NewFromInt(5000)))
	assert.True(t, got.TaxPctFromBase.Equal(decimal.RequireFromString("9.52")))
	assert.Len(t, compSet.Notes, 2)
}

func TestCompareEngine_Errors(t *testing.T) {
	ce := NewCompareEngine()
	base := NamedTable{Name: "built-in", Config: calculation.DefaultTaxConfig()}

	_, err := ce.Compare(context.Background(), decimal.NewFromInt(1), base, nil)
	assert.EqualError(t, err, "at least one table to compare against is required")

	usd := fy2023()
	usd.Currency = "USD"
	_, err = ce.Compare(context.Background(), decimal.NewFromInt(1), base, []NamedTable{{Name: "usd.yaml", Config: usd}})
	assert.EqualError(t, err, "table usd.yaml uses currency USD, base table built-in uses BDT")

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = ce.Compare(ctx, decimal.NewFromInt(1), base, []NamedTable{{Name: "fy2023.yaml", Config: fy2023()}})
	assert.ErrorIs(t, err, context.Canceled)
}

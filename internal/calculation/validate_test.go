package calculation

import (
	"errors"
	"testing"

	"github.com/rgehrsitz/bdtax/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestValidateBrackets_DefaultTable(t *testing.T) {
	assert.NoError(t, ValidateBrackets(DefaultTaxConfig().Brackets))
	assert.NoError(t, ValidateTaxConfig(DefaultTaxConfig()))
}

func TestValidateBrackets_Invalid(t *testing.T) {
	tests := []struct {
		name     string
		brackets []domain.TaxBracket
		errMsg   string
	}{
		{
			name:     "empty",
			brackets: nil,
			errMsg:   "no brackets provided",
		},
		{
			name: "no unbounded bracket",
			brackets: []domain.TaxBracket{
				{UpperLimit: limit(100), Rate: decimal.Zero, Description: "a"},
				{UpperLimit: limit(200), Rate: decimal.NewFromInt(5), Description: "b"},
			},
			errMsg: "last bracket must be unbounded",
		},
		{
			name: "unbounded bracket not last",
			brackets: []domain.TaxBracket{
				{UpperLimit: nil, Rate: decimal.Zero, Description: "a"},
				{UpperLimit: limit(200), Rate: decimal.NewFromInt(5), Description: "b"},
			},
			errMsg: "only the last bracket may be unbounded",
		},
		{
			name: "two unbounded brackets",
			brackets: []domain.TaxBracket{
				{UpperLimit: limit(100), Rate: decimal.Zero, Description: "a"},
				{UpperLimit: nil, Rate: decimal.NewFromInt(5), Description: "b"},
				{UpperLimit: nil, Rate: decimal.NewFromInt(10), Description: "c"},
			},
			errMsg: "only the last bracket may be unbounded",
		},
		{
			name: "descending limits",
			brackets: []domain.TaxBracket{
				{UpperLimit: limit(850000), Rate: decimal.Zero, Description: "a"},
				{UpperLimit: limit(350000), Rate: decimal.NewFromInt(5), Description: "b"},
				{UpperLimit: nil, Rate: decimal.NewFromInt(10), Description: "c"},
			},
			errMsg: "upper limit 350000 must exceed 850000",
		},
		{
			name: "duplicate limit",
			brackets: []domain.TaxBracket{
				{UpperLimit: limit(100), Rate: decimal.Zero, Description: "a"},
				{UpperLimit: limit(100), Rate: decimal.NewFromInt(5), Description: "b"},
				{UpperLimit: nil, Rate: decimal.NewFromInt(10), Description: "c"},
			},
			errMsg: "must exceed",
		},
		{
			name: "zero limit",
			brackets: []domain.TaxBracket{
				{UpperLimit: limit(0), Rate: decimal.Zero, Description: "a"},
				{UpperLimit: nil, Rate: decimal.NewFromInt(10), Description: "b"},
			},
			errMsg: "must exceed 0",
		},
		{
			name: "rate above 100",
			brackets: []domain.TaxBracket{
				{UpperLimit: nil, Rate: decimal.NewFromInt(101), Description: "a"},
			},
			errMsg: "rate 101 outside 0-100",
		},
		{
			name: "negative rate",
			brackets: []domain.TaxBracket{
				{UpperLimit: nil, Rate: decimal.NewFromInt(-1), Description: "a"},
			},
			errMsg: "outside 0-100",
		},
		{
			name: "missing description",
			brackets: []domain.TaxBracket{
				{UpperLimit: nil, Rate: decimal.NewFromInt(10)},
			},
			errMsg: "description is required",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateBrackets(tt.brackets)
			if assert.Error(t, err) {
				assert.True(t, errors.Is(err, ErrInvalidBrackets), "should wrap ErrInvalidBrackets")
				assert.Contains(t, err.Error(), tt.errMsg)
			}
		})
	}
}

func TestValidateTaxConfig_Metadata(t *testing.T) {
	cfg := DefaultTaxConfig()
	cfg.FiscalYear = ""
	assert.ErrorContains(t, ValidateTaxConfig(cfg), "fiscal year is required")

	cfg = DefaultTaxConfig()
	cfg.Currency = ""
	assert.ErrorContains(t, ValidateTaxConfig(cfg), "currency is required")

	cfg = DefaultTaxConfig()
	cfg.Brackets = cfg.Brackets[:2]
	err := ValidateTaxConfig(cfg)
	assert.ErrorIs(t, err, ErrInvalidBrackets)
	assert.Contains(t, err.Error(), "fiscal year 2024-2025")
}

func TestSingleUnboundedBracketIsValid(t *testing.T) {
	flat := []domain.TaxBracket{{UpperLimit: nil, Rate: decimal.NewFromInt(15), Description: "flat"}}

	assert.NoError(t, ValidateBrackets(flat))

	result := CalculateTax(decimal.NewFromInt(1000), flat)
	assert.True(t, result.TotalTax.Equal(decimal.NewFromInt(150)))
	assert.True(t, result.EffectiveRate.Equal(decimal.NewFromInt(15)))
}

func TestLocalizedTaxConfig(t *testing.T) {
	base := DefaultTaxConfig()

	for _, lang := range []domain.Language{domain.LanguageEnglish, domain.LanguageBangla, domain.Language("fr")} {
		cfg := LocalizedTaxConfig(lang)
		assert.NoError(t, ValidateTaxConfig(cfg), "language %s", lang)
		if assert.Len(t, cfg.Brackets, len(base.Brackets)) {
			for i := range cfg.Brackets {
				assert.Equal(t, base.Brackets[i].IsUnbounded(), cfg.Brackets[i].IsUnbounded())
				if !base.Brackets[i].IsUnbounded() {
					assert.True(t, base.Brackets[i].UpperLimit.Equal(*cfg.Brackets[i].UpperLimit))
				}
				assert.True(t, base.Brackets[i].Rate.Equal(cfg.Brackets[i].Rate))
			}
		}
	}

	assert.Equal(t, "First BDT 3,50,000 (Tax-free)", LocalizedTaxConfig(domain.LanguageEnglish).Brackets[0].Description)
	assert.Equal(t, "অবশিষ্ট আয়", LocalizedTaxConfig(domain.LanguageBangla).Brackets[6].Description)
	assert.Equal(t, "Next BDT 20,00,000", LocalizedTaxConfig(domain.Language("fr")).Brackets[5].Description)
}

func TestDefaultTaxConfig_ReturnsFreshCopy(t *testing.T) {
	first := DefaultTaxConfig()
	*first.Brackets[0].UpperLimit = decimal.NewFromInt(1)
	first.Brackets[1].Description = "changed"

	second := DefaultTaxConfig()
	assert.True(t, second.Brackets[0].UpperLimit.Equal(decimal.NewFromInt(350000)))
	assert.Equal(t, "Next BDT 100,000", second.Brackets[1].Description)
}

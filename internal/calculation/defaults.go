package calculation

import (
	"github.com/rgehrsitz/bdtax/internal/domain"
	"github.com/samber/lo"
	"github.com/shopspring/decimal"
)

// Bangladesh individual income tax, FY 2024-2025:
//   first 350,000 tax-free, next 100,000 at 5%, next 400,000 at 10%,
//   next 500,000 at 15%, next 500,000 at 20%, next 2,000,000 at 25%,
//   remaining balance at 30%.
//
// Update the limits and rates here when the Finance Act changes them.

const (
	DefaultFiscalYear = "2024-2025"
	DefaultCurrency   = "BDT"
)

func limit(v int64) *decimal.Decimal {
	d := decimal.NewFromInt(v)
	return &d
}

// DefaultTaxConfig returns a fresh copy of the FY 2024-2025 table
func DefaultTaxConfig() domain.TaxConfig {
	return domain.TaxConfig{
		FiscalYear: DefaultFiscalYear,
		Currency:   DefaultCurrency,
		Brackets: []domain.TaxBracket{
			{UpperLimit: limit(350000), Rate: decimal.NewFromInt(0), Description: "First BDT 350,000 (Tax-free)"},
			{UpperLimit: limit(450000), Rate: decimal.NewFromInt(5), Description: "Next BDT 100,000"},
			{UpperLimit: limit(850000), Rate: decimal.NewFromInt(10), Description: "Next BDT 400,000"},
			{UpperLimit: limit(1350000), Rate: decimal.NewFromInt(15), Description: "Next BDT 500,000"},
			{UpperLimit: limit(1850000), Rate: decimal.NewFromInt(20), Description: "Next BDT 500,000"},
			{UpperLimit: limit(3850000), Rate: decimal.NewFromInt(25), Description: "Next BDT 2,000,000"},
			{UpperLimit: nil, Rate: decimal.NewFromInt(30), Description: "Remaining balance"},
		},
	}
}

// localizedDescriptions follow DefaultTaxConfig bracket order
var localizedDescriptions = map[domain.Language][]string{
	domain.LanguageEnglish: {
		"First BDT 3,50,000 (Tax-free)",
		"Next BDT 1,00,000",
		"Next BDT 4,00,000",
		"Next BDT 5,00,000",
		"Next BDT 5,00,000",
		"Next BDT 20,00,000",
		"Remaining balance",
	},
	domain.LanguageBangla: {
		"প্রথম ৳৩,৫০,০০০ (করমুক্ত)",
		"পরবর্তী ৳১,০০,০০০",
		"পরবর্তী ৳৪,০০,০০০",
		"পরবর্তী ৳৫,০০,০০০",
		"পরবর্তী ৳৫,০০,০০০",
		"পরবর্তী ৳২০,০০,০০০",
		"অবশিষ্ট আয়",
	},
}

// LocalizedTaxConfig returns the default table with descriptions in lang.
// Unknown languages fall back to English.
func LocalizedTaxConfig(lang domain.Language) domain.TaxConfig {
	cfg := DefaultTaxConfig()
	descriptions, ok := localizedDescriptions[lang]
	if !ok {
		descriptions = localizedDescriptions[domain.LanguageEnglish]
	}
	cfg.Brackets = lo.Map(cfg.Brackets, func(b domain.TaxBracket, i int) domain.TaxBracket {
		b.Description = descriptions[i]
		return b
	})
	return cfg
}

package output

import "github.com/rgehrsitz/bdtax/internal/domain"

// Labels are the user-facing captions used by the text formatters
type Labels struct {
	Title          string
	MonthlySalary  string
	AnnualIncome   string
	IncomeSlab     string
	Amount         string
	Rate           string
	Tax            string
	TotalYearlyTax string
	MonthlyTax     string
	EffectiveRate  string
	TaxRates       string
	YearlyIncome   string
	TaxFree        string
	Remaining      string
	Disclaimer     string

	// comparison and break-even reports
	ComparisonTitle  string
	ComparisonToBase string
	IncomeLine       string
	TableColumn      string
	TotalTaxColumn   string
	MonthlyColumn    string
	EffectiveColumn  string
	MarginalColumn   string
	BreakEvenTitle   string
	TargetTakeHome   string
	TargetTax        string
	MonthlyIncome    string
	TotalTaxLine     string
	TakeHome         string
	EffectiveLine    string
}

var labels = map[domain.Language]Labels{
	domain.LanguageEnglish: {
		Title:          "Your Tax Summary",
		MonthlySalary:  "Your Monthly Salary",
		AnnualIncome:   "Based on annual taxable income of",
		IncomeSlab:     "Income Slab",
		Amount:         "Amount",
		Rate:           "Rate",
		Tax:            "Tax",
		TotalYearlyTax: "Total Yearly Tax",
		MonthlyTax:     "Monthly Tax",
		EffectiveRate:  "Effective Rate",
		TaxRates:       "Tax Rates",
		YearlyIncome:   "Yearly Income",
		TaxFree:        "Tax-free",
		Remaining:      "and above",
		Disclaimer:     "Disclaimer: This calculator provides estimates only. Please consult a tax professional for accurate tax advice.",

		ComparisonTitle:  "TAX TABLE COMPARISON",
		ComparisonToBase: "COMPARISON TO BASE",
		IncomeLine:       "Annual income",
		TableColumn:      "Table",
		TotalTaxColumn:   "Total Tax",
		MonthlyColumn:    "Monthly",
		EffectiveColumn:  "Effective",
		MarginalColumn:   "Marginal",
		BreakEvenTitle:   "BREAK-EVEN INCOME",
		TargetTakeHome:   "Target take-home",
		TargetTax:        "Target tax",
		MonthlyIncome:    "Monthly income",
		TotalTaxLine:     "Total tax",
		TakeHome:         "Take-home",
		EffectiveLine:    "Effective rate",
	},
	domain.LanguageBangla: {
		Title:          "আপনার কর সারাংশ",
		MonthlySalary:  "আপনার মাসিক বেতন",
		AnnualIncome:   "বার্ষিক করযোগ্য আয়ের উপর ভিত্তি করে",
		IncomeSlab:     "আয়ের স্তর",
		Amount:         "পরিমাণ",
		Rate:           "হার",
		Tax:            "কর",
		TotalYearlyTax: "মোট বার্ষিক কর",
		MonthlyTax:     "মাসিক কর",
		EffectiveRate:  "কার্যকর হার",
		TaxRates:       "কর হার",
		YearlyIncome:   "বার্ষিক আয়",
		TaxFree:        "করমুক্ত",
		Remaining:      "এবং তার বেশি",
		Disclaimer:     "দ্রষ্টব্য: এই ক্যালকুলেটর শুধুমাত্র আনুমানিক হিসাব দেয়। সঠিক কর পরামর্শের জন্য একজন কর বিশেষজ্ঞের সাথে যোগাযোগ করুন।",

		ComparisonTitle:  "কর সারণি তুলনা",
		ComparisonToBase: "মূল সারণির সাথে তুলনা",
		IncomeLine:       "বার্ষিক আয়",
		TableColumn:      "সারণি",
		TotalTaxColumn:   "মোট কর",
		MonthlyColumn:    "মাসিক",
		EffectiveColumn:  "কার্যকর",
		MarginalColumn:   "প্রান্তিক",
		BreakEvenTitle:   "লক্ষ্য আয়",
		TargetTakeHome:   "লক্ষ্য নিট আয়",
		TargetTax:        "লক্ষ্য কর",
		MonthlyIncome:    "মাসিক আয়",
		TotalTaxLine:     "মোট কর",
		TakeHome:         "নিট আয়",
		EffectiveLine:    "কার্যকর হার",
	},
}

// LabelsFor returns captions for lang, falling back to English
func LabelsFor(lang domain.Language) Labels {
	if l, ok := labels[lang]; ok {
		return l
	}
	return labels[domain.LanguageEnglish]
}

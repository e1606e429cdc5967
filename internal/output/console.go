package output

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/rgehrsitz/bdtax/internal/domain"
	"github.com/shopspring/decimal"
)

const ruleWidth = 80

// ConsoleFormatter renders a human-readable tax summary
type ConsoleFormatter struct{}

func (ConsoleFormatter) Name() string { return "console" }

func (ConsoleFormatter) Format(report Report) ([]byte, error) {
	var buf bytes.Buffer
	l := LabelsFor(report.Language)
	nf := NewNumberFormatter(report.Language, report.Config.Currency)
	result := report.Result

	fmt.Fprintf(&buf, "%s (FY %s)\n", strings.ToUpper(l.Title), report.Config.FiscalYear)
	buf.WriteString(strings.Repeat("=", ruleWidth) + "\n")
	fmt.Fprintf(&buf, "%s %s\n\n", l.AnnualIncome, nf.Currency(result.AnnualIncome))

	if len(result.Breakdown) > 0 {
		fmt.Fprintf(&buf, "%-34s %16s %8s %16s\n", l.IncomeSlab, l.Amount, l.Rate, l.Tax)
		buf.WriteString(strings.Repeat("-", ruleWidth) + "\n")
		for _, item := range result.Breakdown {
			fmt.Fprintf(&buf, "%-34s %16s %8s %16s\n",
				item.Bracket,
				nf.Currency(item.TaxableAmount),
				nf.Rate(item.Rate),
				nf.Currency(item.Tax))
		}
		buf.WriteString(strings.Repeat("-", ruleWidth) + "\n")
	}

	fmt.Fprintf(&buf, "%-20s %s\n", l.TotalYearlyTax+":", nf.Currency(result.TotalTax))
	fmt.Fprintf(&buf, "%-20s %s\n", l.MonthlyTax+":", nf.Currency(result.MonthlyTax()))
	fmt.Fprintf(&buf, "%-20s %s\n", l.EffectiveRate+":", nf.Percentage(result.EffectiveRate))
	buf.WriteString("\n" + l.Disclaimer + "\n")

	return buf.Bytes(), nil
}

// RenderBracketTable lists a bracket table as income ranges and rates
func RenderBracketTable(cfg domain.TaxConfig, lang domain.Language) string {
	var sb strings.Builder
	l := LabelsFor(lang)
	nf := NewNumberFormatter(lang, cfg.Currency)

	fmt.Fprintf(&sb, "%s (FY %s, %s)\n", strings.ToUpper(l.TaxRates), cfg.FiscalYear, cfg.Currency)
	sb.WriteString(strings.Repeat("=", ruleWidth) + "\n")
	fmt.Fprintf(&sb, "%-34s %-30s %8s\n", l.YearlyIncome, l.IncomeSlab, l.Rate)
	sb.WriteString(strings.Repeat("-", ruleWidth) + "\n")

	previous := decimal.Zero
	for _, b := range cfg.Brackets {
		var span string
		if b.UpperLimit == nil {
			span = fmt.Sprintf("%s %s", nf.Amount(previous), l.Remaining)
		} else {
			span = fmt.Sprintf("%s - %s", nf.Amount(previous), nf.Amount(*b.UpperLimit))
			previous = *b.UpperLimit
		}
		rate := nf.Rate(b.Rate)
		if b.Rate.IsZero() {
			rate = l.TaxFree
		}
		fmt.Fprintf(&sb, "%-34s %-30s %8s\n", span, b.Description, rate)
	}
	sb.WriteString(strings.Repeat("=", ruleWidth) + "\n")

	return sb.String()
}

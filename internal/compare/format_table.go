package compare

import (
	"fmt"
	"strings"

	"github.com/rgehrsitz/bdtax/internal/domain"
	"github.com/rgehrsitz/bdtax/internal/output"
	"github.com/shopspring/decimal"
)

// TableFormatter formats comparison results as a console table
type TableFormatter struct {
	Language domain.Language
}

// Format generates a formatted table comparing bracket tables
func (tf *TableFormatter) Format(compSet *ComparisonSet) string {
	var sb strings.Builder
	nf := output.NewNumberFormatter(tf.Language, compSet.Currency)
	l := output.LabelsFor(tf.Language)

	sb.WriteString(l.ComparisonTitle + "\n")
	sb.WriteString(strings.Repeat("=", 80) + "\n")
	sb.WriteString(fmt.Sprintf("%s: %s\n\n", l.IncomeLine, nf.Currency(compSet.Income)))

	nameWidth := 30
	numWidth := 12

	sb.WriteString(fmt.Sprintf("%-*s %*s %*s %*s %*s\n",
		nameWidth, l.TableColumn,
		numWidth, l.TotalTaxColumn,
		numWidth, l.MonthlyColumn,
		numWidth, l.EffectiveColumn,
		numWidth, l.MarginalColumn))
	sb.WriteString(strings.Repeat("-", 80) + "\n")

	sb.WriteString(tf.formatRow(nf, compSet.BaseResult, nameWidth, numWidth))
	for i := range compSet.AlternativeResults {
		sb.WriteString(tf.formatRow(nf, &compSet.AlternativeResults[i], nameWidth, numWidth))
	}
	sb.WriteString(strings.Repeat("=", 80) + "\n")

	if len(compSet.AlternativeResults) > 0 {
		sb.WriteString("\n" + l.ComparisonToBase + "\n")
		sb.WriteString(strings.Repeat("-", 80) + "\n")
		for _, alt := range compSet.AlternativeResults {
			sb.WriteString(fmt.Sprintf("%-*s %s%s (%s%s)\n",
				nameWidth, alt.Label()+":",
				tf.deltaSymbol(alt.TaxDiffFromBase),
				nf.Currency(alt.TaxDiffFromBase.Abs()),
				tf.deltaSymbol(alt.TaxPctFromBase),
				nf.Percentage(alt.TaxPctFromBase.Abs())))
		}
	}

	if len(compSet.Notes) > 0 {
		sb.WriteString("\n")
		for _, note := range compSet.Notes {
			sb.WriteString("• " + note + "\n")
		}
	}

	return sb.String()
}

func (tf *TableFormatter) formatRow(nf *output.NumberFormatter, result *ComparisonResult, nameWidth, numWidth int) string {
	return fmt.Sprintf("%-*s %*s %*s %*s %*s\n",
		nameWidth, truncate(result.Label(), nameWidth),
		numWidth, nf.Amount(result.TotalTax),
		numWidth, nf.Amount(result.MonthlyTax),
		numWidth, nf.Percentage(result.EffectiveRate),
		numWidth, nf.Rate(result.MarginalRate))
}

func (tf *TableFormatter) deltaSymbol(d decimal.Decimal) string {
	if d.IsNegative() {
		return "-"
	}
	return "+"
}

func truncate(s string, width int) string {
	r := []rune(s)
	if len(r) <= width {
		return s
	}
	return string(r[:width-1]) + "…"
}

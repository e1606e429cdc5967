package breakeven

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/rgehrsitz/bdtax/internal/domain"
	"github.com/rgehrsitz/bdtax/internal/output"
)

// TableFormatter formats solver results as console text
type TableFormatter struct {
	Language domain.Language
	Currency string
}

// Format generates a summary of the solved income
func (tf *TableFormatter) Format(result *Result) string {
	var sb strings.Builder
	nf := output.NewNumberFormatter(tf.Language, tf.Currency)
	calc := result.Calculation

	l := output.LabelsFor(tf.Language)
	line := func(label, value string) {
		sb.WriteString(fmt.Sprintf("%-21s%s\n", label+":", value))
	}

	sb.WriteString(l.BreakEvenTitle + "\n")
	sb.WriteString(strings.Repeat("=", 80) + "\n")
	switch result.Goal {
	case GoalTakeHome:
		line(l.TargetTakeHome, nf.Currency(result.Target))
	default:
		line(l.TargetTax, nf.Currency(result.Target))
	}
	sb.WriteString("\n")

	line(l.IncomeLine, nf.Currency(result.Income))
	line(l.MonthlyIncome, nf.Currency(result.MonthlyGross))
	line(l.TotalTaxLine, nf.Currency(calc.TotalTax))
	line(l.TakeHome, nf.Currency(calc.AnnualIncome.Sub(calc.TotalTax)))
	line(l.EffectiveLine, nf.Percentage(calc.EffectiveRate))

	return sb.String()
}

// JSONFormatter formats solver results as JSON
type JSONFormatter struct{}

// Format generates indented JSON for a solver result
func (jf *JSONFormatter) Format(result *Result) (string, error) {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}

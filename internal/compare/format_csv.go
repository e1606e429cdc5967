package compare

import (
	"encoding/csv"
	"strings"
)

// CSVFormatter formats comparison results as CSV
type CSVFormatter struct{}

// Format generates CSV output for comparison results
func (cf *CSVFormatter) Format(compSet *ComparisonSet) (string, error) {
	var sb strings.Builder
	writer := csv.NewWriter(&sb)

	header := []string{
		"Table",
		"Type",
		"Fiscal Year",
		"Income",
		"Total Tax",
		"Effective Rate",
		"Marginal Rate",
		"Take Home",
		"Tax Diff from Base",
		"Tax % Change",
	}
	if err := writer.Write(header); err != nil {
		return "", err
	}

	if err := writer.Write(cf.formatRow(compSet, compSet.BaseResult, "base")); err != nil {
		return "", err
	}
	for i := range compSet.AlternativeResults {
		if err := writer.Write(cf.formatRow(compSet, &compSet.AlternativeResults[i], "alternative")); err != nil {
			return "", err
		}
	}

	writer.Flush()
	if err := writer.Error(); err != nil {
		return "", err
	}

	return sb.String(), nil
}

func (cf *CSVFormatter) formatRow(compSet *ComparisonSet, result *ComparisonResult, tableType string) []string {
	return []string{
		result.TableName,
		tableType,
		result.FiscalYear,
		compSet.Income.StringFixed(2),
		result.TotalTax.StringFixed(2),
		result.EffectiveRate.StringFixed(2),
		result.MarginalRate.String(),
		result.TakeHome.StringFixed(2),
		result.TaxDiffFromBase.StringFixed(2),
		result.TaxPctFromBase.StringFixed(2),
	}
}

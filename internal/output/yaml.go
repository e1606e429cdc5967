package output

import (
	"github.com/rgehrsitz/bdtax/internal/domain"
	"gopkg.in/yaml.v3"
)

// YAMLFormatter renders the calculation result as YAML
type YAMLFormatter struct{}

func (YAMLFormatter) Name() string { return "yaml" }

func (YAMLFormatter) Format(report Report) ([]byte, error) {
	doc := struct {
		FiscalYear string                      `yaml:"fiscal_year"`
		Currency   string                      `yaml:"currency"`
		Result     domain.TaxCalculationResult `yaml:"result"`
		MonthlyTax string                      `yaml:"monthly_tax"`
	}{
		FiscalYear: report.Config.FiscalYear,
		Currency:   report.Config.Currency,
		Result:     report.Result,
		MonthlyTax: report.Result.MonthlyTax().String(),
	}
	return yaml.Marshal(doc)
}

package compare

import (
	"context"
	"errors"
	"fmt"

	"github.com/rgehrsitz/bdtax/internal/calculation"
	"github.com/rgehrsitz/bdtax/internal/domain"
	"github.com/shopspring/decimal"
)

// NamedTable is a bracket table together with the name it is reported under
type NamedTable struct {
	Name   string
	Config domain.TaxConfig
}

// CompareEngine evaluates one income under several bracket tables
type CompareEngine struct {
	MetricsCalculator *MetricsCalculator
	Logger            calculation.Logger
}

// NewCompareEngine creates a new comparison engine
func NewCompareEngine() *CompareEngine {
	return &CompareEngine{
		MetricsCalculator: NewMetricsCalculator(),
		Logger:            calculation.NopLogger{},
	}
}

// Compare calculates income under base and every alternative. All tables must
// share the base table's currency.
func (ce *CompareEngine) Compare(
	ctx context.Context,
	income decimal.Decimal,
	base NamedTable,
	alternatives []NamedTable,
) (*ComparisonSet, error) {
	if len(alternatives) == 0 {
		return nil, errors.New("at least one table to compare against is required")
	}

	calc := calculation.NewBracketTaxCalculator(base.Config)
	calc.SetLogger(ce.Logger)
	baseResult := ce.MetricsCalculator.CalculateMetrics(base.Name, base.Config, calc.Calculate(income))

	results := make([]ComparisonResult, 0, len(alternatives))
	for _, alt := range alternatives {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		if alt.Config.Currency != base.Config.Currency {
			return nil, fmt.Errorf("table %s uses currency %s, base table %s uses %s",
				alt.Name, alt.Config.Currency, base.Name, base.Config.Currency)
		}

		calc := calculation.NewBracketTaxCalculator(alt.Config)
		calc.SetLogger(ce.Logger)
		altResult := ce.MetricsCalculator.CalculateMetrics(alt.Name, alt.Config, calc.Calculate(income))
		results = append(results, ce.MetricsCalculator.CalculateComparison(altResult, baseResult))
	}

	compSet := &ComparisonSet{
		Income:             income,
		Currency:           base.Config.Currency,
		BaseResult:         &baseResult,
		AlternativeResults: results,
	}
	compSet.Notes = GenerateNotes(compSet)

	return compSet, nil
}

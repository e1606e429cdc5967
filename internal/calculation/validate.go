package calculation

import (
	"errors"
	"fmt"

	"github.com/rgehrsitz/bdtax/internal/domain"
	"github.com/shopspring/decimal"
)

// ErrInvalidBrackets wraps every bracket table validation failure
var ErrInvalidBrackets = errors.New("invalid tax brackets")

// ValidateBrackets checks the preconditions CalculateTax relies on:
// at least one bracket, strictly ascending positive limits, rates within
// 0-100, and exactly one unbounded bracket in last position.
func ValidateBrackets(brackets []domain.TaxBracket) error {
	if len(brackets) == 0 {
		return fmt.Errorf("%w: no brackets provided", ErrInvalidBrackets)
	}

	previous := decimal.Zero
	for i, b := range brackets {
		if b.Description == "" {
			return fmt.Errorf("%w: bracket %d: description is required", ErrInvalidBrackets, i)
		}
		if b.Rate.IsNegative() || b.Rate.GreaterThan(hundred) {
			return fmt.Errorf("%w: bracket %d (%s): rate %s outside 0-100", ErrInvalidBrackets, i, b.Description, b.Rate.String())
		}

		if b.UpperLimit == nil {
			if i != len(brackets)-1 {
				return fmt.Errorf("%w: bracket %d (%s): only the last bracket may be unbounded", ErrInvalidBrackets, i, b.Description)
			}
			continue
		}

		if !b.UpperLimit.GreaterThan(previous) {
			return fmt.Errorf("%w: bracket %d (%s): upper limit %s must exceed %s", ErrInvalidBrackets, i, b.Description, b.UpperLimit.String(), previous.String())
		}
		previous = *b.UpperLimit
	}

	if !brackets[len(brackets)-1].IsUnbounded() {
		return fmt.Errorf("%w: last bracket must be unbounded", ErrInvalidBrackets)
	}
	return nil
}

// ValidateTaxConfig validates a full table including its metadata
func ValidateTaxConfig(cfg domain.TaxConfig) error {
	if cfg.FiscalYear == "" {
		return fmt.Errorf("%w: fiscal year is required", ErrInvalidBrackets)
	}
	if cfg.Currency == "" {
		return fmt.Errorf("%w: currency is required", ErrInvalidBrackets)
	}
	if err := ValidateBrackets(cfg.Brackets); err != nil {
		return fmt.Errorf("fiscal year %s: %w", cfg.FiscalYear, err)
	}
	return nil
}

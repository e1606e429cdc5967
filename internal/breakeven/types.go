package breakeven

import (
	"github.com/rgehrsitz/bdtax/internal/domain"
	"github.com/shopspring/decimal"
)

// Goal defines which after-the-fact figure the solver matches
type Goal string

const (
	GoalTotalTax Goal = "tax"       // annual income that incurs a given total tax
	GoalTakeHome Goal = "take_home" // annual income that leaves a given amount after tax
)

// ParseGoal maps a goal name onto a Goal
func ParseGoal(s string) (Goal, error) {
	switch Goal(s) {
	case GoalTotalTax, GoalTakeHome:
		return Goal(s), nil
	case "net", "take-home":
		return GoalTakeHome, nil
	default:
		return "", &BreakEvenError{Operation: "parse_goal", Message: "unsupported goal: " + s}
	}
}

// Request defines one inverse calculation
type Request struct {
	Goal     Goal
	Target   decimal.Decimal // annual amount to match
	Brackets []domain.TaxBracket
}

// Result is the income that meets a Request
type Result struct {
	Goal   Goal            `json:"goal"`
	Target decimal.Decimal `json:"target"`

	// Income is rounded to two decimal places. Calculation is the bracket
	// calculation at that income, so its rounded figures may differ from
	// Target by a fraction of a unit.
	Income       decimal.Decimal             `json:"income"`
	MonthlyGross decimal.Decimal             `json:"monthlyGross"`
	Calculation  domain.TaxCalculationResult `json:"calculation"`
}

// BreakEvenError represents errors from the break-even solver
type BreakEvenError struct {
	Operation string
	Message   string
	Cause     error
}

func (e *BreakEvenError) Error() string {
	if e.Cause != nil {
		return e.Operation + ": " + e.Message + ": " + e.Cause.Error()
	}
	return e.Operation + ": " + e.Message
}

func (e *BreakEvenError) Unwrap() error {
	return e.Cause
}

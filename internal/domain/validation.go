package domain

import (
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ValidationError identifies the offending field of a malformed input. It is
// surfaced immediately to the caller and never retried.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// Validation constants
const (
	MinFundMonths = 3
	MaxFundMonths = 12
	MaxDebts      = 50
)

var (
	// MaxDebtBalance caps a single debt at 100 million.
	MaxDebtBalance = decimal.New(1, 8)
	// MaxAnnualRatePct caps the annual interest rate at 1000%.
	MaxAnnualRatePct = decimal.NewFromInt(1000)
	// decimalHundred is the upper bound for a savings-rate percentage.
	decimalHundred = decimal.NewFromInt(100)
)

// ValidateDebts checks the semantic field constraints of a debt set.
func ValidateDebts(debts []Debt) error {
	if len(debts) == 0 {
		return &ValidationError{Field: "debts", Reason: "at least one debt is required"}
	}
	if len(debts) > MaxDebts {
		return &ValidationError{Field: "debts", Reason: fmt.Sprintf("at most %d debts are supported", MaxDebts)}
	}

	seen := make(map[string]bool, len(debts))
	for i, d := range debts {
		field := func(name string) string { return fmt.Sprintf("debts[%d].%s", i, name) }

		if strings.TrimSpace(d.ID) == "" {
			return &ValidationError{Field: field("id"), Reason: "must not be empty"}
		}
		if seen[d.ID] {
			return &ValidationError{Field: field("id"), Reason: fmt.Sprintf("duplicate debt ID %q", d.ID)}
		}
		seen[d.ID] = true

		if !d.Balance.IsPositive() {
			return &ValidationError{Field: field("balance"), Reason: "must be positive"}
		}
		if d.Balance.GreaterThan(MaxDebtBalance) {
			return &ValidationError{Field: field("balance"), Reason: fmt.Sprintf("exceeds maximum of %s", MaxDebtBalance)}
		}
		if d.AnnualRate.IsNegative() {
			return &ValidationError{Field: field("annual_rate"), Reason: "must not be negative"}
		}
		if d.AnnualRate.GreaterThan(MaxAnnualRatePct) {
			return &ValidationError{Field: field("annual_rate"), Reason: fmt.Sprintf("exceeds maximum of %s%%", MaxAnnualRatePct)}
		}
		if !d.MinimumPayment.IsPositive() {
			return &ValidationError{Field: field("minimum_payment"), Reason: "must be positive"}
		}
	}

	return nil
}

// ValidateExtraPayment checks the extra monthly payment of a payoff run.
func ValidateExtraPayment(extra decimal.Decimal) error {
	if extra.IsNegative() {
		return &ValidationError{Field: "extra_payment", Reason: "must not be negative"}
	}
	return nil
}

// ValidateStrategy checks that a payoff strategy is known.
func ValidateStrategy(s Strategy) error {
	if !s.Valid() {
		return &ValidationError{Field: "strategy", Reason: fmt.Sprintf("must be %q or %q", StrategyAvalanche, StrategySnowball)}
	}
	return nil
}

// ValidateGoals checks the semantic field constraints of a goal set.
func ValidateGoals(goals []Goal) error {
	seen := make(map[string]bool, len(goals))
	for i, g := range goals {
		field := func(name string) string { return fmt.Sprintf("goals[%d].%s", i, name) }

		if strings.TrimSpace(g.ID) == "" {
			return &ValidationError{Field: field("id"), Reason: "must not be empty"}
		}
		if seen[g.ID] {
			return &ValidationError{Field: field("id"), Reason: fmt.Sprintf("duplicate goal ID %q", g.ID)}
		}
		seen[g.ID] = true

		if !g.Target.IsPositive() {
			return &ValidationError{Field: field("target"), Reason: "must be positive"}
		}
		if g.Saved.IsNegative() {
			return &ValidationError{Field: field("saved"), Reason: "must not be negative"}
		}
	}
	return nil
}

// ValidateWeights checks optional allocation weights against the goal set.
func ValidateWeights(weights map[string]decimal.Decimal, goals []Goal) error {
	if weights == nil {
		return nil
	}
	ids := make(map[string]bool, len(goals))
	for _, g := range goals {
		ids[g.ID] = true
	}
	for id, w := range weights {
		if !ids[id] {
			return &ValidationError{Field: "weights", Reason: fmt.Sprintf("unknown goal ID %q", id)}
		}
		if !w.IsPositive() {
			return &ValidationError{Field: "weights", Reason: fmt.Sprintf("weight for %q must be positive", id)}
		}
	}
	return nil
}

// ValidateBudgetSnapshot checks income and per-category expense constraints.
func ValidateBudgetSnapshot(b BudgetSnapshot) error {
	if b.MonthlyIncome.IsNegative() {
		return &ValidationError{Field: "monthly_income", Reason: "must not be negative"}
	}
	for category, amount := range b.Expenses {
		if strings.TrimSpace(category) == "" {
			return &ValidationError{Field: "expenses", Reason: "category must not be empty"}
		}
		if amount.IsNegative() {
			return &ValidationError{Field: fmt.Sprintf("expenses[%s]", category), Reason: "must not be negative"}
		}
	}
	return nil
}

// ValidateFundMonths checks the emergency-fund coverage window.
func ValidateFundMonths(months int) error {
	if months < MinFundMonths || months > MaxFundMonths {
		return &ValidationError{
			Field:  "months",
			Reason: fmt.Sprintf("must be between %d and %d", MinFundMonths, MaxFundMonths),
		}
	}
	return nil
}

// ValidateHorizon checks the projection horizon.
func ValidateHorizon(months int) error {
	if months < 1 {
		return &ValidationError{Field: "horizon_months", Reason: "must be at least 1"}
	}
	return nil
}

// ValidateScenarioDelta checks a delta against the baseline it applies to.
// The adjusted state must still be a valid budget snapshot.
func ValidateScenarioDelta(delta ScenarioDelta, baseline BudgetSnapshot) error {
	if delta.ExtraDebtPayment.IsNegative() {
		return &ValidationError{Field: "delta.extra_debt_payment", Reason: "must not be negative"}
	}
	if delta.SavingsRate != nil {
		if delta.SavingsRate.IsNegative() || delta.SavingsRate.GreaterThan(decimalHundred) {
			return &ValidationError{Field: "delta.savings_rate", Reason: "must be between 0 and 100"}
		}
	}

	adjusted := delta.Apply(baseline)
	if adjusted.MonthlyIncome.IsNegative() {
		return &ValidationError{Field: "delta.income_delta", Reason: "adjusted income must not be negative"}
	}
	for category, amount := range adjusted.Expenses {
		if amount.IsNegative() {
			return &ValidationError{
				Field:  fmt.Sprintf("delta.expense_deltas[%s]", category),
				Reason: "adjusted expense must not be negative",
			}
		}
	}
	return nil
}

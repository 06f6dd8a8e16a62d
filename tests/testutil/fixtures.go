package testutil

import (
	"time"

	"github.com/oklog/ulid/v2"
	"github.com/shopspring/decimal"

	"github.com/finplanner/finplanner/internal/domain"
)

// Dec parses a decimal literal, panicking on malformed input. Test fixtures
// only ever carry literals, so a panic points straight at the typo.
func Dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

// NewDebt builds a valid debt fixture.
func NewDebt(id, balance, annualRate, minimumPayment string) domain.Debt {
	return domain.Debt{
		ID:             id,
		Name:           id,
		Balance:        Dec(balance),
		AnnualRate:     Dec(annualRate),
		MinimumPayment: Dec(minimumPayment),
	}
}

// NewGoal builds a valid goal fixture with nothing saved yet.
func NewGoal(id, target string) domain.Goal {
	return domain.Goal{
		ID:     id,
		Name:   id,
		Target: Dec(target),
		Saved:  decimal.Zero,
	}
}

// NewGoalWithSaved builds a goal fixture with an existing balance.
func NewGoalWithSaved(id, target, saved string) domain.Goal {
	goal := NewGoal(id, target)
	goal.Saved = Dec(saved)
	return goal
}

// NewGoalWithDate builds a goal fixture with a target date.
func NewGoalWithDate(id, target string, due time.Time) domain.Goal {
	goal := NewGoal(id, target)
	goal.TargetDate = &due
	return goal
}

// NewBudget builds a budget snapshot from category/amount pairs.
func NewBudget(income string, expenses map[string]string) domain.BudgetSnapshot {
	records := make([]domain.ExpenseRecord, 0, len(expenses))
	for category, amount := range expenses {
		records = append(records, domain.ExpenseRecord{
			Category: category,
			Amount:   Dec(amount),
		})
	}
	return domain.NewBudgetSnapshot(Dec(income), records)
}

// GenerateID generates a new ULID.
func GenerateID() string {
	return ulid.Make().String()
}

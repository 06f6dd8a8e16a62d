package domain

import (
	"github.com/shopspring/decimal"
)

// ExpenseRecord is a single categorised monthly expense as supplied by the
// presentation layer.
type ExpenseRecord struct {
	Category string
	Amount   decimal.Decimal
}

// BudgetSnapshot is an immutable view of one month of cash flow. Callers
// build a fresh snapshot per calculation; the calculators never mutate it.
type BudgetSnapshot struct {
	MonthlyIncome decimal.Decimal
	Expenses      map[string]decimal.Decimal
}

// NewBudgetSnapshot builds a snapshot from raw expense records, summing
// amounts that share a category.
func NewBudgetSnapshot(income decimal.Decimal, records []ExpenseRecord) BudgetSnapshot {
	expenses := make(map[string]decimal.Decimal, len(records))
	for _, r := range records {
		expenses[r.Category] = expenses[r.Category].Add(r.Amount)
	}
	return BudgetSnapshot{
		MonthlyIncome: income,
		Expenses:      expenses,
	}
}

// TotalExpenses returns the sum over all categories.
func (b *BudgetSnapshot) TotalExpenses() decimal.Decimal {
	total := decimal.Zero
	for _, amount := range b.Expenses {
		total = total.Add(amount)
	}
	return total
}

// Surplus returns income minus total expenses. Negative means a deficit.
func (b *BudgetSnapshot) Surplus() decimal.Decimal {
	return b.MonthlyIncome.Sub(b.TotalExpenses())
}

// Clone returns a deep copy so deltas can be applied without touching the
// original snapshot.
func (b *BudgetSnapshot) Clone() BudgetSnapshot {
	expenses := make(map[string]decimal.Decimal, len(b.Expenses))
	for category, amount := range b.Expenses {
		expenses[category] = amount
	}
	return BudgetSnapshot{
		MonthlyIncome: b.MonthlyIncome,
		Expenses:      expenses,
	}
}

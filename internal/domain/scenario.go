package domain

import (
	"github.com/shopspring/decimal"
)

// ScenarioDelta is a named set of overrides applied to a baseline budget and
// debt set to produce a what-if state. The baseline is never mutated.
type ScenarioDelta struct {
	Name             string
	IncomeDelta      decimal.Decimal
	ExpenseDeltas    map[string]decimal.Decimal // added per category, may be negative
	ExtraDebtPayment decimal.Decimal
	SavingsRate      *decimal.Decimal // percent of surplus saved, nil means 100
}

// Apply returns a new snapshot with the delta applied. Categories that only
// exist in the delta are added to the result.
func (d *ScenarioDelta) Apply(baseline BudgetSnapshot) BudgetSnapshot {
	adjusted := baseline.Clone()
	adjusted.MonthlyIncome = adjusted.MonthlyIncome.Add(d.IncomeDelta)
	for category, delta := range d.ExpenseDeltas {
		adjusted.Expenses[category] = adjusted.Expenses[category].Add(delta)
	}
	return adjusted
}

// EffectiveSavingsRate returns the fraction of surplus saved each month.
func (d *ScenarioDelta) EffectiveSavingsRate() decimal.Decimal {
	if d.SavingsRate == nil {
		return decimal.NewFromInt(1)
	}
	return d.SavingsRate.Div(decimal.NewFromInt(100))
}

// ProjectionPoint is one month of a projected trajectory.
type ProjectionPoint struct {
	Month             int // 1-based
	NetWorth          decimal.Decimal
	CumulativeSavings decimal.Decimal
	RemainingDebt     decimal.Decimal
	GoalProgress      map[string]decimal.Decimal // goal ID -> amount saved so far
}

// ProjectionSeries is an ordered multi-month trajectory for one scenario.
type ProjectionSeries struct {
	Scenario string
	Points   []ProjectionPoint
}

// ProjectionComparison pairs a scenario's trajectory with the unmodified
// baseline over the same horizon.
type ProjectionComparison struct {
	Baseline *ProjectionSeries
	Scenario *ProjectionSeries
}

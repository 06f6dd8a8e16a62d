package domain

import (
	"github.com/shopspring/decimal"
)

// Strategy selects the payoff order for the debt simulation.
type Strategy string

const (
	// StrategyAvalanche pays the highest interest rate first.
	StrategyAvalanche Strategy = "avalanche"
	// StrategySnowball pays the smallest balance first.
	StrategySnowball Strategy = "snowball"
)

// Valid reports whether the strategy is a known payoff strategy.
func (s Strategy) Valid() bool {
	return s == StrategyAvalanche || s == StrategySnowball
}

// Debt represents a single liability at the start of a simulation.
type Debt struct {
	ID             string
	Name           string
	Balance        decimal.Decimal
	AnnualRate     decimal.Decimal // percent per year, e.g. 19.99
	MinimumPayment decimal.Decimal
}

var decimalMonthsPerYearPct = decimal.NewFromInt(1200)

// MonthlyRate returns the periodic rate applied to the balance each month.
func (d *Debt) MonthlyRate() decimal.Decimal {
	return d.AnnualRate.Div(decimalMonthsPerYearPct)
}

// MonthlyInterest returns one month of interest on the current balance,
// rounded to cents.
func (d *Debt) MonthlyInterest() decimal.Decimal {
	return d.Balance.Mul(d.MonthlyRate()).Round(2)
}

// CoversInterest reports whether the minimum payment at least matches the
// interest accruing on the starting balance.
func (d *Debt) CoversInterest() bool {
	return d.MinimumPayment.GreaterThanOrEqual(d.MonthlyInterest())
}

// PayoffStep records one debt's movement within a simulated month.
type PayoffStep struct {
	DebtID   string
	Interest decimal.Decimal
	Payment  decimal.Decimal
	Balance  decimal.Decimal // remaining balance at end of month
}

// PayoffMonth groups the steps of every debt still open in a month.
type PayoffMonth struct {
	Month         int // 1-based
	Steps         []PayoffStep
	TotalPaid     decimal.Decimal
	TotalInterest decimal.Decimal
}

// PayoffPlan is the full schedule produced by the planner. It is owned by
// the caller after return and never mutated afterwards.
type PayoffPlan struct {
	Strategy       Strategy
	Months         []PayoffMonth
	MonthsToPayoff int
	TotalPrincipal decimal.Decimal
	TotalInterest  decimal.Decimal
	TotalPaid      decimal.Decimal
}

// RemainingAfter returns the total balance outstanding at the end of the
// given month. Month 0 is the starting position.
func (p *PayoffPlan) RemainingAfter(month int) decimal.Decimal {
	if month <= 0 {
		return p.TotalPrincipal
	}
	if month >= len(p.Months) {
		return decimal.Zero
	}
	total := decimal.Zero
	for _, step := range p.Months[month-1].Steps {
		total = total.Add(step.Balance)
	}
	return total
}

// PlanComparison holds both strategies' plans for the same debt set.
type PlanComparison struct {
	Avalanche     *PayoffPlan
	Snowball      *PayoffPlan
	InterestSaved decimal.Decimal // snowball interest minus avalanche interest
	MonthsSaved   int             // snowball months minus avalanche months
	Recommended   Strategy
}

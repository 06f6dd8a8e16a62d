package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// CategoryBreakdown is one spending category with its share of the total.
type CategoryBreakdown struct {
	Category   string          `json:"category"`
	Amount     decimal.Decimal `json:"amount"`
	Percentage decimal.Decimal `json:"percentage"`
}

// BudgetAnalysis summarises one month of cash flow.
type BudgetAnalysis struct {
	MonthlyIncome decimal.Decimal     `json:"monthly_income"`
	TotalExpenses decimal.Decimal     `json:"total_expenses"`
	Surplus       decimal.Decimal     `json:"surplus"`
	Categories    []CategoryBreakdown `json:"categories"`
	Commentary    string              `json:"commentary"`
}

// SavingsStrategy carries the emergency-fund target and the goal allocation
// derived from the budget analysis.
type SavingsStrategy struct {
	FundMonths          int             `json:"fund_months"`
	EmergencyFundTarget decimal.Decimal `json:"emergency_fund_target"`
	Allocation          *AllocationPlan `json:"allocation"`
	Commentary          string          `json:"commentary"`
}

// DebtReduction carries the payoff strategy comparison. NeverPayoff is set
// when the simulation cannot converge; the comparison is nil in that case.
type DebtReduction struct {
	TotalDebt   decimal.Decimal `json:"total_debt"`
	NeverPayoff bool            `json:"never_payoff"`
	Comparison  *PlanComparison `json:"comparison,omitempty"`
	Commentary  string          `json:"commentary"`
}

// AdviceReport is the result of one full advisory pipeline run: budget
// analysis, savings strategy, then debt reduction, in that order, each
// grounded in the calculators' exact numbers.
type AdviceReport struct {
	SessionID   string          `json:"session_id"`
	GeneratedAt time.Time       `json:"generated_at"`
	Budget      BudgetAnalysis  `json:"budget_analysis"`
	Savings     SavingsStrategy `json:"savings_strategy"`
	Debt        *DebtReduction  `json:"debt_reduction,omitempty"`
}

package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/finplanner/finplanner/internal/domain"
	"github.com/finplanner/finplanner/internal/usecase"
)

// DebtItem represents one debt in API requests.
type DebtItem struct {
	ID             string          `json:"id"`
	Name           string          `json:"name,omitempty"`
	Balance        decimal.Decimal `json:"balance"`
	AnnualRate     decimal.Decimal `json:"annual_rate"`
	MinimumPayment decimal.Decimal `json:"minimum_payment"`
}

// ToDomain converts to a domain debt.
func (d DebtItem) ToDomain() domain.Debt {
	return domain.Debt{
		ID:             d.ID,
		Name:           d.Name,
		Balance:        d.Balance,
		AnnualRate:     d.AnnualRate,
		MinimumPayment: d.MinimumPayment,
	}
}

// GoalItem represents one savings goal in API requests.
type GoalItem struct {
	ID         string          `json:"id"`
	Name       string          `json:"name,omitempty"`
	Target     decimal.Decimal `json:"target"`
	Saved      decimal.Decimal `json:"saved"`
	TargetDate *time.Time      `json:"target_date,omitempty"`
}

// ToDomain converts to a domain goal.
func (g GoalItem) ToDomain() domain.Goal {
	return domain.Goal{
		ID:         g.ID,
		Name:       g.Name,
		Target:     g.Target,
		Saved:      g.Saved,
		TargetDate: g.TargetDate,
	}
}

// ExpenseItem represents one expense category in API requests.
type ExpenseItem struct {
	Category string          `json:"category"`
	Amount   decimal.Decimal `json:"amount"`
}

// DebtsToDomain converts a request debt list to domain debts.
func DebtsToDomain(items []DebtItem) []domain.Debt {
	debts := make([]domain.Debt, len(items))
	for i, d := range items {
		debts[i] = d.ToDomain()
	}
	return debts
}

// GoalsToDomain converts a request goal list to domain goals.
func GoalsToDomain(items []GoalItem) []domain.Goal {
	goals := make([]domain.Goal, len(items))
	for i, g := range items {
		goals[i] = g.ToDomain()
	}
	return goals
}

func expensesToDomain(items []ExpenseItem) []domain.ExpenseRecord {
	expenses := make([]domain.ExpenseRecord, len(items))
	for i, e := range items {
		expenses[i] = domain.ExpenseRecord{Category: e.Category, Amount: e.Amount}
	}
	return expenses
}

// PayoffPlanRequest represents a request for a single-strategy payoff plan.
type PayoffPlanRequest struct {
	Debts        []DebtItem      `json:"debts"`
	ExtraPayment decimal.Decimal `json:"extra_payment"`
	Strategy     string          `json:"strategy"`
}

// ToUseCaseInput converts to use case input.
func (r *PayoffPlanRequest) ToUseCaseInput() usecase.PlanInput {
	return usecase.PlanInput{
		Debts:        DebtsToDomain(r.Debts),
		ExtraPayment: r.ExtraPayment,
		Strategy:     domain.Strategy(r.Strategy),
	}
}

// PayoffCompareRequest represents a request to compare both strategies.
type PayoffCompareRequest struct {
	Debts        []DebtItem      `json:"debts"`
	ExtraPayment decimal.Decimal `json:"extra_payment"`
}

// EmergencyFundRequest represents a request to size an emergency fund.
type EmergencyFundRequest struct {
	MonthlyEssentialExpenses decimal.Decimal `json:"monthly_essential_expenses"`
	Months                   int             `json:"months"`
}

// AllocateRequest represents a request to split a surplus across goals.
type AllocateRequest struct {
	Surplus decimal.Decimal            `json:"surplus"`
	Goals   []GoalItem                 `json:"goals"`
	Weights map[string]decimal.Decimal `json:"weights,omitempty"`
}

// TimelineRequest represents a request for a goal completion timeline.
type TimelineRequest struct {
	Goal              GoalItem        `json:"goal"`
	MonthlyAllocation decimal.Decimal `json:"monthly_allocation"`
}

// BudgetItem represents a baseline budget in API requests.
type BudgetItem struct {
	MonthlyIncome decimal.Decimal `json:"monthly_income"`
	Expenses      []ExpenseItem   `json:"expenses"`
}

// ToDomain converts to a domain budget snapshot.
func (b BudgetItem) ToDomain() domain.BudgetSnapshot {
	return domain.NewBudgetSnapshot(b.MonthlyIncome, expensesToDomain(b.Expenses))
}

// ScenarioDeltaItem represents a what-if delta in API requests.
type ScenarioDeltaItem struct {
	Name             string                     `json:"name"`
	IncomeDelta      decimal.Decimal            `json:"income_delta"`
	ExpenseDeltas    map[string]decimal.Decimal `json:"expense_deltas,omitempty"`
	ExtraDebtPayment decimal.Decimal            `json:"extra_debt_payment"`
	SavingsRate      *decimal.Decimal           `json:"savings_rate,omitempty"`
}

// ToDomain converts to a domain scenario delta.
func (s ScenarioDeltaItem) ToDomain() domain.ScenarioDelta {
	return domain.ScenarioDelta{
		Name:             s.Name,
		IncomeDelta:      s.IncomeDelta,
		ExpenseDeltas:    s.ExpenseDeltas,
		ExtraDebtPayment: s.ExtraDebtPayment,
		SavingsRate:      s.SavingsRate,
	}
}

// ProjectRequest represents a request to project a scenario.
type ProjectRequest struct {
	Baseline      BudgetItem        `json:"baseline"`
	Debts         []DebtItem        `json:"debts,omitempty"`
	Goals         []GoalItem        `json:"goals,omitempty"`
	Delta         ScenarioDeltaItem `json:"delta"`
	HorizonMonths int               `json:"horizon_months"`
}

// ToUseCaseInput converts to use case input.
func (r *ProjectRequest) ToUseCaseInput() usecase.ProjectionInput {
	return usecase.ProjectionInput{
		Baseline:      r.Baseline.ToDomain(),
		Debts:         DebtsToDomain(r.Debts),
		Goals:         GoalsToDomain(r.Goals),
		Delta:         r.Delta.ToDomain(),
		HorizonMonths: r.HorizonMonths,
	}
}

// AdviceRequest represents a request for a full advisory report.
type AdviceRequest struct {
	MonthlyIncome decimal.Decimal `json:"monthly_income"`
	Dependants    int             `json:"dependants"`
	Expenses      []ExpenseItem   `json:"expenses"`
	Debts         []DebtItem      `json:"debts,omitempty"`
	Goals         []GoalItem      `json:"goals,omitempty"`
}

// ToUseCaseInput converts to use case input.
func (r *AdviceRequest) ToUseCaseInput() usecase.AnalyzeInput {
	return usecase.AnalyzeInput{
		MonthlyIncome: r.MonthlyIncome,
		Dependants:    r.Dependants,
		Expenses:      expensesToDomain(r.Expenses),
		Debts:         DebtsToDomain(r.Debts),
		Goals:         GoalsToDomain(r.Goals),
	}
}

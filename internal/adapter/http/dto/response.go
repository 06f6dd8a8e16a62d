package dto

import (
	"github.com/shopspring/decimal"

	"github.com/finplanner/finplanner/internal/domain"
)

// PayoffStepResponse represents one debt's slice of a payoff month.
type PayoffStepResponse struct {
	DebtID   string          `json:"debt_id"`
	Interest decimal.Decimal `json:"interest"`
	Payment  decimal.Decimal `json:"payment"`
	Balance  decimal.Decimal `json:"balance"`
}

// PayoffMonthResponse represents one month of a payoff schedule.
type PayoffMonthResponse struct {
	Month         int                  `json:"month"`
	Steps         []PayoffStepResponse `json:"steps"`
	TotalPaid     decimal.Decimal      `json:"total_paid"`
	TotalInterest decimal.Decimal      `json:"total_interest"`
}

// PayoffPlanResponse represents a payoff plan in API responses.
type PayoffPlanResponse struct {
	Strategy       string                `json:"strategy"`
	MonthsToPayoff int                   `json:"months_to_payoff"`
	TotalPrincipal decimal.Decimal       `json:"total_principal"`
	TotalInterest  decimal.Decimal       `json:"total_interest"`
	TotalPaid      decimal.Decimal       `json:"total_paid"`
	Months         []PayoffMonthResponse `json:"months"`
}

// PayoffPlanFromDomain converts a domain payoff plan to a response.
func PayoffPlanFromDomain(p *domain.PayoffPlan) *PayoffPlanResponse {
	months := make([]PayoffMonthResponse, len(p.Months))
	for i, m := range p.Months {
		steps := make([]PayoffStepResponse, len(m.Steps))
		for j, s := range m.Steps {
			steps[j] = PayoffStepResponse{
				DebtID:   s.DebtID,
				Interest: s.Interest,
				Payment:  s.Payment,
				Balance:  s.Balance,
			}
		}
		months[i] = PayoffMonthResponse{
			Month:         m.Month,
			Steps:         steps,
			TotalPaid:     m.TotalPaid,
			TotalInterest: m.TotalInterest,
		}
	}
	return &PayoffPlanResponse{
		Strategy:       string(p.Strategy),
		MonthsToPayoff: p.MonthsToPayoff,
		TotalPrincipal: p.TotalPrincipal,
		TotalInterest:  p.TotalInterest,
		TotalPaid:      p.TotalPaid,
		Months:         months,
	}
}

// PlanComparisonResponse represents a strategy comparison in API responses.
type PlanComparisonResponse struct {
	Avalanche     *PayoffPlanResponse `json:"avalanche"`
	Snowball      *PayoffPlanResponse `json:"snowball"`
	InterestSaved decimal.Decimal     `json:"interest_saved"`
	MonthsSaved   int                 `json:"months_saved"`
	Recommended   string              `json:"recommended"`
}

// PlanComparisonFromDomain converts a domain comparison to a response.
func PlanComparisonFromDomain(c *domain.PlanComparison) *PlanComparisonResponse {
	return &PlanComparisonResponse{
		Avalanche:     PayoffPlanFromDomain(c.Avalanche),
		Snowball:      PayoffPlanFromDomain(c.Snowball),
		InterestSaved: c.InterestSaved,
		MonthsSaved:   c.MonthsSaved,
		Recommended:   string(c.Recommended),
	}
}

// EmergencyFundResponse represents an emergency fund target.
type EmergencyFundResponse struct {
	Target decimal.Decimal `json:"target"`
	Months int             `json:"months"`
}

// AllocationPlanResponse represents a goal allocation in API responses.
type AllocationPlanResponse struct {
	Allocations         map[string]decimal.Decimal `json:"allocations"`
	Shortfalls          map[string]decimal.Decimal `json:"shortfalls"`
	TotalAllocated      decimal.Decimal            `json:"total_allocated"`
	Unallocated         decimal.Decimal            `json:"unallocated"`
	InsufficientSurplus bool                       `json:"insufficient_surplus"`
}

// AllocationPlanFromDomain converts a domain allocation plan to a response.
func AllocationPlanFromDomain(p *domain.AllocationPlan) *AllocationPlanResponse {
	return &AllocationPlanResponse{
		Allocations:         p.Allocations,
		Shortfalls:          p.Shortfalls,
		TotalAllocated:      p.TotalAllocated(),
		Unallocated:         p.Unallocated,
		InsufficientSurplus: p.InsufficientSurplus,
	}
}

// TimelineResponse represents a goal completion timeline.
type TimelineResponse struct {
	GoalID string `json:"goal_id"`
	Months int    `json:"months"`
}

// ProjectionPointResponse represents one month of a projection.
type ProjectionPointResponse struct {
	Month             int                        `json:"month"`
	NetWorth          decimal.Decimal            `json:"net_worth"`
	CumulativeSavings decimal.Decimal            `json:"cumulative_savings"`
	RemainingDebt     decimal.Decimal            `json:"remaining_debt"`
	GoalProgress      map[string]decimal.Decimal `json:"goal_progress,omitempty"`
}

// ProjectionSeriesResponse represents a scenario trajectory in API responses.
type ProjectionSeriesResponse struct {
	Scenario string                    `json:"scenario"`
	Points   []ProjectionPointResponse `json:"points"`
}

// ProjectionSeriesFromDomain converts a domain projection series to a response.
func ProjectionSeriesFromDomain(s *domain.ProjectionSeries) *ProjectionSeriesResponse {
	points := make([]ProjectionPointResponse, len(s.Points))
	for i, p := range s.Points {
		points[i] = ProjectionPointResponse{
			Month:             p.Month,
			NetWorth:          p.NetWorth,
			CumulativeSavings: p.CumulativeSavings,
			RemainingDebt:     p.RemainingDebt,
			GoalProgress:      p.GoalProgress,
		}
	}
	return &ProjectionSeriesResponse{
		Scenario: s.Scenario,
		Points:   points,
	}
}

// ProjectionComparisonResponse pairs a scenario trajectory with its baseline.
type ProjectionComparisonResponse struct {
	Baseline *ProjectionSeriesResponse `json:"baseline"`
	Scenario *ProjectionSeriesResponse `json:"scenario"`
}

// ProjectionComparisonFromDomain converts a domain comparison to a response.
func ProjectionComparisonFromDomain(c *domain.ProjectionComparison) *ProjectionComparisonResponse {
	return &ProjectionComparisonResponse{
		Baseline: ProjectionSeriesFromDomain(c.Baseline),
		Scenario: ProjectionSeriesFromDomain(c.Scenario),
	}
}

// ErrorResponse represents an error in API responses.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}

package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/finplanner/finplanner/internal/domain"
)

// AdvisorUseCase computes emergency-fund targets, goal allocations and goal
// timelines. Like the planner it is pure and safe for concurrent use.
type AdvisorUseCase struct{}

// NewAdvisorUseCase creates a new AdvisorUseCase.
func NewAdvisorUseCase() *AdvisorUseCase {
	return &AdvisorUseCase{}
}

// EmergencyFundTarget returns essential expenses times the coverage window.
// The window must lie in the [3,12] month range.
func (uc *AdvisorUseCase) EmergencyFundTarget(monthlyEssentialExpenses decimal.Decimal, months int) (decimal.Decimal, error) {
	if monthlyEssentialExpenses.IsNegative() {
		return decimal.Zero, &domain.ValidationError{
			Field:  "monthly_essential_expenses",
			Reason: "must not be negative",
		}
	}
	if err := domain.ValidateFundMonths(months); err != nil {
		return decimal.Zero, err
	}
	return monthlyEssentialExpenses.Mul(decimal.NewFromInt(int64(months))), nil
}

// Allocate distributes a monthly surplus across goals, proportionally to
// weight times remaining need, capped at each goal's need and redistributing
// until the surplus is exhausted or every goal is met (water-filling).
//
// A non-positive surplus is not an error: the result carries all-zero
// allocations with InsufficientSurplus set, and the per-goal shortfalls are
// still populated for the caller to inspect.
func (uc *AdvisorUseCase) Allocate(surplus decimal.Decimal, goals []domain.Goal, weights map[string]decimal.Decimal) (*domain.AllocationPlan, error) {
	if err := domain.ValidateGoals(goals); err != nil {
		return nil, err
	}
	if err := domain.ValidateWeights(weights, goals); err != nil {
		return nil, err
	}

	plan := &domain.AllocationPlan{
		Allocations: make(map[string]decimal.Decimal, len(goals)),
		Shortfalls:  make(map[string]decimal.Decimal, len(goals)),
		Unallocated: decimal.Zero,
	}

	needs := make([]decimal.Decimal, len(goals))
	allocs := make([]decimal.Decimal, len(goals))
	for i := range goals {
		needs[i] = goals[i].RemainingNeed()
		allocs[i] = decimal.Zero
	}

	if !surplus.IsPositive() {
		plan.InsufficientSurplus = true
		for i := range goals {
			plan.Allocations[goals[i].ID] = decimal.Zero
			plan.Shortfalls[goals[i].ID] = needs[i]
		}
		return plan, nil
	}

	weightFor := func(id string) decimal.Decimal {
		if weights != nil {
			if w, ok := weights[id]; ok {
				return w
			}
		}
		return decimal.NewFromInt(1)
	}

	left := surplus
	for left.IsPositive() {
		var unmet []int
		denom := decimal.Zero
		for i := range goals {
			rem := needs[i].Sub(allocs[i])
			if rem.IsPositive() {
				unmet = append(unmet, i)
				denom = denom.Add(weightFor(goals[i].ID).Mul(rem))
			}
		}
		if len(unmet) == 0 || !denom.IsPositive() {
			break
		}

		distributed := decimal.Zero
		for n, i := range unmet {
			rem := needs[i].Sub(allocs[i])
			var share decimal.Decimal
			if n == len(unmet)-1 {
				// last unmet goal absorbs the rounding remainder so the pass
				// distributes the surplus exactly
				share = left.Sub(distributed)
			} else {
				share = left.Mul(weightFor(goals[i].ID).Mul(rem)).Div(denom).RoundDown(2)
			}
			share = decimal.Min(share, rem)
			allocs[i] = allocs[i].Add(share)
			distributed = distributed.Add(share)
		}

		left = left.Sub(distributed)
		if distributed.IsZero() {
			break
		}
	}

	for i := range goals {
		plan.Allocations[goals[i].ID] = allocs[i]
		plan.Shortfalls[goals[i].ID] = needs[i].Sub(allocs[i])
	}
	plan.Unallocated = left

	return plan, nil
}

// GoalTimeline returns how many months of the given allocation it takes to
// finish the goal. An unreachable goal (allocation <= 0 with need left)
// reports domain.ErrInfeasible.
func (uc *AdvisorUseCase) GoalTimeline(goal domain.Goal, monthlyAllocation decimal.Decimal) (int, error) {
	if err := domain.ValidateGoals([]domain.Goal{goal}); err != nil {
		return 0, err
	}

	need := goal.RemainingNeed()
	if need.IsZero() {
		return 0, nil
	}
	if !monthlyAllocation.IsPositive() {
		return 0, domain.ErrInfeasible
	}

	months := need.Div(monthlyAllocation).Ceil()
	return int(months.IntPart()), nil
}

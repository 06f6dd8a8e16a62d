package usecase

import (
	"github.com/shopspring/decimal"

	"github.com/finplanner/finplanner/internal/domain"
)

// ProjectorUseCase produces what-if trajectories. It reuses the planner for
// the debt side of the projection and the advisor's water-filling for goal
// progress; the projection is a pure function of its input.
type ProjectorUseCase struct {
	planner *PlannerUseCase
	advisor *AdvisorUseCase
}

// NewProjectorUseCase creates a new ProjectorUseCase.
func NewProjectorUseCase(planner *PlannerUseCase, advisor *AdvisorUseCase) *ProjectorUseCase {
	return &ProjectorUseCase{
		planner: planner,
		advisor: advisor,
	}
}

// ProjectionInput represents input for a scenario projection.
type ProjectionInput struct {
	Baseline      domain.BudgetSnapshot
	Debts         []domain.Debt
	Goals         []domain.Goal
	Delta         domain.ScenarioDelta
	HorizonMonths int
}

// Project simulates HorizonMonths months under the delta-adjusted state and
// returns one point per month. The baseline input is never mutated.
func (uc *ProjectorUseCase) Project(input ProjectionInput) (*domain.ProjectionSeries, error) {
	if err := domain.ValidateHorizon(input.HorizonMonths); err != nil {
		return nil, err
	}
	if err := domain.ValidateBudgetSnapshot(input.Baseline); err != nil {
		return nil, err
	}
	if err := domain.ValidateGoals(input.Goals); err != nil {
		return nil, err
	}
	if err := domain.ValidateScenarioDelta(input.Delta, input.Baseline); err != nil {
		return nil, err
	}
	if len(input.Debts) > 0 {
		if err := domain.ValidateDebts(input.Debts); err != nil {
			return nil, err
		}
	}

	adjusted := input.Delta.Apply(input.Baseline)
	surplus := adjusted.Surplus()

	// A deficit is carried in full; a surplus is saved at the scenario's
	// savings rate.
	monthlySaved := surplus
	if surplus.IsPositive() {
		monthlySaved = surplus.Mul(input.Delta.EffectiveSavingsRate()).Round(2)
	}

	var plan *domain.PayoffPlan
	initialDebt := decimal.Zero
	if len(input.Debts) > 0 {
		var err error
		plan, err = uc.planner.Plan(PlanInput{
			Debts:        input.Debts,
			ExtraPayment: input.Delta.ExtraDebtPayment,
			Strategy:     domain.StrategyAvalanche,
		})
		if err != nil {
			return nil, err
		}
		initialDebt = plan.TotalPrincipal
	}

	saved := make(map[string]decimal.Decimal, len(input.Goals))
	for _, g := range input.Goals {
		saved[g.ID] = g.Saved
	}

	series := &domain.ProjectionSeries{
		Scenario: input.Delta.Name,
		Points:   make([]domain.ProjectionPoint, 0, input.HorizonMonths),
	}

	cumulative := decimal.Zero
	for month := 1; month <= input.HorizonMonths; month++ {
		cumulative = cumulative.Add(monthlySaved)

		if monthlySaved.IsPositive() && len(input.Goals) > 0 {
			working := make([]domain.Goal, len(input.Goals))
			for i, g := range input.Goals {
				working[i] = g
				working[i].Saved = saved[g.ID]
			}
			alloc, err := uc.advisor.Allocate(monthlySaved, working, nil)
			if err != nil {
				return nil, err
			}
			for id, amount := range alloc.Allocations {
				saved[id] = saved[id].Add(amount)
			}
		}

		remaining := decimal.Zero
		if plan != nil {
			remaining = plan.RemainingAfter(month)
		}

		progress := make(map[string]decimal.Decimal, len(saved))
		for id, amount := range saved {
			progress[id] = amount
		}

		series.Points = append(series.Points, domain.ProjectionPoint{
			Month:             month,
			NetWorth:          cumulative.Add(initialDebt.Sub(remaining)),
			CumulativeSavings: cumulative,
			RemainingDebt:     remaining,
			GoalProgress:      progress,
		})
	}

	return series, nil
}

// Compare projects the scenario next to an unmodified baseline over the same
// horizon.
func (uc *ProjectorUseCase) Compare(input ProjectionInput) (*domain.ProjectionComparison, error) {
	scenario, err := uc.Project(input)
	if err != nil {
		return nil, err
	}

	baselineInput := input
	baselineInput.Delta = domain.ScenarioDelta{Name: "baseline"}
	baseline, err := uc.Project(baselineInput)
	if err != nil {
		return nil, err
	}

	return &domain.ProjectionComparison{
		Baseline: baseline,
		Scenario: scenario,
	}, nil
}

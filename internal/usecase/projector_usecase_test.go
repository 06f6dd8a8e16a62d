package usecase_test

import (
	"errors"
	"reflect"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/finplanner/finplanner/internal/domain"
	"github.com/finplanner/finplanner/internal/usecase"
)

func newProjector() *usecase.ProjectorUseCase {
	return usecase.NewProjectorUseCase(usecase.NewPlannerUseCase(), usecase.NewAdvisorUseCase())
}

func TestProjectorUseCase_Project_SavingsOnly(t *testing.T) {
	projector := newProjector()

	series, err := projector.Project(usecase.ProjectionInput{
		Baseline: domain.NewBudgetSnapshot(dec("3000"), []domain.ExpenseRecord{
			{Category: "housing", Amount: dec("2000")},
		}),
		Delta:         domain.ScenarioDelta{Name: "status quo"},
		HorizonMonths: 3,
	})
	if err != nil {
		t.Fatalf("Project() error = %v", err)
	}

	if series.Scenario != "status quo" {
		t.Errorf("Scenario = %q, want %q", series.Scenario, "status quo")
	}
	if len(series.Points) != 3 {
		t.Fatalf("len(Points) = %d, want 3", len(series.Points))
	}

	for i, want := range []string{"1000.00", "2000.00", "3000.00"} {
		p := series.Points[i]
		if p.Month != i+1 {
			t.Errorf("point %d: Month = %d, want %d", i, p.Month, i+1)
		}
		if got := p.CumulativeSavings.StringFixed(2); got != want {
			t.Errorf("month %d: CumulativeSavings = %s, want %s", p.Month, got, want)
		}
		if got := p.NetWorth.StringFixed(2); got != want {
			t.Errorf("month %d: NetWorth = %s, want %s", p.Month, got, want)
		}
		if !p.RemainingDebt.IsZero() {
			t.Errorf("month %d: RemainingDebt = %s, want 0", p.Month, p.RemainingDebt)
		}
	}
}

func TestProjectorUseCase_Project_DebtPaydownRaisesNetWorth(t *testing.T) {
	projector := newProjector()

	series, err := projector.Project(usecase.ProjectionInput{
		Baseline: domain.NewBudgetSnapshot(dec("3000"), []domain.ExpenseRecord{
			{Category: "housing", Amount: dec("2000")},
		}),
		Debts: []domain.Debt{
			{ID: "cc", Balance: dec("1200"), AnnualRate: dec("12"), MinimumPayment: dec("100")},
		},
		Delta:         domain.ScenarioDelta{Name: "paydown"},
		HorizonMonths: 3,
	})
	if err != nil {
		t.Fatalf("Project() error = %v", err)
	}

	first := series.Points[0]
	if got := first.RemainingDebt.StringFixed(2); got != "1112.00" {
		t.Errorf("month 1 RemainingDebt = %s, want 1112.00", got)
	}
	// 1000 saved plus 88 of principal paid down.
	if got := first.NetWorth.StringFixed(2); got != "1088.00" {
		t.Errorf("month 1 NetWorth = %s, want 1088.00", got)
	}

	third := series.Points[2]
	if got := third.RemainingDebt.StringFixed(2); got != "933.35" {
		t.Errorf("month 3 RemainingDebt = %s, want 933.35", got)
	}
	if got := third.NetWorth.StringFixed(2); got != "3266.65" {
		t.Errorf("month 3 NetWorth = %s, want 3266.65", got)
	}
}

func TestProjectorUseCase_Project_GoalProgressCapsAtTarget(t *testing.T) {
	projector := newProjector()

	series, err := projector.Project(usecase.ProjectionInput{
		Baseline: domain.NewBudgetSnapshot(dec("3000"), []domain.ExpenseRecord{
			{Category: "living", Amount: dec("2800")},
		}),
		Goals: []domain.Goal{
			{ID: "trip", Target: dec("500")},
		},
		Delta:         domain.ScenarioDelta{Name: "trip fund"},
		HorizonMonths: 3,
	})
	if err != nil {
		t.Fatalf("Project() error = %v", err)
	}

	for i, want := range []string{"200.00", "400.00", "500.00"} {
		got := series.Points[i].GoalProgress["trip"].StringFixed(2)
		if got != want {
			t.Errorf("month %d: goal progress = %s, want %s", i+1, got, want)
		}
	}
	// Savings keep accumulating after the goal is met.
	if got := series.Points[2].CumulativeSavings.StringFixed(2); got != "600.00" {
		t.Errorf("month 3 CumulativeSavings = %s, want 600.00", got)
	}
}

func TestProjectorUseCase_Project_SavingsRate(t *testing.T) {
	projector := newProjector()
	rate := dec("50")

	series, err := projector.Project(usecase.ProjectionInput{
		Baseline: domain.NewBudgetSnapshot(dec("3000"), []domain.ExpenseRecord{
			{Category: "housing", Amount: dec("2000")},
		}),
		Delta:         domain.ScenarioDelta{Name: "half saved", SavingsRate: &rate},
		HorizonMonths: 2,
	})
	if err != nil {
		t.Fatalf("Project() error = %v", err)
	}

	if got := series.Points[1].CumulativeSavings.StringFixed(2); got != "1000.00" {
		t.Errorf("month 2 CumulativeSavings = %s, want 1000.00 at a 50%% rate", got)
	}
}

func TestProjectorUseCase_Project_DeficitCarriedInFull(t *testing.T) {
	projector := newProjector()

	// The savings rate never softens a deficit.
	rate := dec("50")
	series, err := projector.Project(usecase.ProjectionInput{
		Baseline: domain.NewBudgetSnapshot(dec("1000"), []domain.ExpenseRecord{
			{Category: "housing", Amount: dec("1500")},
		}),
		Delta:         domain.ScenarioDelta{Name: "deficit", SavingsRate: &rate},
		HorizonMonths: 2,
	})
	if err != nil {
		t.Fatalf("Project() error = %v", err)
	}

	if got := series.Points[1].CumulativeSavings.StringFixed(2); got != "-1000.00" {
		t.Errorf("month 2 CumulativeSavings = %s, want -1000.00", got)
	}
	if got := series.Points[1].NetWorth.StringFixed(2); got != "-1000.00" {
		t.Errorf("month 2 NetWorth = %s, want -1000.00", got)
	}
}

func TestProjectorUseCase_Project_DoesNotMutateBaseline(t *testing.T) {
	projector := newProjector()
	baseline := domain.NewBudgetSnapshot(dec("3000"), []domain.ExpenseRecord{
		{Category: "housing", Amount: dec("2000")},
	})

	_, err := projector.Project(usecase.ProjectionInput{
		Baseline: baseline,
		Delta: domain.ScenarioDelta{
			Name:          "cut rent",
			IncomeDelta:   dec("500"),
			ExpenseDeltas: map[string]decimal.Decimal{"housing": dec("-300"), "gym": dec("40")},
		},
		HorizonMonths: 1,
	})
	if err != nil {
		t.Fatalf("Project() error = %v", err)
	}

	if got := baseline.MonthlyIncome.StringFixed(2); got != "3000.00" {
		t.Errorf("baseline income mutated to %s", got)
	}
	if got := baseline.Expenses["housing"].StringFixed(2); got != "2000.00" {
		t.Errorf("baseline housing expense mutated to %s", got)
	}
	if _, ok := baseline.Expenses["gym"]; ok {
		t.Error("delta-only category leaked into the baseline")
	}
}

func TestProjectorUseCase_Project_Deterministic(t *testing.T) {
	projector := newProjector()
	input := usecase.ProjectionInput{
		Baseline: domain.NewBudgetSnapshot(dec("4200"), []domain.ExpenseRecord{
			{Category: "housing", Amount: dec("1500")},
			{Category: "food", Amount: dec("600")},
		}),
		Debts: []domain.Debt{
			{ID: "cc", Balance: dec("2500"), AnnualRate: dec("18"), MinimumPayment: dec("80")},
		},
		Goals: []domain.Goal{
			{ID: "fund", Target: dec("10000"), Saved: dec("1200")},
		},
		Delta:         domain.ScenarioDelta{Name: "raise", IncomeDelta: dec("300"), ExtraDebtPayment: dec("100")},
		HorizonMonths: 24,
	}

	first, err := projector.Project(input)
	if err != nil {
		t.Fatalf("Project() error = %v", err)
	}
	second, err := projector.Project(input)
	if err != nil {
		t.Fatalf("Project() error = %v", err)
	}
	if !reflect.DeepEqual(first, second) {
		t.Error("identical inputs produced different projections")
	}
}

func TestProjectorUseCase_Project_Validation(t *testing.T) {
	projector := newProjector()
	baseline := domain.NewBudgetSnapshot(dec("3000"), nil)

	_, err := projector.Project(usecase.ProjectionInput{Baseline: baseline, HorizonMonths: 0})
	var vErr *domain.ValidationError
	if !errors.As(err, &vErr) || vErr.Field != "horizon_months" {
		t.Errorf("Project() error = %v, want ValidationError on horizon_months", err)
	}

	_, err = projector.Project(usecase.ProjectionInput{
		Baseline:      baseline,
		Delta:         domain.ScenarioDelta{Name: "broke", IncomeDelta: dec("-4000")},
		HorizonMonths: 1,
	})
	if !errors.As(err, &vErr) || vErr.Field != "delta.income_delta" {
		t.Errorf("Project() error = %v, want ValidationError on delta.income_delta", err)
	}
}

func TestProjectorUseCase_Project_NeverPayoffPropagates(t *testing.T) {
	projector := newProjector()

	_, err := projector.Project(usecase.ProjectionInput{
		Baseline: domain.NewBudgetSnapshot(dec("3000"), nil),
		Debts: []domain.Debt{
			{ID: "cc", Balance: dec("10000"), AnnualRate: dec("24"), MinimumPayment: dec("100")},
		},
		Delta:         domain.ScenarioDelta{Name: "stuck"},
		HorizonMonths: 12,
	})
	if !errors.Is(err, domain.ErrNeverPayoff) {
		t.Fatalf("Project() error = %v, want ErrNeverPayoff", err)
	}
}

func TestProjectorUseCase_Compare(t *testing.T) {
	projector := newProjector()

	cmp, err := projector.Compare(usecase.ProjectionInput{
		Baseline: domain.NewBudgetSnapshot(dec("3000"), []domain.ExpenseRecord{
			{Category: "housing", Amount: dec("2000")},
		}),
		Delta:         domain.ScenarioDelta{Name: "raise", IncomeDelta: dec("500")},
		HorizonMonths: 2,
	})
	if err != nil {
		t.Fatalf("Compare() error = %v", err)
	}

	if cmp.Baseline.Scenario != "baseline" {
		t.Errorf("baseline name = %q, want %q", cmp.Baseline.Scenario, "baseline")
	}
	if cmp.Scenario.Scenario != "raise" {
		t.Errorf("scenario name = %q, want %q", cmp.Scenario.Scenario, "raise")
	}
	if got := cmp.Baseline.Points[1].CumulativeSavings.StringFixed(2); got != "2000.00" {
		t.Errorf("baseline month 2 savings = %s, want 2000.00", got)
	}
	if got := cmp.Scenario.Points[1].CumulativeSavings.StringFixed(2); got != "3000.00" {
		t.Errorf("scenario month 2 savings = %s, want 3000.00", got)
	}
}

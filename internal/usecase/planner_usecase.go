package usecase

import (
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/finplanner/finplanner/internal/domain"
)

// PlannerUseCase computes debt payoff schedules. It is a pure calculator:
// no shared state, no I/O, safe for concurrent use.
type PlannerUseCase struct{}

// NewPlannerUseCase creates a new PlannerUseCase.
func NewPlannerUseCase() *PlannerUseCase {
	return &PlannerUseCase{}
}

// PlanInput represents input for a payoff simulation.
type PlanInput struct {
	Debts        []domain.Debt
	ExtraPayment decimal.Decimal
	Strategy     domain.Strategy
}

// Plan simulates the month-by-month payoff of the given debts under one
// strategy. It returns domain.ErrNeverPayoff when the payments cannot keep up
// with accruing interest, instead of looping past the safety cap.
func (uc *PlannerUseCase) Plan(input PlanInput) (*domain.PayoffPlan, error) {
	if err := domain.ValidateDebts(input.Debts); err != nil {
		return nil, err
	}
	if err := domain.ValidateExtraPayment(input.ExtraPayment); err != nil {
		return nil, err
	}
	if err := domain.ValidateStrategy(input.Strategy); err != nil {
		return nil, err
	}

	work := make([]*workingDebt, len(input.Debts))
	totalPrincipal := decimal.Zero
	for i, d := range input.Debts {
		work[i] = &workingDebt{debt: d, balance: d.Balance}
		totalPrincipal = totalPrincipal.Add(d.Balance)
	}

	plan := &domain.PayoffPlan{
		Strategy:       input.Strategy,
		TotalPrincipal: totalPrincipal,
		TotalInterest:  decimal.Zero,
		TotalPaid:      decimal.Zero,
	}

	for month := 1; month <= MaxPayoffMonths; month++ {
		open := openDebts(work)
		if len(open) == 0 {
			break
		}

		startBalances := make(map[string]decimal.Decimal, len(open))
		for _, w := range open {
			startBalances[w.debt.ID] = w.balance
		}

		// Accrue interest on every open debt.
		interest := make(map[string]decimal.Decimal, len(open))
		monthInterest := decimal.Zero
		for _, w := range open {
			accrued := w.balance.Mul(w.debt.MonthlyRate()).Round(2)
			interest[w.debt.ID] = accrued
			w.balance = w.balance.Add(accrued)
			monthInterest = monthInterest.Add(accrued)
		}

		// Minimum payments go to their own debts. A closed debt's freed
		// minimum and whatever a closing debt cannot absorb roll over into
		// the pool, on top of the extra payment.
		pool := input.ExtraPayment
		payments := make(map[string]decimal.Decimal, len(open))
		for _, w := range work {
			if !w.balance.IsPositive() {
				pool = pool.Add(w.debt.MinimumPayment)
				continue
			}
			pay := decimal.Min(w.debt.MinimumPayment, w.balance)
			w.balance = w.balance.Sub(pay)
			payments[w.debt.ID] = pay
			pool = pool.Add(w.debt.MinimumPayment.Sub(pay))
		}

		// The pool goes to the focus debt; if the focus closes mid-month the
		// remainder cascades to the next focus.
		for pool.IsPositive() {
			focus := pickFocus(work, input.Strategy)
			if focus == nil {
				break
			}
			pay := decimal.Min(pool, focus.balance)
			focus.balance = focus.balance.Sub(pay)
			payments[focus.debt.ID] = payments[focus.debt.ID].Add(pay)
			pool = pool.Sub(pay)
		}

		pm := domain.PayoffMonth{
			Month:         month,
			Steps:         make([]domain.PayoffStep, 0, len(open)),
			TotalInterest: monthInterest,
			TotalPaid:     decimal.Zero,
		}
		for _, w := range open {
			if w.balance.IsNegative() {
				return nil, fmt.Errorf("%w: debt %s has negative balance %s in month %d",
					domain.ErrInvariantViolation, w.debt.ID, w.balance, month)
			}
			pm.Steps = append(pm.Steps, domain.PayoffStep{
				DebtID:   w.debt.ID,
				Interest: interest[w.debt.ID],
				Payment:  payments[w.debt.ID],
				Balance:  w.balance,
			})
			pm.TotalPaid = pm.TotalPaid.Add(payments[w.debt.ID])
		}

		plan.Months = append(plan.Months, pm)
		plan.TotalInterest = plan.TotalInterest.Add(pm.TotalInterest)
		plan.TotalPaid = plan.TotalPaid.Add(pm.TotalPaid)

		if len(openDebts(work)) == 0 {
			plan.MonthsToPayoff = month
			return plan, nil
		}

		// If no open debt got any closer to zero this month the simulation
		// can never converge.
		progressed := false
		for _, w := range open {
			if w.balance.IsPositive() && w.balance.LessThan(startBalances[w.debt.ID]) {
				progressed = true
				break
			}
			if !w.balance.IsPositive() {
				progressed = true
				break
			}
		}
		if !progressed {
			return nil, fmt.Errorf("%w: no balance decreased in month %d", domain.ErrNeverPayoff, month)
		}
	}

	return nil, fmt.Errorf("%w: open balances remain after %d months", domain.ErrNeverPayoff, MaxPayoffMonths)
}

// Compare runs both strategies over the same debt set and reports the
// interest and months saved by the cheaper one.
func (uc *PlannerUseCase) Compare(debts []domain.Debt, extraPayment decimal.Decimal) (*domain.PlanComparison, error) {
	avalanche, err := uc.Plan(PlanInput{Debts: debts, ExtraPayment: extraPayment, Strategy: domain.StrategyAvalanche})
	if err != nil {
		return nil, err
	}
	snowball, err := uc.Plan(PlanInput{Debts: debts, ExtraPayment: extraPayment, Strategy: domain.StrategySnowball})
	if err != nil {
		return nil, err
	}

	recommended := domain.StrategyAvalanche
	if snowball.TotalInterest.LessThan(avalanche.TotalInterest) {
		recommended = domain.StrategySnowball
	}

	return &domain.PlanComparison{
		Avalanche:     avalanche,
		Snowball:      snowball,
		InterestSaved: snowball.TotalInterest.Sub(avalanche.TotalInterest),
		MonthsSaved:   snowball.MonthsToPayoff - avalanche.MonthsToPayoff,
		Recommended:   recommended,
	}, nil
}

type workingDebt struct {
	debt    domain.Debt
	balance decimal.Decimal
}

func openDebts(work []*workingDebt) []*workingDebt {
	open := make([]*workingDebt, 0, len(work))
	for _, w := range work {
		if w.balance.IsPositive() {
			open = append(open, w)
		}
	}
	return open
}

// pickFocus selects the single focus debt for the month among still-open
// debts. Tie-breaks keep the choice deterministic: avalanche prefers the
// larger balance, snowball the higher rate, and both fall back to the lowest
// debt ID.
func pickFocus(work []*workingDebt, strategy domain.Strategy) *workingDebt {
	var best *workingDebt
	for _, w := range work {
		if !w.balance.IsPositive() {
			continue
		}
		if best == nil || focusBefore(w, best, strategy) {
			best = w
		}
	}
	return best
}

func focusBefore(a, b *workingDebt, strategy domain.Strategy) bool {
	if strategy == domain.StrategySnowball {
		if c := a.balance.Cmp(b.balance); c != 0 {
			return c < 0
		}
		if c := a.debt.AnnualRate.Cmp(b.debt.AnnualRate); c != 0 {
			return c > 0
		}
	} else {
		if c := a.debt.AnnualRate.Cmp(b.debt.AnnualRate); c != 0 {
			return c > 0
		}
		if c := a.balance.Cmp(b.balance); c != 0 {
			return c > 0
		}
	}
	return a.debt.ID < b.debt.ID
}

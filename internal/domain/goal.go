package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Goal is a savings target. Saved may exceed Target; the goal is simply
// complete once Saved >= Target.
type Goal struct {
	ID         string
	Name       string
	Target     decimal.Decimal
	Saved      decimal.Decimal
	TargetDate *time.Time
}

// RemainingNeed returns how much is still missing, never negative.
func (g *Goal) RemainingNeed() decimal.Decimal {
	need := g.Target.Sub(g.Saved)
	if need.IsNegative() {
		return decimal.Zero
	}
	return need
}

// Complete reports whether the goal is fully funded.
func (g *Goal) Complete() bool {
	return g.Saved.GreaterThanOrEqual(g.Target)
}

// AllocationPlan is the result of distributing a monthly surplus across
// goals. InsufficientSurplus is a reportable condition, not an error:
// callers may still inspect the per-goal shortfalls.
type AllocationPlan struct {
	Allocations         map[string]decimal.Decimal
	Shortfalls          map[string]decimal.Decimal // remaining need after allocation
	Unallocated         decimal.Decimal
	InsufficientSurplus bool
}

// TotalAllocated returns the sum of all per-goal allocations.
func (p *AllocationPlan) TotalAllocated() decimal.Decimal {
	total := decimal.Zero
	for _, amount := range p.Allocations {
		total = total.Add(amount)
	}
	return total
}

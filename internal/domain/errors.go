package domain

import "errors"

var (
	// Planner errors
	ErrNeverPayoff = errors.New("debts cannot be paid off: payments do not cover accruing interest")

	// Advisor errors
	ErrInfeasible = errors.New("goal cannot be reached with the given allocation")

	// Advice session errors
	ErrSessionNotFound = errors.New("advice session not found")

	// ErrInvariantViolation signals an internal defect such as a negative
	// balance appearing mid-simulation. It is surfaced as a structured error,
	// never hidden behind a partial result.
	ErrInvariantViolation = errors.New("internal invariant violation")
)

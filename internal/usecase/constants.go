package usecase

const (
	// MaxPayoffMonths is the safety cap for the payoff simulation. Hitting it
	// with open debts is reported as a never-payoff condition, never looped past.
	MaxPayoffMonths = 600

	// DefaultFundMonths is the emergency-fund coverage used when the caller
	// expresses no preference. One month is added per dependant, clamped to
	// the [3,12] window.
	DefaultFundMonths = 6
)

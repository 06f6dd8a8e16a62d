package usecase

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/finplanner/finplanner/internal/domain"
)

const generatorSystemPrompt = "You are a personal-finance advisor. You are given exact, " +
	"pre-computed numbers; never invent or recompute figures. Write short, plain-language " +
	"commentary (3-4 sentences) that explains what the numbers mean for the user."

// AdviceUseCase runs the sequential advisory pipeline: budget analysis,
// savings strategy, debt reduction. All numbers come from the deterministic
// calculators; the text generator only narrates them and every narration has
// a deterministic fallback.
type AdviceUseCase struct {
	planner   *PlannerUseCase
	advisor   *AdvisorUseCase
	generator TextGenerator // optional
	cache     Cache         // optional
	sessions  SessionStore
	idGen     IDGenerator
	cacheTTL  time.Duration
	logger    zerolog.Logger
}

// NewAdviceUseCase creates a new AdviceUseCase. The generator and cache may
// be nil; the pipeline then runs fully deterministic and uncached.
func NewAdviceUseCase(
	planner *PlannerUseCase,
	advisor *AdvisorUseCase,
	generator TextGenerator,
	cache Cache,
	sessions SessionStore,
	idGen IDGenerator,
	cacheTTL time.Duration,
	logger zerolog.Logger,
) *AdviceUseCase {
	return &AdviceUseCase{
		planner:   planner,
		advisor:   advisor,
		generator: generator,
		cache:     cache,
		sessions:  sessions,
		idGen:     idGen,
		cacheTTL:  cacheTTL,
		logger:    logger,
	}
}

// AnalyzeInput represents one household's financial picture.
type AnalyzeInput struct {
	MonthlyIncome decimal.Decimal        `json:"monthly_income"`
	Dependants    int                    `json:"dependants"`
	Expenses      []domain.ExpenseRecord `json:"expenses"`
	Debts         []domain.Debt          `json:"debts"`
	Goals         []domain.Goal          `json:"goals"`
}

// Analyze runs the full pipeline and stores the report under a fresh session
// ID. Identical inputs hit the report cache when one is configured.
func (uc *AdviceUseCase) Analyze(ctx context.Context, input AnalyzeInput) (*domain.AdviceReport, error) {
	if input.MonthlyIncome.IsNegative() {
		return nil, &domain.ValidationError{Field: "monthly_income", Reason: "must not be negative"}
	}
	if input.Dependants < 0 {
		return nil, &domain.ValidationError{Field: "dependants", Reason: "must not be negative"}
	}

	snapshot := domain.NewBudgetSnapshot(input.MonthlyIncome, input.Expenses)
	if err := domain.ValidateBudgetSnapshot(snapshot); err != nil {
		return nil, err
	}
	if err := domain.ValidateGoals(input.Goals); err != nil {
		return nil, err
	}
	if len(input.Debts) > 0 {
		if err := domain.ValidateDebts(input.Debts); err != nil {
			return nil, err
		}
	}

	cacheKey, err := adviceCacheKey(input)
	if err == nil && uc.cache != nil {
		if cached, cacheErr := uc.cache.Get(ctx, cacheKey); cacheErr == nil {
			var report domain.AdviceReport
			if jsonErr := json.Unmarshal([]byte(cached), &report); jsonErr == nil {
				// fresh session for the cached numbers
				report.SessionID = uc.idGen.Generate()
				if saveErr := uc.sessions.Save(ctx, &report); saveErr != nil {
					return nil, saveErr
				}
				return &report, nil
			}
			uc.logger.Warn().Str("key", cacheKey).Msg("discarding undecodable cached advice report")
		}
	}

	budget := uc.analyzeBudget(ctx, snapshot)
	savings := uc.planSavings(ctx, snapshot, input.Goals, input.Dependants)
	debt, err := uc.planDebtReduction(ctx, input.Debts)
	if err != nil {
		return nil, err
	}

	report := &domain.AdviceReport{
		SessionID:   uc.idGen.Generate(),
		GeneratedAt: time.Now().UTC(),
		Budget:      budget,
		Savings:     savings,
		Debt:        debt,
	}

	if err := uc.sessions.Save(ctx, report); err != nil {
		return nil, err
	}

	if uc.cache != nil && cacheKey != "" {
		if raw, jsonErr := json.Marshal(report); jsonErr == nil {
			if cacheErr := uc.cache.Set(ctx, cacheKey, string(raw), uc.cacheTTL); cacheErr != nil {
				uc.logger.Warn().Err(cacheErr).Msg("failed to cache advice report")
			}
		}
	}

	return report, nil
}

// GetReport retrieves a previously computed report by session ID.
func (uc *AdviceUseCase) GetReport(ctx context.Context, sessionID string) (*domain.AdviceReport, error) {
	return uc.sessions.Get(ctx, sessionID)
}

func (uc *AdviceUseCase) analyzeBudget(ctx context.Context, snapshot domain.BudgetSnapshot) domain.BudgetAnalysis {
	total := snapshot.TotalExpenses()

	categories := make([]domain.CategoryBreakdown, 0, len(snapshot.Expenses))
	for category, amount := range snapshot.Expenses {
		pct := decimal.Zero
		if total.IsPositive() {
			pct = amount.Div(total).Mul(decimal.NewFromInt(100)).Round(2)
		}
		categories = append(categories, domain.CategoryBreakdown{
			Category:   category,
			Amount:     amount,
			Percentage: pct,
		})
	}
	sort.Slice(categories, func(i, j int) bool {
		if c := categories[i].Amount.Cmp(categories[j].Amount); c != 0 {
			return c > 0
		}
		return categories[i].Category < categories[j].Category
	})

	analysis := domain.BudgetAnalysis{
		MonthlyIncome: snapshot.MonthlyIncome,
		TotalExpenses: total,
		Surplus:       snapshot.Surplus(),
		Categories:    categories,
	}

	analysis.Commentary = uc.narrate(ctx, budgetPrompt(analysis), budgetFallback(analysis))
	return analysis
}

func (uc *AdviceUseCase) planSavings(ctx context.Context, snapshot domain.BudgetSnapshot, goals []domain.Goal, dependants int) domain.SavingsStrategy {
	months := DefaultFundMonths + dependants
	if months < domain.MinFundMonths {
		months = domain.MinFundMonths
	}
	if months > domain.MaxFundMonths {
		months = domain.MaxFundMonths
	}

	// Inputs were validated in Analyze; neither call can fail here.
	target, _ := uc.advisor.EmergencyFundTarget(snapshot.TotalExpenses(), months)
	allocation, _ := uc.advisor.Allocate(snapshot.Surplus(), goals, nil)

	strategy := domain.SavingsStrategy{
		FundMonths:          months,
		EmergencyFundTarget: target,
		Allocation:          allocation,
	}

	strategy.Commentary = uc.narrate(ctx, savingsPrompt(strategy), savingsFallback(strategy))
	return strategy
}

func (uc *AdviceUseCase) planDebtReduction(ctx context.Context, debts []domain.Debt) (*domain.DebtReduction, error) {
	if len(debts) == 0 {
		return nil, nil
	}

	totalDebt := decimal.Zero
	for _, d := range debts {
		totalDebt = totalDebt.Add(d.Balance)
	}

	reduction := &domain.DebtReduction{TotalDebt: totalDebt}

	comparison, err := uc.planner.Compare(debts, decimal.Zero)
	switch {
	case err == nil:
		reduction.Comparison = comparison
	case isNeverPayoff(err):
		reduction.NeverPayoff = true
	default:
		return nil, err
	}

	reduction.Commentary = uc.narrate(ctx, debtPrompt(reduction), debtFallback(reduction))
	return reduction, nil
}

// narrate asks the text generator for commentary and falls back to the
// deterministic text when the generator is absent or fails. The numbers in a
// report never depend on the model.
func (uc *AdviceUseCase) narrate(ctx context.Context, prompt, fallback string) string {
	if uc.generator == nil {
		return fallback
	}
	text, err := uc.generator.Generate(ctx, generatorSystemPrompt, prompt)
	if err != nil || strings.TrimSpace(text) == "" {
		uc.logger.Warn().Err(err).Msg("text generator unavailable, using deterministic commentary")
		return fallback
	}
	return text
}

func isNeverPayoff(err error) bool {
	return errors.Is(err, domain.ErrNeverPayoff)
}

func adviceCacheKey(input AnalyzeInput) (string, error) {
	raw, err := json.Marshal(input)
	if err != nil {
		return "", err
	}
	sum := sha256.Sum256(raw)
	return "advice:" + hex.EncodeToString(sum[:]), nil
}

func budgetPrompt(a domain.BudgetAnalysis) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Monthly income: %s. Total expenses: %s. Net surplus: %s.\n",
		a.MonthlyIncome.StringFixed(2), a.TotalExpenses.StringFixed(2), a.Surplus.StringFixed(2))
	b.WriteString("Spending by category:\n")
	for _, c := range a.Categories {
		fmt.Fprintf(&b, "- %s: %s (%s%% of spending)\n", c.Category, c.Amount.StringFixed(2), c.Percentage)
	}
	b.WriteString("Comment on the spending pattern and name the categories with the most room to cut.")
	return b.String()
}

func budgetFallback(a domain.BudgetAnalysis) string {
	if a.Surplus.IsNegative() {
		return fmt.Sprintf("You are spending %s more than you earn each month. Expenses total %s against an income of %s; start with the largest categories when looking for cuts.",
			a.Surplus.Neg().StringFixed(2), a.TotalExpenses.StringFixed(2), a.MonthlyIncome.StringFixed(2))
	}
	return fmt.Sprintf("You keep %s of your %s monthly income after %s of expenses. Directing that surplus deliberately is what the savings and debt plans below are built on.",
		a.Surplus.StringFixed(2), a.MonthlyIncome.StringFixed(2), a.TotalExpenses.StringFixed(2))
}

func savingsPrompt(s domain.SavingsStrategy) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Recommended emergency fund: %s (%d months of expenses).\n",
		s.EmergencyFundTarget.StringFixed(2), s.FundMonths)
	if s.Allocation != nil {
		if s.Allocation.InsufficientSurplus {
			b.WriteString("There is no monthly surplus to allocate to savings goals.\n")
		}
		for id, amount := range s.Allocation.Allocations {
			fmt.Fprintf(&b, "- goal %s: %s per month (shortfall %s)\n",
				id, amount.StringFixed(2), s.Allocation.Shortfalls[id].StringFixed(2))
		}
	}
	b.WriteString("Explain the emergency fund sizing and the monthly goal allocations.")
	return b.String()
}

func savingsFallback(s domain.SavingsStrategy) string {
	if s.Allocation != nil && s.Allocation.InsufficientSurplus {
		return fmt.Sprintf("Aim for an emergency fund of %s, which covers %d months of expenses. There is currently no monthly surplus to put toward goals, so reducing expenses comes first.",
			s.EmergencyFundTarget.StringFixed(2), s.FundMonths)
	}
	return fmt.Sprintf("Aim for an emergency fund of %s, covering %d months of expenses. The monthly surplus has been split across your goals in proportion to how far each one still has to go.",
		s.EmergencyFundTarget.StringFixed(2), s.FundMonths)
}

func debtPrompt(d *domain.DebtReduction) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Total debt: %s.\n", d.TotalDebt.StringFixed(2))
	if d.NeverPayoff {
		b.WriteString("The minimum payments do not cover the accruing interest; the debts never pay off at current terms.\n")
		b.WriteString("Explain why the balances grow and what kind of change (higher payments, lower rates) is needed.")
		return b.String()
	}
	if c := d.Comparison; c != nil {
		fmt.Fprintf(&b, "Avalanche: %s interest over %d months. Snowball: %s interest over %d months. Interest saved by %s: %s.\n",
			c.Avalanche.TotalInterest.StringFixed(2), c.Avalanche.MonthsToPayoff,
			c.Snowball.TotalInterest.StringFixed(2), c.Snowball.MonthsToPayoff,
			c.Recommended, c.InterestSaved.Abs().StringFixed(2))
	}
	b.WriteString("Compare the two strategies and explain the recommendation.")
	return b.String()
}

func debtFallback(d *domain.DebtReduction) string {
	if d.NeverPayoff {
		return fmt.Sprintf("Your %s of debt cannot be paid off at the current terms: the minimum payments do not keep up with the interest. Either higher payments or renegotiated rates are needed before a payoff date exists.",
			d.TotalDebt.StringFixed(2))
	}
	c := d.Comparison
	if c == nil {
		return fmt.Sprintf("Total debt is %s.", d.TotalDebt.StringFixed(2))
	}
	return fmt.Sprintf("Paying highest-rate debts first (avalanche) costs %s in interest over %d months, versus %s over %d months for smallest-balance-first (snowball). The %s order is recommended here.",
		c.Avalanche.TotalInterest.StringFixed(2), c.Avalanche.MonthsToPayoff,
		c.Snowball.TotalInterest.StringFixed(2), c.Snowball.MonthsToPayoff, c.Recommended)
}

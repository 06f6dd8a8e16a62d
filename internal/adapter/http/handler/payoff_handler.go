package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/finplanner/finplanner/internal/adapter/http/dto"
	"github.com/finplanner/finplanner/internal/domain"
	"github.com/finplanner/finplanner/internal/infrastructure/metrics"
	"github.com/finplanner/finplanner/internal/usecase"
)

// PayoffHandler handles debt payoff HTTP requests.
type PayoffHandler struct {
	plannerUC *usecase.PlannerUseCase
}

// NewPayoffHandler creates a new PayoffHandler.
func NewPayoffHandler(plannerUC *usecase.PlannerUseCase) *PayoffHandler {
	return &PayoffHandler{plannerUC: plannerUC}
}

// Plan computes a payoff schedule for one strategy.
func (h *PayoffHandler) Plan(w http.ResponseWriter, r *http.Request) {
	var req dto.PayoffPlanRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	input := req.ToUseCaseInput()
	plan, err := h.plannerUC.Plan(input)
	if err != nil {
		if errors.Is(err, domain.ErrNeverPayoff) {
			metrics.NeverPayoffDetected.Inc()
		}
		status := mapDomainError(err)
		writeError(w, status, "failed to compute payoff plan", err.Error())

		return
	}

	metrics.PlansComputed.WithLabelValues(string(input.Strategy)).Inc()
	writeJSON(w, http.StatusOK, dto.PayoffPlanFromDomain(plan))
}

// Compare runs both strategies over the same debts.
func (h *PayoffHandler) Compare(w http.ResponseWriter, r *http.Request) {
	var req dto.PayoffCompareRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	comparison, err := h.plannerUC.Compare(dto.DebtsToDomain(req.Debts), req.ExtraPayment)
	if err != nil {
		if errors.Is(err, domain.ErrNeverPayoff) {
			metrics.NeverPayoffDetected.Inc()
		}
		status := mapDomainError(err)
		writeError(w, status, "failed to compare strategies", err.Error())

		return
	}

	metrics.PlansComputed.WithLabelValues(string(domain.StrategyAvalanche)).Inc()
	metrics.PlansComputed.WithLabelValues(string(domain.StrategySnowball)).Inc()
	writeJSON(w, http.StatusOK, dto.PlanComparisonFromDomain(comparison))
}

package handler

import (
	"encoding/json"
	"net/http"

	"github.com/finplanner/finplanner/internal/adapter/http/dto"
	"github.com/finplanner/finplanner/internal/infrastructure/metrics"
	"github.com/finplanner/finplanner/internal/usecase"
)

// SavingsHandler handles savings advisory HTTP requests.
type SavingsHandler struct {
	advisorUC *usecase.AdvisorUseCase
}

// NewSavingsHandler creates a new SavingsHandler.
func NewSavingsHandler(advisorUC *usecase.AdvisorUseCase) *SavingsHandler {
	return &SavingsHandler{advisorUC: advisorUC}
}

// EmergencyFund sizes an emergency fund for a coverage window.
func (h *SavingsHandler) EmergencyFund(w http.ResponseWriter, r *http.Request) {
	var req dto.EmergencyFundRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	target, err := h.advisorUC.EmergencyFundTarget(req.MonthlyEssentialExpenses, req.Months)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to compute emergency fund target", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.EmergencyFundResponse{
		Target: target,
		Months: req.Months,
	})
}

// Allocate splits a monthly surplus across savings goals.
func (h *SavingsHandler) Allocate(w http.ResponseWriter, r *http.Request) {
	var req dto.AllocateRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	plan, err := h.advisorUC.Allocate(req.Surplus, dto.GoalsToDomain(req.Goals), req.Weights)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to allocate surplus", err.Error())

		return
	}

	metrics.AllocationsComputed.Inc()
	writeJSON(w, http.StatusOK, dto.AllocationPlanFromDomain(plan))
}

// Timeline reports how many months a goal needs at a monthly allocation.
func (h *SavingsHandler) Timeline(w http.ResponseWriter, r *http.Request) {
	var req dto.TimelineRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	months, err := h.advisorUC.GoalTimeline(req.Goal.ToDomain(), req.MonthlyAllocation)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to compute goal timeline", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, dto.TimelineResponse{
		GoalID: req.Goal.ID,
		Months: months,
	})
}

package handler

import (
	"encoding/json"
	"net/http"

	"github.com/finplanner/finplanner/internal/adapter/http/dto"
	"github.com/finplanner/finplanner/internal/infrastructure/metrics"
	"github.com/finplanner/finplanner/internal/usecase"
)

// ScenarioHandler handles what-if projection HTTP requests.
type ScenarioHandler struct {
	projectorUC *usecase.ProjectorUseCase
}

// NewScenarioHandler creates a new ScenarioHandler.
func NewScenarioHandler(projectorUC *usecase.ProjectorUseCase) *ScenarioHandler {
	return &ScenarioHandler{projectorUC: projectorUC}
}

// Project computes one scenario's trajectory.
func (h *ScenarioHandler) Project(w http.ResponseWriter, r *http.Request) {
	var req dto.ProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	series, err := h.projectorUC.Project(req.ToUseCaseInput())
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to project scenario", err.Error())

		return
	}

	metrics.ProjectionsComputed.Inc()
	writeJSON(w, http.StatusOK, dto.ProjectionSeriesFromDomain(series))
}

// Compare projects a scenario next to its unmodified baseline.
func (h *ScenarioHandler) Compare(w http.ResponseWriter, r *http.Request) {
	var req dto.ProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	comparison, err := h.projectorUC.Compare(req.ToUseCaseInput())
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to compare scenario", err.Error())

		return
	}

	metrics.ProjectionsComputed.Inc()
	writeJSON(w, http.StatusOK, dto.ProjectionComparisonFromDomain(comparison))
}

package handler

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/finplanner/finplanner/internal/adapter/http/dto"
	"github.com/finplanner/finplanner/internal/infrastructure/metrics"
	"github.com/finplanner/finplanner/internal/usecase"
)

// AdviceHandler handles advisory pipeline HTTP requests.
type AdviceHandler struct {
	adviceUC *usecase.AdviceUseCase
}

// NewAdviceHandler creates a new AdviceHandler.
func NewAdviceHandler(adviceUC *usecase.AdviceUseCase) *AdviceHandler {
	return &AdviceHandler{adviceUC: adviceUC}
}

// Analyze runs the full advisory pipeline and returns the stored report.
func (h *AdviceHandler) Analyze(w http.ResponseWriter, r *http.Request) {
	var req dto.AdviceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body", err.Error())
		return
	}

	report, err := h.adviceUC.Analyze(r.Context(), req.ToUseCaseInput())
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to generate advice", err.Error())

		return
	}

	metrics.AdviceReportsGenerated.Inc()
	writeJSON(w, http.StatusCreated, report)
}

// Get retrieves a previously generated report by session ID.
func (h *AdviceHandler) Get(w http.ResponseWriter, r *http.Request) {
	sessionID := chi.URLParam(r, "sessionID")
	if sessionID == "" {
		writeError(w, http.StatusBadRequest, "missing session ID", "")
		return
	}

	report, err := h.adviceUC.GetReport(r.Context(), sessionID)
	if err != nil {
		status := mapDomainError(err)
		writeError(w, status, "failed to get advice report", err.Error())

		return
	}

	writeJSON(w, http.StatusOK, report)
}

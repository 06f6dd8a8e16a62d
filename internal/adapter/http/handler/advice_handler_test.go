package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"

	"github.com/finplanner/finplanner/internal/adapter/http/dto"
	"github.com/finplanner/finplanner/internal/domain"
	"github.com/finplanner/finplanner/internal/usecase"
	"github.com/finplanner/finplanner/internal/usecase/mocks"
)

func newAdviceHandler(store *mocks.MockSessionStore) *AdviceHandler {
	planner := usecase.NewPlannerUseCase()
	advisor := usecase.NewAdvisorUseCase()
	adviceUC := usecase.NewAdviceUseCase(
		planner,
		advisor,
		nil,
		mocks.NewMockCache(),
		store,
		mocks.NewMockIDGenerator(),
		time.Hour,
		zerolog.Nop(),
	)
	return NewAdviceHandler(adviceUC)
}

func sampleAdviceRequest() dto.AdviceRequest {
	return dto.AdviceRequest{
		MonthlyIncome: decimal.RequireFromString("5000"),
		Dependants:    1,
		Expenses: []dto.ExpenseItem{
			{Category: "rent", Amount: decimal.RequireFromString("1500")},
			{Category: "food", Amount: decimal.RequireFromString("600")},
		},
		Debts: []dto.DebtItem{{
			ID:             "card",
			Balance:        decimal.RequireFromString("1200"),
			AnnualRate:     decimal.RequireFromString("12"),
			MinimumPayment: decimal.RequireFromString("100"),
		}},
		Goals: []dto.GoalItem{{
			ID:     "fund",
			Target: decimal.RequireFromString("10000"),
			Saved:  decimal.Zero,
		}},
	}
}

func TestAdviceHandler_Analyze_Success(t *testing.T) {
	handler := newAdviceHandler(mocks.NewMockSessionStore())

	body, _ := json.Marshal(sampleAdviceRequest())
	req := httptest.NewRequest(http.MethodPost, "/advice/", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Analyze(rec, req)

	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}

	var report domain.AdviceReport
	if err := json.Unmarshal(rec.Body.Bytes(), &report); err != nil {
		t.Fatalf("failed to decode report: %v", err)
	}

	if report.SessionID == "" {
		t.Fatal("expected a session ID")
	}
	if !report.Budget.Surplus.Equal(decimal.RequireFromString("2900")) {
		t.Fatalf("expected surplus 2900, got %s", report.Budget.Surplus)
	}
	if report.Savings.FundMonths != 7 {
		t.Fatalf("expected 7 fund months, got %d", report.Savings.FundMonths)
	}
	if report.Debt == nil || report.Debt.NeverPayoff {
		t.Fatalf("expected a converged debt section, got %+v", report.Debt)
	}
}

func TestAdviceHandler_Analyze_InvalidBody(t *testing.T) {
	handler := newAdviceHandler(mocks.NewMockSessionStore())

	req := httptest.NewRequest(http.MethodPost, "/advice/", bytes.NewBufferString("{bad json"))
	rec := httptest.NewRecorder()

	handler.Analyze(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestAdviceHandler_Analyze_ValidationError(t *testing.T) {
	handler := newAdviceHandler(mocks.NewMockSessionStore())

	request := sampleAdviceRequest()
	request.MonthlyIncome = decimal.RequireFromString("-1")

	body, _ := json.Marshal(request)
	req := httptest.NewRequest(http.MethodPost, "/advice/", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Analyze(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestAdviceHandler_Get_Success(t *testing.T) {
	store := mocks.NewMockSessionStore()
	handler := newAdviceHandler(store)

	stored := &domain.AdviceReport{SessionID: "session-1"}
	if err := store.Save(context.Background(), stored); err != nil {
		t.Fatalf("failed to seed store: %v", err)
	}

	req := httptest.NewRequest(http.MethodGet, "/advice/session-1", nil)
	req = setChiURLParam(req, "sessionID", "session-1")
	rec := httptest.NewRecorder()

	handler.Get(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var report domain.AdviceReport
	if err := json.Unmarshal(rec.Body.Bytes(), &report); err != nil {
		t.Fatalf("failed to decode report: %v", err)
	}
	if report.SessionID != "session-1" {
		t.Fatalf("expected session-1, got %s", report.SessionID)
	}
}

func TestAdviceHandler_Get_NotFound(t *testing.T) {
	handler := newAdviceHandler(mocks.NewMockSessionStore())

	req := httptest.NewRequest(http.MethodGet, "/advice/missing", nil)
	req = setChiURLParam(req, "sessionID", "missing")
	rec := httptest.NewRecorder()

	handler.Get(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
}

func setChiURLParam(r *http.Request, key, value string) *http.Request {
	return r.WithContext(context.WithValue(r.Context(), chi.RouteCtxKey, &chi.Context{
		URLParams: chi.RouteParams{
			Keys:   []string{key},
			Values: []string{value},
		},
	}))
}

package handler

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/finplanner/finplanner/internal/adapter/http/dto"
	"github.com/finplanner/finplanner/internal/usecase"
)

func newPayoffHandler() *PayoffHandler {
	return NewPayoffHandler(usecase.NewPlannerUseCase())
}

func singleDebtRequest() dto.PayoffPlanRequest {
	return dto.PayoffPlanRequest{
		Debts: []dto.DebtItem{{
			ID:             "card",
			Balance:        decimal.RequireFromString("1200"),
			AnnualRate:     decimal.RequireFromString("12"),
			MinimumPayment: decimal.RequireFromString("100"),
		}},
		ExtraPayment: decimal.Zero,
		Strategy:     "avalanche",
	}
}

func TestPayoffHandler_Plan_Success(t *testing.T) {
	handler := newPayoffHandler()

	body, _ := json.Marshal(singleDebtRequest())
	req := httptest.NewRequest(http.MethodPost, "/payoff/plan", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Plan(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp dto.PayoffPlanResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.Strategy != "avalanche" {
		t.Fatalf("expected avalanche strategy, got %s", resp.Strategy)
	}
	if resp.MonthsToPayoff != 13 {
		t.Fatalf("expected 13 months to payoff, got %d", resp.MonthsToPayoff)
	}
	if !resp.TotalInterest.Equal(decimal.RequireFromString("84.78")) {
		t.Fatalf("expected total interest 84.78, got %s", resp.TotalInterest)
	}
	if len(resp.Months) != 13 {
		t.Fatalf("expected 13 schedule months, got %d", len(resp.Months))
	}
}

func TestPayoffHandler_Plan_InvalidBody(t *testing.T) {
	handler := newPayoffHandler()

	req := httptest.NewRequest(http.MethodPost, "/payoff/plan", bytes.NewBufferString("{bad json"))
	rec := httptest.NewRecorder()

	handler.Plan(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

func TestPayoffHandler_Plan_ValidationError(t *testing.T) {
	handler := newPayoffHandler()

	// Missing debt ID fails validation before any simulation runs.
	request := singleDebtRequest()
	request.Debts[0].ID = ""

	body, _ := json.Marshal(request)
	req := httptest.NewRequest(http.MethodPost, "/payoff/plan", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Plan(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestPayoffHandler_Plan_NeverPayoff(t *testing.T) {
	handler := newPayoffHandler()

	// Interest outruns the minimum payment, so the balance never shrinks.
	request := dto.PayoffPlanRequest{
		Debts: []dto.DebtItem{{
			ID:             "loan",
			Balance:        decimal.RequireFromString("10000"),
			AnnualRate:     decimal.RequireFromString("24"),
			MinimumPayment: decimal.RequireFromString("100"),
		}},
		Strategy: "avalanche",
	}

	body, _ := json.Marshal(request)
	req := httptest.NewRequest(http.MethodPost, "/payoff/plan", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Plan(rec, req)

	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422, got %d: %s", rec.Code, rec.Body.String())
	}
}

func TestPayoffHandler_Compare_Success(t *testing.T) {
	handler := newPayoffHandler()

	request := dto.PayoffCompareRequest{
		Debts: []dto.DebtItem{
			{
				ID:             "card",
				Balance:        decimal.RequireFromString("1200"),
				AnnualRate:     decimal.RequireFromString("18"),
				MinimumPayment: decimal.RequireFromString("60"),
			},
			{
				ID:             "loan",
				Balance:        decimal.RequireFromString("3000"),
				AnnualRate:     decimal.RequireFromString("6"),
				MinimumPayment: decimal.RequireFromString("90"),
			},
		},
		ExtraPayment: decimal.RequireFromString("50"),
	}

	body, _ := json.Marshal(request)
	req := httptest.NewRequest(http.MethodPost, "/payoff/compare", bytes.NewReader(body))
	rec := httptest.NewRecorder()

	handler.Compare(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var resp dto.PlanComparisonResponse
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}

	if resp.Avalanche == nil || resp.Snowball == nil {
		t.Fatal("expected both plans in comparison")
	}
	if resp.Recommended != "avalanche" {
		t.Fatalf("expected avalanche recommendation, got %s", resp.Recommended)
	}
	if resp.InterestSaved.IsNegative() {
		t.Fatalf("expected non-negative interest saved, got %s", resp.InterestSaved)
	}
}

func TestPayoffHandler_Compare_InvalidBody(t *testing.T) {
	handler := newPayoffHandler()

	req := httptest.NewRequest(http.MethodPost, "/payoff/compare", bytes.NewBufferString("not json"))
	rec := httptest.NewRecorder()

	handler.Compare(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
}

package domain

import (
	"testing"

	"github.com/shopspring/decimal"
)

func TestNewBudgetSnapshot_MergesCategories(t *testing.T) {
	snapshot := NewBudgetSnapshot(decimal.NewFromInt(4000), []ExpenseRecord{
		{Category: "rent", Amount: decimal.NewFromInt(1200)},
		{Category: "groceries", Amount: decimal.NewFromInt(300)},
		{Category: "groceries", Amount: decimal.NewFromInt(150)},
	})

	if len(snapshot.Expenses) != 2 {
		t.Fatalf("expected 2 categories, got %d", len(snapshot.Expenses))
	}
	if snapshot.Expenses["groceries"].String() != "450" {
		t.Errorf("expected groceries 450, got %s", snapshot.Expenses["groceries"])
	}
	if snapshot.TotalExpenses().String() != "1650" {
		t.Errorf("expected total 1650, got %s", snapshot.TotalExpenses())
	}
	if snapshot.Surplus().String() != "2350" {
		t.Errorf("expected surplus 2350, got %s", snapshot.Surplus())
	}
}

func TestBudgetSnapshot_SurplusCanBeNegative(t *testing.T) {
	snapshot := NewBudgetSnapshot(decimal.NewFromInt(1000), []ExpenseRecord{
		{Category: "rent", Amount: decimal.NewFromInt(1500)},
	})
	if snapshot.Surplus().String() != "-500" {
		t.Errorf("expected deficit -500, got %s", snapshot.Surplus())
	}
}

func TestBudgetSnapshot_CloneIsIndependent(t *testing.T) {
	original := NewBudgetSnapshot(decimal.NewFromInt(3000), []ExpenseRecord{
		{Category: "rent", Amount: decimal.NewFromInt(900)},
	})

	clone := original.Clone()
	clone.Expenses["rent"] = decimal.NewFromInt(9999)
	clone.MonthlyIncome = decimal.Zero

	if original.Expenses["rent"].String() != "900" {
		t.Errorf("clone mutation leaked into original: rent = %s", original.Expenses["rent"])
	}
	if original.MonthlyIncome.String() != "3000" {
		t.Errorf("clone mutation leaked into original: income = %s", original.MonthlyIncome)
	}
}

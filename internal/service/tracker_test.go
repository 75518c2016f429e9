package service_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/SARIKA005/smartspend/internal/model"
	"github.com/SARIKA005/smartspend/internal/repository"
	"github.com/SARIKA005/smartspend/internal/service"
)

func newTracker(t *testing.T) *service.Tracker {
	t.Helper()
	store, err := repository.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return service.NewTracker(store)
}

func TestAddExpenseRoundTrip(t *testing.T) {
	tracker := newTracker(t)
	ctx := context.Background()

	added, err := tracker.AddExpense(ctx, 250.50, "Food & Dining", "2026-08-10", "lunch", []string{"Work", "Personal"})
	if err != nil {
		t.Fatalf("add expense: %v", err)
	}
	if added.ID == 0 {
		t.Fatal("expected an assigned id")
	}

	expenses, err := tracker.Expenses(ctx, "")
	if err != nil {
		t.Fatalf("list expenses: %v", err)
	}
	if len(expenses) != 1 {
		t.Fatalf("expected 1 expense, got %d", len(expenses))
	}
	got := expenses[0]
	if got.Amount != 250.50 || got.Category != "Food & Dining" || got.Date != "2026-08-10" ||
		got.Description != "lunch" || got.Tags != "Work,Personal" {
		t.Errorf("expense did not round-trip: %+v", got)
	}
}

func TestAddExpenseDefaultsToToday(t *testing.T) {
	tracker := newTracker(t)

	added, err := tracker.AddExpense(context.Background(), 100, "Other", "", "", nil)
	if err != nil {
		t.Fatalf("add expense: %v", err)
	}
	if added.Date != time.Now().Format("2006-01-02") {
		t.Errorf("expected today's date, got %s", added.Date)
	}
}

func TestAddToGoalAchieves(t *testing.T) {
	tracker := newTracker(t)
	ctx := context.Background()

	goal, err := tracker.AddGoal(ctx, "Vacation", 1000, "2027-06-30", "High", "beach trip")
	if err != nil {
		t.Fatalf("add goal: %v", err)
	}
	if goal.CurrentAmount != 0 || goal.Status != model.GoalStatusActive {
		t.Fatalf("new goal must start active at 0: %+v", goal)
	}

	updated, err := tracker.AddToGoal(ctx, goal.ID, 400)
	if err != nil {
		t.Fatalf("add to goal: %v", err)
	}
	if updated.CurrentAmount != 400 || updated.Status != model.GoalStatusActive {
		t.Fatalf("goal below target must stay active: %+v", updated)
	}

	updated, err = tracker.AddToGoal(ctx, goal.ID, 600)
	if err != nil {
		t.Fatalf("add to goal: %v", err)
	}
	if updated.CurrentAmount != 1000 || updated.Status != model.GoalStatusAchieved {
		t.Fatalf("goal at target must be achieved: %+v", updated)
	}

	// The stored record must agree with the returned copy.
	goals, err := tracker.Goals(ctx)
	if err != nil {
		t.Fatalf("list goals: %v", err)
	}
	if goals[0].Status != model.GoalStatusAchieved {
		t.Errorf("stored goal status = %s, want achieved", goals[0].Status)
	}
}

func TestAddToGoalUnknownID(t *testing.T) {
	tracker := newTracker(t)
	if _, err := tracker.AddToGoal(context.Background(), 42, 100); err == nil {
		t.Fatal("expected an error for an unknown goal id")
	}
}

func TestDashboard(t *testing.T) {
	tracker := newTracker(t)
	ctx := context.Background()
	today := time.Now().Format("2006-01-02")

	for _, e := range []struct {
		amount   float64
		category string
	}{
		{8000, "Food & Dining"},
		{3000, "Transportation"},
		{5000, "Shopping"},
		{6000, "Bills & Utilities"},
	} {
		if _, err := tracker.AddExpense(ctx, e.amount, e.category, today, "", nil); err != nil {
			t.Fatalf("add expense: %v", err)
		}
	}
	if _, err := tracker.AddSaving(ctx, 5000, today, "Salary", "Emergency fund"); err != nil {
		t.Fatalf("add saving: %v", err)
	}
	if _, err := tracker.AddGoal(ctx, "Vacation", 50000, "2027-06-30", "Medium", ""); err != nil {
		t.Fatalf("add goal: %v", err)
	}

	summary, err := tracker.Dashboard(ctx)
	if err != nil {
		t.Fatalf("dashboard: %v", err)
	}
	if summary.TotalExpenses != 22000 {
		t.Errorf("TotalExpenses = %v, want 22000", summary.TotalExpenses)
	}
	if summary.TotalSavings != 5000 {
		t.Errorf("TotalSavings = %v, want 5000", summary.TotalSavings)
	}
	if !almostEqual(summary.SavingsRate, 5000.0/22000.0*100) {
		t.Errorf("SavingsRate = %v", summary.SavingsRate)
	}
	if summary.ActiveGoals != 1 || summary.AchievedGoals != 0 {
		t.Errorf("goal counts = %d/%d, want 1/0", summary.ActiveGoals, summary.AchievedGoals)
	}
	if summary.MonthTotal != 22000 {
		t.Errorf("MonthTotal = %v, want 22000", summary.MonthTotal)
	}
	if len(summary.MonthCategories) != 4 {
		t.Errorf("expected 4 month categories, got %d", len(summary.MonthCategories))
	}
	if len(summary.Trend) != 6 {
		t.Errorf("expected a 6-month trend, got %d points", len(summary.Trend))
	}
	if got := summary.Trend[5].Amount; got != 22000 {
		t.Errorf("current month trend point = %v, want 22000", got)
	}
	if len(summary.Recent) != 4 {
		t.Errorf("expected 4 recent expenses, got %d", len(summary.Recent))
	}
}

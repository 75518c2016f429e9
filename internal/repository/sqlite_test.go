package repository_test

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/SARIKA005/smartspend/internal/model"
	"github.com/SARIKA005/smartspend/internal/repository"
)

func openStore(t *testing.T) *repository.SQLiteStore {
	t.Helper()
	store, err := repository.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

func TestCreateAndListExpenses(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	older := &model.Expense{Amount: 250.50, Category: "Food & Dining", Date: "2026-08-01", Description: "lunch", Tags: "Work,Personal"}
	newer := &model.Expense{Amount: 1200, Category: "Transportation", Date: "2026-08-15"}

	if err := store.CreateExpense(ctx, older); err != nil {
		t.Fatalf("create expense: %v", err)
	}
	if err := store.CreateExpense(ctx, newer); err != nil {
		t.Fatalf("create expense: %v", err)
	}
	if older.ID == 0 || newer.ID == 0 || older.ID == newer.ID {
		t.Fatalf("expected distinct assigned ids, got %d and %d", older.ID, newer.ID)
	}

	expenses, err := store.Expenses(ctx, "")
	if err != nil {
		t.Fatalf("list expenses: %v", err)
	}
	if len(expenses) != 2 {
		t.Fatalf("expected 2 expenses, got %d", len(expenses))
	}
	if expenses[0].Date != "2026-08-15" {
		t.Errorf("expected newest date first, got %s", expenses[0].Date)
	}

	got := expenses[1]
	if got.Amount != 250.50 || got.Category != "Food & Dining" || got.Description != "lunch" || got.Tags != "Work,Personal" {
		t.Errorf("expense did not round-trip: %+v", got)
	}
}

func TestExpensesMonthFilter(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	for _, date := range []string{"2026-07-15", "2026-08-01", "2026-08-20"} {
		if err := store.CreateExpense(ctx, &model.Expense{Amount: 100, Category: "Other", Date: date}); err != nil {
			t.Fatalf("create expense: %v", err)
		}
	}

	july, err := store.Expenses(ctx, "2026-07")
	if err != nil {
		t.Fatalf("filter expenses: %v", err)
	}
	if len(july) != 1 || july[0].Date != "2026-07-15" {
		t.Fatalf("expected only the July expense, got %+v", july)
	}

	august, err := store.Expenses(ctx, "2026-08")
	if err != nil {
		t.Fatalf("filter expenses: %v", err)
	}
	if len(august) != 2 {
		t.Fatalf("expected 2 August expenses, got %d", len(august))
	}
}

func TestGoalAchievedTransition(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	goal := &model.Goal{Name: "Vacation", TargetAmount: 1000, Deadline: "2027-01-01", Priority: "High", Status: model.GoalStatusActive}
	if err := store.CreateGoal(ctx, goal); err != nil {
		t.Fatalf("create goal: %v", err)
	}

	if err := store.UpdateGoalAmount(ctx, goal.ID, 500); err != nil {
		t.Fatalf("update goal: %v", err)
	}
	goals, err := store.Goals(ctx)
	if err != nil {
		t.Fatalf("list goals: %v", err)
	}
	if goals[0].CurrentAmount != 500 || goals[0].Status != model.GoalStatusActive {
		t.Fatalf("goal below target must stay active: %+v", goals[0])
	}

	if err := store.UpdateGoalAmount(ctx, goal.ID, 1000); err != nil {
		t.Fatalf("update goal: %v", err)
	}
	goals, err = store.Goals(ctx)
	if err != nil {
		t.Fatalf("list goals: %v", err)
	}
	if goals[0].CurrentAmount != 1000 || goals[0].Status != model.GoalStatusAchieved {
		t.Fatalf("goal at target must be achieved: %+v", goals[0])
	}
}

// Priority ordering is alphabetic on the literal strings, so the descending
// sort yields Medium, then Low, then High.
func TestGoalOrderingQuirk(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	for _, priority := range []string{"High", "Low", "Medium"} {
		goal := &model.Goal{Name: priority + " goal", TargetAmount: 100, Deadline: "2027-01-01", Priority: priority, Status: model.GoalStatusActive}
		if err := store.CreateGoal(ctx, goal); err != nil {
			t.Fatalf("create goal: %v", err)
		}
	}

	goals, err := store.Goals(ctx)
	if err != nil {
		t.Fatalf("list goals: %v", err)
	}
	want := []string{"Medium", "Low", "High"}
	for i, priority := range want {
		if goals[i].Priority != priority {
			t.Fatalf("expected priority order %v, got %s at %d", want, goals[i].Priority, i)
		}
	}
}

func TestGoalDeadlineTiebreak(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	later := &model.Goal{Name: "later", TargetAmount: 100, Deadline: "2027-06-01", Priority: "Medium", Status: model.GoalStatusActive}
	sooner := &model.Goal{Name: "sooner", TargetAmount: 100, Deadline: "2027-01-01", Priority: "Medium", Status: model.GoalStatusActive}
	if err := store.CreateGoal(ctx, later); err != nil {
		t.Fatalf("create goal: %v", err)
	}
	if err := store.CreateGoal(ctx, sooner); err != nil {
		t.Fatalf("create goal: %v", err)
	}

	goals, err := store.Goals(ctx)
	if err != nil {
		t.Fatalf("list goals: %v", err)
	}
	if goals[0].Name != "sooner" {
		t.Fatalf("expected earlier deadline first, got %s", goals[0].Name)
	}
}

func TestSavingsNewestFirst(t *testing.T) {
	store := openStore(t)
	ctx := context.Background()

	for _, date := range []string{"2026-08-01", "2026-08-20"} {
		saving := &model.Saving{Amount: 5000, Date: date, Source: "Salary", Purpose: "Emergency fund"}
		if err := store.CreateSaving(ctx, saving); err != nil {
			t.Fatalf("create saving: %v", err)
		}
		if saving.ID == 0 {
			t.Fatal("expected an assigned id")
		}
	}

	savings, err := store.Savings(ctx)
	if err != nil {
		t.Fatalf("list savings: %v", err)
	}
	if len(savings) != 2 || savings[0].Date != "2026-08-20" {
		t.Fatalf("expected newest saving first, got %+v", savings)
	}
	if savings[0].Source != "Salary" || savings[0].Purpose != "Emergency fund" {
		t.Errorf("saving did not round-trip: %+v", savings[0])
	}
}

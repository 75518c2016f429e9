package repository

import (
	"context"

	"github.com/SARIKA005/smartspend/internal/model"
)

// Store is the persistence surface for the three record kinds. Expenses and
// savings are append-only; goals additionally support an absolute update of
// the saved-up amount.
type Store interface {
	// Expenses
	CreateExpense(ctx context.Context, expense *model.Expense) error
	Expenses(ctx context.Context, month string) ([]model.Expense, error)

	// Goals
	CreateGoal(ctx context.Context, goal *model.Goal) error
	Goals(ctx context.Context) ([]model.Goal, error)
	UpdateGoalAmount(ctx context.Context, id int64, newAmount float64) error

	// Savings
	CreateSaving(ctx context.Context, saving *model.Saving) error
	Savings(ctx context.Context) ([]model.Saving, error)
}

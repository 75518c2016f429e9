package service

import (
	"context"
	"fmt"
	"time"

	"github.com/SARIKA005/smartspend/internal/model"
)

// trendMonths is the window length of the dashboard spending trend.
const trendMonths = 6

// Store defines what the tracker needs from the record store.
type Store interface {
	CreateExpense(ctx context.Context, expense *model.Expense) error
	Expenses(ctx context.Context, month string) ([]model.Expense, error)
	CreateGoal(ctx context.Context, goal *model.Goal) error
	Goals(ctx context.Context) ([]model.Goal, error)
	UpdateGoalAmount(ctx context.Context, id int64, newAmount float64) error
	CreateSaving(ctx context.Context, saving *model.Saving) error
	Savings(ctx context.Context) ([]model.Saving, error)
}

// Tracker provides the application-level operations over financial records.
type Tracker struct {
	store Store
	now   func() time.Time
}

func NewTracker(store Store) *Tracker {
	return &Tracker{store: store, now: time.Now}
}

// AddExpense records a spend dated date (YYYY-MM-DD, today when empty).
func (t *Tracker) AddExpense(ctx context.Context, amount float64, category, date, description string, tags []string) (*model.Expense, error) {
	if date == "" {
		date = t.now().Format("2006-01-02")
	}
	expense := &model.Expense{
		Amount:      amount,
		Category:    category,
		Date:        date,
		Description: description,
		Tags:        model.JoinTags(tags),
	}
	if err := t.store.CreateExpense(ctx, expense); err != nil {
		return nil, fmt.Errorf("add expense: %w", err)
	}
	return expense, nil
}

// Expenses lists all expenses, or one calendar month when month is YYYY-MM.
func (t *Tracker) Expenses(ctx context.Context, month string) ([]model.Expense, error) {
	return t.store.Expenses(ctx, month)
}

// AddGoal creates a new active goal with nothing saved towards it yet.
func (t *Tracker) AddGoal(ctx context.Context, name string, target float64, deadline, priority, description string) (*model.Goal, error) {
	goal := &model.Goal{
		Name:          name,
		TargetAmount:  target,
		CurrentAmount: 0,
		Deadline:      deadline,
		Priority:      priority,
		Description:   description,
		Status:        model.GoalStatusActive,
	}
	if err := t.store.CreateGoal(ctx, goal); err != nil {
		return nil, fmt.Errorf("add goal: %w", err)
	}
	return goal, nil
}

func (t *Tracker) Goals(ctx context.Context) ([]model.Goal, error) {
	return t.store.Goals(ctx)
}

// AddToGoal adds amount to what is already saved for the goal. The store
// takes the precomputed absolute value. The returned goal reflects the new
// amount and status.
func (t *Tracker) AddToGoal(ctx context.Context, goalID int64, amount float64) (*model.Goal, error) {
	goals, err := t.store.Goals(ctx)
	if err != nil {
		return nil, fmt.Errorf("add to goal: %w", err)
	}
	var goal *model.Goal
	for i := range goals {
		if goals[i].ID == goalID {
			goal = &goals[i]
			break
		}
	}
	if goal == nil {
		return nil, fmt.Errorf("add to goal: goal %d not found", goalID)
	}

	newAmount := goal.CurrentAmount + amount
	if err := t.store.UpdateGoalAmount(ctx, goalID, newAmount); err != nil {
		return nil, fmt.Errorf("add to goal: %w", err)
	}

	goal.CurrentAmount = newAmount
	if newAmount >= goal.TargetAmount {
		goal.Status = model.GoalStatusAchieved
	}
	return goal, nil
}

// AddSaving records money put aside on date (YYYY-MM-DD, today when empty).
func (t *Tracker) AddSaving(ctx context.Context, amount float64, date, source, purpose string) (*model.Saving, error) {
	if date == "" {
		date = t.now().Format("2006-01-02")
	}
	saving := &model.Saving{
		Amount:  amount,
		Date:    date,
		Source:  source,
		Purpose: purpose,
	}
	if err := t.store.CreateSaving(ctx, saving); err != nil {
		return nil, fmt.Errorf("add saving: %w", err)
	}
	return saving, nil
}

func (t *Tracker) Savings(ctx context.Context) ([]model.Saving, error) {
	return t.store.Savings(ctx)
}

// DashboardSummary is everything the dashboard view renders, derived from the
// store's current contents on every call.
type DashboardSummary struct {
	TotalExpenses   float64
	TotalSavings    float64
	SavingsRate     float64
	ActiveGoals     int
	AchievedGoals   int
	Recent          []model.Expense // newest five
	MonthTotal      float64         // current calendar month
	MonthCategories []CategoryTotal // current calendar month, first-seen order
	Trend           []MonthTotal    // last six months, oldest first
}

// Dashboard assembles the summary figures for the overview screen.
func (t *Tracker) Dashboard(ctx context.Context) (*DashboardSummary, error) {
	expenses, err := t.store.Expenses(ctx, "")
	if err != nil {
		return nil, fmt.Errorf("dashboard expenses: %w", err)
	}
	savings, err := t.store.Savings(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard savings: %w", err)
	}
	goals, err := t.store.Goals(ctx)
	if err != nil {
		return nil, fmt.Errorf("dashboard goals: %w", err)
	}

	now := t.now()
	currentMonth := now.Format("2006-01")
	var monthExpenses []model.Expense
	for _, e := range expenses {
		if len(e.Date) >= 7 && e.Date[:7] == currentMonth {
			monthExpenses = append(monthExpenses, e)
		}
	}

	summary := &DashboardSummary{
		TotalExpenses:   TotalExpenses(expenses),
		TotalSavings:    TotalSavings(savings),
		MonthTotal:      TotalExpenses(monthExpenses),
		MonthCategories: SumByCategory(monthExpenses),
		Trend:           MonthlyTotals(expenses, now, trendMonths),
	}
	summary.SavingsRate = SavingsRate(summary.TotalSavings, summary.TotalExpenses)

	for _, g := range goals {
		if g.Active() {
			summary.ActiveGoals++
		} else {
			summary.AchievedGoals++
		}
	}

	if len(expenses) > 5 {
		summary.Recent = expenses[:5]
	} else {
		summary.Recent = expenses
	}
	return summary, nil
}

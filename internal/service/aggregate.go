package service

import (
	"time"

	"github.com/SARIKA005/smartspend/internal/model"
)

// CategoryTotal is the summed spend for one category label.
type CategoryTotal struct {
	Category string
	Amount   float64
}

// MonthTotal is the summed spend for one YYYY-MM calendar month.
type MonthTotal struct {
	Month  string
	Amount float64
}

// SumByCategory reduces expenses to per-category totals. Result order follows
// the first appearance of each category in the input.
func SumByCategory(expenses []model.Expense) []CategoryTotal {
	index := make(map[string]int)
	var totals []CategoryTotal
	for _, e := range expenses {
		if i, ok := index[e.Category]; ok {
			totals[i].Amount += e.Amount
			continue
		}
		index[e.Category] = len(totals)
		totals = append(totals, CategoryTotal{Category: e.Category, Amount: e.Amount})
	}
	return totals
}

// TotalExpenses sums the amount field; 0 for an empty collection.
func TotalExpenses(expenses []model.Expense) float64 {
	var total float64
	for _, e := range expenses {
		total += e.Amount
	}
	return total
}

// TotalSavings sums the amount field; 0 for an empty collection.
func TotalSavings(savings []model.Saving) float64 {
	var total float64
	for _, s := range savings {
		total += s.Amount
	}
	return total
}

// AverageExpense is the arithmetic mean of expense amounts, 0 when there are
// no expenses.
func AverageExpense(expenses []model.Expense) float64 {
	if len(expenses) == 0 {
		return 0
	}
	return TotalExpenses(expenses) / float64(len(expenses))
}

// MonthlyTotals computes the total spent in each of the most recent
// monthCount calendar months, the current month included. Points run from
// the oldest month to the newest; months without expenses contribute 0.
func MonthlyTotals(expenses []model.Expense, now time.Time, monthCount int) []MonthTotal {
	byMonth := make(map[string]float64)
	for _, e := range expenses {
		if len(e.Date) >= 7 {
			byMonth[e.Date[:7]] += e.Amount
		}
	}

	points := make([]MonthTotal, 0, monthCount)
	for i := monthCount - 1; i >= 0; i-- {
		month := time.Date(now.Year(), now.Month()-time.Month(i), 1, 0, 0, 0, 0, now.Location()).
			Format("2006-01")
		points = append(points, MonthTotal{Month: month, Amount: byMonth[month]})
	}
	return points
}

// FilterSince keeps expenses dated on or after cutoff (YYYY-MM-DD). Dates are
// compared as strings, which matches chronological order for this format.
func FilterSince(expenses []model.Expense, cutoff string) []model.Expense {
	var out []model.Expense
	for _, e := range expenses {
		if e.Date >= cutoff {
			out = append(out, e)
		}
	}
	return out
}

// SavingsRate is total savings over total expenses as a percentage, 0 when
// there is nothing to divide by.
func SavingsRate(totalSavings, totalExpenses float64) float64 {
	if totalExpenses <= 0 {
		return 0
	}
	return totalSavings / totalExpenses * 100
}

// GoalProgress is the percent of the target already saved, capped at 100.
func GoalProgress(goal model.Goal) float64 {
	if goal.TargetAmount <= 0 {
		return 0
	}
	progress := goal.CurrentAmount / goal.TargetAmount * 100
	if progress > 100 {
		return 100
	}
	return progress
}

package model

import "strings"

// ExpenseCategories are the labels offered by the entry form. The store does
// not validate the category column against this list.
var ExpenseCategories = []string{
	"Food & Dining", "Transportation", "Shopping", "Entertainment",
	"Bills & Utilities", "Healthcare", "Education", "Housing",
	"Personal Care", "Travel", "Gifts", "Investments", "Other",
}

// ExpenseTags are the optional labels offered alongside a new expense.
var ExpenseTags = []string{
	"Essential", "Discretionary", "Work", "Personal", "Recurring", "One-time",
}

type Expense struct {
	ID          int64   `json:"id"`
	Amount      float64 `json:"amount"`
	Category    string  `json:"category"`
	Date        string  `json:"date"` // YYYY-MM-DD
	Description string  `json:"description"`
	Tags        string  `json:"tags"` // comma-joined labels
	CreatedAt   string  `json:"created_at"`
}

// TagList splits the comma-joined tags column.
func (e *Expense) TagList() []string {
	if e.Tags == "" {
		return nil
	}
	return strings.Split(e.Tags, ",")
}

// JoinTags builds the stored representation of a tag set.
func JoinTags(tags []string) string {
	return strings.Join(tags, ",")
}

package model

// SavingSources are the labels offered by the savings form.
var SavingSources = []string{"Salary", "Bonus", "Investment", "Gift", "Business", "Other"}

type Saving struct {
	ID        int64   `json:"id"`
	Amount    float64 `json:"amount"`
	Date      string  `json:"date"` // YYYY-MM-DD
	Source    string  `json:"source"`
	Purpose   string  `json:"purpose"`
	CreatedAt string  `json:"created_at"`
}

package model

const (
	GoalStatusActive   = "active"
	GoalStatusAchieved = "achieved"
)

// GoalPriorities in the order offered by the entry form.
var GoalPriorities = []string{"Low", "Medium", "High"}

type Goal struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	TargetAmount  float64 `json:"target_amount"`
	CurrentAmount float64 `json:"current_amount"`
	Deadline      string  `json:"deadline"` // YYYY-MM-DD
	Priority      string  `json:"priority"` // Low / Medium / High
	Description   string  `json:"description"`
	Status        string  `json:"status"` // active / achieved
	CreatedAt     string  `json:"created_at"`
}

// Active reports whether the goal is still being saved towards.
func (g *Goal) Active() bool {
	return g.Status == GoalStatusActive
}

// Remaining is the amount still needed to reach the target.
func (g *Goal) Remaining() float64 {
	return g.TargetAmount - g.CurrentAmount
}

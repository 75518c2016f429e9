// Package insight turns aggregate figures into a templated narrative:
// threshold-keyed branches for everything the numbers decide, and a random
// draw among equally valid phrasings for the rest.
package insight

import (
	"fmt"
	"hash/fnv"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/SARIKA005/smartspend/internal/model"
	"github.com/SARIKA005/smartspend/internal/service"
)

// emptyDataPrompt is returned whenever there is nothing to analyze.
const emptyDataPrompt = "Start tracking expenses to get personalized insights!"

var weeklyFocusPool = []string{
	"Track every expense for 7 days",
	"Review one subscription service",
	"Save ₹500 extra this week",
	"Cook meals at home 5 days this week",
	"Walk or use public transport 3 times",
}

var encouragementPool = []string{
	"Financial success is built one smart decision at a time.",
	"Small, consistent improvements lead to big results.",
	"You're in control of your financial future.",
	"Every rupee saved today is an investment in your tomorrow.",
	"Progress, not perfection, is the goal.",
}

var generalTips = []string{
	"Use cash for discretionary spending to stay within budget",
	"Round up purchases to nearest ₹100 and save the difference",
	"Negotiate better rates on bills and subscriptions annually",
	"Batch similar tasks to save time and money",
	"Invest in quality items that last longer",
	"Learn one new money-saving skill each month",
	"Review your financial plan every Sunday evening",
	"Celebrate small financial wins to stay motivated",
}

// Advisor generates financial analysis text. Identical aggregate inputs hit
// an in-process memo instead of re-rolling the random phrasings.
type Advisor struct {
	rng   *rand.Rand
	now   func() time.Time
	cache map[uint64]string
}

func NewAdvisor() *Advisor {
	return NewAdvisorWithSource(rand.New(rand.NewSource(time.Now().UnixNano())))
}

// NewAdvisorWithSource injects the random source, so tests can fix the seed
// and assert exact output.
func NewAdvisorWithSource(rng *rand.Rand) *Advisor {
	return &Advisor{rng: rng, now: time.Now, cache: make(map[uint64]string)}
}

// Analyze produces the full sectioned analysis for the given aggregates.
// The focus label distinguishes otherwise identical requests in the memo;
// goals are deliberately not part of the key.
func (a *Advisor) Analyze(totals []service.CategoryTotal, totalExpenses, totalSavings float64, goals []model.Goal, focus string) string {
	if len(totals) == 0 {
		return emptyDataPrompt
	}

	key := cacheKey(totals, totalExpenses, totalSavings, focus)
	if cached, ok := a.cache[key]; ok {
		return cached
	}

	analysis := a.generate(totals, totalExpenses, totalSavings, goals, focus)
	a.cache[key] = analysis
	return analysis
}

func cacheKey(totals []service.CategoryTotal, totalExpenses, totalSavings float64, focus string) uint64 {
	h := fnv.New64a()
	for _, ct := range totals {
		fmt.Fprintf(h, "%s=%v;", ct.Category, ct.Amount)
	}
	fmt.Fprintf(h, "|%v|%v|%s", totalExpenses, totalSavings, focus)
	return h.Sum64()
}

func (a *Advisor) generate(totals []service.CategoryTotal, totalExpenses, totalSavings float64, goals []model.Goal, focus string) string {
	var b strings.Builder
	b.WriteString("## 🧠 Smart Financial Analysis\n\n")

	// Financial health banding on the savings rate.
	rate := service.SavingsRate(totalSavings, totalExpenses)
	b.WriteString("### 📊 Your Financial Health\n")
	switch {
	case rate >= 20:
		b.WriteString("✅ **Excellent!** Your savings rate is healthy. Keep this momentum!\n\n")
	case rate >= 10:
		b.WriteString("👍 **Good progress!** You're saving consistently. Aim for 20% savings rate.\n\n")
	default:
		b.WriteString("📈 **Room for improvement.** Try to save at least 10% of your expenses each month.\n\n")
	}

	// Category concentration.
	b.WriteString("### 💸 Spending Analysis\n")
	ranked := rankByAmount(totals)
	if len(ranked) >= 3 {
		top3 := ranked[0].Amount + ranked[1].Amount + ranked[2].Amount
		top1Pct := share(ranked[0].Amount, totalExpenses)
		fmt.Fprintf(&b, "• **Top 3 categories** account for %.1f%% of spending\n", share(top3, totalExpenses))
		fmt.Fprintf(&b, "• **%s** is your largest expense at %.1f%%\n\n", ranked[0].Category, top1Pct)

		if top1Pct > 40 {
			fmt.Fprintf(&b, "💡 **Insight:** Consider ways to reduce %s expenses by 15%% next month.\n\n", ranked[0].Category)
		}
	}

	// Quick wins: categories over a quarter of total, in input order, top 2.
	var quickWins []service.CategoryTotal
	for _, ct := range totals {
		if share(ct.Amount, totalExpenses) > 25 {
			quickWins = append(quickWins, service.CategoryTotal{Category: ct.Category, Amount: ct.Amount * 0.15})
		}
	}
	if len(quickWins) > 0 {
		b.WriteString("### 💰 Quick Win Opportunities\n")
		if len(quickWins) > 2 {
			quickWins = quickWins[:2]
		}
		for _, win := range quickWins {
			fmt.Fprintf(&b, "• Reduce **%s** by 15%% to save **₹%s** monthly\n", win.Category, rupees(win.Amount))
		}
		b.WriteString("\n")
	}

	// Active goals, at most two, in store order.
	active := activeGoals(goals)
	if len(active) > 0 {
		b.WriteString("### 🎯 Goals Progress\n")
		if len(active) > 2 {
			active = active[:2]
		}
		for _, g := range active {
			progress := service.GoalProgress(g)
			fmt.Fprintf(&b, "**%s:** %.1f%% complete\n", g.Name, progress)
			if progress < 100 {
				fmt.Fprintf(&b, "  → Need ₹%s more to reach target\n", rupees(g.Remaining()))
			}
			switch {
			case progress < 30:
				b.WriteString("  📌 **Tip:** Break this goal into weekly targets\n")
			case progress < 70:
				b.WriteString("  📌 **Tip:** Stay consistent! You're halfway there\n")
			default:
				b.WriteString("  📌 **Tip:** Almost there! Finish strong\n")
			}
			b.WriteString("\n")
		}
	}

	// Recommendations, first four in assembly order.
	b.WriteString("### 🚀 Personalized Action Plan\n")
	recs := a.recommendations(totals, totalExpenses, totalSavings, goals)
	if len(recs) > 4 {
		recs = recs[:4]
	}
	for i, rec := range recs {
		fmt.Fprintf(&b, "%d. %s\n", i+1, rec)
	}
	b.WriteString("\n")

	b.WriteString("### 🗓️ This Week's Focus\n")
	fmt.Fprintf(&b, "**Your challenge:** %s\n\n", a.pick(weeklyFocusPool))

	b.WriteString("### 💪 Remember\n")
	fmt.Fprintf(&b, "*%s*\n\n", a.pick(encouragementPool))

	fmt.Fprintf(&b, "*Analysis generated: %s*", a.now().Format("2006-01-02 15:04"))
	return b.String()
}

// recommendations assembles the candidate list: a pool banded by savings
// rate, a largest-category item past 30%, a weekly-savings figure for the
// first active goal, and two random general tips.
func (a *Advisor) recommendations(totals []service.CategoryTotal, totalExpenses, totalSavings float64, goals []model.Goal) []string {
	var recs []string

	switch rate := service.SavingsRate(totalSavings, totalExpenses); {
	case rate < 10:
		recs = append(recs,
			"Set up automatic transfers of ₹2,000 to savings on payday",
			"Use the 24-hour rule for purchases over ₹1,000",
			"Review monthly subscriptions and cancel one unused service",
			"Pack lunch 3 times a week to save on food costs",
		)
	case rate < 20:
		recs = append(recs,
			"Increase your automatic savings by ₹500 this month",
			"Invest ₹1,000 in a low-cost index fund",
			"Create a 6-month emergency fund as your next goal",
			"Review insurance policies for better rates",
		)
	default:
		recs = append(recs,
			"Consider increasing investments by 10% this quarter",
			"Diversify your savings into different asset classes",
			"Plan for tax-efficient investment strategies",
			"Set up a separate fund for learning new skills",
		)
	}

	if largest, ok := largestCategory(totals); ok && share(largest.Amount, totalExpenses) > 30 {
		recs = append(recs, fmt.Sprintf("Reduce %s spending by 15%% through better planning", largest.Category))
	}

	if active := activeGoals(goals); len(active) > 0 {
		g := active[0]
		if g.TargetAmount > g.CurrentAmount {
			weekly := g.Remaining() / 4 // four weeks to a month
			recs = append(recs, fmt.Sprintf("Save ₹%s weekly for '%s'", rupees(weekly), g.Name))
		}
	}

	perm := a.rng.Perm(len(generalTips))
	recs = append(recs, generalTips[perm[0]], generalTips[perm[1]])
	return recs
}

// Quick produces a one-line insight about the single largest category.
func (a *Advisor) Quick(totals []service.CategoryTotal) string {
	if len(totals) == 0 {
		return emptyDataPrompt
	}

	var total float64
	for _, ct := range totals {
		total += ct.Amount
	}
	largest, _ := largestCategory(totals)
	pct := share(largest.Amount, total)

	candidates := []string{
		fmt.Sprintf("Your biggest expense is **%s** at %.1f%% of total spending", largest.Category, pct),
		fmt.Sprintf("Consider reducing **%s** by 10%% to save ₹%s monthly", largest.Category, rupees(largest.Amount*0.1)),
		"Top 3 categories account for most of your spending. Review them weekly",
		fmt.Sprintf("Every ₹100 saved in %s adds up to ₹1,200 annually", largest.Category),
	}
	return a.pick(candidates)
}

func (a *Advisor) pick(options []string) string {
	return options[a.rng.Intn(len(options))]
}

func activeGoals(goals []model.Goal) []model.Goal {
	var active []model.Goal
	for _, g := range goals {
		if g.Active() {
			active = append(active, g)
		}
	}
	return active
}

// rankByAmount returns a copy sorted by amount descending, ties keeping
// input order.
func rankByAmount(totals []service.CategoryTotal) []service.CategoryTotal {
	ranked := make([]service.CategoryTotal, len(totals))
	copy(ranked, totals)
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Amount > ranked[j].Amount
	})
	return ranked
}

// largestCategory finds the biggest spend; first seen wins ties.
func largestCategory(totals []service.CategoryTotal) (service.CategoryTotal, bool) {
	if len(totals) == 0 {
		return service.CategoryTotal{}, false
	}
	largest := totals[0]
	for _, ct := range totals[1:] {
		if ct.Amount > largest.Amount {
			largest = ct
		}
	}
	return largest, true
}

func share(amount, total float64) float64 {
	if total <= 0 {
		return 0
	}
	return amount / total * 100
}

package bot

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/google/uuid"

	"github.com/SARIKA005/smartspend/internal/model"
	"github.com/SARIKA005/smartspend/internal/service"
)

// focusOptions are the analysis angles offered before a full analysis.
var focusOptions = []string{
	"Comprehensive Overview",
	"Spending Patterns",
	"Savings Strategy",
	"Goal Achievement",
	"Budget Optimization",
	"Financial Health",
}

func (b *Bot) handleCallback(callback *tgbotapi.CallbackQuery) error {
	chatID := callback.Message.Chat.ID
	data := callback.Data

	switch {
	case strings.HasPrefix(data, "expcat_"):
		if i, err := strconv.Atoi(strings.TrimPrefix(data, "expcat_")); err == nil && i >= 0 && i < len(model.ExpenseCategories) {
			category := model.ExpenseCategories[i]
			b.states[chatID] = &userState{Awaiting: awaitExpense, Category: category}
			b.api.Send(tgbotapi.NewMessage(chatID, fmt.Sprintf(
				"Category: %s\nEnter amount, description and optional #tags:\n500 lunch with team #Work", category)))
		}

	case strings.HasPrefix(data, "savsrc_"):
		if i, err := strconv.Atoi(strings.TrimPrefix(data, "savsrc_")); err == nil && i >= 0 && i < len(model.SavingSources) {
			source := model.SavingSources[i]
			b.states[chatID] = &userState{Awaiting: awaitSaving, Source: source}
			b.api.Send(tgbotapi.NewMessage(chatID, fmt.Sprintf(
				"Source: %s\nEnter amount and purpose:\n5000 Emergency fund", source)))
		}

	case data == "goal_new":
		b.states[chatID] = &userState{Awaiting: awaitNewGoal}
		b.api.Send(tgbotapi.NewMessage(chatID,
			"Describe the goal as:\nname | target amount | deadline (YYYY-MM-DD) | priority (Low/Medium/High)\n\n"+
				"Example: Vacation | 50000 | 2027-06-30 | High"))

	case strings.HasPrefix(data, "goal_add_"):
		if id, err := strconv.ParseInt(strings.TrimPrefix(data, "goal_add_"), 10, 64); err == nil {
			b.states[chatID] = &userState{Awaiting: awaitGoalTopUp, GoalID: id}
			b.api.Send(tgbotapi.NewMessage(chatID, "Enter the amount to add:"))
		}

	case strings.HasPrefix(data, "focus_"):
		if i, err := strconv.Atoi(strings.TrimPrefix(data, "focus_")); err == nil && i >= 0 && i < len(focusOptions) {
			b.runAnalysis(chatID, focusOptions[i])
		}

	case data == "action_back":
		delete(b.states, chatID)
		msg := tgbotapi.NewMessage(chatID, "Choose an action:")
		msg.ReplyMarkup = b.mainKeyboard()
		b.api.Send(msg)
	}

	// Answer the callback to clear the loading indicator.
	b.api.Request(tgbotapi.NewCallback(callback.ID, ""))
	return nil
}

func (b *Bot) handleAddExpense(chatID int64) {
	msg := tgbotapi.NewMessage(chatID, "Pick an expense category:")
	msg.ReplyMarkup = b.categoriesKeyboard()
	b.api.Send(msg)
}

func (b *Bot) handleExpenseInput(chatID int64, state *userState, text string) {
	amount, rest, err := parseAmountLine(text)
	if err != nil {
		b.sendErrorMessage(chatID, err.Error()+"\nUse: <amount> <description> [#tag ...]")
		return
	}

	var tags []string
	var words []string
	for _, w := range rest {
		if strings.HasPrefix(w, "#") && len(w) > 1 {
			tags = append(tags, strings.TrimPrefix(w, "#"))
		} else {
			words = append(words, w)
		}
	}
	description := strings.Join(words, " ")

	_, err = b.service.AddExpense(context.Background(), amount, state.Category, "", description, tags)
	if err != nil {
		log.Printf("add expense: %v", err)
		b.sendErrorMessage(chatID, "Could not save the expense, please try again")
		return
	}

	delete(b.states, chatID)
	msg := tgbotapi.NewMessage(chatID, "✅ Expense added successfully!")
	msg.ReplyMarkup = b.mainKeyboard()
	b.api.Send(msg)
}

func (b *Bot) handleAddSaving(chatID int64) {
	msg := tgbotapi.NewMessage(chatID, "Where do these savings come from?")
	msg.ReplyMarkup = b.sourcesKeyboard()
	b.api.Send(msg)
}

func (b *Bot) handleSavingInput(chatID int64, state *userState, text string) {
	amount, rest, err := parseAmountLine(text)
	if err != nil {
		b.sendErrorMessage(chatID, err.Error()+"\nUse: <amount> <purpose>")
		return
	}

	_, err = b.service.AddSaving(context.Background(), amount, "", state.Source, strings.Join(rest, " "))
	if err != nil {
		log.Printf("add saving: %v", err)
		b.sendErrorMessage(chatID, "Could not save the record, please try again")
		return
	}

	delete(b.states, chatID)
	msg := tgbotapi.NewMessage(chatID, "✅ Savings added successfully!")
	msg.ReplyMarkup = b.mainKeyboard()
	b.api.Send(msg)
}

func (b *Bot) handleGoals(chatID int64) {
	goals, err := b.service.Goals(context.Background())
	if err != nil {
		log.Printf("list goals: %v", err)
		goals = nil
	}

	var text strings.Builder
	if len(goals) == 0 {
		text.WriteString("No goals yet. Create your first financial goal!")
	} else {
		text.WriteString("🎯 Your goals:\n\n")
		for _, g := range goals {
			progress := service.GoalProgress(g)
			status := "🔵"
			if !g.Active() {
				status = "✅"
			}
			fmt.Fprintf(&text, "%s %s — ₹%.0f of ₹%.0f (%.1f%%), due %s [%s]\n",
				status, g.Name, g.CurrentAmount, g.TargetAmount, progress, g.Deadline, g.Priority)
		}
	}

	msg := tgbotapi.NewMessage(chatID, text.String())
	msg.ReplyMarkup = b.goalsKeyboard(goals)
	b.api.Send(msg)
}

func (b *Bot) handleNewGoalInput(chatID int64, text string) {
	parts := strings.Split(text, "|")
	if len(parts) < 3 {
		b.sendErrorMessage(chatID, "Use: name | target amount | deadline (YYYY-MM-DD) | priority")
		return
	}
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	name := parts[0]
	if name == "" {
		b.sendErrorMessage(chatID, "Goal name is required")
		return
	}
	target, err := parsePositiveAmount(parts[1])
	if err != nil {
		b.sendErrorMessage(chatID, "Target amount: "+err.Error())
		return
	}
	if _, err := time.Parse("2006-01-02", parts[2]); err != nil {
		b.sendErrorMessage(chatID, "Deadline must be a date like 2027-06-30")
		return
	}

	priority := "Medium"
	if len(parts) >= 4 && parts[3] != "" {
		for _, p := range model.GoalPriorities {
			if strings.EqualFold(parts[3], p) {
				priority = p
			}
		}
	}

	_, err = b.service.AddGoal(context.Background(), name, target, parts[2], priority, "")
	if err != nil {
		log.Printf("add goal: %v", err)
		b.sendErrorMessage(chatID, "Could not save the goal, please try again")
		return
	}

	delete(b.states, chatID)
	b.api.Send(tgbotapi.NewMessage(chatID, fmt.Sprintf("✅ Goal '%s' created!", name)))
	b.handleGoals(chatID)
}

func (b *Bot) handleGoalTopUpInput(chatID int64, state *userState, text string) {
	amount, err := parsePositiveAmount(strings.TrimSpace(text))
	if err != nil {
		b.sendErrorMessage(chatID, err.Error())
		return
	}

	goal, err := b.service.AddToGoal(context.Background(), state.GoalID, amount)
	if err != nil {
		log.Printf("add to goal: %v", err)
		b.sendErrorMessage(chatID, "Could not update the goal, please try again")
		return
	}

	delete(b.states, chatID)
	if !goal.Active() {
		b.api.Send(tgbotapi.NewMessage(chatID, fmt.Sprintf("🎉 Goal '%s' achieved! Congratulations!", goal.Name)))
	} else {
		b.api.Send(tgbotapi.NewMessage(chatID, fmt.Sprintf(
			"✅ Added ₹%.0f! '%s' is now %.1f%% complete.", amount, goal.Name, service.GoalProgress(*goal))))
	}
	b.handleGoals(chatID)
}

func (b *Bot) handleReport(chatID int64) {
	summary, err := b.service.Dashboard(context.Background())
	if err != nil {
		log.Printf("dashboard: %v", err)
		b.sendErrorMessage(chatID, "Could not build the report")
		return
	}

	var text strings.Builder
	text.WriteString("📊 SmartSpend Report\n\n")
	fmt.Fprintf(&text, "💸 Total Expenses: ₹%.0f\n", summary.TotalExpenses)
	fmt.Fprintf(&text, "💰 Total Savings: ₹%.0f\n", summary.TotalSavings)
	fmt.Fprintf(&text, "📈 Savings Rate: %.1f%%\n", summary.SavingsRate)
	fmt.Fprintf(&text, "🎯 Goals: %d active, %d achieved\n\n", summary.ActiveGoals, summary.AchievedGoals)
	fmt.Fprintf(&text, "📅 This Month: ₹%.0f\n", summary.MonthTotal)

	if len(summary.Recent) > 0 {
		text.WriteString("\n📝 Recent Transactions:\n")
		for _, e := range summary.Recent {
			line := fmt.Sprintf("• %s — ₹%.0f (%s)", e.Category, e.Amount, e.Date)
			if e.Description != "" {
				line += " " + e.Description
			}
			text.WriteString(line + "\n")
		}
	} else {
		text.WriteString("\nNo expenses recorded yet. Add your first expense!\n")
	}

	b.api.Send(tgbotapi.NewMessage(chatID, text.String()))

	b.sendChart(chatID, "categories", func() ([]byte, error) {
		return b.charts.CategoryDonut(summary.MonthCategories)
	})
	b.sendChart(chatID, "trend", func() ([]byte, error) {
		return b.charts.MonthlyTrend(summary.Trend)
	})
}

// sendChart renders and uploads one chart; a nil render means no data and is
// skipped silently. Upload names carry a uuid so Telegram clients do not
// reuse a previously cached attachment.
func (b *Bot) sendChart(chatID int64, kind string, render func() ([]byte, error)) {
	png, err := render()
	if err != nil {
		log.Printf("render %s chart: %v", kind, err)
		return
	}
	if png == nil {
		return
	}
	name := fmt.Sprintf("%s_%s.png", kind, uuid.NewString()[:8])
	photo := tgbotapi.NewPhoto(chatID, tgbotapi.FileBytes{Name: name, Bytes: png})
	b.api.Send(photo)
}

func (b *Bot) handleAnalyze(chatID int64) {
	msg := tgbotapi.NewMessage(chatID, "What would you like to analyze?")
	msg.ReplyMarkup = b.focusKeyboard()
	b.api.Send(msg)
}

func (b *Bot) runAnalysis(chatID int64, focus string) {
	ctx := context.Background()

	expenses, err := b.service.Expenses(ctx, "")
	if err != nil {
		log.Printf("analysis expenses: %v", err)
		b.sendErrorMessage(chatID, "Could not load your data")
		return
	}
	savings, err := b.service.Savings(ctx)
	if err != nil {
		log.Printf("analysis savings: %v", err)
		b.sendErrorMessage(chatID, "Could not load your data")
		return
	}
	goals, err := b.service.Goals(ctx)
	if err != nil {
		log.Printf("analysis goals: %v", err)
		goals = nil
	}

	analysis := b.advisor.Analyze(
		service.SumByCategory(expenses),
		service.TotalExpenses(expenses),
		service.TotalSavings(savings),
		goals,
		focus,
	)
	b.sendMarkdown(chatID, analysis)
}

func (b *Bot) handleQuickInsight(chatID int64) {
	expenses, err := b.service.Expenses(context.Background(), "")
	if err != nil {
		log.Printf("quick insight: %v", err)
		b.sendErrorMessage(chatID, "Could not load your data")
		return
	}
	b.sendMarkdown(chatID, b.advisor.Quick(service.SumByCategory(expenses)))
}

// parsePositiveAmount parses a decimal amount and rejects zero and below.
func parsePositiveAmount(s string) (float64, error) {
	amount, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0, fmt.Errorf("amount must be a number, e.g. 1000.50")
	}
	if amount <= 0 {
		return 0, fmt.Errorf("amount must be greater than 0")
	}
	return amount, nil
}

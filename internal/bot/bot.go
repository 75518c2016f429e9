package bot

import (
	"fmt"
	"strings"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/SARIKA005/smartspend/internal/charts"
	"github.com/SARIKA005/smartspend/internal/insight"
	"github.com/SARIKA005/smartspend/internal/service"
)

// userState tracks what a chat's next free-form message means.
type userState struct {
	Awaiting string // one of the await* constants
	Category string // selected expense category
	Source   string // selected savings source
	GoalID   int64  // goal selected for a top-up
}

const (
	awaitExpense   = "expense"     // "<amount> <description> [#tag ...]"
	awaitSaving    = "saving"      // "<amount> <purpose>"
	awaitNewGoal   = "new_goal"    // "name | target | deadline | priority"
	awaitGoalTopUp = "goal_top_up" // "<amount>"
)

type Bot struct {
	api     *tgbotapi.BotAPI
	service *service.Tracker
	advisor *insight.Advisor
	charts  *charts.Generator
	states  map[int64]*userState // per-chat input state
}

func New(token string, tracker *service.Tracker, advisor *insight.Advisor, generator *charts.Generator) (*Bot, error) {
	api, err := tgbotapi.NewBotAPI(token)
	if err != nil {
		return nil, err
	}

	return &Bot{
		api:     api,
		service: tracker,
		advisor: advisor,
		charts:  generator,
		states:  make(map[int64]*userState),
	}, nil
}

// Start runs the bot in long-polling mode.
func (b *Bot) Start() error {
	u := tgbotapi.NewUpdate(0)
	u.Timeout = 60

	updates := b.api.GetUpdatesChan(u)

	for update := range updates {
		if err := b.handleUpdate(update); err != nil {
			// Log and keep serving.
			fmt.Printf("Error handling update: %v\n", err)
		}
	}

	return nil
}

func (b *Bot) handleUpdate(update tgbotapi.Update) error {
	if update.Message == nil && update.CallbackQuery == nil {
		return nil
	}

	if update.Message != nil && update.Message.IsCommand() {
		return b.handleCommand(update.Message)
	}

	if update.CallbackQuery != nil {
		return b.handleCallback(update.CallbackQuery)
	}

	return b.handleMessage(update.Message)
}

func (b *Bot) handleCommand(message *tgbotapi.Message) error {
	switch message.Command() {
	case "start":
		b.handleStart(message.Chat.ID)
	case "expense":
		b.handleAddExpense(message.Chat.ID)
	case "savings":
		b.handleAddSaving(message.Chat.ID)
	case "goals":
		b.handleGoals(message.Chat.ID)
	case "report":
		b.handleReport(message.Chat.ID)
	case "analyze":
		b.handleAnalyze(message.Chat.ID)
	case "insight":
		b.handleQuickInsight(message.Chat.ID)
	}
	return nil
}

func (b *Bot) handleMessage(message *tgbotapi.Message) error {
	chatID := message.Chat.ID

	switch message.Text {
	case buttonAddExpense:
		b.handleAddExpense(chatID)
		return nil
	case buttonAddSaving:
		b.handleAddSaving(chatID)
		return nil
	case buttonGoals:
		b.handleGoals(chatID)
		return nil
	case buttonReport:
		b.handleReport(chatID)
		return nil
	case buttonAnalyze:
		b.handleAnalyze(chatID)
		return nil
	case buttonInsight:
		b.handleQuickInsight(chatID)
		return nil
	}

	state, ok := b.states[chatID]
	if !ok {
		msg := tgbotapi.NewMessage(chatID, "Choose an action:")
		msg.ReplyMarkup = b.mainKeyboard()
		b.api.Send(msg)
		return nil
	}

	switch state.Awaiting {
	case awaitExpense:
		b.handleExpenseInput(chatID, state, message.Text)
	case awaitSaving:
		b.handleSavingInput(chatID, state, message.Text)
	case awaitNewGoal:
		b.handleNewGoalInput(chatID, message.Text)
	case awaitGoalTopUp:
		b.handleGoalTopUpInput(chatID, state, message.Text)
	default:
		delete(b.states, chatID)
	}
	return nil
}

func (b *Bot) handleStart(chatID int64) {
	msg := tgbotapi.NewMessage(chatID,
		"Welcome to SmartSpend! 💰\n\n"+
			"I help you track expenses, savings and financial goals. Here's what I can do:\n\n"+
			"• Record expenses and savings\n"+
			"• Track progress towards goals\n"+
			"• Show reports and charts\n"+
			"• Analyze your spending patterns\n\n"+
			"Choose an action:")
	msg.ReplyMarkup = b.mainKeyboard()
	b.api.Send(msg)
}

// sendMarkdown sends Markdown-formatted text, used for analysis output.
func (b *Bot) sendMarkdown(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, text)
	msg.ParseMode = tgbotapi.ModeMarkdown
	b.api.Send(msg)
}

func (b *Bot) sendErrorMessage(chatID int64, text string) {
	msg := tgbotapi.NewMessage(chatID, "❌ "+text)
	b.api.Send(msg)
}

// parseAmountLine splits "<amount> <rest...>" and validates the amount.
func parseAmountLine(text string) (float64, []string, error) {
	fields := strings.Fields(strings.TrimSpace(text))
	if len(fields) == 0 {
		return 0, nil, fmt.Errorf("empty input")
	}
	amount, err := parsePositiveAmount(fields[0])
	if err != nil {
		return 0, nil, err
	}
	return amount, fields[1:], nil
}

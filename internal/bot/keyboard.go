package bot

import (
	"fmt"

	tgbotapi "github.com/go-telegram-bot-api/telegram-bot-api/v5"

	"github.com/SARIKA005/smartspend/internal/model"
)

const (
	buttonAddExpense = "💸 Add Expense"
	buttonAddSaving  = "💰 Add Savings"
	buttonGoals      = "🎯 Goals"
	buttonReport     = "📊 Report"
	buttonAnalyze    = "🧠 Smart Analysis"
	buttonInsight    = "💡 Quick Insight"
)

func (b *Bot) mainKeyboard() tgbotapi.ReplyKeyboardMarkup {
	return tgbotapi.NewReplyKeyboard(
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(buttonAddExpense),
			tgbotapi.NewKeyboardButton(buttonAddSaving),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(buttonGoals),
			tgbotapi.NewKeyboardButton(buttonReport),
		),
		tgbotapi.NewKeyboardButtonRow(
			tgbotapi.NewKeyboardButton(buttonAnalyze),
			tgbotapi.NewKeyboardButton(buttonInsight),
		),
	)
}

func (b *Bot) categoriesKeyboard() tgbotapi.InlineKeyboardMarkup {
	var buttons [][]tgbotapi.InlineKeyboardButton
	row := []tgbotapi.InlineKeyboardButton{}
	for i, category := range model.ExpenseCategories {
		row = append(row, tgbotapi.NewInlineKeyboardButtonData(category, fmt.Sprintf("expcat_%d", i)))
		if len(row) == 2 {
			buttons = append(buttons, row)
			row = nil
		}
	}
	if len(row) > 0 {
		buttons = append(buttons, row)
	}
	return tgbotapi.NewInlineKeyboardMarkup(buttons...)
}

func (b *Bot) sourcesKeyboard() tgbotapi.InlineKeyboardMarkup {
	var buttons [][]tgbotapi.InlineKeyboardButton
	for i, source := range model.SavingSources {
		buttons = append(buttons, []tgbotapi.InlineKeyboardButton{
			tgbotapi.NewInlineKeyboardButtonData(source, fmt.Sprintf("savsrc_%d", i)),
		})
	}
	return tgbotapi.NewInlineKeyboardMarkup(buttons...)
}

func (b *Bot) goalsKeyboard(goals []model.Goal) tgbotapi.InlineKeyboardMarkup {
	var buttons [][]tgbotapi.InlineKeyboardButton
	for _, g := range goals {
		if !g.Active() {
			continue
		}
		buttons = append(buttons, []tgbotapi.InlineKeyboardButton{
			tgbotapi.NewInlineKeyboardButtonData("➕ Add to "+g.Name, fmt.Sprintf("goal_add_%d", g.ID)),
		})
	}
	buttons = append(buttons, []tgbotapi.InlineKeyboardButton{
		tgbotapi.NewInlineKeyboardButtonData("🆕 New goal", "goal_new"),
		tgbotapi.NewInlineKeyboardButtonData("🔙 Back", "action_back"),
	})
	return tgbotapi.NewInlineKeyboardMarkup(buttons...)
}

func (b *Bot) focusKeyboard() tgbotapi.InlineKeyboardMarkup {
	var buttons [][]tgbotapi.InlineKeyboardButton
	for i, focus := range focusOptions {
		buttons = append(buttons, []tgbotapi.InlineKeyboardButton{
			tgbotapi.NewInlineKeyboardButtonData(focus, fmt.Sprintf("focus_%d", i)),
		})
	}
	return tgbotapi.NewInlineKeyboardMarkup(buttons...)
}

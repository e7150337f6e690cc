package handler

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/shiksha-labs/tutorbot/internal/apiclient"
)

// sendError renders an API failure verbatim next to the triggering
// interaction. The form stays open: the student just tries again.
func (h *Handler) sendError(ctx context.Context, b *bot.Bot, chatID int64, err error) {
	text := "❌ " + err.Error()
	if apiclient.IsAuthRequired(err) {
		text += "\n\nUse /login to sign in again."
	}
	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   text,
	})
}

// callbackOrigin extracts the chat and message a callback was pressed on.
func callbackOrigin(update *models.Update) (chatID int64, messageID int, ok bool) {
	if update.CallbackQuery == nil || update.CallbackQuery.Message.Message == nil {
		return 0, 0, false
	}
	msg := update.CallbackQuery.Message.Message
	return msg.Chat.ID, msg.ID, true
}

func (h *Handler) ackCallback(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.CallbackQuery != nil {
		b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
			CallbackQueryID: update.CallbackQuery.ID,
		})
	}
}

// pageBounds clamps page into range and returns the slice bounds for it.
func pageBounds(total, page, perPage int) (start, end, clamped, totalPages int) {
	totalPages = (total + perPage - 1) / perPage
	if totalPages == 0 {
		totalPages = 1
	}
	if page >= totalPages {
		page = totalPages - 1
	}
	if page < 0 {
		page = 0
	}
	start = page * perPage
	end = start + perPage
	if end > total {
		end = total
	}
	return start, end, page, totalPages
}

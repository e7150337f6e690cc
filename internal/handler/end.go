package handler

import (
	"context"
	"errors"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/shiksha-labs/tutorbot/internal/domain"
	"github.com/shiksha-labs/tutorbot/internal/middleware"
)

func (h *Handler) handleEnd(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	chatID := update.Message.Chat.ID
	acct := middleware.GetAccount(ctx)
	if acct == nil {
		return
	}

	if _, err := acct.State.ActiveSession(ctx); errors.Is(err, domain.ErrNoActiveSession) {
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "There's no active session. Start one with /subjects.",
		})
		return
	}

	if err := acct.State.ClearActiveSession(ctx); err != nil {
		slog.Error("end session", "chat_id", chatID, "error", err)
		h.sendError(ctx, b, chatID, err)
		return
	}

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   "✅ Session closed. Pick a new topic with /subjects or resume an old one with /sessions.",
	})
}

package handler

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/shiksha-labs/tutorbot/internal/domain"
	"github.com/shiksha-labs/tutorbot/internal/middleware"
	tg "github.com/shiksha-labs/tutorbot/internal/telegram"
)

// HandleTextPrivate is the default handler for plain text in private chats.
// An in-progress login/signup flow gets first claim on the input; otherwise
// the text is a question for the active tutor session.
func (h *Handler) HandleTextPrivate(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil || update.Message.Chat.Type != "private" {
		return
	}
	msg := update.Message
	if msg.Text == "" || strings.HasPrefix(msg.Text, "/") {
		return
	}
	chatID := msg.Chat.ID
	acct := middleware.GetAccount(ctx)
	if acct == nil {
		return
	}

	res, err := h.onboarding.HandleText(ctx, acct, msg.Text)
	switch {
	case err == nil:
		h.renderStep(ctx, b, chatID, res)
		return
	case !errors.Is(err, domain.ErrNoActiveFlow):
		slog.Error("onboarding step", "chat_id", chatID, "error", err)
		h.opsLogger.LogError(err, "onboarding step")
		h.sendError(ctx, b, chatID, err)
		return
	}

	if !acct.Session.IsLoggedIn(ctx) {
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "You're not signed in yet. Use /login or /signup to get started.",
		})
		return
	}

	sessionID, err := acct.State.ActiveSession(ctx)
	if errors.Is(err, domain.ErrNoActiveSession) {
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "Pick a topic first: /subjects. Then just type your questions here.",
		})
		return
	}
	if err != nil {
		slog.Error("load active session", "chat_id", chatID, "error", err)
		h.sendError(ctx, b, chatID, err)
		return
	}

	stopTyping := tg.StartTyping(ctx, b, chatID)
	resp, err := acct.Client.Tutor.SendMessage(ctx, sessionID, msg.Text)
	stopTyping()
	if err != nil {
		h.sendError(ctx, b, chatID, err)
		return
	}

	if err := tg.SendLongMessage(ctx, b, chatID, resp.TutorMessage.Content, &msg.ID); err != nil {
		slog.Error("send tutor reply", "chat_id", chatID, "error", err)
		h.opsLogger.LogError(err, "send tutor reply")
	}
}

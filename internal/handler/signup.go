package handler

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/shiksha-labs/tutorbot/internal/middleware"
	"github.com/shiksha-labs/tutorbot/internal/service"
)

func (h *Handler) handleSignup(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	chatID := update.Message.Chat.ID
	acct := middleware.GetAccount(ctx)
	if acct == nil {
		return
	}

	if acct.Session.IsLoggedIn(ctx) {
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "You already have an account here. Use /logout first to create another.",
		})
		return
	}

	res, err := h.onboarding.StartSignup(ctx, acct)
	if err != nil {
		slog.Error("start signup", "chat_id", chatID, "error", err)
		h.sendError(ctx, b, chatID, err)
		return
	}
	h.renderStep(ctx, b, chatID, res)
}

func (h *Handler) handleSignupBoardPick(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.ackCallback(ctx, b, update)
	chatID, _, ok := callbackOrigin(update)
	if !ok {
		return
	}
	acct := middleware.GetAccount(ctx)
	if acct == nil {
		return
	}

	boardID := strings.TrimPrefix(update.CallbackQuery.Data, "sb_")
	res, err := h.onboarding.PickBoard(ctx, acct, boardID)
	if err != nil {
		slog.Error("signup board pick", "chat_id", chatID, "error", err)
		return
	}
	h.renderStep(ctx, b, chatID, res)
}

func (h *Handler) handleSignupBoardPage(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.ackCallback(ctx, b, update)
	chatID, messageID, ok := callbackOrigin(update)
	if !ok {
		return
	}
	page, _ := strconv.Atoi(strings.TrimPrefix(update.CallbackQuery.Data, "sbpg_"))
	h.sendBoardKeyboard(ctx, b, chatID, "Pick your board:", page, "sb_", "sbpg", true, messageID)
}

func (h *Handler) handleSignupClassPick(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.ackCallback(ctx, b, update)
	chatID, _, ok := callbackOrigin(update)
	if !ok {
		return
	}
	acct := middleware.GetAccount(ctx)
	if acct == nil {
		return
	}

	// Snapshot the flow before PickClass clears the board step; the ops log
	// wants name and mobile of the fresh registration.
	flow, flowErr := acct.State.Flow(ctx)

	classID := strings.TrimPrefix(update.CallbackQuery.Data, "sc_")
	res, err := h.onboarding.PickClass(ctx, acct, classID)
	if err != nil {
		slog.Error("signup class pick", "chat_id", chatID, "error", err)
		return
	}
	if res.ErrorText == "" && flowErr == nil && flow.Kind == service.FlowSignup {
		h.opsLogger.LogRegistration(chatID, flow.Register.Name, flow.Register.Mobile)
	}
	h.renderStep(ctx, b, chatID, res)
}

func (h *Handler) handleSignupClassPage(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.ackCallback(ctx, b, update)
	chatID, messageID, ok := callbackOrigin(update)
	if !ok {
		return
	}
	acct := middleware.GetAccount(ctx)
	if acct == nil {
		return
	}

	flow, err := acct.State.Flow(ctx)
	if err != nil || flow.Register.BoardID == "" {
		return
	}
	page, _ := strconv.Atoi(strings.TrimPrefix(update.CallbackQuery.Data, "scpg_"))
	h.sendClassKeyboard(ctx, b, chatID, flow.Register.BoardID, "And your class:", page, "sc_", "scpg", true, messageID)
}

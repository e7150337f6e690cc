package handler

import (
	"context"
	"log/slog"
	"strconv"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/shiksha-labs/tutorbot/internal/domain"
	"github.com/shiksha-labs/tutorbot/internal/middleware"
	tg "github.com/shiksha-labs/tutorbot/internal/telegram"
)

func (h *Handler) handleSettings(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	chatID := update.Message.Chat.ID
	acct := middleware.GetAccount(ctx)
	if acct == nil {
		return
	}

	if !acct.Session.IsLoggedIn(ctx) {
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "Sign in first: /login.",
		})
		return
	}

	boardName, className := "not set", "not set"
	if user, err := acct.Session.CachedUser(ctx); err == nil {
		if user.BoardID != "" {
			boardName = user.BoardID
			if board, err := h.catalog.BoardByID(ctx, user.BoardID); err == nil {
				boardName = board.Name
			}
			if user.ClassID != "" {
				className = user.ClassID
				if class, err := h.catalog.ClassByID(ctx, user.BoardID, user.ClassID); err == nil {
					className = class.Name
				}
			}
		}
	}

	text := "⚙️ Settings\n\nBoard: " + boardName + "\nClass: " + className
	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   text,
		ReplyMarkup: tg.InlineKeyboard(
			tg.ButtonRow(tg.InlineButton("✏️ Change board & class", "set_board")),
		),
	})
}

func (h *Handler) handleSettingsBoard(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.ackCallback(ctx, b, update)
	chatID, messageID, ok := callbackOrigin(update)
	if !ok {
		return
	}
	h.sendBoardKeyboard(ctx, b, chatID, "Pick your board:", 0, "stb_", "stbpg", true, messageID)
}

func (h *Handler) handleSettingsBoardPage(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.ackCallback(ctx, b, update)
	chatID, messageID, ok := callbackOrigin(update)
	if !ok {
		return
	}
	page, _ := strconv.Atoi(strings.TrimPrefix(update.CallbackQuery.Data, "stbpg_"))
	h.sendBoardKeyboard(ctx, b, chatID, "Pick your board:", page, "stb_", "stbpg", true, messageID)
}

func (h *Handler) handleSettingsBoardPick(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.ackCallback(ctx, b, update)
	chatID, messageID, ok := callbackOrigin(update)
	if !ok {
		return
	}
	acct := middleware.GetAccount(ctx)
	if acct == nil {
		return
	}

	boardID := strings.TrimPrefix(update.CallbackQuery.Data, "stb_")
	if err := acct.State.SetPendingBoard(ctx, boardID); err != nil {
		slog.Error("save pending board", "chat_id", chatID, "error", err)
		return
	}
	h.sendClassKeyboard(ctx, b, chatID, boardID, "And your class:", 0, "stc_", "stcpg", true, messageID)
}

func (h *Handler) handleSettingsClassPage(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.ackCallback(ctx, b, update)
	chatID, messageID, ok := callbackOrigin(update)
	if !ok {
		return
	}
	acct := middleware.GetAccount(ctx)
	if acct == nil {
		return
	}
	boardID, err := acct.State.PendingBoard(ctx)
	if err != nil {
		return
	}
	page, _ := strconv.Atoi(strings.TrimPrefix(update.CallbackQuery.Data, "stcpg_"))
	h.sendClassKeyboard(ctx, b, chatID, boardID, "And your class:", page, "stc_", "stcpg", true, messageID)
}

// handleSettingsClassPick commits the new board/class pair to the profile.
func (h *Handler) handleSettingsClassPick(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.ackCallback(ctx, b, update)
	chatID, _, ok := callbackOrigin(update)
	if !ok {
		return
	}
	acct := middleware.GetAccount(ctx)
	if acct == nil {
		return
	}

	boardID, err := acct.State.PendingBoard(ctx)
	if err != nil {
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "That menu has expired. Start over with /settings.",
		})
		return
	}
	classID := strings.TrimPrefix(update.CallbackQuery.Data, "stc_")

	resp, err := acct.Client.User.UpdateProfile(ctx, domain.ProfileUpdate{
		BoardID: &boardID,
		ClassID: &classID,
	})
	if err != nil {
		h.sendError(ctx, b, chatID, err)
		return
	}

	if err := acct.Session.SaveCachedUser(ctx, resp.User); err != nil {
		slog.Error("cache updated profile", "chat_id", chatID, "error", err)
	}

	text := resp.Message
	if text == "" {
		text = "Profile updated."
	}
	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   "✅ " + text + "\n\nBrowse /subjects to see what's in your new class.",
	})
}

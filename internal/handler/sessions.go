package handler

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/shiksha-labs/tutorbot/internal/config"
	"github.com/shiksha-labs/tutorbot/internal/domain"
	"github.com/shiksha-labs/tutorbot/internal/middleware"
	"github.com/shiksha-labs/tutorbot/internal/service"
	tg "github.com/shiksha-labs/tutorbot/internal/telegram"
)

func (h *Handler) handleSessions(ctx context.Context, b *bot.Bot, update *models.Update) {
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

	h.sendSessionsKeyboard(ctx, b, acct, chatID, 0, false, 0)
}

func (h *Handler) sendSessionsKeyboard(ctx context.Context, b *bot.Bot, acct *service.Account, chatID int64, page int, edit bool, messageID int) {
	sessions, err := acct.Client.Tutor.Sessions(ctx)
	if err != nil {
		h.sendError(ctx, b, chatID, err)
		return
	}
	if len(sessions) == 0 {
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "No study sessions yet. Start one with /subjects.",
		})
		return
	}

	activeID, _ := acct.State.ActiveSession(ctx)
	start, end, page, totalPages := pageBounds(len(sessions), page, config.SessionsPerPage)

	var rows [][]models.InlineKeyboardButton
	for _, s := range sessions[start:end] {
		label := s.CreatedAt.Format("02 Jan 15:04")
		if s.ID == activeID {
			if l := acct.State.ActiveSessionLabel(ctx); l != "" {
				label = l
			}
			label = "▶️ " + label
		}
		rows = append(rows, tg.ButtonRow(tg.InlineButton(label, "sw_"+s.ID)))
	}
	if totalPages > 1 {
		rows = append(rows, tg.PaginationRow(page, totalPages, "swpg"))
	}

	h.sendOrEditKeyboard(ctx, b, chatID, "💬 Your sessions — tap one to continue it:", rows, edit, messageID)
}

func (h *Handler) handleSessionsPage(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.ackCallback(ctx, b, update)
	chatID, messageID, ok := callbackOrigin(update)
	if !ok {
		return
	}
	acct := middleware.GetAccount(ctx)
	if acct == nil {
		return
	}
	page, _ := strconv.Atoi(strings.TrimPrefix(update.CallbackQuery.Data, "swpg_"))
	h.sendSessionsKeyboard(ctx, b, acct, chatID, page, true, messageID)
}

func (h *Handler) handleSessionSwitch(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.ackCallback(ctx, b, update)
	chatID, _, ok := callbackOrigin(update)
	if !ok {
		return
	}
	acct := middleware.GetAccount(ctx)
	if acct == nil {
		return
	}

	sessionID := strings.TrimPrefix(update.CallbackQuery.Data, "sw_")

	// Resolve a label from the session's subject/topic so the switch
	// confirmation names what the student is returning to.
	label := ""
	if sessions, err := acct.Client.Tutor.Sessions(ctx); err == nil {
		for _, s := range sessions {
			if s.ID == sessionID {
				label = h.sessionLabel(ctx, acct, s.SubjectID, s.TopicID)
				break
			}
		}
	}

	if err := acct.State.SetActiveSession(ctx, sessionID, label); err != nil {
		slog.Error("switch session", "chat_id", chatID, "error", err)
		h.sendError(ctx, b, chatID, err)
		return
	}

	text := "▶️ Resumed your session."
	if label != "" {
		text = fmt.Sprintf("▶️ Resumed %s.", label)
	}

	// Show where the conversation left off, like the chat page reloading
	// its history.
	if messages, err := acct.Client.Tutor.Messages(ctx, sessionID); err == nil {
		for i := len(messages) - 1; i >= 0; i-- {
			if messages[i].Role == domain.RoleAssistant {
				preview := messages[i].Content
				if utf8.RuneCountInString(preview) > 200 {
					preview = string([]rune(preview)[:200]) + "…"
				}
				text += "\n\nLast reply:\n" + preview
				break
			}
		}
	}

	text += "\n\nJust type your question!"
	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   text,
	})
}

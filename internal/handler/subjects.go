package handler

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/shiksha-labs/tutorbot/internal/config"
	"github.com/shiksha-labs/tutorbot/internal/middleware"
	"github.com/shiksha-labs/tutorbot/internal/service"
	tg "github.com/shiksha-labs/tutorbot/internal/telegram"
)

func (h *Handler) handleSubjects(ctx context.Context, b *bot.Bot, update *models.Update) {
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
			Text:   "Sign in first: /login (or /signup if you're new).",
		})
		return
	}

	user, err := acct.Session.CachedUser(ctx)
	if err != nil || user.ClassID == "" {
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "Your profile has no class set yet. Use /settings to pick your board and class.",
		})
		return
	}

	h.sendSubjectKeyboard(ctx, b, acct, chatID, 0, false, 0)
}

func (h *Handler) sendSubjectKeyboard(ctx context.Context, b *bot.Bot, acct *service.Account, chatID int64, page int, edit bool, messageID int) {
	user, err := acct.Session.CachedUser(ctx)
	if err != nil || user.ClassID == "" {
		return
	}
	subjects, err := h.catalog.SubjectsByClass(ctx, user.ClassID)
	if err != nil {
		h.sendError(ctx, b, chatID, err)
		return
	}
	if len(subjects) == 0 {
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "No subjects are available for your class yet.",
		})
		return
	}

	start, end, page, totalPages := pageBounds(len(subjects), page, config.SubjectsPerPage)

	var rows [][]models.InlineKeyboardButton
	for _, subject := range subjects[start:end] {
		rows = append(rows, tg.ButtonRow(tg.InlineButton(subject.Name, "subj_"+subject.ID)))
	}
	if totalPages > 1 {
		rows = append(rows, tg.PaginationRow(page, totalPages, "subjpg"))
	}

	h.sendOrEditKeyboard(ctx, b, chatID, "📚 Pick a subject:", rows, edit, messageID)
}

func (h *Handler) handleSubjectPick(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.ackCallback(ctx, b, update)
	chatID, messageID, ok := callbackOrigin(update)
	if !ok {
		return
	}
	acct := middleware.GetAccount(ctx)
	if acct == nil {
		return
	}

	subjectID := strings.TrimPrefix(update.CallbackQuery.Data, "subj_")
	if err := acct.State.SetPendingSubject(ctx, subjectID); err != nil {
		slog.Error("save pending subject", "chat_id", chatID, "error", err)
		return
	}
	h.sendTopicKeyboard(ctx, b, chatID, subjectID, 0, true, messageID)
}

func (h *Handler) handleSubjectPage(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.ackCallback(ctx, b, update)
	chatID, messageID, ok := callbackOrigin(update)
	if !ok {
		return
	}
	acct := middleware.GetAccount(ctx)
	if acct == nil {
		return
	}
	page, _ := strconv.Atoi(strings.TrimPrefix(update.CallbackQuery.Data, "subjpg_"))
	h.sendSubjectKeyboard(ctx, b, acct, chatID, page, true, messageID)
}

func (h *Handler) sendTopicKeyboard(ctx context.Context, b *bot.Bot, chatID int64, subjectID string, page int, edit bool, messageID int) {
	topics, err := h.catalog.TopicsBySubject(ctx, subjectID)
	if err != nil {
		h.sendError(ctx, b, chatID, err)
		return
	}
	if len(topics) == 0 {
		h.sendOrEditKeyboard(ctx, b, chatID, "No topics here yet. Try another subject: /subjects", nil, edit, messageID)
		return
	}

	start, end, page, totalPages := pageBounds(len(topics), page, config.TopicsPerPage)

	var rows [][]models.InlineKeyboardButton
	for _, topic := range topics[start:end] {
		rows = append(rows, tg.ButtonRow(tg.InlineButton(topic.Name, "top_"+topic.ID)))
	}
	if totalPages > 1 {
		rows = append(rows, tg.PaginationRow(page, totalPages, "toppg"))
	}

	h.sendOrEditKeyboard(ctx, b, chatID, "Pick a topic:", rows, edit, messageID)
}

func (h *Handler) handleTopicPage(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.ackCallback(ctx, b, update)
	chatID, messageID, ok := callbackOrigin(update)
	if !ok {
		return
	}
	acct := middleware.GetAccount(ctx)
	if acct == nil {
		return
	}
	subjectID, err := acct.State.PendingSubject(ctx)
	if err != nil {
		return
	}
	page, _ := strconv.Atoi(strings.TrimPrefix(update.CallbackQuery.Data, "toppg_"))
	h.sendTopicKeyboard(ctx, b, chatID, subjectID, page, true, messageID)
}

// handleTopicPick opens a tutor session on the chosen topic and routes all
// following plain text to it.
func (h *Handler) handleTopicPick(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.ackCallback(ctx, b, update)
	chatID, _, ok := callbackOrigin(update)
	if !ok {
		return
	}
	acct := middleware.GetAccount(ctx)
	if acct == nil {
		return
	}

	topicID := strings.TrimPrefix(update.CallbackQuery.Data, "top_")
	subjectID, err := acct.State.PendingSubject(ctx)
	if err != nil {
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "That menu has expired. Start over with /subjects.",
		})
		return
	}

	session, err := acct.Client.Tutor.CreateSession(ctx, subjectID, topicID)
	if err != nil {
		h.sendError(ctx, b, chatID, err)
		return
	}

	label := h.sessionLabel(ctx, acct, subjectID, topicID)
	if err := acct.State.SetActiveSession(ctx, session.ID, label); err != nil {
		slog.Error("save active session", "chat_id", chatID, "error", err)
		h.sendError(ctx, b, chatID, err)
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "🎓 Session started: %s\n", label)
	if subTopics, err := h.catalog.SubTopicsByTopic(ctx, topicID); err == nil && len(subTopics) > 0 {
		sb.WriteString("\nYou'll cover:\n")
		for _, st := range subTopics {
			fmt.Fprintf(&sb, "• %s\n", st.Name)
		}
	}
	sb.WriteString("\nJust type your question!")

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   sb.String(),
	})
}

// sessionLabel builds a human label for a session from catalog names,
// falling back to raw ids when the catalog cannot resolve them.
func (h *Handler) sessionLabel(ctx context.Context, acct *service.Account, subjectID, topicID string) string {
	subjectName, topicName := subjectID, topicID

	if topics, err := h.catalog.TopicsBySubject(ctx, subjectID); err == nil {
		for _, t := range topics {
			if t.ID == topicID {
				topicName = t.Name
				break
			}
		}
	}
	if user, err := acct.Session.CachedUser(ctx); err == nil && user.ClassID != "" {
		if subjects, err := h.catalog.SubjectsByClass(ctx, user.ClassID); err == nil {
			for _, s := range subjects {
				if s.ID == subjectID {
					subjectName = s.Name
					break
				}
			}
		}
	}
	return subjectName + " · " + topicName
}

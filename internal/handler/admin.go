package handler

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/shiksha-labs/tutorbot/internal/adminutil"
	"github.com/shiksha-labs/tutorbot/internal/apiclient"
	"github.com/shiksha-labs/tutorbot/internal/config"
	"github.com/shiksha-labs/tutorbot/internal/middleware"
	"github.com/shiksha-labs/tutorbot/internal/service"
	tg "github.com/shiksha-labs/tutorbot/internal/telegram"
)

// operatorAccount gates admin commands. Non-operators are ignored outright;
// the commands stay invisible to regular students.
func (h *Handler) operatorAccount(ctx context.Context, update *models.Update) *service.Account {
	var fromID int64
	if update.Message != nil && update.Message.From != nil {
		fromID = update.Message.From.ID
	} else if update.CallbackQuery != nil {
		fromID = update.CallbackQuery.From.ID
	}
	if !h.cfg.IsOperator(fromID) {
		return nil
	}
	return middleware.GetAccount(ctx)
}

func (h *Handler) handleAdmin(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	acct := h.operatorAccount(ctx, update)
	if acct == nil {
		return
	}
	chatID := update.Message.Chat.ID
	args := strings.Fields(update.Message.Text)

	switch {
	case len(args) >= 4 && args[1] == "login":
		h.adminLogin(ctx, b, acct, chatID, args[2], args[3])
	case len(args) >= 2 && args[1] == "logout":
		if err := acct.Session.AdminLogout(ctx); err != nil {
			slog.Error("admin logout", "chat_id", chatID, "error", err)
			h.sendError(ctx, b, chatID, err)
			return
		}
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "🛡 Admin signed out.",
		})
	default:
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "Usage:\n/admin login <email> <password>\n/admin logout\n/students [search]",
		})
	}
}

func (h *Handler) adminLogin(ctx context.Context, b *bot.Bot, acct *service.Account, chatID int64, email, password string) {
	resp, err := acct.Client.Admin.Login(ctx, email, password)
	if err != nil {
		h.sendError(ctx, b, chatID, err)
		return
	}
	if err := acct.Session.SaveAdminLogin(ctx, resp.Token, resp.User); err != nil {
		slog.Error("save admin login", "chat_id", chatID, "error", err)
		h.sendError(ctx, b, chatID, err)
		return
	}
	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   fmt.Sprintf("🛡 Signed in as admin %s. Use /students to browse students.", resp.User.Email),
	})
}

func (h *Handler) handleStudents(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	acct := h.operatorAccount(ctx, update)
	if acct == nil {
		return
	}
	chatID := update.Message.Chat.ID

	if !acct.Session.IsAdminLoggedIn(ctx) {
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "Admin authentication required. Use /admin login <email> <password>.",
		})
		return
	}

	query := strings.TrimSpace(strings.TrimPrefix(update.Message.Text, "/students"))
	if err := acct.State.SetStudentsQuery(ctx, query); err != nil {
		slog.Error("save students query", "chat_id", chatID, "error", err)
	}

	h.sendStudentsKeyboard(ctx, b, acct, chatID, 0, false, 0)
}

func (h *Handler) sendStudentsKeyboard(ctx context.Context, b *bot.Bot, acct *service.Account, chatID int64, page int, edit bool, messageID int) {
	students, err := acct.Client.Admin.Users(ctx)
	if err != nil {
		h.sendAdminError(ctx, b, chatID, err)
		return
	}

	query := acct.State.StudentsQuery(ctx)
	students = adminutil.FilterStudents(students, query)
	if len(students) == 0 {
		text := "No students found."
		if query != "" {
			text = fmt.Sprintf("No students match %q.", query)
		}
		h.sendOrEditKeyboard(ctx, b, chatID, text, nil, edit, messageID)
		return
	}

	start, end, page, totalPages := pageBounds(len(students), page, config.StudentsPerPage)

	var rows [][]models.InlineKeyboardButton
	for _, s := range students[start:end] {
		label := s.Name
		if !s.IsActive {
			label = "🚫 " + label
		}
		rows = append(rows, tg.ButtonRow(tg.InlineButton(label, "stu_"+s.ID)))
	}
	if totalPages > 1 {
		rows = append(rows, tg.PaginationRow(page, totalPages, "stupg"))
	}

	title := fmt.Sprintf("🛡 Students (%d)", len(students))
	if query != "" {
		title = fmt.Sprintf("🛡 Students matching %q (%d)", query, len(students))
	}
	h.sendOrEditKeyboard(ctx, b, chatID, title, rows, edit, messageID)
}

func (h *Handler) handleStudentsPage(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.ackCallback(ctx, b, update)
	acct := h.operatorAccount(ctx, update)
	if acct == nil {
		return
	}
	chatID, messageID, ok := callbackOrigin(update)
	if !ok {
		return
	}
	page, _ := strconv.Atoi(strings.TrimPrefix(update.CallbackQuery.Data, "stupg_"))
	h.sendStudentsKeyboard(ctx, b, acct, chatID, page, true, messageID)
}

func (h *Handler) handleStudentsBack(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.ackCallback(ctx, b, update)
	acct := h.operatorAccount(ctx, update)
	if acct == nil {
		return
	}
	chatID, messageID, ok := callbackOrigin(update)
	if !ok {
		return
	}
	h.sendStudentsKeyboard(ctx, b, acct, chatID, 0, true, messageID)
}

func (h *Handler) handleStudentCard(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.ackCallback(ctx, b, update)
	acct := h.operatorAccount(ctx, update)
	if acct == nil {
		return
	}
	chatID, messageID, ok := callbackOrigin(update)
	if !ok {
		return
	}
	studentID := strings.TrimPrefix(update.CallbackQuery.Data, "stu_")
	h.sendStudentCard(ctx, b, acct, chatID, studentID, messageID)
}

func (h *Handler) sendStudentCard(ctx context.Context, b *bot.Bot, acct *service.Account, chatID int64, studentID string, messageID int) {
	s, err := acct.Client.Admin.UserByID(ctx, studentID)
	if err != nil {
		h.sendAdminError(ctx, b, chatID, err)
		return
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "👤 %s\n", s.Name)
	if s.Age > 0 {
		fmt.Fprintf(&sb, "Age: %d\n", s.Age)
	}
	if s.Mobile != nil {
		fmt.Fprintf(&sb, "Mobile: %s\n", *s.Mobile)
	}
	if s.Email != nil {
		fmt.Fprintf(&sb, "Email: %s\n", *s.Email)
	}
	if s.BoardName != nil {
		fmt.Fprintf(&sb, "Board: %s\n", *s.BoardName)
	}
	if s.ClassName != nil {
		fmt.Fprintf(&sb, "Class: %s\n", *s.ClassName)
	}
	if s.IsActive {
		sb.WriteString("Status: ✅ active\n")
	} else {
		sb.WriteString("Status: 🚫 deactivated\n")
	}
	if s.IsVerified {
		sb.WriteString("Verified: ✅\n")
	} else {
		sb.WriteString("Verified: ❌\n")
	}
	if !s.CreatedAt.IsZero() {
		fmt.Fprintf(&sb, "Registered: %s\n", adminutil.FormatDate(s.CreatedAt))
	}

	var actionRow []models.InlineKeyboardButton
	if s.IsActive {
		actionRow = tg.ButtonRow(tg.InlineButton("🚫 Deactivate", "deact_"+s.ID))
	} else {
		actionRow = tg.ButtonRow(tg.InlineButton("✅ Activate", "act_"+s.ID))
	}

	h.sendOrEditKeyboard(ctx, b, chatID, sb.String(),
		[][]models.InlineKeyboardButton{
			actionRow,
			tg.ButtonRow(tg.InlineButton("⬅️ Back to list", "stuback")),
		}, true, messageID)
}

func (h *Handler) handleStudentActivate(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.moderateStudent(ctx, b, update, "act_", "activate")
}

func (h *Handler) handleStudentDeactivate(ctx context.Context, b *bot.Bot, update *models.Update) {
	h.moderateStudent(ctx, b, update, "deact_", "deactivate")
}

func (h *Handler) moderateStudent(ctx context.Context, b *bot.Bot, update *models.Update, prefix, action string) {
	h.ackCallback(ctx, b, update)
	acct := h.operatorAccount(ctx, update)
	if acct == nil {
		return
	}
	chatID, messageID, ok := callbackOrigin(update)
	if !ok {
		return
	}
	studentID := strings.TrimPrefix(update.CallbackQuery.Data, prefix)

	var err error
	if action == "activate" {
		_, err = acct.Client.Admin.ActivateUser(ctx, studentID)
	} else {
		_, err = acct.Client.Admin.DeactivateUser(ctx, studentID)
	}
	if err != nil {
		h.sendAdminError(ctx, b, chatID, err)
		return
	}

	h.opsLogger.LogModeration(acct.Session.AdminEmail(ctx), action, studentID)
	h.sendStudentCard(ctx, b, acct, chatID, studentID, messageID)
}

// sendAdminError is sendError with the admin re-login hint instead of the
// student one.
func (h *Handler) sendAdminError(ctx context.Context, b *bot.Bot, chatID int64, err error) {
	text := "❌ " + err.Error()
	if apiclient.IsAuthRequired(err) {
		text += "\n\nUse /admin login <email> <password> to sign in again."
	}
	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   text,
	})
}

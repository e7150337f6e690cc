package handler

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/shiksha-labs/tutorbot/internal/middleware"
)

func (h *Handler) handleLogin(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	chatID := update.Message.Chat.ID
	acct := middleware.GetAccount(ctx)
	if acct == nil {
		return
	}

	if acct.Session.IsLoggedIn(ctx) {
		name := ""
		if user, err := acct.Session.CachedUser(ctx); err == nil {
			name = user.Name
		}
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   fmt.Sprintf("You're already signed in as %s. Use /logout first to switch accounts.", name),
		})
		return
	}

	res, err := h.onboarding.StartLogin(ctx, acct)
	if err != nil {
		slog.Error("start login", "chat_id", chatID, "error", err)
		h.sendError(ctx, b, chatID, err)
		return
	}
	h.renderStep(ctx, b, chatID, res)
}

func (h *Handler) handleLogout(ctx context.Context, b *bot.Bot, update *models.Update) {
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
			Text:   "You're not signed in.",
		})
		return
	}

	if err := acct.Session.Logout(ctx); err != nil {
		slog.Error("logout", "chat_id", chatID, "error", err)
		h.sendError(ctx, b, chatID, err)
		return
	}
	if err := acct.State.ClearActiveSession(ctx); err != nil {
		slog.Error("clear active session on logout", "chat_id", chatID, "error", err)
	}

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   "🚪 Signed out. Come back any time with /login.",
	})
}

func (h *Handler) handleCancel(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	chatID := update.Message.Chat.ID
	acct := middleware.GetAccount(ctx)
	if acct == nil {
		return
	}

	if err := h.onboarding.Cancel(ctx, acct); err != nil {
		slog.Error("cancel flow", "chat_id", chatID, "error", err)
	}
	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   "Cancelled.",
	})
}

func (h *Handler) handleProfile(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	chatID := update.Message.Chat.ID
	acct := middleware.GetAccount(ctx)
	if acct == nil {
		return
	}

	user, err := acct.Client.Auth.Me(ctx)
	if err != nil {
		h.sendError(ctx, b, chatID, err)
		return
	}
	// Keep the cached copy fresh; /subjects reads classId from it.
	if err := acct.Session.SaveCachedUser(ctx, user); err != nil {
		slog.Error("cache profile", "chat_id", chatID, "error", err)
	}

	var sb strings.Builder
	fmt.Fprintf(&sb, "👤 %s\n", user.Name)
	if user.Age > 0 {
		fmt.Fprintf(&sb, "Age: %d\n", user.Age)
	}
	if user.Mobile != "" {
		fmt.Fprintf(&sb, "Mobile: %s\n", user.Mobile)
	}
	if user.Email != "" {
		fmt.Fprintf(&sb, "Email: %s\n", user.Email)
	}
	if user.BoardID != "" {
		boardName := user.BoardID
		if board, err := h.catalog.BoardByID(ctx, user.BoardID); err == nil {
			boardName = board.Name
		}
		fmt.Fprintf(&sb, "Board: %s\n", boardName)
		if user.ClassID != "" {
			className := user.ClassID
			if class, err := h.catalog.ClassByID(ctx, user.BoardID, user.ClassID); err == nil {
				className = class.Name
			}
			fmt.Fprintf(&sb, "Class: %s\n", className)
		}
	}
	if user.IsVerified {
		sb.WriteString("Verified: ✅\n")
	}
	sb.WriteString("\nUse /settings to change your board or class.")

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   sb.String(),
	})
}

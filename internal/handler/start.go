package handler

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/shiksha-labs/tutorbot/internal/middleware"
)

func (h *Handler) handleStart(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.Message == nil {
		return
	}
	chatID := update.Message.Chat.ID
	acct := middleware.GetAccount(ctx)

	greeting := "👋 Welcome to Shiksha Tutor!"
	if acct != nil {
		if user, err := acct.Session.CachedUser(ctx); err == nil && user.Name != "" {
			greeting = fmt.Sprintf("👋 Welcome back, %s!", user.Name)
		}
	}

	text := greeting + `

I'm your AI study buddy. Pick a topic and ask me anything about it.

📚 /subjects — browse subjects and start a topic
💬 /sessions — switch between your study sessions
👤 /profile — see your profile
⚙️ /settings — change your board or class

🔑 /login — sign in with your mobile number
✨ /signup — create an account
🚪 /logout — sign out
❌ /cancel — abort the current login or signup`

	b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID: chatID,
		Text:   text,
	})
}

package middleware

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/shiksha-labs/tutorbot/internal/service"
)

type ctxKey string

const AccountKey ctxKey = "account"

// GetAccount extracts the chat's account from context.
func GetAccount(ctx context.Context) *service.Account {
	acct, ok := ctx.Value(AccountKey).(*service.Account)
	if !ok {
		return nil
	}
	return acct
}

// AccountLoader returns middleware that binds the update's chat to its
// credential namespace and API client.
func AccountLoader(accounts *service.Accounts) bot.Middleware {
	return func(next bot.HandlerFunc) bot.HandlerFunc {
		return func(ctx context.Context, b *bot.Bot, update *models.Update) {
			var chatID int64

			if update.Message != nil {
				chatID = update.Message.Chat.ID
			} else if update.CallbackQuery != nil && update.CallbackQuery.Message.Message != nil {
				chatID = update.CallbackQuery.Message.Message.Chat.ID
			}

			if chatID != 0 {
				ctx = context.WithValue(ctx, AccountKey, accounts.ForChat(chatID))
			}

			next(ctx, b, update)
		}
	}
}

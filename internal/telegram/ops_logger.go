package telegram

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/go-telegram/bot"
	"github.com/shiksha-labs/tutorbot/internal/config"
)

// OpsLogger mirrors notable events into an operations Telegram channel,
// one forum topic per event class.
type OpsLogger struct {
	bot *bot.Bot
	cfg *config.Config
}

func NewOpsLogger(b *bot.Bot, cfg *config.Config) *OpsLogger {
	return &OpsLogger{bot: b, cfg: cfg}
}

type LogType string

const (
	LogTypeError        LogType = "error"
	LogTypeRegistration LogType = "registration"
	LogTypeModeration   LogType = "moderation"
)

func (l *OpsLogger) Log(logType LogType, message string) {
	if l.cfg.LogTelegramChatID == 0 {
		return
	}

	topicID := l.getTopicID(logType)
	if topicID == 0 {
		return
	}

	if len([]rune(message)) > MaxMessageLen {
		message = string([]rune(message)[:MaxMessageLen-20]) + "\n\n... (truncated)"
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	_, err := l.bot.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:          l.cfg.LogTelegramChatID,
		Text:            message,
		ParseMode:       "Markdown",
		MessageThreadID: topicID,
	})
	if err != nil {
		slog.Error("failed to send telegram log", "type", logType, "error", err)
	}
}

func (l *OpsLogger) LogError(err error, context string) {
	msg := fmt.Sprintf("❌ *Error*\n\n*Context:* %s\n*Error:* `%s`\n*Time:* %s",
		context, err.Error(), time.Now().Format("2006-01-02 15:04:05"))
	l.Log(LogTypeError, msg)
}

func (l *OpsLogger) LogRegistration(chatID int64, name, mobile string) {
	msg := fmt.Sprintf("👤 *New Registration*\n\n*Chat:* `%d`\n*Name:* %s\n*Mobile:* `%s`",
		chatID, name, mobile)
	l.Log(LogTypeRegistration, msg)
}

func (l *OpsLogger) LogModeration(adminEmail, action, studentID string) {
	msg := fmt.Sprintf("🛡 *Moderation*\n\n*Admin:* %s\n*Action:* %s\n*Student:* `%s`",
		adminEmail, action, studentID)
	l.Log(LogTypeModeration, msg)
}

func (l *OpsLogger) getTopicID(logType LogType) int {
	switch logType {
	case LogTypeError:
		return l.cfg.LogTopicError
	case LogTypeRegistration:
		return l.cfg.LogTopicRegistration
	case LogTypeModeration:
		return l.cfg.LogTopicModeration
	default:
		return 0
	}
}

package handler

import (
	"context"
	"fmt"

	"github.com/go-telegram/bot"
	"github.com/shiksha-labs/tutorbot/internal/service"
)

// renderStep turns an onboarding step outcome into chat output. Board and
// class picks are keyboards; everything else is a plain prompt.
func (h *Handler) renderStep(ctx context.Context, b *bot.Bot, chatID int64, res service.StepResult) {
	switch {
	case res.ErrorText != "":
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   "❌ " + res.ErrorText,
		})
	case res.NeedBoardPick:
		h.sendBoardKeyboard(ctx, b, chatID, res.Prompt, 0, "sb_", "sbpg", false, 0)
	case res.NeedClassPick:
		h.sendClassKeyboard(ctx, b, chatID, res.BoardID, res.Prompt, 0, "sc_", "scpg", false, 0)
	case res.Done && res.LoggedIn != nil:
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text: fmt.Sprintf("✅ You're in, %s!\n\nBrowse /subjects to pick a topic and start learning.",
				res.LoggedIn.Name),
		})
	case res.Prompt != "":
		b.SendMessage(ctx, &bot.SendMessageParams{
			ChatID: chatID,
			Text:   res.Prompt,
		})
	}
}

package handler

import (
	"context"
	"log/slog"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/shiksha-labs/tutorbot/internal/config"
	tg "github.com/shiksha-labs/tutorbot/internal/telegram"
)

// Catalog pickers are shared between signup and settings; only the callback
// prefixes differ.

func (h *Handler) sendBoardKeyboard(ctx context.Context, b *bot.Bot, chatID int64, title string, page int, pickPrefix, pagePrefix string, edit bool, messageID int) {
	boards, err := h.catalog.Boards(ctx)
	if err != nil {
		h.sendError(ctx, b, chatID, err)
		return
	}

	start, end, page, totalPages := pageBounds(len(boards), page, config.BoardsPerPage)

	var rows [][]models.InlineKeyboardButton
	for _, board := range boards[start:end] {
		rows = append(rows, tg.ButtonRow(tg.InlineButton(board.Name, pickPrefix+board.ID)))
	}
	if totalPages > 1 {
		rows = append(rows, tg.PaginationRow(page, totalPages, pagePrefix))
	}

	h.sendOrEditKeyboard(ctx, b, chatID, title, rows, edit, messageID)
}

func (h *Handler) sendClassKeyboard(ctx context.Context, b *bot.Bot, chatID int64, boardID, title string, page int, pickPrefix, pagePrefix string, edit bool, messageID int) {
	classes, err := h.catalog.ClassesByBoard(ctx, boardID)
	if err != nil {
		h.sendError(ctx, b, chatID, err)
		return
	}

	start, end, page, totalPages := pageBounds(len(classes), page, config.ClassesPerPage)

	var rows [][]models.InlineKeyboardButton
	for _, class := range classes[start:end] {
		rows = append(rows, tg.ButtonRow(tg.InlineButton(class.Name, pickPrefix+class.ID)))
	}
	if totalPages > 1 {
		rows = append(rows, tg.PaginationRow(page, totalPages, pagePrefix))
	}

	h.sendOrEditKeyboard(ctx, b, chatID, title, rows, edit, messageID)
}

func (h *Handler) sendOrEditKeyboard(ctx context.Context, b *bot.Bot, chatID int64, text string, rows [][]models.InlineKeyboardButton, edit bool, messageID int) {
	if edit {
		_, err := b.EditMessageText(ctx, &bot.EditMessageTextParams{
			ChatID:      chatID,
			MessageID:   messageID,
			Text:        text,
			ReplyMarkup: tg.InlineKeyboard(rows...),
		})
		if err != nil {
			slog.Error("edit keyboard", "error", err)
		}
		return
	}
	_, err := b.SendMessage(ctx, &bot.SendMessageParams{
		ChatID:      chatID,
		Text:        text,
		ReplyMarkup: tg.InlineKeyboard(rows...),
	})
	if err != nil {
		slog.Error("send keyboard", "error", err)
	}
}

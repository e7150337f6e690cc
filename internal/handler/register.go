package handler

import (
	"context"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
)

// Register registers all command and callback handlers on the bot instance.
// Callback prefixes are chosen to be mutually disjoint because match order
// between handlers is not guaranteed.
func (h *Handler) Register() {
	// Commands
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/start", bot.MatchTypePrefix, h.handleStart)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/login", bot.MatchTypePrefix, h.handleLogin)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/signup", bot.MatchTypePrefix, h.handleSignup)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/logout", bot.MatchTypePrefix, h.handleLogout)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/cancel", bot.MatchTypePrefix, h.handleCancel)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/profile", bot.MatchTypePrefix, h.handleProfile)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/settings", bot.MatchTypePrefix, h.handleSettings)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/subjects", bot.MatchTypePrefix, h.handleSubjects)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/sessions", bot.MatchTypePrefix, h.handleSessions)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/end", bot.MatchTypePrefix, h.handleEnd)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/admin", bot.MatchTypePrefix, h.handleAdmin)
	h.bot.RegisterHandler(bot.HandlerTypeMessageText, "/students", bot.MatchTypePrefix, h.handleStudents)

	// Signup callbacks: board then class pick
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "sb_", bot.MatchTypePrefix, h.handleSignupBoardPick)
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "sbpg_", bot.MatchTypePrefix, h.handleSignupBoardPage)
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "sc_", bot.MatchTypePrefix, h.handleSignupClassPick)
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "scpg_", bot.MatchTypePrefix, h.handleSignupClassPage)

	// Subject browse callbacks
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "subj_", bot.MatchTypePrefix, h.handleSubjectPick)
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "subjpg_", bot.MatchTypePrefix, h.handleSubjectPage)
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "top_", bot.MatchTypePrefix, h.handleTopicPick)
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "toppg_", bot.MatchTypePrefix, h.handleTopicPage)

	// Settings callbacks
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "set_board", bot.MatchTypeExact, h.handleSettingsBoard)
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "stb_", bot.MatchTypePrefix, h.handleSettingsBoardPick)
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "stbpg_", bot.MatchTypePrefix, h.handleSettingsBoardPage)
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "stc_", bot.MatchTypePrefix, h.handleSettingsClassPick)
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "stcpg_", bot.MatchTypePrefix, h.handleSettingsClassPage)

	// Sessions callbacks
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "sw_", bot.MatchTypePrefix, h.handleSessionSwitch)
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "swpg_", bot.MatchTypePrefix, h.handleSessionsPage)

	// Admin callbacks
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "stu_", bot.MatchTypePrefix, h.handleStudentCard)
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "stupg_", bot.MatchTypePrefix, h.handleStudentsPage)
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "act_", bot.MatchTypePrefix, h.handleStudentActivate)
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "deact_", bot.MatchTypePrefix, h.handleStudentDeactivate)
	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "stuback", bot.MatchTypeExact, h.handleStudentsBack)

	h.bot.RegisterHandler(bot.HandlerTypeCallbackQueryData, "cur", bot.MatchTypeExact, h.handleNoop)
}

// handleNoop acknowledges callbacks from non-interactive buttons such as
// pagination indicators.
func (h *Handler) handleNoop(ctx context.Context, b *bot.Bot, update *models.Update) {
	if update.CallbackQuery != nil {
		b.AnswerCallbackQuery(ctx, &bot.AnswerCallbackQueryParams{
			CallbackQueryID: update.CallbackQuery.ID,
		})
	}
}

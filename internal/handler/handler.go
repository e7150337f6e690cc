package handler

import (
	"github.com/go-telegram/bot"
	"github.com/shiksha-labs/tutorbot/internal/config"
	"github.com/shiksha-labs/tutorbot/internal/service"
	"github.com/shiksha-labs/tutorbot/internal/telegram"
)

// Handler holds all dependencies needed by command and callback handlers.
type Handler struct {
	bot        *bot.Bot
	cfg        *config.Config
	catalog    *service.Catalog
	onboarding *service.Onboarding
	opsLogger  *telegram.OpsLogger
}

// Deps contains all dependencies required to construct a Handler.
type Deps struct {
	Bot        *bot.Bot
	Cfg        *config.Config
	Catalog    *service.Catalog
	Onboarding *service.Onboarding
	OpsLogger  *telegram.OpsLogger
}

// New creates a new Handler from the provided dependencies.
func New(deps Deps) *Handler {
	return &Handler{
		bot:        deps.Bot,
		cfg:        deps.Cfg,
		catalog:    deps.Catalog,
		onboarding: deps.Onboarding,
		opsLogger:  deps.OpsLogger,
	}
}

package main

import (
	"context"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"

	tutorbot "github.com/shiksha-labs/tutorbot"
	"github.com/shiksha-labs/tutorbot/internal/config"
	"github.com/shiksha-labs/tutorbot/internal/credstore"
	"github.com/shiksha-labs/tutorbot/internal/handler"
	"github.com/shiksha-labs/tutorbot/internal/metrics"
	"github.com/shiksha-labs/tutorbot/internal/middleware"
	"github.com/shiksha-labs/tutorbot/internal/repository"
	"github.com/shiksha-labs/tutorbot/internal/service"
	"github.com/shiksha-labs/tutorbot/internal/telegram"
)

func main() {
	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})))

	if err := run(); err != nil {
		slog.Error("bot stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	store, rateCounter, cleanup, err := buildStore(ctx, cfg)
	if err != nil {
		return err
	}
	defer cleanup()

	accounts := service.NewAccounts(store, cfg.APIBaseURL, cfg.APITimeout)
	catalog := service.NewCatalog(accounts.Anonymous().Academic, config.CatalogCacheDuration)
	onboarding := service.NewOnboarding()

	opts := []bot.Option{
		bot.WithMiddlewares(
			middleware.Recover(),
			middleware.Logging(),
			middleware.RateLimit(rateCounter),
			middleware.AccountLoader(accounts),
		),
	}

	b, err := bot.New(cfg.BotToken, opts...)
	if err != nil {
		return fmt.Errorf("create bot: %w", err)
	}

	if cfg.DropPendingUpdates {
		b.DeleteWebhook(ctx, &bot.DeleteWebhookParams{DropPendingUpdates: true})
	}

	me, err := b.GetMe(ctx)
	if err != nil {
		return fmt.Errorf("get bot identity: %w", err)
	}
	slog.Info("bot starting", "username", me.Username)

	h := handler.New(handler.Deps{
		Bot:        b,
		Cfg:        cfg,
		Catalog:    catalog,
		Onboarding: onboarding,
		OpsLogger:  telegram.NewOpsLogger(b, cfg),
	})
	h.Register()

	// Plain text goes to the active tutor session or the in-progress flow.
	b.RegisterHandler(bot.HandlerTypeMessageText, "", bot.MatchTypePrefix, func(ctx context.Context, b *bot.Bot, update *models.Update) {
		if update.Message == nil {
			return
		}
		if len(update.Message.Text) > 0 && update.Message.Text[0] == '/' {
			return
		}
		if update.Message.Chat.Type == "private" {
			h.HandleTextPrivate(ctx, b, update)
		}
	})

	if cfg.MetricsPort > 0 {
		go func() {
			addr := fmt.Sprintf(":%d", cfg.MetricsPort)
			slog.Info("metrics listening", "addr", addr)
			if err := http.ListenAndServe(addr, metrics.Handler()); err != nil {
				slog.Error("metrics listener failed", "error", err)
			}
		}()
	}

	b.Start(ctx)
	slog.Info("bot stopped gracefully")
	return nil
}

// buildStore picks the credential backend: postgres when DATABASE_URL is
// set, redis next, in-memory last. The redis connection doubles as the
// shared rate-limit counter when present.
func buildStore(ctx context.Context, cfg *config.Config) (credstore.Store, middleware.Counter, func(), error) {
	if cfg.DatabaseURL != "" {
		migrationsFS, err := fs.Sub(tutorbot.MigrationsFS, "migrations")
		if err != nil {
			return nil, nil, nil, fmt.Errorf("open migrations: %w", err)
		}
		if err := repository.RunMigrations(cfg.DatabaseURL, migrationsFS); err != nil {
			return nil, nil, nil, err
		}
		pool, err := repository.NewPool(ctx, cfg.DatabaseURL)
		if err != nil {
			return nil, nil, nil, err
		}
		slog.Info("credential store ready", "backend", "postgres")
		return credstore.NewPostgres(pool), middleware.NewMemoryCounter(), pool.Close, nil
	}

	if cfg.RedisAddr != "" {
		rdb, err := credstore.NewRedis(ctx, cfg.RedisAddr, cfg.RedisPassword)
		if err != nil {
			return nil, nil, nil, err
		}
		slog.Info("credential store ready", "backend", "redis")
		return rdb, middleware.NewRedisCounter(rdb.Client()), func() { rdb.Client().Close() }, nil
	}

	slog.Warn("no DATABASE_URL or REDIS_ADDR set, sessions will not survive restarts")
	return credstore.NewMemory(), middleware.NewMemoryCounter(), func() {}, nil
}

package middleware

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/go-telegram/bot"
	"github.com/go-telegram/bot/models"
	"github.com/redis/go-redis/v9"
	"github.com/shiksha-labs/tutorbot/internal/config"
)

// Counter increments a per-chat counter inside the current one-minute
// window and returns the new count.
type Counter interface {
	Incr(ctx context.Context, chatID int64) (int64, error)
}

// RedisCounter shares the limit across bot replicas.
type RedisCounter struct {
	client *redis.Client
}

func NewRedisCounter(client *redis.Client) *RedisCounter {
	return &RedisCounter{client: client}
}

func (c *RedisCounter) Incr(ctx context.Context, chatID int64) (int64, error) {
	key := fmt.Sprintf("ratelimit:%d:%d", chatID, time.Now().Unix()/60)
	pipe := c.client.TxPipeline()
	incr := pipe.Incr(ctx, key)
	pipe.Expire(ctx, key, 2*time.Minute)
	if _, err := pipe.Exec(ctx); err != nil {
		return 0, err
	}
	return incr.Val(), nil
}

// MemoryCounter is the single-process fallback.
type MemoryCounter struct {
	mu      sync.Mutex
	counts  map[int64]int64
	windows map[int64]int64
}

func NewMemoryCounter() *MemoryCounter {
	return &MemoryCounter{
		counts:  make(map[int64]int64),
		windows: make(map[int64]int64),
	}
}

func (c *MemoryCounter) Incr(ctx context.Context, chatID int64) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	window := time.Now().Unix() / 60
	if c.windows[chatID] != window {
		c.windows[chatID] = window
		c.counts[chatID] = 0
	}
	c.counts[chatID]++
	return c.counts[chatID], nil
}

// RateLimit returns middleware that enforces the per-chat message rate.
// A failing counter never blocks a student.
func RateLimit(counter Counter) bot.Middleware {
	return func(next bot.HandlerFunc) bot.HandlerFunc {
		return func(ctx context.Context, b *bot.Bot, update *models.Update) {
			if update.Message == nil {
				next(ctx, b, update)
				return
			}

			chatID := update.Message.Chat.ID
			count, err := counter.Incr(ctx, chatID)
			if err != nil {
				slog.Error("rate limit check failed", "error", err, "chat_id", chatID)
				next(ctx, b, update)
				return
			}

			if count > config.RateLimitPerMinute {
				slog.Debug("rate limited", "chat_id", chatID, "count", count)
				b.SendMessage(ctx, &bot.SendMessageParams{
					ChatID: chatID,
					Text:   "⏳ Too many messages. Give it a minute.",
				})
				return
			}

			next(ctx, b, update)
		}
	}
}

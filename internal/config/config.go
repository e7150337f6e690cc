package config

import (
	"fmt"
	"time"

	"github.com/caarlos0/env/v11"
)

type Config struct {
	// Core
	BotToken   string        `env:"BOT_TOKEN,required"`
	APIBaseURL string        `env:"API_BASE_URL" envDefault:"http://localhost:9000/api"`
	APITimeout time.Duration `env:"API_TIMEOUT" envDefault:"30s"`

	// Credential storage. Postgres wins when both are set, redis comes
	// second, otherwise state lives in memory and dies with the process.
	DatabaseURL   string `env:"DATABASE_URL"`
	RedisAddr     string `env:"REDIS_ADDR"`
	RedisPassword string `env:"REDIS_PASSWORD"`

	// Operators allowed to run admin commands from Telegram.
	AdminIDs []int64 `env:"ADMIN_IDS" envSeparator:","`

	// Metrics/health listener. 0 disables it.
	MetricsPort int `env:"METRICS_PORT" envDefault:"0"`

	// Bot behavior
	DropPendingUpdates bool `env:"BOT_DROP_PENDING_UPDATES" envDefault:"false"`

	// Telegram ops logging
	LogTelegramChatID    int64 `env:"LOG_TELEGRAM_CHAT_ID"`
	LogTopicError        int   `env:"LOG_TOPIC_ERROR"`
	LogTopicRegistration int   `env:"LOG_TOPIC_REGISTRATION"`
	LogTopicModeration   int   `env:"LOG_TOPIC_MODERATION"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}

func (c *Config) IsOperator(telegramID int64) bool {
	for _, id := range c.AdminIDs {
		if id == telegramID {
			return true
		}
	}
	return false
}

package config

import (
	"os"
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("BOT_TOKEN", "123:abc")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.BotToken != "123:abc" {
		t.Errorf("BotToken = %q", cfg.BotToken)
	}
	if cfg.APIBaseURL != "http://localhost:9000/api" {
		t.Errorf("APIBaseURL = %q", cfg.APIBaseURL)
	}
	if cfg.APITimeout != 30*time.Second {
		t.Errorf("APITimeout = %v", cfg.APITimeout)
	}
	if cfg.MetricsPort != 0 {
		t.Errorf("MetricsPort = %d", cfg.MetricsPort)
	}
}

func TestLoadRequiresBotToken(t *testing.T) {
	// t.Setenv registers the restore; the variable must be fully unset for
	// the required check to trip.
	t.Setenv("BOT_TOKEN", "")
	os.Unsetenv("BOT_TOKEN")

	if _, err := Load(); err == nil {
		t.Error("Load succeeded without BOT_TOKEN")
	}
}

func TestLoadOperatorList(t *testing.T) {
	t.Setenv("BOT_TOKEN", "123:abc")
	t.Setenv("ADMIN_IDS", "42,1001")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if !cfg.IsOperator(42) || !cfg.IsOperator(1001) {
		t.Error("listed operators not recognized")
	}
	if cfg.IsOperator(7) {
		t.Error("unlisted id recognized as operator")
	}
}

package config

import (
	"testing"
	"time"
)

func TestLoadRequiresBotToken(t *testing.T) {
	t.Setenv("BOT_TOKEN", "")

	if _, err := Load(); err == nil {
		t.Fatal("expected error without BOT_TOKEN")
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("BOT_TOKEN", "secret")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}

	if cfg.Server.Addr != ":8080" {
		t.Fatalf("unexpected addr %q", cfg.Server.Addr)
	}
	if cfg.Session.IdleTimeout != 30*time.Minute {
		t.Fatalf("unexpected idle timeout %v", cfg.Session.IdleTimeout)
	}
	if cfg.Session.SweepInterval != 10*time.Minute {
		t.Fatalf("unexpected sweep interval %v", cfg.Session.SweepInterval)
	}
	if cfg.Flow.AnswerMaxLen != 4000 {
		t.Fatalf("unexpected answer max %d", cfg.Flow.AnswerMaxLen)
	}
	if cfg.Flow.PacingDelay != 500*time.Millisecond {
		t.Fatalf("unexpected pacing delay %v", cfg.Flow.PacingDelay)
	}
	if cfg.AI.SummaryTimeout != 120*time.Second {
		t.Fatalf("unexpected summary timeout %v", cfg.AI.SummaryTimeout)
	}
	if cfg.AI.Enabled() {
		t.Fatal("AI must be disabled without credentials")
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("BOT_TOKEN", "secret")
	t.Setenv("PORT", "127.0.0.1:9000")
	t.Setenv("SESSION_IDLE_TIMEOUT", "45m")
	t.Setenv("ANSWER_MAX_LEN", "2000")
	t.Setenv("ARK_API_KEY", "key")
	t.Setenv("ARK_MODEL", "doubao-pro")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load err: %v", err)
	}

	if cfg.Server.Addr != "127.0.0.1:9000" {
		t.Fatalf("unexpected addr %q", cfg.Server.Addr)
	}
	if cfg.Session.IdleTimeout != 45*time.Minute {
		t.Fatalf("unexpected idle timeout %v", cfg.Session.IdleTimeout)
	}
	if cfg.Flow.AnswerMaxLen != 2000 {
		t.Fatalf("unexpected answer max %d", cfg.Flow.AnswerMaxLen)
	}
	if !cfg.AI.Enabled() {
		t.Fatal("expected AI enabled with API key and model")
	}
}

func TestLoadRejectsInvalidDuration(t *testing.T) {
	t.Setenv("BOT_TOKEN", "secret")
	t.Setenv("SESSION_IDLE_TIMEOUT", "soon")

	if _, err := Load(); err == nil {
		t.Fatal("expected error for invalid duration")
	}
}

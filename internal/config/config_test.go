package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.App.Name != "sla-monitor" {
		t.Fatalf("unexpected app name: %s", cfg.App.Name)
	}
	if cfg.SLA.DefaultBudgetHours != 24 {
		t.Fatalf("expected 24h default budget, got %f", cfg.SLA.DefaultBudgetHours)
	}
	if cfg.SLA.SweepInterval() != 30*time.Second {
		t.Fatalf("expected 30s sweep interval, got %s", cfg.SLA.SweepInterval())
	}
	if cfg.SLA.SummaryCacheTTL() != 25*time.Second {
		t.Fatalf("expected 25s cache ttl, got %s", cfg.SLA.SummaryCacheTTL())
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SLA_DEFAULT_BUDGET_HOURS", "8.5")
	t.Setenv("SLA_SWEEP_INTERVAL_SECONDS", "60")
	t.Setenv("HTTP_REQUEST_TIMEOUT_SECONDS", "10")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.SLA.DefaultBudgetHours != 8.5 {
		t.Fatalf("expected 8.5h budget, got %f", cfg.SLA.DefaultBudgetHours)
	}
	if cfg.SLA.SweepInterval() != time.Minute {
		t.Fatalf("expected 60s sweep interval, got %s", cfg.SLA.SweepInterval())
	}
	if cfg.App.RequestTimeout() != 10*time.Second {
		t.Fatalf("expected 10s timeout, got %s", cfg.App.RequestTimeout())
	}
}

func TestLoadIgnoresMalformedNumbers(t *testing.T) {
	t.Setenv("SLA_DEFAULT_BUDGET_HOURS", "not-a-number")
	t.Setenv("SLA_SWEEP_INTERVAL_SECONDS", "soon")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.SLA.DefaultBudgetHours != 24 {
		t.Fatalf("expected fallback budget, got %f", cfg.SLA.DefaultBudgetHours)
	}
	if cfg.SLA.SweepInterval() != 30*time.Second {
		t.Fatalf("expected fallback sweep interval, got %s", cfg.SLA.SweepInterval())
	}
}

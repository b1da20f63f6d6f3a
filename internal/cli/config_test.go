package cli

import (
	"testing"
	"time"
)

func TestLoadConfig_DefaultsAndOverrides(t *testing.T) {
	cfg, err := loadConfig()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Format != "json" || cfg.ScrollInterval != 40*time.Millisecond || cfg.SettleDamping != 1 {
		t.Fatalf("unexpected defaults: %+v", cfg)
	}

	t.Setenv("HYPERCART_FORMAT", "table")
	t.Setenv("HYPERCART_SCROLL_INTERVAL", "15ms")
	t.Setenv("HYPERCART_SCROLL_STEP", "3.5")
	cfg, err = loadConfig()
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if cfg.Format != "table" || cfg.ScrollInterval != 15*time.Millisecond || cfg.ScrollStep != 3.5 {
		t.Fatalf("expected env overrides; got %+v", cfg)
	}
}

func TestLoadConfig_RejectsBadValues(t *testing.T) {
	t.Setenv("HYPERCART_SCROLL_INTERVAL", "soon")
	if _, err := loadConfig(); err == nil {
		t.Fatalf("expected parse error")
	}

	cases := []Config{
		{Format: "edn", ScrollInterval: time.Millisecond, SettleFrequency: 1},
		{Format: "json", ScrollInterval: 0, SettleFrequency: 1},
		{Format: "json", ScrollInterval: time.Millisecond, ScrollStep: -1, SettleFrequency: 1},
		{Format: "json", ScrollInterval: time.Millisecond, SettleFrequency: 0},
	}
	for i, c := range cases {
		if err := c.validate(); err == nil {
			t.Fatalf("case %d: expected validation error for %+v", i, c)
		}
	}
}

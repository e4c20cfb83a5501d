package config

import (
	"testing"
	"time"

	"tableflip.dev/scrollcal/pkg/week"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	if cfg.Capacity != week.DefaultCapacity {
		t.Fatalf("expected capacity %d, got %d", week.DefaultCapacity, cfg.Capacity)
	}
	if cfg.Batch != week.DefaultBatch {
		t.Fatalf("expected batch %d, got %d", week.DefaultBatch, cfg.Batch)
	}
	if cfg.WeekStart != time.Monday {
		t.Fatalf("expected monday week start, got %v", cfg.WeekStart)
	}
}

func TestWindowOptions(t *testing.T) {
	cfg := Config{Capacity: 32, Batch: 12, Margin: 4, WeekStart: time.Sunday}
	opts := cfg.WindowOptions()
	if opts.Capacity != 32 || opts.Batch != 12 || opts.WeekStart != time.Sunday {
		t.Fatalf("unexpected options: %+v", opts)
	}
}

func TestLoadDefaults(t *testing.T) {
	t.Setenv("SCROLLCAL_CONFIG_PATH", t.TempDir())

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Capacity != week.DefaultCapacity || cfg.Batch != week.DefaultBatch {
		t.Fatalf("expected defaults, got %+v", cfg)
	}
	if cfg.WeekStart != time.Monday {
		t.Fatalf("expected monday default, got %v", cfg.WeekStart)
	}
}

func TestLoadEnvOverrides(t *testing.T) {
	t.Setenv("SCROLLCAL_CONFIG_PATH", t.TempDir())
	t.Setenv("SCROLLCAL_CAPACITY", "32")
	t.Setenv("SCROLLCAL_WEEKSTART", "sunday")

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Capacity != 32 {
		t.Fatalf("expected capacity override 32, got %d", cfg.Capacity)
	}
	if cfg.WeekStart != time.Sunday {
		t.Fatalf("expected sunday override, got %v", cfg.WeekStart)
	}
}

func TestLoadRejectsBadWeekStart(t *testing.T) {
	t.Setenv("SCROLLCAL_CONFIG_PATH", t.TempDir())
	t.Setenv("SCROLLCAL_WEEKSTART", "someday")

	if _, err := Load(); err == nil {
		t.Fatalf("expected error for invalid weekstart")
	}
}

package config

import (
	"testing"
	"time"
)

func TestLoadDefaults(t *testing.T) {
	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.TickInterval != 55*time.Millisecond {
		t.Fatalf("tick = %v, want 55ms", cfg.TickInterval)
	}
	if cfg.SoftYears != 1 {
		t.Fatalf("soft years = %d, want 1", cfg.SoftYears)
	}
	if cfg.Muted {
		t.Fatal("should not start muted by default")
	}
	if cfg.Volume != 0.9 {
		t.Fatalf("volume = %v, want 0.9", cfg.Volume)
	}
}

func TestLoadOverrides(t *testing.T) {
	t.Setenv("GRANTMAP_TICK", "66ms")
	t.Setenv("GRANTMAP_MUTED", "true")
	t.Setenv("GRANTMAP_SOFT_YEARS", "3")

	cfg, err := Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.TickInterval != 66*time.Millisecond || !cfg.Muted || cfg.SoftYears != 3 {
		t.Fatalf("overrides not applied: %+v", cfg)
	}
}

func TestLoadRejectsOutOfRange(t *testing.T) {
	t.Setenv("GRANTMAP_TICK", "1ms")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for out-of-range tick interval")
	}
}

func TestLoadRejectsBadVolume(t *testing.T) {
	t.Setenv("GRANTMAP_VOLUME", "1.5")
	if _, err := Load(); err == nil {
		t.Fatal("expected error for out-of-range volume")
	}
}

package config

import (
	"testing"
	"time"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Port != 8000 {
			t.Fatalf("expected default port 8000, got %d", cfg.Port)
		}
		if cfg.SampleInterval != 2*time.Second {
			t.Fatalf("expected 2s sample interval, got %s", cfg.SampleInterval)
		}
		if !cfg.CameraStub {
			t.Fatal("expected camera stub enabled by default")
		}
		if cfg.Epsilon != 0.1 {
			t.Fatalf("expected default epsilon 0.1, got %f", cfg.Epsilon)
		}
	})

	t.Run("env overrides", func(t *testing.T) {
		t.Setenv("PORT", "9100")
		t.Setenv("SAMPLE_INTERVAL", "500ms")
		t.Setenv("RL_EPSILON", "0.25")
		t.Setenv("TEMPLATE_DIRS", "a, b ,")

		cfg, err := Load()
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Port != 9100 {
			t.Fatalf("expected port 9100, got %d", cfg.Port)
		}
		if cfg.SampleInterval != 500*time.Millisecond {
			t.Fatalf("expected 500ms, got %s", cfg.SampleInterval)
		}
		if cfg.Epsilon != 0.25 {
			t.Fatalf("expected epsilon 0.25, got %f", cfg.Epsilon)
		}
		if len(cfg.TemplateDirs) != 2 || cfg.TemplateDirs[0] != "a" || cfg.TemplateDirs[1] != "b" {
			t.Fatalf("expected [a b], got %v", cfg.TemplateDirs)
		}
	})

	t.Run("invalid port rejected", func(t *testing.T) {
		t.Setenv("PORT", "70000")
		if _, err := Load(); err == nil {
			t.Fatal("expected validation error")
		}
	})

	t.Run("invalid epsilon rejected", func(t *testing.T) {
		t.Setenv("RL_EPSILON", "1.5")
		if _, err := Load(); err == nil {
			t.Fatal("expected validation error")
		}
	})
}

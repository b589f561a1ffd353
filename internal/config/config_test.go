package config

import (
	"bytes"
	"flag"
	"io"
	"strings"
	"testing"
	"time"
)

func TestDefault_Valid(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default config should validate, got %v", err)
	}
}

func TestRegisterFlags_Overrides(t *testing.T) {
	cfg := Default()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	cfg.RegisterFlags(fs)
	if err := fs.Parse([]string{"-seed", "42", "-mute", "-log-level", "debug"}); err != nil {
		t.Fatalf("parse: %v", err)
	}
	if cfg.Seed != 42 || !cfg.Mute || cfg.LogLevel != "debug" {
		t.Fatalf("flags not applied: %+v", cfg)
	}
	if cfg.HoldTicks != DefaultHoldTicks {
		t.Fatalf("untouched flag changed: hold-ticks=%d", cfg.HoldTicks)
	}
}

func TestValidate_Rejects(t *testing.T) {
	bad := []struct {
		name string
		mod  func(*Config)
		want string
	}{
		{"negative scale", func(c *Config) { c.WindowScale = -1 }, "scale"},
		{"zero hold", func(c *Config) { c.HoldTicks = 0 }, "hold-ticks"},
		{"unknown level", func(c *Config) { c.LogLevel = "loud" }, "log-level"},
	}
	for _, tc := range bad {
		cfg := Default()
		tc.mod(&cfg)
		err := cfg.Validate()
		if err == nil {
			t.Errorf("%s: expected error", tc.name)
			continue
		}
		if !strings.Contains(err.Error(), tc.want) {
			t.Errorf("%s: error %q should mention %q", tc.name, err, tc.want)
		}
	}
}

func TestResolvedSeed(t *testing.T) {
	cfg := Default()
	cfg.Seed = 7
	if cfg.ResolvedSeed() != 7 {
		t.Fatalf("explicit seed should be kept")
	}
	cfg.Seed = 0
	if cfg.ResolvedSeed() == 0 {
		t.Fatalf("zero seed should be replaced")
	}
}

func TestTickDuration(t *testing.T) {
	cfg := Default()
	if got := cfg.TickDuration(); got != time.Second/60 {
		t.Fatalf("expected 1/60s, got %v", got)
	}
}

func TestRegisterFlags_NoSpeedFlag(t *testing.T) {
	cfg := Default()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	cfg.RegisterFlags(fs)
	if fs.Lookup("tps") != nil {
		t.Fatal("the tick rate is fixed and must not be a flag")
	}
	if err := fs.Parse([]string{"-tps", "120"}); err == nil {
		t.Fatal("-tps should be rejected")
	}
}

func TestLogger_RespectsLevel(t *testing.T) {
	cfg := Default()
	cfg.LogLevel = "warn"
	var buf bytes.Buffer
	l, err := cfg.Logger(&buf)
	if err != nil {
		t.Fatalf("logger: %v", err)
	}
	l.Info("hidden")
	l.Warn("shown", "wave", 2)
	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Fatalf("info line should be filtered at warn level: %q", out)
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "wave=2") {
		t.Fatalf("warn line missing: %q", out)
	}
}

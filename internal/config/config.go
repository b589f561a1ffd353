// Package config holds the runtime settings shared by the entry points.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/Garsondee/tank-battle/internal/game"
)

// Defaults.
const (
	DefaultWindowScale = 1.0
	DefaultHoldTicks   = 8
	DefaultLogLevel    = "info"
)

// Config is the runtime configuration of one process.
type Config struct {
	Seed        int64   // RNG seed; 0 picks one from the clock
	Mute        bool    // disable sound effects
	LogLevel    string  // debug, info, warn, error
	WindowScale float64 // desktop window size multiplier
	HoldTicks   int     // terminal: ticks a key counts as held after its last press
}

// Default returns the configuration used when no flags are given.
func Default() Config {
	return Config{
		LogLevel:    DefaultLogLevel,
		WindowScale: DefaultWindowScale,
		HoldTicks:   DefaultHoldTicks,
	}
}

// RegisterFlags binds the configuration fields to fs.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.Int64Var(&c.Seed, "seed", c.Seed, "RNG seed (0 = time based)")
	fs.BoolVar(&c.Mute, "mute", c.Mute, "disable sound effects")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn, error")
	fs.Float64Var(&c.WindowScale, "scale", c.WindowScale, "window size multiplier")
	fs.IntVar(&c.HoldTicks, "hold-ticks", c.HoldTicks, "terminal: ticks a key stays held after a press")
}

// Validate reports the first invalid field.
func (c Config) Validate() error {
	if c.WindowScale <= 0 {
		return fmt.Errorf("scale must be > 0, got %g", c.WindowScale)
	}
	if c.HoldTicks <= 0 {
		return errors.New("hold-ticks must be > 0")
	}
	if _, err := log.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("log-level: %w", err)
	}
	return nil
}

// ResolvedSeed returns Seed, or a clock-derived seed when Seed is 0.
func (c Config) ResolvedSeed() int64 {
	if c.Seed != 0 {
		return c.Seed
	}
	return time.Now().UnixNano()
}

// TickDuration is the wall-clock length of one tick. The rate is fixed so
// every frontend plays at the same speed.
func (c Config) TickDuration() time.Duration {
	return time.Second / game.TicksPerSecond
}

// Logger builds the structured logger writing to w at the configured level.
func (c Config) Logger(w io.Writer) (*log.Logger, error) {
	lvl, err := log.ParseLevel(c.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("log-level: %w", err)
	}
	return log.NewWithOptions(w, log.Options{
		Level:           lvl,
		Prefix:          "tanks",
		ReportTimestamp: true,
		TimeFormat:      time.TimeOnly,
	}), nil
}

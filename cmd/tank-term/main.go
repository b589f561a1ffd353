package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/Garsondee/tank-battle/internal/audio"
	"github.com/Garsondee/tank-battle/internal/config"
	"github.com/Garsondee/tank-battle/internal/game"
	"github.com/Garsondee/tank-battle/internal/term"
)

func main() {
	cfg := config.Default()
	cfg.RegisterFlags(flag.CommandLine)
	logPath := flag.String("log", filepath.Join(os.TempDir(), "tank-term.log"), "log file (the terminal is busy drawing)")
	flag.Parse()

	if err := cfg.Validate(); err != nil {
		log.Fatal("invalid flags", "err", err)
	}
	f, err := os.OpenFile(*logPath, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		log.Fatal("open log file", "path", *logPath, "err", err)
	}
	defer f.Close()
	logger, err := cfg.Logger(f)
	if err != nil {
		log.Fatal("logger", "err", err)
	}

	s, err := tcell.NewScreen()
	if err != nil {
		log.Fatal("terminal", "err", err)
	}
	if err := s.Init(); err != nil {
		log.Fatal("terminal init", "err", err)
	}

	sfx := audio.New(cfg.Mute, logger)
	if err := sfx.Init(); err != nil {
		logger.Warn("sound disabled", "err", err)
	}

	seed := cfg.ResolvedSeed()
	logger.Info("starting", "seed", seed, "hold_ticks", cfg.HoldTicks)
	g := game.New(
		game.WithSeed(seed),
		game.WithLogger(logger),
		game.WithListener(sfx),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	runErr := term.NewRunner(s, g, cfg.TickDuration(), cfg.HoldTicks, logger).Run(ctx)
	stop()
	s.Fini()
	sfx.Close()

	if failed(runErr) {
		log.Fatal("game exited", "err", runErr)
	}
	log.Info("game over", "summary", g.Outcome().Summary())
}

// failed reports whether the terminal loop stopped for a reason other than
// the interrupt signal.
func failed(err error) bool {
	return err != nil && !errors.Is(err, context.Canceled)
}

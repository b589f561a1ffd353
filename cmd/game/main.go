package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/tank-battle/internal/audio"
	"github.com/Garsondee/tank-battle/internal/config"
	"github.com/Garsondee/tank-battle/internal/game"
	"github.com/Garsondee/tank-battle/internal/screen"
)

// playFunc runs the ebiten game loop until the window closes.
type playFunc func(g ebiten.Game, scale float64) error

func main() {
	os.Exit(run(os.Args[1:], os.Stderr, playWindow))
}

func playWindow(g ebiten.Game, scale float64) error {
	ebiten.SetWindowTitle("Tank Battle")
	ebiten.SetWindowSize(int(game.ArenaWidth*scale), int(game.ArenaHeight*scale))
	ebiten.SetTPS(game.TicksPerSecond)
	ebiten.SetWindowClosingHandled(true)
	return ebiten.RunGame(g)
}

// run plays one desktop session and returns the process exit code. It never
// exits itself, so deferred cleanup of the audio device always happens.
func run(args []string, stderr io.Writer, play playFunc) int {
	cfg := config.Default()
	fs := flag.NewFlagSet("game", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfg.RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		return 2
	}

	if err := cfg.Validate(); err != nil {
		fmt.Fprintln(stderr, "invalid flags:", err)
		return 2
	}
	logger, err := cfg.Logger(stderr)
	if err != nil {
		fmt.Fprintln(stderr, "logger:", err)
		return 2
	}

	sfx := audio.New(cfg.Mute, logger)
	if err := sfx.Init(); err != nil {
		logger.Warn("sound disabled", "err", err)
	}
	defer sfx.Close()

	seed := cfg.ResolvedSeed()
	logger.Info("starting", "seed", seed)
	g := game.New(
		game.WithSeed(seed),
		game.WithLogger(logger),
		game.WithListener(sfx),
	)

	if err := play(screen.New(g, logger), cfg.WindowScale); err != nil {
		logger.Error("game exited", "err", err)
		return 1
	}
	logger.Info("bye", "result", g.Outcome().Result(), "score", g.Outcome().Score)
	return 0
}

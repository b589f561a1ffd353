// Package term is the terminal frontend: it runs a game.Game on a tcell
// screen at a fixed tick rate.
package term

import (
	"context"
	"errors"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gdamore/tcell/v2"

	"github.com/Garsondee/tank-battle/internal/game"
)

// Runner owns the frame loop.
type Runner struct {
	screen tcell.Screen
	game   *game.Game
	canvas *Canvas
	input  *Input
	tick   time.Duration
	log    *log.Logger
}

// NewRunner wires g to an initialised screen. logger may be nil.
func NewRunner(s tcell.Screen, g *game.Game, tick time.Duration, holdTicks int, logger *log.Logger) *Runner {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Runner{
		screen: s,
		game:   g,
		canvas: NewCanvas(s),
		input:  NewInput(holdTicks),
		tick:   tick,
		log:    logger,
	}
}

// Run drives the game until the player quits or ctx is cancelled. It returns
// nil on a normal quit.
func (r *Runner) Run(ctx context.Context) error {
	done := make(chan struct{})
	defer close(done)

	events := make(chan tcell.Event, 64)
	go func() {
		for {
			ev := r.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-done:
				return
			}
		}
	}()

	ticker := time.NewTicker(r.tick)
	defer ticker.Stop()

	r.draw()
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev := <-events:
			r.handle(ev)
		case <-ticker.C:
			if err := r.Frame(); err != nil {
				if errors.Is(err, game.ErrQuit) {
					r.log.Info("quit requested", "state", r.game.State())
					return nil
				}
				return err
			}
		}
	}
}

func (r *Runner) handle(ev tcell.Event) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		r.input.HandleKey(ev)
	case *tcell.EventResize:
		r.canvas.Resize()
		r.screen.Sync()
		r.log.Debug("terminal resized", "cols", r.canvas.cols, "rows", r.canvas.rows)
	}
}

// Frame runs one tick and redraws.
func (r *Runner) Frame() error {
	if err := r.game.Update(r.input.Next()); err != nil {
		return err
	}
	r.draw()
	return nil
}

func (r *Runner) draw() {
	r.game.Draw(r.canvas, "Press Q to quit")
	r.canvas.Present()
}

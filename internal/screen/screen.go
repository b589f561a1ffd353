// Package screen is the desktop frontend: it adapts a game.Game to
// ebiten.Game, drawing with the vector and text packages.
package screen

import (
	"errors"
	"io"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/tank-battle/internal/game"
)

const (
	hintCopy   = "Press C to copy result"
	hintCopied = "Result copied to clipboard"
	hintNoCopy = "Clipboard unavailable"
)

// Screen implements ebiten.Game.
type Screen struct {
	game   *game.Game
	log    *log.Logger
	keys   *keyboard
	canvas *canvas
	feed   *game.Feed

	showFeed bool

	// copyText writes the clipboard; swapped out in tests.
	copyText func(string) error
	// hint is the end-screen hint line, reset whenever a new session ends.
	hint string
}

// New wraps g. logger may be nil.
func New(g *game.Game, logger *log.Logger) *Screen {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	s := &Screen{
		game:     g,
		log:      logger,
		keys:     newKeyboard(),
		canvas:   newCanvas(),
		feed:     game.NewFeed(),
		copyText: clipboard.WriteAll,
		hint:     hintCopy,
	}
	g.Subscribe(s.feed)
	return s
}

// Update advances one frame. Quitting surfaces as ebiten.Termination so
// RunGame returns nil.
func (s *Screen) Update() error {
	return s.step(ebiten.IsKeyPressed, ebiten.IsWindowBeingClosed())
}

func (s *Screen) step(pressed func(ebiten.Key) bool, closing bool) error {
	copyPressed := s.keys.justPressed(pressed, ebiten.KeyC)
	if s.keys.justPressed(pressed, ebiten.KeyTab) {
		s.showFeed = !s.showFeed
	}
	in := s.keys.read(pressed, closing)

	before := s.game.State()
	if copyPressed && before.Finished() {
		s.copyOutcome()
	}
	if err := s.game.Update(in); err != nil {
		if errors.Is(err, game.ErrQuit) {
			s.log.Info("quit requested", "state", s.game.State())
			return ebiten.Termination
		}
		return err
	}
	if after := s.game.State(); after != before && after.Finished() {
		s.hint = hintCopy
	}
	return nil
}

func (s *Screen) copyOutcome() {
	summary := s.game.Outcome().Summary()
	if err := s.copyText(summary); err != nil {
		s.log.Warn("clipboard write failed", "err", err)
		s.hint = hintNoCopy
		return
	}
	s.log.Debug("result copied", "summary", summary)
	s.hint = hintCopied
}

// Draw renders the current frame.
func (s *Screen) Draw(dst *ebiten.Image) {
	s.canvas.dst = dst
	s.game.Draw(s.canvas, s.hint)
	if s.showFeed && s.game.State() == game.StatePlaying {
		s.feed.Draw(s.canvas)
	}
}

// Layout fixes the logical screen to the arena size; ebiten scales it to the
// window.
func (s *Screen) Layout(_, _ int) (int, int) {
	return game.ArenaWidth, game.ArenaHeight
}

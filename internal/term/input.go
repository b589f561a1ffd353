package term

import (
	"github.com/gdamore/tcell/v2"

	"github.com/Garsondee/tank-battle/internal/game"
)

type control int

const (
	ctrlUp control = iota
	ctrlDown
	ctrlLeft
	ctrlRight
	ctrlFire
	numControls
)

// Input rebuilds held-key state from a terminal, which only reports presses
// and auto-repeats. A control counts as held for hold ticks after its most
// recent press.
type Input struct {
	hold    int
	tick    int
	last    [numControls]int
	pressed []game.Key
}

// NewInput creates an Input that holds each press for hold ticks.
func NewInput(hold int) *Input {
	in := &Input{hold: max(hold, 1)}
	for i := range in.last {
		in.last[i] = -in.hold - 1
	}
	return in
}

// HandleKey records one key event.
func (in *Input) HandleKey(ev *tcell.EventKey) {
	switch ev.Key() {
	case tcell.KeyUp:
		in.press(ctrlUp)
	case tcell.KeyDown:
		in.press(ctrlDown)
	case tcell.KeyLeft:
		in.press(ctrlLeft)
	case tcell.KeyRight:
		in.press(ctrlRight)
	case tcell.KeyEnter:
		in.pressed = append(in.pressed, game.KeyConfirm)
	case tcell.KeyEscape:
		in.pressed = append(in.pressed, game.KeyCancel)
	case tcell.KeyCtrlC:
		in.pressed = append(in.pressed, game.KeyQuit)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'W':
			in.press(ctrlUp)
		case 's', 'S':
			in.press(ctrlDown)
		case 'a', 'A':
			in.press(ctrlLeft)
		case 'd', 'D':
			in.press(ctrlRight)
		case ' ':
			in.press(ctrlFire)
		case 'q', 'Q':
			in.pressed = append(in.pressed, game.KeyQuit)
		}
	}
}

func (in *Input) press(c control) {
	// Opposite directions cancel so a reversal takes effect at once.
	switch c {
	case ctrlUp:
		in.last[ctrlDown] = -in.hold - 1
	case ctrlDown:
		in.last[ctrlUp] = -in.hold - 1
	case ctrlLeft:
		in.last[ctrlRight] = -in.hold - 1
	case ctrlRight:
		in.last[ctrlLeft] = -in.hold - 1
	}
	in.last[c] = in.tick
}

func (in *Input) held(c control) bool {
	return in.tick-in.last[c] < in.hold
}

// Next returns the input for the current tick, then advances the tick and
// clears the menu keys.
func (in *Input) Next() game.Input {
	out := game.Input{
		Held: game.Controls{
			Up:    in.held(ctrlUp),
			Down:  in.held(ctrlDown),
			Left:  in.held(ctrlLeft),
			Right: in.held(ctrlRight),
			Fire:  in.held(ctrlFire),
		},
		Pressed: in.pressed,
	}
	in.pressed = nil
	in.tick++
	return out
}

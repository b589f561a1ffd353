package screen

import (
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/Garsondee/tank-battle/internal/game"
)

// keyboard turns raw key state into a game.Input. Movement and fire are
// level-triggered; menu keys fire once per press.
type keyboard struct {
	prevKeys map[ebiten.Key]bool
}

func newKeyboard() *keyboard {
	return &keyboard{prevKeys: make(map[ebiten.Key]bool)}
}

var menuKeys = []struct {
	key ebiten.Key
	act game.Key
}{
	{ebiten.KeyEnter, game.KeyConfirm},
	{ebiten.KeyNumpadEnter, game.KeyConfirm},
	{ebiten.KeyEscape, game.KeyCancel},
}

// read samples the keyboard through pressed (ebiten.IsKeyPressed in
// production). closing reports a window close request.
func (k *keyboard) read(pressed func(ebiten.Key) bool, closing bool) game.Input {
	in := game.Input{
		Held: game.Controls{
			Up:    pressed(ebiten.KeyArrowUp) || pressed(ebiten.KeyW),
			Down:  pressed(ebiten.KeyArrowDown) || pressed(ebiten.KeyS),
			Left:  pressed(ebiten.KeyArrowLeft) || pressed(ebiten.KeyA),
			Right: pressed(ebiten.KeyArrowRight) || pressed(ebiten.KeyD),
			Fire:  pressed(ebiten.KeySpace),
		},
	}
	for _, m := range menuKeys {
		if k.justPressed(pressed, m.key) {
			in.Pressed = append(in.Pressed, m.act)
		}
	}
	if closing {
		in.Pressed = append(in.Pressed, game.KeyQuit)
	}
	return in
}

// justPressed is the edge detector for one key. It must be called exactly
// once per key per frame.
func (k *keyboard) justPressed(pressed func(ebiten.Key) bool, key ebiten.Key) bool {
	now := pressed(key)
	was := k.prevKeys[key]
	k.prevKeys[key] = now
	return now && !was
}

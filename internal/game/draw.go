package game

import (
	"fmt"
	"image/color"
)

// TextSize selects one of the two font sizes a frontend provides.
type TextSize int

const (
	TextNormal TextSize = iota
	TextLarge
)

// Align is the horizontal anchor of a text draw.
type Align int

const (
	AlignLeft   Align = iota // x is the left edge, y the top
	AlignCenter              // (x, y) is the centre of the text
)

// Renderer is the drawing surface a frontend hands to Draw once per frame.
// Coordinates are arena units; presenting the finished frame is up to the
// frontend.
type Renderer interface {
	Clear(c color.Color)
	FillRect(x, y, w, h float64, c color.Color)
	StrokeRect(x, y, w, h, width float64, c color.Color)
	Line(x1, y1, x2, y2, width float64, c color.Color)
	Circle(cx, cy, r float64, c color.Color)
	Text(s string, x, y float64, size TextSize, align Align, c color.Color)
}

// Palette.
var (
	colorBlack     = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	colorWhite     = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colorGreen     = color.RGBA{R: 0, G: 128, B: 0, A: 255}
	colorRed       = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	colorGray      = color.RGBA{R: 128, G: 128, B: 128, A: 255}
	colorYellow    = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	colorDarkGreen = color.RGBA{R: 0, G: 64, B: 0, A: 255}
)

const (
	barrelLength = halfTank + 5
	barrelWidth  = 5
	pipRadius    = 4
	pipSpacing   = 12
)

// menuControls is the help block on the title screen.
var menuControls = []string{
	"Controls:",
	"Arrow Keys / WASD - Move",
	"SPACE - Shoot",
	"ESC - Quit",
}

// Draw renders the current state. hints are extra end-screen lines supplied
// by the frontend, drawn below the quit hint.
func (g *Game) Draw(r Renderer, hints ...string) {
	switch g.state {
	case StateMenu:
		drawMenu(r)
	case StatePlaying:
		drawPlaying(r, g.world)
	case StateGameOver, StateVictory:
		drawOutcome(r, g.state, g.world.Score, hints)
	}
}

func drawMenu(r Renderer) {
	r.Clear(colorDarkGreen)
	r.Text("TANK BATTLE", ArenaWidth/2, 150, TextLarge, AlignCenter, colorWhite)
	r.Text("Press ENTER to Start", ArenaWidth/2, 300, TextNormal, AlignCenter, colorWhite)
	y := 400.0
	for _, line := range menuControls {
		r.Text(line, ArenaWidth/2, y, TextNormal, AlignCenter, colorWhite)
		y += 40
	}
}

func drawPlaying(r Renderer, w *World) {
	r.Clear(colorBlack)
	for _, o := range w.Obstacles {
		o.Draw(r)
	}
	w.Player.Draw(r)
	for _, e := range w.Enemies {
		e.Draw(r)
	}
	for _, b := range w.Bullets {
		b.Draw(r)
	}

	r.Text(fmt.Sprintf("Score: %d", w.Score), 10, 10, TextNormal, AlignLeft, colorWhite)
	r.Text(fmt.Sprintf("Wave: %d", w.Wave), 10, 50, TextNormal, AlignLeft, colorWhite)
	r.Text(fmt.Sprintf("Enemies: %d", len(w.Enemies)), ArenaWidth-200, 10, TextNormal, AlignLeft, colorWhite)
}

func drawOutcome(r Renderer, s State, score int, hints []string) {
	r.Clear(colorBlack)
	if s == StateGameOver {
		r.Text("GAME OVER", ArenaWidth/2, 200, TextLarge, AlignCenter, colorRed)
	} else {
		r.Text("VICTORY!", ArenaWidth/2, 200, TextLarge, AlignCenter, colorGreen)
	}
	r.Text(fmt.Sprintf("Final Score: %d", score), ArenaWidth/2, 300, TextNormal, AlignCenter, colorWhite)
	r.Text("Press ENTER to Play Again", ArenaWidth/2, 400, TextNormal, AlignCenter, colorWhite)
	r.Text("Press ESC to Quit", ArenaWidth/2, 450, TextNormal, AlignCenter, colorWhite)
	y := 500.0
	for _, h := range hints {
		r.Text(h, ArenaWidth/2, y, TextNormal, AlignCenter, colorGray)
		y += 40
	}
}

// Draw renders the tank body, its barrel and, for the living player, one pip
// per remaining health point.
func (t *Tank) Draw(r Renderer) {
	c := colorRed
	if t.Kind == KindPlayer {
		c = colorGreen
	}
	body := t.footprint()
	r.FillRect(body.x, body.y, body.w, body.h, c)

	hx, hy := t.Facing.Heading()
	r.Line(t.X, t.Y, t.X+barrelLength*hx, t.Y+barrelLength*hy, barrelWidth, c)

	if t.Kind == KindPlayer && t.Alive() {
		for i := 0; i < t.Health; i++ {
			r.Circle(t.X-halfTank+8+float64(i*pipSpacing), t.Y-halfTank-10, pipRadius, colorGreen)
		}
	}
}

// Draw renders an active bullet; inactive bullets are invisible.
func (b *Bullet) Draw(r Renderer) {
	if !b.Active {
		return
	}
	c := colorRed
	if b.Owner == KindPlayer {
		c = colorYellow
	}
	r.Circle(b.X, b.Y, bulletRadius, c)
}

// Draw renders the obstacle with a dark outline.
func (o Obstacle) Draw(r Renderer) {
	r.FillRect(o.r.x, o.r.y, o.r.w, o.r.h, colorGray)
	r.StrokeRect(o.r.x, o.r.y, o.r.w, o.r.h, 2, colorBlack)
}

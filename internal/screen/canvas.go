package screen

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"

	"github.com/Garsondee/tank-battle/internal/game"
)

// Text scale factors applied to the 7x13 bitmap face. They approximate 36px
// and 72px fonts.
const (
	normalTextScale = 2
	largeTextScale  = 4
)

// canvas implements game.Renderer on top of an ebiten image.
type canvas struct {
	dst  *ebiten.Image
	face text.Face
}

func newCanvas() *canvas {
	return &canvas{face: text.NewGoXFace(basicfont.Face7x13)}
}

func (c *canvas) Clear(col color.Color) {
	c.dst.Fill(col)
}

func (c *canvas) FillRect(x, y, w, h float64, col color.Color) {
	vector.FillRect(c.dst, float32(x), float32(y), float32(w), float32(h), col, false)
}

func (c *canvas) StrokeRect(x, y, w, h, width float64, col color.Color) {
	vector.StrokeRect(c.dst, float32(x), float32(y), float32(w), float32(h), float32(width), col, false)
}

func (c *canvas) Line(x1, y1, x2, y2, width float64, col color.Color) {
	vector.StrokeLine(c.dst, float32(x1), float32(y1), float32(x2), float32(y2), float32(width), col, true)
}

func (c *canvas) Circle(cx, cy, r float64, col color.Color) {
	vector.FillCircle(c.dst, float32(cx), float32(cy), float32(r), col, true)
}

func (c *canvas) Text(s string, x, y float64, size game.TextSize, align game.Align, col color.Color) {
	scale := float64(normalTextScale)
	if size == game.TextLarge {
		scale = largeTextScale
	}
	op := &text.DrawOptions{}
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(col)
	if align == game.AlignCenter {
		op.PrimaryAlign = text.AlignCenter
		op.SecondaryAlign = text.AlignCenter
	}
	text.Draw(c.dst, s, c.face, op)
}

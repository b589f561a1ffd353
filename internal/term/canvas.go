package term

import (
	"image/color"
	"math"

	"github.com/gdamore/tcell/v2"

	"github.com/Garsondee/tank-battle/internal/game"
)

// Canvas implements game.Renderer on a tcell screen by mapping the arena onto
// the cell grid. Fills paint cell backgrounds; lines, circles and text paint
// glyphs over whatever background is already there.
type Canvas struct {
	screen     tcell.Screen
	cols, rows int
}

// NewCanvas sizes a canvas to s.
func NewCanvas(s tcell.Screen) *Canvas {
	c := &Canvas{screen: s}
	c.Resize()
	return c
}

// Resize picks up the current terminal size.
func (c *Canvas) Resize() {
	c.cols, c.rows = c.screen.Size()
}

// Cell maps an arena point to its cell.
func (c *Canvas) Cell(x, y float64) (col, row int) {
	col = int(math.Floor(x * float64(c.cols) / game.ArenaWidth))
	row = int(math.Floor(y * float64(c.rows) / game.ArenaHeight))
	return col, row
}

func (c *Canvas) inside(col, row int) bool {
	return col >= 0 && col < c.cols && row >= 0 && row < c.rows
}

// paint sets the background of one cell, keeping nothing of the old content.
func (c *Canvas) paint(col, row int, bg color.Color) {
	if !c.inside(col, row) {
		return
	}
	c.screen.SetContent(col, row, ' ', nil, tcell.StyleDefault.Background(tcell.FromImageColor(bg)))
}

// glyph draws r in fg over the cell's existing background.
func (c *Canvas) glyph(col, row int, r rune, fg color.Color, bold bool) {
	if !c.inside(col, row) {
		return
	}
	_, _, old, _ := c.screen.GetContent(col, row)
	_, bg, _ := old.Decompose()
	st := tcell.StyleDefault.Background(bg).Foreground(tcell.FromImageColor(fg)).Bold(bold)
	c.screen.SetContent(col, row, r, nil, st)
}

func (c *Canvas) Clear(col color.Color) {
	for row := 0; row < c.rows; row++ {
		for x := 0; x < c.cols; x++ {
			c.paint(x, row, col)
		}
	}
}

// FillRect paints every cell the rectangle touches, at least one.
func (c *Canvas) FillRect(x, y, w, h float64, col color.Color) {
	c0, r0 := c.Cell(x, y)
	c1, r1 := c.Cell(x+w, y+h)
	c1 = max(c1, c0+1)
	r1 = max(r1, r0+1)
	for row := r0; row < r1; row++ {
		for cl := c0; cl < c1; cl++ {
			c.paint(cl, row, col)
		}
	}
}

// StrokeRect is a no-op: outlines are thinner than a cell.
func (c *Canvas) StrokeRect(_, _, _, _, _ float64, _ color.Color) {}

// Line draws the far end of a segment as a glyph pointing along it. At cell
// resolution a tank barrel is one character.
func (c *Canvas) Line(x1, y1, x2, y2, _ float64, col color.Color) {
	r := '|'
	if math.Abs(x2-x1) > math.Abs(y2-y1) {
		r = '-'
	}
	cl, row := c.Cell(x2, y2)
	c.glyph(cl, row, r, col, true)
}

func (c *Canvas) Circle(cx, cy, _ float64, col color.Color) {
	cl, row := c.Cell(cx, cy)
	c.glyph(cl, row, '●', col, false)
}

// Text writes s on the row holding y. Large text is drawn bold.
func (c *Canvas) Text(s string, x, y float64, size game.TextSize, align game.Align, col color.Color) {
	cl, row := c.Cell(x, y)
	runes := []rune(s)
	if align == game.AlignCenter {
		cl -= len(runes) / 2
	}
	for i, r := range runes {
		c.glyph(cl+i, row, r, col, size == game.TextLarge)
	}
}

// Present flushes the frame to the terminal.
func (c *Canvas) Present() {
	c.screen.Show()
}

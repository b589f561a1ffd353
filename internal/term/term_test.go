package term

import (
	"context"
	"image/color"
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"

	"github.com/Garsondee/tank-battle/internal/game"
)

func newScreen(t *testing.T, cols, rows int) tcell.SimulationScreen {
	t.Helper()
	s := tcell.NewSimulationScreen("UTF-8")
	if err := s.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	s.SetSize(cols, rows)
	t.Cleanup(s.Fini)
	return s
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func runeKey(r rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone)
}

func TestInput_PressIsHeldForHoldTicks(t *testing.T) {
	in := NewInput(3)
	in.HandleKey(key(tcell.KeyUp))
	for i := 0; i < 3; i++ {
		if !in.Next().Held.Up {
			t.Fatalf("tick %d: up should still be held", i)
		}
	}
	if in.Next().Held.Up {
		t.Fatal("up should be released after the hold window")
	}
}

func TestInput_RepeatExtendsHold(t *testing.T) {
	in := NewInput(2)
	in.HandleKey(runeKey(' '))
	in.Next()
	in.HandleKey(runeKey(' '))
	in.Next()
	if !in.Next().Held.Fire {
		t.Fatal("auto-repeat should keep fire held")
	}
}

func TestInput_ReversalCancelsOpposite(t *testing.T) {
	in := NewInput(5)
	in.HandleKey(runeKey('a'))
	in.Next()
	in.HandleKey(runeKey('d'))
	got := in.Next().Held
	if got.Left || !got.Right {
		t.Fatalf("expected right only, got %+v", got)
	}
}

func TestInput_MenuKeysLastOneTick(t *testing.T) {
	in := NewInput(5)
	in.HandleKey(key(tcell.KeyEnter))
	in.HandleKey(runeKey('q'))
	got := in.Next().Pressed
	if len(got) != 2 || got[0] != game.KeyConfirm || got[1] != game.KeyQuit {
		t.Fatalf("expected [confirm quit], got %v", got)
	}
	if p := in.Next().Pressed; len(p) != 0 {
		t.Fatalf("menu keys should clear after one tick, got %v", p)
	}
}

func TestCanvas_CellMapping(t *testing.T) {
	c := NewCanvas(newScreen(t, 80, 30))
	cases := []struct {
		x, y     float64
		col, row int
	}{
		{0, 0, 0, 0},
		{400, 300, 40, 15},
		{799, 599, 79, 29},
	}
	for _, tc := range cases {
		col, row := c.Cell(tc.x, tc.y)
		if col != tc.col || row != tc.row {
			t.Errorf("(%v,%v): expected (%d,%d), got (%d,%d)", tc.x, tc.y, tc.col, tc.row, col, row)
		}
	}
}

func TestCanvas_FillRectCoversAtLeastOneCell(t *testing.T) {
	s := newScreen(t, 80, 30)
	c := NewCanvas(s)
	c.Clear(color.Black)
	red := color.RGBA{R: 255, A: 255}
	c.FillRect(400, 300, 1, 1, red)

	_, _, st, _ := s.GetContent(40, 15)
	_, bg, _ := st.Decompose()
	if bg != tcell.FromImageColor(red) {
		t.Fatalf("expected red background, got %v", bg)
	}
}

func TestCanvas_TextKeepsBackground(t *testing.T) {
	s := newScreen(t, 80, 30)
	c := NewCanvas(s)
	green := color.RGBA{G: 64, A: 255}
	c.Clear(green)
	c.Text("AB", 400, 300, game.TextNormal, game.AlignCenter, color.White)

	r, _, st, _ := s.GetContent(39, 15)
	_, bg, _ := st.Decompose()
	if r != 'A' {
		t.Fatalf("expected centred text to start at col 39, got %q", r)
	}
	if bg != tcell.FromImageColor(green) {
		t.Fatalf("text should keep the cleared background, got %v", bg)
	}
}

// screenText returns the characters of one row.
func screenText(s tcell.SimulationScreen, row int) string {
	cols, _ := s.Size()
	out := make([]rune, 0, cols)
	for col := 0; col < cols; col++ {
		r, _, _, _ := s.GetContent(col, row)
		out = append(out, r)
	}
	return string(out)
}

func TestRunner_DrawsMenuAndStarts(t *testing.T) {
	s := newScreen(t, 80, 30)
	g := game.New(game.WithSeed(1))
	r := NewRunner(s, g, time.Millisecond, 4, nil)

	if err := r.Frame(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	found := false
	for row := 0; row < 30; row++ {
		if strings.Contains(screenText(s, row), "TANK BATTLE") {
			found = true
		}
	}
	if !found {
		t.Fatal("menu title not drawn")
	}

	r.handle(key(tcell.KeyEnter))
	if err := r.Frame(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if g.State() != game.StatePlaying {
		t.Fatalf("expected playing, got %s", g.State())
	}
}

func TestRunner_QuitEndsRun(t *testing.T) {
	s := newScreen(t, 80, 30)
	r := NewRunner(s, game.New(game.WithSeed(1)), time.Millisecond, 4, nil)

	if err := s.PostEvent(runeKey('q')); err != nil {
		t.Fatalf("post event: %v", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	if err := r.Run(ctx); err != nil {
		t.Fatalf("expected clean quit, got %v", err)
	}
}

func TestRunner_ContextCancelStops(t *testing.T) {
	s := newScreen(t, 80, 30)
	r := NewRunner(s, game.New(game.WithSeed(1)), time.Millisecond, 4, nil)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if err := r.Run(ctx); err != context.Canceled {
		t.Fatalf("expected context.Canceled, got %v", err)
	}
}

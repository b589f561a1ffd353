package game

import "math"

const (
	aimTolerance = 6.0 // arena units off-axis still counted as lined up
	detourTicks  = 20
)

// Autopilot plays the player tank for headless runs: it lines up with the
// nearest enemy on one axis, turns towards it and fires. When a move makes no
// progress it sidesteps for a short while.
type Autopilot struct {
	lastX, lastY float64
	moving       bool // previous tick asked for movement
	detour       Direction
	detourLeft   int
}

// Controls decides the held controls for the next tick.
func (a *Autopilot) Controls(w *World) Controls {
	p := w.Player
	target := nearestEnemy(w)
	if target == nil {
		return Controls{}
	}
	defer func() { a.lastX, a.lastY = p.X, p.Y }()

	if a.detourLeft > 0 {
		a.detourLeft--
		return press(a.detour, false)
	}

	dx := target.X - p.X
	dy := target.Y - p.Y

	var want Direction
	switch {
	case math.Abs(dx) <= aimTolerance:
		want = DirDown
		if dy < 0 {
			want = DirUp
		}
	case math.Abs(dy) <= aimTolerance:
		want = DirRight
		if dx < 0 {
			want = DirLeft
		}
	default:
		// Close the shorter gap to line up faster.
		if math.Abs(dx) < math.Abs(dy) {
			want = DirRight
			if dx < 0 {
				want = DirLeft
			}
		} else {
			want = DirDown
			if dy < 0 {
				want = DirUp
			}
		}
		if a.moving && p.X == a.lastX && p.Y == a.lastY {
			a.detour = perpendicular(want)
			a.detourLeft = detourTicks
			a.moving = false
			return press(a.detour, false)
		}
		a.moving = true
		return press(want, false)
	}

	if p.Facing != want {
		a.moving = true
		return press(want, false)
	}
	a.moving = false
	return Controls{Fire: true}
}

func nearestEnemy(w *World) *Tank {
	var best *Tank
	bestDist := math.MaxFloat64
	for _, e := range w.Enemies {
		if d := Distance(w.Player.X, w.Player.Y, e.X, e.Y); d < bestDist {
			best, bestDist = e, d
		}
	}
	return best
}

func perpendicular(d Direction) Direction {
	return directions[(int(d)+1)%len(directions)]
}

func press(d Direction, fire bool) Controls {
	c := Controls{Fire: fire}
	switch d {
	case DirUp:
		c.Up = true
	case DirRight:
		c.Right = true
	case DirDown:
		c.Down = true
	case DirLeft:
		c.Left = true
	}
	return c
}

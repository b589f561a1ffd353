package game

// Controls is the level-triggered snapshot of held controls for one tick.
type Controls struct {
	Up, Down, Left, Right bool
	Fire                  bool
}

// Axis converts the held movement controls into a (dx, dy) intent. When both
// keys on an axis are held, right and down win.
func (c Controls) Axis() (dx, dy float64) {
	if c.Left {
		dx = -1
	}
	if c.Right {
		dx = 1
	}
	if c.Up {
		dy = -1
	}
	if c.Down {
		dy = 1
	}
	return dx, dy
}

// Key is an edge-triggered menu key.
type Key int

const (
	KeyConfirm Key = iota // Enter
	KeyCancel             // Escape
	KeyQuit               // window close
)

func (k Key) String() string {
	switch k {
	case KeyConfirm:
		return "confirm"
	case KeyCancel:
		return "cancel"
	case KeyQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Input is everything a frontend reports for one tick.
type Input struct {
	Held    Controls
	Pressed []Key
}

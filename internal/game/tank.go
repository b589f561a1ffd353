package game

const (
	ArenaWidth  = 800
	ArenaHeight = 600

	tankSize    = 30
	halfTank    = tankSize / 2
	playerSpeed = 3.0
	enemySpeed  = 1.5
	reloadTicks = 30 // frames between shots

	playerHealth = 3
	enemyHealth  = 1
)

// Kind distinguishes the player from AI-controlled enemies.
type Kind int

const (
	KindPlayer Kind = iota
	KindEnemy
)

func (k Kind) String() string {
	switch k {
	case KindPlayer:
		return "player"
	case KindEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}

// Tank is a square vehicle that moves on the four cardinal axes and fires
// along its facing.
type Tank struct {
	X, Y   float64
	Facing Direction
	Kind   Kind
	Speed  float64
	Reload int // ticks until the next shot is allowed
	Health int
}

// NewPlayer creates the player tank at (x, y) facing up.
func NewPlayer(x, y float64) *Tank {
	return &Tank{X: x, Y: y, Facing: DirUp, Kind: KindPlayer, Speed: playerSpeed, Health: playerHealth}
}

// NewEnemy creates an enemy tank at (x, y) with the given facing.
func NewEnemy(x, y float64, facing Direction) *Tank {
	return &Tank{X: x, Y: y, Facing: facing, Kind: KindEnemy, Speed: enemySpeed, Health: enemyHealth}
}

// Alive reports whether the tank still has health left.
func (t *Tank) Alive() bool {
	return t.Health > 0
}

// Move displaces the tank by (dx, dy) scaled by its speed. Each axis is
// checked against the arena bounds on its own: an axis that would leave the
// arena is left unchanged while the other may still move.
func (t *Tank) Move(dx, dy float64) {
	nx := t.X + dx*t.Speed
	ny := t.Y + dy*t.Speed
	if nx >= halfTank && nx <= ArenaWidth-halfTank {
		t.X = nx
	}
	if ny >= halfTank && ny <= ArenaHeight-halfTank {
		t.Y = ny
	}
}

// UpdateDirection faces the tank along the requested delta. Horizontal input
// wins over vertical; a zero delta keeps the current facing.
func (t *Tank) UpdateDirection(dx, dy float64) {
	switch {
	case dx > 0:
		t.Facing = DirRight
	case dx < 0:
		t.Facing = DirLeft
	case dy > 0:
		t.Facing = DirDown
	case dy < 0:
		t.Facing = DirUp
	}
}

// CanShoot reports whether the tank may fire now. A successful call starts a
// new reload countdown; a failed call has no side effect.
func (t *Tank) CanShoot() bool {
	if t.Reload <= 0 {
		t.Reload = reloadTicks
		return true
	}
	return false
}

// Tick advances the reload countdown by one frame.
func (t *Tank) Tick() {
	if t.Reload > 0 {
		t.Reload--
	}
}

// footprint is the tank's collision square.
func (t *Tank) footprint() rect {
	return squareAt(t.X, t.Y, tankSize)
}

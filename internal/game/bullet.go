package game

const (
	bulletSpeed  = 8.0
	bulletRadius = 5.0
)

// Bullet travels in a straight cardinal line until it leaves the arena or
// hits something.
type Bullet struct {
	X, Y   float64
	Dir    Direction
	Owner  Kind
	Active bool
}

// NewBullet creates an active bullet at (x, y).
func NewBullet(x, y float64, dir Direction, owner Kind) *Bullet {
	return &Bullet{X: x, Y: y, Dir: dir, Owner: owner, Active: true}
}

// Tick advances the bullet one frame and deactivates it once it is outside
// the arena.
func (b *Bullet) Tick() {
	hx, hy := b.Dir.Heading()
	b.X += bulletSpeed * hx
	b.Y += bulletSpeed * hy
	if b.X < 0 || b.X > ArenaWidth || b.Y < 0 || b.Y > ArenaHeight {
		b.Active = false
	}
}

// CheckCollision reports whether an active bullet is within hit range of the
// tank centre. A hit deactivates the bullet.
func (b *Bullet) CheckCollision(t *Tank) bool {
	if !b.Active {
		return false
	}
	if Distance(b.X, b.Y, t.X, t.Y) < halfTank+bulletRadius {
		b.Active = false
		return true
	}
	return false
}

package game

// Obstacle is a static wall block. It is never mutated after the arena is
// built.
type Obstacle struct {
	r rect
}

// NewObstacle creates an obstacle with its top-left corner at (x, y).
func NewObstacle(x, y, w, h float64) Obstacle {
	return Obstacle{r: rect{x: x, y: y, w: w, h: h}}
}

// Bounds returns the obstacle rectangle as (x, y, w, h).
func (o Obstacle) Bounds() (x, y, w, h float64) {
	return o.r.x, o.r.y, o.r.w, o.r.h
}

// CheckCollision reports whether a square of side size centred on (x, y)
// overlaps the obstacle.
func (o Obstacle) CheckCollision(x, y, size float64) bool {
	return o.r.overlaps(squareAt(x, y, size))
}

// ContainsPoint reports whether (x, y) lies inside the obstacle.
func (o Obstacle) ContainsPoint(x, y float64) bool {
	return o.r.contains(x, y)
}

// DefaultObstacles returns the standard arena layout: two bars at the top, one
// in the middle and two pillars near the bottom.
func DefaultObstacles() []Obstacle {
	return []Obstacle{
		NewObstacle(150, 200, 100, 30),
		NewObstacle(550, 200, 100, 30),
		NewObstacle(350, 300, 100, 30),
		NewObstacle(200, 400, 30, 100),
		NewObstacle(570, 400, 30, 100),
	}
}

// blocked reports whether a tank-sized square at (x, y) overlaps any obstacle.
func blocked(obstacles []Obstacle, x, y float64) bool {
	for _, o := range obstacles {
		if o.CheckCollision(x, y, tankSize) {
			return true
		}
	}
	return false
}

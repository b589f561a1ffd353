package game

import "math"

// rect is an axis-aligned rectangle in arena units. (x, y) is the top-left corner.
type rect struct {
	x, y float64
	w, h float64
}

// squareAt returns the square of side size centred on (cx, cy).
func squareAt(cx, cy, size float64) rect {
	return rect{x: cx - size/2, y: cy - size/2, w: size, h: size}
}

// overlaps reports whether two rectangles share interior area. Touching edges
// do not count as an overlap.
func (r rect) overlaps(o rect) bool {
	return r.x < o.x+o.w && r.x+r.w > o.x && r.y < o.y+o.h && r.y+r.h > o.y
}

// contains reports whether the point lies inside r. The left and top edges are
// inclusive, the right and bottom edges exclusive.
func (r rect) contains(px, py float64) bool {
	return px >= r.x && px < r.x+r.w && py >= r.y && py < r.y+r.h
}

// Distance returns the Euclidean distance between two points.
func Distance(x1, y1, x2, y2 float64) float64 {
	return math.Hypot(x2-x1, y2-y1)
}

package game

import (
	"math"
	"math/rand"
)

// Direction is one of the four cardinal facings shared by tanks and bullets.
type Direction int

const (
	DirUp Direction = iota
	DirRight
	DirDown
	DirLeft
)

var directions = [...]Direction{DirUp, DirRight, DirDown, DirLeft}

// Angle returns the heading in degrees, clockwise from Up.
func (d Direction) Angle() float64 {
	switch d {
	case DirRight:
		return 90
	case DirDown:
		return 180
	case DirLeft:
		return 270
	default:
		return 0
	}
}

// Step returns the unit grid step for the direction (screen y grows downwards).
func (d Direction) Step() (dx, dy int) {
	switch d {
	case DirUp:
		return 0, -1
	case DirRight:
		return 1, 0
	case DirDown:
		return 0, 1
	case DirLeft:
		return -1, 0
	}
	return 0, 0
}

// Heading projects the direction angle onto screen axes: (sin a, -cos a).
func (d Direction) Heading() (float64, float64) {
	rad := d.Angle() * math.Pi / 180
	return math.Sin(rad), -math.Cos(rad)
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirRight:
		return "right"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	default:
		return "unknown"
	}
}

// RandomDirection picks a cardinal direction uniformly.
func RandomDirection(rng *rand.Rand) Direction {
	return directions[rng.Intn(len(directions))]
}

// SnapDirection maps an angle in degrees (as produced by atan2(dx, -dy)) onto
// the nearest cardinal direction.
//
//	[-45,45) up, [45,135) right, [135,180] or [-180,-135) down, else left
func SnapDirection(deg float64) Direction {
	switch {
	case deg >= -45 && deg < 45:
		return DirUp
	case deg >= 45 && deg < 135:
		return DirRight
	case deg >= 135 || deg < -135:
		return DirDown
	default:
		return DirLeft
	}
}

// AimAngle returns the angle in degrees from (fromX, fromY) towards (toX, toY),
// measured clockwise from Up.
func AimAngle(fromX, fromY, toX, toY float64) float64 {
	return math.Atan2(toX-fromX, fromY-toY) * 180 / math.Pi
}

package game

import "math/rand"

const (
	wanderChance = 0.02 // per enemy per tick
	fireChance   = 0.02 // per enemy per tick
)

// enemyAI drives enemy tanks: random wandering, bouncing off obstacles and
// occasional shots snapped towards the player.
type enemyAI struct {
	rng    *rand.Rand
	wander float64
	fire   float64
}

func newEnemyAI(rng *rand.Rand) *enemyAI {
	return &enemyAI{rng: rng, wander: wanderChance, fire: fireChance}
}

// step runs one tick of AI for e and returns the bullet it fired, if any.
//
// Order matters: the wander roll comes before the move so a collision in the
// same tick overrides the wandered facing.
func (ai *enemyAI) step(w *World, e *Tank) *Bullet {
	if ai.rng.Float64() < ai.wander {
		e.Facing = RandomDirection(ai.rng)
	}

	dx, dy := e.Facing.Step()
	oldX, oldY := e.X, e.Y
	e.Move(float64(dx), float64(dy))
	if blocked(w.Obstacles, e.X, e.Y) {
		e.X, e.Y = oldX, oldY
		e.Facing = RandomDirection(ai.rng)
	}

	var shot *Bullet
	if ai.rng.Float64() < ai.fire && e.CanShoot() {
		e.Facing = SnapDirection(AimAngle(e.X, e.Y, w.Player.X, w.Player.Y))
		shot = NewBullet(e.X, e.Y, e.Facing, KindEnemy)
	}

	e.Tick()
	return shot
}

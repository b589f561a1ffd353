package game

import "math/rand"

const maxSpawnAttempts = 1000

// spawner places enemies in the top half of the arena, away from obstacles.
type spawner struct {
	rng      *rand.Rand
	attempts int
}

// placement is where one enemy should appear. relaxed is set when no random
// sample found a free spot and the fallback rule was used.
type placement struct {
	x, y    float64
	relaxed bool
}

// place finds a spawn point for one enemy. Random samples come first, capped at
// s.attempts; after that the spawn band is scanned in half-tank steps and the
// first free slot wins. If the whole band is blocked the last sample is used
// regardless of obstacles.
func (s *spawner) place(obstacles []Obstacle) placement {
	var x, y float64
	for i := 0; i < s.attempts; i++ {
		x = float64(tankSize + s.rng.Intn(ArenaWidth-2*tankSize+1))
		y = float64(tankSize + s.rng.Intn(ArenaHeight/2-tankSize+1))
		if !blocked(obstacles, x, y) {
			return placement{x: x, y: y}
		}
	}
	for sy := float64(tankSize); sy <= ArenaHeight/2; sy += halfTank {
		for sx := float64(tankSize); sx <= ArenaWidth-tankSize; sx += halfTank {
			if !blocked(obstacles, sx, sy) {
				return placement{x: sx, y: sy, relaxed: true}
			}
		}
	}
	return placement{x: x, y: y, relaxed: true}
}

// spawnWave adds w.EnemiesPerWave enemies with random facings.
func (g *Game) spawnWave(w *World) {
	for i := 0; i < w.EnemiesPerWave; i++ {
		p := g.spawn.place(w.Obstacles)
		if p.relaxed {
			g.log.Warn("relaxed enemy spawn", "wave", w.Wave, "x", p.x, "y", p.y)
			g.emit(Event{Kind: EventSpawnRelax, X: p.x, Y: p.y, Wave: w.Wave})
		}
		w.Enemies = append(w.Enemies, NewEnemy(p.x, p.y, RandomDirection(g.rng)))
	}
	g.log.Info("wave started", "wave", w.Wave, "enemies", w.EnemiesPerWave)
	g.emit(Event{Kind: EventWaveStarted, Wave: w.Wave})
}

// checkWave advances to the next wave once every enemy is gone, ending the
// game in victory after the final wave.
func (g *Game) checkWave(w *World) {
	if len(w.Enemies) > 0 {
		return
	}
	g.emit(Event{Kind: EventWaveCleared, Wave: w.Wave, Score: w.Score})
	w.Wave++
	if w.Wave > finalWave {
		g.setState(StateVictory)
		return
	}
	w.EnemiesPerWave = nextWaveSize(w.EnemiesPerWave)
	g.spawnWave(w)
}

package game

const (
	firstWaveSize = 3
	maxWaveSize   = 8
	finalWave     = 5
	killScore     = 100
)

// World is the session state for one game: counters plus every live entity.
// It is owned by Game and passed explicitly to the update steps.
type World struct {
	Score          int
	Wave           int
	EnemiesPerWave int
	Tick           int

	Player    *Tank
	Enemies   []*Tank
	Bullets   []*Bullet
	Obstacles []Obstacle
}

// NewWorld returns a fresh session with the player at the bottom centre.
func NewWorld(obstacles []Obstacle) *World {
	return &World{
		Wave:           1,
		EnemiesPerWave: firstWaveSize,
		Player:         NewPlayer(ArenaWidth/2, ArenaHeight-50),
		Obstacles:      obstacles,
	}
}

// nextWaveSize returns the enemy count for the wave after n enemies.
func nextWaveSize(n int) int {
	return min(n+1, maxWaveSize)
}

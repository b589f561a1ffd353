package game

// TestSim is a headless harness around Game used by tests and the headless
// report. It starts straight into Playing, records every event and lets the
// caller place entities by hand.
type TestSim struct {
	Game   *Game
	SimLog *SimLog
	Stats  *MatchStats

	opts []Option
}

// simOptionKind controls the pass in which an option is applied.
type simOptionKind int

const (
	simOptGame   simOptionKind = iota // seed, obstacles, listeners: applied to New
	simOptWorld                       // entity placement: applied after Start
)

// SimOption is a builder function applied to a TestSim during construction.
type SimOption struct {
	kind simOptionKind
	game Option
	fn   func(*TestSim)
}

// WithSimSeed sets the RNG seed for deterministic runs.
func WithSimSeed(seed int64) SimOption {
	return SimOption{kind: simOptGame, game: WithSeed(seed)}
}

// WithSimObstacles replaces the arena layout. With no arguments the arena is empty.
func WithSimObstacles(obstacles ...Obstacle) SimOption {
	return SimOption{kind: simOptGame, game: WithObstacles(obstacles...)}
}

// WithVerbose enables shot logging in the SimLog.
func WithVerbose(v bool) SimOption {
	return SimOption{kind: simOptGame, fn: func(ts *TestSim) {
		ts.SimLog.verbose = v
	}}
}

// WithGameOption passes any Game option through.
func WithGameOption(o Option) SimOption {
	return SimOption{kind: simOptGame, game: o}
}

// WithPlayerAt moves the player tank after the first wave has spawned.
func WithPlayerAt(x, y float64, facing Direction) SimOption {
	return SimOption{kind: simOptWorld, fn: func(ts *TestSim) {
		p := ts.World().Player
		p.X, p.Y, p.Facing = x, y, facing
	}}
}

// WithEnemiesAt replaces the spawned first wave with enemies at the given
// points, all facing facing.
func WithEnemiesAt(facing Direction, points ...[2]float64) SimOption {
	return SimOption{kind: simOptWorld, fn: func(ts *TestSim) {
		w := ts.World()
		w.Enemies = w.Enemies[:0]
		for _, pt := range points {
			w.Enemies = append(w.Enemies, NewEnemy(pt[0], pt[1], facing))
		}
	}}
}

// WithQuietEnemies turns off enemy wandering and firing.
func WithQuietEnemies() SimOption {
	return SimOption{kind: simOptWorld, fn: func(ts *TestSim) {
		ts.Game.ai.wander = 0
		ts.Game.ai.fire = 0
	}}
}

// NewTestSim builds a game from the options in two ordered passes:
//  1. Game construction (seed, obstacles, listeners), then Start
//  2. World placement (player, enemies, AI tweaks)
func NewTestSim(opts ...SimOption) *TestSim {
	ts := &TestSim{
		SimLog: NewSimLog(false),
		Stats:  &MatchStats{},
	}
	gameOpts := []Option{WithSeed(1)}
	for _, o := range opts {
		if o.kind != simOptGame {
			continue
		}
		if o.game != nil {
			gameOpts = append(gameOpts, o.game)
		}
		if o.fn != nil {
			o.fn(ts)
		}
	}
	gameOpts = append(gameOpts, WithListener(ts.SimLog), WithListener(ts.Stats))
	ts.Game = New(gameOpts...)
	ts.Game.Start()
	for _, o := range opts {
		if o.kind == simOptWorld {
			o.fn(ts)
		}
	}
	return ts
}

// World returns the live session.
func (ts *TestSim) World() *World {
	return ts.Game.World()
}

// Step runs one playing tick with the given controls.
func (ts *TestSim) Step(c Controls) {
	_ = ts.Game.Update(Input{Held: c})
}

// StepN runs n ticks holding the same controls, stopping early when the game
// leaves Playing. It returns the number of ticks run.
func (ts *TestSim) StepN(n int, c Controls) int {
	for i := 0; i < n; i++ {
		if ts.Game.State() != StatePlaying {
			return i
		}
		ts.Step(c)
	}
	return n
}

// RunAutopilot plays up to maxTicks ticks with an Autopilot at the controls
// and returns the outcome.
func (ts *TestSim) RunAutopilot(maxTicks int) Outcome {
	var ap Autopilot
	for i := 0; i < maxTicks && ts.Game.State() == StatePlaying; i++ {
		ts.Step(ap.Controls(ts.World()))
	}
	return ts.Game.Outcome()
}

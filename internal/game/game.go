package game

import (
	"errors"
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
)

// ErrQuit is returned by Update when the player asked to leave the game.
var ErrQuit = errors.New("game: quit")

// Game is the orchestrator. It owns the session World, the state machine and
// the random source shared by the AI and the spawner.
type Game struct {
	state     State
	world     *World
	obstacles []Obstacle

	rng   *rand.Rand
	ai    *enemyAI
	spawn *spawner

	log    *log.Logger
	events dispatcher
}

// Option configures a Game at construction.
type Option func(*Game)

// WithSeed makes the game deterministic.
func WithSeed(seed int64) Option {
	return func(g *Game) {
		g.rng = rand.New(rand.NewSource(seed)) // #nosec G404 -- gameplay only
	}
}

// WithLogger sets the structured logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(g *Game) {
		if l != nil {
			g.log = l
		}
	}
}

// WithObstacles replaces the default arena layout.
func WithObstacles(obstacles ...Obstacle) Option {
	return func(g *Game) {
		g.obstacles = obstacles
	}
}

// WithListener subscribes l to simulation events.
func WithListener(l Listener) Option {
	return func(g *Game) {
		g.events.subscribe(l)
	}
}

// WithSpawnAttempts caps the random samples taken per enemy before the
// relaxed spawn rule kicks in.
func WithSpawnAttempts(n int) Option {
	return func(g *Game) {
		if n > 0 {
			g.spawn.attempts = n
		}
	}
}

// New creates a game sitting on the menu screen.
func New(opts ...Option) *Game {
	g := &Game{
		state:     StateMenu,
		obstacles: DefaultObstacles(),
		rng:       rand.New(rand.NewSource(time.Now().UnixNano())), // #nosec G404 -- gameplay only
		log:       log.New(io.Discard),
		spawn:     &spawner{attempts: maxSpawnAttempts},
	}
	for _, o := range opts {
		o(g)
	}
	g.ai = newEnemyAI(g.rng)
	g.spawn.rng = g.rng
	g.reset()
	return g
}

// Subscribe adds a listener after construction.
func (g *Game) Subscribe(l Listener) {
	g.events.subscribe(l)
}

// State returns the current state.
func (g *Game) State() State { return g.state }

// World returns the live session. Callers must treat it as read-only.
func (g *Game) World() *World { return g.world }

// Outcome summarises the current session.
func (g *Game) Outcome() Outcome {
	return Outcome{State: g.state, Score: g.world.Score, Wave: g.world.Wave, Ticks: g.world.Tick}
}

func (g *Game) reset() {
	g.world = NewWorld(g.obstacles)
}

func (g *Game) setState(s State) {
	if s == g.state {
		return
	}
	g.log.Info("state change", "from", g.state, "to", s, "score", g.world.Score, "wave", g.world.Wave)
	g.state = s
	g.emit(Event{Kind: EventStateChanged, State: s, Score: g.world.Score, Wave: g.world.Wave})
}

func (g *Game) emit(e Event) {
	e.Tick = g.world.Tick
	g.events.dispatch(e)
}

// Start resets the session and begins wave 1, as if Enter was pressed on the menu.
func (g *Game) Start() {
	g.reset()
	g.setState(StatePlaying)
	g.spawnWave(g.world)
}

// Update runs one frame: menu keys first, then the simulation tick while
// playing. It returns ErrQuit when the process should exit.
func (g *Game) Update(in Input) error {
	for _, k := range in.Pressed {
		switch k {
		case KeyQuit:
			return ErrQuit
		case KeyCancel:
			if g.state != StatePlaying {
				return ErrQuit
			}
			g.setState(StateMenu)
		case KeyConfirm:
			switch {
			case g.state == StateMenu:
				g.Start()
			case g.state.Finished():
				g.reset()
				g.setState(StateMenu)
			}
		}
	}
	if g.state == StatePlaying {
		g.simTick(in.Held)
	}
	return nil
}

// simTick runs one simulation tick.
func (g *Game) simTick(c Controls) {
	w := g.world
	w.Tick++

	// 1. PLAYER: movement with obstacle revert, then fire.
	g.updatePlayer(w, c)

	// 2. RELOAD.
	w.Player.Tick()

	// 3. ENEMIES.
	for _, e := range w.Enemies {
		if b := g.ai.step(w, e); b != nil {
			w.Bullets = append(w.Bullets, b)
			g.emit(Event{Kind: EventShot, Owner: KindEnemy, X: b.X, Y: b.Y})
		}
	}

	// 4. BULLETS.
	g.updateBullets(w)

	// 5. TRANSITIONS: defeat pre-empts wave completion.
	if g.state != StatePlaying {
		return
	}
	g.checkWave(w)
}

func (g *Game) updatePlayer(w *World, c Controls) {
	p := w.Player
	dx, dy := c.Axis()
	if dx != 0 || dy != 0 {
		oldX, oldY := p.X, p.Y
		p.Move(dx, dy)
		p.UpdateDirection(dx, dy)
		if blocked(w.Obstacles, p.X, p.Y) {
			p.X, p.Y = oldX, oldY
		}
	}
	if c.Fire && p.CanShoot() {
		b := NewBullet(p.X, p.Y, p.Facing, KindPlayer)
		w.Bullets = append(w.Bullets, b)
		g.emit(Event{Kind: EventShot, Owner: KindPlayer, X: b.X, Y: b.Y})
	}
}

func (g *Game) updateBullets(w *World) {
	for _, b := range w.Bullets {
		b.Tick()
		for _, o := range w.Obstacles {
			if o.ContainsPoint(b.X, b.Y) {
				b.Active = false
			}
		}
		if b.Owner == KindPlayer {
			g.resolvePlayerBullet(w, b)
		} else {
			g.resolveEnemyBullet(w, b)
		}
	}

	live := w.Bullets[:0]
	for _, b := range w.Bullets {
		if b.Active {
			live = append(live, b)
		}
	}
	clear(w.Bullets[len(live):])
	w.Bullets = live
}

func (g *Game) resolvePlayerBullet(w *World, b *Bullet) {
	for i, e := range w.Enemies {
		if !b.CheckCollision(e) {
			continue
		}
		e.Health--
		if e.Health > 0 {
			g.emit(Event{Kind: EventHit, Owner: KindEnemy, X: e.X, Y: e.Y})
			return
		}
		w.Enemies = append(w.Enemies[:i], w.Enemies[i+1:]...)
		w.Score += killScore
		g.log.Debug("enemy destroyed", "x", e.X, "y", e.Y, "score", w.Score, "left", len(w.Enemies))
		g.emit(Event{Kind: EventKill, Owner: KindEnemy, X: e.X, Y: e.Y, Score: w.Score, Wave: w.Wave})
		return
	}
}

func (g *Game) resolveEnemyBullet(w *World, b *Bullet) {
	p := w.Player
	if !p.Alive() || !b.CheckCollision(p) {
		return
	}
	p.Health--
	g.emit(Event{Kind: EventPlayerHit, Owner: KindPlayer, X: p.X, Y: p.Y})
	if !p.Alive() {
		g.setState(StateGameOver)
	}
}

package game

import "testing"

// dumpLog prints the full SimLog to t.Log so it appears in `go test -v` output.
func dumpLog(t *testing.T, ts *TestSim) {
	t.Helper()
	entries := ts.SimLog.Entries()
	if len(entries) == 0 {
		t.Log("(no log entries)")
		return
	}
	for _, e := range entries {
		t.Log(e.String())
	}
}

// checkInvariants asserts the per-tick rules every session must keep.
func checkInvariants(t *testing.T, ts *TestSim) {
	t.Helper()
	w := ts.World()
	tanks := append([]*Tank{w.Player}, w.Enemies...)
	for _, tk := range tanks {
		if tk.X < halfTank || tk.X > ArenaWidth-halfTank || tk.Y < halfTank || tk.Y > ArenaHeight-halfTank {
			t.Fatalf("tick %d: %s at (%.1f,%.1f) left the arena", w.Tick, tk.Kind, tk.X, tk.Y)
		}
		if tk.Reload < 0 || tk.Reload > reloadTicks {
			t.Fatalf("tick %d: %s reload %d out of range", w.Tick, tk.Kind, tk.Reload)
		}
	}
	for _, b := range w.Bullets {
		if !b.Active {
			t.Fatalf("tick %d: inactive bullet kept in the world", w.Tick)
		}
	}
	if w.Score%killScore != 0 {
		t.Fatalf("tick %d: score %d is not a multiple of %d", w.Tick, w.Score, killScore)
	}
	if w.Player.Health < 0 {
		t.Fatalf("tick %d: negative player health", w.Tick)
	}
	if ts.Game.State() == StatePlaying && w.Wave > finalWave {
		t.Fatalf("tick %d: playing on wave %d", w.Tick, w.Wave)
	}
}

func TestScenario_AutopilotKeepsInvariants(t *testing.T) {
	for _, seed := range []int64{1, 2, 3} {
		ts := NewTestSim(WithSimSeed(seed))
		var ap Autopilot
		for i := 0; i < 5000 && ts.Game.State() == StatePlaying; i++ {
			ts.Step(ap.Controls(ts.World()))
			checkInvariants(t, ts)
		}
		w := ts.World()
		if w.Score != ts.Stats.Kills*killScore {
			dumpLog(t, ts)
			t.Fatalf("seed %d: score %d does not match %d kills", seed, w.Score, ts.Stats.Kills)
		}
		if ts.Stats.PlayerShots == 0 {
			t.Fatalf("seed %d: autopilot never fired", seed)
		}
	}
}

func TestScenario_AutopilotDestroysLoneEnemy(t *testing.T) {
	ts := NewTestSim(
		WithSimObstacles(),
		WithQuietEnemies(),
		WithEnemiesAt(DirUp, [2]float64{250, 100}),
	)
	var ap Autopilot
	for i := 0; i < 400 && ts.Stats.Kills == 0; i++ {
		ts.Step(ap.Controls(ts.World()))
	}
	if ts.Stats.Kills != 1 {
		dumpLog(t, ts)
		t.Fatalf("autopilot failed to destroy a stationary enemy in 400 ticks")
	}
	if ts.World().Wave != 2 {
		t.Fatalf("clearing the lone enemy should start wave 2, got %d", ts.World().Wave)
	}
}

func TestAutopilot_DetoursWhenStuck(t *testing.T) {
	w := NewWorld(DefaultObstacles())
	w.Player.X, w.Player.Y = 245, 450
	w.Enemies = []*Tank{NewEnemy(100, 100, DirUp)}

	var ap Autopilot
	if c := ap.Controls(w); c != (Controls{Left: true}) {
		t.Fatalf("expected to close the horizontal gap first, got %+v", c)
	}
	// The pillar kept the player in place.
	if c := ap.Controls(w); c != (Controls{Up: true}) {
		t.Fatalf("expected a perpendicular detour, got %+v", c)
	}
	for i := 0; i < detourTicks; i++ {
		if c := ap.Controls(w); c != (Controls{Up: true}) {
			t.Fatalf("detour tick %d: expected up, got %+v", i, c)
		}
	}
	if c := ap.Controls(w); c != (Controls{Left: true}) {
		t.Fatalf("after the detour the target should be chased again, got %+v", c)
	}
}

func TestAutopilot_TurnsThenFires(t *testing.T) {
	w := NewWorld(nil)
	w.Player.Facing = DirLeft
	w.Enemies = []*Tank{NewEnemy(w.Player.X+4, 100, DirUp)}

	var ap Autopilot
	if c := ap.Controls(w); c != (Controls{Up: true}) {
		t.Fatalf("lined up but facing away: expected a turn, got %+v", c)
	}
	w.Player.Facing = DirUp
	if c := ap.Controls(w); c != (Controls{Fire: true}) {
		t.Fatalf("lined up and facing: expected fire, got %+v", c)
	}
	w.Enemies = nil
	if c := ap.Controls(w); c != (Controls{}) {
		t.Fatalf("no target: expected idle, got %+v", c)
	}
}

func TestScenario_RunAutopilotStopsAtEnd(t *testing.T) {
	ts := NewTestSim(WithSimSeed(4))
	out := ts.RunAutopilot(20000)
	if out.State == StatePlaying && out.Ticks != 20000 {
		t.Fatalf("unfinished run should use the whole budget, used %d", out.Ticks)
	}
	if out.State != StatePlaying && ts.Game.State() != out.State {
		t.Fatal("outcome should reflect the final state")
	}
	if ts.SimLog.Count("state", EventStateChanged.String()) < 1 {
		t.Fatal("the start transition should be logged")
	}
}

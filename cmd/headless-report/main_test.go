package main

import (
	"testing"

	"github.com/Garsondee/tank-battle/internal/game"
)

func TestSummarize_CountsResults(t *testing.T) {
	all := []runStats{
		{outcome: game.Outcome{State: game.StateVictory, Score: 2500, Wave: 6}, firstKillTick: 100},
		{outcome: game.Outcome{State: game.StateGameOver, Score: 500, Wave: 2}, firstKillTick: 300},
		{outcome: game.Outcome{State: game.StatePlaying, Score: 0, Wave: 1}, firstKillTick: -1},
	}

	agg := summarize(all)
	if agg.victories != 1 || agg.defeats != 1 || agg.unfinished != 1 {
		t.Fatalf("expected 1/1/1, got victories=%d defeats=%d unfinished=%d", agg.victories, agg.defeats, agg.unfinished)
	}
	if agg.avgScore != 1000 {
		t.Fatalf("expected avg score 1000, got %.1f", agg.avgScore)
	}
	if agg.avgWave != 3 {
		t.Fatalf("expected avg wave 3, got %.1f", agg.avgWave)
	}
	if agg.avgKillTick != "200.0" {
		t.Fatalf("runs without a kill should be skipped, got %s", agg.avgKillTick)
	}
}

func TestAvgTickString_Empty(t *testing.T) {
	if got := avgTickString(nil); got != "n/a" {
		t.Fatalf("expected n/a, got %s", got)
	}
}

func TestJoinTicks(t *testing.T) {
	if got := joinTicks([]int{12, 340}); got != "12,340" {
		t.Fatalf("expected 12,340, got %s", got)
	}
	if got := joinTicks(nil); got != "none" {
		t.Fatalf("expected none, got %s", got)
	}
}

func TestCollectRun_MarkersMatchLog(t *testing.T) {
	ts := game.NewTestSim(game.WithSimSeed(7))
	rs := collectRun(1, 7, ts, 2000)

	if rs.outcome.Ticks == 0 || rs.outcome.Ticks > 2000 {
		t.Fatalf("expected 1..2000 ticks, got %d", rs.outcome.Ticks)
	}
	if len(rs.waveClearTicks) != rs.stats.WavesCleared {
		t.Fatalf("wave clear markers (%d) disagree with stats (%d)", len(rs.waveClearTicks), rs.stats.WavesCleared)
	}
	if rs.stats.Kills > 0 && rs.firstKillTick < 0 {
		t.Fatal("kills recorded but no first kill marker")
	}
	if rs.outcome.Score != rs.stats.Kills*100 {
		t.Fatalf("score %d should be 100 per kill (%d kills)", rs.outcome.Score, rs.stats.Kills)
	}
}

func TestFirstTick(t *testing.T) {
	sl := game.NewSimLog(false)
	sl.Add(12, "combat", game.EventKill.String(), "enemy", 100)
	sl.Add(30, "combat", game.EventKill.String(), "enemy", 200)
	if got := firstTick(sl, "combat", game.EventKill.String()); got != 12 {
		t.Fatalf("expected the earliest kill at 12, got %d", got)
	}
	if got := firstTick(sl, "combat", game.EventPlayerHit.String()); got != -1 {
		t.Fatalf("expected -1 without damage, got %d", got)
	}
}

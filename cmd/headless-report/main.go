package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/log"

	"github.com/Garsondee/tank-battle/internal/game"
)

type runStats struct {
	runIndex int
	seed     int64

	outcome game.Outcome
	stats   game.MatchStats

	firstKillTick     int
	firstDamageTick   int
	waveClearTicks    []int
	relaxedSpawnWaves []int
}

func main() {
	var runs int
	var ticks int
	var seedBase int64
	var seedStep int64
	var verbose bool

	flag.IntVar(&runs, "runs", 5, "number of headless autopilot runs")
	flag.IntVar(&ticks, "ticks", 3*60*game.TicksPerSecond, "tick budget per run")
	flag.Int64Var(&seedBase, "seed-base", 42, "base RNG seed for run 1")
	flag.Int64Var(&seedStep, "seed-step", 1, "seed increment between runs")
	flag.BoolVar(&verbose, "v", false, "print the event log of every run")
	flag.Parse()

	logger := log.NewWithOptions(os.Stderr, log.Options{Prefix: "headless-report"})
	if runs <= 0 {
		logger.Fatal("-runs must be > 0", "runs", runs)
	}
	if ticks <= 0 {
		logger.Fatal("-ticks must be > 0", "ticks", ticks)
	}

	fmt.Printf("=== Headless Tank Battle Report ===\n")
	fmt.Printf("runs=%d ticks=%d seed_base=%d seed_step=%d\n\n", runs, ticks, seedBase, seedStep)

	all := make([]runStats, 0, runs)
	for i := 0; i < runs; i++ {
		seed := seedBase + int64(i)*seedStep
		ts := game.NewTestSim(game.WithSimSeed(seed), game.WithVerbose(verbose))
		rs := collectRun(i+1, seed, ts, ticks)
		all = append(all, rs)
		printRun(rs)
		if verbose {
			fmt.Print(ts.SimLog.Format())
			fmt.Println()
		}
	}

	printAggregate(all)
}

// collectRun plays one autopilot session and extracts its markers.
func collectRun(runIndex int, seed int64, ts *game.TestSim, ticks int) runStats {
	outcome := ts.RunAutopilot(ticks)

	var clears []int
	for _, e := range ts.SimLog.Filter("wave", game.EventWaveCleared.String()) {
		clears = append(clears, e.Tick)
	}
	var relaxed []int
	for _, e := range ts.SimLog.Filter("spawn", game.EventSpawnRelax.String()) {
		relaxed = append(relaxed, int(e.NumVal))
	}

	return runStats{
		runIndex:          runIndex,
		seed:              seed,
		outcome:           outcome,
		stats:             *ts.Stats,
		firstKillTick:     firstTick(ts.SimLog, "combat", game.EventKill.String()),
		firstDamageTick:   firstTick(ts.SimLog, "combat", game.EventPlayerHit.String()),
		waveClearTicks:    clears,
		relaxedSpawnWaves: relaxed,
	}
}

// firstTick is the tick of the first matching log entry, or -1.
func firstTick(sl *game.SimLog, category, key string) int {
	if e, ok := sl.FirstOf(category, key); ok {
		return e.Tick
	}
	return -1
}

func printRun(rs runStats) {
	fmt.Printf("--- Run %d (seed=%d) ---\n", rs.runIndex, rs.seed)
	fmt.Printf("result=%s score=%d wave=%d ticks=%d\n",
		rs.outcome.Result(), rs.outcome.Score, rs.outcome.Wave, rs.outcome.Ticks)
	fmt.Printf("phase_markers: first_kill=%d first_damage=%d wave_clears=%s\n",
		rs.firstKillTick, rs.firstDamageTick, joinTicks(rs.waveClearTicks))
	fmt.Printf("combat: player_shots=%d enemy_shots=%d kills=%d damage_taken=%d accuracy=%.1f%%\n",
		rs.stats.PlayerShots, rs.stats.EnemyShots, rs.stats.Kills, rs.stats.DamageTaken, rs.stats.Accuracy()*100)
	if len(rs.relaxedSpawnWaves) > 0 {
		fmt.Printf("relaxed_spawns=%d waves=%s\n", len(rs.relaxedSpawnWaves), joinTicks(rs.relaxedSpawnWaves))
	}
	fmt.Println()
}

// aggregate is the cross-run summary.
type aggregate struct {
	runs        int
	victories   int
	defeats     int
	unfinished  int
	avgScore    float64
	avgWave     float64
	avgAccuracy float64
	avgKillTick string
}

func summarize(all []runStats) aggregate {
	agg := aggregate{runs: len(all)}
	totalScore, totalWave := 0, 0
	totalAcc := 0.0
	var killTicks []int
	for _, rs := range all {
		switch rs.outcome.State {
		case game.StateVictory:
			agg.victories++
		case game.StateGameOver:
			agg.defeats++
		default:
			agg.unfinished++
		}
		totalScore += rs.outcome.Score
		totalWave += rs.outcome.Wave
		totalAcc += rs.stats.Accuracy()
		if rs.firstKillTick >= 0 {
			killTicks = append(killTicks, rs.firstKillTick)
		}
	}
	agg.avgScore = avg(totalScore, len(all))
	agg.avgWave = avg(totalWave, len(all))
	if len(all) > 0 {
		agg.avgAccuracy = totalAcc / float64(len(all))
	}
	agg.avgKillTick = avgTickString(killTicks)
	return agg
}

func printAggregate(all []runStats) {
	agg := summarize(all)
	fmt.Println("=== Aggregate ===")
	fmt.Printf("runs=%d victories=%d defeats=%d unfinished=%d win_rate=%.0f%%\n",
		agg.runs, agg.victories, agg.defeats, agg.unfinished, avg(agg.victories*100, agg.runs))
	fmt.Printf("avg_score=%.1f avg_wave=%.1f avg_accuracy=%.1f%% avg_first_kill_tick=%s\n",
		agg.avgScore, agg.avgWave, agg.avgAccuracy*100, agg.avgKillTick)
}

func avg(sum int, n int) float64 {
	if n <= 0 {
		return 0
	}
	return float64(sum) / float64(n)
}

func avgTickString(vals []int) string {
	if len(vals) == 0 {
		return "n/a"
	}
	sum := 0
	for _, v := range vals {
		sum += v
	}
	return fmt.Sprintf("%.1f", float64(sum)/float64(len(vals)))
}

func joinTicks(vals []int) string {
	if len(vals) == 0 {
		return "none"
	}
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = fmt.Sprint(v)
	}
	return strings.Join(parts, ",")
}

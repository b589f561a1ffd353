package game

import "fmt"

// Outcome is the headline result of a session.
type Outcome struct {
	State State
	Score int
	Wave  int // wave reached; finalWave+1 after a victory
	Ticks int
}

// WavesCleared is the number of waves fully destroyed.
func (o Outcome) WavesCleared() int {
	return o.Wave - 1
}

// Result names the result for reports: victory, defeat or unfinished.
func (o Outcome) Result() string {
	switch o.State {
	case StateVictory:
		return "victory"
	case StateGameOver:
		return "defeat"
	default:
		return "unfinished"
	}
}

// Summary renders the outcome as one line, suitable for the clipboard.
func (o Outcome) Summary() string {
	secs := float64(o.Ticks) / TicksPerSecond
	return fmt.Sprintf("Tank Battle: %s - score %d, %d/%d waves cleared in %.1fs",
		o.Result(), o.Score, o.WavesCleared(), finalWave, secs)
}

// TicksPerSecond is the fixed simulation rate.
const TicksPerSecond = 60

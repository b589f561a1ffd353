package game

// State selects which update and draw path runs each frame.
type State int

const (
	StateMenu State = iota
	StatePlaying
	StateGameOver
	StateVictory
)

func (s State) String() string {
	switch s {
	case StateMenu:
		return "menu"
	case StatePlaying:
		return "playing"
	case StateGameOver:
		return "game_over"
	case StateVictory:
		return "victory"
	default:
		return "unknown"
	}
}

// Finished reports whether the state is one of the end screens.
func (s State) Finished() bool {
	return s == StateGameOver || s == StateVictory
}

package game

// MatchStats accumulates combat numbers for one session. It is a Listener and
// resets itself when a new game starts.
type MatchStats struct {
	PlayerShots  int
	EnemyShots   int
	PlayerHits   int // bullets that struck an enemy
	Kills        int
	DamageTaken  int
	WavesCleared int
	RelaxedSpawn int
}

// OnEvent folds e into the totals.
func (s *MatchStats) OnEvent(e Event) {
	switch e.Kind {
	case EventStateChanged:
		// Playing is only entered through Start, which resets the session.
		if e.State == StatePlaying {
			*s = MatchStats{}
		}
	case EventShot:
		if e.Owner == KindPlayer {
			s.PlayerShots++
		} else {
			s.EnemyShots++
		}
	case EventHit:
		s.PlayerHits++
	case EventKill:
		s.PlayerHits++
		s.Kills++
	case EventPlayerHit:
		s.DamageTaken++
	case EventWaveCleared:
		s.WavesCleared++
	case EventSpawnRelax:
		s.RelaxedSpawn++
	}
}

// Accuracy is the fraction of player shots that hit an enemy, 0 when no shot
// was fired.
func (s MatchStats) Accuracy() float64 {
	if s.PlayerShots == 0 {
		return 0
	}
	return float64(s.PlayerHits) / float64(s.PlayerShots)
}

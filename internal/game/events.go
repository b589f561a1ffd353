package game

// EventKind identifies what happened in the simulation.
type EventKind int

const (
	EventStateChanged EventKind = iota
	EventWaveStarted
	EventWaveCleared
	EventShot
	EventHit        // an enemy took a hit but survived
	EventKill       // an enemy was destroyed
	EventPlayerHit  // the player lost a health point
	EventSpawnRelax // an enemy had to be placed with the relaxed spawn rule
)

func (k EventKind) String() string {
	switch k {
	case EventStateChanged:
		return "state_changed"
	case EventWaveStarted:
		return "wave_started"
	case EventWaveCleared:
		return "wave_cleared"
	case EventShot:
		return "shot"
	case EventHit:
		return "hit"
	case EventKill:
		return "kill"
	case EventPlayerHit:
		return "player_hit"
	case EventSpawnRelax:
		return "spawn_relaxed"
	default:
		return "unknown"
	}
}

// Event is a notification emitted during Update. Fields not relevant to the
// kind are left zero.
type Event struct {
	Kind  EventKind
	Tick  int
	Owner Kind // shooter for shots, victim for hits
	X, Y  float64
	Wave  int
	Score int
	State State
}

// Listener receives simulation events synchronously on the update goroutine.
type Listener interface {
	OnEvent(e Event)
}

// ListenerFunc adapts a plain function to Listener.
type ListenerFunc func(Event)

// OnEvent calls f(e).
func (f ListenerFunc) OnEvent(e Event) { f(e) }

// dispatcher fans events out to every subscribed listener in subscription order.
type dispatcher struct {
	listeners []Listener
}

func (d *dispatcher) subscribe(l Listener) {
	d.listeners = append(d.listeners, l)
}

func (d *dispatcher) dispatch(e Event) {
	for _, l := range d.listeners {
		l.OnEvent(e)
	}
}

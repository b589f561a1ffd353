package game

import (
	"fmt"
	"strings"
)

// SimLogEntry is one recorded event during a simulation.
type SimLogEntry struct {
	Tick     int
	Category string // state, wave, combat, spawn
	Key      string // event name within the category
	Value    string // human-readable detail
	NumVal   float64
}

// String formats the entry as a fixed-width log line.
//
//	[T=0042] combat   kill             enemy at (412,130) score=300
func (e SimLogEntry) String() string {
	return fmt.Sprintf("[T=%04d] %-8s %-16s %s", e.Tick, e.Category, e.Key, e.Value)
}

// SimLog collects structured events from a running game. It is unbounded and
// machine-readable; subscribe it with WithListener or Game.Subscribe.
type SimLog struct {
	entries []SimLogEntry
	verbose bool
}

// NewSimLog creates a SimLog. Shots are only recorded when verbose is true.
func NewSimLog(verbose bool) *SimLog {
	return &SimLog{verbose: verbose}
}

// OnEvent records e.
func (sl *SimLog) OnEvent(e Event) {
	switch e.Kind {
	case EventStateChanged:
		sl.Add(e.Tick, "state", e.Kind.String(), e.State.String(), float64(e.Score))
	case EventWaveStarted:
		sl.Add(e.Tick, "wave", e.Kind.String(), fmt.Sprintf("wave %d", e.Wave), float64(e.Wave))
	case EventWaveCleared:
		sl.Add(e.Tick, "wave", e.Kind.String(), fmt.Sprintf("wave %d score=%d", e.Wave, e.Score), float64(e.Wave))
	case EventShot:
		if sl.verbose {
			sl.Add(e.Tick, "combat", e.Kind.String(), fmt.Sprintf("%s at (%.0f,%.0f)", e.Owner, e.X, e.Y), 0)
		}
	case EventHit, EventPlayerHit:
		sl.Add(e.Tick, "combat", e.Kind.String(), fmt.Sprintf("%s at (%.0f,%.0f)", e.Owner, e.X, e.Y), 0)
	case EventKill:
		sl.Add(e.Tick, "combat", e.Kind.String(), fmt.Sprintf("%s at (%.0f,%.0f) score=%d", e.Owner, e.X, e.Y, e.Score), float64(e.Score))
	case EventSpawnRelax:
		sl.Add(e.Tick, "spawn", e.Kind.String(), fmt.Sprintf("wave %d at (%.0f,%.0f)", e.Wave, e.X, e.Y), float64(e.Wave))
	}
}

// Add records a new entry.
func (sl *SimLog) Add(tick int, category, key, value string, numVal float64) {
	sl.entries = append(sl.entries, SimLogEntry{
		Tick:     tick,
		Category: category,
		Key:      key,
		Value:    value,
		NumVal:   numVal,
	})
}

// Entries returns all recorded entries.
func (sl *SimLog) Entries() []SimLogEntry {
	return sl.entries
}

func (e SimLogEntry) matches(category, key string) bool {
	return (category == "" || e.Category == category) && (key == "" || e.Key == key)
}

// Filter returns the entries of one category and key, in tick order. An empty
// category or key matches anything.
func (sl *SimLog) Filter(category, key string) []SimLogEntry {
	var out []SimLogEntry
	for _, e := range sl.entries {
		if e.matches(category, key) {
			out = append(out, e)
		}
	}
	return out
}

// Count is len(Filter(category, key)).
func (sl *SimLog) Count(category, key string) int {
	n := 0
	for _, e := range sl.entries {
		if e.matches(category, key) {
			n++
		}
	}
	return n
}

// FirstOf returns the earliest matching entry. Reports use it for phase
// markers such as the tick of the first kill.
func (sl *SimLog) FirstOf(category, key string) (SimLogEntry, bool) {
	for _, e := range sl.entries {
		if e.matches(category, key) {
			return e, true
		}
	}
	return SimLogEntry{}, false
}

// LastOf returns the latest matching entry.
func (sl *SimLog) LastOf(category, key string) (SimLogEntry, bool) {
	for i := len(sl.entries) - 1; i >= 0; i-- {
		if sl.entries[i].matches(category, key) {
			return sl.entries[i], true
		}
	}
	return SimLogEntry{}, false
}

// Format renders every entry, one per line.
func (sl *SimLog) Format() string {
	var sb strings.Builder
	for _, e := range sl.entries {
		sb.WriteString(e.String())
		sb.WriteByte('\n')
	}
	return sb.String()
}

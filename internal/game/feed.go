package game

import (
	"fmt"
	"image/color"
)

const (
	feedMaxEntries = 8
	feedLineHeight = 28
	feedRecent     = 3 // newest entries drawn at full brightness
)

// FeedEntry is a single line in the event feed.
type FeedEntry struct {
	Tick    int
	Owner   Kind
	Message string
}

// Feed is a ring buffer of recent combat events, drawn as an overlay panel.
// It is a Listener.
type Feed struct {
	entries [feedMaxEntries]FeedEntry
	head    int
	count   int
}

// NewFeed creates an empty feed.
func NewFeed() *Feed {
	return &Feed{}
}

// Add appends an entry, evicting the oldest when full.
func (f *Feed) Add(tick int, owner Kind, msg string) {
	f.entries[f.head] = FeedEntry{Tick: tick, Owner: owner, Message: msg}
	f.head = (f.head + 1) % feedMaxEntries
	if f.count < feedMaxEntries {
		f.count++
	}
}

// Recent returns entries in chronological order (oldest first).
func (f *Feed) Recent() []FeedEntry {
	out := make([]FeedEntry, f.count)
	for i := 0; i < f.count; i++ {
		out[i] = f.entries[(f.head-f.count+i+feedMaxEntries)%feedMaxEntries]
	}
	return out
}

// OnEvent turns the events worth reading into feed lines. Shots are too
// frequent to be useful.
func (f *Feed) OnEvent(e Event) {
	switch e.Kind {
	case EventStateChanged:
		if e.State == StatePlaying {
			*f = Feed{}
		}
	case EventWaveStarted:
		f.Add(e.Tick, KindPlayer, fmt.Sprintf("wave %d incoming", e.Wave))
	case EventKill:
		f.Add(e.Tick, KindPlayer, fmt.Sprintf("enemy destroyed +%d", killScore))
	case EventPlayerHit:
		f.Add(e.Tick, KindEnemy, "player hit")
	case EventSpawnRelax:
		f.Add(e.Tick, KindEnemy, "crowded spawn")
	}
}

// Draw renders the feed in the bottom-left corner, newest line at the bottom.
func (f *Feed) Draw(r Renderer) {
	entries := f.Recent()
	y := float64(ArenaHeight - 10 - feedLineHeight*len(entries))
	for i, e := range entries {
		c := color.Color(colorGray)
		if i >= len(entries)-feedRecent {
			c = colorGreen
			if e.Owner == KindEnemy {
				c = colorRed
			}
		}
		r.Text(fmt.Sprintf("%5d %s", e.Tick, e.Message), 10, y, TextNormal, AlignLeft, c)
		y += feedLineHeight
	}
}

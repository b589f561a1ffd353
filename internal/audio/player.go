// Package audio plays synthesized sound effects in response to simulation
// events.
package audio

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/Garsondee/tank-battle/internal/game"
)

// Player mixes effects into the speaker. The zero value is not usable; create
// one with New. A muted or uninitialised Player ignores events.
type Player struct {
	mixer *beep.Mixer
	muted bool
	ready bool
	log   *log.Logger
}

// New creates a Player. Call Init before events start flowing.
func New(muted bool, logger *log.Logger) *Player {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Player{mixer: &beep.Mixer{}, muted: muted, log: logger}
}

// Init opens the audio device. A failure leaves the Player silent.
func (p *Player) Init() error {
	if p.muted || p.ready {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(50*time.Millisecond)); err != nil {
		return fmt.Errorf("audio: init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.ready = true
	return nil
}

// Close stops playback.
func (p *Player) Close() {
	if !p.ready {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.ready = false
}

// OnEvent plays the effect mapped to e, if any.
func (p *Player) OnEvent(e game.Event) {
	fx, ok := EffectFor(e)
	if !ok || !p.ready {
		return
	}
	s := Build(fx)
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
	p.log.Debug("sfx", "effect", fx, "tick", e.Tick)
}

// EffectFor maps a simulation event to its sound effect.
func EffectFor(e game.Event) (Effect, bool) {
	switch e.Kind {
	case game.EventShot:
		if e.Owner == game.KindPlayer {
			return EffectPlayerShot, true
		}
		return EffectEnemyShot, true
	case game.EventHit:
		return EffectHit, true
	case game.EventKill:
		return EffectExplosion, true
	case game.EventPlayerHit:
		return EffectPlayerHit, true
	case game.EventWaveStarted:
		if e.Wave > 1 {
			return EffectWave, true
		}
	case game.EventStateChanged:
		switch e.State {
		case game.StateGameOver:
			return EffectDefeat, true
		case game.StateVictory:
			return EffectVictory, true
		}
	}
	return 0, false
}

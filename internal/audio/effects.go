package audio

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

const sampleRate = beep.SampleRate(44100)

// Effect names one synthesized sound.
type Effect int

const (
	EffectPlayerShot Effect = iota
	EffectEnemyShot
	EffectHit
	EffectExplosion
	EffectPlayerHit
	EffectWave
	EffectDefeat
	EffectVictory
)

var effectNames = [...]string{
	EffectPlayerShot: "player_shot",
	EffectEnemyShot:  "enemy_shot",
	EffectHit:        "hit",
	EffectExplosion:  "explosion",
	EffectPlayerHit:  "player_hit",
	EffectWave:       "wave",
	EffectDefeat:     "defeat",
	EffectVictory:    "victory",
}

func (e Effect) String() string {
	if e < 0 || int(e) >= len(effectNames) {
		return "unknown"
	}
	return effectNames[e]
}

// noise is white noise with an exponential decay envelope.
type noise struct {
	rng   *rand.Rand
	pos   int
	total int
	decay float64 // envelope rate, 1/s
}

func newNoise(d time.Duration, decay float64, seed int64) *noise {
	return &noise{
		rng:   rand.New(rand.NewSource(seed)), // #nosec G404 -- audio only
		total: sampleRate.N(d),
		decay: decay,
	}
}

func (n *noise) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		if n.pos >= n.total {
			return i, i > 0
		}
		t := float64(n.pos) / float64(sampleRate)
		v := (n.rng.Float64()*2 - 1) * math.Exp(-t*n.decay)
		samples[i][0] = v
		samples[i][1] = v
		n.pos++
	}
	return len(samples), true
}

func (n *noise) Err() error { return nil }

// sweep is a sine whose frequency slides linearly from -> to over its length.
type sweep struct {
	from, to float64
	phase    float64
	pos      int
	total    int
}

func newSweep(from, to float64, d time.Duration) *sweep {
	return &sweep{from: from, to: to, total: sampleRate.N(d)}
}

func (s *sweep) Stream(samples [][2]float64) (int, bool) {
	for i := range samples {
		if s.pos >= s.total {
			return i, i > 0
		}
		frac := float64(s.pos) / float64(s.total)
		freq := s.from + (s.to-s.from)*frac
		s.phase += freq / float64(sampleRate)
		v := math.Sin(2*math.Pi*s.phase) * (1 - frac)
		samples[i][0] = v
		samples[i][1] = v
		s.pos++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

// tone is a fixed-frequency sine of duration d.
func tone(freq float64, d time.Duration) beep.Streamer {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		// Only fails above the Nyquist frequency.
		return generators.Silence(sampleRate.N(d))
	}
	return beep.Take(sampleRate.N(d), sine)
}

// volume scales s by 2^v.
func volume(s beep.Streamer, v float64) beep.Streamer {
	return &effects.Volume{Streamer: s, Base: 2, Volume: v}
}

// Build returns a fresh, finite streamer for e.
func Build(e Effect) beep.Streamer {
	switch e {
	case EffectPlayerShot:
		return volume(newSweep(880, 440, 60*time.Millisecond), -2)
	case EffectEnemyShot:
		return volume(newSweep(440, 220, 80*time.Millisecond), -3)
	case EffectHit:
		return volume(tone(660, 50*time.Millisecond), -3)
	case EffectExplosion:
		return volume(newNoise(300*time.Millisecond, 10, time.Now().UnixNano()), -1.5)
	case EffectPlayerHit:
		return volume(beep.Seq(tone(180, 90*time.Millisecond), tone(120, 120*time.Millisecond)), -1.5)
	case EffectWave:
		return volume(beep.Seq(
			tone(523, 90*time.Millisecond),
			tone(659, 90*time.Millisecond),
			tone(784, 140*time.Millisecond),
		), -2.5)
	case EffectDefeat:
		return volume(newSweep(400, 80, 900*time.Millisecond), -1)
	case EffectVictory:
		return volume(beep.Seq(
			tone(523, 120*time.Millisecond),
			tone(659, 120*time.Millisecond),
			tone(784, 120*time.Millisecond),
			tone(1047, 300*time.Millisecond),
		), -2)
	}
	return generators.Silence(0)
}

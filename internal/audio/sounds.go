package audio

import (
	"time"

	"github.com/gopxl/beep"
)

// Sound identifies one of the game's effects.
type Sound int

const (
	SoundFire Sound = iota
	SoundCollision
)

func (s Sound) String() string {
	switch s {
	case SoundFire:
		return "fire"
	case SoundCollision:
		return "collision"
	default:
		return "unknown"
	}
}

// Effect lengths
const (
	FireDuration      = 90 * time.Millisecond
	CollisionDuration = 280 * time.Millisecond
)

// Streamer builds a fresh streamer for s at the given rate and volume.
// Streamers are single-use.
func Streamer(s Sound, rate beep.SampleRate, volume float64) beep.Streamer {
	switch s {
	case SoundFire:
		return newVolume(fireSound(rate), volume)
	case SoundCollision:
		return newVolume(collisionSound(rate), volume)
	default:
		return beep.Silence(0)
	}
}

// fireSound is a short descending laser zap.
func fireSound(rate beep.SampleRate) beep.Streamer {
	zap := NewSweep(1400, 500, FireDuration, WaveSquare, rate)
	return newVolume(
		NewEnvelope(zap, FireDuration, 5*time.Millisecond, 60*time.Millisecond, rate),
		0.4,
	)
}

// collisionSound layers a noise burst over a low rumble.
func collisionSound(rate beep.SampleRate) beep.Streamer {
	burst := NewEnvelope(
		NewOscillator(0, CollisionDuration, WaveNoise, rate),
		CollisionDuration, 2*time.Millisecond, 220*time.Millisecond, rate,
	)
	rumble := NewEnvelope(
		NewSweep(110, 55, CollisionDuration, WaveSaw, rate),
		CollisionDuration, 5*time.Millisecond, 200*time.Millisecond, rate,
	)
	return beep.Take(rate.N(CollisionDuration), beep.Mix(
		newVolume(burst, 0.5),
		newVolume(rumble, 0.6),
	))
}

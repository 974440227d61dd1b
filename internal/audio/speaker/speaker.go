// Package speaker plays sound effects on the system audio device.
// It needs cgo and the platform audio libraries; only the local player
// imports it, so the SSH server and the tui package stay pure Go.
package speaker

import (
	"fmt"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gopxl/beep"
	beepspeaker "github.com/gopxl/beep/speaker"

	"github.com/vovakirdan/space-arcade/internal/audio"
	"github.com/vovakirdan/space-arcade/internal/config"
)

// initOnce guards the process-wide output device.
var (
	initOnce sync.Once
	initErr  error
)

// Speaker mixes effects into the system audio device.
type Speaker struct {
	mu     sync.Mutex
	mixer  *beep.Mixer
	rate   beep.SampleRate
	volume float64
	closed bool
}

// NewSpeaker opens the audio device and starts an empty mixer on it.
func NewSpeaker(cfg config.AudioConfig) (*Speaker, error) {
	rate := beep.SampleRate(cfg.SampleRate)
	initOnce.Do(func() {
		initErr = beepspeaker.Init(rate, rate.N(100*time.Millisecond))
	})
	if initErr != nil {
		return nil, fmt.Errorf("%w: %v", audio.ErrNotInitialized, initErr)
	}

	s := &Speaker{
		mixer:  &beep.Mixer{},
		rate:   rate,
		volume: cfg.Volume,
	}
	beepspeaker.Play(s.mixer)
	return s, nil
}

// Play queues snd on the mixer.
func (s *Speaker) Play(snd audio.Sound) {
	st := audio.Streamer(snd, s.rate, s.volume)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	beepspeaker.Lock()
	s.mixer.Add(st)
	beepspeaker.Unlock()
}

// Close silences the mixer. The device stays open for the process lifetime.
func (s *Speaker) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return
	}
	s.closed = true
	beepspeaker.Lock()
	s.mixer.Clear()
	beepspeaker.Unlock()
}

// New returns a Player for cfg. A disabled config or a failed device yields
// audio.Nop; failures are logged, never returned.
func New(cfg config.AudioConfig, logger *log.Logger) audio.Player {
	if !cfg.Enabled {
		return audio.Nop{}
	}
	s, err := NewSpeaker(cfg)
	if err != nil {
		if logger != nil {
			logger.Warn("audio disabled", "err", err)
		}
		return audio.Nop{}
	}
	return s
}

package audio

import (
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/vovakirdan/space-arcade/internal/config"
)

const testRate = beep.SampleRate(44100)

// drain streams s to completion and returns the sample count and peak.
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			peak = max(peak, buf[i][0], -buf[i][0])
		}
		total += n
		if !ok {
			break
		}
		if total > int(testRate)*10 {
			t.Fatal("streamer never ended")
		}
	}
	if err := s.Err(); err != nil {
		t.Errorf("stream error: %v", err)
	}
	return total, peak
}

func TestOscillatorLengthAndRange(t *testing.T) {
	for _, wave := range []Wave{WaveSine, WaveSquare, WaveSaw, WaveNoise} {
		n, peak := drain(t, NewOscillator(440, 50*time.Millisecond, wave, testRate))
		if want := testRate.N(50 * time.Millisecond); n != want {
			t.Errorf("wave %d: %d samples, expected %d", wave, n, want)
		}
		if peak > 1 {
			t.Errorf("wave %d: peak %f out of range", wave, peak)
		}
	}
}

func TestSquareWaveValues(t *testing.T) {
	buf := make([][2]float64, 64)
	n, _ := NewOscillator(220, 10*time.Millisecond, WaveSquare, testRate).Stream(buf)
	for i := 0; i < n; i++ {
		if v := buf[i][0]; v != 1 && v != -1 {
			t.Fatalf("sample %d = %f, expected ±1", i, v)
		}
	}
}

func TestEnvelopeFadesEdges(t *testing.T) {
	d := 20 * time.Millisecond
	env := NewEnvelope(NewOscillator(0, d, WaveSquare, testRate), d, 5*time.Millisecond, 5*time.Millisecond, testRate)

	buf := make([][2]float64, testRate.N(d))
	n, _ := env.Stream(buf)
	if n != len(buf) {
		t.Fatalf("streamed %d of %d samples", n, len(buf))
	}
	if buf[0][0] != 0 {
		t.Errorf("first sample = %f, expected silence at attack start", buf[0][0])
	}
	mid := buf[n/2][0]
	if mid != 1 {
		t.Errorf("sustain sample = %f, expected full level", mid)
	}
	if last := buf[n-1][0]; last <= 0 || last >= mid {
		t.Errorf("last sample = %f, expected fading", last)
	}
}

func TestEffectStreamers(t *testing.T) {
	tests := []struct {
		sound Sound
		want  time.Duration
	}{
		{SoundFire, FireDuration},
		{SoundCollision, CollisionDuration},
	}
	for _, tc := range tests {
		t.Run(tc.sound.String(), func(t *testing.T) {
			n, peak := drain(t, Streamer(tc.sound, testRate, 1))
			if want := testRate.N(tc.want); n != want {
				t.Errorf("%d samples, expected %d", n, want)
			}
			if peak == 0 {
				t.Error("effect is silent")
			}
		})
	}
}

func TestZeroVolumeIsSilent(t *testing.T) {
	_, peak := drain(t, Streamer(SoundCollision, testRate, 0))
	if peak != 0 {
		t.Errorf("peak = %f, expected silence", peak)
	}
}

func TestNewDisabledReturnsNop(t *testing.T) {
	cfg := config.DefaultSpaceConfig().Audio
	cfg.Enabled = false

	p := New(cfg, nil)
	if _, ok := p.(Nop); !ok {
		t.Fatalf("expected Nop player, got %T", p)
	}
	p.Play(SoundFire)
	p.Close()
}

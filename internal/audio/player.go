package audio

import "errors"

// ErrNotInitialized is returned when the output device could not be opened.
var ErrNotInitialized = errors.New("audio: not initialized")

// Player plays sound effects. Implementations never block the caller.
type Player interface {
	Play(s Sound)
	Close()
}

// Nop discards every sound.
type Nop struct{}

func (Nop) Play(Sound) {}
func (Nop) Close()     {}

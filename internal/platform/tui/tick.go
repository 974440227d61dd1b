// Package tui runs the space shooter inside Bubble Tea, locally or over SSH.
// The Bubble Tea update loop is the only goroutine that touches game state.
package tui

import (
	"sync/atomic"
	"time"

	tea "github.com/charmbracelet/bubbletea"
)

// TickMsg is sent to trigger a game simulation tick. Gen names the game
// model whose tick chain produced it; other models ignore it.
type TickMsg struct {
	Time time.Time
	Gen  uint64
}

// lastGen hands out tick generations, one per game model.
var lastGen atomic.Uint64

func nextGen() uint64 {
	return lastGen.Add(1)
}

// tickCmd schedules the next tick of generation gen after interval.
func tickCmd(interval time.Duration, gen uint64) tea.Cmd {
	return tea.Tick(interval, func(t time.Time) tea.Msg {
		return TickMsg{Time: t, Gen: gen}
	})
}

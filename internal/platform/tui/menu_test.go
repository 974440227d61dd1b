package tui

import (
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/space-arcade/internal/audio"
	"github.com/vovakirdan/space-arcade/internal/config"
	"github.com/vovakirdan/space-arcade/internal/core"
	"github.com/vovakirdan/space-arcade/internal/storage"
)

func TestMenuNavigation(t *testing.T) {
	r := lipgloss.NewRenderer(io.Discard)

	tests := []struct {
		name string
		keys []tea.KeyMsg
		want MenuChoice
	}{
		{"nothing chosen", nil, ChoiceNone},
		{"play", []tea.KeyMsg{{Type: tea.KeyEnter}}, ChoicePlay},
		{"scores", []tea.KeyMsg{{Type: tea.KeyDown}, {Type: tea.KeyEnter}}, ChoiceScores},
		{"cursor stops at the bottom", []tea.KeyMsg{{Type: tea.KeyDown}, {Type: tea.KeyDown}, {Type: tea.KeyDown}, {Type: tea.KeyEnter}}, ChoiceQuit},
		{"cursor stops at the top", []tea.KeyMsg{{Type: tea.KeyUp}, {Type: tea.KeyEnter}}, ChoicePlay},
		{"q quits", []tea.KeyMsg{runeKey("q")}, ChoiceQuit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var m tea.Model = NewMenuModel(nil, r, 80, 24)
			for _, k := range tt.keys {
				m, _ = m.Update(k)
			}
			if got := m.(MenuModel).Chosen(); got != tt.want {
				t.Errorf("Chosen() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestScoreRows(t *testing.T) {
	created := time.Date(2026, 3, 4, 15, 30, 0, 0, time.UTC)
	rows := scoreRows([]storage.Run{
		{Player: "ann", Score: 120, Health: 40, HardLevel: true, Reason: "timeout", CreatedAt: created},
		{Score: 30, Health: 0, Reason: "health", CreatedAt: created},
	})

	if len(rows) != 2 {
		t.Fatalf("expected 2 rows, got %d", len(rows))
	}
	want := []string{"#1", "ann", "120", "40", "yes", "timeout", "Mar 04 15:30"}
	for i, cell := range want {
		if rows[0][i] != cell {
			t.Errorf("row 0 col %d = %q, want %q", i, rows[0][i], cell)
		}
	}
	if rows[1][0] != "#2" || rows[1][1] != "-" || rows[1][4] != "" {
		t.Errorf("unexpected second row: %v", rows[1])
	}
}

func TestScoreboardWithoutStore(t *testing.T) {
	m := NewScoreboardModel(nil, lipgloss.NewRenderer(io.Discard), 80, 24)
	if !strings.Contains(m.View(), "unavailable") {
		t.Error("scoreboard should explain that scores are unavailable")
	}

	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	if sb := next.(ScoreboardModel); !sb.IsGoingBack() || sb.IsQuitting() {
		t.Error("esc should go back without quitting")
	}
}

func TestSessionFlow(t *testing.T) {
	r := lipgloss.NewRenderer(io.Discard)
	opts := Options{
		Config:  config.DefaultSpaceConfig(),
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 25, Seed: 3},
		Audio:   audio.Nop{},
		InMenu:  true,
	}

	var m tea.Model = NewSessionModel(opts, r)
	step := func(msg tea.Msg) tea.Cmd {
		t.Helper()
		var cmd tea.Cmd
		m, cmd = m.Update(msg)
		return cmd
	}

	step(tea.KeyMsg{Type: tea.KeyEnter})
	if m.(SessionModel).view != viewGame {
		t.Fatal("enter on Play should start a game")
	}
	if !strings.Contains(m.View(), "Score: 0") {
		t.Error("game view should show the HUD")
	}

	step(tea.KeyMsg{Type: tea.KeyEsc})
	if m.(SessionModel).view != viewMenu {
		t.Fatal("esc should return to the menu")
	}

	// A tick still in flight from the left game is dropped
	if cmd := step(TickMsg{Time: time.Now()}); cmd != nil {
		t.Error("stale tick should not schedule another")
	}

	step(tea.KeyMsg{Type: tea.KeyDown})
	step(tea.KeyMsg{Type: tea.KeyEnter})
	if m.(SessionModel).view != viewScores {
		t.Fatal("High Scores should open the scoreboard")
	}

	step(tea.KeyMsg{Type: tea.KeyEsc})
	if m.(SessionModel).view != viewMenu {
		t.Fatal("esc should leave the scoreboard")
	}

	if cmd := step(runeKey("q")); cmd == nil {
		t.Error("q in the menu should quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestSessionDropsTicksFromLeftGame(t *testing.T) {
	opts := Options{
		Config:  config.DefaultSpaceConfig(),
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 25, Seed: 3},
		InMenu:  true,
	}
	var m tea.Model = NewSessionModel(opts, lipgloss.NewRenderer(io.Discard))

	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	first := m.(SessionModel).game.gen
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEsc})
	m, _ = m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	second := m.(SessionModel).game.gen

	// The first game's tick arrives after the second game started
	m, cmd := m.Update(TickMsg{Time: time.Now(), Gen: first})
	if cmd != nil {
		t.Error("stale tick must not start a second tick chain")
	}
	if got := m.(SessionModel).game.Snapshot().Tick; got != 0 {
		t.Errorf("stale tick advanced the new game to tick %d", got)
	}

	m, cmd = m.Update(TickMsg{Time: time.Now(), Gen: second})
	if cmd == nil || m.(SessionModel).game.Snapshot().Tick != 1 {
		t.Error("own tick should advance the game and schedule the next one")
	}
}

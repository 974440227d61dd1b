package tui

import (
	"io"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/benbjohnson/clock"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/space-arcade/internal/audio"
	"github.com/vovakirdan/space-arcade/internal/config"
	"github.com/vovakirdan/space-arcade/internal/core"
	"github.com/vovakirdan/space-arcade/internal/games/space"
	"github.com/vovakirdan/space-arcade/internal/storage"
)

type recordingPlayer struct {
	played []audio.Sound
}

func (p *recordingPlayer) Play(s audio.Sound) { p.played = append(p.played, s) }
func (p *recordingPlayer) Close()             {}

func newTestModel(t *testing.T, store *storage.Store) (GameModel, *clock.Mock, *recordingPlayer) {
	t.Helper()
	mock := clock.NewMock()
	rec := &recordingPlayer{}
	palette := NewPalette(lipgloss.NewRenderer(io.Discard))
	m := NewGameModel(Options{
		Config:  config.DefaultSpaceConfig(),
		Runtime: core.RuntimeConfig{ScreenW: 80, ScreenH: 25, Seed: 7},
		Store:   store,
		Audio:   rec,
		Clock:   mock,
		Palette: &palette,
		Player:  "tester",
	})
	return m, mock, rec
}

func update(t *testing.T, m GameModel, msg tea.Msg) (GameModel, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	return next.(GameModel), cmd
}

func TestGameModelMovesShip(t *testing.T) {
	m, _, _ := newTestModel(t, nil)
	x := m.Snapshot().Player.X

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	if got := m.Snapshot().Player.X; got != x-10 {
		t.Errorf("x after left = %d, want %d", got, x-10)
	}
	m, _ = update(t, m, runeKey("d"))
	if got := m.Snapshot().Player.X; got != x {
		t.Errorf("x after right = %d, want %d", got, x)
	}
}

func TestGameModelFirePlaysSound(t *testing.T) {
	m, _, rec := newTestModel(t, nil)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if !m.Snapshot().ProjectileVisible {
		t.Fatal("projectile should be visible after firing")
	}
	if len(rec.played) != 1 || rec.played[0] != audio.SoundFire {
		t.Errorf("played = %v, want one fire sound", rec.played)
	}

	// Still cooling down
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if len(rec.played) != 1 {
		t.Errorf("second shot during cooldown played %v", rec.played)
	}
}

func TestGameModelShield(t *testing.T) {
	m, _, _ := newTestModel(t, nil)

	m, _ = update(t, m, runeKey("x"))
	if !m.Snapshot().ShieldActive {
		t.Error("shield should be active")
	}
}

func TestGameModelTickSchedulesNext(t *testing.T) {
	m, _, _ := newTestModel(t, nil)

	m, cmd := update(t, m, TickMsg{Time: time.Now(), Gen: m.gen})
	if cmd == nil {
		t.Error("tick should schedule the next tick")
	}
	if got := m.Snapshot().Tick; got != 1 {
		t.Errorf("tick = %d, want 1", got)
	}
}

func TestGameModelTimeoutRecordsRun(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "scores.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer store.Close()

	m, mock, _ := newTestModel(t, store)
	mock.Add(61 * time.Second)

	m, _ = update(t, m, TickMsg{Time: mock.Now(), Gen: m.gen})
	snap := m.Snapshot()
	if !snap.GameOver || snap.Reason != space.EndTimeout {
		t.Fatalf("expected timeout game over, got state=%s reason=%s", snap.State, snap.Reason)
	}
	if !strings.Contains(m.View(), "Game Over!") {
		t.Error("view should show the game over banner")
	}

	// Further ticks must not record the run again
	m, _ = update(t, m, TickMsg{Time: mock.Now(), Gen: m.gen})

	runs, err := store.TopRuns(10)
	if err != nil {
		t.Fatalf("TopRuns: %v", err)
	}
	if len(runs) != 1 {
		t.Fatalf("expected 1 run, got %d", len(runs))
	}
	if runs[0].Player != "tester" || runs[0].Reason != "timeout" || runs[0].Health != 100 {
		t.Errorf("unexpected run: %+v", runs[0])
	}
}

func TestGameModelRestart(t *testing.T) {
	m, mock, _ := newTestModel(t, nil)

	// Restart is ignored while running
	m, _ = update(t, m, runeKey("r"))
	m, _ = update(t, m, TickMsg{Time: mock.Now(), Gen: m.gen})
	if got := m.Snapshot().Tick; got != 1 {
		t.Fatalf("restart while running reset the game, tick = %d", got)
	}

	mock.Add(61 * time.Second)
	m, _ = update(t, m, TickMsg{Time: mock.Now(), Gen: m.gen})
	if !m.Snapshot().GameOver {
		t.Fatal("expected game over")
	}

	m, _ = update(t, m, runeKey("r"))
	snap := m.Snapshot()
	if snap.GameOver || snap.Tick != 0 || snap.TimeLeft != 60 {
		t.Errorf("restart should start a fresh game: %+v", snap)
	}
}

func TestGameModelBackAndQuit(t *testing.T) {
	m, _, _ := newTestModel(t, nil)

	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if m.BackToMenu() {
		t.Error("back should be ignored outside the menu")
	}

	m.opts.InMenu = true
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyEsc})
	if !m.BackToMenu() {
		t.Error("back should return to the menu")
	}

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	if !m.IsQuitting() || cmd == nil {
		t.Error("ctrl+c should quit")
	}
	if m.View() != "" {
		t.Error("view should be empty after quitting")
	}
}

func TestGameModelViewHasHUD(t *testing.T) {
	m, _, _ := newTestModel(t, nil)

	view := m.View()
	for _, want := range []string{"Score: 0", "Health: 100", "Time Left: 60s"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestGameModelResizeKeepsGame(t *testing.T) {
	m, _, _ := newTestModel(t, nil)
	m, _ = update(t, m, tea.KeyMsg{Type: tea.KeyLeft})
	before := m.Snapshot()

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 120, Height: 40})
	if m.screen.Width() != 120 || m.screen.Height() != 39 {
		t.Errorf("screen = %dx%d, want 120x39", m.screen.Width(), m.screen.Height())
	}
	if m.Snapshot().Player != before.Player {
		t.Error("resize should not touch the game")
	}
}

func TestGameModelIgnoresForeignTicks(t *testing.T) {
	m, mock, _ := newTestModel(t, nil)
	other, _, _ := newTestModel(t, nil)
	if other.gen == m.gen {
		t.Fatal("each game model should get its own generation")
	}

	m, cmd := update(t, m, TickMsg{Time: mock.Now(), Gen: other.gen})
	if cmd != nil || m.Snapshot().Tick != 0 {
		t.Error("tick from another model should be ignored")
	}
}

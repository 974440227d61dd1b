package tui

import (
	"fmt"
	"io"
	"math/rand"
	"os"
	"path/filepath"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/space-arcade/internal/audio"
	"github.com/vovakirdan/space-arcade/internal/config"
	"github.com/vovakirdan/space-arcade/internal/core"
	"github.com/vovakirdan/space-arcade/internal/games/space"
	"github.com/vovakirdan/space-arcade/internal/storage"
)

// Options configures a game model.
type Options struct {
	Config  config.SpaceConfig
	Runtime core.RuntimeConfig
	Store   *storage.Store // nil disables high scores
	Audio   audio.Player   // nil plays nothing
	Logger  *log.Logger    // nil discards
	Clock   clock.Clock    // nil uses the wall clock
	Palette *Palette       // nil uses the default renderer
	Player  string         // name recorded with each run
	InMenu  bool           // esc/b returns to a menu instead of being ignored
}

// GameModel is the Bubble Tea model that drives one space game.
type GameModel struct {
	opts     Options
	game     *space.Game
	renderer *space.Renderer
	screen   *core.Screen
	palette  Palette
	keys     GameKeyMap
	help     help.Model
	runs     int64 // games started, mixed into the seed on restart
	gen      uint64

	hardLogged bool
	saved      bool
	quitting   bool
	backToMenu bool
}

// NewGameModel creates a game model and starts the first run.
func NewGameModel(opts Options) GameModel {
	if opts.Runtime.Seed == 0 {
		opts.Runtime.Seed = time.Now().UnixNano()
	}
	if opts.Runtime.TickInterval <= 0 {
		opts.Runtime.TickInterval = opts.Config.Tick
	}
	if opts.Runtime.TickInterval <= 0 {
		opts.Runtime.TickInterval = core.DefaultTickInterval
	}
	if opts.Audio == nil {
		opts.Audio = audio.Nop{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Clock == nil {
		opts.Clock = clock.New()
	}
	palette := NewPalette(nil)
	if opts.Palette != nil {
		palette = *opts.Palette
	}

	m := GameModel{
		opts:    opts,
		screen:  core.NewScreen(opts.Runtime.ScreenW, max(opts.Runtime.ScreenH-1, 1)),
		palette: palette,
		keys:    DefaultGameKeyMap(),
		help:    help.New(),
		gen:     nextGen(),
	}
	m.help.Width = opts.Runtime.ScreenW
	m.start()
	return m
}

// start begins a fresh run. The previous game, if any, is discarded.
func (m *GameModel) start() {
	seed := m.opts.Runtime.Seed + m.runs
	m.runs++

	rng := rand.New(rand.NewSource(seed))
	m.game = space.New(m.opts.Config, m.opts.Clock, rng)
	m.renderer = space.NewRenderer(seed)
	m.hardLogged = false
	m.saved = false

	m.opts.Logger.Debug("game started", "seed", seed, "player", m.opts.Player)
}

// Init starts the tick loop.
func (m GameModel) Init() tea.Cmd {
	return tickCmd(m.opts.Runtime.TickInterval, m.gen)
}

// Update handles messages and updates the model state.
func (m GameModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		// The playfield is in pixels, so a resize only changes the view
		m.opts.Runtime.ScreenW = msg.Width
		m.opts.Runtime.ScreenH = msg.Height
		m.screen.Resize(msg.Width, max(msg.Height-1, 1))
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		if msg.Gen != m.gen {
			return m, nil
		}
		return m.handleTick()
	}

	return m, nil
}

func (m GameModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Screenshot):
		m.saveScreenshot()
		return m, nil

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil

	case key.Matches(msg, m.keys.Back):
		if m.opts.InMenu {
			m.backToMenu = true
		}
		return m, nil

	case key.Matches(msg, m.keys.Restart):
		if m.game.IsGameOver() {
			m.start()
		}
		return m, nil
	}

	if ev, ok := m.keys.EventFor(msg); ok {
		m.game.HandleInput(ev)
		m.playCues()
	}
	return m, nil
}

// handleTick advances the simulation by one step.
func (m GameModel) handleTick() (tea.Model, tea.Cmd) {
	m.game.Advance()
	m.playCues()

	snap := m.game.Snapshot()
	if snap.HardLevel && !m.hardLogged {
		m.opts.Logger.Info("hard level reached", "score", snap.Score, "tick", snap.Tick)
		m.hardLogged = true
	}
	if snap.GameOver && !m.saved {
		m.finish(snap)
	}

	return m, tickCmd(m.opts.Runtime.TickInterval, m.gen)
}

// playCues forwards pending audio cues to the player.
func (m *GameModel) playCues() {
	for _, c := range m.game.DrainCues() {
		m.opts.Audio.Play(soundFor(c))
	}
}

func soundFor(c space.Cue) audio.Sound {
	if c == space.CueFire {
		return audio.SoundFire
	}
	return audio.SoundCollision
}

// finish logs the result and records the run, once per game.
func (m *GameModel) finish(snap space.Snapshot) {
	m.saved = true
	m.opts.Logger.Info("game over",
		"reason", snap.Reason,
		"score", snap.Score,
		"health", snap.Health,
		"hard", snap.HardLevel,
		"ticks", snap.Tick,
	)

	if m.opts.Store == nil {
		return
	}
	_, err := m.opts.Store.SaveRun(storage.Run{
		Player:    m.opts.Player,
		Score:     snap.Score,
		Health:    snap.Health,
		HardLevel: snap.HardLevel,
		Reason:    string(snap.Reason),
		Ticks:     snap.Tick,
	})
	if err != nil {
		m.opts.Logger.Warn("could not save run", "err", err)
	}
}

// saveScreenshot writes the current frame as plain text.
func (m *GameModel) saveScreenshot() {
	m.renderer.Render(m.game.Snapshot(), m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.opts.Logger.Warn("screenshot failed", "err", err)
		return
	}
	dir := filepath.Join(home, ".spacegame", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.opts.Logger.Warn("screenshot failed", "err", err)
		return
	}

	name := fmt.Sprintf("space_%s.txt", m.opts.Clock.Now().Format("20060102_150405"))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.opts.Logger.Warn("screenshot failed", "err", err)
		return
	}
	m.opts.Logger.Info("screenshot saved", "path", path)
}

// View renders the playfield and a help line.
func (m GameModel) View() string {
	if m.quitting {
		return ""
	}

	m.renderer.Render(m.game.Snapshot(), m.screen)
	var hint string
	if m.game.IsGameOver() {
		hint = m.help.ShortHelpView([]key.Binding{m.keys.Restart, m.keys.Back, m.keys.Quit})
	} else {
		hint = m.help.View(m.keys)
	}
	return m.palette.RenderScreen(m.screen) + "\n" + hint
}

// Snapshot returns the current game state.
func (m GameModel) Snapshot() space.Snapshot {
	return m.game.Snapshot()
}

// IsQuitting returns true if user requested to quit entirely.
func (m GameModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m GameModel) BackToMenu() bool {
	return m.backToMenu
}

// Run starts a local game in the alternate screen.
func Run(opts Options) error {
	p := tea.NewProgram(NewGameModel(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

package space

import (
	"math/rand"

	"github.com/benbjohnson/clock"

	"github.com/vovakirdan/space-arcade/internal/config"
	"github.com/vovakirdan/space-arcade/internal/core"
)

// Game states
const (
	StateRunning  = "running"
	StateGameOver = "gameover" // terminal
)

// EndReason tells why a run finished.
type EndReason string

const (
	EndNone    EndReason = ""
	EndHealth  EndReason = "health"
	EndTimeout EndReason = "timeout"
)

// Event is a discrete player command.
type Event int

const (
	EventMoveLeft Event = iota
	EventMoveRight
	EventFire
	EventActivateShield
)

func (e Event) String() string {
	switch e {
	case EventMoveLeft:
		return "left"
	case EventMoveRight:
		return "right"
	case EventFire:
		return "fire"
	case EventActivateShield:
		return "shield"
	default:
		return "unknown"
	}
}

// Cue is an audio trigger raised by the simulation.
type Cue int

const (
	CueFire Cue = iota
	CueCollision
)

func (c Cue) String() string {
	switch c {
	case CueFire:
		return "fire"
	case CueCollision:
		return "collision"
	default:
		return "unknown"
	}
}

// Game is the authoritative simulation of one run.
// All methods must be called from a single goroutine.
type Game struct {
	cfg   config.SpaceConfig
	clock clock.Clock

	// Entities and the systems that act on them
	store      Store
	spawner    *Spawner
	mover      *Mover
	resolver   *Resolver
	escalation *config.Escalation

	// Timed effects
	timers   timerQueue
	cooldown *Cooldown
	shield   Shield
	gameTime GameClock

	// Process state
	vitals   Vitals
	state    string
	reason   EndReason
	timeLeft int    // whole seconds, refreshed every tick
	tick     uint64 // ticks advanced while running

	cues []Cue
}

// New creates a running game. The clock and random source are injected so
// runs can be replayed in tests.
func New(cfg config.SpaceConfig, clk clock.Clock, rng Rand) *Game {
	g := &Game{
		cfg:        cfg,
		clock:      clk,
		spawner:    NewSpawner(cfg, rng),
		mover:      NewMover(cfg),
		resolver:   NewResolver(cfg),
		escalation: config.NewEscalation(cfg),
		shield:     NewShield(cfg.Rules.ShieldDuration),
		state:      StateRunning,
	}
	g.cooldown = NewCooldown(cfg.Projectile.Cooldown, &g.timers)

	now := clk.Now()
	g.gameTime = NewGameClock(now, cfg.Rules.GameDuration)
	g.timeLeft = g.gameTime.SecondsLeft(now)
	g.vitals = Vitals{Health: cfg.Rules.StartHealth}

	field := cfg.Playfield
	ship := cfg.Player
	g.store.Player = Player{
		Size:  ship.Size,
		Speed: ship.Speed,
	}
	g.store.Player.Pos.X = field.W/2 - ship.Size.W/2
	g.store.Player.Pos.Y = field.H - ship.Size.H - ship.BottomMargin

	g.store.Projectile = Projectile{
		Pos:   g.store.Player.Nose(cfg.Projectile.Size),
		Size:  cfg.Projectile.Size,
		Speed: cfg.Projectile.Speed,
	}
	g.store.Stars = g.spawner.Stars()

	return g
}

// NewSeeded creates a game on the wall clock with a seeded random source.
func NewSeeded(cfg config.SpaceConfig, seed int64) *Game {
	return New(cfg, clock.New(), rand.New(rand.NewSource(seed)))
}

// HandleInput applies one player command. Ignored after game over.
func (g *Game) HandleInput(ev Event) {
	if g.state == StateGameOver {
		return
	}
	now := g.clock.Now()
	g.timers.RunDue(now)

	p := &g.store.Player
	switch ev {
	case EventMoveLeft:
		p.Pos.X = g.clampShipX(p.Pos.X - p.Speed)
	case EventMoveRight:
		p.Pos.X = g.clampShipX(p.Pos.X + p.Speed)
	case EventFire:
		if !g.cooldown.TryFire(now) {
			return
		}
		g.store.Projectile.Pos = p.Nose(g.store.Projectile.Size)
		g.store.Projectile.Visible = true
		g.cues = append(g.cues, CueFire)
	case EventActivateShield:
		g.shield.Activate(now)
	}
}

func (g *Game) clampShipX(x int) int {
	return core.Clamp(x, 0, g.cfg.Playfield.W-g.store.Player.Size.W)
}

// Advance runs one tick: spawn, move, collide, then the level latch and
// the timeout check. No-op after game over.
func (g *Game) Advance() {
	if g.state == StateGameOver {
		return
	}
	now := g.clock.Now()
	g.timers.RunDue(now)
	g.tick++

	g.spawner.Spawn(&g.store, g.escalation.ObstacleChance())
	g.mover.Move(&g.store, g.escalation.ObstacleSpeed())

	hits := g.resolver.Resolve(&g.store, g.shield.Active(now), &g.vitals)
	for range hits.Collisions {
		g.cues = append(g.cues, CueCollision)
	}
	g.timeLeft = g.gameTime.SecondsLeft(now)
	if hits.Fatal {
		g.end(EndHealth)
		return
	}

	g.escalation.Update(g.vitals.Score)

	if g.gameTime.Expired(now) {
		g.end(EndTimeout)
	}
}

func (g *Game) end(reason EndReason) {
	g.state = StateGameOver
	g.reason = reason
}

// DrainCues returns and clears the audio cues raised since the last call.
func (g *Game) DrainCues() []Cue {
	cues := g.cues
	g.cues = nil
	return cues
}

// State returns the current state.
func (g *Game) State() string {
	return g.state
}

// IsGameOver reports whether the run has finished.
func (g *Game) IsGameOver() bool {
	return g.state == StateGameOver
}

// Score returns the current score.
func (g *Game) Score() int {
	return g.vitals.Score
}

// Config returns the configuration the game was built with.
func (g *Game) Config() config.SpaceConfig {
	return g.cfg
}

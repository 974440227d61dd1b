package space

import (
	"fmt"
	"math/rand"

	"github.com/vovakirdan/space-arcade/internal/core"
)

// Glyphs
const (
	ShipGlyph       = '▲'
	ShipBodyGlyph   = '█'
	ProjectileGlyph = '|'
	PowerUpGlyph    = '+'
	StarGlyph       = '·'
)

// ObstacleGlyphs are the sprite variants an obstacle is drawn with.
var ObstacleGlyphs = []rune{'▓', '▒', '█', '◆'}

const (
	minScreenW = 30
	minScreenH = 12
	hudHeight  = 1
)

// Renderer turns snapshots into screen cells. Its random source only picks
// cosmetic variations and never touches simulation state.
type Renderer struct {
	rng *rand.Rand
}

// NewRenderer creates a renderer with its own seeded source.
func NewRenderer(seed int64) *Renderer {
	return &Renderer{rng: rand.New(rand.NewSource(seed))}
}

// viewport maps playfield pixels to screen cells.
type viewport struct {
	inner core.Rect
	field core.Size
}

func (v viewport) cellX(px int) int {
	return v.inner.X + px*v.inner.W/v.field.W
}

func (v viewport) cellY(py int) int {
	return v.inner.Y + py*v.inner.H/v.field.H
}

// rect scales a pixel rectangle, keeping at least one cell and clipping to
// the inner area.
func (v viewport) rect(r core.Rect) core.Rect {
	x0, y0 := v.cellX(r.X), v.cellY(r.Y)
	x1, y1 := v.cellX(r.Right()), v.cellY(r.Bottom())
	x1 = max(x1, x0+1)
	y1 = max(y1, y0+1)

	x0 = max(x0, v.inner.X)
	y0 = max(y0, v.inner.Y)
	x1 = min(x1, v.inner.Right())
	y1 = min(y1, v.inner.Bottom())
	return core.NewRect(x0, y0, x1-x0, y1-y0)
}

// Render draws snap onto dst.
func (r *Renderer) Render(snap Snapshot, dst *core.Screen) {
	dst.Clear()

	w, h := dst.Width(), dst.Height()
	if w < minScreenW || h < minScreenH {
		dst.DrawTextCentered(h/2, "Window too small", core.ColorYellow)
		dst.DrawTextCentered(h/2+1, "Please resize terminal", core.ColorGray)
		return
	}

	frame := core.NewRect(0, hudHeight, w, h-hudHeight)
	dst.DrawBox(frame, core.ColorGray)
	vp := viewport{
		inner: core.NewRect(frame.X+1, frame.Y+1, frame.W-2, frame.H-2),
		field: snap.Field,
	}

	// Stars sit behind everything else; one tint per frame
	starColor := core.StarColors[r.rng.Intn(len(core.StarColors))]
	for _, s := range snap.Stars {
		x, y := vp.cellX(s.X), vp.cellY(s.Y)
		if vp.inner.Contains(x, y) {
			dst.SetColored(x, y, StarGlyph, starColor)
		}
	}

	for _, p := range snap.PowerUps {
		dst.DrawRect(vp.rect(core.RectAt(p, snap.PowerUpSize)), PowerUpGlyph, core.ColorBrightGreen)
	}

	obstacleColor := core.ColorRed
	if snap.HardLevel {
		obstacleColor = core.ColorBrightRed
	}
	for _, o := range snap.Obstacles {
		glyph := ObstacleGlyphs[r.rng.Intn(len(ObstacleGlyphs))]
		dst.DrawRect(vp.rect(core.RectAt(o, snap.ObstacleSize)), glyph, obstacleColor)
	}

	if snap.ProjectileVisible {
		dst.DrawRect(vp.rect(snap.Projectile), ProjectileGlyph, core.ColorBrightYellow)
	}

	r.renderShip(dst, vp, snap)
	r.renderHUD(dst, snap)

	if snap.GameOver {
		r.renderGameOver(dst, snap)
	}
}

func (r *Renderer) renderShip(dst *core.Screen, vp viewport, snap Snapshot) {
	ship := vp.rect(snap.Player)
	dst.DrawRect(ship, ShipBodyGlyph, core.ColorBrightBlue)
	dst.SetColored(ship.Center().X, ship.Y, ShipGlyph, core.ColorBrightWhite)

	if !snap.ShieldActive {
		return
	}
	// The ring never overwrites the playfield frame
	x0 := max(ship.X-1, vp.inner.X)
	y0 := max(ship.Y-1, vp.inner.Y)
	x1 := min(ship.Right()+1, vp.inner.Right())
	y1 := min(ship.Bottom()+1, vp.inner.Bottom())
	dst.DrawBox(core.NewRect(x0, y0, x1-x0, y1-y0), core.ColorBrightCyan)
}

func (r *Renderer) renderHUD(dst *core.Screen, snap Snapshot) {
	score := fmt.Sprintf("Score: %d", snap.Score)
	scoreColor := core.ColorBrightWhite
	if snap.HardLevel {
		scoreColor = core.ColorBrightRed
	}
	dst.DrawTextColored(1, 0, score, scoreColor)

	x := len(score) + 3
	health := fmt.Sprintf("Health: %d", snap.Health)
	healthColor := core.ColorBrightGreen
	switch {
	case snap.Health <= 20:
		healthColor = core.ColorBrightRed
	case snap.Health <= 50:
		healthColor = core.ColorYellow
	}
	dst.DrawTextColored(x, 0, health, healthColor)
	x += len(health) + 3

	if snap.ShieldActive {
		dst.DrawTextColored(x, 0, fmt.Sprintf("Shield %.1fs", snap.ShieldLeft.Seconds()), core.ColorBrightCyan)
	}

	timeLeft := fmt.Sprintf("Time Left: %ds", snap.TimeLeft)
	dst.DrawTextColored(dst.Width()-len(timeLeft)-1, 0, timeLeft, core.ColorBrightWhite)
}

func (r *Renderer) renderGameOver(dst *core.Screen, snap Snapshot) {
	lines := []string{"Game Over!", fmt.Sprintf("Final score: %d", snap.Score)}
	switch snap.Reason {
	case EndHealth:
		lines = append(lines, "Your ship was destroyed")
	case EndTimeout:
		lines = append(lines, "Time is up")
	}

	boxW := 0
	for _, l := range lines {
		boxW = max(boxW, len([]rune(l)))
	}
	boxW += 4
	boxH := len(lines) + 2
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorBrightWhite)
	for i, l := range lines {
		c := core.ColorWhite
		if i == 0 {
			c = core.ColorBrightRed
		}
		dst.DrawTextCentered(box.Y+1+i, l, c)
	}
}

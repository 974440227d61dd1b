package space

import (
	"github.com/vovakirdan/space-arcade/internal/core"
)

// Player is the ship. Only input handling moves it.
type Player struct {
	Pos   core.Point
	Size  core.Size
	Speed int
}

// Rect returns the ship's collision rectangle.
func (p Player) Rect() core.Rect {
	return core.RectAt(p.Pos, p.Size)
}

// Nose returns where a projectile of size s leaves the ship:
// horizontally centered, top edge level with the ship's top.
func (p Player) Nose(s core.Size) core.Point {
	return core.Point{X: p.Pos.X + p.Size.W/2 - s.W/2, Y: p.Pos.Y}
}

// Projectile is the single shot. It is never destroyed, only hidden.
type Projectile struct {
	Pos     core.Point
	Size    core.Size
	Speed   int
	Visible bool
}

// Rect returns the projectile's collision rectangle.
func (p Projectile) Rect() core.Rect {
	return core.RectAt(p.Pos, p.Size)
}

// Store holds every entity of a running game.
// Obstacles, power-ups and stars are unordered bags kept in insertion order
// so that runs with the same seed are reproducible.
type Store struct {
	Player     Player
	Projectile Projectile
	Obstacles  []core.Point
	PowerUps   []core.Point
	Stars      []core.Point
}

// visibleProjectiles returns 0 or 1.
func (s *Store) visibleProjectiles() int {
	if s.Projectile.Visible {
		return 1
	}
	return 0
}

// removeAt deletes pts[i] keeping the order of the remaining points.
func removeAt(pts []core.Point, i int) []core.Point {
	return append(pts[:i], pts[i+1:]...)
}

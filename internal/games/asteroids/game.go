// Package asteroids implements the Asteroids simulation.
// The player steers a ship around a wrapped plane and shoots drifting rocks.
// Game is pure state with no drawing dependencies; Session adapts it to a
// draw.Surface for hosts.
package asteroids

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// ErrInvalidBounds is returned when the viewport has no usable area.
var ErrInvalidBounds = errors.New("asteroids: world bounds must be positive")

// Result summarises one tick.
type Result struct {
	Destroyed int    // Asteroids destroyed by bullets this tick
	Pruned    int    // Bullets removed for leaving the world
	Score     uint64 // Score after the tick
}

// Game owns the ship, the asteroids, the bullets and the score.
// It is not safe for concurrent use; hosts drive it from a single loop.
type Game struct {
	view   core.Viewport
	rng    Source
	rules  Rules
	bounds core.Bounds // last valid viewport size

	player    Player
	asteroids []Asteroid
	bullets   []Bullet
	score     uint64
	tick      uint64
}

// New creates a game sized to the viewport: the ship at the center, the
// configured number of asteroids at random positions, no bullets, score 0.
// A nil rng falls back to a time-seeded generator.
func New(view core.Viewport, rng Source, rules Rules) (*Game, error) {
	if view == nil {
		return nil, fmt.Errorf("%w: no viewport", ErrInvalidBounds)
	}
	if err := rules.Validate(); err != nil {
		return nil, err
	}

	w, h := view.Size()
	bounds := core.Bounds{Width: w, Height: h}
	if !bounds.Valid() {
		return nil, fmt.Errorf("%w: got %vx%v", ErrInvalidBounds, w, h)
	}

	if rng == nil {
		rng = NewSource(0)
	}

	g := &Game{
		view:      view,
		rng:       rng,
		rules:     rules,
		bounds:    bounds,
		player:    NewPlayer(bounds.Center(), rules.Ship),
		asteroids: make([]Asteroid, 0, rules.AsteroidCount),
		bullets:   make([]Bullet, 0, 16),
	}

	for range rules.AsteroidCount {
		x := rng.Float64() * bounds.Width
		y := rng.Float64() * bounds.Height
		g.asteroids = append(g.asteroids, NewAsteroid(x, y, rng, rules.Rock))
	}

	return g, nil
}

// Update advances the simulation by one tick: ship, bullets, asteroids,
// off-world bullet pruning, then the collision sweep.
func (g *Game) Update() Result {
	bounds := g.refreshBounds()

	g.player.Update(bounds)
	for i := range g.bullets {
		g.bullets[i].Update()
	}
	for i := range g.asteroids {
		g.asteroids[i].Update(bounds)
	}

	pruned := g.pruneBullets(bounds)
	destroyed := g.resolveCollisions()
	g.tick++

	return Result{
		Destroyed: destroyed,
		Pruned:    pruned,
		Score:     g.score,
	}
}

// refreshBounds reads the viewport. A non-positive size keeps the last valid bounds.
func (g *Game) refreshBounds() core.Bounds {
	w, h := g.view.Size()
	if b := (core.Bounds{Width: w, Height: h}); b.Valid() {
		g.bounds = b
	}
	return g.bounds
}

// pruneBullets drops bullets outside the world and returns how many went.
func (g *Game) pruneBullets(bounds core.Bounds) int {
	kept := g.bullets[:0]
	for _, b := range g.bullets {
		if b.InBounds(bounds) {
			kept = append(kept, b)
		}
	}
	pruned := len(g.bullets) - len(kept)
	clear(g.bullets[len(kept):])
	g.bullets = kept
	return pruned
}

// Shoot fires a bullet from the ship immediately.
func (g *Game) Shoot() {
	g.bullets = append(g.bullets, g.player.Shoot())
}

// RotateLeft turns the ship counter-clockwise by the turn rate.
func (g *Game) RotateLeft() {
	g.player.Rotate(-g.rules.TurnRate)
}

// RotateRight turns the ship clockwise by the turn rate.
func (g *Game) RotateRight() {
	g.player.Rotate(g.rules.TurnRate)
}

// Thrust accelerates the ship along its heading.
func (g *Game) Thrust() {
	g.player.Thrust()
}

// Do runs one ship command immediately. It reports whether the action was a
// ship command; host actions such as pause or quit are ignored.
func (g *Game) Do(a core.Action) bool {
	switch a {
	case core.ActionRotateLeft:
		g.RotateLeft()
	case core.ActionRotateRight:
		g.RotateRight()
	case core.ActionThrust:
		g.Thrust()
	case core.ActionShoot:
		g.Shoot()
	default:
		return false
	}
	return true
}

// Apply runs the commands recorded in an input frame: rotations first, then
// thrust, then shots, so bullets leave along the updated heading.
func (g *Game) Apply(in core.InputFrame) {
	for range in.Count(core.ActionRotateLeft) {
		g.RotateLeft()
	}
	for range in.Count(core.ActionRotateRight) {
		g.RotateRight()
	}
	for range in.Count(core.ActionThrust) {
		g.Thrust()
	}
	for range in.Count(core.ActionShoot) {
		g.Shoot()
	}
}

// Score returns the current score.
func (g *Game) Score() uint64 {
	return g.score
}

// Tick returns the number of completed updates.
func (g *Game) Tick() uint64 {
	return g.tick
}

// Bounds returns the world size used by the last update (or construction).
func (g *Game) Bounds() core.Bounds {
	return g.bounds
}

// Player returns a copy of the ship.
func (g *Game) Player() Player {
	return g.player
}

// Asteroids returns a copy of the live asteroids.
func (g *Game) Asteroids() []Asteroid {
	return append([]Asteroid(nil), g.asteroids...)
}

// Bullets returns a copy of the live bullets.
func (g *Game) Bullets() []Bullet {
	return append([]Bullet(nil), g.bullets...)
}

// Rules returns the rules the game was created with.
func (g *Game) Rules() Rules {
	return g.rules
}

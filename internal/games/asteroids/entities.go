package asteroids

import (
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Body is the position/velocity pair every entity moves with.
type Body struct {
	Pos core.Vec2
	Vel core.Vec2
}

// Step advances the position by one tick of velocity. There is no delta-time
// scaling, so simulation speed follows the tick rate.
func (b *Body) Step() {
	b.Pos = b.Pos.Add(b.Vel)
}

// Wrap moves the body to the opposite edge once it is more than margin past a border.
func (b *Body) Wrap(bounds core.Bounds, margin float64) {
	b.Pos.X = core.Wrap(b.Pos.X, bounds.Width, margin)
	b.Pos.Y = core.Wrap(b.Pos.Y, bounds.Height, margin)
}

// Player is the controllable ship.
type Player struct {
	Body
	Angle float64 // Radians, unbounded; 0 points up
	spec  ShipSpec
}

// NewPlayer creates a ship at rest facing up.
func NewPlayer(pos core.Vec2, spec ShipSpec) Player {
	return Player{Body: Body{Pos: pos}, spec: spec}
}

// Size returns the ship's wrap margin.
func (p Player) Size() float64 {
	return p.spec.Size
}

// Rotate turns the ship by delta radians.
func (p *Player) Rotate(delta float64) {
	p.Angle += delta
}

// Thrust adds a fixed impulse along the current heading.
func (p *Player) Thrust() {
	p.Vel = p.Vel.Add(core.Heading(p.Angle).Scale(p.spec.Thrust))
}

// Shoot returns a bullet leaving the nose of the ship.
// The bullet carries the ship's own velocity on top of the muzzle speed.
func (p Player) Shoot() Bullet {
	dir := core.Heading(p.Angle)
	return Bullet{Body: Body{
		Pos: p.Pos.Add(dir.Scale(p.spec.MuzzleOffset)),
		Vel: dir.Scale(p.spec.MuzzleSpeed).Add(p.Vel),
	}}
}

// Update moves the ship and wraps it around the world.
func (p *Player) Update(bounds core.Bounds) {
	p.Step()
	p.Wrap(bounds, p.spec.Size)
}

// Asteroid is a drifting obstacle.
type Asteroid struct {
	Body
	Size float64 // Radius
}

// NewAsteroid places an asteroid at (x, y) with a random drift.
// Each velocity component is drawn independently from [-MaxSpeed, MaxSpeed].
func NewAsteroid(x, y float64, rng Source, spec RockSpec) Asteroid {
	return Asteroid{
		Body: Body{
			Pos: core.Vec2{X: x, Y: y},
			Vel: core.Vec2{
				X: (rng.Float64()*2 - 1) * spec.MaxSpeed,
				Y: (rng.Float64()*2 - 1) * spec.MaxSpeed,
			},
		},
		Size: spec.Size,
	}
}

// Update moves the asteroid and wraps it, using its own radius as margin.
func (a *Asteroid) Update(bounds core.Bounds) {
	a.Step()
	a.Wrap(bounds, a.Size)
}

// Bullet is a projectile. It never wraps; the game prunes it once it leaves the world.
type Bullet struct {
	Body
}

// Update moves the bullet in a straight line.
func (b *Bullet) Update() {
	b.Step()
}

// CollidesWith reports whether the bullet point lies strictly inside the asteroid.
func (b Bullet) CollidesWith(a Asteroid) bool {
	return core.DistSq(b.Pos, a.Pos) < a.Size*a.Size
}

// InBounds reports whether the bullet is still inside the world, edges included.
func (b Bullet) InBounds(bounds core.Bounds) bool {
	return bounds.Contains(b.Pos)
}

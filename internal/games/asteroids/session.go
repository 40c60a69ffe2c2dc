package asteroids

import (
	"errors"

	"github.com/vovakirdan/tui-asteroids/internal/core"
	"github.com/vovakirdan/tui-asteroids/internal/draw"
)

// ErrNoSurface is returned when a session is created without a drawing surface.
var ErrNoSurface = errors.New("asteroids: no drawing surface")

// Session binds a Game to the surface it is drawn on. The surface also
// provides the live world size, so resizing the terminal or window resizes
// the world on the next tick.
type Session struct {
	game *Game
	ctx  *draw.Context
}

// NewSession creates a game sized to the surface.
func NewSession(surface draw.Surface, rng Source, rules Rules) (*Session, error) {
	if surface == nil {
		return nil, ErrNoSurface
	}
	game, err := New(surface, rng, rules)
	if err != nil {
		return nil, err
	}
	return &Session{
		game: game,
		ctx:  draw.NewContext(surface),
	}, nil
}

// Update advances the simulation by one tick.
func (s *Session) Update() Result {
	return s.game.Update()
}

// Render draws the current state. It does not advance the simulation, so it
// can be called any number of times between updates. The clear covers the
// live surface size, so a resize is redrawn before the next update.
func (s *Session) Render() {
	snap := s.game.Snapshot()
	w, h := s.ctx.Surface().Size()
	if live := (core.Bounds{Width: w, Height: h}); live.Valid() {
		snap.Bounds = live
	}
	Draw(s.ctx, snap, s.game.rules.BulletRadius)
}

// Shoot fires a bullet immediately.
func (s *Session) Shoot() {
	s.game.Shoot()
}

// RotateLeft turns the ship counter-clockwise.
func (s *Session) RotateLeft() {
	s.game.RotateLeft()
}

// RotateRight turns the ship clockwise.
func (s *Session) RotateRight() {
	s.game.RotateRight()
}

// Thrust accelerates the ship along its heading.
func (s *Session) Thrust() {
	s.game.Thrust()
}

// Do runs one ship command immediately and reports whether a was one.
func (s *Session) Do(a core.Action) bool {
	return s.game.Do(a)
}

// Apply runs the commands recorded in an input frame.
func (s *Session) Apply(in core.InputFrame) {
	s.game.Apply(in)
}

// Snapshot returns a copy of the current state.
func (s *Session) Snapshot() Snapshot {
	return s.game.Snapshot()
}

// State returns the host-facing summary of the current state.
func (s *Session) State() core.GameState {
	return core.GameState{Score: s.game.Score(), Tick: s.game.Tick()}
}

// Game returns the underlying simulation.
func (s *Session) Game() *Game {
	return s.game
}

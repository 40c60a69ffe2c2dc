package asteroids

import (
	"errors"
	"math"
	"testing"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// seqSource replays a fixed sequence of values, cycling when exhausted.
type seqSource struct {
	vals []float64
	i    int
}

func (s *seqSource) Float64() float64 {
	v := s.vals[s.i%len(s.vals)]
	s.i++
	return v
}

// newTestGame creates a 500x500 game with a seeded source.
func newTestGame(t *testing.T) *Game {
	t.Helper()
	g, err := New(core.FixedViewport{Width: 500, Height: 500}, NewSource(42), DefaultRules())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return g
}

func TestNewGame(t *testing.T) {
	g := newTestGame(t)

	p := g.Player()
	if p.Pos != (core.Vec2{X: 250, Y: 250}) {
		t.Errorf("player should start at center, got %v", p.Pos)
	}
	if !p.Vel.IsZero() || p.Angle != 0 {
		t.Errorf("player should start at rest facing up, got vel=%v angle=%v", p.Vel, p.Angle)
	}
	if len(g.Asteroids()) != 5 {
		t.Errorf("expected 5 asteroids, got %d", len(g.Asteroids()))
	}
	for i, a := range g.Asteroids() {
		if !g.Bounds().Contains(a.Pos) {
			t.Errorf("asteroid %d spawned outside world at %v", i, a.Pos)
		}
	}
	if len(g.Bullets()) != 0 {
		t.Errorf("expected no bullets, got %d", len(g.Bullets()))
	}
	if g.Score() != 0 {
		t.Errorf("expected score 0, got %d", g.Score())
	}
}

func TestNewGameSpawnUsesSource(t *testing.T) {
	// Spawn draws x, y, then vx, vy per asteroid
	src := &seqSource{vals: []float64{0.5, 0.25, 0.5, 0.5}}
	rules := DefaultRules()
	rules.AsteroidCount = 1

	g, err := New(core.FixedViewport{Width: 400, Height: 200}, src, rules)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	a := g.Asteroids()[0]
	if a.Pos != (core.Vec2{X: 200, Y: 50}) {
		t.Errorf("asteroid position = %v, expected {200 50}", a.Pos)
	}
	if !a.Vel.IsZero() {
		t.Errorf("asteroid velocity = %v, expected zero for 0.5 draws", a.Vel)
	}
}

func TestNewGameDeterminism(t *testing.T) {
	view := core.FixedViewport{Width: 640, Height: 480}
	g1, _ := New(view, NewSource(12345), DefaultRules())
	g2, _ := New(view, NewSource(12345), DefaultRules())

	for range 100 {
		g1.Update()
		g2.Update()
	}

	a1, a2 := g1.Asteroids(), g2.Asteroids()
	if len(a1) != len(a2) {
		t.Fatalf("asteroid counts differ: %d vs %d", len(a1), len(a2))
	}
	for i := range a1 {
		if a1[i] != a2[i] {
			t.Errorf("asteroid %d differs: %+v vs %+v", i, a1[i], a2[i])
		}
	}
}

func TestNewGameErrors(t *testing.T) {
	tests := []struct {
		name    string
		view    core.Viewport
		rules   func(*Rules)
		wantErr error
	}{
		{"nil viewport", nil, nil, ErrInvalidBounds},
		{"zero width", core.FixedViewport{Width: 0, Height: 100}, nil, ErrInvalidBounds},
		{"negative height", core.FixedViewport{Width: 100, Height: -1}, nil, ErrInvalidBounds},
		{"zero asteroid size", core.FixedViewport{Width: 100, Height: 100}, func(r *Rules) { r.Rock.Size = 0 }, ErrInvalidRules},
		{"negative count", core.FixedViewport{Width: 100, Height: 100}, func(r *Rules) { r.AsteroidCount = -1 }, ErrInvalidRules},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rules := DefaultRules()
			if tc.rules != nil {
				tc.rules(&rules)
			}
			_, err := New(tc.view, NewSource(1), rules)
			if !errors.Is(err, tc.wantErr) {
				t.Errorf("New() error = %v, expected %v", err, tc.wantErr)
			}
		})
	}
}

func TestNewGameNilSource(t *testing.T) {
	g, err := New(core.FixedViewport{Width: 100, Height: 100}, nil, DefaultRules())
	if err != nil {
		t.Fatalf("New() with nil source error = %v", err)
	}
	if len(g.Asteroids()) != 5 {
		t.Errorf("expected 5 asteroids, got %d", len(g.Asteroids()))
	}
}

func TestShootAddsOneBullet(t *testing.T) {
	g := newTestGame(t)

	before := len(g.Bullets())
	g.Shoot()
	if got := len(g.Bullets()); got != before+1 {
		t.Errorf("bullet count = %d, expected %d", got, before+1)
	}

	// Repeated calls between ticks accumulate
	g.Shoot()
	g.Shoot()
	if got := len(g.Bullets()); got != before+3 {
		t.Errorf("bullet count = %d, expected %d", got, before+3)
	}
}

func TestRotateCommands(t *testing.T) {
	g := newTestGame(t)

	g.RotateRight()
	if a := g.Player().Angle; math.Abs(a-0.1) > 1e-12 {
		t.Errorf("angle after RotateRight = %v, expected 0.1", a)
	}
	g.RotateLeft()
	g.RotateLeft()
	if a := g.Player().Angle; math.Abs(a+0.1) > 1e-12 {
		t.Errorf("angle after two RotateLeft = %v, expected -0.1", a)
	}
}

func TestThrustCommand(t *testing.T) {
	g := newTestGame(t)

	g.Thrust()
	v := g.Player().Vel
	if math.Abs(v.X) > 1e-12 || math.Abs(v.Y+0.5) > 1e-12 {
		t.Errorf("velocity after thrust at angle 0 = %v, expected {0 -0.5}", v)
	}
}

func TestUpdateCollisionEndToEnd(t *testing.T) {
	g := newTestGame(t)

	g.asteroids = []Asteroid{
		{Body: Body{Pos: core.Vec2{X: 100, Y: 100}}, Size: 20},
		{Body: Body{Pos: core.Vec2{X: 400, Y: 400}}, Size: 20},
	}
	g.bullets = []Bullet{
		{Body: Body{Pos: core.Vec2{X: 100, Y: 100}}},
		{Body: Body{Pos: core.Vec2{X: 250, Y: 50}}},
	}

	res := g.Update()

	if res.Destroyed != 1 {
		t.Errorf("Destroyed = %d, expected 1", res.Destroyed)
	}
	if len(g.Bullets()) != 1 {
		t.Errorf("bullet count = %d, expected 1", len(g.Bullets()))
	}
	if len(g.Asteroids()) != 1 {
		t.Errorf("asteroid count = %d, expected 1", len(g.Asteroids()))
	}
	if g.Asteroids()[0].Pos != (core.Vec2{X: 400, Y: 400}) {
		t.Errorf("wrong asteroid removed, survivor at %v", g.Asteroids()[0].Pos)
	}
	if g.Score() != 100 || res.Score != 100 {
		t.Errorf("score = %d (result %d), expected 100", g.Score(), res.Score)
	}
}

func TestOneKillPerBulletPerTick(t *testing.T) {
	g := newTestGame(t)

	// Two overlapping asteroids, one bullet inside both
	g.asteroids = []Asteroid{
		{Body: Body{Pos: core.Vec2{X: 100, Y: 100}}, Size: 20},
		{Body: Body{Pos: core.Vec2{X: 105, Y: 100}}, Size: 20},
	}
	g.bullets = []Bullet{{Body: Body{Pos: core.Vec2{X: 102, Y: 100}}}}

	res := g.Update()

	if res.Destroyed != 1 || len(g.Asteroids()) != 1 {
		t.Fatalf("expected exactly one asteroid destroyed, got %d (remaining %d)", res.Destroyed, len(g.Asteroids()))
	}
	// Lowest index is hit first
	if g.Asteroids()[0].Pos.X != 105 {
		t.Errorf("survivor should be the second asteroid, got %v", g.Asteroids()[0].Pos)
	}
	if g.Score() != 100 {
		t.Errorf("score = %d, expected 100", g.Score())
	}
}

func TestSweepDoesNotSkipSuccessorBullet(t *testing.T) {
	g := newTestGame(t)

	// Consecutive bullets each hit a different asteroid
	g.asteroids = []Asteroid{
		{Body: Body{Pos: core.Vec2{X: 100, Y: 100}}, Size: 20},
		{Body: Body{Pos: core.Vec2{X: 300, Y: 300}}, Size: 20},
		{Body: Body{Pos: core.Vec2{X: 450, Y: 50}}, Size: 20},
	}
	g.bullets = []Bullet{
		{Body: Body{Pos: core.Vec2{X: 100, Y: 100}}},
		{Body: Body{Pos: core.Vec2{X: 300, Y: 300}}},
		{Body: Body{Pos: core.Vec2{X: 10, Y: 490}}},
	}

	res := g.Update()

	if res.Destroyed != 2 {
		t.Errorf("Destroyed = %d, expected 2", res.Destroyed)
	}
	if len(g.Bullets()) != 1 || g.Bullets()[0].Pos != (core.Vec2{X: 10, Y: 490}) {
		t.Errorf("only the missing bullet should remain, got %v", g.Bullets())
	}
	if len(g.Asteroids()) != 1 || g.Asteroids()[0].Pos != (core.Vec2{X: 450, Y: 50}) {
		t.Errorf("only the untouched asteroid should remain, got %v", g.Asteroids())
	}
	if g.Score() != 200 {
		t.Errorf("score = %d, expected 200", g.Score())
	}
}

func TestSecondBulletCannotHitDestroyedAsteroid(t *testing.T) {
	g := newTestGame(t)

	g.asteroids = []Asteroid{{Body: Body{Pos: core.Vec2{X: 100, Y: 100}}, Size: 20}}
	g.bullets = []Bullet{
		{Body: Body{Pos: core.Vec2{X: 100, Y: 100}}},
		{Body: Body{Pos: core.Vec2{X: 101, Y: 100}}},
	}

	res := g.Update()

	if res.Destroyed != 1 {
		t.Errorf("Destroyed = %d, expected 1", res.Destroyed)
	}
	if len(g.Bullets()) != 1 {
		t.Errorf("second bullet should survive, got %d bullets", len(g.Bullets()))
	}
	if g.Score() != 100 {
		t.Errorf("score = %d, expected 100", g.Score())
	}
}

func TestBulletsNeverWrap(t *testing.T) {
	g := newTestGame(t)
	g.asteroids = nil

	g.bullets = []Bullet{
		{Body: Body{Pos: core.Vec2{X: 499, Y: 250}, Vel: core.Vec2{X: 5}}},
		{Body: Body{Pos: core.Vec2{X: 250, Y: 1}, Vel: core.Vec2{Y: -5}}},
		{Body: Body{Pos: core.Vec2{X: 495, Y: 250}, Vel: core.Vec2{X: 5}}}, // lands exactly on the edge
	}

	res := g.Update()

	if res.Pruned != 2 {
		t.Errorf("Pruned = %d, expected 2", res.Pruned)
	}
	bullets := g.Bullets()
	if len(bullets) != 1 || bullets[0].Pos.X != 500 {
		t.Errorf("only the edge bullet should remain, got %v", bullets)
	}
}

func TestUpdateOrderMovesEverything(t *testing.T) {
	g := newTestGame(t)

	g.player.Vel = core.Vec2{X: 1, Y: 2}
	g.asteroids = []Asteroid{{Body: Body{Pos: core.Vec2{X: 10, Y: 10}, Vel: core.Vec2{X: -1, Y: 0.5}}, Size: 20}}
	g.bullets = []Bullet{{Body: Body{Pos: core.Vec2{X: 100, Y: 100}, Vel: core.Vec2{X: 1, Y: 1}}}}

	g.Update()

	if p := g.Player().Pos; p != (core.Vec2{X: 251, Y: 252}) {
		t.Errorf("player = %v, expected {251 252}", p)
	}
	if a := g.Asteroids()[0].Pos; a != (core.Vec2{X: 9, Y: 10.5}) {
		t.Errorf("asteroid = %v, expected {9 10.5}", a)
	}
	if b := g.Bullets()[0].Pos; b != (core.Vec2{X: 101, Y: 101}) {
		t.Errorf("bullet = %v, expected {101 101}", b)
	}
	if g.Tick() != 1 {
		t.Errorf("Tick() = %d, expected 1", g.Tick())
	}
}

// resizableView is a viewport whose size tests can change between ticks.
type resizableView struct{ w, h float64 }

func (v *resizableView) Size() (float64, float64) { return v.w, v.h }

func TestBoundsAreLive(t *testing.T) {
	view := &resizableView{w: 500, h: 500}
	g, err := New(view, NewSource(7), DefaultRules())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	g.asteroids = nil

	// Shrink the world: a bullet that was inside is now off-world
	g.bullets = []Bullet{{Body: Body{Pos: core.Vec2{X: 400, Y: 100}}}}
	view.w = 300
	g.Update()

	if g.Bounds() != (core.Bounds{Width: 300, Height: 500}) {
		t.Errorf("Bounds() = %v, expected 300x500", g.Bounds())
	}
	if len(g.Bullets()) != 0 {
		t.Error("bullet outside the resized world should be pruned")
	}
}

func TestBoundsKeepLastValid(t *testing.T) {
	view := &resizableView{w: 500, h: 400}
	g, err := New(view, NewSource(7), DefaultRules())
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	view.w, view.h = 0, 0
	g.Update()

	if g.Bounds() != (core.Bounds{Width: 500, Height: 400}) {
		t.Errorf("Bounds() = %v, expected last valid 500x400", g.Bounds())
	}
}

func TestScoreNeverDecreases(t *testing.T) {
	g := newTestGame(t)

	last := g.Score()
	for i := range 600 {
		if i%5 == 0 {
			g.RotateRight()
			g.Shoot()
		}
		g.Update()
		if g.Score() < last {
			t.Fatalf("score decreased from %d to %d at tick %d", last, g.Score(), i)
		}
		if g.Score()%100 != 0 {
			t.Fatalf("score %d is not a multiple of the reward", g.Score())
		}
		last = g.Score()
	}
	if destroyed := uint64(5 - len(g.Asteroids())); g.Score() != destroyed*100 {
		t.Errorf("score = %d, expected %d for %d destroyed asteroids", g.Score(), destroyed*100, destroyed)
	}
}

func TestApplyInputFrame(t *testing.T) {
	g := newTestGame(t)

	in := core.NewInputFrame()
	in.Set(core.ActionRotateRight)
	in.Set(core.ActionRotateRight)
	in.Set(core.ActionThrust)
	in.Set(core.ActionShoot)
	in.Set(core.ActionShoot)
	in.Set(core.ActionPause) // ignored by the simulation

	g.Apply(in)

	p := g.Player()
	if math.Abs(p.Angle-0.2) > 1e-12 {
		t.Errorf("angle = %v, expected 0.2", p.Angle)
	}
	if p.Vel.IsZero() {
		t.Error("thrust should change velocity")
	}
	if len(g.Bullets()) != 2 {
		t.Errorf("bullet count = %d, expected 2", len(g.Bullets()))
	}

	// Shots are fired after the rotation and thrust in the same frame
	dir := core.Heading(0.2)
	expected := dir.Scale(10).Add(p.Vel)
	if v := g.Bullets()[0].Vel; math.Abs(v.X-expected.X) > 1e-9 || math.Abs(v.Y-expected.Y) > 1e-9 {
		t.Errorf("bullet velocity = %v, expected %v", v, expected)
	}
}

func TestSnapshotIsCopy(t *testing.T) {
	g := newTestGame(t)
	g.Shoot()

	snap := g.Snapshot()
	snap.Asteroids[0].Pos = core.Vec2{X: -999, Y: -999}
	snap.Bullets = nil
	snap.Player.Angle = 3

	if g.Asteroids()[0].Pos.X == -999 {
		t.Error("mutating snapshot asteroids changed the game")
	}
	if len(g.Bullets()) != 1 {
		t.Error("mutating snapshot bullets changed the game")
	}
	if g.Player().Angle != 0 {
		t.Error("mutating snapshot player changed the game")
	}
	if snap.Bounds != (core.Bounds{Width: 500, Height: 500}) || snap.Score != 0 || snap.Tick != 0 {
		t.Errorf("snapshot header = %+v", snap)
	}
}

package asteroids

import "github.com/vovakirdan/tui-asteroids/internal/core"

// Snapshot is a read-only copy of the game state for presentation code.
// Mutating a snapshot never affects the game it came from.
type Snapshot struct {
	Tick      uint64
	Score     uint64
	Bounds    core.Bounds
	Player    Player
	Asteroids []Asteroid
	Bullets   []Bullet
}

// Snapshot returns the current game state.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:      g.tick,
		Score:     g.score,
		Bounds:    g.bounds,
		Player:    g.player,
		Asteroids: g.Asteroids(),
		Bullets:   g.Bullets(),
	}
}

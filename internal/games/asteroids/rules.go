package asteroids

import (
	"errors"
	"fmt"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-asteroids/internal/config"
)

// ErrInvalidRules is returned by New when the rules cannot drive a simulation.
var ErrInvalidRules = errors.New("asteroids: invalid rules")

// Source supplies uniformly distributed values in [0, 1).
// *rand.Rand satisfies it; tests can supply fixed sequences.
type Source interface {
	Float64() float64
}

// NewSource returns a seeded generator. Seed 0 means seed from the current time.
func NewSource(seed int64) *rand.Rand {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return rand.New(rand.NewSource(seed))
}

// ShipSpec holds the fixed parameters of the player's ship.
type ShipSpec struct {
	Size         float64 // Wrap margin and drawn half-extent
	Thrust       float64 // Velocity added per Thrust call
	MuzzleSpeed  float64 // Bullet speed along heading before ship velocity is added
	MuzzleOffset float64 // Bullet spawn distance ahead of the ship
}

// RockSpec holds the fixed parameters of an asteroid.
type RockSpec struct {
	Size     float64 // Collision radius and wrap margin
	MaxSpeed float64 // Bound on each velocity component
}

// Rules are the constants a Game runs with.
type Rules struct {
	Ship          ShipSpec
	Rock          RockSpec
	AsteroidCount int
	TurnRate      float64 // Radians per RotateLeft/RotateRight
	Reward        uint64  // Points per destroyed asteroid
	BulletRadius  float64 // Drawn radius only; collisions treat bullets as points
}

// DefaultRules returns the classic parameters.
func DefaultRules() Rules {
	return RulesFromConfig(config.DefaultGameConfig())
}

// RulesFromConfig maps a loaded configuration onto simulation rules.
func RulesFromConfig(cfg config.GameConfig) Rules {
	return Rules{
		Ship: ShipSpec{
			Size:         cfg.Ship.Size,
			Thrust:       cfg.Ship.Thrust,
			MuzzleSpeed:  cfg.Ship.MuzzleSpeed,
			MuzzleOffset: cfg.Ship.MuzzleOffset,
		},
		Rock: RockSpec{
			Size:     cfg.Asteroids.Size,
			MaxSpeed: cfg.Asteroids.MaxSpeed,
		},
		AsteroidCount: cfg.Asteroids.Count,
		TurnRate:      cfg.Ship.TurnRate,
		Reward:        cfg.Scoring.Reward,
		BulletRadius:  cfg.Bullets.Radius,
	}
}

// Validate checks the invariants the simulation relies on.
func (r Rules) Validate() error {
	switch {
	case r.Ship.Size <= 0:
		return fmt.Errorf("%w: ship size %v must be positive", ErrInvalidRules, r.Ship.Size)
	case r.Rock.Size <= 0:
		return fmt.Errorf("%w: asteroid size %v must be positive", ErrInvalidRules, r.Rock.Size)
	case r.Rock.MaxSpeed < 0:
		return fmt.Errorf("%w: asteroid max speed %v must not be negative", ErrInvalidRules, r.Rock.MaxSpeed)
	case r.AsteroidCount < 0:
		return fmt.Errorf("%w: asteroid count %d must not be negative", ErrInvalidRules, r.AsteroidCount)
	case r.BulletRadius <= 0:
		return fmt.Errorf("%w: bullet radius %v must be positive", ErrInvalidRules, r.BulletRadius)
	}
	return nil
}

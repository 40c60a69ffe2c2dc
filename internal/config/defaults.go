package config

import (
	_ "embed"
)

//go:embed defaults/asteroids.yaml
var defaultGameYAML []byte

// DefaultYAML returns the embedded default configuration document.
func DefaultYAML() []byte {
	out := make([]byte, len(defaultGameYAML))
	copy(out, defaultGameYAML)
	return out
}

// DefaultGameConfig returns the default configuration.
// It mirrors defaults/asteroids.yaml and is used if the embedded file fails to parse.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		World: WorldConfig{
			UnitsPerDot: 4,
		},
		Ship: ShipConfig{
			Size:         20.0,
			Thrust:       0.5,
			TurnRate:     0.1,
			MuzzleSpeed:  10.0,
			MuzzleOffset: 20.0,
		},
		Asteroids: AsteroidConfig{
			Count:    5,
			Size:     20.0,
			MaxSpeed: 1.0,
		},
		Bullets: BulletConfig{
			Radius: 2.0,
		},
		Scoring: ScoringConfig{
			Reward: 100,
		},
	}
}

// Package config provides YAML-based game configuration loading and
// difficulty presets for the asteroids game.
package config

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalid is returned when a configuration fails validation.
var ErrInvalid = errors.New("config: invalid configuration")

// GameConfig contains all tunable parameters of the simulation and terminal hosts.
type GameConfig struct {
	World     WorldConfig    `yaml:"world"`
	Ship      ShipConfig     `yaml:"ship"`
	Asteroids AsteroidConfig `yaml:"asteroids"`
	Bullets   BulletConfig   `yaml:"bullets"`
	Scoring   ScoringConfig  `yaml:"scoring"`
}

// WorldConfig defines how terminal cells map to world units.
type WorldConfig struct {
	UnitsPerDot float64 `yaml:"units_per_dot"`
}

// ShipConfig defines the player's ship.
type ShipConfig struct {
	Size         float64 `yaml:"size"`
	Thrust       float64 `yaml:"thrust"`
	TurnRate     float64 `yaml:"turn_rate"`
	MuzzleSpeed  float64 `yaml:"muzzle_speed"`
	MuzzleOffset float64 `yaml:"muzzle_offset"`
}

// AsteroidConfig defines asteroid spawning.
type AsteroidConfig struct {
	Count    int     `yaml:"count"`
	Size     float64 `yaml:"size"`
	MaxSpeed float64 `yaml:"max_speed"`
}

// BulletConfig defines bullet presentation.
type BulletConfig struct {
	Radius float64 `yaml:"radius"`
}

// ScoringConfig defines points awarded.
type ScoringConfig struct {
	Reward uint64 `yaml:"reward"`
}

// Validate checks that every size and rate is usable by the simulation.
func (c GameConfig) Validate() error {
	var problems []string

	if c.World.UnitsPerDot <= 0 {
		problems = append(problems, "world.units_per_dot must be positive")
	}
	if c.Ship.Size <= 0 {
		problems = append(problems, "ship.size must be positive")
	}
	if c.Ship.Thrust <= 0 {
		problems = append(problems, "ship.thrust must be positive")
	}
	if c.Ship.TurnRate <= 0 {
		problems = append(problems, "ship.turn_rate must be positive")
	}
	if c.Ship.MuzzleSpeed <= 0 {
		problems = append(problems, "ship.muzzle_speed must be positive")
	}
	if c.Ship.MuzzleOffset < 0 {
		problems = append(problems, "ship.muzzle_offset must not be negative")
	}
	if c.Asteroids.Count < 0 {
		problems = append(problems, "asteroids.count must not be negative")
	}
	if c.Asteroids.Size <= 0 {
		problems = append(problems, "asteroids.size must be positive")
	}
	if c.Asteroids.MaxSpeed < 0 {
		problems = append(problems, "asteroids.max_speed must not be negative")
	}
	if c.Bullets.Radius <= 0 {
		problems = append(problems, "bullets.radius must be positive")
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
	}
	return nil
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a flag value to a preset. An empty string means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(strings.ToLower(strings.TrimSpace(s))) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy:
		return DifficultyEasy, nil
	case DifficultyHard:
		return DifficultyHard, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplyPreset adjusts the spawn parameters for a difficulty preset.
// Presets only affect construction; there is no progression during play.
func ApplyPreset(cfg *GameConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Asteroids.Count = 3
		cfg.Asteroids.MaxSpeed = 0.6
	case DifficultyHard:
		cfg.Asteroids.Count = 8
		cfg.Asteroids.MaxSpeed = 1.6
	}
}

// Package config provides YAML-based game configuration loading and
// difficulty management for the asteroids game.
package config

import "math"

// AsteroidsConfig contains all tunable parameters of the simulation.
// Fields named *Ticks or *Steps are durations counted at World.FPS; AtRate
// converts them for another tick rate. Speeds and accelerations are per tick.
type AsteroidsConfig struct {
	World      WorldConfig      `yaml:"world"`
	Player     PlayerConfig     `yaml:"player"`
	Bullets    BulletConfig     `yaml:"bullets"`
	Asteroids  AsteroidConfig   `yaml:"asteroids"`
	Saucer     SaucerConfig     `yaml:"saucer"`
	Scoring    ScoringConfig    `yaml:"scoring"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WorldConfig defines the play area and the simulation rate.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	FPS    int     `yaml:"fps"` // Ticks per simulated second
}

// PlayerConfig defines ship handling.
type PlayerConfig struct {
	Lives              int     `yaml:"lives"`
	MaxTurnSpeed       float64 `yaml:"max_turn_speed"`    // rad/tick
	TurnAcceleration   float64 `yaml:"turn_acceleration"` // rad/tick per tick
	TurnFriction       float64 `yaml:"turn_friction"`
	Thrust             float64 `yaml:"thrust"`
	MaxSpeed           float64 `yaml:"max_speed"`
	Friction           float64 `yaml:"friction"`
	InvincibilityTicks int     `yaml:"invincibility_ticks"`
	RespawnTicks       int     `yaml:"respawn_ticks"`  // Wreck shown before the next ship
	FragmentTicks      int     `yaml:"fragment_ticks"` // Lifetime of saucer wreck lines
	WrapMargin         float64 `yaml:"wrap_margin"`
}

// BulletConfig defines projectiles.
type BulletConfig struct {
	Speed           float64 `yaml:"speed"`
	Radius          float64 `yaml:"radius"`
	OffscreenMargin float64 `yaml:"offscreen_margin"`
}

// AsteroidConfig defines asteroid spawning.
type AsteroidConfig struct {
	InitialCount  int     `yaml:"initial_count"`
	SpawnMargin   float64 `yaml:"spawn_margin"`   // Added to the half-diagonal
	DespawnMargin float64 `yaml:"despawn_margin"` // Added to the spawn distance
}

// SaucerConfig defines saucer behavior.
type SaucerConfig struct {
	MinSteps     int     `yaml:"min_steps"`
	MaxSteps     int     `yaml:"max_steps"`
	SmallChance  float64 `yaml:"small_chance"`
	SpawnDivisor float64 `yaml:"spawn_divisor"` // Saucer chance = asteroid chance / divisor
}

// ScoringConfig defines score banking and the high-score table.
type ScoringConfig struct {
	FlushTicks     int `yaml:"flush_ticks"`
	MaxHighScores  int `yaml:"max_high_scores"`
	BeatFloorTicks int `yaml:"beat_floor_ticks"` // Shortest interval between beats
	BeatRampTicks  int `yaml:"beat_ramp_ticks"`  // Ticks until the floor is reached
}

// DifficultyConfig defines the spawn-rate progression.
type DifficultyConfig struct {
	Enabled         bool             `yaml:"enabled"`
	SpawnMultiplier float64          `yaml:"spawn_multiplier"`
	Tiers           []DifficultyTier `yaml:"tiers"`
}

// DifficultyTier is one step of the progression, expressed in seconds.
type DifficultyTier struct {
	StartsAt    float64 `yaml:"starts_at"`    // Seconds of play
	SpawnChance float64 `yaml:"spawn_chance"` // Asteroid spawns per second
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a CLI string to a preset. Unknown names yield "".
func ParsePreset(s string) DifficultyPreset {
	switch DifficultyPreset(s) {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return DifficultyPreset(s)
	default:
		return ""
	}
}

// SpawnMultiplierForPreset returns the spawn chance multiplier for a preset.
func SpawnMultiplierForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyEasy:
		return 0.75
	case DifficultyHard:
		return 1.5
	default:
		return 1.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}

// AtRate returns a copy of c running at fps ticks per second. Durations keep
// their wall-clock length. Per-tick motion values are left as they are.
func (c AsteroidsConfig) AtRate(fps int) AsteroidsConfig {
	if fps <= 0 || fps == c.World.FPS || c.World.FPS <= 0 {
		return c
	}
	from := c.World.FPS
	scale := func(n int) int {
		if n <= 0 {
			return n
		}
		return max(int(math.Round(float64(n)*float64(fps)/float64(from))), 1)
	}

	c.World.FPS = fps
	c.Player.InvincibilityTicks = scale(c.Player.InvincibilityTicks)
	c.Player.RespawnTicks = scale(c.Player.RespawnTicks)
	c.Player.FragmentTicks = scale(c.Player.FragmentTicks)
	c.Saucer.MinSteps = scale(c.Saucer.MinSteps)
	c.Saucer.MaxSteps = scale(c.Saucer.MaxSteps)
	c.Scoring.FlushTicks = scale(c.Scoring.FlushTicks)
	c.Scoring.BeatFloorTicks = scale(c.Scoring.BeatFloorTicks)
	c.Scoring.BeatRampTicks = scale(c.Scoring.BeatRampTicks)
	return c
}

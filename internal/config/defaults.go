package config

import (
	_ "embed"
)

//go:embed defaults/asteroids.yaml
var defaultAsteroidsYAML []byte

// DefaultAsteroidsConfig returns the built-in configuration.
// It mirrors defaults/asteroids.yaml and is used if the embedded file cannot be parsed.
func DefaultAsteroidsConfig() AsteroidsConfig {
	return AsteroidsConfig{
		World: WorldConfig{
			Width:  800,
			Height: 600,
			FPS:    60,
		},
		Player: PlayerConfig{
			Lives:              3,
			MaxTurnSpeed:       0.1,
			TurnAcceleration:   0.01,
			TurnFriction:       0.925,
			Thrust:             0.5,
			MaxSpeed:           7.5,
			Friction:           0.975,
			InvincibilityTicks: 180,
			RespawnTicks:       60,
			FragmentTicks:      60,
			WrapMargin:         30,
		},
		Bullets: BulletConfig{
			Speed:           10,
			Radius:          2,
			OffscreenMargin: 30,
		},
		Asteroids: AsteroidConfig{
			InitialCount:  3,
			SpawnMargin:   84,
			DespawnMargin: 25,
		},
		Saucer: SaucerConfig{
			MinSteps:     180,
			MaxSteps:     300,
			SmallChance:  0.2,
			SpawnDivisor: 15,
		},
		Scoring: ScoringConfig{
			FlushTicks:     60,
			MaxHighScores:  5,
			BeatFloorTicks: 20,
			BeatRampTicks:  1800,
		},
		Difficulty: DifficultyConfig{
			Enabled:         true,
			SpawnMultiplier: 1.0,
			Tiers: []DifficultyTier{
				{StartsAt: 0, SpawnChance: 0.6},
				{StartsAt: 10, SpawnChance: 0.72},
				{StartsAt: 25, SpawnChance: 0.9},
				{StartsAt: 45, SpawnChance: 1.14},
				{StartsAt: 75, SpawnChance: 1.44},
				{StartsAt: 120, SpawnChance: 1.8},
				{StartsAt: 180, SpawnChance: 2.16},
				{StartsAt: 300, SpawnChance: 2.58},
				{StartsAt: 600, SpawnChance: 3.06},
			},
		},
	}
}

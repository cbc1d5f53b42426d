package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadAsteroids loads the simulation configuration.
// Search order: customPath -> ~/.asteroids/configs/asteroids.yaml -> ./configs/asteroids.yaml -> embedded default.
// Files may be partial; missing keys keep their default values.
func LoadAsteroids(customPath string) (AsteroidsConfig, error) {
	cfg := DefaultAsteroidsConfig()

	// Try custom path first
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		return cfg, validate(cfg)
	}

	// Try user config directory
	if userCfgPath := userConfigPath("asteroids.yaml"); userCfgPath != "" {
		if data, err := os.ReadFile(userCfgPath); err == nil {
			if err := yaml.Unmarshal(data, &cfg); err == nil {
				return cfg, validate(cfg)
			}
			cfg = DefaultAsteroidsConfig()
		}
	}

	// Try local configs directory
	if data, err := os.ReadFile("configs/asteroids.yaml"); err == nil {
		if err := yaml.Unmarshal(data, &cfg); err == nil {
			return cfg, validate(cfg)
		}
		cfg = DefaultAsteroidsConfig()
	}

	// Use embedded default YAML
	if err := yaml.Unmarshal(defaultAsteroidsYAML, &cfg); err != nil {
		return DefaultAsteroidsConfig(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

// validate rejects configurations the simulation cannot run with.
func validate(cfg AsteroidsConfig) error {
	switch {
	case cfg.World.Width <= 0 || cfg.World.Height <= 0:
		return fmt.Errorf("config: world size must be positive, got %vx%v", cfg.World.Width, cfg.World.Height)
	case cfg.World.FPS <= 0:
		return fmt.Errorf("config: fps must be positive, got %d", cfg.World.FPS)
	case cfg.Player.Lives <= 0:
		return fmt.Errorf("config: lives must be positive, got %d", cfg.Player.Lives)
	case cfg.Saucer.MinSteps > cfg.Saucer.MaxSteps:
		return fmt.Errorf("config: saucer min_steps %d exceeds max_steps %d", cfg.Saucer.MinSteps, cfg.Saucer.MaxSteps)
	case cfg.Saucer.SpawnDivisor <= 0:
		return fmt.Errorf("config: saucer spawn_divisor must be positive")
	case len(cfg.Difficulty.Tiers) == 0:
		return fmt.Errorf("config: at least one difficulty tier is required")
	}
	return nil
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".asteroids", "configs", filename)
}

// ApplyAsteroidsPreset modifies the config based on a difficulty preset.
func ApplyAsteroidsPreset(cfg *AsteroidsConfig, preset DifficultyPreset) {
	if preset == "" {
		return
	}
	if IsFixedPreset(preset) {
		cfg.Difficulty.Enabled = false
	} else {
		cfg.Difficulty.Enabled = true
		cfg.Difficulty.SpawnMultiplier = SpawnMultiplierForPreset(preset)
	}

	// Adjust gameplay based on difficulty
	switch preset {
	case DifficultyEasy:
		cfg.Player.Lives = 5
	case DifficultyHard:
		cfg.Player.Lives = 2
	}
}

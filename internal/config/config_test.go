package config

import (
	"math"
	"os"
	"path/filepath"
	"testing"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := LoadAsteroids("")
	if err != nil {
		t.Fatalf("LoadAsteroids() failed: %v", err)
	}
	def := DefaultAsteroidsConfig()

	if cfg.World != def.World || cfg.Player != def.Player || cfg.Bullets != def.Bullets || cfg.Scoring != def.Scoring {
		t.Errorf("embedded defaults differ from DefaultAsteroidsConfig")
	}
	if len(cfg.Difficulty.Tiers) != len(def.Difficulty.Tiers) {
		t.Fatalf("tier count = %d, expected %d", len(cfg.Difficulty.Tiers), len(def.Difficulty.Tiers))
	}
	for i := range def.Difficulty.Tiers {
		if cfg.Difficulty.Tiers[i] != def.Difficulty.Tiers[i] {
			t.Errorf("tier %d = %+v, expected %+v", i, cfg.Difficulty.Tiers[i], def.Difficulty.Tiers[i])
		}
	}
}

func TestLoadCustomPartial(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	data := []byte("player:\n  lives: 7\n")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadAsteroids(path)
	if err != nil {
		t.Fatalf("LoadAsteroids(%s) failed: %v", path, err)
	}
	if cfg.Player.Lives != 7 {
		t.Errorf("lives = %d, expected 7", cfg.Player.Lives)
	}
	if cfg.Player.MaxSpeed != 7.5 {
		t.Errorf("unset keys should keep defaults, max_speed = %v", cfg.Player.MaxSpeed)
	}
}

func TestLoadCustomErrors(t *testing.T) {
	dir := t.TempDir()

	if _, err := LoadAsteroids(filepath.Join(dir, "missing.yaml")); err == nil {
		t.Error("expected error for missing custom config")
	}

	bad := filepath.Join(dir, "bad.yaml")
	if err := os.WriteFile(bad, []byte("world: [not, a, map"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadAsteroids(bad); err == nil {
		t.Error("expected parse error")
	}

	invalid := filepath.Join(dir, "invalid.yaml")
	if err := os.WriteFile(invalid, []byte("world:\n  fps: 0\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadAsteroids(invalid); err == nil {
		t.Error("expected validation error for fps 0")
	}
}

func TestApplyAsteroidsPreset(t *testing.T) {
	tests := []struct {
		preset  DifficultyPreset
		lives   int
		mult    float64
		enabled bool
	}{
		{DifficultyEasy, 5, 0.75, true},
		{DifficultyNormal, 3, 1.0, true},
		{DifficultyHard, 2, 1.5, true},
		{DifficultyFixed, 3, 1.0, false},
		{"", 3, 1.0, true},
	}

	for _, tc := range tests {
		t.Run(string(tc.preset), func(t *testing.T) {
			cfg := DefaultAsteroidsConfig()
			ApplyAsteroidsPreset(&cfg, tc.preset)
			if cfg.Player.Lives != tc.lives {
				t.Errorf("lives = %d, expected %d", cfg.Player.Lives, tc.lives)
			}
			if cfg.Difficulty.SpawnMultiplier != tc.mult {
				t.Errorf("multiplier = %v, expected %v", cfg.Difficulty.SpawnMultiplier, tc.mult)
			}
			if cfg.Difficulty.Enabled != tc.enabled {
				t.Errorf("enabled = %v, expected %v", cfg.Difficulty.Enabled, tc.enabled)
			}
		})
	}
}

func TestParsePreset(t *testing.T) {
	if ParsePreset("hard") != DifficultyHard {
		t.Error("ParsePreset(hard)")
	}
	if ParsePreset("insane") != "" {
		t.Error("unknown presets should parse to empty")
	}
}

func TestDifficultyTierLookup(t *testing.T) {
	table := NewDifficultyTable(DefaultAsteroidsConfig().Difficulty, 60)

	tests := []struct {
		name     string
		ticks    int
		startsAt int
	}{
		{"start", 0, 0},
		{"just before 10s", 599, 0},
		{"exactly 10s", 600, 600},
		{"44 seconds", 44 * 60, 25 * 60},
		{"45 seconds", 45 * 60, 45 * 60},
		{"ten minutes", 600 * 60, 600 * 60},
		{"an hour", 3600 * 60, 600 * 60},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := table.Tier(tc.ticks)
			if got.StartsAt != tc.startsAt {
				t.Errorf("Tier(%d).StartsAt = %d, expected %d", tc.ticks, got.StartsAt, tc.startsAt)
			}
		})
	}

	if c := table.Tier(0).SpawnChance; math.Abs(c-0.01) > 1e-12 {
		t.Errorf("first tier chance per tick = %v, expected 0.01", c)
	}
}

func TestDifficultyTableSortsAndScales(t *testing.T) {
	cfg := DifficultyConfig{
		Enabled:         true,
		SpawnMultiplier: 2,
		Tiers: []DifficultyTier{
			{StartsAt: 5, SpawnChance: 1.2},
			{StartsAt: 0, SpawnChance: 0.6},
		},
	}
	table := NewDifficultyTable(cfg, 60)
	tiers := table.Tiers()
	if tiers[0].StartsAt != 0 || tiers[1].StartsAt != 300 {
		t.Errorf("tiers not sorted: %+v", tiers)
	}
	if math.Abs(tiers[0].SpawnChance-0.02) > 1e-12 {
		t.Errorf("scaled chance = %v, expected 0.02", tiers[0].SpawnChance)
	}
}

func TestDifficultyFixed(t *testing.T) {
	cfg := DefaultAsteroidsConfig().Difficulty
	cfg.Enabled = false
	table := NewDifficultyTable(cfg, 60)
	if table.IsEnabled() {
		t.Error("table should report disabled")
	}
	if got := table.Tier(100000); got.Index != 0 {
		t.Errorf("fixed difficulty should stay on tier 0, got %d", got.Index)
	}
}

func TestAtRate(t *testing.T) {
	def := DefaultAsteroidsConfig()

	tests := []struct {
		fps                        int
		invincible, respawn, flush int
		beatFloor, beatRamp        int
		saucerMin, saucerMax       int
	}{
		{60, 180, 60, 60, 20, 1800, 180, 300},
		{30, 90, 30, 30, 10, 900, 90, 150},
		{120, 360, 120, 120, 40, 3600, 360, 600},
		{1, 3, 1, 1, 1, 30, 3, 5},
	}

	for _, tc := range tests {
		cfg := def.AtRate(tc.fps)
		got := []int{
			cfg.World.FPS,
			cfg.Player.InvincibilityTicks, cfg.Player.RespawnTicks, cfg.Scoring.FlushTicks,
			cfg.Scoring.BeatFloorTicks, cfg.Scoring.BeatRampTicks,
			cfg.Saucer.MinSteps, cfg.Saucer.MaxSteps,
		}
		want := []int{tc.fps, tc.invincible, tc.respawn, tc.flush, tc.beatFloor, tc.beatRamp, tc.saucerMin, tc.saucerMax}
		for i := range want {
			if got[i] != want[i] {
				t.Errorf("AtRate(%d) = %v, expected %v", tc.fps, got, want)
				break
			}
		}
		if cfg.Player.FragmentTicks != cfg.Player.RespawnTicks {
			t.Errorf("AtRate(%d) fragment ticks = %d", tc.fps, cfg.Player.FragmentTicks)
		}
		if cfg.Player.Thrust != def.Player.Thrust || cfg.Bullets.Speed != def.Bullets.Speed {
			t.Errorf("AtRate(%d) changed per-tick motion values", tc.fps)
		}
	}

	if cfg := def.AtRate(0); cfg.World != def.World || cfg.Player != def.Player || cfg.Scoring != def.Scoring {
		t.Error("AtRate(0) should keep the configured rate")
	}
}

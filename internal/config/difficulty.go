package config

import (
	"math"
	"sort"
)

// Tier is a difficulty step converted to simulation ticks.
type Tier struct {
	Index       int
	StartsAt    int     // Ticks of play at which the tier applies
	SpawnChance float64 // Asteroid spawn probability per tick
}

// DifficultyTable maps ticks of play to the active tier.
type DifficultyTable struct {
	tiers   []Tier
	enabled bool
}

// NewDifficultyTable converts the configured tiers to ticks at the given rate.
// Tiers are sorted by start time; the multiplier scales every chance.
func NewDifficultyTable(cfg DifficultyConfig, fps int) *DifficultyTable {
	src := cfg.Tiers
	if len(src) == 0 {
		src = DefaultAsteroidsConfig().Difficulty.Tiers
	}
	sorted := make([]DifficultyTier, len(src))
	copy(sorted, src)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].StartsAt < sorted[j].StartsAt
	})

	mult := cfg.SpawnMultiplier
	if mult <= 0 {
		mult = 1
	}

	tiers := make([]Tier, len(sorted))
	for i, t := range sorted {
		tiers[i] = Tier{
			Index:       i,
			StartsAt:    int(math.Round(t.StartsAt * float64(fps))),
			SpawnChance: t.SpawnChance * mult / float64(fps),
		}
	}
	return &DifficultyTable{tiers: tiers, enabled: cfg.Enabled}
}

// Tier returns the last tier whose start is at or before ticks.
// With progression disabled the first tier always applies.
func (d *DifficultyTable) Tier(ticks int) Tier {
	if !d.enabled {
		return d.tiers[0]
	}
	for i := len(d.tiers) - 1; i >= 0; i-- {
		if ticks >= d.tiers[i].StartsAt {
			return d.tiers[i]
		}
	}
	return d.tiers[0]
}

// Tiers returns a copy of all tiers in order.
func (d *DifficultyTable) Tiers() []Tier {
	out := make([]Tier, len(d.tiers))
	copy(out, d.tiers)
	return out
}

// IsEnabled returns whether difficulty progression is active.
func (d *DifficultyTable) IsEnabled() bool {
	return d.enabled
}

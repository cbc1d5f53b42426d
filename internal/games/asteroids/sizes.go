package asteroids

import "fmt"

// AsteroidSize describes one asteroid class. The Index is persisted, so the
// order of AsteroidSizes must never change.
type AsteroidSize struct {
	Index     int
	Name      string
	AvgRadius float64
	MinSpeed  float64
	MaxSpeed  float64
	Stroke    int
	Points    int
}

// AsteroidSizes is ordered small, medium, large.
var AsteroidSizes = [3]AsteroidSize{
	{Index: 0, Name: "small", AvgRadius: 15, MinSpeed: 2.4, MaxSpeed: 3.6, Stroke: 1, Points: 100},
	{Index: 1, Name: "medium", AvgRadius: 30, MinSpeed: 1.8, MaxSpeed: 2.7, Stroke: 2, Points: 50},
	{Index: 2, Name: "large", AvgRadius: 60, MinSpeed: 1.2, MaxSpeed: 1.8, Stroke: 3, Points: 20},
}

// Smaller returns the size an asteroid splits into.
// Small asteroids do not split.
func (s AsteroidSize) Smaller() (AsteroidSize, bool) {
	if s.Index == 0 {
		return AsteroidSize{}, false
	}
	return AsteroidSizes[s.Index-1], true
}

func asteroidSizeAt(i int) (AsteroidSize, error) {
	if i < 0 || i >= len(AsteroidSizes) {
		return AsteroidSize{}, fmt.Errorf("asteroids: unknown asteroid size index %d", i)
	}
	return AsteroidSizes[i], nil
}

// SaucerSize describes one saucer class. The Index is persisted.
type SaucerSize struct {
	Index    int
	Name     string
	Radius   float64
	Stroke   int
	MinSpeed float64
	MaxSpeed float64
	Points   int
	// Aim is the width of the firing cone in radians.
	Aim float64
	// ShootChance is the expected number of shots per second.
	ShootChance float64
	// BulletLifetime is in seconds.
	BulletLifetime float64
}

// SaucerSizes is ordered small, large.
var SaucerSizes = [2]SaucerSize{
	{Index: 0, Name: "small", Radius: 15, Stroke: 2, MinSpeed: 2, MaxSpeed: 3, Points: 1000, Aim: 0.6, ShootChance: 1, BulletLifetime: 0.8},
	{Index: 1, Name: "large", Radius: 30, Stroke: 3, MinSpeed: 1.5, MaxSpeed: 2.25, Points: 200, Aim: 0.9, ShootChance: 0.5, BulletLifetime: 0.6},
}

func saucerSizeAt(i int) (SaucerSize, error) {
	if i < 0 || i >= len(SaucerSizes) {
		return SaucerSize{}, fmt.Errorf("asteroids: unknown saucer size index %d", i)
	}
	return SaucerSizes[i], nil
}

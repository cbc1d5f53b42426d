package asteroids

import (
	"math"
	"math/rand/v2"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// HitBy records what destroyed an entity during the current tick.
type HitBy int

const (
	HitNone HitBy = iota
	HitPlayer
	HitSaucer
)

// Asteroid is a drifting, spinning rock.
type Asteroid struct {
	Size          AsteroidSize
	Body          core.Polygon
	VelocityAngle float64
	Velocity      core.Vector
	Spin          float64
	HitBy         HitBy
}

// NewAsteroid builds a random rock of the given size heading along angle.
func NewAsteroid(r *rand.Rand, size AsteroidSize, center core.Vector, angle float64) *Asteroid {
	corners := randInt(r, 7, 11)
	step := tau / float64(corners)
	theta := r.Float64() * step

	vertices := make([]core.PolarCoordinate, corners)
	for i := range vertices {
		vertices[i] = core.Polar(theta+step*r.Float64(), size.AvgRadius*uniform(r, 0.6, 1.4))
		theta += step
	}

	speed := uniform(r, size.MinSpeed, size.MaxSpeed)
	return &Asteroid{
		Size:          size,
		Body:          core.NewPolygon(center, vertices, size.Stroke),
		VelocityAngle: angle,
		Velocity:      core.Polar(angle, speed).Cartesian(),
		Spin:          size.MinSpeed * uniform(r, -0.01, 0.01),
	}
}

// SpawnAsteroid places a rock of random size on a ring of radius distance
// around center, heading roughly inward.
func SpawnAsteroid(r *rand.Rand, center core.Vector, distance float64) *Asteroid {
	size := AsteroidSizes[r.IntN(len(AsteroidSizes))]
	spawnAngle := uniform(r, 0, tau)
	pos := center.Add(core.Polar(spawnAngle, distance).Cartesian())
	heading := spawnAngle + math.Pi + uniform(r, -0.375*math.Pi, 0.375*math.Pi)
	return NewAsteroid(r, size, pos, heading)
}

// Update moves and spins the rock.
func (a *Asteroid) Update() {
	a.Body.Rotate(a.Spin)
	a.Body.Move(a.Velocity)
}

// OutOfRange reports whether the rock drifted farther than distance from center.
func (a *Asteroid) OutOfRange(center core.Vector, distance float64) bool {
	return a.Body.Center.DistanceTo(center) > distance
}

// CheckHit consumes the first bullet inside the rock and tags it with by.
func (a *Asteroid) CheckHit(bullets []Bullet, by HitBy) ([]Bullet, bool) {
	rest, hit := consumeHit(a.Body, bullets)
	if hit {
		a.HitBy = by
	}
	return rest, hit
}

// Split returns the two children of a destroyed rock. Each child heads within
// a quarter turn of the parent's direction. Small rocks leave nothing.
func (a *Asteroid) Split(r *rand.Rand) []*Asteroid {
	smaller, ok := a.Size.Smaller()
	if !ok {
		return nil
	}
	return []*Asteroid{
		NewAsteroid(r, smaller, a.Body.Center, a.VelocityAngle-r.Float64()*math.Pi/4),
		NewAsteroid(r, smaller, a.Body.Center, a.VelocityAngle+r.Float64()*math.Pi/4),
	}
}

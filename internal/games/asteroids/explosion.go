package asteroids

import (
	"math/rand/v2"

	"github.com/samber/lo"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Particle is a single spark of an explosion.
type Particle struct {
	Position core.Vector
	Velocity core.Vector
	Ticks    int
	Lifetime int
}

// Update moves the particle and ages it.
func (p *Particle) Update() {
	p.Position = p.Position.Add(p.Velocity)
	p.Ticks++
}

// Alive reports whether the particle is still drawn.
func (p Particle) Alive() bool {
	return p.Ticks < p.Lifetime
}

// Explosion is a burst of particles left by a destroyed asteroid.
type Explosion struct {
	Particles []Particle
}

// NewExplosion spawns three to five particles at pos drifting with velocity.
func NewExplosion(r *rand.Rand, pos, velocity core.Vector) *Explosion {
	particles := lo.Times(randInt(r, 3, 5), func(int) Particle {
		kick := core.Polar(r.Float64()*tau, uniform(r, 0.3, 0.45)).Cartesian()
		return Particle{
			Position: pos,
			Velocity: velocity.Add(kick),
			Lifetime: randInt(r, 60, 90),
		}
	})
	return &Explosion{Particles: particles}
}

// Update advances every particle, including expired ones.
func (e *Explosion) Update() {
	for i := range e.Particles {
		e.Particles[i].Update()
	}
}

// Done reports whether every particle has expired.
func (e *Explosion) Done() bool {
	return lo.EveryBy(e.Particles, func(p Particle) bool { return !p.Alive() })
}

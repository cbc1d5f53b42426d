package asteroids

import (
	"math/rand/v2"

	"github.com/samber/lo"

	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Line is one drifting piece of a destroyed ship or saucer.
type Line struct {
	Center       core.Vector
	A            core.PolarCoordinate
	B            core.PolarCoordinate
	Velocity     core.Vector
	Spin         float64
	StrokeWeight int
}

// newLine breaks the segment a-b off a wreck moving with velocity.
// The line pivots around a random point on the segment.
func newLine(r *rand.Rand, a, b, velocity core.Vector, spin float64, stroke int) Line {
	center := b.Sub(a).Mult(r.Float64()).Add(a)
	kick := core.Polar(r.Float64()*tau, uniform(r, 0.3, 0.45)).Cartesian()
	return Line{
		Center:       center,
		A:            a.Sub(center).Polar(),
		B:            b.Sub(center).Polar(),
		Velocity:     velocity.Add(kick),
		Spin:         spin + uniform(r, -0.045, 0.045),
		StrokeWeight: stroke,
	}
}

// Update spins and moves the line, then slows both by friction.
func (l *Line) Update(friction float64) {
	l.A.Theta += l.Spin
	l.B.Theta += l.Spin
	l.Center = l.Center.Add(l.Velocity)
	l.Spin *= friction
	l.Velocity = l.Velocity.Mult(friction)
}

// Ends returns both endpoints in world coordinates.
func (l Line) Ends() (core.Vector, core.Vector) {
	return l.A.Cartesian().Add(l.Center), l.B.Cartesian().Add(l.Center)
}

// Fragment is the wreckage of a ship or saucer.
type Fragment struct {
	Lines []Line
	Ticks int
}

// Update advances every line and ages the fragment.
func (f *Fragment) Update(friction float64) {
	for i := range f.Lines {
		f.Lines[i].Update(friction)
	}
	f.Ticks++
}

// Expired reports whether the fragment outlived ticks.
func (f *Fragment) Expired(ticks int) bool {
	return f.Ticks >= ticks
}

// edgeLines turns every polygon edge into a loose line.
func edgeLines(r *rand.Rand, body core.Polygon, velocity core.Vector, spin float64, stroke int) []Line {
	pts := body.Points()
	return lo.Map(pts, func(a core.Vector, i int) Line {
		return newLine(r, a, pts[(i+1)%len(pts)], velocity, spin, stroke)
	})
}

// NewPlayerFragment breaks the ship apart.
func NewPlayerFragment(r *rand.Rand, p *Player) *Fragment {
	return &Fragment{Lines: edgeLines(r, p.Body, p.Velocity, p.TurnRate, playerStroke)}
}

// NewSaucerFragment breaks the saucer apart, including its inner lines.
func NewSaucerFragment(r *rand.Rand, s *Saucer) *Fragment {
	stroke := s.Size.Stroke
	lines := edgeLines(r, s.Body, s.Velocity, 0, stroke)
	for _, c := range s.CrossLines() {
		lines = append(lines, newLine(r, c[0], c[1], s.Velocity, 0, stroke))
	}
	return &Fragment{Lines: lines}
}

package asteroids

import (
	"math"
	"math/rand/v2"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Saucer body as (angle in units of pi, fraction of radius).
var saucerShape = [8][2]float64{
	{-0.4, 0.6},
	{-0.07, 0.47},
	{0.1, 1},
	{0.3, 0.8},
	{0.7, 0.8},
	{0.9, 1},
	{1.07, 0.47},
	{1.4, 0.6},
}

// Vertex pairs joined by the saucer's inner lines.
var saucerCross = [2][2]int{{1, 6}, {2, 5}}

// Saucer is the flying saucer. It changes heading every Steps ticks.
type Saucer struct {
	Size     SaucerSize
	Body     core.Polygon
	Velocity core.Vector
	Speed    float64
	Steps    int
	Ticks    int
	HitBy    HitBy
}

func saucerBody(size SaucerSize, center core.Vector) core.Polygon {
	vertices := make([]core.PolarCoordinate, len(saucerShape))
	for i, p := range saucerShape {
		vertices[i] = core.Polar(p[0]*math.Pi, p[1]*size.Radius)
	}
	return core.NewPolygon(center, vertices, size.Stroke)
}

// SpawnSaucer places a new saucer just outside one edge of the play area,
// heading inward. Longer edges are picked more often.
func SpawnSaucer(r *rand.Rand, sc config.SaucerConfig, wc config.WorldConfig) *Saucer {
	size := SaucerSizes[1]
	if r.Float64() <= sc.SmallChance {
		size = SaucerSizes[0]
	}
	rad := size.Radius
	w, h := wc.Width, wc.Height

	var pos core.Vector
	var angle float64
	switch weightedIndex(r, []float64{w, h, w, h}) {
	case 0: // top
		pos = core.Vec(uniform(r, -rad, w+rad), -rad)
		angle = uniform(r, 0.125*math.Pi, 0.875*math.Pi)
	case 1: // right
		pos = core.Vec(w+rad, uniform(r, -rad, h+rad))
		angle = uniform(r, 0.625*math.Pi, 1.375*math.Pi)
	case 2: // bottom
		pos = core.Vec(uniform(r, -rad, w+rad), h+rad)
		angle = uniform(r, -0.875*math.Pi, -0.125*math.Pi)
	default: // left
		pos = core.Vec(-rad, uniform(r, -rad, h+rad))
		angle = uniform(r, -0.375*math.Pi, 0.375*math.Pi)
	}

	speed := uniform(r, size.MinSpeed, size.MaxSpeed)
	return &Saucer{
		Size:     size,
		Body:     saucerBody(size, pos),
		Velocity: core.Polar(angle, speed).Cartesian(),
		Speed:    speed,
		Steps:    randInt(r, sc.MinSteps, sc.MaxSteps),
	}
}

// Update moves the saucer and picks a new heading once its leg is done.
func (s *Saucer) Update(r *rand.Rand, sc config.SaucerConfig) {
	s.Body.Move(s.Velocity)
	if s.Ticks == s.Steps {
		s.Ticks = -1
		s.Steps = randInt(r, sc.MinSteps, sc.MaxSteps)
		s.Velocity = core.Polar(r.Float64()*tau, s.Speed).Cartesian()
	}
	s.Ticks++
}

// OnScreen reports whether the center is within one radius of the play area.
func (s *Saucer) OnScreen(wc config.WorldConfig) bool {
	c, rad := s.Body.Center, s.Size.Radius
	return c.X >= -rad && c.X <= wc.Width+rad && c.Y >= -rad && c.Y <= wc.Height+rad
}

// CheckHit consumes the first bullet inside the saucer and tags it with by.
func (s *Saucer) CheckHit(bullets []Bullet, by HitBy) ([]Bullet, bool) {
	rest, hit := consumeHit(s.Body, bullets)
	if hit {
		s.HitBy = by
	}
	return rest, hit
}

// Fire returns a bullet aimed at target with the saucer's aim error.
// A nil target makes the saucer shoot in a random direction.
func (s *Saucer) Fire(r *rand.Rand, target *core.Vector, speed float64, fps int) Bullet {
	var angle float64
	if target == nil {
		angle = r.Float64() * tau
	} else {
		d := target.Sub(s.Body.Center)
		angle = math.Atan2(d.Y, d.X) + uniform(r, -s.Size.Aim/2, s.Size.Aim/2)
	}
	return Bullet{
		Position: s.Body.Center.Add(core.Polar(angle, s.Size.Radius).Cartesian()),
		Velocity: core.Polar(angle, speed).Cartesian(),
		Lifetime: int(s.Size.BulletLifetime * float64(fps)),
	}
}

// CrossLines returns the inner lines of the saucer in world coordinates.
func (s *Saucer) CrossLines() [][2]core.Vector {
	out := make([][2]core.Vector, 0, len(saucerCross))
	for _, pair := range saucerCross {
		a := s.Body.Vertices[pair[0]].Cartesian().Add(s.Body.Center)
		b := s.Body.Vertices[pair[1]].Cartesian().Add(s.Body.Center)
		out = append(out, [2]core.Vector{a, b})
	}
	return out
}

package asteroids

import (
	"math"

	"github.com/vovakirdan/tui-asteroids/internal/config"
	"github.com/vovakirdan/tui-asteroids/internal/core"
)

// Ship outline. Vertex 0 is the nose.
var playerBodyShape = []core.PolarCoordinate{
	core.Polar(-math.Pi/2, 20),
	core.Polar(tau*0.14, 20),
	core.Polar(tau*0.16, 12),
	core.Polar(tau*0.34, 12),
	core.Polar(tau*0.36, 20),
}

// Exhaust flame drawn behind the ship while thrusting.
var playerThrustShape = []core.PolarCoordinate{
	core.Polar(tau*0.2, 15),
	core.Polar(tau*0.25, 22),
	core.Polar(tau*0.3, 15),
}

const playerStroke = 2

// Player is the ship. Body and Thrust always share a center and rotation.
type Player struct {
	Body     core.Polygon
	Thrust   core.Polygon
	TurnRate float64
	Velocity core.Vector
	// Ticks counts updates since spawn. The ship is invincible while it is
	// below the invincibility window.
	Ticks int
}

// Controls is the held-key state the ship reacts to.
type Controls struct {
	Thrust bool
	Left   bool
	Right  bool
}

// NewPlayer creates a ship at center pointing up.
// A ship that does not start invincible begins past the invincibility window.
func NewPlayer(center core.Vector, invincible bool, invincibilityTicks int) *Player {
	ticks := invincibilityTicks
	if invincible {
		ticks = 0
	}
	thrust := core.NewPolygon(center, playerThrustShape, playerStroke)
	thrust.Visible = false
	return &Player{
		Body:   core.NewPolygon(center, playerBodyShape, playerStroke),
		Thrust: thrust,
		Ticks:  ticks,
	}
}

// Heading is the direction of the nose.
func (p *Player) Heading() float64 {
	return p.Body.Vertices[0].Theta
}

// Nose returns the world position of the nose vertex.
func (p *Player) Nose() core.Vector {
	return p.Body.Vertices[0].Cartesian().Add(p.Body.Center)
}

// Invincible reports whether the ship is still in its spawn window.
func (p *Player) Invincible(invincibilityTicks int) bool {
	return p.Ticks < invincibilityTicks
}

// Update advances the ship one tick.
func (p *Player) Update(c Controls, pc config.PlayerConfig, wc config.WorldConfig) {
	p.TurnRate *= pc.TurnFriction
	p.Velocity = p.Velocity.Limit(p.Velocity.Magnitude() * pc.Friction)

	if c.Thrust {
		p.Velocity = p.Velocity.Add(core.Polar(p.Heading(), pc.Thrust).Cartesian()).Limit(pc.MaxSpeed)
		p.Thrust.Visible = true
	} else {
		p.Thrust.Visible = false
	}

	if c.Left && !c.Right {
		p.TurnRate = math.Max(p.TurnRate-pc.TurnAcceleration, -pc.MaxTurnSpeed)
	} else if c.Right {
		p.TurnRate = math.Min(p.TurnRate+pc.TurnAcceleration, pc.MaxTurnSpeed)
	}

	p.Body.Rotate(p.TurnRate)
	p.Thrust.Rotate(p.TurnRate)
	p.Body.Move(p.Velocity)
	p.Body.Center = wrap(p.Body.Center, pc.WrapMargin, wc)
	p.Thrust.Center = p.Body.Center

	p.Ticks++
}

// wrap moves a point that drifted more than margin past an edge to the
// opposite side.
func wrap(v core.Vector, margin float64, wc config.WorldConfig) core.Vector {
	spanX := wc.Width + 2*margin
	spanY := wc.Height + 2*margin
	if v.X < -margin {
		v.X += spanX
	} else if v.X > wc.Width+margin {
		v.X -= spanX
	}
	if v.Y < -margin {
		v.Y += spanY
	} else if v.Y > wc.Height+margin {
		v.Y -= spanY
	}
	return v
}

// Visible reports whether the ship is drawn this tick; it blinks while invincible.
func (p *Player) Visible(invincibilityTicks, fps int) bool {
	period := max(fps/3, 1)
	return p.Ticks >= invincibilityTicks || p.Ticks%period < fps/6
}

// FlameVisible reports whether the exhaust flame is drawn this tick.
func (p *Player) FlameVisible(fps int) bool {
	period := max(fps/10, 1)
	return p.Thrust.Visible && p.Ticks%period < fps/20
}

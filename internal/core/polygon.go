package core

// Polygon is a closed shape described by vertices in polar form around a center.
// Rotate and Move mutate the polygon in place.
type Polygon struct {
	Center       Vector            `json:"center" yaml:"center"`
	Vertices     []PolarCoordinate `json:"polar_coordinates" yaml:"polar_coordinates"`
	StrokeWeight int               `json:"stroke_weight" yaml:"stroke_weight"`
	Visible      bool              `json:"visible" yaml:"visible"`
}

// NewPolygon creates a visible polygon. The vertex slice is copied.
func NewPolygon(center Vector, vertices []PolarCoordinate, stroke int) Polygon {
	vs := make([]PolarCoordinate, len(vertices))
	copy(vs, vertices)
	return Polygon{Center: center, Vertices: vs, StrokeWeight: stroke, Visible: true}
}

// Clone returns a deep copy of p.
func (p Polygon) Clone() Polygon {
	c := p
	c.Vertices = make([]PolarCoordinate, len(p.Vertices))
	copy(c.Vertices, p.Vertices)
	return c
}

// Cartesian returns the vertices relative to the center.
func (p Polygon) Cartesian() []Vector {
	out := make([]Vector, len(p.Vertices))
	for i, v := range p.Vertices {
		out[i] = v.Cartesian()
	}
	return out
}

// Points returns the vertices in world coordinates.
func (p Polygon) Points() []Vector {
	out := p.Cartesian()
	for i := range out {
		out[i] = out[i].Add(p.Center)
	}
	return out
}

// Contains reports whether the world point q lies inside p (even-odd rule).
// Polygons with fewer than three vertices contain nothing.
func (p Polygon) Contains(q Vector) bool {
	if len(p.Vertices) < 3 {
		return false
	}
	pts := p.Points()
	inside := false
	j := len(pts) - 1
	for i := range pts {
		a, b := pts[i], pts[j]
		if (a.Y > q.Y) != (b.Y > q.Y) {
			x := (b.X-a.X)*(q.Y-a.Y)/(b.Y-a.Y) + a.X
			if q.X < x {
				inside = !inside
			}
		}
		j = i
	}
	return inside
}

// CollidesWith reports whether any vertex of either polygon lies inside the other.
// Edge crossings with no contained vertex are not detected.
func (p Polygon) CollidesWith(o Polygon) bool {
	for _, v := range p.Points() {
		if o.Contains(v) {
			return true
		}
	}
	for _, v := range o.Points() {
		if p.Contains(v) {
			return true
		}
	}
	return false
}

// Rotate adds angle to every vertex theta.
func (p *Polygon) Rotate(angle float64) {
	for i := range p.Vertices {
		p.Vertices[i].Theta += angle
	}
}

// Move translates the center by v.
func (p *Polygon) Move(v Vector) {
	p.Center = p.Center.Add(v)
}

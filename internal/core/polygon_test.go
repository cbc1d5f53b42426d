package core

import (
	"math"
	"testing"
)

func square(center Vector, half float64) Polygon {
	r := half * math.Sqrt2
	return NewPolygon(center, []PolarCoordinate{
		Polar(math.Pi/4, r),
		Polar(3*math.Pi/4, r),
		Polar(5*math.Pi/4, r),
		Polar(7*math.Pi/4, r),
	}, 1)
}

func TestPolygonContains(t *testing.T) {
	p := square(Vec(100, 100), 10)

	tests := []struct {
		name string
		q    Vector
		want bool
	}{
		{"center", Vec(100, 100), true},
		{"near corner", Vec(109, 109), true},
		{"outside right", Vec(111, 100), false},
		{"far away", Vec(0, 0), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := p.Contains(tc.q); got != tc.want {
				t.Errorf("Contains(%v) = %v, expected %v", tc.q, got, tc.want)
			}
		})
	}
}

func TestPolygonContainsDegenerate(t *testing.T) {
	line := NewPolygon(Vec(0, 0), []PolarCoordinate{Polar(0, 5), Polar(math.Pi, 5)}, 1)
	if line.Contains(Vec(0, 0)) {
		t.Error("two-vertex polygon should contain nothing")
	}
	empty := Polygon{}
	if empty.Contains(Vec(0, 0)) {
		t.Error("empty polygon should contain nothing")
	}
}

func TestPolygonRotationKeepsContainment(t *testing.T) {
	p := square(Vec(50, 50), 10)
	for i := 0; i < 100; i++ {
		p.Rotate(0.173)
		if !p.Contains(p.Center) {
			t.Fatalf("center left polygon after %d rotations", i+1)
		}
	}
}

func TestPolygonCollisionSymmetric(t *testing.T) {
	tests := []struct {
		name string
		a, b Polygon
		want bool
	}{
		{"overlapping", square(Vec(0, 0), 10), square(Vec(12, 5), 10), true},
		{"nested", square(Vec(0, 0), 20), square(Vec(0, 0), 5), true},
		{"apart", square(Vec(0, 0), 10), square(Vec(50, 0), 10), false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ab := tc.a.CollidesWith(tc.b)
			ba := tc.b.CollidesWith(tc.a)
			if ab != ba {
				t.Errorf("asymmetric collision: a->b %v, b->a %v", ab, ba)
			}
			if ab != tc.want {
				t.Errorf("CollidesWith = %v, expected %v", ab, tc.want)
			}
		})
	}
}

func TestPolygonMoveAndClone(t *testing.T) {
	p := square(Vec(0, 0), 1)
	c := p.Clone()

	p.Move(Vec(3, -2))
	p.Rotate(1)

	if p.Center != Vec(3, -2) {
		t.Errorf("Move: center = %v", p.Center)
	}
	if c.Center != Vec(0, 0) || c.Vertices[0].Theta != math.Pi/4 {
		t.Error("Clone shares state with original")
	}
}

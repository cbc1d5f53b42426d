package core

import (
	"math"
	"testing"
)

const eps = 1e-9

func near(a, b float64) bool {
	return math.Abs(a-b) < eps
}

func TestVectorArithmetic(t *testing.T) {
	a := Vec(3, 4)
	b := Vec(1, -2)

	if got := a.Add(b); got != Vec(4, 2) {
		t.Errorf("Add = %v", got)
	}
	if got := a.Sub(b); got != Vec(2, 6) {
		t.Errorf("Sub = %v", got)
	}
	if got := a.Mult(2); got != Vec(6, 8) {
		t.Errorf("Mult = %v", got)
	}
	if got := a.Magnitude(); got != 5 {
		t.Errorf("Magnitude = %v", got)
	}
	if got := Vec(0, 0).DistanceTo(a); got != 5 {
		t.Errorf("DistanceTo = %v", got)
	}
}

func TestVectorLimit(t *testing.T) {
	tests := []struct {
		name string
		v    Vector
		max  float64
		want float64
	}{
		{"longer is capped", Vec(3, 4), 2.5, 2.5},
		{"shorter unchanged", Vec(3, 4), 10, 5},
		{"equal unchanged", Vec(3, 4), 5, 5},
		{"zero stays zero", Vec(0, 0), 1, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := tc.v.Limit(tc.max)
			if !near(got.Magnitude(), tc.want) {
				t.Errorf("Limit(%v) magnitude = %v, expected %v", tc.max, got.Magnitude(), tc.want)
			}
			if got.Magnitude() > 0 && !near(math.Atan2(got.Y, got.X), math.Atan2(tc.v.Y, tc.v.X)) {
				t.Errorf("Limit changed direction: %v -> %v", tc.v, got)
			}
		})
	}
}

func TestVectorSetMagnitudeZero(t *testing.T) {
	if got := Vec(0, 0).SetMagnitude(3); got != (Vector{}) {
		t.Errorf("SetMagnitude on zero vector = %v, expected zero", got)
	}
}

func TestPolarRoundTrip(t *testing.T) {
	tests := []PolarCoordinate{
		Polar(0, 1),
		Polar(math.Pi/3, 20),
		Polar(-math.Pi/2, 12),
		Polar(2.5, 0.75),
	}

	for _, p := range tests {
		v := p.Cartesian()
		back := v.Polar()
		if !near(back.Radius, p.Radius) || !near(back.Theta, p.Theta) {
			t.Errorf("round trip %v -> %v -> %v", p, v, back)
		}
	}
}

func TestPolarCartesian(t *testing.T) {
	v := Polar(math.Pi/2, 10).Cartesian()
	if !near(v.X, 0) || !near(v.Y, 10) {
		t.Errorf("Polar(pi/2, 10) = %v, expected (0, 10)", v)
	}
}

func TestRectContains(t *testing.T) {
	r := NewRect(10, 10, 20, 15)

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"inside", 15, 15, true},
		{"top-left corner", 10, 10, true},
		{"bottom-right edge (exclusive)", 30, 25, false},
		{"outside left", 5, 15, false},
		{"outside bottom", 15, 30, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := r.Contains(tc.x, tc.y); got != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, got, tc.expected)
			}
		})
	}
}

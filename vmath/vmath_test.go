package vmath

import (
	"math"
	"testing"
)

func TestClamp(t *testing.T) {
	tests := []struct {
		name      string
		v, lo, hi float64
		want      float64
	}{
		{"inside", 5, 0, 10, 5},
		{"below", -3, 0, 10, 0},
		{"above", 12, 0, 10, 10},
		{"at lower bound", 0, 0, 10, 0},
		{"at upper bound", 10, 0, 10, 10},
		{"inverted range", 5, 8, 2, 2},
		{"infinite upper", 1e300, 0, math.Inf(1), 1e300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Clamp(tt.v, tt.lo, tt.hi); got != tt.want {
				t.Errorf("Clamp(%v, %v, %v) = %v, want %v", tt.v, tt.lo, tt.hi, got, tt.want)
			}
		})
	}
}

func TestDistance(t *testing.T) {
	tests := []struct {
		a, b Vec2
		want float64
	}{
		{Vec2{0, 0}, Vec2{3, 4}, 5},
		{Vec2{3, 4}, Vec2{0, 0}, 5},
		{Vec2{1, 1}, Vec2{1, 1}, 0},
		{Vec2{-2, 0}, Vec2{2, 0}, 4},
	}

	for _, tt := range tests {
		if got := Distance(tt.a, tt.b); !NearlyEqual(got, tt.want, 1e-12) {
			t.Errorf("Distance(%v, %v) = %v, want %v", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestVectorHelpers(t *testing.T) {
	a := Vec2{1, 2}
	b := Vec2{4, 6}

	if got := V2Sub(b, a); got != (Vec2{3, 4}) {
		t.Errorf("V2Sub = %v, want {3 4}", got)
	}
	if got := V2Add(a, b); got != (Vec2{5, 8}) {
		t.Errorf("V2Add = %v, want {5 8}", got)
	}
	if got := V2Scale(a, 2); got != (Vec2{2, 4}) {
		t.Errorf("V2Scale = %v, want {2 4}", got)
	}
	if got := V2Mag(V2Sub(b, a)); got != 5 {
		t.Errorf("V2Mag = %v, want 5", got)
	}
}

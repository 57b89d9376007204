package vmath

import "math"

// Vec2 is a float64 2D point or displacement in field units
type Vec2 struct {
	X, Y float64
}

// V2Add returns the component-wise sum a+b
func V2Add(a, b Vec2) Vec2 {
	return Vec2{a.X + b.X, a.Y + b.Y}
}

// V2Sub returns the component-wise difference a-b
func V2Sub(a, b Vec2) Vec2 {
	return Vec2{a.X - b.X, a.Y - b.Y}
}

// V2Scale multiplies both components of v by s
func V2Scale(v Vec2, s float64) Vec2 {
	return Vec2{v.X * s, v.Y * s}
}

// V2Mag returns the Euclidean length of v
func V2Mag(v Vec2) float64 {
	return math.Hypot(v.X, v.Y)
}

// Clamp restricts v to [lo, hi]
// hi wins when the range is inverted (radius larger than half the field)
func Clamp(v, lo, hi float64) float64 {
	return math.Min(math.Max(v, lo), hi)
}

// Distance returns the Euclidean distance between a and b
func Distance(a, b Vec2) float64 {
	return math.Hypot(b.X-a.X, b.Y-a.Y)
}

// NearlyEqual reports whether a and b differ by at most eps
func NearlyEqual(a, b, eps float64) bool {
	return math.Abs(a-b) <= eps
}

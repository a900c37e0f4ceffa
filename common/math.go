package common

import (
	"math"

	dmath "github.com/yohamta/donburi/features/math"
)

// Vec2 is the 2D vector shared by the simulation packages. Screen space:
// +X is right, +Y is down.
type Vec2 = dmath.Vec2

// V builds a Vec2.
func V(x, y float64) Vec2 {
	return dmath.NewVec2(x, y)
}

// Clamp limits v to [lo, hi].
func Clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Approx reports whether a and b differ by less than eps.
func Approx(a, b, eps float64) bool {
	return math.Abs(a-b) < eps
}

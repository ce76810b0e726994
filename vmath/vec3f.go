package vmath

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"
)

// Vec3F is the float32 3D vector shared by physics, camera and render
type Vec3F = mgl32.Vec3

// V3F builds a vector from a fixed-size array, used for parameter offsets
func V3F(a [3]float32) Vec3F {
	return Vec3F{a[0], a[1], a[2]}
}

// V3FDist returns the euclidean distance between a and b
func V3FDist(a, b Vec3F) float32 {
	return a.Sub(b).Len()
}

// V3FApprox reports whether every component of a and b differs by at most eps
func V3FApprox(a, b Vec3F, eps float32) bool {
	return a.ApproxEqualThreshold(b, eps)
}

// V3FJitter returns a vector with each component uniform in [-amount, amount)
func V3FJitter(rng *rand.Rand, amount float32) Vec3F {
	if amount == 0 {
		return Vec3F{}
	}
	return Vec3F{
		(rng.Float32()*2 - 1) * amount,
		(rng.Float32()*2 - 1) * amount,
		(rng.Float32()*2 - 1) * amount,
	}
}

// Clamp bounds v to [lo, hi], NaN collapses to lo
func Clamp(v, lo, hi float64) float64 {
	if math.IsNaN(v) || v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp01 bounds v to [0, 1]
func Clamp01(v float64) float64 {
	return Clamp(v, 0, 1)
}

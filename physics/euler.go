package physics

import (
	"github.com/lixenwraith/wormhole/vmath"
)

// EulerStep applies one explicit Euler step with constant acceleration
// Velocity is updated first, then position advances by the new velocity scaled by speed
func EulerStep(pos, vel, accel vmath.Vec3F, speed float32) (vmath.Vec3F, vmath.Vec3F) {
	vel = vel.Add(accel)
	pos = pos.Add(vel.Mul(speed))
	return pos, vel
}

// Escaped reports whether pos lies strictly further than radius from origin
// Compares squared distances to avoid the square root in the per-particle path
func Escaped(pos, origin vmath.Vec3F, radius float32) bool {
	d := pos.Sub(origin)
	return d.Dot(d) > radius*radius
}

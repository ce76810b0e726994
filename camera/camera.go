// Package camera holds the free-floating viewpoint moved by the arrow keys
package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/lixenwraith/wormhole/parameter"
	"github.com/lixenwraith/wormhole/vmath"
)

// Axis selects the basis vector a move travels along
type Axis uint8

const (
	AxisStrafe Axis = iota
	AxisForward
)

// ViewSetup receives the view transform, implemented by the render pipeline
type ViewSetup interface {
	LoadView(view mgl32.Mat4)
}

// Camera is positioned in world space and oriented by yaw and pitch in radians
// Yaw 0 looks down -Z
type Camera struct {
	pos   vmath.Vec3F
	yaw   float32
	pitch float32
	step  float32
}

// New creates a camera at the default viewpoint
func New() *Camera {
	return &Camera{
		pos:  vmath.Vec3F{parameter.CameraStartX, parameter.CameraStartY, parameter.CameraStartZ},
		step: parameter.CameraStep,
	}
}

// NewAt creates a camera at pos with the given step and orientation
func NewAt(pos vmath.Vec3F, yaw, pitch, step float32) *Camera {
	return &Camera{pos: pos, yaw: yaw, pitch: pitch, step: step}
}

// Move translates the camera by dir steps along axis, dir is normally -1 or +1
// Movement stays in the horizontal plane regardless of pitch
func (c *Camera) Move(dir int, axis Axis) {
	if dir == 0 {
		return
	}
	var basis vmath.Vec3F
	switch axis {
	case AxisForward:
		basis = c.flatForward()
	case AxisStrafe:
		basis = c.right()
	default:
		return
	}
	c.pos = c.pos.Add(basis.Mul(float32(dir) * c.step))
}

// Apply issues the current view transform to v
func (c *Camera) Apply(v ViewSetup) {
	v.LoadView(c.View())
}

// View returns the world-to-eye matrix
func (c *Camera) View() mgl32.Mat4 {
	center := c.pos.Add(c.Forward())
	return mgl32.LookAtV(c.pos, center, vmath.Vec3F{0, 1, 0})
}

// Forward is the unit look direction including pitch
func (c *Camera) Forward() vmath.Vec3F {
	sy, cy := sincos(c.yaw)
	sp, cp := sincos(c.pitch)
	return vmath.Vec3F{-sy * cp, sp, -cy * cp}
}

// Position returns the camera position in world space
func (c *Camera) Position() vmath.Vec3F { return c.pos }

func (c *Camera) flatForward() vmath.Vec3F {
	sy, cy := sincos(c.yaw)
	return vmath.Vec3F{-sy, 0, -cy}
}

func (c *Camera) right() vmath.Vec3F {
	sy, cy := sincos(c.yaw)
	return vmath.Vec3F{cy, 0, -sy}
}

func sincos(a float32) (float32, float32) {
	s, c := math.Sincos(float64(a))
	return float32(s), float32(c)
}

// Package particle implements the particle pools that make up the wormhole scene
package particle

import (
	"sync/atomic"

	"github.com/lixenwraith/wormhole/physics"
	"github.com/lixenwraith/wormhole/vmath"
)

// serials hands out process-wide creation order, used to observe ring eviction
var serials atomic.Uint64

func nextSerial() uint64 {
	return serials.Add(1)
}

// Particle is the state of one point owned by exactly one Source
type Particle struct {
	Pos         vmath.Vec3F
	Vel         vmath.Vec3F
	Age         int
	MaxLifetime int

	// Serial identifies the particle across transfers; fresh spawns get a new one
	Serial uint64
	// Generation counts in-place respawns of the slot
	Generation int

	forceLost bool
}

// New creates a particle with a fresh serial
func New(origin, velocity vmath.Vec3F, maxLifetime int) Particle {
	var p Particle
	p.Init(origin, velocity, maxLifetime)
	p.Serial = nextSerial()
	return p
}

// Init resets kinematic state and age, serial and generation are kept
func (p *Particle) Init(origin, velocity vmath.Vec3F, maxLifetime int) {
	p.Pos = origin
	p.Vel = velocity
	p.Age = 0
	p.MaxLifetime = maxLifetime
	p.forceLost = false
}

// Step integrates one frame under gravity, displacement scaled by speed
func (p *Particle) Step(gravity vmath.Vec3F, speed float32) {
	p.Pos, p.Vel = physics.EulerStep(p.Pos, p.Vel, gravity, speed)
	p.Age++
}

// Expired reports whether the particle has reached its lifetime
func (p *Particle) Expired() bool {
	return p.Age >= p.MaxLifetime
}

// Alpha is the fade-out opacity, 1 at birth and 0 at expiry
func (p *Particle) Alpha() float64 {
	if p.MaxLifetime <= 0 {
		return 0
	}
	return vmath.Clamp01(1 - float64(p.Age)/float64(p.MaxLifetime))
}

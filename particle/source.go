package particle

import (
	"math/rand"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/wormhole/parameter"
	"github.com/lixenwraith/wormhole/physics"
	"github.com/lixenwraith/wormhole/vmath"
)

// Role distinguishes emitters from the sink
type Role uint8

const (
	RoleEmitter Role = iota
	RoleSink
)

func (r Role) String() string {
	switch r {
	case RoleEmitter:
		return "emitter"
	case RoleSink:
		return "sink"
	default:
		return "unknown"
	}
}

// Drawer receives one draw command per live particle
type Drawer interface {
	DrawPoint(pos vmath.Vec3F, c colorful.Color, alpha float64)
}

// Config describes a source at creation, nothing in it changes afterwards except speed
type Config struct {
	Role     Role
	Capacity int
	// Seed is the number of particles created up front, clamped to Capacity
	Seed     int
	Lifetime int

	Base     vmath.Vec3F
	Velocity vmath.Vec3F
	Gravity  vmath.Vec3F
	Color    colorful.Color

	// LossDistance is ignored for sinks
	LossDistance   float32
	VelocityJitter float32
	PositionJitter float32

	Speed    float64
	SpeedMin float64
	SpeedMax float64
}

// EmitterConfig returns the default emitter: full pool, loses particles past LossDistance
func EmitterConfig(color colorful.Color) Config {
	return Config{
		Role:           RoleEmitter,
		Capacity:       parameter.SourceCapacity,
		Seed:           parameter.SourceCapacity,
		Lifetime:       parameter.ParticleLifetime,
		Velocity:       vmath.Vec3F{0, 0, parameter.TemplateVelocityZ},
		Gravity:        vmath.Vec3F{0, parameter.GravityY, 0},
		Color:          color,
		LossDistance:   parameter.LossDistance,
		VelocityJitter: parameter.RespawnJitter,
		PositionJitter: parameter.SpawnJitter,
		Speed:          parameter.SpeedDefault,
		SpeedMin:       parameter.SpeedMin,
		SpeedMax:       parameter.SpeedMax,
	}
}

// SinkConfig returns the default black hole
func SinkConfig(color colorful.Color) Config {
	cfg := EmitterConfig(color)
	cfg.Role = RoleSink
	cfg.Seed = parameter.SinkSeedParticles
	cfg.LossDistance = 0
	return cfg
}

// RandomColor picks a saturated, bright hue
func RandomColor(rng *rand.Rand) colorful.Color {
	return colorful.Hsv(rng.Float64()*360, 0.55+0.45*rng.Float64(), 1)
}

// Source is a fixed-capacity ordered particle pool
// Slice order is insertion order; absorb evicts from the front
type Source struct {
	cfg       Config
	particles []Particle
	lost      []Particle
	speed     float64
	rng       *rand.Rand
}

// NewSource creates a source and seeds its pool with template particles at the base
func NewSource(cfg Config, rng *rand.Rand) *Source {
	if cfg.Capacity < 0 {
		cfg.Capacity = 0
	}
	cfg.Seed = min(max(cfg.Seed, 0), cfg.Capacity)
	if cfg.SpeedMax < cfg.SpeedMin {
		cfg.SpeedMin, cfg.SpeedMax = cfg.SpeedMax, cfg.SpeedMin
	}

	s := &Source{
		cfg:       cfg,
		particles: make([]Particle, 0, cfg.Capacity),
		rng:       rng,
	}
	s.SetSpeedMultiplier(cfg.Speed)

	for i := 0; i < cfg.Seed; i++ {
		s.particles = append(s.particles, New(cfg.Base, cfg.Velocity, cfg.Lifetime))
	}
	return s
}

// Update steps every particle once
// Emitter particles past LossDistance, or marked, move to the lost buffer and their slot is refilled
// Expired emitter particles that were not lost are respawned in place
// Sink particles never leave; once expired they hold position at zero alpha
func (s *Source) Update() {
	s.lost = nil
	speed := float32(s.speed)

	for i := range s.particles {
		p := &s.particles[i]

		// Sink particles age out and stay in place at zero alpha until evicted
		if s.cfg.Role == RoleSink {
			p.forceLost = false
			if !p.Expired() {
				p.Step(s.cfg.Gravity, speed)
			}
			p.Age = min(p.Age, p.MaxLifetime)
			continue
		}

		p.Step(s.cfg.Gravity, speed)

		if p.forceLost || physics.Escaped(p.Pos, s.cfg.Base, s.cfg.LossDistance) {
			out := *p
			out.forceLost = false
			s.lost = append(s.lost, out)
			*p = s.spawn()
			continue
		}
		p.forceLost = false

		if p.Expired() {
			s.respawn(p)
		}
	}
}

// DrainLost hands over the particles lost on the last Update
// A second call before the next Update returns nil
func (s *Source) DrainLost() []Particle {
	out := s.lost
	s.lost = nil
	return out
}

// Absorb appends incoming particles, evicting the oldest when capacity is exceeded
// Returns the number of particles evicted or dropped
func (s *Source) Absorb(incoming []Particle) int {
	if len(incoming) == 0 {
		return 0
	}
	capacity := s.cfg.Capacity
	if capacity == 0 {
		return len(incoming)
	}

	evicted := 0
	if len(incoming) > capacity {
		evicted = len(incoming) - capacity
		incoming = incoming[evicted:]
	}

	if overflow := len(s.particles) + len(incoming) - capacity; overflow > 0 {
		n := copy(s.particles, s.particles[overflow:])
		clear(s.particles[n:])
		s.particles = s.particles[:n]
		evicted += overflow
	}

	s.particles = append(s.particles, incoming...)
	return evicted
}

// MarkLost forces the particle at index i to be transferred on the next Update
// No effect on sinks; returns false for an out-of-range index
func (s *Source) MarkLost(i int) bool {
	if i < 0 || i >= len(s.particles) {
		return false
	}
	s.particles[i].forceLost = true
	return true
}

// SetSpeedMultiplier sets the displacement scale, clamped to the configured range
func (s *Source) SetSpeedMultiplier(f float64) {
	s.speed = vmath.Clamp(f, s.cfg.SpeedMin, s.cfg.SpeedMax)
}

// SpeedMultiplier returns the current displacement scale
func (s *Source) SpeedMultiplier() float64 {
	return s.speed
}

// ScaleSpeed multiplies the speed by ratio, respecting bounds
func (s *Source) ScaleSpeed(ratio float64) {
	s.SetSpeedMultiplier(s.speed * ratio)
}

// Render emits one draw command per particle with its fade-out alpha
func (s *Source) Render(d Drawer) {
	for i := range s.particles {
		p := &s.particles[i]
		d.DrawPoint(p.Pos, s.cfg.Color, p.Alpha())
	}
}

func (s *Source) Len() int              { return len(s.particles) }
func (s *Source) Capacity() int         { return s.cfg.Capacity }
func (s *Source) Role() Role            { return s.cfg.Role }
func (s *Source) Color() colorful.Color { return s.cfg.Color }

// Particle returns a copy of the particle at index i
func (s *Source) Particle(i int) Particle {
	return s.particles[i]
}

// Particles returns a copy of the pool in insertion order
func (s *Source) Particles() []Particle {
	out := make([]Particle, len(s.particles))
	copy(out, s.particles)
	return out
}

// spawn creates a fresh particle for a slot vacated by a transfer
func (s *Source) spawn() Particle {
	p := New(s.cfg.Base, s.cfg.Velocity, s.cfg.Lifetime)
	s.jitter(&p)
	return p
}

// respawn recycles a slot in place, keeping its serial
func (s *Source) respawn(p *Particle) {
	p.Init(s.cfg.Base, s.cfg.Velocity, s.cfg.Lifetime)
	s.jitter(p)
	p.Generation++
}

func (s *Source) jitter(p *Particle) {
	if s.rng == nil {
		return
	}
	p.Pos = p.Pos.Add(vmath.V3FJitter(s.rng, s.cfg.PositionJitter))
	p.Vel = p.Vel.Add(vmath.V3FJitter(s.rng, s.cfg.VelocityJitter))
}

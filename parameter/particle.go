package parameter

// Particle Sources
const (
	// SourceCapacity is the fixed pool size of every source
	SourceCapacity = 150

	// ParticleLifetime is the number of steps a particle lives before respawn
	ParticleLifetime = 300

	// SinkSeedParticles is the number of particles the sink starts with
	// Left at zero so the sink has headroom for transferred particles
	SinkSeedParticles = 0

	// GravityY is the constant per-step downward acceleration
	GravityY = -0.000001

	// TemplateVelocityZ is the initial velocity of a freshly created particle
	TemplateVelocityZ = 0.1

	// RespawnJitter is the uniform per-axis velocity noise applied on respawn
	RespawnJitter = 0.02

	// SpawnJitter is the uniform per-axis position noise applied on respawn
	SpawnJitter = 0.05

	// LossDistance is the distance from an emitter base past which a particle is handed to the sink
	// Default speed reach is lifetime * (template + jitter) ~ 37, so nothing is lost at speed 1.0
	LossDistance = 45.0
)

// Speed Multiplier
const (
	// SpeedStep is the ratio applied per polled frame while a speed key is held
	SpeedStep = 1.01

	// SpeedDefault is the initial multiplier of every source
	SpeedDefault = 1.0

	// SpeedMin and SpeedMax bound the multiplier
	SpeedMin = 0.05
	SpeedMax = 20.0
)

// Scene layout in world units
var (
	EmitterAOffset = [3]float32{-0.9, -0.5, -0.5}
	EmitterBOffset = [3]float32{1.0, 0.5, -0.5}
	SinkOffset     = [3]float32{0.0, 0.0, -0.5}
)

const (
	// AngleStart is the initial cosmetic rotation angle in degrees
	AngleStart = 1.0

	// AngleStep is the rotation advance per simulation step in degrees
	AngleStep = 2.0
)

package engine

import (
	"math"
	"math/rand"

	"github.com/lixenwraith/wormhole/camera"
	"github.com/lixenwraith/wormhole/parameter"
	"github.com/lixenwraith/wormhole/particle"
	"github.com/lixenwraith/wormhole/render"
	"github.com/lixenwraith/wormhole/vmath"
)

// Renderer is the drawing surface a scene renders into
type Renderer interface {
	particle.Drawer
	camera.ViewSetup
	Begin(clear render.RGB)
	Push()
	Pop()
	Translate(v vmath.Vec3F)
	RotateY(deg float32)
}

// Placement is a source with its fixed world-space offset
type Placement struct {
	Source *particle.Source
	Offset vmath.Vec3F
}

// Scene is the whole simulation state: two emitters, one sink, the camera and the cosmetic angle
type Scene struct {
	EmitterA Placement
	EmitterB Placement
	Sink     Placement
	Camera   *camera.Camera

	angle       float32
	steps       uint64
	transferred uint64
}

// NewScene builds the default scene with random source colors drawn from rng
func NewScene(rng *rand.Rand) *Scene {
	a := particle.NewSource(particle.EmitterConfig(particle.RandomColor(rng)), rng)
	b := particle.NewSource(particle.EmitterConfig(particle.RandomColor(rng)), rng)
	sink := particle.NewSource(particle.SinkConfig(particle.RandomColor(rng)), rng)

	return &Scene{
		EmitterA: Placement{a, vmath.V3F(parameter.EmitterAOffset)},
		EmitterB: Placement{b, vmath.V3F(parameter.EmitterBOffset)},
		Sink:     Placement{sink, vmath.V3F(parameter.SinkOffset)},
		Camera:   camera.New(),
		angle:    parameter.AngleStart,
	}
}

// Sources returns the sources in update and render order
func (s *Scene) Sources() []*particle.Source {
	return []*particle.Source{s.EmitterA.Source, s.EmitterB.Source, s.Sink.Source}
}

// ApplyInput applies speed scaling and camera moves for one polled frame
func (s *Scene) ApplyInput(in Input) {
	if in.SpeedA != 0 {
		s.EmitterA.Source.ScaleSpeed(speedRatio(in.SpeedA))
	}
	if in.SpeedB != 0 {
		s.EmitterB.Source.ScaleSpeed(speedRatio(in.SpeedB))
	}
	if in.SpeedAll != 0 {
		r := speedRatio(in.SpeedAll)
		for _, src := range s.Sources() {
			src.ScaleSpeed(r)
		}
	}

	if in.Forward != 0 {
		s.Camera.Move(sign(in.Forward), camera.AxisForward)
	}
	if in.Strafe != 0 {
		s.Camera.Move(sign(in.Strafe), camera.AxisStrafe)
	}
}

// Step advances the simulation by one fixed step and returns the number of particles transferred to the sink
func (s *Scene) Step() int {
	moved := s.transfer(s.EmitterA.Source)
	moved += s.transfer(s.EmitterB.Source)
	s.Sink.Source.Update()

	s.angle = float32(math.Mod(float64(s.angle+parameter.AngleStep), 360))
	s.steps++
	s.transferred += uint64(moved)
	return moved
}

// Tick applies one frame of input followed by a single step
func (s *Scene) Tick(in Input) int {
	s.ApplyInput(in)
	return s.Step()
}

func (s *Scene) transfer(emitter *particle.Source) int {
	emitter.Update()
	lost := emitter.DrainLost()
	s.Sink.Source.Absorb(lost)
	return len(lost)
}

// RenderFrame clears the target, applies the camera and draws every source at its offset
// The sink spins about its vertical axis by the cosmetic angle
func (s *Scene) RenderFrame(r Renderer) {
	r.Begin(render.RGBBlack)
	s.Camera.Apply(r)

	for _, pl := range []Placement{s.EmitterA, s.EmitterB} {
		r.Push()
		r.Translate(pl.Offset)
		pl.Source.Render(r)
		r.Pop()
	}

	r.Push()
	r.Translate(s.Sink.Offset)
	r.RotateY(s.angle)
	s.Sink.Source.Render(r)
	r.Pop()
}

// Angle returns the cosmetic rotation angle in degrees
func (s *Scene) Angle() float32 { return s.angle }

// Steps returns the number of simulation steps taken
func (s *Scene) Steps() uint64 { return s.steps }

// Transferred returns the total number of particles handed to the sink
func (s *Scene) Transferred() uint64 { return s.transferred }

func speedRatio(dir int) float64 {
	if dir > 0 {
		return parameter.SpeedStep
	}
	return 1 / parameter.SpeedStep
}

func sign(v int) int {
	switch {
	case v > 0:
		return 1
	case v < 0:
		return -1
	default:
		return 0
	}
}

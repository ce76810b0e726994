package engine

import (
	"math"
	"math/rand"
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/wormhole/parameter"
	"github.com/lixenwraith/wormhole/particle"
	"github.com/lixenwraith/wormhole/render"
	"github.com/lixenwraith/wormhole/vmath"
)

func newTestScene() *Scene {
	return NewScene(rand.New(rand.NewSource(1)))
}

// recordingRenderer captures the command stream of a frame
type recordingRenderer struct {
	begins     int
	views      int
	points     int
	depth      int
	maxDepth   int
	translates []vmath.Vec3F
	rotations  []float32
}

func (r *recordingRenderer) Begin(render.RGB)    { r.begins++ }
func (r *recordingRenderer) LoadView(mgl32.Mat4) { r.views++ }
func (r *recordingRenderer) Push() {
	r.depth++
	r.maxDepth = max(r.maxDepth, r.depth)
}
func (r *recordingRenderer) Pop()                                           { r.depth-- }
func (r *recordingRenderer) Translate(v vmath.Vec3F)                        { r.translates = append(r.translates, v) }
func (r *recordingRenderer) RotateY(deg float32)                            { r.rotations = append(r.rotations, deg) }
func (r *recordingRenderer) DrawPoint(vmath.Vec3F, colorful.Color, float64) { r.points++ }

// TestSceneDefaultLayout verifies roles, capacities and offsets
func TestSceneDefaultLayout(t *testing.T) {
	s := newTestScene()

	srcs := s.Sources()
	if len(srcs) != 3 {
		t.Fatalf("Expected 3 sources, got %d", len(srcs))
	}
	if srcs[0] != s.EmitterA.Source || srcs[1] != s.EmitterB.Source || srcs[2] != s.Sink.Source {
		t.Error("Expected sources ordered emitter A, emitter B, sink")
	}
	if s.EmitterA.Source.Len() != parameter.SourceCapacity || s.EmitterB.Source.Len() != parameter.SourceCapacity {
		t.Error("Expected emitters seeded to capacity")
	}
	if s.Sink.Source.Capacity() != parameter.SourceCapacity {
		t.Errorf("Expected sink capacity %d, got %d", parameter.SourceCapacity, s.Sink.Source.Capacity())
	}
	if s.EmitterA.Offset != vmath.V3F(parameter.EmitterAOffset) {
		t.Errorf("Unexpected emitter A offset %v", s.EmitterA.Offset)
	}
	if s.Angle() != parameter.AngleStart {
		t.Errorf("Expected start angle %f, got %f", parameter.AngleStart, s.Angle())
	}
}

// TestSceneEveryParticleRespawns runs past one lifetime without transfers
func TestSceneEveryParticleRespawns(t *testing.T) {
	s := newTestScene()
	originalA := s.EmitterA.Source.Particles()
	originalB := s.EmitterB.Source.Particles()

	for i := 0; i < parameter.ParticleLifetime+1; i++ {
		if moved := s.Tick(Input{}); moved != 0 {
			t.Fatalf("Tick %d: expected no transfers, got %d", i, moved)
		}
	}

	for name, pair := range map[string]struct {
		before []particle.Particle
		pl     Placement
	}{
		"A": {originalA, s.EmitterA},
		"B": {originalB, s.EmitterB},
	} {
		after := pair.pl.Source.Particles()
		if len(after) != len(pair.before) {
			t.Fatalf("Emitter %s: expected %d particles, got %d", name, len(pair.before), len(after))
		}
		for i, p := range after {
			if p.Serial != pair.before[i].Serial {
				t.Errorf("Emitter %s slot %d: expected serial kept", name, i)
			}
			if p.Generation < 1 {
				t.Errorf("Emitter %s slot %d: expected at least one respawn", name, i)
			}
			if p.Age >= parameter.ParticleLifetime {
				t.Errorf("Emitter %s slot %d: expected age below %d, got %d", name, i, parameter.ParticleLifetime, p.Age)
			}
		}
	}

	if s.Sink.Source.Len() != 0 || s.Transferred() != 0 {
		t.Errorf("Expected empty sink, got %d particles and %d transfers", s.Sink.Source.Len(), s.Transferred())
	}
	if s.Steps() != parameter.ParticleLifetime+1 {
		t.Errorf("Expected %d steps, got %d", parameter.ParticleLifetime+1, s.Steps())
	}
}

// TestSceneForcedTransfer verifies five lost particles move to the sink in one tick
func TestSceneForcedTransfer(t *testing.T) {
	s := newTestScene()
	s.Tick(Input{})

	sinkBefore := s.Sink.Source.Len()
	emitterBefore := s.EmitterA.Source.Len()

	var serials []uint64
	for _, i := range []int{0, 10, 20, 30, 40} {
		serials = append(serials, s.EmitterA.Source.Particle(i).Serial)
		s.EmitterA.Source.MarkLost(i)
	}

	if moved := s.Tick(Input{}); moved != 5 {
		t.Fatalf("Expected 5 transfers, got %d", moved)
	}
	if got := s.Sink.Source.Len(); got != sinkBefore+5 {
		t.Errorf("Expected sink size %d, got %d", sinkBefore+5, got)
	}
	if got := s.EmitterA.Source.Len(); got != emitterBefore {
		t.Errorf("Expected emitter size unchanged at %d, got %d", emitterBefore, got)
	}

	inSink := make(map[uint64]bool)
	for _, p := range s.Sink.Source.Particles() {
		inSink[p.Serial] = true
	}
	for _, serial := range serials {
		if !inSink[serial] {
			t.Errorf("Expected serial %d in sink", serial)
		}
	}
	for _, p := range s.EmitterA.Source.Particles() {
		if inSink[p.Serial] {
			t.Errorf("Serial %d present in both emitter and sink", p.Serial)
		}
	}
	if s.Transferred() != 5 {
		t.Errorf("Expected 5 total transfers, got %d", s.Transferred())
	}
}

// TestSceneSpeedInput verifies per-emitter and global scaling
func TestSceneSpeedInput(t *testing.T) {
	s := newTestScene()

	const k = 20
	for i := 0; i < k; i++ {
		s.ApplyInput(Input{SpeedA: 1, SpeedB: -1})
	}
	if got, want := s.EmitterA.Source.SpeedMultiplier(), math.Pow(parameter.SpeedStep, k); math.Abs(got-want) > 1e-9 {
		t.Errorf("Expected emitter A speed %f, got %f", want, got)
	}
	if got, want := s.EmitterB.Source.SpeedMultiplier(), math.Pow(parameter.SpeedStep, -k); math.Abs(got-want) > 1e-9 {
		t.Errorf("Expected emitter B speed %f, got %f", want, got)
	}

	for i := 0; i < k; i++ {
		s.ApplyInput(Input{SpeedA: -1, SpeedB: 1})
	}
	for i := 0; i < 3; i++ {
		s.ApplyInput(Input{SpeedAll: 1})
	}

	want := math.Pow(parameter.SpeedStep, 3)
	for _, src := range s.Sources() {
		if got := src.SpeedMultiplier(); math.Abs(got-want) > 1e-9 {
			t.Errorf("%s: expected speed %f, got %f", src.Role(), want, got)
		}
	}
}

// TestSceneCameraInput verifies a forward move followed by a back move returns the camera
func TestSceneCameraInput(t *testing.T) {
	s := newTestScene()
	start := s.Camera.Position()

	s.ApplyInput(Input{Forward: 1})
	if vmath.V3FApprox(s.Camera.Position(), start, 1e-6) {
		t.Fatal("Expected camera to move forward")
	}
	s.ApplyInput(Input{Forward: -1})
	if !vmath.V3FApprox(s.Camera.Position(), start, 1e-5) {
		t.Errorf("Expected camera back at %v, got %v", start, s.Camera.Position())
	}

	s.ApplyInput(Input{Strafe: 3})
	s.ApplyInput(Input{Strafe: -1})
	if !vmath.V3FApprox(s.Camera.Position(), start, 1e-5) {
		t.Errorf("Expected strafe magnitude normalized, got %v", s.Camera.Position())
	}
}

// TestSceneAngleAdvances verifies the cosmetic angle moves per step and wraps
func TestSceneAngleAdvances(t *testing.T) {
	s := newTestScene()
	s.Step()
	if got := s.Angle(); got != parameter.AngleStart+parameter.AngleStep {
		t.Errorf("Expected angle %f, got %f", parameter.AngleStart+parameter.AngleStep, got)
	}
	for i := 0; i < 500; i++ {
		s.Step()
	}
	if a := s.Angle(); a < 0 || a >= 360 {
		t.Errorf("Expected wrapped angle in [0,360), got %f", a)
	}
}

// TestSceneRenderFrame verifies command order and balance
func TestSceneRenderFrame(t *testing.T) {
	s := newTestScene()
	s.EmitterA.Source.MarkLost(0)
	s.Step()

	r := &recordingRenderer{}
	s.RenderFrame(r)

	if r.begins != 1 || r.views != 1 {
		t.Errorf("Expected one Begin and one LoadView, got %d and %d", r.begins, r.views)
	}
	if r.depth != 0 || r.maxDepth != 1 {
		t.Errorf("Expected balanced single-level stack, got depth %d max %d", r.depth, r.maxDepth)
	}
	wantPoints := s.EmitterA.Source.Len() + s.EmitterB.Source.Len() + s.Sink.Source.Len()
	if r.points != wantPoints {
		t.Errorf("Expected %d points, got %d", wantPoints, r.points)
	}
	wantOffsets := []vmath.Vec3F{s.EmitterA.Offset, s.EmitterB.Offset, s.Sink.Offset}
	if len(r.translates) != 3 {
		t.Fatalf("Expected 3 translations, got %d", len(r.translates))
	}
	for i := range wantOffsets {
		if r.translates[i] != wantOffsets[i] {
			t.Errorf("Translation %d: expected %v, got %v", i, wantOffsets[i], r.translates[i])
		}
	}
	if len(r.rotations) != 1 || r.rotations[0] != s.Angle() {
		t.Errorf("Expected sink rotation by %f, got %v", s.Angle(), r.rotations)
	}
}

// TestSceneRendersIntoPipeline exercises the real pipeline end to end
func TestSceneRendersIntoPipeline(t *testing.T) {
	s := newTestScene()
	for i := 0; i < 30; i++ {
		s.Step()
	}

	p := render.NewPipeline(render.NewFrameBuffer(160, 96))
	s.RenderFrame(p)

	sub, drawn := p.Stats()
	if sub != parameter.SourceCapacity*2 {
		t.Errorf("Expected %d submitted points, got %d", parameter.SourceCapacity*2, sub)
	}
	if drawn == 0 {
		t.Error("Expected some points to reach the framebuffer")
	}
}

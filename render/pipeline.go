package render

import (
	"github.com/go-gl/mathgl/mgl32"
	"github.com/lucasb-eyer/go-colorful"

	"github.com/lixenwraith/wormhole/parameter"
	"github.com/lixenwraith/wormhole/vmath"
)

// Pipeline is a fixed-function point renderer over a FrameBuffer
// Projection, modelview stack and point rasterization follow fixed-function GL
type Pipeline struct {
	fb    *FrameBuffer
	proj  mgl32.Mat4
	view  mgl32.Mat4
	model mgl32.Mat4
	stack []mgl32.Mat4

	fovY, near, far float32
	splatDepth      float32

	// Per-frame counters
	submitted int
	drawn     int
}

// NewPipeline creates a pipeline with the default perspective
func NewPipeline(fb *FrameBuffer) *Pipeline {
	p := &Pipeline{
		fb:         fb,
		view:       mgl32.Ident4(),
		model:      mgl32.Ident4(),
		fovY:       mgl32.DegToRad(parameter.CameraFOV),
		near:       parameter.CameraNear,
		far:        parameter.CameraFar,
		splatDepth: parameter.PointSplatDepth,
	}
	p.updateProjection()
	return p
}

// Resize changes the framebuffer size and aspect ratio
func (p *Pipeline) Resize(width, height int) {
	p.fb.Resize(width, height)
	p.updateProjection()
}

func (p *Pipeline) updateProjection() {
	aspect := float32(1)
	if p.fb.Height() > 0 {
		aspect = float32(p.fb.Width()) / float32(p.fb.Height())
	}
	p.proj = mgl32.Perspective(p.fovY, aspect, p.near, p.far)
}

// Begin clears the frame and resets transforms and counters
func (p *Pipeline) Begin(clear RGB) {
	p.fb.Clear(clear)
	p.view = mgl32.Ident4()
	p.model = mgl32.Ident4()
	p.stack = p.stack[:0]
	p.submitted = 0
	p.drawn = 0
}

// LoadView sets the view transform
func (p *Pipeline) LoadView(view mgl32.Mat4) {
	p.view = view
}

// Push saves the current model transform
func (p *Pipeline) Push() {
	p.stack = append(p.stack, p.model)
}

// Pop restores the last pushed model transform, unbalanced pops reset to identity
func (p *Pipeline) Pop() {
	n := len(p.stack)
	if n == 0 {
		p.model = mgl32.Ident4()
		return
	}
	p.model = p.stack[n-1]
	p.stack = p.stack[:n-1]
}

// Translate post-multiplies the model transform by a translation
func (p *Pipeline) Translate(v vmath.Vec3F) {
	p.model = p.model.Mul4(mgl32.Translate3D(v.X(), v.Y(), v.Z()))
}

// RotateY post-multiplies the model transform by a rotation about Y in degrees
func (p *Pipeline) RotateY(deg float32) {
	p.model = p.model.Mul4(mgl32.HomogRotate3DY(mgl32.DegToRad(deg)))
}

// DrawPoint projects a model-space point and plots it with alpha
// Points behind the eye or outside the clip volume are discarded
func (p *Pipeline) DrawPoint(pos vmath.Vec3F, c colorful.Color, alpha float64) {
	p.submitted++

	clip := p.proj.Mul4(p.view).Mul4(p.model).Mul4x1(pos.Vec4(1))
	w := clip.W()
	if w <= 0 {
		return
	}
	ndc := clip.Vec3().Mul(1 / w)
	if ndc.X() < -1 || ndc.X() > 1 || ndc.Y() < -1 || ndc.Y() > 1 || ndc.Z() < -1 || ndc.Z() > 1 {
		return
	}

	width, height := p.fb.Width(), p.fb.Height()
	x := int((ndc.X() + 1) * 0.5 * float32(width))
	y := int((ndc.Y() + 1) * 0.5 * float32(height))
	x = min(x, width-1)
	y = min(y, height-1)
	z := (ndc.Z() + 1) * 0.5

	rgb := FromColorful(c)
	plotted := p.fb.Plot(x, y, z, rgb, alpha)
	// Clip w is eye-space distance under perspective; near points splat to 2x2
	if w < p.splatDepth {
		plotted = p.fb.Plot(x+1, y, z, rgb, alpha) || plotted
		plotted = p.fb.Plot(x, y+1, z, rgb, alpha) || plotted
		plotted = p.fb.Plot(x+1, y+1, z, rgb, alpha) || plotted
	}
	if plotted {
		p.drawn++
	}
}

// Stats returns points submitted and points that produced at least one fragment this frame
func (p *Pipeline) Stats() (submitted, drawn int) {
	return p.submitted, p.drawn
}

// FrameBuffer returns the render target
func (p *Pipeline) FrameBuffer() *FrameBuffer {
	return p.fb
}

// Projection returns the current projection matrix
func (p *Pipeline) Projection() mgl32.Mat4 {
	return p.proj
}

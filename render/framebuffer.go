package render

// FrameBuffer is an RGB color buffer with a depth buffer
// Row 0 is the bottom of the image, matching GL window coordinates
type FrameBuffer struct {
	width, height int
	pix           []RGB
	depth         []float32
}

// NewFrameBuffer allocates a cleared buffer
func NewFrameBuffer(width, height int) *FrameBuffer {
	fb := &FrameBuffer{}
	fb.Resize(width, height)
	return fb
}

// Resize reallocates when dimensions change, contents are cleared to black
func (fb *FrameBuffer) Resize(width, height int) {
	width, height = max(width, 0), max(height, 0)
	if width == fb.width && height == fb.height && fb.pix != nil {
		return
	}
	fb.width, fb.height = width, height
	fb.pix = make([]RGB, width*height)
	fb.depth = make([]float32, width*height)
	fb.Clear(RGBBlack)
}

// Clear fills color and resets depth to the far plane
func (fb *FrameBuffer) Clear(c RGB) {
	for i := range fb.pix {
		fb.pix[i] = c
		fb.depth[i] = 1
	}
}

func (fb *FrameBuffer) Width() int  { return fb.width }
func (fb *FrameBuffer) Height() int { return fb.height }

func (fb *FrameBuffer) inBounds(x, y int) bool {
	return x >= 0 && x < fb.width && y >= 0 && y < fb.height
}

// At returns the color at (x, y), black when out of bounds
func (fb *FrameBuffer) At(x, y int) RGB {
	if !fb.inBounds(x, y) {
		return RGBBlack
	}
	return fb.pix[y*fb.width+x]
}

// Depth returns the stored window depth at (x, y)
func (fb *FrameBuffer) Depth(x, y int) float32 {
	if !fb.inBounds(x, y) {
		return 1
	}
	return fb.depth[y*fb.width+x]
}

// Row returns the pixels of row y, bottom-up; the slice aliases the buffer
func (fb *FrameBuffer) Row(y int) []RGB {
	if y < 0 || y >= fb.height {
		return nil
	}
	return fb.pix[y*fb.width : (y+1)*fb.width]
}

// Plot writes a fragment with LEQUAL depth test and alpha blending
// Depth is written for every fragment that passes, as with depth mask enabled
func (fb *FrameBuffer) Plot(x, y int, z float32, c RGB, alpha float64) bool {
	if !fb.inBounds(x, y) || alpha <= 0 {
		return false
	}
	i := y*fb.width + x
	if z > fb.depth[i] {
		return false
	}
	fb.pix[i] = Blend(fb.pix[i], c, alpha)
	fb.depth[i] = z
	return true
}

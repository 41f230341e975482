package render

import (
	"image"
	"image/color"
	"sync"
)

// numShards must be a power of two.
const numShards = 64

// FrameBuffer is the render target: flat RGBA bytes guarded by row-sharded
// locks, so workers writing different rows rarely contend.
type FrameBuffer struct {
	Width  int
	Height int
	Color  []uint8 // RGBA interleaved, len = W*H*4

	mu [numShards]sync.Mutex
}

// NewFrameBuffer allocates a buffer filled with opaque black.
func NewFrameBuffer(w, h int) *FrameBuffer {
	buf := make([]uint8, w*h*4)
	for i := 3; i < len(buf); i += 4 {
		buf[i] = 255
	}
	return &FrameBuffer{Width: w, Height: h, Color: buf}
}

func (fb *FrameBuffer) Set(x, y int, c color.RGBA) {
	i := (y*fb.Width + x) * 4
	m := &fb.mu[y&(numShards-1)]
	m.Lock()
	fb.Color[i] = c.R
	fb.Color[i+1] = c.G
	fb.Color[i+2] = c.B
	fb.Color[i+3] = 255
	m.Unlock()
}

func (fb *FrameBuffer) At(x, y int) color.RGBA {
	i := (y*fb.Width + x) * 4
	m := &fb.mu[y&(numShards-1)]
	m.Lock()
	defer m.Unlock()
	return color.RGBA{fb.Color[i], fb.Color[i+1], fb.Color[i+2], fb.Color[i+3]}
}

// Image copies the buffer into a new image.RGBA.
func (fb *FrameBuffer) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, fb.Width, fb.Height))
	stride := fb.Width * 4
	for y := 0; y < fb.Height; y++ {
		m := &fb.mu[y&(numShards-1)]
		m.Lock()
		copy(img.Pix[y*img.Stride:y*img.Stride+stride], fb.Color[y*stride:(y+1)*stride])
		m.Unlock()
	}
	return img
}

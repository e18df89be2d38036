package renderer

import (
	"image"
	"sync"
)

// framePool recycles frame buffers between renders. All frames of one
// renderer share a single geometry, so one sync.Pool suffices.
type framePool struct {
	pool sync.Pool
}

func newFramePool(width, height int) *framePool {
	return &framePool{
		pool: sync.Pool{
			New: func() interface{} {
				return image.NewRGBA(image.Rect(0, 0, width, height))
			},
		},
	}
}

// Get returns a possibly dirty buffer. The background paint covers
// every pixel, so no clearing happens here.
func (p *framePool) Get() *image.RGBA {
	return p.pool.Get().(*image.RGBA)
}

func (p *framePool) Put(img *image.RGBA) {
	if img != nil {
		p.pool.Put(img)
	}
}

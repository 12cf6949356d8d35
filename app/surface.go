package app

import (
	"wiresphere/hal"
	"wiresphere/render"
)

// fbSurface adapts a HAL framebuffer to render.Surface.
type fbSurface struct {
	*render.RGB565Target
	fb hal.Framebuffer
}

func newFBSurface(fb hal.Framebuffer) *fbSurface {
	return &fbSurface{
		RGB565Target: &render.RGB565Target{
			Buf:    fb.Buffer(),
			Stride: fb.StrideBytes(),
			W:      fb.Width(),
			H:      fb.Height(),
		},
		fb: fb,
	}
}

func (s *fbSurface) Clear(c render.Color) { s.fb.ClearRGB(c.R, c.G, c.B) }

func (s *fbSurface) Present() error { return s.fb.Present() }

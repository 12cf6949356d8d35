package render

// Target is a minimal pixel target for software rendering.
//
// Implementations must drop out-of-bounds coordinates.
type Target interface {
	Size() (w, h int)
	SetPixel(x, y int, c Color)
	Clear(c Color)
}

// Surface is a Target whose finished frame can be made visible.
type Surface interface {
	Target
	Present() error
}

package render

import "errors"

type point struct{ x, y int }

// recordTarget remembers every SetPixel call.
type recordTarget struct {
	w, h     int
	pixels   []point
	colors   map[point]Color
	clears   int
	presents int
	fail     error
}

func newRecordTarget(w, h int) *recordTarget {
	return &recordTarget{w: w, h: h, colors: map[point]Color{}}
}

func (r *recordTarget) Size() (int, int) { return r.w, r.h }

func (r *recordTarget) SetPixel(x, y int, c Color) {
	p := point{x, y}
	r.pixels = append(r.pixels, p)
	r.colors[p] = c
}

func (r *recordTarget) Clear(Color) {
	r.clears++
	r.pixels = r.pixels[:0]
	r.colors = map[point]Color{}
}

func (r *recordTarget) Present() error {
	r.presents++
	return r.fail
}

func (r *recordTarget) set() map[point]bool {
	out := make(map[point]bool, len(r.pixels))
	for _, p := range r.pixels {
		out[p] = true
	}
	return out
}

var errPresent = errors.New("surface lost")

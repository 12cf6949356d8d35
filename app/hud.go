package app

import (
	"fmt"
	"image/color"

	"wiresphere/internal/buildinfo"
	"wiresphere/render"

	"tinygo.org/x/drivers"
	"tinygo.org/x/tinyfont"
)

var (
	hudTitle = color.RGBA{R: 0x20, G: 0x20, B: 0x20, A: 0xFF}
	hudText  = color.RGBA{R: 0x60, G: 0x60, B: 0x70, A: 0xFF}
)

type hudLine struct {
	s string
	c color.RGBA
}

type hud struct {
	font       tinyfont.Fonter
	lineHeight int16
	hidden     bool
}

func newHUD() *hud {
	return &hud{font: &tinyfont.TomThumb, lineHeight: 8}
}

func (s *system) drawHUD(t render.Target) {
	if s.hud == nil || s.hud.hidden {
		return
	}
	ax, _, _ := s.scene.Angles()
	lines := []hudLine{
		{"wiresphere " + buildinfo.Short(), hudTitle},
		{fmt.Sprintf("tick %d  orbit %.0f  angle %.2f", s.scene.Ticks(), s.scene.OrbitDegree(), ax), hudText},
		{"space pause  h hud  esc quit", hudText},
	}
	if s.paused {
		lines = append(lines, hudLine{"paused", hudTitle})
	}

	d := &targetDisplayer{t: t}
	for i, l := range lines {
		y := int16(4) + int16(i+1)*s.hud.lineHeight
		tinyfont.WriteLine(d, s.hud.font, 4, y, l.s, l.c)
	}
}

// targetDisplayer lets tinyfont draw into a render.Target.
type targetDisplayer struct {
	t render.Target
}

var _ drivers.Displayer = (*targetDisplayer)(nil)

func (d *targetDisplayer) Size() (x, y int16) {
	w, h := d.t.Size()
	return int16(w), int16(h)
}

func (d *targetDisplayer) SetPixel(x, y int16, c color.RGBA) {
	d.t.SetPixel(int(x), int(y), render.RGBA(c.R, c.G, c.B, c.A))
}

func (d *targetDisplayer) Display() error { return nil }
